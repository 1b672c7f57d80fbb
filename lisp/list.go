/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lisp

// declareLists registers the Cons/list operators spec.md §4.3 names.
func declareLists(frame Frame) {
	declare(frame, "CONS", 2, 2, nativeCons)
	declare(frame, "CAR", 1, 1, nativeCar)
	declare(frame, "CDR", 1, 1, nativeCdr)
	declare(frame, "LIST", 0, -1, nativeList)
	declare(frame, "APPEND", 0, -1, nativeAppend)
	declare(frame, "REVERSE", 1, 1, nativeReverse)
	declare(frame, "LENGTH", 1, 1, nativeLength)
	declare(frame, "NTH", 2, 2, nativeNth)
	declare(frame, "NTHCDR", 2, 2, nativeNthcdr)
	declare(frame, "MOST", 1, 1, nativeMost)
}

func nativeCons(args []Scmer, env *Env) (Scmer, error) {
	return &Cons{Head: args[0], Tail: args[1]}, nil
}

func nativeCar(args []Scmer, env *Env) (Scmer, error) {
	if IsNil(args[0]) {
		return NilValue, nil
	}
	c, ok := args[0].(*Cons)
	if !ok {
		return nil, errInvalidArgumentType(args[0], "cons")
	}
	return c.Head, nil
}

func nativeCdr(args []Scmer, env *Env) (Scmer, error) {
	if IsNil(args[0]) {
		return NilValue, nil
	}
	c, ok := args[0].(*Cons)
	if !ok {
		return nil, errInvalidArgumentType(args[0], "cons")
	}
	return c.Tail, nil
}

func nativeList(args []Scmer, env *Env) (Scmer, error) {
	return SliceToList(args), nil
}

func nativeAppend(args []Scmer, env *Env) (Scmer, error) {
	var all []Scmer
	for _, a := range args {
		if IsNil(a) {
			continue
		}
		if ProperListLen(a) < 0 {
			return nil, errInvalidArgumentType(a, "list")
		}
		all = append(all, ListToSlice(a)...)
	}
	return SliceToList(all), nil
}

func nativeReverse(args []Scmer, env *Env) (Scmer, error) {
	if ProperListLen(args[0]) < 0 {
		return nil, errInvalidArgumentType(args[0], "list")
	}
	items := ListToSlice(args[0])
	out := make([]Scmer, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}
	return SliceToList(out), nil
}

func nativeLength(args []Scmer, env *Env) (Scmer, error) {
	if s, ok := args[0].(string); ok {
		return NewInteger(int64(len(s))), nil
	}
	n := ProperListLen(args[0])
	if n < 0 {
		return nil, errInvalidArgumentType(args[0], "list or string")
	}
	return NewInteger(int64(n)), nil
}

func nativeNth(args []Scmer, env *Env) (Scmer, error) {
	idx, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	cur := args[1]
	for i := int64(0); i < idx.I; i++ {
		c, ok := cur.(*Cons)
		if !ok {
			return NilValue, nil
		}
		cur = c.Tail
	}
	c, ok := cur.(*Cons)
	if !ok {
		return NilValue, nil
	}
	return c.Head, nil
}

// nativeMost returns every element but the last -- NIL and a one-element
// list both yield NIL.
func nativeMost(args []Scmer, env *Env) (Scmer, error) {
	if IsNil(args[0]) {
		return NilValue, nil
	}
	if ProperListLen(args[0]) < 0 {
		return nil, errInvalidArgumentType(args[0], "list")
	}
	items := ListToSlice(args[0])
	if len(items) <= 1 {
		return NilValue, nil
	}
	return SliceToList(items[:len(items)-1]), nil
}

func nativeNthcdr(args []Scmer, env *Env) (Scmer, error) {
	idx, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	cur := args[1]
	for i := int64(0); i < idx.I; i++ {
		c, ok := cur.(*Cons)
		if !ok {
			return NilValue, nil
		}
		cur = c.Tail
	}
	return cur, nil
}
