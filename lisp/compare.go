/*
Copyright (C) 2023  Carl-Philip Hänsch

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

// declareComparisons registers numeric ordering, equality and the type
// predicates spec.md §4.3 lists.
func declareComparisons(frame Frame) {
	declare(frame, "=", 1, -1, nativeNumEq)
	declare(frame, "<", 1, -1, nativeLt)
	declare(frame, ">", 1, -1, nativeGt)
	declare(frame, "<=", 1, -1, nativeLe)
	declare(frame, ">=", 1, -1, nativeGe)

	declare(frame, "NOT", 1, 1, nativeNot)
	declare(frame, "EQUAL?", 2, 2, nativeEqual)

	declare(frame, "TYPE", 1, 1, nativeType)
	declare(frame, "ATOM?", 1, 1, typePredicate(func(v Scmer) bool {
		_, ok := v.(*Cons)
		return !ok
	}))
	declare(frame, "LIST?", 1, 1, typePredicate(func(v Scmer) bool {
		if IsNil(v) {
			return true
		}
		_, ok := v.(*Cons)
		return ok
	}))
	declare(frame, "CONS?", 1, 1, typePredicate(func(v Scmer) bool {
		_, ok := v.(*Cons)
		return ok
	}))
	declare(frame, "SYMBOL?", 1, 1, typePredicate(func(v Scmer) bool {
		if IsNil(v) {
			return true
		}
		_, ok := v.(Symbol)
		return ok
	}))
}

func chainCompare(args []Scmer, ok func(cmp int) bool) (Scmer, error) {
	for i := 0; i+1 < len(args); i++ {
		a, err := asNumber(args[i])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(args[i+1])
		if err != nil {
			return nil, err
		}
		if !ok(CompareNumbers(a, b)) {
			return NilValue, nil
		}
	}
	return TrueValue, nil
}

func nativeNumEq(args []Scmer, env *Env) (Scmer, error) {
	return chainCompare(args, func(c int) bool { return c == 0 })
}
func nativeLt(args []Scmer, env *Env) (Scmer, error) {
	return chainCompare(args, func(c int) bool { return c < 0 })
}
func nativeGt(args []Scmer, env *Env) (Scmer, error) {
	return chainCompare(args, func(c int) bool { return c > 0 })
}
func nativeLe(args []Scmer, env *Env) (Scmer, error) {
	return chainCompare(args, func(c int) bool { return c <= 0 })
}
func nativeGe(args []Scmer, env *Env) (Scmer, error) {
	return chainCompare(args, func(c int) bool { return c >= 0 })
}

func nativeNot(args []Scmer, env *Env) (Scmer, error) {
	return BoolToScmer(!IsTrue(args[0])), nil
}

// datumEqual is EQUAL?'s deep structural equality: numerically-equal
// numbers across tower positions compare equal, Cons trees compare
// element-wise, everything else compares by Go equality.
func datumEqual(a, b Scmer) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && NumbersEqual(av, bv)
	case *Cons:
		bv, ok := b.(*Cons)
		return ok && datumEqual(av.Head, bv.Head) && datumEqual(av.Tail, bv.Tail)
	default:
		return a == b
	}
}

func nativeEqual(args []Scmer, env *Env) (Scmer, error) {
	return BoolToScmer(datumEqual(args[0], args[1])), nil
}

func typePredicate(test func(Scmer) bool) NativeFn {
	return func(args []Scmer, env *Env) (Scmer, error) {
		return BoolToScmer(test(args[0])), nil
	}
}

// nativeType returns the tag symbol for a value's dynamic type, per
// spec.md §4.3's TYPE contract.
func nativeType(args []Scmer, env *Env) (Scmer, error) {
	v := args[0]
	if IsNil(v) {
		return Symbol("NULL"), nil
	}
	switch t := v.(type) {
	case Symbol:
		return Symbol("SYMBOL"), nil
	case string:
		return Symbol("STRING"), nil
	case True:
		return Symbol("BOOLEAN"), nil
	case Number:
		switch t.Kind {
		case NumInteger:
			return Symbol("INTEGER"), nil
		case NumRational:
			return Symbol("RATIONAL"), nil
		default:
			return Symbol("REAL"), nil
		}
	case *Cons:
		return Symbol("CONS"), nil
	case Special:
		return Symbol("SPECIAL FUNCTION"), nil
	case *Native:
		return Symbol("NATIVE FUNCTION"), nil
	case *Lambda:
		return Symbol("LAMBDA EXPRESSION"), nil
	case *Macro:
		return Symbol("MACRO"), nil
	default:
		return nil, errInvalidArgumentType(v, "known type")
	}
}
