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

import (
	"fmt"
	"math/rand"
	"os"
)

// declareCore registers the reflective and randomness operators: EVAL,
// APPLY, GENSYM, RAND-INT, RAND-BOOL, RAND-REAL, LOAD (spec.md §4.3).
func declareCore(frame Frame) {
	declare(frame, "EVAL", 1, 1, nativeEval)
	declare(frame, "APPLY", 2, 2, nativeApply)
	declare(frame, "GENSYM", 0, 0, nativeGensym)
	declare(frame, "RAND-INT", 1, 2, nativeRandInt)
	declare(frame, "RAND-BOOL", 0, 0, nativeRandBool)
	declare(frame, "RAND-REAL", 0, 2, nativeRandReal)
	declare(frame, "LOAD", 1, 1, nativeLoad)
}

func nativeEval(args []Scmer, env *Env) (Scmer, error) {
	return Eval(args[0], env)
}

// nativeApply calls fn with the elements of the argument list, each
// wrapped in QUOTE so Apply's ordinary evaluate-then-call path doesn't
// re-evaluate an already-computed value.
func nativeApply(args []Scmer, env *Env) (Scmer, error) {
	if ProperListLen(args[1]) < 0 {
		return nil, errInvalidArgumentType(args[1], "list")
	}
	items := ListToSlice(args[1])
	quoted := make([]Scmer, len(items))
	for i, v := range items {
		quoted[i] = &Cons{Head: Symbol("QUOTE"), Tail: &Cons{Head: v, Tail: NilValue}}
	}
	return Apply(args[0], quoted, env)
}

// nativeGensym returns a fresh :G<n> symbol not currently bound anywhere
// on the whole frame stack, scanning every frame rather than just the
// global one -- needed since a deeply nested macro expansion can shadow
// a low-numbered gensym in an inner scope.
func nativeGensym(args []Scmer, env *Env) (Scmer, error) {
	for i := 0; ; i++ {
		name := Symbol(fmt.Sprintf(":G%d", i))
		if _, ok := env.Lookup(name); !ok {
			return name, nil
		}
	}
}

// nativeRandInt implements (RAND-INT n) -> [0,n) and (RAND-INT m n) ->
// [min(m,n), max(m,n)), per spec.md §6's random ranges.
func nativeRandInt(args []Scmer, env *Env) (Scmer, error) {
	if len(args) == 1 {
		n, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		if n.Kind != NumInteger || n.I <= 0 {
			return nil, errInvalidArgumentType(args[0], "positive integer")
		}
		return NewInteger(rand.Int63n(n.I)), nil
	}
	a, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	lo, hi := a.I, b.I
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi <= lo {
		return nil, errInvalidArgumentType(args[1], "distinct bounds")
	}
	return NewInteger(lo + rand.Int63n(hi-lo)), nil
}

func nativeRandBool(args []Scmer, env *Env) (Scmer, error) {
	return BoolToScmer(rand.Intn(2) == 1), nil
}

// nativeRandReal implements (RAND-REAL) -> [0,1), (RAND-REAL n) -> [0,n),
// and (RAND-REAL m n) -> [min,max).
func nativeRandReal(args []Scmer, env *Env) (Scmer, error) {
	switch len(args) {
	case 0:
		return NewReal(rand.Float64()), nil
	case 1:
		n, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		return NewReal(rand.Float64() * n.Float()), nil
	default:
		a, err := asNumber(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asNumber(args[1])
		if err != nil {
			return nil, err
		}
		lo, hi := a.Float(), b.Float()
		if lo > hi {
			lo, hi = hi, lo
		}
		return NewReal(lo + rand.Float64()*(hi-lo)), nil
	}
}

// nativeLoad reads and evaluates a source file in the caller's own
// environment -- so top-level DEFINE/DEFUN forms in the loaded file land
// in the same global frame, not a sandboxed one.
func nativeLoad(args []Scmer, env *Env) (Scmer, error) {
	path, ok := args[0].(string)
	if !ok {
		return nil, errInvalidArgumentType(args[0], "string")
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errCannotOpenFile(err.Error())
	}
	return ReadEvalString(string(src), env)
}

// ReadEvalString parses src as a sequence of top-level forms and
// evaluates each in turn, returning the last result -- the entry point
// LOAD and cmd/lumen's script-file arguments use (the REPL parses and
// evaluates one form per line with ParseOne and Eval).
func ReadEvalString(src string, env *Env) (Scmer, error) {
	forms, err := ParseAll(src)
	if err != nil {
		return nil, err
	}
	result := Scmer(NilValue)
	for _, form := range forms {
		result, err = Eval(form, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
