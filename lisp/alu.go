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

// declareArithmetic registers the numeric-tower operators (spec.md §4.3):
// all of them thread through the Number combinators in number.go and
// Simplify their result.
func declareArithmetic(frame Frame) {
	declare(frame, "+", 0, -1, nativeAdd)
	declare(frame, "-", 1, -1, nativeSub)
	declare(frame, "*", 0, -1, nativeMul)
	declare(frame, "/", 1, -1, nativeDiv)
	declare(frame, "MOD", 2, 2, nativeMod)
	declare(frame, "FLOOR", 1, 1, nativeFloor)
	declare(frame, "CEIL", 1, 1, nativeCeil)
	declare(frame, "POWI", 2, 2, nativePowi)
	declare(frame, "POWR", 2, 2, nativePowr)
	declare(frame, "ABS", 1, 1, nativeAbs)
}

func asNumber(v Scmer) (Number, error) {
	n, ok := v.(Number)
	if !ok {
		return Number{}, errInvalidArgumentType(v, "number")
	}
	return n, nil
}

func nativeAdd(args []Scmer, env *Env) (Scmer, error) {
	acc := NewInteger(0)
	for _, a := range args {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		acc = AddNumbers(acc, n)
	}
	return acc, nil
}

func nativeSub(args []Scmer, env *Env) (Scmer, error) {
	first, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return NegNumber(first), nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		acc = SubNumbers(acc, n)
	}
	return acc, nil
}

func nativeMul(args []Scmer, env *Env) (Scmer, error) {
	acc := NewInteger(1)
	for _, a := range args {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		acc = MulNumbers(acc, n)
	}
	return acc, nil
}

func nativeDiv(args []Scmer, env *Env) (Scmer, error) {
	first, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		result, divZero := DivNumbers(NewInteger(1), first)
		if divZero {
			return nil, errDivisionByZero()
		}
		return result, nil
	}
	acc := first
	for _, a := range args[1:] {
		n, err := asNumber(a)
		if err != nil {
			return nil, err
		}
		result, divZero := DivNumbers(acc, n)
		if divZero {
			return nil, errDivisionByZero()
		}
		acc = result
	}
	return acc, nil
}

func nativeMod(args []Scmer, env *Env) (Scmer, error) {
	a, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	result, divZero := ModNumbers(a, b)
	if divZero {
		return nil, errDivisionByZero()
	}
	return result, nil
}

func nativeFloor(args []Scmer, env *Env) (Scmer, error) {
	n, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	return FloorNumber(n), nil
}

func nativeCeil(args []Scmer, env *Env) (Scmer, error) {
	n, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	return CeilNumber(n), nil
}

func nativePowi(args []Scmer, env *Env) (Scmer, error) {
	base, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	if exp.Kind != NumInteger {
		return nil, errInvalidArgumentType(exp, "integer")
	}
	return PowInt(base, exp.I), nil
}

func nativePowr(args []Scmer, env *Env) (Scmer, error) {
	base, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asNumber(args[1])
	if err != nil {
		return nil, err
	}
	return PowReal(base, exp.Float()), nil
}

func nativeAbs(args []Scmer, env *Env) (Scmer, error) {
	n, err := asNumber(args[0])
	if err != nil {
		return nil, err
	}
	if CompareNumbers(n, NewInteger(0)) < 0 {
		return NegNumber(n), nil
	}
	return n, nil
}
