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
	"math"
	"strconv"
)

// Number is the exact numeric tower: Integer < Rational < Real. Mixed
// arithmetic promotes to the wider kind; same-kind arithmetic stays put
// except that Integer/Integer produces a Rational (simplified afterwards).
//
// Grounded on original_source/src/types.rs's Number enum and its
// Add/Sub/Mul/Div/simplify impls; ported from Rust operator overloads to a
// Go kind tag plus explicit combine functions.
type Number struct {
	Kind NumberKind
	I    int64 // valid when Kind == NumInteger or as numerator when NumRational
	Den  int64 // valid (and > 0) only when Kind == NumRational
	R    float64
}

type NumberKind int

const (
	NumInteger NumberKind = iota
	NumRational
	NumReal
)

func NewInteger(i int64) Number        { return Number{Kind: NumInteger, I: i} }
func NewReal(r float64) Number         { return Number{Kind: NumReal, R: r} }
func newRationalRaw(n, d int64) Number { return Number{Kind: NumRational, I: n, Den: d} }

// NewRational builds a Rational and simplifies it immediately.
func NewRational(n, d int64) Number {
	return newRationalRaw(n, d).Simplify()
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Simplify canonicalizes a Number per spec.md §3:
//   - Rational(a,b) with b<0 rewrites to Rational(-a,-b)
//   - Rational(a,b) with a<0 keeps the sign on the numerator (post b-fix)
//   - Rational(a,b) with b|a collapses to Integer(a/b)
//   - Rational(a,b) otherwise divides through by gcd(|a|,b)
//   - Real(x) with x == floor(x) and in int64 range collapses to Integer
func (n Number) Simplify() Number {
	switch n.Kind {
	case NumRational:
		a, b := n.I, n.Den
		if b < 0 {
			a, b = -a, -b
		}
		if b == 0 {
			// division by zero should have been caught earlier; keep shape
			return newRationalRaw(a, b)
		}
		if a%b == 0 {
			return NewInteger(a / b)
		}
		d := gcd(a, b)
		return newRationalRaw(a/d, b/d)
	case NumReal:
		x := n.R
		if x == math.Floor(x) && x >= -9.223372036854775e18 && x <= 9.223372036854775e18 {
			return NewInteger(int64(x))
		}
		return n
	default:
		return n
	}
}

// Float returns the IEEE-754 value of a Number, for comparisons and for
// contexts (like RAND-REAL bounds or MOD) that need a real approximation.
func (n Number) Float() float64 {
	switch n.Kind {
	case NumInteger:
		return float64(n.I)
	case NumRational:
		return float64(n.I) / float64(n.Den)
	default:
		return n.R
	}
}

// promote returns the wider of x's and y's tower positions: Integer <
// Rational < Real, matching NumberKind's declaration order.
func promote(a, b Number) (Number, Number, NumberKind) {
	kind := a.Kind
	if b.Kind > kind {
		kind = b.Kind
	}
	return a, b, kind
}

// AddNumbers, SubNumbers, MulNumbers, DivNumbers implement the tower's
// arithmetic exactly as original_source/src/types.rs's operator impls do,
// then Simplify the result (spec.md §4.3: "All results are simplify'd").
func AddNumbers(x, y Number) Number {
	_, _, kind := promote(x, y)
	switch kind {
	case NumInteger:
		return NewInteger(x.I + y.I).Simplify()
	case NumRational:
		xa, xb := rationalParts(x)
		ya, yb := rationalParts(y)
		return newRationalRaw(xa*yb+ya*xb, xb*yb).Simplify()
	default:
		return NewReal(x.Float() + y.Float()).Simplify()
	}
}

func SubNumbers(x, y Number) Number {
	_, _, kind := promote(x, y)
	switch kind {
	case NumInteger:
		return NewInteger(x.I - y.I).Simplify()
	case NumRational:
		xa, xb := rationalParts(x)
		ya, yb := rationalParts(y)
		return newRationalRaw(xa*yb-ya*xb, xb*yb).Simplify()
	default:
		return NewReal(x.Float() - y.Float()).Simplify()
	}
}

func MulNumbers(x, y Number) Number {
	_, _, kind := promote(x, y)
	switch kind {
	case NumInteger:
		return NewInteger(x.I * y.I).Simplify()
	case NumRational:
		xa, xb := rationalParts(x)
		ya, yb := rationalParts(y)
		return newRationalRaw(xa*ya, xb*yb).Simplify()
	default:
		return NewReal(x.Float() * y.Float()).Simplify()
	}
}

// DivNumbers returns (result, divByZero). Integer/Integer divides into a
// Rational rather than truncating, matching spec.md's "integer÷integer
// produces Rational".
func DivNumbers(x, y Number) (Number, bool) {
	_, _, kind := promote(x, y)
	switch kind {
	case NumReal:
		if y.Float() == 0 {
			return Number{}, true
		}
		return NewReal(x.Float() / y.Float()).Simplify(), false
	default:
		ya, yb := rationalParts(y)
		if ya == 0 {
			return Number{}, true
		}
		xa, xb := rationalParts(x)
		return newRationalRaw(xa*yb, xb*ya).Simplify(), false
	}
}

func NegNumber(x Number) Number {
	switch x.Kind {
	case NumInteger:
		return NewInteger(-x.I)
	case NumRational:
		return newRationalRaw(-x.I, x.Den).Simplify()
	default:
		return NewReal(-x.R)
	}
}

// rationalParts returns (numerator, denominator) treating an Integer as
// n/1, so mixed Integer/Rational arithmetic can share one code path.
func rationalParts(n Number) (int64, int64) {
	switch n.Kind {
	case NumInteger:
		return n.I, 1
	case NumRational:
		return n.I, n.Den
	default:
		panic("rationalParts: not exact")
	}
}

// CompareNumbers returns -1, 0, or 1, cross-tower, by cross-multiplying
// rationals or falling back to float comparison once a Real is involved.
func CompareNumbers(x, y Number) int {
	if x.Kind == NumReal || y.Kind == NumReal {
		xf, yf := x.Float(), y.Float()
		switch {
		case xf < yf:
			return -1
		case xf > yf:
			return 1
		default:
			return 0
		}
	}
	xa, xb := rationalParts(x)
	ya, yb := rationalParts(y)
	lhs, rhs := xa*yb, ya*xb
	if xb < 0 {
		lhs = -lhs
	}
	if yb < 0 {
		rhs = -rhs
	}
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func NumbersEqual(x, y Number) bool { return CompareNumbers(x, y) == 0 }

// FloorNumber and CeilNumber back the FLOOR/CEIL natives; both return
// simplified Numbers per spec.md §4.3.
func FloorNumber(x Number) Number { return NewReal(math.Floor(x.Float())).Simplify() }
func CeilNumber(x Number) Number  { return NewReal(math.Ceil(x.Float())).Simplify() }

// ModNumbers computes a - b*floor(a/b), the floor-division remainder used
// by the MOD native (spec.md worked example: (MOD 7 -3) = -2).
func ModNumbers(a, b Number) (Number, bool) {
	if b.Float() == 0 {
		return Number{}, true
	}
	q := NewInteger(int64(math.Floor(a.Float() / b.Float())))
	return SubNumbers(a, MulNumbers(b, q)), false
}

// PowInt raises base to an integer exponent (negative exponents invert).
func PowInt(base Number, exp int64) Number {
	if exp < 0 {
		inv, _ := DivNumbers(NewInteger(1), base)
		return PowInt(inv, -exp)
	}
	result := NewInteger(1)
	for i := int64(0); i < exp; i++ {
		result = MulNumbers(result, base)
	}
	return result.Simplify()
}

// PowReal raises base to a real exponent via math.Pow.
func PowReal(base Number, exp float64) Number {
	return NewReal(math.Pow(base.Float(), exp)).Simplify()
}

// FormatNumber renders a Number in the printer's canonical textual form:
// "n" for Integer, "n/d" for Rational, Go's default float formatting for
// Real (spec.md §4.5).
func FormatNumber(n Number) string {
	switch n.Kind {
	case NumInteger:
		return strconv.FormatInt(n.I, 10)
	case NumRational:
		return strconv.FormatInt(n.I, 10) + "/" + strconv.FormatInt(n.Den, 10)
	default:
		return strconv.FormatFloat(n.R, 'g', -1, 64)
	}
}
