package lisp

import "testing"

func TestRationalSimplifiesToInteger(t *testing.T) {
	n := NewRational(6, 3)
	if n.Kind != NumInteger || n.I != 2 {
		t.Fatalf("NewRational(6,3) = %+v, want Integer(2)", n)
	}
}

func TestRationalReducesByGCD(t *testing.T) {
	n := NewRational(4, 6)
	if n.Kind != NumRational || n.I != 2 || n.Den != 3 {
		t.Fatalf("NewRational(4,6) = %+v, want Rational(2,3)", n)
	}
}

func TestRationalNormalizesSign(t *testing.T) {
	n := NewRational(1, -2)
	if n.Kind != NumRational || n.I != -1 || n.Den != 2 {
		t.Fatalf("NewRational(1,-2) = %+v, want Rational(-1,2)", n)
	}
}

func TestIntegerDivIntegerProducesRational(t *testing.T) {
	result, divZero := DivNumbers(NewInteger(1), NewInteger(3))
	if divZero {
		t.Fatal("unexpected division by zero")
	}
	if result.Kind != NumRational || result.I != 1 || result.Den != 3 {
		t.Fatalf("1/3 = %+v, want Rational(1,3)", result)
	}
}

func TestDivisionByZeroDetected(t *testing.T) {
	if _, divZero := DivNumbers(NewInteger(1), NewInteger(0)); !divZero {
		t.Fatal("expected division by zero")
	}
}

func TestModFloorDivisionRemainder(t *testing.T) {
	result, divZero := ModNumbers(NewInteger(7), NewInteger(-3))
	if divZero {
		t.Fatal("unexpected division by zero")
	}
	if result.Kind != NumInteger || result.I != -2 {
		t.Fatalf("(MOD 7 -3) = %+v, want -2", result)
	}
}

func TestRealCollapsesToIntegerWhenWhole(t *testing.T) {
	n := NewReal(4.0).Simplify()
	if n.Kind != NumInteger || n.I != 4 {
		t.Fatalf("NewReal(4.0) = %+v, want Integer(4)", n)
	}
}

func TestCompareCrossTower(t *testing.T) {
	if CompareNumbers(NewRational(1, 2), NewReal(0.5)) != 0 {
		t.Fatal("1/2 should equal 0.5")
	}
	if CompareNumbers(NewInteger(1), NewRational(3, 2)) >= 0 {
		t.Fatal("1 should be less than 3/2")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[string]Number{
		"3":   NewInteger(3),
		"2/3": NewRational(2, 3),
	}
	for want, n := range cases {
		if got := FormatNumber(n); got != want {
			t.Errorf("FormatNumber(%+v) = %q, want %q", n, got, want)
		}
	}
}
