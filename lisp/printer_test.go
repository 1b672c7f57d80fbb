package lisp

import "testing"

func TestWriteAtoms(t *testing.T) {
	cases := map[Scmer]string{
		NilValue:        "NIL",
		TrueValue:       "T",
		Symbol("FOO"):   "FOO",
		"hello":         `"hello"`,
		NewInteger(5):   "5",
		NewRational(1, 3): "1/3",
	}
	for v, want := range cases {
		if got := Write(v); got != want {
			t.Errorf("Write(%#v) = %q, want %q", v, got, want)
		}
	}
}

func TestWriteDottedPair(t *testing.T) {
	c := &Cons{Head: Symbol("A"), Tail: Symbol("B")}
	if got := Write(c); got != "(A . B)" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteProperList(t *testing.T) {
	v := SliceToList([]Scmer{NewInteger(1), NewInteger(2), NewInteger(3)})
	if got := Write(v); got != "(1 2 3)" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteLambdaShowsShapeAndCapturedNames(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFINE N 1)", env)
	v := mustEval(t, "(LAMBDA (X &OPTIONAL (Y 2)) (+ X Y N))", env)
	got := Write(v)
	want := "(LAMBDA (X &OPTIONAL (Y 2)) (+ X Y N) {N})"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
