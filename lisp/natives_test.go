package lisp

import "testing"

func TestListOperators(t *testing.T) {
	env := NewEnv()
	if v := mustEval(t, "(CAR (LIST 1 2 3))", env); v.(Number).I != 1 {
		t.Fatalf("got %v", Write(v))
	}
	if v := mustEval(t, "(CDR (LIST 1 2 3))", env); Write(v) != "(2 3)" {
		t.Fatalf("got %v", Write(v))
	}
	if v := mustEval(t, "(APPEND (LIST 1 2) (LIST 3 4))", env); Write(v) != "(1 2 3 4)" {
		t.Fatalf("got %v", Write(v))
	}
	if v := mustEval(t, "(REVERSE (LIST 1 2 3))", env); Write(v) != "(3 2 1)" {
		t.Fatalf("got %v", Write(v))
	}
	if v := mustEval(t, "(LENGTH (LIST 1 2 3))", env); v.(Number).I != 3 {
		t.Fatalf("got %v", Write(v))
	}
	if v := mustEval(t, "(NTH 1 (LIST 10 20 30))", env); v.(Number).I != 20 {
		t.Fatalf("got %v", Write(v))
	}
}

func TestCarOfNonConsIsError(t *testing.T) {
	env := NewEnv()
	_, err := ReadEvalString("(CAR 5)", env)
	le, ok := err.(*LispError)
	if !ok || le.Kind != EInvalidArgumentType {
		t.Fatalf("expected EInvalidArgumentType, got %v", err)
	}
}

func TestCarCdrOfNilReturnNil(t *testing.T) {
	env := NewEnv()
	if v := mustEval(t, "(CAR NIL)", env); !IsNil(v) {
		t.Fatalf("(CAR NIL) = %v, want NIL", Write(v))
	}
	if v := mustEval(t, "(CDR NIL)", env); !IsNil(v) {
		t.Fatalf("(CDR NIL) = %v, want NIL", Write(v))
	}
}

func TestEqualStructuralAcrossNumberTower(t *testing.T) {
	env := NewEnv()
	if v := mustEval(t, "(EQUAL? (LIST 1 2) (LIST 1 2))", env); !IsTrue(v) {
		t.Fatal("structurally equal lists should satisfy EQUAL?")
	}
	if v := mustEval(t, "(EQUAL? 1/2 0.5)", env); !IsTrue(v) {
		t.Fatal("EQUAL? compares numbers numerically across the tower")
	}
}

func TestTypePredicates(t *testing.T) {
	env := NewEnv()
	for _, c := range []struct {
		src  string
		want bool
	}{
		{"(ATOM? 5)", true},
		{"(ATOM? (LIST 1))", false},
		{"(SYMBOL? (QUOTE X))", true},
		{"(SYMBOL? NIL)", true},
		{"(LIST? (LIST 1))", true},
		{"(LIST? 5)", false},
		{"(CONS? (CONS 1 2))", true},
		{"(CONS? NIL)", false},
	} {
		got := IsTrue(mustEval(t, c.src, env))
		if got != c.want {
			t.Errorf("%s = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestTypeReturnsTag(t *testing.T) {
	env := NewEnv()
	for _, c := range []struct {
		src  string
		want Symbol
	}{
		{"(TYPE 5)", "INTEGER"},
		{"(TYPE 1/2)", "RATIONAL"},
		{"(TYPE 1.5)", "REAL"},
		{"(TYPE \"x\")", "STRING"},
		{"(TYPE (QUOTE X))", "SYMBOL"},
		{"(TYPE NIL)", "NULL"},
		{"(TYPE (CONS 1 2))", "CONS"},
		{"(TYPE T)", "BOOLEAN"},
	} {
		got := mustEval(t, c.src, env).(Symbol)
		if got != c.want {
			t.Errorf("%s = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestFormatDirectives(t *testing.T) {
	env := NewEnv()
	v := mustEval(t, `(FORMAT "{} plus {} is {}" 1 2 3)`, env)
	want := "1 plus 2 is 3"
	if v.(string) != want {
		t.Fatalf("got %q, want %q", v, want)
	}
}

func TestFormatArityMismatch(t *testing.T) {
	env := NewEnv()
	_, err := ReadEvalString(`(FORMAT "{} {}" 1)`, env)
	le, ok := err.(*LispError)
	if !ok || le.Kind != EInvalidNumberOfFormatParams {
		t.Fatalf("expected EInvalidNumberOfFormatParams, got %v", err)
	}
}

func TestWriteToStringReadFromStringRoundTrip(t *testing.T) {
	env := NewEnv()
	v := mustEval(t, `(READ-FROM-STRING (WRITE-TO-STRING (LIST 1 2/4 "x")))`, env)
	if Write(v) != `(1 1/2 "x")` {
		t.Fatalf("got %v", Write(v))
	}
}

func TestGensymAvoidsCollision(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFINE :G0 1)", env)
	v := mustEval(t, "(GENSYM)", env)
	if v.(Symbol) == ":G0" {
		t.Fatal("GENSYM must not return an already-bound name")
	}
}

func TestApplySpreadsArguments(t *testing.T) {
	env := NewEnv()
	v := mustEval(t, "(APPLY + (LIST 1 2 3))", env)
	if v.(Number).I != 6 {
		t.Fatalf("got %v", Write(v))
	}
}
