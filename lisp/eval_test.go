package lisp

import "testing"

func mustEval(t *testing.T, src string, env *Env) Scmer {
	t.Helper()
	v, err := ReadEvalString(src, env)
	if err != nil {
		t.Fatalf("eval(%q): %v", src, err)
	}
	return v
}

func TestEvalArithmeticAndIf(t *testing.T) {
	env := NewEnv()
	v := mustEval(t, "(IF (> 3 2) (+ 1 2) (- 1 2))", env)
	n, ok := v.(Number)
	if !ok || n.I != 3 {
		t.Fatalf("got %v", Write(v))
	}
}

func TestEvalLetParallelBindingsSeeOuterScope(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFINE X 10)", env)
	v := mustEval(t, "(LET ((X 1) (Y X)) Y)", env)
	n := v.(Number)
	if n.I != 10 {
		t.Fatalf("LET's Y should see the outer X (10), got %v", Write(v))
	}
}

func TestEvalLetStarSequentialBindings(t *testing.T) {
	env := NewEnv()
	v := mustEval(t, "(LET* ((X 1) (Y (+ X 1))) Y)", env)
	n := v.(Number)
	if n.I != 2 {
		t.Fatalf("LET*'s Y should see the just-bound X (1), got %v", Write(v))
	}
}

func TestDefineRejectsReservedSymbol(t *testing.T) {
	env := NewEnv()
	_, err := ReadEvalString("(DEFINE IF 5)", env)
	le, ok := err.(*LispError)
	if !ok || le.Kind != EOverrideReserved {
		t.Fatalf("expected EOverrideReserved, got %v", err)
	}
}

func TestDefineAllowsRedefiningNonReservedName(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFINE MY-HELPER 1)", env)
	v := mustEval(t, "(DEFINE MY-HELPER 2)", env)
	if v.(Number).I != 2 {
		t.Fatalf("redefining a non-builtin should succeed, got %v", Write(v))
	}
}

func TestLambdaOptionalAndRestAndKey(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFUN F (A &OPTIONAL (B 10) &REST R &KEY (C 99)) (LIST A B R C))", env)

	v := mustEval(t, "(F 1)", env)
	if Write(v) != "(1 10 NIL 99)" {
		t.Fatalf("got %v", Write(v))
	}

	v = mustEval(t, "(F 1 2 3 4 :C 7)", env)
	if Write(v) != "(1 2 (3 4) 7)" {
		t.Fatalf("got %v", Write(v))
	}
}

func TestLambdaKeywordMarkerNeverEvaluated(t *testing.T) {
	env := NewEnv()
	v := mustEval(t, "((LAMBDA (x &OPTIONAL (y 10) &KEY (z 0)) (+ x y z)) 1 :z 5)", env)
	if v.(Number).I != 16 {
		t.Fatalf("(+ 1 10 5) = %v, want 16", Write(v))
	}
}

func TestRecursiveTopLevelFunction(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFUN FACT (N) (IF (= N 0) 1 (* N (FACT (- N 1)))))", env)
	v := mustEval(t, "(FACT 5)", env)
	if v.(Number).I != 120 {
		t.Fatalf("(FACT 5) = %v, want 120", Write(v))
	}
}

func TestClosureCapturesOnlyFreeVariables(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFINE UNRELATED 999)", env)
	mustEval(t, "(DEFINE N 5)", env)
	mustEval(t, "(DEFINE ADDER (LAMBDA (X) (+ X N)))", env)
	v, ok := env.Lookup("ADDER")
	if !ok {
		t.Fatal("ADDER not bound")
	}
	l := v.(*Lambda)
	if _, captured := l.EnvSnapshot["UNRELATED"]; captured {
		t.Fatal("closure should not capture a name that doesn't occur in its body")
	}
	if _, captured := l.EnvSnapshot["N"]; !captured {
		t.Fatal("closure should capture N, which occurs free in its body")
	}
	result := mustEval(t, "(ADDER 10)", env)
	if result.(Number).I != 15 {
		t.Fatalf("(ADDER 10) = %v, want 15", Write(result))
	}
}

func TestMacroBindsArgumentsLiterallyAndDoubleEvaluates(t *testing.T) {
	env := NewEnv()
	// MY-IF expands to an IF form holding its THEN branch unevaluated, then
	// that expansion is evaluated again by the caller -- the defining
	// double-eval behavior.
	mustEval(t, "(DEFMACRO MY-IF (C THENFORM) (LIST (QUOTE IF) C THENFORM))", env)
	v := mustEval(t, "(MY-IF T (+ 1 2))", env)
	if v.(Number).I != 3 {
		t.Fatalf("got %v", Write(v))
	}
}

func TestQuasiquoteSpliceEvaluatesOnlyComma(t *testing.T) {
	env := NewEnv()
	mustEval(t, "(DEFINE X 5)", env)
	v := mustEval(t, "`(A ,X B)", env)
	if Write(v) != "(A 5 B)" {
		t.Fatalf("got %v", Write(v))
	}
}

func TestUnboundVariableError(t *testing.T) {
	env := NewEnv()
	_, err := ReadEvalString("NOSUCHVAR", env)
	le, ok := err.(*LispError)
	if !ok || le.Kind != EUnboundVariable {
		t.Fatalf("expected EUnboundVariable, got %v", err)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	env := NewEnv()
	v := mustEval(t, "(AND 1 2 NIL (DEFINE SHOULD-NOT-RUN 1))", env)
	if !IsNil(v) {
		t.Fatalf("AND with a NIL clause should short-circuit to NIL, got %v", Write(v))
	}
	if _, ok := env.Lookup("SHOULD-NOT-RUN"); ok {
		t.Fatal("AND should not have evaluated past the NIL clause")
	}
	v = mustEval(t, "(OR NIL NIL 3)", env)
	if v.(Number).I != 3 {
		t.Fatalf("got %v", Write(v))
	}
}
