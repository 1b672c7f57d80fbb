package lisp

import "testing"

func TestEnvPushPopIsolatesBindings(t *testing.T) {
	env := NewEnv()
	env.SetGlobal("X", NewInteger(1))
	env.Push()
	env.SetTop("X", NewInteger(2))
	v, _ := env.Get("X")
	if v.(Number).I != 2 {
		t.Fatalf("inner scope should shadow outer X, got %v", v)
	}
	env.Pop()
	v, _ = env.Get("X")
	if v.(Number).I != 1 {
		t.Fatalf("popping should restore outer X, got %v", v)
	}
}

func TestEnvSetExistingMutatesInPlace(t *testing.T) {
	env := NewEnv()
	env.Push()
	env.SetTop("X", NewInteger(1))
	env.Push()
	if !env.SetExisting("X", NewInteger(5)) {
		t.Fatal("SetExisting should find X in an outer frame")
	}
	env.Pop()
	v, _ := env.Get("X")
	if v.(Number).I != 5 {
		t.Fatalf("got %v", v)
	}
}

func TestEnvSetExistingReportsMiss(t *testing.T) {
	env := NewEnv()
	if env.SetExisting("NEVER-BOUND", NewInteger(1)) {
		t.Fatal("SetExisting should report false for an unbound name")
	}
}

func TestEnvIsReservedOnlyForBuiltins(t *testing.T) {
	env := NewEnv()
	if !env.IsReserved("IF") {
		t.Fatal("IF should be reserved")
	}
	if !env.IsReserved("CAR") {
		t.Fatal("CAR should be reserved")
	}
	if env.IsReserved("UNDEFINED-NAME") {
		t.Fatal("an unbound name is never reserved")
	}
	env.SetGlobal("MYVAR", NewInteger(1))
	if env.IsReserved("MYVAR") {
		t.Fatal("a plain value binding is not reserved")
	}
}

func TestEnvFlattenMergesInnermostWins(t *testing.T) {
	env := NewEnv()
	env.SetGlobal("X", NewInteger(1))
	env.Push()
	env.SetTop("X", NewInteger(2))
	flat := env.Flatten()
	if flat["X"].(Number).I != 2 {
		t.Fatalf("innermost binding should win in Flatten, got %v", flat["X"])
	}
}
