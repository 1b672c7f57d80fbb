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
	"time"
)

// Eval implements spec.md §4.2's dispatch: self-evaluating atoms pass
// through, symbols resolve via the environment, and a Cons is either a
// special-form invocation or a function application.
func Eval(form Scmer, env *Env) (Scmer, error) {
	switch t := form.(type) {
	case Symbol:
		return env.Get(t)
	case *Cons:
		return evalCons(t, env)
	default:
		// Nil, True, Number, string, and any already-evaluated callable
		// (Special/*Native/*Lambda/*Macro) all self-evaluate.
		return form, nil
	}
}

func evalCons(c *Cons, env *Env) (Scmer, error) {
	if sym, ok := c.Head.(Symbol); ok {
		if v, ok := env.Lookup(sym); ok {
			if sp, ok := v.(Special); ok {
				return evalSpecial(sp, c.Tail, env)
			}
		}
	}
	fn, err := Eval(c.Head, env)
	if err != nil {
		return nil, err
	}
	if !isProperList(c.Tail) {
		return nil, errInvalidArgList(c.Tail)
	}
	return Apply(fn, ListToSlice(c.Tail), env)
}

// Apply evaluates argForms (for Native/Lambda) or binds them literally
// (for Macro), then dispatches per spec.md §4.2/§4.3.
func Apply(fn Scmer, argForms []Scmer, env *Env) (Scmer, error) {
	switch f := fn.(type) {
	case *Native:
		args := make([]Scmer, len(argForms))
		for i, af := range argForms {
			v, err := Eval(af, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		if len(args) < f.MinArgs || (f.MaxArgs >= 0 && len(args) > f.MaxArgs) {
			expected := f.MinArgs
			if f.MaxArgs != f.MinArgs {
				expected = f.MaxArgs
			}
			return nil, errInvalidNumberOfArgs(len(args), expected)
		}
		return f.Fn(args, env)
	case *Lambda:
		return applyLambda(f, argForms, env)
	case *Macro:
		return applyMacro(f, argForms, env)
	default:
		return nil, errUnknownFunction(fn)
	}
}

// applyLambda binds argForms against l's lambda list, evaluating each
// form as bindLambdaList consumes it rather than up front -- a `:name`
// keyword marker must never reach Eval (it has no binding and isn't
// meant to), so evaluation has to be interleaved with the positional/key
// scan instead of happening in a separate pass first.
func applyLambda(l *Lambda, argForms []Scmer, callerEnv *Env) (Scmer, error) {
	callerEnv.PushWith(l.EnvSnapshot)
	defer callerEnv.Pop()
	if err := bindLambdaList(l, argForms, callerEnv, true); err != nil {
		return nil, err
	}
	return Eval(l.Body, callerEnv)
}

// applyMacro binds argForms literally (unevaluated Datum trees) into a
// pushed frame, evaluates the macro body to produce an expansion, pops
// that frame, then re-enters Eval on the expansion in the caller's own
// environment -- the defining difference from a Lambda application.
func applyMacro(m *Macro, argForms []Scmer, callerEnv *Env) (Scmer, error) {
	l := (*Lambda)(m)
	callerEnv.PushWith(l.EnvSnapshot)
	if err := bindLambdaList(l, argForms, callerEnv, false); err != nil {
		callerEnv.Pop()
		return nil, err
	}
	expansion, err := Eval(l.Body, callerEnv)
	callerEnv.Pop()
	if err != nil {
		return nil, err
	}
	return Eval(expansion, callerEnv)
}

// bindLambdaList binds argForms against l's required/optional/rest/key
// shape into env's current top frame, per spec.md §4.2's binding-order
// rules. When evaluate is true (Lambda application) each argForm is
// evaluated at the point it's consumed, and missing optional/key
// defaults are evaluated in the partially-bound frame (so a later
// default can see an earlier parameter); when false (Macro application)
// argForms and defaults are both used as the literal, unevaluated Datum.
//
// The scan over non-required argForms happens before any of them are
// evaluated as ordinary values: a `:name` marker is recognized on the
// raw Datum first, exactly as original_source/src/eval.rs::apply_lambda
// does, so a keyword marker is consumed as a marker and never handed to
// Eval (it has no variable binding and was never meant to get one).
func bindLambdaList(l *Lambda, argForms []Scmer, env *Env, evaluate bool) error {
	if len(argForms) < len(l.Required) {
		return errInvalidNumberOfArgs(len(argForms), len(l.Required))
	}
	idx := 0
	for _, name := range l.Required {
		v, err := evalOrLiteral(argForms[idx], env, evaluate)
		if err != nil {
			return err
		}
		env.SetTop(name, v)
		idx++
	}

	var positional []Scmer
	provided := make(map[Symbol]Scmer)
	for i := idx; i < len(argForms); {
		if name, ok := keyArgName(argForms[i]); ok && l.hasKey(name) && i+1 < len(argForms) {
			v, err := evalOrLiteral(argForms[i+1], env, evaluate)
			if err != nil {
				return err
			}
			provided[name] = v
			i += 2
			continue
		}
		v, err := evalOrLiteral(argForms[i], env, evaluate)
		if err != nil {
			return err
		}
		positional = append(positional, v)
		i++
	}

	pi := 0
	for _, opt := range l.Optional {
		if pi < len(positional) {
			env.SetTop(opt.Name, positional[pi])
			pi++
			continue
		}
		val, err := evalOrLiteral(opt.Default, env, evaluate)
		if err != nil {
			return err
		}
		env.SetTop(opt.Name, val)
	}
	remainingPositional := positional[pi:]
	if l.HasRest {
		env.SetTop(l.Rest, SliceToList(remainingPositional))
	} else if len(remainingPositional) > 0 {
		return errInvalidNumberOfArgs(len(argForms), len(l.Required)+len(l.Optional))
	}

	for _, k := range l.Key {
		if v, ok := provided[k.Name]; ok {
			env.SetTop(k.Name, v)
			continue
		}
		val, err := evalOrLiteral(k.Default, env, evaluate)
		if err != nil {
			return err
		}
		env.SetTop(k.Name, val)
	}
	return nil
}

// evalOrLiteral evaluates form when evaluate is true (ordinary argument
// forms and Lambda/DEFUN default expressions), or returns it unchanged
// when false (Macro/DEFMACRO argument forms and default expressions,
// which are bound as literal Datum trees -- see spec.md §9's pinned
// macro-vs-lambda default-evaluation divergence).
func evalOrLiteral(form Scmer, env *Env, evaluate bool) (Scmer, error) {
	if !evaluate {
		return form, nil
	}
	return Eval(form, env)
}

// wrapBody folds a lambda/macro's body forms into a single Datum: the
// form itself if there's exactly one, otherwise an implicit (PROGN ...).
func wrapBody(forms []Scmer) Scmer {
	if len(forms) == 1 {
		return forms[0]
	}
	items := make([]Scmer, 0, len(forms)+1)
	items = append(items, Symbol("PROGN"))
	items = append(items, forms...)
	return SliceToList(items)
}

func buildLambda(paramsForm Scmer, bodyForms []Scmer, env *Env) (*Lambda, error) {
	required, optional, key, rest, hasRest, err := parseLambdaList(paramsForm)
	if err != nil {
		return nil, err
	}
	body := wrapBody(bodyForms)
	return &Lambda{
		Required:    required,
		Optional:    optional,
		Key:         key,
		Rest:        rest,
		HasRest:     hasRest,
		Body:        body,
		EnvSnapshot: captureSnapshot(env.Top(), body),
	}, nil
}

func evalSpecial(tag Special, argsForm Scmer, env *Env) (Scmer, error) {
	if !isProperList(argsForm) {
		return nil, errInvalidArgList(argsForm)
	}
	args := ListToSlice(argsForm)
	switch tag {
	case "QUOTE":
		if len(args) != 1 {
			return nil, errInvalidNumberOfArgs(len(args), 1)
		}
		return args[0], nil

	case "IF":
		if len(args) < 2 || len(args) > 3 {
			return nil, errInvalidNumberOfArgs(len(args), 3)
		}
		cond, err := Eval(args[0], env)
		if err != nil {
			return nil, err
		}
		if IsTrue(cond) {
			return Eval(args[1], env)
		}
		if len(args) == 3 {
			return Eval(args[2], env)
		}
		return NilValue, nil

	case "AND":
		result := Scmer(TrueValue)
		for _, a := range args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			if !IsTrue(v) {
				return NilValue, nil
			}
			result = v
		}
		return result, nil

	case "OR":
		for _, a := range args {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			if IsTrue(v) {
				return v, nil
			}
		}
		return NilValue, nil

	case "PROGN":
		return evalBody(args, env)

	case "LET":
		return evalLet(args, env, false)

	case "LET*":
		return evalLet(args, env, true)

	case "DEFINE":
		if len(args) != 2 {
			return nil, errInvalidNumberOfArgs(len(args), 2)
		}
		name, ok := args[0].(Symbol)
		if !ok {
			return nil, errInvalidArgumentType(args[0], "symbol")
		}
		if env.IsReserved(name) {
			return nil, errOverrideReserved(name)
		}
		val, err := Eval(args[1], env)
		if err != nil {
			return nil, err
		}
		env.SetGlobal(name, val)
		return val, nil

	case "SET":
		if len(args) != 2 {
			return nil, errInvalidNumberOfArgs(len(args), 2)
		}
		name, ok := args[0].(Symbol)
		if !ok {
			return nil, errInvalidArgumentType(args[0], "symbol")
		}
		if env.IsReserved(name) {
			return nil, errOverrideReserved(name)
		}
		val, err := Eval(args[1], env)
		if err != nil {
			return nil, err
		}
		env.SetGlobal(name, val)
		return val, nil

	case "DEFUN":
		if len(args) < 2 {
			return nil, errInvalidNumberOfArgs(len(args), 2)
		}
		name, ok := args[0].(Symbol)
		if !ok {
			return nil, errInvalidArgumentType(args[0], "symbol")
		}
		if env.IsReserved(name) {
			return nil, errOverrideReserved(name)
		}
		l, err := buildLambda(args[1], args[2:], env)
		if err != nil {
			return nil, err
		}
		env.SetGlobal(name, l)
		return l, nil

	case "LAMBDA":
		if len(args) < 1 {
			return nil, errInvalidNumberOfArgs(len(args), 1)
		}
		return buildLambda(args[0], args[1:], env)

	case "DEFMACRO":
		if len(args) < 2 {
			return nil, errInvalidNumberOfArgs(len(args), 2)
		}
		name, ok := args[0].(Symbol)
		if !ok {
			return nil, errInvalidArgumentType(args[0], "symbol")
		}
		if env.IsReserved(name) {
			return nil, errOverrideReserved(name)
		}
		l, err := buildLambda(args[1], args[2:], env)
		if err != nil {
			return nil, err
		}
		m := Macro(*l)
		env.SetGlobal(name, &m)
		return &m, nil

	case "MACRO":
		if len(args) < 1 {
			return nil, errInvalidNumberOfArgs(len(args), 1)
		}
		l, err := buildLambda(args[0], args[1:], env)
		if err != nil {
			return nil, err
		}
		m := Macro(*l)
		return &m, nil

	case "MACROEXPAND":
		if len(args) != 1 {
			return nil, errInvalidNumberOfArgs(len(args), 1)
		}
		call, ok := args[0].(*Cons)
		if !ok {
			return nil, errInvalidArgumentType(args[0], "macro call form")
		}
		name, ok := call.Head.(Symbol)
		if !ok {
			return nil, errInvalidArgumentType(call.Head, "symbol")
		}
		v, err := env.Get(name)
		if err != nil {
			return nil, err
		}
		m, ok := v.(*Macro)
		if !ok {
			return nil, errInvalidArgumentType(v, "macro")
		}
		if !isProperList(call.Tail) {
			return nil, errInvalidArgList(call.Tail)
		}
		l := (*Lambda)(m)
		env.PushWith(l.EnvSnapshot)
		err = bindLambdaList(l, ListToSlice(call.Tail), env, false)
		if err != nil {
			env.Pop()
			return nil, err
		}
		expansion, err := Eval(l.Body, env)
		env.Pop()
		return expansion, err

	case "BACKQUOTE":
		if len(args) != 1 {
			return nil, errInvalidNumberOfArgs(len(args), 1)
		}
		return quasiquote(args[0], env)

	case "TIME":
		if len(args) != 1 {
			return nil, errInvalidNumberOfArgs(len(args), 1)
		}
		start := time.Now()
		v, err := Eval(args[0], env)
		fmt.Printf("; elapsed: %s\n", time.Since(start))
		return v, err

	default:
		return nil, errUnknownFunction(Symbol(tag))
	}
}

func evalBody(forms []Scmer, env *Env) (Scmer, error) {
	result := Scmer(NilValue)
	for _, f := range forms {
		v, err := Eval(f, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalLet implements both LET (all bindings' value-expressions evaluated
// in the outer environment, then installed together) and LET* (bindings
// installed one at a time, each seeing the ones before it), per spec.md
// §4.2.
func evalLet(args []Scmer, env *Env, sequential bool) (Scmer, error) {
	if len(args) < 1 {
		return nil, errInvalidNumberOfArgs(len(args), 1)
	}
	if !isProperList(args[0]) {
		return nil, errInvalidArgList(args[0])
	}
	bindings := ListToSlice(args[0])
	body := args[1:]

	type binding struct {
		name Symbol
		expr Scmer
	}
	parsed := make([]binding, 0, len(bindings))
	for _, b := range bindings {
		if !isProperList(b) {
			return nil, errInvalidArgumentType(b, "(name value)")
		}
		items := ListToSlice(b)
		switch len(items) {
		case 1:
			name, ok := items[0].(Symbol)
			if !ok {
				return nil, errInvalidArgumentType(items[0], "symbol")
			}
			parsed = append(parsed, binding{name: name, expr: NilValue})
		case 2:
			name, ok := items[0].(Symbol)
			if !ok {
				return nil, errInvalidArgumentType(items[0], "symbol")
			}
			parsed = append(parsed, binding{name: name, expr: items[1]})
		default:
			return nil, errInvalidArgumentType(b, "(name value)")
		}
	}

	if sequential {
		env.Push()
		defer env.Pop()
		for _, b := range parsed {
			v, err := Eval(b.expr, env)
			if err != nil {
				return nil, err
			}
			env.SetTop(b.name, v)
		}
		return evalBody(body, env)
	}

	values := make([]Scmer, len(parsed))
	for i, b := range parsed {
		v, err := Eval(b.expr, env)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	env.Push()
	defer env.Pop()
	for i, b := range parsed {
		env.SetTop(b.name, values[i])
	}
	return evalBody(body, env)
}

// quasiquote implements one-level backquote: COMMA sub-forms evaluate in
// place, everything else copies through as-is (spec.md §4.2).
func quasiquote(form Scmer, env *Env) (Scmer, error) {
	c, ok := form.(*Cons)
	if !ok {
		return form, nil
	}
	if head, ok := c.Head.(Symbol); ok && head == "COMMA" {
		if !isProperList(c.Tail) {
			return nil, errInvalidArgList(c.Tail)
		}
		rest := ListToSlice(c.Tail)
		if len(rest) != 1 {
			return nil, errInvalidNumberOfArgs(len(rest), 1)
		}
		return Eval(rest[0], env)
	}
	headCopy, err := quasiquote(c.Head, env)
	if err != nil {
		return nil, err
	}
	tailCopy, err := quasiquote(c.Tail, env)
	if err != nil {
		return nil, err
	}
	return &Cons{Head: headCopy, Tail: tailCopy}, nil
}
