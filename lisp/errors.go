//
// Copyright 2011 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// Adapted for Lumen Lisp from the error-kind-plus-struct pattern in
// nlfiedler-goswat/swatcl/errors.go; the taxonomy and messages themselves
// are ported from original_source/src/errors.rs.
//
package lisp

import "fmt"

// ErrorKind enumerates the error taxonomy from spec.md §7.
type ErrorKind int

const (
	_ ErrorKind = iota
	EInvalidArgumentType
	EInvalidNumberOfArgs
	EUnboundVariable
	EUnknownFunction
	EInvalidArgList
	EOverrideReserved
	ECannotOpenFile
	EInvalidNumberOfFormatParams
	EMultipleRestArgs
	EMisplacedDefaultValue
	EDivisionByZero
	EMismatchedBrackets
	ENoInput
)

// LispError carries a Kind plus whatever values the original error
// constructor took, and implements the error interface.
type LispError struct {
	Kind ErrorKind

	Got, Expected int    // INVALID_NUMBER_OF_ARGS, INVALID_NUMBER_OF_FORMAT_PARAMS
	Value         Scmer  // INVALID_ARGUMENT_TYPE, INVALID_ARG_LIST, UNKNOWN_FUNCTION, OVERRIDE_RESERVED
	TypeName      string // INVALID_ARGUMENT_TYPE's expected-tag
	Name          string // UNBOUND_VARIABLE
	Reason        string // CANNOT_OPEN_FILE
}

func (e *LispError) Error() string {
	switch e.Kind {
	case EInvalidArgumentType:
		return fmt.Sprintf("Invalid argument: %s should be of type %s", writeForError(e.Value), e.TypeName)
	case EInvalidNumberOfArgs:
		return fmt.Sprintf("Invalid number of arguments: %d provided but %d expected", e.Got, e.Expected)
	case EUnboundVariable:
		return fmt.Sprintf("Unbound variable: no value set for %s", e.Name)
	case EUnknownFunction:
		return fmt.Sprintf("Unknown function: %s is not a known function or lambda expression", writeForError(e.Value))
	case EInvalidArgList:
		return fmt.Sprintf("Invalid arguments: %s should be a list", writeForError(e.Value))
	case EOverrideReserved:
		return fmt.Sprintf("Attempted to override reserved symbol: %s", writeForError(e.Value))
	case ECannotOpenFile:
		return fmt.Sprintf("Cannot open file: %s", e.Reason)
	case EInvalidNumberOfFormatParams:
		return fmt.Sprintf("Invalid number of format parameters: %d provided but %d expected", e.Got, e.Expected)
	case EMultipleRestArgs:
		return "Invalid lambda list: only one &REST parameter is allowed"
	case EMisplacedDefaultValue:
		return "Invalid lambda list: default values are only allowed under &OPTIONAL or &KEY"
	case EDivisionByZero:
		return "Division by zero"
	case EMismatchedBrackets:
		return "Mismatched brackets: attempted to close a parenthesis with a square bracket or vice versa"
	case ENoInput:
		return "No value"
	default:
		return "Unknown error"
	}
}

// writeForError renders a Datum for embedding in an error message,
// falling back to "?" if the printer itself can't handle the value (it
// always can, but this keeps Error() panic-free under adversarial input).
func writeForError(v Scmer) (s string) {
	defer func() {
		if recover() != nil {
			s = "?"
		}
	}()
	return Write(v)
}

func errInvalidArgumentType(v Scmer, expected string) *LispError {
	return &LispError{Kind: EInvalidArgumentType, Value: v, TypeName: expected}
}

func errInvalidNumberOfArgs(got, expected int) *LispError {
	return &LispError{Kind: EInvalidNumberOfArgs, Got: got, Expected: expected}
}

func errUnboundVariable(name Symbol) *LispError {
	return &LispError{Kind: EUnboundVariable, Name: string(name)}
}

func errUnknownFunction(v Scmer) *LispError {
	return &LispError{Kind: EUnknownFunction, Value: v}
}

func errInvalidArgList(v Scmer) *LispError {
	return &LispError{Kind: EInvalidArgList, Value: v}
}

func errOverrideReserved(v Scmer) *LispError {
	return &LispError{Kind: EOverrideReserved, Value: v}
}

func errCannotOpenFile(reason string) *LispError {
	return &LispError{Kind: ECannotOpenFile, Reason: reason}
}

func errInvalidNumberOfFormatParams(got, expected int) *LispError {
	return &LispError{Kind: EInvalidNumberOfFormatParams, Got: got, Expected: expected}
}

func errMultipleRestArgs() *LispError      { return &LispError{Kind: EMultipleRestArgs} }
func errMisplacedDefaultValue() *LispError { return &LispError{Kind: EMisplacedDefaultValue} }
func errDivisionByZero() *LispError        { return &LispError{Kind: EDivisionByZero} }
func errMismatchedBrackets() *LispError    { return &LispError{Kind: EMismatchedBrackets} }
func errNoInput() *LispError               { return &LispError{Kind: ENoInput} }
