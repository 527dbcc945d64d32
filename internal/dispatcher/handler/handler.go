// Package handler provides the operation interface and result types for
// command dispatch.
package handler

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
)

// ErrInvalidParameter indicates a command was given a parameter it cannot
// use: missing, malformed or out of range.
var ErrInvalidParameter = errors.New("handler: invalid parameter")

// ErrMalformedParameter indicates a parameter whose syntax could not be
// parsed. It wraps ErrInvalidParameter.
var ErrMalformedParameter = fmt.Errorf("%w: malformed syntax", ErrInvalidParameter)

// Operation is one resolved command, ready to run against a context.
//
// Operations are plain values built by a Factory. Running the same
// operation twice runs the same edit logic twice.
type Operation interface {
	// Name returns the canonical operation name.
	Name() string

	// Execute runs the operation. Mutating operations commit their edits
	// through ctx.Commit exactly once.
	Execute(ctx *execctx.Context) (Result, error)
}

// Factory builds an operation from its raw parameter string.
// An empty string means no parameter was given.
type Factory func(param string) (Operation, error)

// Fixed returns a factory that ignores its parameter and always builds op.
func Fixed(op Operation) Factory {
	return func(string) (Operation, error) {
		return op, nil
	}
}

// ParamError describes why a parameter was rejected.
type ParamError struct {
	Op     string
	Param  string
	Reason string

	// Malformed marks a syntax error rather than a bad value.
	Malformed bool
}

func (e *ParamError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Op, e.Param, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidParameter) hold, and
// errors.Is(err, ErrMalformedParameter) for syntax errors.
func (e *ParamError) Unwrap() error {
	if e.Malformed {
		return ErrMalformedParameter
	}
	return ErrInvalidParameter
}

// InvalidParam builds a *ParamError.
func InvalidParam(op, param, reason string) error {
	return &ParamError{Op: op, Param: param, Reason: reason}
}

// MalformedParam builds a *ParamError for a parameter that does not parse.
func MalformedParam(op, param, reason string) error {
	return &ParamError{Op: op, Param: param, Reason: reason, Malformed: true}
}

// RequireParam rejects an empty parameter.
func RequireParam(op, param, what string) (string, error) {
	if param == "" {
		return "", InvalidParam(op, param, "requires "+what)
	}
	return param, nil
}

// SingleChar parses a parameter that must be exactly one character.
func SingleChar(op, param string) (rune, error) {
	if utf8.RuneCountInString(param) != 1 {
		return 0, InvalidParam(op, param, "requires exactly one character")
	}
	r, _ := utf8.DecodeRuneInString(param)
	return r, nil
}

// PositiveInt parses a parameter that must be a positive integer. An empty
// parameter yields def.
func PositiveInt(op, param string, def int) (int, error) {
	if param == "" {
		return def, nil
	}
	n, err := strconv.Atoi(param)
	if err != nil || n <= 0 {
		return 0, InvalidParam(op, param, "requires a positive number")
	}
	return n, nil
}

// NonNegativeInt parses a required non-negative integer parameter.
func NonNegativeInt(op, param string) (int, error) {
	if param == "" {
		return 0, InvalidParam(op, param, "requires a number")
	}
	n, err := strconv.Atoi(param)
	if err != nil || n < 0 {
		return 0, InvalidParam(op, param, "requires a non-negative number")
	}
	return n, nil
}
