// Package errors provides centralized error definitions and error handling
// utilities for the argue codebase. It defines the typed failures the solver
// core can surface, sentinel errors for errors.Is checks, and classification
// helpers used by the CLI to separate usage mistakes from internal faults.
//
// # Error Types
//
//   - MalformedFrameworkError: an attack references an undeclared argument
//   - UnknownArgumentError: a query target is absent from the framework
//   - ArityError: a DC-*/DS-* query was given a target set of the wrong size
//   - SyntaxError: a line of an APX file does not match the format
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewMalformedFrameworkError("a", "b", "b")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrUndeclaredArgument) { ... }
//
//	var arity *errors.ArityError
//	if errors.As(err, &arity) { ... }
//
//	if errors.IsUsage(err) { ... } // safe to print, exit code 1
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrUndeclaredArgument indicates an attack endpoint that is not a
	// declared argument of the framework.
	ErrUndeclaredArgument = New("attack references undeclared argument")
	// ErrUnknownArgument indicates a query target absent from the framework.
	ErrUnknownArgument = New("argument not present in framework")
	// ErrBadArity indicates a decision query with a target set that is not
	// a single argument.
	ErrBadArity = New("wrong number of query arguments")
	// ErrUnknownProblem indicates an unrecognized problem code.
	ErrUnknownProblem = New("unknown problem code")
	// ErrSyntax indicates an input line that is not a valid APX directive.
	ErrSyntax = New("malformed apx line")
)

// -----------------------------------------------------------------------------
// Typed Errors
// -----------------------------------------------------------------------------

// MalformedFrameworkError reports an attack whose source or target was never
// declared as an argument. It is fatal to framework construction.
type MalformedFrameworkError struct {
	Source  string // attacking argument as written
	Target  string // attacked argument as written
	Missing string // whichever endpoint is undeclared
}

// NewMalformedFrameworkError creates a MalformedFrameworkError for the attack
// (source, target) whose endpoint missing is undeclared.
func NewMalformedFrameworkError(source, target, missing string) *MalformedFrameworkError {
	return &MalformedFrameworkError{Source: source, Target: target, Missing: missing}
}

// Error returns the formatted error message.
func (e *MalformedFrameworkError) Error() string {
	return fmt.Sprintf("attack (%s,%s) references undeclared argument %q", e.Source, e.Target, e.Missing)
}

// Is reports whether this error matches the target.
func (e *MalformedFrameworkError) Is(target error) bool {
	if _, ok := target.(*MalformedFrameworkError); ok {
		return true
	}
	return target == ErrUndeclaredArgument
}

// UnknownArgumentError reports a query target that names an argument the
// framework does not contain. It is fatal to that query only.
type UnknownArgumentError struct {
	Name string
}

// NewUnknownArgumentError creates an UnknownArgumentError for name.
func NewUnknownArgumentError(name string) *UnknownArgumentError {
	return &UnknownArgumentError{Name: name}
}

// Error returns the formatted error message.
func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("argument %q is not part of the framework", e.Name)
}

// Is reports whether this error matches the target.
func (e *UnknownArgumentError) Is(target error) bool {
	if _, ok := target.(*UnknownArgumentError); ok {
		return true
	}
	return target == ErrUnknownArgument
}

// ArityError reports a credulous or skeptical query invoked with zero or
// more than one target argument.
type ArityError struct {
	Problem string // problem code as written, e.g. "DC-CO"
	Got     int    // number of target arguments supplied
}

// NewArityError creates an ArityError for the given problem code and count.
func NewArityError(problem string, got int) *ArityError {
	return &ArityError{Problem: problem, Got: got}
}

// Error returns the formatted error message.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s requires exactly one argument, got %d", e.Problem, e.Got)
}

// Is reports whether this error matches the target.
func (e *ArityError) Is(target error) bool {
	if _, ok := target.(*ArityError); ok {
		return true
	}
	return target == ErrBadArity
}

// SyntaxError reports an input line that is not a well-formed APX directive.
type SyntaxError struct {
	Line int    // 1-based line number
	Text string // offending line, without trailing newline
}

// NewSyntaxError creates a SyntaxError for the given line.
func NewSyntaxError(line int, text string) *SyntaxError {
	return &SyntaxError{Line: line, Text: text}
}

// Error returns the formatted error message.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %q is not a valid directive; expected \"arg(name).\" or \"att(source,target).\"", e.Line, e.Text)
}

// Is reports whether this error matches the target.
func (e *SyntaxError) Is(target error) bool {
	if _, ok := target.(*SyntaxError); ok {
		return true
	}
	return target == ErrSyntax
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsUsage returns true if the error stems from user input (a malformed file,
// an unknown argument, a bad query) rather than from an internal fault.
// Usage errors are safe to print verbatim and map to a normal failure exit.
func IsUsage(err error) bool {
	if err == nil {
		return false
	}

	var malformed *MalformedFrameworkError
	var unknown *UnknownArgumentError
	var arity *ArityError
	var syntax *SyntaxError

	if As(err, &malformed) || As(err, &unknown) || As(err, &arity) || As(err, &syntax) {
		return true
	}
	return Is(err, ErrUnknownProblem)
}

// Wrap wraps an error with an additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
