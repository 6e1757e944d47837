// Package usage defines the errors a user can cause from the command line.
// They all exit with status 2; anything else exits with 1.
package usage

import (
	"errors"
	"slices"
)

// ErrorKind classifies a usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrParse
	ErrValidation
	ErrUnknownScope
)

func (k ErrorKind) String() string {
	switch k {
	case ErrParse:
		return "parse"
	case ErrValidation:
		return "validation"
	case ErrUnknownScope:
		return "unknown scope"
	}
	return "unknown"
}

// Error is a user-facing usage error.
type Error struct {
	Kind    ErrorKind
	Flag    string // key of the offending flag, if any
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// GetExitCode is 2 for bad input and 1 for ErrUnknown.
func (e *Error) GetExitCode() int {
	if e.Kind == ErrUnknown {
		return 1
	}
	return 2
}

// ExitCode returns the process exit status for err: 0 for nil, the code of
// the first usage error found in err's tree, or 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// Is reports whether err is, wraps or joins a usage error of kind.
func Is(err error, kind ErrorKind) bool {
	switch e := err.(type) {
	case nil:
		return false
	case *Error:
		return e.Kind == kind
	case interface{ Unwrap() []error }:
		return slices.ContainsFunc(e.Unwrap(), func(err error) bool { return Is(err, kind) })
	}
	return Is(errors.Unwrap(err), kind)
}
