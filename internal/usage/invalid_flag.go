package usage

import "fmt"

// InvalidFlag is returned when a resolved flag value fails one of its rules.
func InvalidFlag(flag, message string) *Error {
	return &Error{
		Kind:    ErrValidation,
		Flag:    flag,
		Message: fmt.Sprintf("flag %q is invalid: %s", flag, message),
	}
}

// RuleFailed is returned when a rule could not evaluate a flag's value.
func RuleFailed(flag string, err error) *Error {
	return &Error{
		Kind:    ErrValidation,
		Flag:    flag,
		Message: fmt.Sprintf("flag %q is invalid: %v", flag, err),
		Err:     err,
	}
}
