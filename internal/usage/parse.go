package usage

import "fmt"

// ParseFailed is returned when a flag's raw tokens cannot be converted by its type.
func ParseFailed(flag string, err error) *Error {
	return &Error{
		Kind:    ErrParse,
		Flag:    flag,
		Message: fmt.Sprintf("flag %q could not be parsed: %v", flag, err),
		Err:     err,
	}
}
