package usage

import (
	"fmt"
	"strings"
)

// UnknownScope is returned when a sub-command name matches no declared child.
// The rule message of the synthetic scope flag is kept so the allowed names
// still appear in the output.
func UnknownScope(flag, scope, message string, suggestions ...string) *Error {
	msg := fmt.Sprintf("flag %q is invalid: '%s' is not a known scope. %s", flag, scope, message)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" Did you mean: %s?", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:    ErrUnknownScope,
		Flag:    flag,
		Message: msg,
	}
}
