package caller

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFrame       = errors.New("no frame on the call stack matches the calling method")
	ErrNoReceiver    = errors.New("the calling function is not declared on a type")
	ErrNotRegistered = errors.New("the declaring type has no registered target")
)

// ResolutionError reports a caller token that could not be resolved to a target type.
type ResolutionError struct {
	Token       string
	Function    string   // the matching frame, when one was found
	Suggestions []string // similar function names seen on the stack
	Err         error
}

func (e *ResolutionError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "unable to determine the containing type of the calling method %q", e.Token)
	if e.Function != "" {
		fmt.Fprintf(&b, " (%s)", e.Function)
	}

	fmt.Fprintf(&b, ": %v; explicitly specify the target", e.Err)

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, "; did you mean %s?", strings.Join(e.Suggestions, ", "))
	}

	return b.String()
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
