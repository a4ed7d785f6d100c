package monads

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidState is the panic cause when a value is read from the wrong arm.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument is the panic cause when a constructor precondition is broken.
	ErrInvalidArgument = errors.New("invalid argument")
)

// InvalidState panics with an error wrapping ErrInvalidState.
func InvalidState(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...)))
}

// InvalidArgument panics with an error wrapping ErrInvalidArgument.
func InvalidArgument(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)))
}

// FailureError is the error form of a failed outcome: the general message
// plus the per-field messages.
type FailureError struct {
	Message string
	Fields  map[string][]string
}

func (e *FailureError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	var sb strings.Builder
	sb.WriteString(e.Message)
	for _, f := range FieldErrorsFromMap(e.Fields) {
		sb.WriteString("; ")
		sb.WriteString(f.String())
	}
	return sb.String()
}
