package result

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/monads/pkg/monads"
)

// CatchAllMessage is the message of failures produced by FromBool and FromValue.
const CatchAllMessage = "Operation was a failure."

var _ monads.Diagnostic = Result{}

// Result is the outcome of an operation that returns no value.
type Result struct {
	id            uuid.UUID
	createdAt     time.Time
	message       string
	errorMessages map[string][]string
	isSuccess     bool
}

func Ok() Result {
	return Result{
		id:            uuid.New(),
		createdAt:     time.Now().UTC(),
		errorMessages: map[string][]string{},
		isSuccess:     true,
	}
}

// Fail creates a failure with a general message and optional per-field
// messages. It panics when message is blank: a failure must say why.
func Fail(message string, fieldErrors ...monads.FieldError) Result {
	if strings.TrimSpace(message) == "" {
		monads.InvalidArgument("a failure result requires an error message")
	}

	return Result{
		id:            uuid.New(),
		createdAt:     time.Now().UTC(),
		message:       message,
		errorMessages: monads.FieldErrors(fieldErrors).Map(),
		isSuccess:     false,
	}
}

// FromBool maps true to Ok and false to a catch-all failure.
func FromBool(isSuccess bool) Result {
	if isSuccess {
		return Ok()
	}
	return Fail(CatchAllMessage)
}

func (r Result) IsSuccess() bool {
	return r.isSuccess
}

func (r Result) IsFailure() bool {
	return !r.isSuccess
}

// Message is the general error message; empty on success.
func (r Result) Message() string {
	return r.message
}

// ErrorMessages returns a copy of the per-field messages.
func (r Result) ErrorMessages() map[string][]string {
	out := make(map[string][]string, len(r.errorMessages))
	for field, msgs := range r.errorMessages {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// FieldErrors returns the per-field messages sorted by field name.
func (r Result) FieldErrors() monads.FieldErrors {
	return monads.FieldErrorsFromMap(r.errorMessages)
}

func (r Result) Err() error {
	if r.isSuccess {
		return nil
	}
	return &monads.FailureError{Message: r.message, Fields: r.ErrorMessages()}
}

func (r Result) ID() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result) String() string {
	if r.isSuccess {
		return "Ok"
	}
	return "Fail(" + r.Err().Error() + ")"
}
