package monads

// Outcome is implemented by every pass/fail type of the module.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure is the inverse of IsSuccess
	IsFailure() bool
}

// Diagnostic extends Outcome with the failure details
type Diagnostic interface {
	Outcome
	// Message returns the general error message, empty on success
	Message() string
	// ErrorMessages returns the per-field messages
	ErrorMessages() map[string][]string
	// Err returns nil on success and a *FailureError otherwise
	Err() error
}
