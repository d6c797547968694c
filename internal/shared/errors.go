package shared

import "errors"

var (
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSelfTargeting indicates a command would remove or demote the logged-in account.
	ErrSelfTargeting = errors.New("cannot target the logged-in account")
	// ErrInvalidInput indicates a command argument the user must correct.
	ErrInvalidInput = errors.New("invalid input")
)

// UserError carries a message meant for the person at the keyboard and
// wraps a sentinel for classification.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// Invalid builds a UserError wrapping ErrInvalidInput.
func Invalid(message string) error {
	return &UserError{Message: message, Err: ErrInvalidInput}
}
