package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown-principal and wrong-password
	// so the login page can never leak which half was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError is a user-correctable rejection with a field-specific
// message, safe to render inline.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

// StorageError wraps a file or database write failure. The handler renders a
// generic try-again message; any side effect has already been compensated.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }
