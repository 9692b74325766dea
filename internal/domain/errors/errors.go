package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateTable     = errors.New("table number already exists")
	ErrInvalidTransition  = errors.New("invalid order state transition")
	ErrForbidden          = errors.New("operation not allowed for role")
	ErrConflict           = errors.New("operation conflicts with current state")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
