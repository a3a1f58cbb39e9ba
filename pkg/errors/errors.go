package pulse_errors

import "errors"

// Repository-level errors
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
)

// Fixed service-level errors. These are the only error strings that ever
// reach a client; underlying driver errors are logged, never surfaced.
var (
	ErrSaveUser    = errors.New("error when saving user")
	ErrGetUser     = errors.New("error when getting user by username")
	ErrLoginUser   = errors.New("error when logging in user")
	ErrDeleteUser  = errors.New("error when deleting user by username")
	ErrUpdateUser  = errors.New("error when updating user")
	ErrSaveMessage = errors.New("failed to save message")
)
