package validators

import "errors"

// Validation errors returned by [UserValidator]. All of them map to
// 400 Bad Request at the HTTP boundary.
var (
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrEmptyEmail    = errors.New("email must not be empty")
	ErrInvalidEmail  = errors.New("email is malformed")
	ErrEmptyPassword = errors.New("password must not be empty")
)
