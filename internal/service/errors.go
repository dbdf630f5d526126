package service

import "errors"

// Sentinel errors returned by the service layer. The HTTP handler maps them
// to stable status codes; callers match them with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request carries malformed or
	// missing input (empty credentials, empty public token, etc.).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned when login or password change fails
	// because no account matches the email or the password comparison
	// fails. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenCreationFailed is returned when signing a new session token
	// fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any session token that does
	// not pass verification: bad signature, expiry, wrong issuer, or a
	// malformed payload.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAccountNotLinked is returned when a transaction sync is requested
	// for a user that has not completed account linking. It distinguishes
	// "not linked" from "provider unreachable".
	ErrAccountNotLinked = errors.New("account is not linked")
)
