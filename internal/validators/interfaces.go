// Package validators contains the input validation rules applied to API
// requests before they reach the service layer proper.
package validators

import (
	"github.com/ekalin/fintrack/models"
)

// UserValidator checks user-supplied identity and credential input.
type UserValidator interface {
	// ValidateRegistration checks the register request fields.
	ValidateRegistration(req models.RegisterRequest) error

	// ValidateLogin checks the login request fields.
	ValidateLogin(req models.LoginRequest) error

	// ValidateUsername checks a new display name.
	ValidateUsername(username string) error

	// ValidatePasswordChange checks an old/new password pair.
	ValidatePasswordChange(oldPassword, newPassword string) error
}
