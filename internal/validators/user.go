package validators

import (
	"strings"

	"github.com/ekalin/fintrack/models"
)

// userValidator implements [UserValidator].
//
// The rules are intentionally minimal: fields must be present and the email
// must have a plausible shape. Anything stricter (password policies, MX
// checks) is out of scope.
type userValidator struct{}

// NewUserValidator constructs a [UserValidator] ready for use.
func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegistration(req models.RegisterRequest) error {
	if req.Username == "" {
		return ErrEmptyUsername
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

func (v *userValidator) ValidateLogin(req models.LoginRequest) error {
	if req.Email == "" {
		return ErrEmptyEmail
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

func (v *userValidator) ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}

	return nil
}

func (v *userValidator) ValidatePasswordChange(oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}

	return nil
}
