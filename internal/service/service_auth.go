package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ekalin/fintrack/internal/config"
	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/store"
	"github.com/ekalin/fintrack/internal/utils"
	"github.com/ekalin/fintrack/internal/validators"
	"github.com/ekalin/fintrack/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create, look up, and
	// mutate users.
	userRepository store.UserRepository

	// validator checks user-supplied input before any work is done.
	validator validators.UserValidator

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The raw password is hashed with bcrypt (fresh salt per call) before
// anything reaches the repository; the plaintext is never stored.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username, email, or password is missing or
//     malformed.
//   - store.ErrEmailAlreadyExists if the email is already registered.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateRegistration(req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email and compares the supplied password with
// the stored bcrypt hash (constant-time). A missing account and a wrong
// password both yield ErrInvalidCredentials so that callers cannot probe
// which emails are registered.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateLogin(req); err != nil {
		log.Error().Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, req.Password) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UpdateUsername replaces the display name of the authenticated user.
// The identity always comes from the verified session; an email or ID
// supplied in a request body is never trusted.
func (a *authService) UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidateUsername(username); err != nil {
		log.Error().Err(err).Int64("id", userID).Msg("invalid username provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedUser, err := a.userRepository.UpdateUsername(ctx, userID, username)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("username update failed")
		return models.User{}, fmt.Errorf("username update failed: %w", err)
	}

	return updatedUser, nil
}

// UpdatePassword verifies oldPassword against the stored hash and, on
// success, swaps in a fresh bcrypt hash of newPassword.
//
// The swap is a compare-and-swap on the previously stored hash, so a
// concurrent password change surfaces as store.ErrPasswordConflict instead
// of silently losing one of the updates. Existing session tokens remain
// valid until their natural expiry.
func (a *authService) UpdatePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if err := a.validator.ValidatePasswordChange(oldPassword, newPassword); err != nil {
		log.Error().Err(err).Int64("id", userID).Msg("invalid password change data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return ErrInvalidCredentials
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, oldPassword) {
		log.Error().Int64("id", userID).Msg("wrong old password")
		return ErrInvalidCredentials
	}

	newHash, err := utils.HashPassword(newPassword, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, foundUser.PasswordHash, newHash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}
