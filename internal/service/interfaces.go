package service

import (
	"context"

	"github.com/ekalin/fintrack/models"
)

// AuthService gates every operation of the API: it registers accounts,
// verifies credentials, issues and parses session tokens, and mediates
// credential mutation.
type AuthService interface {
	// RegisterUser creates a new account with a salted bcrypt password hash.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the email/password pair and returns the matching user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw session token string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UpdateUsername replaces the display name of the session's user.
	UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error)

	// UpdatePassword verifies oldPassword and swaps in a fresh hash of
	// newPassword for the session's user.
	UpdatePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

// LinkService talks to the external provider to obtain a link token and to
// exchange a provisional public token for the durable access credential.
type LinkService interface {
	// CreateLinkSession mints a link token for the user. When sandbox
	// auto-approval is enabled it also mints a public token against the
	// test institution.
	CreateLinkSession(ctx context.Context, userID int64) (models.LinkSession, error)

	// ExchangePublicToken trades the provisional token for an access
	// credential and persists it on the user record. Nothing is persisted
	// when the exchange fails.
	ExchangePublicToken(ctx context.Context, userID int64, publicToken string) error
}

// TransactionService fetches the provider's transaction feed for a linked
// user, normalizes it, and persists it idempotently.
type TransactionService interface {
	// SyncTransactions pulls the one-month lookback window ending today,
	// upserts the records, and returns the stored window contents newest
	// first.
	SyncTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
}
