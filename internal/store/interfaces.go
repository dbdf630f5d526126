package store

import (
	"context"

	"github.com/ekalin/fintrack/models"
)

// UserRepository is the persistence abstraction for user identity records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Fails with ErrEmailAlreadyExists when the email is
	// already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by email. Fails with ErrNoUserWasFound
	// when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by internal identifier. Fails with
	// ErrNoUserWasFound when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUsername replaces the display name of the user and returns the
	// updated record.
	UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error)

	// UpdatePassword swaps the stored password hash. The update is a
	// compare-and-swap against oldHash: ErrPasswordConflict is returned when
	// the stored hash no longer matches (concurrent change).
	UpdatePassword(ctx context.Context, userID int64, oldHash, newHash string) error

	// UpdateAccessToken stores the provider access credential on the user
	// record, overwriting any previous value (re-linking semantics).
	UpdateAccessToken(ctx context.Context, userID int64, accessToken string) error

	// ListLinkedUserIDs returns the IDs of all users that have completed
	// account linking. Used by the background sync worker.
	ListLinkedUserIDs(ctx context.Context) ([]int64, error)
}

// TransactionRepository is the persistence abstraction for transaction
// records.
type TransactionRepository interface {
	// UpsertTransactions persists the batch keyed on
	// (user_id, transaction_id); records that already exist are refreshed
	// in place, so repeated syncs of the same window never duplicate rows.
	UpsertTransactions(ctx context.Context, transactions []models.Transaction) error

	// ListTransactions returns the stored records of the user whose date
	// falls within [startDate, endDate] (inclusive, YYYY-MM-DD), newest
	// first. Empty bounds are not applied.
	ListTransactions(ctx context.Context, userID int64, startDate, endDate string) ([]models.Transaction, error)
}
