package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/provider"
	"github.com/ekalin/fintrack/internal/store"
	"github.com/ekalin/fintrack/models"
)

// lookbackMonths is the size of the sync window: transactions are fetched
// for one calendar month ending today.
const lookbackMonths = 1

// fetchRetryBase and fetchMaxRetries bound the backoff applied to the
// provider's transaction fetch. The fetch is an idempotent read, so retrying
// it is safe; the public-token exchange is never retried.
const (
	fetchRetryBase  = 500 * time.Millisecond
	fetchMaxRetries = 2
)

// transactionService is the concrete implementation of TransactionService.
// It pulls the provider's transaction feed using the user's stored access
// credential, normalizes the records, and persists them idempotently.
type transactionService struct {
	userRepository        store.UserRepository
	transactionRepository store.TransactionRepository
	provider              provider.Client
	logger                *logger.Logger

	// now is indirected for window tests.
	now func() time.Time
}

// NewTransactionService constructs a TransactionService using the given
// repositories and provider client.
func NewTransactionService(userRepository store.UserRepository, transactionRepository store.TransactionRepository, providerClient provider.Client, logger *logger.Logger) TransactionService {
	return &transactionService{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		provider:              providerClient,
		logger:                logger,
		now:                   time.Now,
	}
}

// SyncTransactions fetches the user's transactions for the one-month window
// ending today, upserts them keyed on (user_id, transaction_id), and
// returns the stored window contents newest first.
//
// Failure modes:
//   - ErrAccountNotLinked when the user has no stored access credential.
//   - A wrapped provider.ErrProvider when the fetch fails after bounded
//     exponential backoff; nothing is persisted in that case.
//   - A wrapped store error when persistence fails after a successful
//     fetch.
//
// Because persistence is an upsert on the provider's natural key, calling
// this twice for the same window never duplicates stored records.
func (s *transactionService) SyncTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return nil, fmt.Errorf("user search by id failed: %w", err)
	}

	if user.AccessToken == "" {
		log.Error().Int64("id", userID).Msg("sync requested for unlinked account")
		return nil, ErrAccountNotLinked
	}

	endDate, startDate := s.syncWindow()

	fetched, err := s.fetchWithRetry(ctx, user.AccessToken, startDate, endDate)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("transaction fetch failed")
		return nil, fmt.Errorf("transaction fetch failed: %w", err)
	}

	mapped := make([]models.Transaction, 0, len(fetched))
	for _, t := range fetched {
		mapped = append(mapped, models.Transaction{
			UserID:        userID,
			TransactionID: t.TransactionID,
			Name:          t.Name,
			Amount:        t.Amount,
			Category:      t.Category,
			Date:          t.Date,
		})
	}

	if err = s.transactionRepository.UpsertTransactions(ctx, mapped); err != nil {
		log.Err(err).Int64("id", userID).Int("count", len(mapped)).Msg("persisting synced transactions failed")
		return nil, fmt.Errorf("persisting synced transactions failed: %w", err)
	}

	log.Info().Int64("id", userID).Int("count", len(mapped)).Msg("transactions synced")

	return s.transactionRepository.ListTransactions(ctx, userID, startDate, endDate)
}

// syncWindow returns today and the day one calendar month earlier, both as
// YYYY-MM-DD strings (inclusive bounds).
func (s *transactionService) syncWindow() (endDate, startDate string) {
	end := s.now()
	start := end.AddDate(0, -lookbackMonths, 0)

	return end.Format(time.DateOnly), start.Format(time.DateOnly)
}

// fetchWithRetry wraps the provider read in bounded exponential backoff.
func (s *transactionService) fetchWithRetry(ctx context.Context, accessToken, startDate, endDate string) ([]provider.Transaction, error) {
	var fetched []provider.Transaction

	backoff := retry.WithMaxRetries(fetchMaxRetries, retry.NewExponential(fetchRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		result, ferr := s.provider.GetTransactions(ctx, accessToken, startDate, endDate)
		if ferr != nil {
			return retry.RetryableError(ferr)
		}

		fetched = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fetched, nil
}
