package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/models"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. It persists normalized provider transactions in
// the "transactions" table, keyed on (user_id, transaction_id).
type transactionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransactionRepository constructs a [TransactionRepository] backed by the
// provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertTransactions persists the batch inside a single database transaction.
// Conflicts on (user_id, transaction_id) refresh the existing row instead of
// inserting a duplicate, which makes repeated syncs of the same window
// idempotent.
//
// A failed batch is retried once when the error classifier reports the
// driver error as transient (connection loss, deadlock, serialization
// failure).
func (r *transactionRepository) UpsertTransactions(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	err := r.upsertBatch(ctx, transactions)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().Err(err).Msg("retrying transaction batch after transient DB error")
		err = r.upsertBatch(ctx, transactions)
	}

	return err
}

func (r *transactionRepository) upsertBatch(ctx context.Context, transactions []models.Transaction) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.upsertBatch").Msg("error: begin failed")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, t := range transactions {
		category, err := json.Marshal(t.Category)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, upsertTransaction, t.UserID, t.TransactionID, t.Name, t.Amount, category, t.Date); err != nil {
			log.Err(err).
				Str("func", "*transactionRepository.upsertBatch").
				Str("transaction_id", t.TransactionID).
				Msg("error: upsert failed")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListTransactions returns the stored records of one user within the
// inclusive [startDate, endDate] window, newest first. Empty bounds are
// skipped, so two empty strings list the full history.
func (r *transactionRepository) ListTransactions(ctx context.Context, userID int64, startDate, endDate string) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListTransactions").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var category []byte
		var date time.Time

		if err = rows.Scan(&t.UserID, &t.TransactionID, &t.Name, &t.Amount, &category, &date); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(category) > 0 {
			if err = json.Unmarshal(category, &t.Category); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
		}
		t.Date = date.Format(time.DateOnly)

		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
