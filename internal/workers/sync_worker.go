package workers

import (
	"context"
	"time"

	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/service"
	"github.com/ekalin/fintrack/internal/store"
)

// syncCycleTimeout bounds a single refresh pass over all linked accounts.
const syncCycleTimeout = 5 * time.Minute

// syncWorker periodically refreshes transactions for every user with a
// linked bank account, so that data stays warm between interactive requests.
type syncWorker struct {
	transactions service.TransactionService
	users        store.UserRepository
	interval     time.Duration
	logger       *logger.Logger
	done         chan struct{}
}

func newSyncWorker(transactions service.TransactionService, users store.UserRepository, interval time.Duration, logger *logger.Logger) *syncWorker {
	return &syncWorker{
		transactions: transactions,
		users:        users,
		interval:     interval,
		logger:       logger,
		done:         make(chan struct{}),
	}
}

// Run starts the periodic refresh loop in its own goroutine and returns
// immediately. The loop runs until Stop is called.
func (w *syncWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting transaction sync worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.done:
				w.logger.Info().Msg("transaction sync worker stopped")
				return
			case <-ticker.C:
				w.syncAll()
			}
		}
	}()
}

// Stop signals the refresh loop to exit after its current cycle.
func (w *syncWorker) Stop() {
	close(w.done)
}

func (w *syncWorker) syncAll() {
	ctx, cancel := context.WithTimeout(context.Background(), syncCycleTimeout)
	defer cancel()

	userIDs, err := w.users.ListLinkedUserIDs(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("listing linked users failed")
		return
	}

	for _, userID := range userIDs {
		if _, err := w.transactions.SyncTransactions(ctx, userID); err != nil {
			// One failing account must not block the rest of the cycle.
			w.logger.Error().Err(err).Int64("id", userID).Msg("background transaction sync failed")
			continue
		}
	}

	w.logger.Debug().Int("users", len(userIDs)).Msg("background transaction sync cycle finished")
}
