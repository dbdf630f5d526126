package store

import (
	"github.com/ekalin/fintrack/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// handle. Constructed once at startup and injected into the service layer.
type Repositories struct {
	Users        UserRepository
	Transactions TransactionRepository
}

// NewRepositories wires all repositories to the given database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db, logger),
		Transactions: NewTransactionRepository(db, logger),
	}
}
