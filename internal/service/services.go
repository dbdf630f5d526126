// Package service contains the application's business logic: credential and
// session management, account-link orchestration, and the transaction-sync
// engine. Services depend on repository and provider interfaces only, so
// every collaborator can be swapped in tests.
package service

import (
	"github.com/ekalin/fintrack/internal/config"
	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/provider"
	"github.com/ekalin/fintrack/internal/store"
)

// Services aggregates all service-layer components. Constructed once at
// startup and injected into the transport layer.
type Services struct {
	AuthService        AuthService
	LinkService        LinkService
	TransactionService TransactionService
}

// NewServices wires every service to the shared repositories, provider
// client, and configuration.
func NewServices(repos *store.Repositories, providerClient provider.Client, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(repos.Users, cfg.Auth, logger),
		LinkService:        NewLinkService(repos.Users, providerClient, cfg.Plaid, logger),
		TransactionService: NewTransactionService(repos.Users, repos.Transactions, providerClient, logger),
	}
}
