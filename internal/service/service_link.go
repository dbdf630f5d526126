package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ekalin/fintrack/internal/config"
	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/provider"
	"github.com/ekalin/fintrack/internal/store"
	"github.com/ekalin/fintrack/models"
)

// linkService is the concrete implementation of LinkService. It orchestrates
// the account-linking flow against the injected provider client and persists
// the resulting access credential through the UserRepository.
type linkService struct {
	userRepository store.UserRepository
	provider       provider.Client

	// sandboxAutoApprove selects the sandbox consent shortcut at startup.
	// The shortcut never runs when this flag is off, keeping test-only
	// behavior out of the production path.
	sandboxAutoApprove bool

	logger *logger.Logger
}

// NewLinkService constructs a LinkService using the given provider client
// and repository. The sandbox shortcut is chosen once, from configuration.
func NewLinkService(userRepository store.UserRepository, providerClient provider.Client, cfg config.Plaid, logger *logger.Logger) LinkService {
	return &linkService{
		userRepository:     userRepository,
		provider:           providerClient,
		sandboxAutoApprove: cfg.SandboxAutoApprove,
		logger:             logger,
	}
}

// CreateLinkSession mints a link token scoped to the user. With sandbox
// auto-approval enabled it additionally mints a public token against the
// test institution so that clients can skip the interactive consent flow.
//
// No local state is mutated; a provider failure surfaces as a wrapped
// provider.ErrProvider.
func (l *linkService) CreateLinkSession(ctx context.Context, userID int64) (models.LinkSession, error) {
	log := logger.FromContext(ctx)

	linkToken, err := l.provider.CreateLinkToken(ctx, strconv.FormatInt(userID, 10))
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("link token creation failed")
		return models.LinkSession{}, fmt.Errorf("link token creation failed: %w", err)
	}

	session := models.LinkSession{LinkToken: linkToken}

	if l.sandboxAutoApprove {
		publicToken, err := l.provider.CreateSandboxPublicToken(ctx)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("sandbox public token creation failed")
			return models.LinkSession{}, fmt.Errorf("sandbox public token creation failed: %w", err)
		}
		session.SandboxPublicToken = publicToken
	}

	return session, nil
}

// ExchangePublicToken trades the provisional public token for the durable
// access credential and stores it on the user record, overwriting any prior
// credential (re-linking semantics).
//
// The exchange happens strictly before persistence, so a provider failure
// leaves the user record unchanged.
func (l *linkService) ExchangePublicToken(ctx context.Context, userID int64, publicToken string) error {
	log := logger.FromContext(ctx)

	if publicToken == "" {
		log.Error().Int64("id", userID).Msg("empty public token provided")
		return fmt.Errorf("%w: public token must not be empty", ErrInvalidDataProvided)
	}

	accessToken, err := l.provider.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("public token exchange failed")
		return fmt.Errorf("public token exchange failed: %w", err)
	}

	if err = l.userRepository.UpdateAccessToken(ctx, userID, accessToken); err != nil {
		log.Err(err).Int64("id", userID).Msg("storing access token failed")
		return fmt.Errorf("storing access token failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("account linked")

	return nil
}
