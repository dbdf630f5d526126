// Package provider implements the client for the external financial-data
// provider (Plaid-style REST API). The client is constructed once at startup
// and injected into the services that need it; it holds no process-global
// state.
package provider

import (
	"context"
	"time"
)

// Client is the interface the rest of the application uses to talk to the
// financial-data provider. It covers the three provider operations the
// linking and sync pipeline needs, plus the sandbox consent shortcut.
type Client interface {
	// CreateLinkToken mints a short-lived link token scoped to the given
	// user. The token parameterises the client-side consent flow.
	CreateLinkToken(ctx context.Context, clientUserID string) (string, error)

	// CreateSandboxPublicToken mints a public token directly against a test
	// institution, bypassing the interactive consent flow. Only meaningful
	// against the sandbox environment.
	CreateSandboxPublicToken(ctx context.Context) (string, error)

	// ExchangePublicToken exchanges a provisional public token for the
	// durable access token used to fetch the user's financial data.
	ExchangePublicToken(ctx context.Context, publicToken string) (string, error)

	// GetTransactions fetches all transactions of the credential's account
	// within [startDate, endDate] (inclusive calendar dates, YYYY-MM-DD).
	GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]Transaction, error)
}

// Transaction is a single record of the provider's transaction feed, as
// delivered on the wire. Amount sign convention and category taxonomy are
// provider-defined and passed through untouched.
type Transaction struct {
	TransactionID string   `json:"transaction_id"`
	Name          string   `json:"name"`
	Amount        float64  `json:"amount"`
	Category      []string `json:"category"`
	Date          string   `json:"date"`
}

// Config carries the connection settings and credentials of the provider
// client.
type Config struct {
	// BaseURL is the provider API endpoint, e.g. https://sandbox.plaid.com.
	BaseURL string

	// ClientID and Secret authenticate every API call.
	ClientID string
	Secret   string

	// Timeout bounds each outbound call.
	Timeout time.Duration

	// SandboxInstitutionID is the test institution used by
	// CreateSandboxPublicToken.
	SandboxInstitutionID string
}
