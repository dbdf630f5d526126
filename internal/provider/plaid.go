package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ekalin/fintrack/internal/logger"
)

const clientName = "Finance Tracker"

// plaidClient is the resty-backed implementation of [Client] for the Plaid
// REST API. Credentials are injected into every request body, which is how
// the Plaid API authenticates server-side callers.
type plaidClient struct {
	client               *resty.Client
	clientID             string
	secret               string
	sandboxInstitutionID string
	logger               *logger.Logger
}

// NewPlaidClient constructs a [Client] talking to the endpoint configured in
// cfg. Every call carries the configured timeout and propagates the caller's
// context, so request cancellation reaches in-flight provider I/O.
func NewPlaidClient(cfg Config, logger *logger.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sandbox.plaid.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.SandboxInstitutionID == "" {
		cfg.SandboxInstitutionID = "ins_1"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &plaidClient{
		client:               cli,
		clientID:             cfg.ClientID,
		secret:               cfg.Secret,
		sandboxInstitutionID: cfg.SandboxInstitutionID,
		logger:               logger,
	}
}

type linkTokenCreateRequest struct {
	ClientID     string        `json:"client_id"`
	Secret       string        `json:"secret"`
	ClientName   string        `json:"client_name"`
	Language     string        `json:"language"`
	CountryCodes []string      `json:"country_codes"`
	Products     []string      `json:"products"`
	User         linkTokenUser `json:"user"`
}

type linkTokenUser struct {
	ClientUserID string `json:"client_user_id"`
}

type linkTokenCreateResponse struct {
	LinkToken string `json:"link_token"`
}

// CreateLinkToken mints a link token scoped to the given user via
// POST /link/token/create.
func (p *plaidClient) CreateLinkToken(ctx context.Context, clientUserID string) (string, error) {
	body := linkTokenCreateRequest{
		ClientID:     p.clientID,
		Secret:       p.secret,
		ClientName:   clientName,
		Language:     "en",
		CountryCodes: []string{"US"},
		Products:     []string{"transactions"},
		User:         linkTokenUser{ClientUserID: clientUserID},
	}

	var out linkTokenCreateResponse
	if err := p.post(ctx, "/link/token/create", body, &out); err != nil {
		return "", err
	}

	return out.LinkToken, nil
}

type sandboxPublicTokenRequest struct {
	ClientID        string                    `json:"client_id"`
	Secret          string                    `json:"secret"`
	InstitutionID   string                    `json:"institution_id"`
	InitialProducts []string                  `json:"initial_products"`
	Options         sandboxPublicTokenOptions `json:"options"`
}

type sandboxPublicTokenOptions struct {
	OverrideUsername string `json:"override_username"`
	OverridePassword string `json:"override_password"`
}

type sandboxPublicTokenResponse struct {
	PublicToken string `json:"public_token"`
}

// CreateSandboxPublicToken mints a public token against the configured test
// institution via POST /sandbox/public_token/create, skipping the
// interactive consent flow.
func (p *plaidClient) CreateSandboxPublicToken(ctx context.Context) (string, error) {
	body := sandboxPublicTokenRequest{
		ClientID:        p.clientID,
		Secret:          p.secret,
		InstitutionID:   p.sandboxInstitutionID,
		InitialProducts: []string{"transactions"},
		Options: sandboxPublicTokenOptions{
			OverrideUsername: "user_good",
			OverridePassword: "pass_good",
		},
	}

	var out sandboxPublicTokenResponse
	if err := p.post(ctx, "/sandbox/public_token/create", body, &out); err != nil {
		return "", err
	}

	return out.PublicToken, nil
}

type publicTokenExchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

type publicTokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

// ExchangePublicToken trades the provisional public token for the durable
// access token via POST /item/public_token/exchange. This call may not be
// idempotent upstream and is therefore never retried.
func (p *plaidClient) ExchangePublicToken(ctx context.Context, publicToken string) (string, error) {
	body := publicTokenExchangeRequest{
		ClientID:    p.clientID,
		Secret:      p.secret,
		PublicToken: publicToken,
	}

	var out publicTokenExchangeResponse
	if err := p.post(ctx, "/item/public_token/exchange", body, &out); err != nil {
		return "", err
	}

	return out.AccessToken, nil
}

type transactionsGetRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type transactionsGetResponse struct {
	Transactions      []Transaction `json:"transactions"`
	TotalTransactions int           `json:"total_transactions"`
}

// GetTransactions fetches the account's transactions within the inclusive
// [startDate, endDate] window via POST /transactions/get.
func (p *plaidClient) GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]Transaction, error) {
	body := transactionsGetRequest{
		ClientID:    p.clientID,
		Secret:      p.secret,
		AccessToken: accessToken,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	var out transactionsGetResponse
	if err := p.post(ctx, "/transactions/get", body, &out); err != nil {
		return nil, err
	}

	return out.Transactions, nil
}

// post issues one provider call and decodes the 2xx response body into out.
// Transport failures and non-2xx responses are wrapped into [ErrProvider];
// the upstream error body is logged but only its provider error code is
// carried in the returned error.
func (p *plaidClient) post(ctx context.Context, path string, body, out any) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", ErrProvider, path, err)
	}

	if err = p.mapProviderError(path, resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrProvider, path, err)
	}

	return nil
}

// plaidAPIError is the error envelope Plaid returns with non-2xx statuses.
type plaidAPIError struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

func (p *plaidClient) mapProviderError(path string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var apiErr plaidAPIError
	_ = json.Unmarshal(resp.Body(), &apiErr)

	p.logger.Error().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("error_type", apiErr.ErrorType).
		Str("error_code", apiErr.ErrorCode).
		Str("error_message", apiErr.ErrorMessage).
		Msg("provider call failed")

	if apiErr.ErrorCode != "" {
		return fmt.Errorf("%w: %s: http %d (%s)", ErrProvider, path, resp.StatusCode(), apiErr.ErrorCode)
	}

	return fmt.Errorf("%w: %s: http %d", ErrProvider, path, resp.StatusCode())
}
