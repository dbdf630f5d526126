package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/internal/service"
	"github.com/ekalin/fintrack/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	updateUsernameFn func(ctx context.Context, userID int64, username string) (models.User, error)
	updatePasswordFn func(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{SignedString: tokenString, UserID: 42}, nil
}

func (m *mockAuthService) UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error) {
	return m.updateUsernameFn(ctx, userID, username)
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	return m.updatePasswordFn(ctx, userID, oldPassword, newPassword)
}

// ─────────────────────────────────────────────
// Mock LinkService
// ─────────────────────────────────────────────

type mockLinkService struct {
	createLinkSessionFn   func(ctx context.Context, userID int64) (models.LinkSession, error)
	exchangePublicTokenFn func(ctx context.Context, userID int64, publicToken string) error
}

func (m *mockLinkService) CreateLinkSession(ctx context.Context, userID int64) (models.LinkSession, error) {
	return m.createLinkSessionFn(ctx, userID)
}

func (m *mockLinkService) ExchangePublicToken(ctx context.Context, userID int64, publicToken string) error {
	return m.exchangePublicTokenFn(ctx, userID, publicToken)
}

// ─────────────────────────────────────────────
// Mock TransactionService
// ─────────────────────────────────────────────

type mockTransactionService struct {
	syncTransactionsFn func(ctx context.Context, userID int64) ([]models.Transaction, error)
}

func (m *mockTransactionService) SyncTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return m.syncTransactionsFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// doRequest runs one request through the full router, so middleware is
// exercised the same way it is in production.
func doRequest(t *testing.T, handler http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer signed.jwt.token")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func newRequestWithHeader(method, target, header, value string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(header, value)
	return req, httptest.NewRecorder()
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
