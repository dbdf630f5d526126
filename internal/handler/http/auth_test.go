package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekalin/fintrack/internal/service"
	"github.com/ekalin/fintrack/internal/store"
	"github.com/ekalin/fintrack/models"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "alice@example.com", req.Email)
			assert.Equal(t, "pw1", req.Password)
			return models.User{UserID: 42, Username: req.Username, Email: req.Email}, nil
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/register",
		`{"username":"alice","email":"alice@example.com","password":"pw1"}`, false)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON[models.MessageResponse](t, rec)
	assert.Equal(t, "User registered", resp.Message)
}

func TestRegister_InvalidJSON(t *testing.T) {
	handler := newTestHandler(t, &service.Services{})

	rec := doRequest(t, handler, http.MethodPost, "/api/register", `{not json`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: email must not be empty", service.ErrInvalidDataProvided)
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/register",
		`{"username":"alice","password":"pw1"}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeJSON[models.ErrorResponse](t, rec)
	assert.NotEmpty(t, resp.Error)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
			return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists)
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/register",
		`{"username":"alice","email":"taken@example.com","password":"pw1"}`, false)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			return models.User{UserID: 42, Username: "alice", Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(42), user.UserID)
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"pw1"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.LoginResponse](t, rec)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "alice", resp.UserInfo.Username)
	assert.Equal(t, "alice@example.com", resp.UserInfo.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"wrong"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeJSON[models.ErrorResponse](t, rec)
	assert.Equal(t, "Invalid credentials", resp.Error)
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 42, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"pw1"}`, false)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// updateUsername
// ─────────────────────────────────────────────

func TestUpdateUsername_Success(t *testing.T) {
	auth := &mockAuthService{
		updateUsernameFn: func(_ context.Context, userID int64, username string) (models.User, error) {
			// identity comes from the session token, not the body
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "bob", username)
			return models.User{UserID: userID, Username: username, Email: "alice@example.com"}, nil
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/updateUsername",
		`{"username":"bob"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.UserInfoResponse](t, rec)
	assert.Equal(t, "Successfully updated username", resp.Message)
	assert.Equal(t, "bob", resp.UserInfo.Username)
}

func TestUpdateUsername_Unauthorized(t *testing.T) {
	handler := newTestHandler(t, &service.Services{})

	rec := doRequest(t, handler, http.MethodPost, "/api/updateUsername",
		`{"username":"bob"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateUsername_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		updateUsernameFn: func(_ context.Context, _ int64, _ string) (models.User, error) {
			return models.User{}, fmt.Errorf("username update failed: %w", store.ErrNoUserWasFound)
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/updateUsername",
		`{"username":"bob"}`, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// updatePassword
// ─────────────────────────────────────────────

func TestUpdatePassword_Success(t *testing.T) {
	auth := &mockAuthService{
		updatePasswordFn: func(_ context.Context, userID int64, oldPassword, newPassword string) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "old-pw", oldPassword)
			assert.Equal(t, "new-pw", newPassword)
			return nil
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/updatePassword",
		`{"oldPassword":"old-pw","newPassword":"new-pw"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.MessageResponse](t, rec)
	assert.Equal(t, "Successfully updated password", resp.Message)
}

func TestUpdatePassword_WrongOldPassword(t *testing.T) {
	auth := &mockAuthService{
		updatePasswordFn: func(_ context.Context, _ int64, _, _ string) error {
			return service.ErrInvalidCredentials
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/updatePassword",
		`{"oldPassword":"wrong","newPassword":"new-pw"}`, true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePassword_ConcurrentChange(t *testing.T) {
	auth := &mockAuthService{
		updatePasswordFn: func(_ context.Context, _ int64, _, _ string) error {
			return fmt.Errorf("password update failed: %w", store.ErrPasswordConflict)
		},
	}
	handler := newTestHandler(t, &service.Services{AuthService: auth})

	rec := doRequest(t, handler, http.MethodPost, "/api/updatePassword",
		`{"oldPassword":"old-pw","newPassword":"new-pw"}`, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
