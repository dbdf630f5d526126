package models

// Request bodies accepted by the HTTP API.

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUsernameRequest is the body of POST /api/updateUsername.
// The acting user is always taken from the verified session token;
// any identity fields supplied by the client are ignored.
type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

// UpdatePasswordRequest is the body of POST /api/updatePassword.
// The acting user is always taken from the verified session token.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ExchangeTokenRequest is the body of POST /api/exchange_token.
type ExchangeTokenRequest struct {
	PublicToken string `json:"public_token"`
}
