package models

// Response bodies produced by the HTTP API.

// MessageResponse is a generic confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a short, caller-safe error description.
// Internal error details are logged server-side and never echoed here.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is the body of a successful POST /api/login.
type LoginResponse struct {
	Token    string   `json:"token"`
	UserInfo UserInfo `json:"userInfo"`
}

// UserInfoResponse is the body of a successful POST /api/updateUsername.
type UserInfoResponse struct {
	Message  string   `json:"message"`
	UserInfo UserInfo `json:"userInfo"`
}

// LinkSession is the body of a successful POST /api/create_link_token.
//
// SandboxPublicToken is populated only when sandbox auto-approval is
// enabled in the provider configuration; in production mode the public token
// is produced by the client-side consent flow instead.
type LinkSession struct {
	LinkToken          string `json:"link_token"`
	SandboxPublicToken string `json:"sandbox_public_token"`
}
