package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, the stored password hash, and the access
// token issued by the financial-data provider after account linking.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the display name of the user. Mutable via the profile API.
	Username string `json:"username"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a bcrypt digest, never plaintext, and is never
	// serialized into any API response.
	PasswordHash string `json:"-"`

	// AccessToken is the durable credential issued by the financial-data
	// provider after a successful public-token exchange. Empty until the
	// account is linked. Never serialized into any API response.
	AccessToken string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// PublicInfo returns the non-secret profile fields of the user suitable
// for inclusion in API responses.
func (u User) PublicInfo() UserInfo {
	return UserInfo{
		Username: u.Username,
		Email:    u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserInfo is the public projection of a User returned by the API.
type UserInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
