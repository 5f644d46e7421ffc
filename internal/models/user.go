package models

import (
	"time"
)

// OAuthSentinelHash is stored in place of a bcrypt hash for accounts created
// through an OAuth provider. Such accounts have no local password and cannot
// log in with one.
const OAuthSentinelHash = "oauth_user_no_password"

// User represents a registered account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsOAuthOnly reports whether the account was created via an OAuth provider
// and has no local password
func (u *User) IsOAuthOnly() bool {
	return u.PasswordHash == OAuthSentinelHash
}

// AuthorSummary is the subset of user fields embedded in article responses
type AuthorSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResult is returned by signup, login and OAuth login
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SignupRequest is the request body for POST /auth/signup
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the request body for POST /auth/refresh
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
