// Package auth provides JWT issuance/verification and password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blog-platform-api/internal/config"
)

// Token verification failures
var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrWrongTokenType = errors.New("invalid token type")
)

// TokenType discriminates access tokens from refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the identity claims embedded in every issued token
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64     `json:"uid"`
	Email     string    `json:"email"`
	TokenType TokenType `json:"token_type"`
}

// TokenManager issues and verifies signed tokens. Access and refresh tokens
// share a secret; the embedded type claim keeps them from being interchanged.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager from JWT configuration
func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}
}

// IssueAccess produces a short-lived token authorizing API calls
func (m *TokenManager) IssueAccess(userID int64, email string) (string, error) {
	return m.issue(userID, email, TokenTypeAccess, m.accessTTL)
}

// IssueRefresh produces a long-lived token exchangeable for a new access token
func (m *TokenManager) IssueRefresh(userID int64, email string) (string, error) {
	return m.issue(userID, email, TokenTypeRefresh, m.refreshTTL)
}

func (m *TokenManager) issue(userID int64, email string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
	})
	return token.SignedString(m.secret)
}

// Verify validates the signature and expiry of a token and returns its claims
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefresh validates a token and additionally requires the refresh type
func (m *TokenManager) VerifyRefresh(tokenString string) (*Claims, error) {
	claims, err := m.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
