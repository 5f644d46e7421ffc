package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/apperrors"
	"github.com/blog-platform-api/internal/auth"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, log zerolog.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log.With().Str("service", "auth").Logger(),
	}
}

// Signup registers a new account and issues both tokens
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResult, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("user with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique constraint is the final arbiter under concurrent signups
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("user with this email already exists")
		}
		return nil, apperrors.Internal(err)
	}

	s.log.Info().Int64("user_id", user.ID).Msg("User registered")
	return s.issueTokens(user)
}

// Login authenticates a password account and issues both tokens
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	// Same message for unknown email and wrong password so login failures
	// do not reveal whether an account exists
	if user == nil {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}
	if user.IsOAuthOnly() {
		return nil, apperrors.Unauthenticated("please use OAuth to login")
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.Unauthenticated("invalid email or password")
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself is not rotated.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrWrongTokenType) {
			return "", apperrors.Unauthenticated("invalid token type")
		}
		return "", apperrors.Unauthenticated("invalid or expired token")
	}

	accessToken, err := s.tokens.IssueAccess(claims.UserID, claims.Email)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return accessToken, nil
}

// OAuthLogin finds or creates the account for an OAuth identity and issues
// both tokens. Accounts created here carry the sentinel hash and cannot log
// in with a password.
func (s *authService) OAuthLogin(ctx context.Context, email, name string) (*models.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		user = &models.User{
			Email:        email,
			PasswordHash: models.OAuthSentinelHash,
			Name:         name,
		}
		if err := s.users.Create(ctx, user); err != nil {
			if repository.IsUniqueViolation(err) {
				// Lost a race with a concurrent first login; reuse the row
				if user, err = s.users.GetByEmail(ctx, email); err != nil || user == nil {
					return nil, apperrors.Internal(err)
				}
			} else {
				return nil, apperrors.Internal(err)
			}
		} else {
			s.log.Info().Int64("user_id", user.ID).Msg("User created via OAuth login")
		}
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *models.User) (*models.AuthResult, error) {
	accessToken, err := s.tokens.IssueAccess(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	refreshToken, err := s.tokens.IssueRefresh(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &models.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
