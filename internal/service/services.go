package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/auth"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
)

// AuthService defines the interface for account and token operations
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	OAuthLogin(ctx context.Context, email, name string) (*models.AuthResult, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	Create(ctx context.Context, authorID int64, req *models.CreateArticleRequest) (*models.ArticleWithAuthor, error)
	GetByID(ctx context.Context, id int64) (*models.ArticleWithAuthor, error)
	List(ctx context.Context, params models.ListParams) ([]*models.ArticleWithAuthor, *models.Pagination, error)
	Update(ctx context.Context, id, authorID int64, req *models.UpdateArticleRequest) (*models.ArticleWithAuthor, error)
	Delete(ctx context.Context, id, authorID int64) error
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Article ArticleService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, tokens *auth.TokenManager, log zerolog.Logger) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, tokens, log),
		Article: NewArticleService(repos.Article, log),
	}
}
