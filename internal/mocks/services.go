package mocks

import (
	"context"

	"github.com/blog-platform-api/internal/models"
)

// MockAuthService is a configurable implementation of AuthService
type MockAuthService struct {
	SignupFunc     func(ctx context.Context, req *models.SignupRequest) (*models.AuthResult, error)
	LoginFunc      func(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error)
	RefreshFunc    func(ctx context.Context, refreshToken string) (string, error)
	OAuthLoginFunc func(ctx context.Context, email, name string) (*models.AuthResult, error)
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResult, error) {
	return m.SignupFunc(ctx, req)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error) {
	return m.LoginFunc(ctx, req)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return m.RefreshFunc(ctx, refreshToken)
}

func (m *MockAuthService) OAuthLogin(ctx context.Context, email, name string) (*models.AuthResult, error) {
	return m.OAuthLoginFunc(ctx, email, name)
}

// MockArticleService is a configurable implementation of ArticleService
type MockArticleService struct {
	CreateFunc  func(ctx context.Context, authorID int64, req *models.CreateArticleRequest) (*models.ArticleWithAuthor, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.ArticleWithAuthor, error)
	ListFunc    func(ctx context.Context, params models.ListParams) ([]*models.ArticleWithAuthor, *models.Pagination, error)
	UpdateFunc  func(ctx context.Context, id, authorID int64, req *models.UpdateArticleRequest) (*models.ArticleWithAuthor, error)
	DeleteFunc  func(ctx context.Context, id, authorID int64) error
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{}
}

func (m *MockArticleService) Create(ctx context.Context, authorID int64, req *models.CreateArticleRequest) (*models.ArticleWithAuthor, error) {
	return m.CreateFunc(ctx, authorID, req)
}

func (m *MockArticleService) GetByID(ctx context.Context, id int64) (*models.ArticleWithAuthor, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockArticleService) List(ctx context.Context, params models.ListParams) ([]*models.ArticleWithAuthor, *models.Pagination, error) {
	return m.ListFunc(ctx, params)
}

func (m *MockArticleService) Update(ctx context.Context, id, authorID int64, req *models.UpdateArticleRequest) (*models.ArticleWithAuthor, error) {
	return m.UpdateFunc(ctx, id, authorID, req)
}

func (m *MockArticleService) Delete(ctx context.Context, id, authorID int64) error {
	return m.DeleteFunc(ctx, id, authorID)
}
