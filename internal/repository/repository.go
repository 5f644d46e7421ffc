package repository

import (
	"context"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id int64) (*models.ArticleWithAuthor, error)
	List(ctx context.Context, params models.ListParams) ([]*models.ArticleWithAuthor, int, error)
	Update(ctx context.Context, id, authorID int64, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id, authorID int64) (bool, error)
	IsAuthor(ctx context.Context, id, authorID int64) (bool, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Article ArticleRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
	}
}
