package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/blog-platform-api/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository
type MockUserRepository struct {
	Users       map[int64]*models.User
	EmailToUser map[string]*models.User
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[int64]*models.User),
		EmailToUser: make(map[string]*models.User),
		NextID:      1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	user.ID = m.NextID
	m.NextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.EmailToUser[email], nil
}

// MockArticleRepository is an in-memory implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[int64]*models.Article
	Authors     map[int64]models.AuthorSummary
	NextID      int64
	CreateError error
	UpdateError error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int64]*models.Article),
		Authors:  make(map[int64]models.AuthorSummary),
		NextID:   1,
	}
}

// SetAuthor registers the author summary joined into article reads
func (m *MockArticleRepository) SetAuthor(author models.AuthorSummary) {
	m.Authors[author.ID] = author
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	article.ID = m.NextID
	m.NextID++
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithAuthor, error) {
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	return m.withAuthor(article), nil
}

func (m *MockArticleRepository) List(ctx context.Context, params models.ListParams) ([]*models.ArticleWithAuthor, int, error) {
	all := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		if params.Sort == models.SortAsc {
			return all[i].CreatedAt.Before(all[j].CreatedAt) ||
				(all[i].CreatedAt.Equal(all[j].CreatedAt) && all[i].ID < all[j].ID)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt) ||
			(all[i].CreatedAt.Equal(all[j].CreatedAt) && all[i].ID > all[j].ID)
	})

	total := len(all)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	page := make([]*models.ArticleWithAuthor, 0, end-start)
	for _, a := range all[start:end] {
		page = append(page, m.withAuthor(a))
	}
	return page, total, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, id, authorID int64, fields map[string]interface{}) (bool, error) {
	if m.UpdateError != nil {
		return false, m.UpdateError
	}
	article, ok := m.Articles[id]
	if !ok || article.AuthorID != authorID {
		return false, nil
	}
	if title, ok := fields["title"]; ok {
		article.Title = title.(string)
	}
	if content, ok := fields["content"]; ok {
		article.Content = content.(string)
	}
	if slug, ok := fields["slug"]; ok {
		article.Slug = slug.(string)
	}
	if publishedAt, ok := fields["published_at"]; ok {
		article.PublishedAt = publishedAt.(*time.Time)
	}
	article.UpdatedAt = time.Now()
	return true, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id, authorID int64) (bool, error) {
	article, ok := m.Articles[id]
	if !ok || article.AuthorID != authorID {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

func (m *MockArticleRepository) IsAuthor(ctx context.Context, id, authorID int64) (bool, error) {
	article, ok := m.Articles[id]
	return ok && article.AuthorID == authorID, nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	for _, a := range m.Articles {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockArticleRepository) withAuthor(article *models.Article) *models.ArticleWithAuthor {
	copied := *article
	return &models.ArticleWithAuthor{
		Article: copied,
		Author:  m.Authors[article.AuthorID],
	}
}
