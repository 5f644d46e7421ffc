package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/apperrors"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/pkg/slugify"
)

// maxSlugAttempts caps the numbered-suffix retry loop before falling back to
// a random suffix, so pathological collision sequences still terminate
const maxSlugAttempts = 50

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func NewArticleService(articles repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: articles,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// Create persists a new article with a unique slug derived from the title and
// returns it joined with the author summary
func (s *articleService) Create(ctx context.Context, authorID int64, req *models.CreateArticleRequest) (*models.ArticleWithAuthor, error) {
	slug, err := s.uniqueSlug(ctx, req.Title, 0)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		Slug:        slug,
		AuthorID:    authorID,
		PublishedAt: req.PublishedAt,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		// A concurrent creation of the same title can still win the slug;
		// the unique constraint surfaces it here
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("article slug already exists")
		}
		return nil, apperrors.Internal(err)
	}

	s.log.Info().Int64("article_id", article.ID).Str("slug", article.Slug).Msg("Article created")
	return s.GetByID(ctx, article.ID)
}

// GetByID retrieves an article joined with its author summary
func (s *articleService) GetByID(ctx context.Context, id int64) (*models.ArticleWithAuthor, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if article == nil {
		return nil, apperrors.NotFound("article not found")
	}
	return article, nil
}

// List returns one page of articles ordered by creation time plus the
// pagination block
func (s *articleService) List(ctx context.Context, params models.ListParams) ([]*models.ArticleWithAuthor, *models.Pagination, error) {
	articles, total, err := s.articles.List(ctx, params)
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	return articles, models.NewPagination(params.Page, params.Limit, total), nil
}

// Update applies the supplied fields to the article. The ownership check runs
// before existence is confirmed, so a nonexistent id and someone else's
// article both surface as Forbidden; existence is not revealed to non-authors.
func (s *articleService) Update(ctx context.Context, id, authorID int64, req *models.UpdateArticleRequest) (*models.ArticleWithAuthor, error) {
	isAuthor, err := s.articles.IsAuthor(ctx, id, authorID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if !isAuthor {
		return nil, apperrors.Forbidden("you are not the author of this article")
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
		slug, err := s.uniqueSlug(ctx, *req.Title, id)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		fields["slug"] = slug
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.PublishedAt.Set {
		// A nil value here is an explicit null, which unpublishes
		fields["published_at"] = req.PublishedAt.Value
	}

	updated, err := s.articles.Update(ctx, id, authorID, fields)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("article slug already exists")
		}
		return nil, apperrors.Internal(err)
	}
	// The row can vanish between the ownership check and the update
	if !updated {
		return nil, apperrors.NotFound("article not found")
	}

	return s.GetByID(ctx, id)
}

// Delete removes the article after the same ownership gate as Update
func (s *articleService) Delete(ctx context.Context, id, authorID int64) error {
	isAuthor, err := s.articles.IsAuthor(ctx, id, authorID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !isAuthor {
		return apperrors.Forbidden("you are not the author of this article")
	}

	deleted, err := s.articles.Delete(ctx, id, authorID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !deleted {
		return apperrors.NotFound("article not found")
	}

	s.log.Info().Int64("article_id", id).Msg("Article deleted")
	return nil
}

// uniqueSlug derives a slug from the title and appends -1, -2, ... until no
// other article uses it. excludeID leaves the article's own row out of the
// collision check on title updates.
func (s *articleService) uniqueSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	base := slugify.Make(title)
	candidate := base

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		exists, err := s.articles.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = slugify.WithSuffix(base, attempt)
	}

	// Numbered suffixes exhausted; a random suffix guarantees termination
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return base + "-" + suffix, nil
}
