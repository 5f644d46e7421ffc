package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article and fills in the generated ID and timestamps
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (title, content, slug, author_id, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.Slug, article.AuthorID,
		article.PublishedAt, now,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
}

const articleWithAuthorColumns = `
	a.id, a.title, a.content, a.slug, a.author_id, a.published_at, a.created_at, a.updated_at,
	u.id, u.name, u.email
`

// GetByID retrieves an article joined with its author summary
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.ArticleWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		JOIN users u ON a.author_id = u.id
		WHERE a.id = $1
	`, articleWithAuthorColumns)

	article, err := scanArticleWithAuthor(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// List returns one page of author-joined articles ordered by creation time,
// plus the total article count
func (r *articleRepo) List(ctx context.Context, params models.ListParams) ([]*models.ArticleWithAuthor, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&total); err != nil {
		return nil, 0, err
	}

	order := "DESC"
	if strings.EqualFold(params.Sort, models.SortAsc) {
		order = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		JOIN users u ON a.author_id = u.id
		ORDER BY a.created_at %s
		LIMIT $1 OFFSET $2
	`, articleWithAuthorColumns, order)

	rows, err := r.db.QueryContext(ctx, query, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles := make([]*models.ArticleWithAuthor, 0, params.Limit)
	for rows.Next() {
		article, err := scanArticleWithAuthor(rows)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, article)
	}
	return articles, total, rows.Err()
}

// Update applies the given column values to the article. The author_id
// predicate keeps the statement atomic against concurrent deletes; the
// returned bool reports whether a row was updated.
func (r *articleRepo) Update(ctx context.Context, id, authorID int64, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		exists, err := r.IsAuthor(ctx, id, authorID)
		return exists, err
	}

	// Column names come from a fixed set in the service layer, never from
	// request input.
	sets := make([]string, 0, len(fields)+1)
	values := make([]interface{}, 0, len(fields)+2)
	i := 1
	for _, col := range []string{"title", "content", "slug", "published_at"} {
		if val, ok := fields[col]; ok {
			sets = append(sets, fmt.Sprintf("%s = $%d", col, i))
			values = append(values, val)
			i++
		}
	}
	sets = append(sets, "updated_at = NOW()")

	values = append(values, id, authorID)
	query := fmt.Sprintf(
		"UPDATE articles SET %s WHERE id = $%d AND author_id = $%d",
		strings.Join(sets, ", "), i, i+1,
	)

	result, err := r.db.ExecContext(ctx, query, values...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Delete removes the article if it belongs to the author
func (r *articleRepo) Delete(ctx context.Context, id, authorID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1 AND author_id = $2", id, authorID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// IsAuthor checks whether the article exists and belongs to the author
func (r *articleRepo) IsAuthor(ctx context.Context, id, authorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1 AND author_id = $2)",
		id, authorID,
	).Scan(&exists)
	return exists, err
}

// SlugExists checks if another article already uses the slug. A non-zero
// excludeID leaves the article's own row out of the check.
func (r *articleRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND id != $2)",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// scanner abstracts sql.Row and sql.Rows for shared scan logic
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanArticleWithAuthor(s scanner) (*models.ArticleWithAuthor, error) {
	var article models.ArticleWithAuthor
	var publishedAt sql.NullTime

	err := s.Scan(
		&article.ID, &article.Title, &article.Content, &article.Slug, &article.AuthorID,
		&publishedAt, &article.CreatedAt, &article.UpdatedAt,
		&article.Author.ID, &article.Author.Name, &article.Author.Email,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	return &article, nil
}
