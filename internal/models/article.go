package models

import (
	"encoding/json"
	"math"
	"time"
)

// Article represents a blog article
type Article struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Slug        string     `json:"slug" db:"slug"`
	AuthorID    int64      `json:"author_id" db:"author_id"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ArticleWithAuthor is an article joined with its author summary
type ArticleWithAuthor struct {
	Article
	Author AuthorSummary `json:"author"`
}

// CreateArticleRequest is the request body for POST /articles
type CreateArticleRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"published_at"`
}

// OptionalTime distinguishes an absent JSON field from an explicit null.
// Set is true whenever the field appeared in the payload; a null leaves
// Value nil.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UpdateArticleRequest is the request body for PUT /articles/:id.
// Absent fields are left unchanged; an explicit published_at null
// unpublishes the article.
type UpdateArticleRequest struct {
	Title       *string      `json:"title"`
	Content     *string      `json:"content"`
	PublishedAt OptionalTime `json:"published_at"`
}

// Sort directions for article listings
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Pagination defaults and bounds
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams holds validated pagination parameters for article listings
type ListParams struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Sort  string `form:"sort"`
}

// Offset returns the row offset for the current page
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the pagination block included in list responses
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the pagination block for a listing
func NewPagination(page, limit, total int) *Pagination {
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
