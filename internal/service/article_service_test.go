package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/blog-platform-api/internal/apperrors"
	"github.com/blog-platform-api/internal/mocks"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
)

func setupArticleService() (service.ArticleService, *mocks.MockArticleRepository) {
	articles := mocks.NewMockArticleRepository()
	articles.SetAuthor(models.AuthorSummary{ID: 1, Name: "Alice", Email: "alice@example.com"})
	articles.SetAuthor(models.AuthorSummary{ID: 2, Name: "Bob", Email: "bob@example.com"})
	svc := service.NewArticleService(articles, zerolog.Nop())
	return svc, articles
}

func TestCreateArticle(t *testing.T) {
	svc, _ := setupArticleService()

	article, err := svc.Create(context.Background(), 1, &models.CreateArticleRequest{
		Title:   "Hello World",
		Content: "First post",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if article.Slug != "hello-world" {
		t.Errorf("Expected slug hello-world, got %s", article.Slug)
	}
	if article.AuthorID != 1 {
		t.Errorf("Expected author ID 1, got %d", article.AuthorID)
	}
	if article.Author.Name != "Alice" {
		t.Errorf("Expected author summary joined, got %+v", article.Author)
	}
	if article.PublishedAt != nil {
		t.Error("Expected a draft article without publish timestamp")
	}
}

func TestCreateArticle_SlugCollisionSuffixes(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	// Both titles normalize to the same base slug
	titles := []string{"Hello World", "Hello, World!", "hello world"}
	expected := []string{"hello-world", "hello-world-1", "hello-world-2"}

	for i, title := range titles {
		article, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: title, Content: "body"})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if article.Slug != expected[i] {
			t.Errorf("Article %d: expected slug %s, got %s", i, expected[i], article.Slug)
		}
	}
}

func TestCreateArticle_SlugSuffixesExhausted(t *testing.T) {
	svc, articles := setupArticleService()
	ctx := context.Background()

	// Occupy the base slug and every numbered suffix the retry loop tries
	seeded := map[string]bool{"hello-world": true}
	for i := 1; i < 50; i++ {
		seeded[fmt.Sprintf("hello-world-%d", i)] = true
	}
	for slug := range seeded {
		if err := articles.Create(ctx, &models.Article{
			Title:    "Hello World",
			Content:  "body",
			Slug:     slug,
			AuthorID: 1,
		}); err != nil {
			t.Fatalf("Seeding slug %s failed: %v", slug, err)
		}
	}

	article, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: "Hello World", Content: "body"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(article.Slug, "hello-world-") {
		t.Errorf("Expected a suffixed fallback slug, got %s", article.Slug)
	}
	if seeded[article.Slug] {
		t.Errorf("Fallback slug %s collides with an existing slug", article.Slug)
	}
}

func TestGetArticleByID_RoundTrip(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{
		Title:       "Round Trip",
		Content:     "content body",
		PublishedAt: &now,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	fetched, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Title != created.Title || fetched.Content != created.Content {
		t.Error("Fetched article differs from created article")
	}
	if fetched.Slug != created.Slug || fetched.AuthorID != created.AuthorID {
		t.Error("Fetched slug/author differs from created article")
	}
	if fetched.PublishedAt == nil || !fetched.PublishedAt.Equal(now) {
		t.Errorf("Expected publish timestamp %v, got %v", now, fetched.PublishedAt)
	}
}

func TestGetArticleByID_NotFound(t *testing.T) {
	svc, _ := setupArticleService()

	_, err := svc.GetByID(context.Background(), 999)
	if err == nil {
		t.Fatal("Expected missing article to fail")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Errorf("Expected KindNotFound, got %d", kind)
	}
}

func TestListArticles_Pagination(t *testing.T) {
	svc, articles := setupArticleService()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		article := &models.Article{
			Title:    fmt.Sprintf("Post %d", i),
			Content:  "body",
			Slug:     fmt.Sprintf("post-%d", i),
			AuthorID: 1,
		}
		if err := articles.Create(ctx, article); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	items, pagination, err := svc.List(ctx, models.ListParams{Page: 1, Limit: 10, Sort: models.SortDesc})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(items) != 10 {
		t.Errorf("Expected 10 items, got %d", len(items))
	}
	if pagination.Total != 25 {
		t.Errorf("Expected total 25, got %d", pagination.Total)
	}
	if pagination.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", pagination.TotalPages)
	}
	if items[0].Title != "Post 24" {
		t.Errorf("Expected newest-first ordering, got %s first", items[0].Title)
	}

	// Last page holds the remainder
	items, _, err = svc.List(ctx, models.ListParams{Page: 3, Limit: 10, Sort: models.SortDesc})
	if err != nil {
		t.Fatalf("List page 3 failed: %v", err)
	}
	if len(items) != 5 {
		t.Errorf("Expected 5 items on last page, got %d", len(items))
	}

	// Ascending sort returns the oldest first
	items, _, err = svc.List(ctx, models.ListParams{Page: 1, Limit: 10, Sort: models.SortAsc})
	if err != nil {
		t.Fatalf("List asc failed: %v", err)
	}
	if items[0].Title != "Post 0" {
		t.Errorf("Expected oldest-first ordering, got %s first", items[0].Title)
	}
}

func TestUpdateArticle(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: "Original Title", Content: "original"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newContent := "updated content"
	updated, err := svc.Update(ctx, created.ID, 1, &models.UpdateArticleRequest{Content: &newContent})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Content != newContent {
		t.Errorf("Expected updated content, got %s", updated.Content)
	}
	// Title untouched, so the slug stays
	if updated.Slug != "original-title" {
		t.Errorf("Expected slug unchanged, got %s", updated.Slug)
	}
}

func TestUpdateArticle_ExplicitNullUnpublishes(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	now := time.Now()
	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{
		Title:       "Published Post",
		Content:     "body",
		PublishedAt: &now,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.PublishedAt == nil {
		t.Fatal("Expected a published article")
	}

	var req models.UpdateArticleRequest
	if err := json.Unmarshal([]byte(`{"published_at": null}`), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !req.PublishedAt.Set || req.PublishedAt.Value != nil {
		t.Fatalf("Expected explicit null to decode as set with nil value, got %+v", req.PublishedAt)
	}

	updated, err := svc.Update(ctx, created.ID, 1, &req)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.PublishedAt != nil {
		t.Errorf("Expected explicit null to unpublish, got %v", updated.PublishedAt)
	}
}

func TestUpdateArticle_AbsentPublishedAtUntouched(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	now := time.Now()
	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{
		Title:       "Published Post",
		Content:     "body",
		PublishedAt: &now,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var req models.UpdateArticleRequest
	if err := json.Unmarshal([]byte(`{"content": "revised"}`), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if req.PublishedAt.Set {
		t.Fatal("Expected an absent field to decode as unset")
	}

	updated, err := svc.Update(ctx, created.ID, 1, &req)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.PublishedAt == nil {
		t.Error("Expected publish timestamp untouched when the field is absent")
	}
}

func TestUpdateArticle_TitleRegeneratesSlug(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: "Old Title", Content: "body"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newTitle := "Brand New Title"
	updated, err := svc.Update(ctx, created.ID, 1, &models.UpdateArticleRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Slug != "brand-new-title" {
		t.Errorf("Expected regenerated slug, got %s", updated.Slug)
	}
}

func TestUpdateArticle_OwnSlugExcludedFromCollisionCheck(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: "Same Title", Content: "body"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Re-saving the same title must not pick up a -1 suffix
	sameTitle := "Same Title"
	updated, err := svc.Update(ctx, created.ID, 1, &models.UpdateArticleRequest{Title: &sameTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Slug != "same-title" {
		t.Errorf("Expected slug same-title, got %s", updated.Slug)
	}
}

func TestUpdateArticle_NonAuthorForbidden(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: "Alice's Post", Content: "body"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newContent := "hijacked"
	_, err = svc.Update(ctx, created.ID, 2, &models.UpdateArticleRequest{Content: &newContent})
	if err == nil {
		t.Fatal("Expected non-author update to fail")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.KindForbidden {
		t.Errorf("Expected KindForbidden for existing article, got %d", kind)
	}
}

func TestUpdateArticle_NonexistentIDForbidden(t *testing.T) {
	svc, _ := setupArticleService()

	// The ownership gate runs before existence is confirmed, so a missing id
	// is indistinguishable from someone else's article
	newContent := "body"
	_, err := svc.Update(context.Background(), 999, 1, &models.UpdateArticleRequest{Content: &newContent})
	if err == nil {
		t.Fatal("Expected update of missing article to fail")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.KindForbidden {
		t.Errorf("Expected KindForbidden for missing article, got %d", kind)
	}
}

func TestDeleteArticle(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: "Doomed Post", Content: "body"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.GetByID(ctx, created.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Error("Expected deleted article to be gone")
	}
}

func TestDeleteArticle_NonAuthorForbidden(t *testing.T) {
	svc, _ := setupArticleService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &models.CreateArticleRequest{Title: "Alice's Post", Content: "body"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = svc.Delete(ctx, created.ID, 2)
	if kind := apperrors.KindOf(err); kind != apperrors.KindForbidden {
		t.Errorf("Expected KindForbidden, got %d", kind)
	}

	err = svc.Delete(ctx, 999, 2)
	if kind := apperrors.KindOf(err); kind != apperrors.KindForbidden {
		t.Errorf("Expected KindForbidden for missing article, got %d", kind)
	}
}
