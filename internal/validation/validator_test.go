package validation_test

import (
	"strings"
	"testing"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/validation"
)

func fieldNames(errs []validation.FieldError) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestSignupValidation(t *testing.T) {
	cases := []struct {
		name      string
		req       models.SignupRequest
		badFields []string
	}{
		{"valid", models.SignupRequest{Email: "a@b.com", Password: "password123", Name: "Alice"}, nil},
		{"missing everything", models.SignupRequest{}, []string{"email", "password", "name"}},
		{"bad email", models.SignupRequest{Email: "not-an-email", Password: "password123", Name: "A"}, []string{"email"}},
		{"short password", models.SignupRequest{Email: "a@b.com", Password: "short", Name: "A"}, []string{"password"}},
		{"blank name", models.SignupRequest{Email: "a@b.com", Password: "password123", Name: "   "}, []string{"name"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := validation.Signup(&tc.req)
			if len(errs) != len(tc.badFields) {
				t.Fatalf("Expected %d errors, got %d: %v", len(tc.badFields), len(errs), errs)
			}
			got := fieldNames(errs)
			for i, field := range tc.badFields {
				if got[i] != field {
					t.Errorf("Expected error on %s, got %s", field, got[i])
				}
			}
		})
	}
}

func TestCreateArticleValidation(t *testing.T) {
	errs := validation.CreateArticle(&models.CreateArticleRequest{Title: "", Content: ""})
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}

	longTitle := strings.Repeat("x", validation.MaxTitleLength+1)
	errs = validation.CreateArticle(&models.CreateArticleRequest{Title: longTitle, Content: "body"})
	if len(errs) != 1 || errs[0].Field != "title" {
		t.Errorf("Expected a title length error, got %v", errs)
	}

	if errs := validation.CreateArticle(&models.CreateArticleRequest{Title: "ok", Content: "body"}); len(errs) != 0 {
		t.Errorf("Expected valid request, got %v", errs)
	}
}

func TestUpdateArticleValidation_PartialFields(t *testing.T) {
	// Absent fields are allowed
	if errs := validation.UpdateArticle(&models.UpdateArticleRequest{}); len(errs) != 0 {
		t.Errorf("Expected empty update to be valid, got %v", errs)
	}

	blank := "  "
	errs := validation.UpdateArticle(&models.UpdateArticleRequest{Title: &blank})
	if len(errs) != 1 || errs[0].Field != "title" {
		t.Errorf("Expected a blank title error, got %v", errs)
	}
}

func TestListParamsValidation(t *testing.T) {
	params := models.ListParams{}
	if errs := validation.ListParams(&params); len(errs) != 0 {
		t.Fatalf("Expected defaults to be valid, got %v", errs)
	}
	if params.Page != 1 || params.Limit != 10 || params.Sort != models.SortDesc {
		t.Errorf("Expected defaults page=1 limit=10 sort=desc, got %+v", params)
	}

	params = models.ListParams{Page: -1, Limit: 500, Sort: "sideways"}
	errs := validation.ListParams(&params)
	if len(errs) != 3 {
		t.Errorf("Expected 3 errors, got %d: %v", len(errs), errs)
	}

	params = models.ListParams{Sort: "ASC"}
	if errs := validation.ListParams(&params); len(errs) != 0 {
		t.Fatalf("Expected case-insensitive sort, got %v", errs)
	}
	if params.Sort != models.SortAsc {
		t.Errorf("Expected sort normalized to asc, got %s", params.Sort)
	}
}
