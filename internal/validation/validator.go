// Package validation checks request payloads before they reach the services,
// producing field-level errors for the response envelope.
package validation

import (
	"regexp"
	"strings"

	"github.com/blog-platform-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MinPasswordLength is the minimum accepted password length at signup
const MinPasswordLength = 8

// MaxTitleLength bounds article titles
const MaxTitleLength = 255

// Signup validates a signup request
func Signup(req *models.SignupRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email format is invalid"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	} else if len(req.Password) < MinPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	return errs
}

// Login validates a login request
func Login(req *models.LoginRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}

// Refresh validates a token refresh request
func Refresh(req *models.RefreshRequest) []FieldError {
	if strings.TrimSpace(req.RefreshToken) == "" {
		return []FieldError{{Field: "refreshToken", Message: "refreshToken is required"}}
	}
	return nil
}

// CreateArticle validates an article creation request
func CreateArticle(req *models.CreateArticleRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(req.Title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "title must be at most 255 characters"})
	}
	if strings.TrimSpace(req.Content) == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	return errs
}

// UpdateArticle validates an article update request. Absent fields are fine;
// supplied fields must still be valid.
func UpdateArticle(req *models.UpdateArticleRequest) []FieldError {
	var errs []FieldError
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			errs = append(errs, FieldError{Field: "title", Message: "title must not be empty"})
		} else if len(*req.Title) > MaxTitleLength {
			errs = append(errs, FieldError{Field: "title", Message: "title must be at most 255 characters"})
		}
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content must not be empty"})
	}
	return errs
}

// ListParams validates and normalizes pagination parameters, applying
// defaults for absent values
func ListParams(params *models.ListParams) []FieldError {
	var errs []FieldError
	if params.Page == 0 {
		params.Page = models.DefaultPage
	}
	if params.Limit == 0 {
		params.Limit = models.DefaultLimit
	}
	if params.Sort == "" {
		params.Sort = models.SortDesc
	}

	if params.Page < 1 {
		errs = append(errs, FieldError{Field: "page", Message: "page must be at least 1"})
	}
	if params.Limit < 1 || params.Limit > models.MaxLimit {
		errs = append(errs, FieldError{Field: "limit", Message: "limit must be between 1 and 100"})
	}
	sort := strings.ToLower(params.Sort)
	if sort != models.SortAsc && sort != models.SortDesc {
		errs = append(errs, FieldError{Field: "sort", Message: "sort must be asc or desc"})
	} else {
		params.Sort = sort
	}
	return errs
}
