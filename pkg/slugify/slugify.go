// Package slugify derives URL-safe slugs from article titles.
package slugify

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Make normalizes a title into a URL-safe slug: lowercased, transliterated to
// ASCII, punctuation stripped, separators collapsed to single hyphens.
func Make(title string) string {
	return slug.Make(title)
}

// WithSuffix appends a numeric collision suffix to a base slug
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
