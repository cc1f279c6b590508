package data

import (
	"regexp"

	"github.com/avolkov/mediatheca/internal/validator"
)

// SlugRX restricts slugs to letters, digits, hyphens and underscores.
var SlugRX = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Category defines a single-valued classification for a title, such as
// "Books", "Films" or "Music".
type Category struct {
	ID   int64  `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ValidateSlug(v *validator.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
	v.Check(len(slug) <= 50, "slug", "must not be more than 50 bytes long")
	v.Check(validator.Matches(slug, SlugRX), "slug", "must contain only letters, digits, hyphens and underscores")
}

func ValidateCategory(v *validator.Validator, category *Category) {
	v.Check(category.Name != "", "name", "must be provided")
	v.Check(len(category.Name) <= 256, "name", "must not be more than 256 bytes long")
	ValidateSlug(v, category.Slug)
}
