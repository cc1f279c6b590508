package data

import (
	"testing"
	"time"

	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	currentYear := int32(time.Now().Year())
	tests := []struct {
		name  string
		title Title
		valid bool
	}{
		{"valid", Title{Name: "Solaris", Year: 1961}, true},
		{"current year", Title{Name: "New Release", Year: currentYear}, true},
		{"future year", Title{Name: "Coming Soon", Year: currentYear + 1}, false},
		{"before year 1000", Title{Name: "Beowulf", Year: 999}, false},
		{"missing name", Title{Year: 2000}, false},
		{"missing year", Title{Name: "Undated"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateTitle(v, &tt.title)
			assert.Equal(t, tt.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name   string
		review Review
		valid  bool
	}{
		{"lowest score", Review{Score: 1}, true},
		{"highest score", Review{Score: 10}, true},
		{"score too low", Review{Score: 0}, false},
		{"score too high", Review{Score: 11}, false},
		{"empty text allowed", Review{Text: "", Score: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateReview(v, &tt.review)
			assert.Equal(t, tt.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := validator.New()
	ValidateComment(v, &Comment{Text: "agreed"})
	assert.True(t, v.Valid())

	v = validator.New()
	ValidateComment(v, &Comment{})
	assert.False(t, v.Valid())
}

func TestValidateSlug(t *testing.T) {
	for slug, valid := range map[string]bool{
		"books":      true,
		"sci-fi":     true,
		"tales_2024": true,
		"":           false,
		"bad slug":   false,
		"ütf8":       false,
	} {
		v := validator.New()
		ValidateSlug(v, slug)
		assert.Equal(t, valid, v.Valid(), "slug %q", slug)
	}
}
