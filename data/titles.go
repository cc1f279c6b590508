package data

import (
	"time"

	"github.com/avolkov/mediatheca/internal/validator"
)

// Title defines a reviewable work: a specific book, film or album. Rating is
// derived on read as the mean of all review scores for the title and is nil
// when the title has no reviews yet. Category is nil when the title has no
// category, which also happens when a referenced category is deleted.
type Title struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"-"`
	Name        string    `json:"name"`
	Year        int32     `json:"year"`
	Rating      *float64  `json:"rating"`
	Description string    `json:"description,omitempty"`
	Genres      []Genre   `json:"genre"`
	Category    *Category `json:"category"`
	Version     int32     `json:"-"`
}

func ValidateTitle(v *validator.Validator, title *Title) {
	v.Check(title.Name != "", "name", "must be provided")
	v.Check(len(title.Name) <= 500, "name", "must not be more than 500 bytes long")
	v.Check(title.Year != 0, "year", "must be provided")
	v.Check(title.Year >= 1000, "year", "must not be before the year 1000")
	v.Check(title.Year <= int32(time.Now().Year()), "year", "must not be in the future")
	v.Check(len(title.Description) <= 2000, "description", "must not be more than 2000 bytes long")
}
