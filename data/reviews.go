package data

import (
	"time"

	"github.com/avolkov/mediatheca/internal/validator"
)

// Review defines a user's review of a title. At most one review may exist per
// (author, title) pair; the reviews table enforces this with a unique
// constraint so concurrent creates cannot both succeed. PubDate is set once
// at creation and never updated.
type Review struct {
	ID       int64     `json:"id"`
	TitleID  int64     `json:"title"`
	AuthorID int64     `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	Score    int32     `json:"score"`
	PubDate  time.Time `json:"pub_date"`
	Version  int32     `json:"-"`
}

func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.Score >= 1, "score", "must be at least 1")
	v.Check(review.Score <= 10, "score", "must not be greater than 10")
	v.Check(len(review.Text) <= 10000, "text", "must not be more than 10000 bytes long")
}
