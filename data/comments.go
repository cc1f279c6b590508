package data

import (
	"time"

	"github.com/avolkov/mediatheca/internal/validator"
)

// Comment defines a user's comment on a review. Comments are removed together
// with their review. PubDate is set once at creation and never updated.
type Comment struct {
	ID       int64     `json:"id"`
	ReviewID int64     `json:"-"`
	AuthorID int64     `json:"-"`
	Author   string    `json:"author"`
	Text     string    `json:"text"`
	PubDate  time.Time `json:"pub_date"`
	Version  int32     `json:"-"`
}

func ValidateComment(v *validator.Validator, comment *Comment) {
	v.Check(comment.Text != "", "text", "must be provided")
	v.Check(len(comment.Text) <= 10000, "text", "must not be more than 10000 bytes long")
}
