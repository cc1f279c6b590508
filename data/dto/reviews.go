package dto

import "github.com/avolkov/mediatheca/data"

// CreateReviewRequestBody defines a request body for the CreateReview
// service. Text must be present but may be the empty string, so it is a
// pointer to distinguish absence from emptiness.
type CreateReviewRequestBody struct {
	Text  *string `json:"text"`
	Score int32   `json:"score"`
}

// UpdateReviewRequestBody defines a request body for the UpdateReview
// service. Nil fields are left unchanged.
type UpdateReviewRequestBody struct {
	Text  *string `json:"text"`
	Score *int32  `json:"score"`
}

// QsListReviews defines query strings for the ListReviews service.
type QsListReviews struct {
	Filters data.Filters
}
