package dto

import "github.com/avolkov/mediatheca/data"

// CreateCommentRequestBody defines a request body for the CreateComment
// service.
type CreateCommentRequestBody struct {
	Text string `json:"text"`
}

// UpdateCommentRequestBody defines a request body for the UpdateComment
// service.
type UpdateCommentRequestBody struct {
	Text *string `json:"text"`
}

// QsListComments defines query strings for the ListComments service.
type QsListComments struct {
	Filters data.Filters
}
