package dto

import "github.com/avolkov/mediatheca/data"

// CreateGenreRequestBody defines a request body for the CreateGenre service.
type CreateGenreRequestBody struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// QsListGenres defines query strings for the ListGenres service.
type QsListGenres struct {
	Search  string
	Filters data.Filters
}
