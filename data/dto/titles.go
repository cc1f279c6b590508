package dto

import "github.com/avolkov/mediatheca/data"

// CreateTitleRequestBody defines a request body for the CreateTitle service.
// Genre and category are accepted as slugs on write but rendered as nested
// objects on read.
type CreateTitleRequestBody struct {
	Name        string   `json:"name"`
	Year        int32    `json:"year"`
	Description string   `json:"description"`
	Genre       []string `json:"genre"`
	Category    string   `json:"category"`
}

// UpdateTitleRequestBody defines a request body for the UpdateTitle service.
// Nil fields are left unchanged.
type UpdateTitleRequestBody struct {
	Name        *string  `json:"name"`
	Year        *int32   `json:"year"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre"`
	Category    *string  `json:"category"`
}

// QsListTitles defines query strings for the ListTitles service.
type QsListTitles struct {
	Genre    string
	Category string
	Name     string
	Year     int
	Filters  data.Filters
}
