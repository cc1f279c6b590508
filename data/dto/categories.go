package dto

import "github.com/avolkov/mediatheca/data"

// CreateCategoryRequestBody defines a request body for the CreateCategory
// service.
type CreateCategoryRequestBody struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// QsListCategories defines query strings for the ListCategories service.
type QsListCategories struct {
	Search  string
	Filters data.Filters
}
