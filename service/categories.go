package service

import (
	"errors"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/repository"
)

type categories interface {
	CreateCategory(name string, slug string) (*data.Category, error)
	ListCategories(search string, filters data.Filters) ([]*data.Category, data.Metadata, error)
	DeleteCategory(slug string) error
}

// CreateCategory adds a new category to the catalogue.
func (s *service) CreateCategory(name string, slug string) (*data.Category, error) {
	category := &data.Category{
		Name: name,
		Slug: slug,
	}
	v := validator.New()
	if data.ValidateCategory(v, category); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateCategory(category)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("slug", "a category with this slug already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return category, nil
}

// ListCategories shows a paginated list of categories, optionally narrowed
// by a name search term.
func (s *service) ListCategories(search string, filters data.Filters) ([]*data.Category, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	categories, metadata, err := s.repo.GetAllCategories(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return categories, metadata, nil
}

// DeleteCategory removes a category. Titles in the category are kept and
// simply lose their category.
func (s *service) DeleteCategory(slug string) error {
	err := s.repo.DeleteCategory(slug)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
