package service

import (
	"errors"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/repository"
)

type genres interface {
	CreateGenre(name string, slug string) (*data.Genre, error)
	ListGenres(search string, filters data.Filters) ([]*data.Genre, data.Metadata, error)
	DeleteGenre(slug string) error
}

// CreateGenre adds a new genre to the catalogue.
func (s *service) CreateGenre(name string, slug string) (*data.Genre, error) {
	genre := &data.Genre{
		Name: name,
		Slug: slug,
	}
	v := validator.New()
	if data.ValidateGenre(v, genre); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateGenre(genre)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("slug", "a genre with this slug already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return genre, nil
}

// ListGenres shows a paginated list of genres, optionally narrowed by a name
// search term.
func (s *service) ListGenres(search string, filters data.Filters) ([]*data.Genre, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	genres, metadata, err := s.repo.GetAllGenres(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return genres, metadata, nil
}

// DeleteGenre removes a genre. Titles keep their remaining genres.
func (s *service) DeleteGenre(slug string) error {
	err := s.repo.DeleteGenre(slug)
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
