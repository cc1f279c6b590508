package service

import (
	"errors"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/repository"
)

type titles interface {
	CreateTitle(name string, year int32, description string, genreSlugs []string, categorySlug string) (*data.Title, error)
	ListTitles(genreSlug, categorySlug, name string, year int, filters data.Filters) ([]*data.Title, data.Metadata, error)
	ShowTitle(titleID int64) (*data.Title, error)
	UpdateTitle(titleID int64, name *string, year *int32, description *string, genreSlugs []string, categorySlug *string) (*data.Title, error)
	DeleteTitle(titleID int64) error
}

// CreateTitle adds a new title to the catalogue. Genres and category arrive
// as slugs which must name existing records.
func (s *service) CreateTitle(name string, year int32, description string, genreSlugs []string, categorySlug string) (*data.Title, error) {
	title := &data.Title{
		Name:        name,
		Year:        year,
		Description: description,
	}
	v := validator.New()
	data.ValidateTitle(v, title)
	v.Check(validator.Unique(genreSlugs), "genre", "must not contain duplicate slugs")
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.resolveTitleRelations(title, genreSlugs, categorySlug, v)
	if err != nil {
		return nil, err
	}
	err = s.repo.CreateTitle(title)
	if err != nil {
		return nil, err
	}
	return title, nil
}

// resolveTitleRelations looks up the genre and category records behind the
// slugs of an incoming title and attaches them. An unknown slug fails
// validation rather than the lookup.
func (s *service) resolveTitleRelations(title *data.Title, genreSlugs []string, categorySlug string, v *validator.Validator) error {
	title.Genres = []data.Genre{}
	for _, slug := range genreSlugs {
		genre, err := s.repo.GetGenreBySlug(slug)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("genre", "unknown genre slug "+slug)
				return s.failedValidation(v.Errors)
			default:
				return err
			}
		}
		title.Genres = append(title.Genres, *genre)
	}
	title.Category = nil
	if categorySlug != "" {
		category, err := s.repo.GetCategoryBySlug(categorySlug)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRecordNotFound):
				v.AddError("category", "unknown category slug "+categorySlug)
				return s.failedValidation(v.Errors)
			default:
				return err
			}
		}
		title.Category = category
	}
	return nil
}

// ListTitles shows a paginated list of titles, optionally narrowed by genre
// slug, category slug, name search term and exact year.
func (s *service) ListTitles(genreSlug, categorySlug, name string, year int, filters data.Filters) ([]*data.Title, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	titles, metadata, err := s.repo.GetAllTitles(genreSlug, categorySlug, name, year, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return titles, metadata, nil
}

// ShowTitle shows the details of a specific title, including its derived
// rating.
func (s *service) ShowTitle(titleID int64) (*data.Title, error) {
	title, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return title, nil
}

// UpdateTitle partially updates a title. A nil genre slice leaves the genre
// set unchanged; a non-nil one replaces it wholesale. An empty category slug
// detaches the title from its category.
func (s *service) UpdateTitle(titleID int64, name *string, year *int32, description *string, genreSlugs []string, categorySlug *string) (*data.Title, error) {
	title, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if name != nil {
		title.Name = *name
	}
	if year != nil {
		title.Year = *year
	}
	if description != nil {
		title.Description = *description
	}
	v := validator.New()
	data.ValidateTitle(v, title)
	v.Check(validator.Unique(genreSlugs), "genre", "must not contain duplicate slugs")
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	if genreSlugs != nil {
		title.Genres = []data.Genre{}
		for _, slug := range genreSlugs {
			genre, err := s.repo.GetGenreBySlug(slug)
			if err != nil {
				switch {
				case errors.Is(err, repository.ErrRecordNotFound):
					v.AddError("genre", "unknown genre slug "+slug)
					return nil, s.failedValidation(v.Errors)
				default:
					return nil, err
				}
			}
			title.Genres = append(title.Genres, *genre)
		}
	}
	if categorySlug != nil {
		title.Category = nil
		if *categorySlug != "" {
			category, err := s.repo.GetCategoryBySlug(*categorySlug)
			if err != nil {
				switch {
				case errors.Is(err, repository.ErrRecordNotFound):
					v.AddError("category", "unknown category slug "+*categorySlug)
					return nil, s.failedValidation(v.Errors)
				default:
					return nil, err
				}
			}
			title.Category = category
		}
	}
	err = s.repo.UpdateTitle(title)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return title, nil
}

// DeleteTitle removes a title along with its reviews and their comments.
func (s *service) DeleteTitle(titleID int64) error {
	err := s.repo.DeleteTitle(titleID)
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
