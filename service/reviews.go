package service

import (
	"errors"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/repository"
)

type reviews interface {
	CreateReview(titleID int64, author *data.User, text *string, score int32) (*data.Review, error)
	ListReviews(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error)
	ShowReview(titleID, reviewID int64) (*data.Review, error)
	UpdateReview(titleID, reviewID int64, text *string, score *int32) (*data.Review, error)
	DeleteReview(titleID, reviewID int64) error
}

// CreateReview adds a review of a title on behalf of its author. Each author
// may review a title once: a repeat attempt is rejected, with the database
// unique constraint as the final arbiter under concurrent requests.
func (s *service) CreateReview(titleID int64, author *data.User, text *string, score int32) (*data.Review, error) {
	_, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	review := &data.Review{
		TitleID:  titleID,
		AuthorID: author.ID,
		Author:   author.Username,
		Score:    score,
	}
	v := validator.New()
	v.Check(text != nil, "text", "must be provided")
	if text != nil {
		review.Text = *text
	}
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	if s.repo.ReviewExistsForAuthor(titleID, author.ID) {
		return nil, ErrDuplicateRecord
	}
	err = s.repo.CreateReview(review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	return review, nil
}

// ListReviews shows a paginated list of the reviews of a title.
func (s *service) ListReviews(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	_, err := s.repo.GetTitle(titleID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, data.Metadata{}, ErrRecordNotFound
		default:
			return nil, data.Metadata{}, err
		}
	}
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	reviews, metadata, err := s.repo.GetAllReviewsForTitle(titleID, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return reviews, metadata, nil
}

// ShowReview shows a specific review of a title.
func (s *service) ShowReview(titleID, reviewID int64) (*data.Review, error) {
	review, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return review, nil
}

// UpdateReview partially updates the text or score of a review. The one
// review per author rule does not apply here since no new review appears.
func (s *service) UpdateReview(titleID, reviewID int64, text *string, score *int32) (*data.Review, error) {
	review, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if text != nil {
		review.Text = *text
	}
	if score != nil {
		review.Score = *score
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateReview(review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return review, nil
}

// DeleteReview removes a review along with its comments.
func (s *service) DeleteReview(titleID, reviewID int64) error {
	err := s.repo.DeleteReview(titleID, reviewID)
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
