package service

import (
	"errors"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/repository"
)

type comments interface {
	CreateComment(titleID, reviewID int64, author *data.User, text string) (*data.Comment, error)
	ListComments(titleID, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error)
	ShowComment(titleID, reviewID, commentID int64) (*data.Comment, error)
	UpdateComment(titleID, reviewID, commentID int64, text *string) (*data.Comment, error)
	DeleteComment(titleID, reviewID, commentID int64) error
}

// CreateComment adds a comment to a review on behalf of its author.
func (s *service) CreateComment(titleID, reviewID int64, author *data.User, text string) (*data.Comment, error) {
	_, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	comment := &data.Comment{
		ReviewID: reviewID,
		AuthorID: author.ID,
		Author:   author.Username,
		Text:     text,
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.CreateComment(comment)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments shows a paginated list of the comments on a review.
func (s *service) ListComments(titleID, reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
	_, err := s.repo.GetReview(titleID, reviewID)
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
	comments, metadata, err := s.repo.GetAllCommentsForReview(reviewID, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return comments, metadata, nil
}

// ShowComment shows a specific comment on a review.
func (s *service) ShowComment(titleID, reviewID, commentID int64) (*data.Comment, error) {
	_, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	comment, err := s.repo.GetComment(reviewID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return comment, nil
}

// UpdateComment partially updates the text of a comment.
func (s *service) UpdateComment(titleID, reviewID, commentID int64, text *string) (*data.Comment, error) {
	comment, err := s.ShowComment(titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if text != nil {
		comment.Text = *text
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateComment(comment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return comment, nil
}

// DeleteComment removes a comment from a review.
func (s *service) DeleteComment(titleID, reviewID, commentID int64) error {
	_, err := s.repo.GetReview(titleID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	err = s.repo.DeleteComment(reviewID, commentID)
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
