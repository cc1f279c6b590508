package service

import (
	"testing"

	"github.com/avolkov/mediatheca/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTitle(t *testing.T, s *service) *data.Title {
	t.Helper()
	title, err := s.CreateTitle("Solaris", 1961, "", nil, "")
	require.NoError(t, err)
	return title
}

func TestCreateReview(t *testing.T) {
	s, _, _ := newTestService()
	title := seedTitle(t, s)
	author := &data.User{ID: 7, Username: "carol", Role: data.RoleUser}

	text := "a classic"
	review, err := s.CreateReview(title.ID, author, &text, 9)
	require.NoError(t, err)
	assert.Equal(t, "carol", review.Author)
	assert.Equal(t, int32(9), review.Score)

	// A second review of the same title by the same author is rejected.
	_, err = s.CreateReview(title.ID, author, &text, 5)
	assert.ErrorIs(t, err, ErrDuplicateRecord)

	// A different user may still review the title.
	other := &data.User{ID: 8, Username: "beaver", Role: data.RoleUser}
	_, err = s.CreateReview(title.ID, other, &text, 3)
	assert.NoError(t, err)
}

func TestCreateReviewValidation(t *testing.T) {
	s, _, _ := newTestService()
	title := seedTitle(t, s)
	author := &data.User{ID: 7, Username: "carol"}

	// Text must be present, though it may be empty.
	_, err := s.CreateReview(title.ID, author, nil, 5)
	assert.ErrorIs(t, err, ErrFailedValidation)

	empty := ""
	_, err = s.CreateReview(title.ID, author, &empty, 5)
	assert.NoError(t, err)

	text := "x"
	_, err = s.CreateReview(title.ID, &data.User{ID: 8, Username: "b"}, &text, 0)
	assert.ErrorIs(t, err, ErrFailedValidation)
	_, err = s.CreateReview(title.ID, &data.User{ID: 8, Username: "b"}, &text, 11)
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestCreateReviewDuplicateWhenPrecheckUnavailable(t *testing.T) {
	s, repo, _ := newTestService()
	title := seedTitle(t, s)
	author := &data.User{ID: 7, Username: "carol", Role: data.RoleUser}

	text := "a classic"
	_, err := s.CreateReview(title.ID, author, &text, 9)
	require.NoError(t, err)

	// When the pre-check cannot answer, the unique constraint still rejects
	// the duplicate rather than reporting a transient failure as a conflict.
	repo.reviewExistsUnavailable = true
	_, err = s.CreateReview(title.ID, author, &text, 5)
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestCreateReviewMissingTitle(t *testing.T) {
	s, _, _ := newTestService()
	text := "orphan"
	_, err := s.CreateReview(42, &data.User{ID: 1, Username: "a"}, &text, 5)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUpdateReviewBypassesDuplicateRule(t *testing.T) {
	s, _, _ := newTestService()
	title := seedTitle(t, s)
	author := &data.User{ID: 7, Username: "carol"}

	text := "first pass"
	review, err := s.CreateReview(title.ID, author, &text, 6)
	require.NoError(t, err)

	newScore := int32(8)
	updated, err := s.UpdateReview(title.ID, review.ID, nil, &newScore)
	require.NoError(t, err)
	assert.Equal(t, int32(8), updated.Score)
	assert.Equal(t, "first pass", updated.Text)
}

func TestDeleteReviewCascadesComments(t *testing.T) {
	s, repo, _ := newTestService()
	title := seedTitle(t, s)
	author := &data.User{ID: 7, Username: "carol"}

	text := "short lived"
	review, err := s.CreateReview(title.ID, author, &text, 6)
	require.NoError(t, err)

	_, err = s.CreateComment(title.ID, review.ID, author, "me too")
	require.NoError(t, err)

	err = s.DeleteReview(title.ID, review.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.reviews)
	assert.Empty(t, repo.comments)
}

func TestCreateCommentMissingReview(t *testing.T) {
	s, _, _ := newTestService()
	title := seedTitle(t, s)

	_, err := s.CreateComment(title.ID, 99, &data.User{ID: 1, Username: "a"}, "hello")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCreateCommentRequiresText(t *testing.T) {
	s, _, _ := newTestService()
	title := seedTitle(t, s)
	author := &data.User{ID: 7, Username: "carol"}

	text := "reviewed"
	review, err := s.CreateReview(title.ID, author, &text, 6)
	require.NoError(t, err)

	_, err = s.CreateComment(title.ID, review.ID, author, "")
	assert.ErrorIs(t, err, ErrFailedValidation)
}
