package service

import (
	"testing"

	"github.com/avolkov/mediatheca/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTitleResolvesSlugs(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateCategory("Books", "books")
	require.NoError(t, err)
	_, err = s.CreateGenre("Science Fiction", "sci-fi")
	require.NoError(t, err)

	title, err := s.CreateTitle("Solaris", 1961, "a planet thinks back", []string{"sci-fi"}, "books")
	require.NoError(t, err)
	require.NotNil(t, title.Category)
	assert.Equal(t, "books", title.Category.Slug)
	require.Len(t, title.Genres, 1)
	assert.Equal(t, "sci-fi", title.Genres[0].Slug)
}

func TestCreateTitleUnknownSlugs(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateTitle("Solaris", 1961, "", []string{"sci-fi"}, "")
	assert.ErrorIs(t, err, ErrFailedValidation)

	_, err = s.CreateTitle("Solaris", 1961, "", nil, "books")
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestShowTitleIncludesGenres(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateGenre("Science Fiction", "sci-fi")
	require.NoError(t, err)
	title, err := s.CreateTitle("Solaris", 1961, "", []string{"sci-fi"}, "")
	require.NoError(t, err)

	shown, err := s.ShowTitle(title.ID)
	require.NoError(t, err)
	require.Len(t, shown.Genres, 1)
	assert.Equal(t, "sci-fi", shown.Genres[0].Slug)
	assert.Equal(t, "Science Fiction", shown.Genres[0].Name)

	titles, _, err := s.ListTitles("", "", "", 0, data.Filters{Page: 1, PageSize: 20, Sort: "id", SortSafeList: []string{"id"}})
	require.NoError(t, err)
	require.Len(t, titles, 1)
	require.Len(t, titles[0].Genres, 1)
	assert.Equal(t, "sci-fi", titles[0].Genres[0].Slug)
}

func TestUpdateTitleWithoutGenresKeepsLinks(t *testing.T) {
	s, repo, _ := newTestService()

	_, err := s.CreateGenre("Science Fiction", "sci-fi")
	require.NoError(t, err)
	title, err := s.CreateTitle("Solaris", 1961, "", []string{"sci-fi"}, "")
	require.NoError(t, err)

	name := "Solaris (reissue)"
	_, err = s.UpdateTitle(title.ID, &name, nil, nil, nil, nil)
	require.NoError(t, err)

	// The stored record must still carry its genre links, not just the
	// returned copy.
	stored := repo.titles[title.ID]
	require.NotNil(t, stored)
	require.Len(t, stored.Genres, 1)
	assert.Equal(t, "sci-fi", stored.Genres[0].Slug)

	shown, err := s.ShowTitle(title.ID)
	require.NoError(t, err)
	require.Len(t, shown.Genres, 1)
}

func TestUpdateTitleReplacesGenres(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateGenre("Science Fiction", "sci-fi")
	require.NoError(t, err)
	_, err = s.CreateGenre("Drama", "drama")
	require.NoError(t, err)

	title, err := s.CreateTitle("Solaris", 1961, "", []string{"sci-fi"}, "")
	require.NoError(t, err)

	// A nil genre slice leaves genres untouched.
	name := "Solaris (reissue)"
	updated, err := s.UpdateTitle(title.ID, &name, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, updated.Genres, 1)

	// A non-nil slice replaces the set wholesale.
	updated, err = s.UpdateTitle(title.ID, nil, nil, nil, []string{"drama"}, nil)
	require.NoError(t, err)
	require.Len(t, updated.Genres, 1)
	assert.Equal(t, "drama", updated.Genres[0].Slug)
}

func TestUpdateTitleDetachesCategory(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateCategory("Books", "books")
	require.NoError(t, err)
	title, err := s.CreateTitle("Solaris", 1961, "", nil, "books")
	require.NoError(t, err)

	empty := ""
	updated, err := s.UpdateTitle(title.ID, nil, nil, nil, nil, &empty)
	require.NoError(t, err)
	assert.Nil(t, updated.Category)
}

func TestDeleteCategoryKeepsTitles(t *testing.T) {
	s, repo, _ := newTestService()

	_, err := s.CreateCategory("Books", "books")
	require.NoError(t, err)
	title, err := s.CreateTitle("Solaris", 1961, "", nil, "books")
	require.NoError(t, err)

	err = s.DeleteCategory("books")
	require.NoError(t, err)

	stored := repo.titles[title.ID]
	require.NotNil(t, stored)
	assert.Nil(t, stored.Category)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateCategory("Books", "books")
	require.NoError(t, err)
	_, err = s.CreateCategory("Other Books", "books")
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestCreateGenreValidation(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateGenre("", "slugged")
	assert.ErrorIs(t, err, ErrFailedValidation)
	_, err = s.CreateGenre("Name", "bad slug")
	assert.ErrorIs(t, err, ErrFailedValidation)
}
