package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/avolkov/mediatheca/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(contents), 0o644)
	require.NoError(t, err)
	return path
}

func TestReadRecordsKeysByHeader(t *testing.T) {
	path := writeFixture(t, "users.csv", "id,username,email\n"+
		"2,alice,alice@example.com\n"+
		"5,bob,bob@example.com\n")

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "alice", records[0]["username"])
	assert.Equal(t, "bob@example.com", records[1]["email"])

	id, err := records[1].int64("id")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestParseUsersDefaultsRole(t *testing.T) {
	path := writeFixture(t, "users.csv", "id,username,email,role,bio,first_name,last_name\n"+
		"1,admin,admin@example.com,admin,,,\n"+
		"2,alice,alice@example.com,,reads a lot,Alice,Smith\n")

	users, err := parseUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, data.RoleAdmin, users[0].Role)
	assert.Equal(t, data.RoleUser, users[1].Role)
	assert.Equal(t, "reads a lot", users[1].Bio)
}

func TestParseTitlesOptionalCategory(t *testing.T) {
	path := writeFixture(t, "titles.csv", "id,name,year,category\n"+
		"1,Solaris,1961,3\n"+
		"2,Unfiled,1999,\n")

	titles, err := parseTitles(path)
	require.NoError(t, err)
	require.Len(t, titles, 2)
	require.NotNil(t, titles[0].Category)
	assert.Equal(t, int64(3), titles[0].Category.ID)
	assert.Nil(t, titles[1].Category)
	assert.Equal(t, int32(1961), titles[0].Year)
}

func TestParseTitleGenreLinks(t *testing.T) {
	path := writeFixture(t, "genre_title.csv", "id,title_id,genre_id\n"+
		"1,1,2\n"+
		"2,1,3\n")

	links, err := parseTitleGenreLinks(path)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, int64(1), links[0].TitleID)
	assert.Equal(t, int64(3), links[1].GenreID)
}

func TestParseReviews(t *testing.T) {
	path := writeFixture(t, "review.csv", "id,title_id,text,author,score,pub_date\n"+
		`7,1,"a fine title, all told",4,9,2019-09-24T21:08:21Z`+"\n")

	reviews, err := parseReviews(path)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	review := reviews[0]
	assert.Equal(t, int64(7), review.ID)
	assert.Equal(t, int64(4), review.AuthorID)
	assert.Equal(t, int32(9), review.Score)
	assert.Equal(t, "a fine title, all told", review.Text)
	assert.Equal(t, time.Date(2019, 9, 24, 21, 8, 21, 0, time.UTC), review.PubDate)
}

func TestParseReviewsBadScore(t *testing.T) {
	path := writeFixture(t, "review.csv", "id,title_id,text,author,score,pub_date\n"+
		"7,1,text,4,not-a-number,2019-09-24T21:08:21Z\n")

	_, err := parseReviews(path)
	assert.Error(t, err)
}
