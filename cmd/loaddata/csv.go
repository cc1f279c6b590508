package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/repository"
)

// record is one csv row keyed by the column names of the header row, which
// keeps the parsers independent of column order.
type record map[string]string

func readRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var records []record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rec := make(record, len(header))
		for i, name := range header {
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r record) int64(key string) (int64, error) {
	return strconv.ParseInt(r[key], 10, 64)
}

func (r record) time(key string) (time.Time, error) {
	return time.Parse(time.RFC3339, r[key])
}

func parseUsers(path string) ([]*data.User, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	users := make([]*data.User, 0, len(records))
	for _, rec := range records {
		id, err := rec.int64("id")
		if err != nil {
			return nil, err
		}
		role := rec["role"]
		if role == "" {
			role = data.RoleUser
		}
		users = append(users, &data.User{
			ID:        id,
			Username:  rec["username"],
			Email:     rec["email"],
			FirstName: rec["first_name"],
			LastName:  rec["last_name"],
			Bio:       rec["bio"],
			Role:      role,
		})
	}
	return users, nil
}

func parseCategories(path string) ([]*data.Category, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	categories := make([]*data.Category, 0, len(records))
	for _, rec := range records {
		id, err := rec.int64("id")
		if err != nil {
			return nil, err
		}
		categories = append(categories, &data.Category{
			ID:   id,
			Name: rec["name"],
			Slug: rec["slug"],
		})
	}
	return categories, nil
}

func parseGenres(path string) ([]*data.Genre, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	genres := make([]*data.Genre, 0, len(records))
	for _, rec := range records {
		id, err := rec.int64("id")
		if err != nil {
			return nil, err
		}
		genres = append(genres, &data.Genre{
			ID:   id,
			Name: rec["name"],
			Slug: rec["slug"],
		})
	}
	return genres, nil
}

func parseTitles(path string) ([]*data.Title, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	titles := make([]*data.Title, 0, len(records))
	for _, rec := range records {
		id, err := rec.int64("id")
		if err != nil {
			return nil, err
		}
		year, err := rec.int64("year")
		if err != nil {
			return nil, err
		}
		title := &data.Title{
			ID:   id,
			Name: rec["name"],
			Year: int32(year),
		}
		// The category column holds a category id, empty when the title has
		// no category.
		if rec["category"] != "" {
			categoryID, err := rec.int64("category")
			if err != nil {
				return nil, err
			}
			title.Category = &data.Category{ID: categoryID}
		}
		titles = append(titles, title)
	}
	return titles, nil
}

func parseTitleGenreLinks(path string) ([]repository.TitleGenreLink, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	links := make([]repository.TitleGenreLink, 0, len(records))
	for _, rec := range records {
		titleID, err := rec.int64("title_id")
		if err != nil {
			return nil, err
		}
		genreID, err := rec.int64("genre_id")
		if err != nil {
			return nil, err
		}
		links = append(links, repository.TitleGenreLink{TitleID: titleID, GenreID: genreID})
	}
	return links, nil
}

func parseReviews(path string) ([]*data.Review, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	reviews := make([]*data.Review, 0, len(records))
	for _, rec := range records {
		id, err := rec.int64("id")
		if err != nil {
			return nil, err
		}
		titleID, err := rec.int64("title_id")
		if err != nil {
			return nil, err
		}
		authorID, err := rec.int64("author")
		if err != nil {
			return nil, err
		}
		score, err := rec.int64("score")
		if err != nil {
			return nil, err
		}
		pubDate, err := rec.time("pub_date")
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &data.Review{
			ID:       id,
			TitleID:  titleID,
			AuthorID: authorID,
			Text:     rec["text"],
			Score:    int32(score),
			PubDate:  pubDate,
		})
	}
	return reviews, nil
}

func parseComments(path string) ([]*data.Comment, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	comments := make([]*data.Comment, 0, len(records))
	for _, rec := range records {
		id, err := rec.int64("id")
		if err != nil {
			return nil, err
		}
		reviewID, err := rec.int64("review_id")
		if err != nil {
			return nil, err
		}
		authorID, err := rec.int64("author")
		if err != nil {
			return nil, err
		}
		pubDate, err := rec.time("pub_date")
		if err != nil {
			return nil, err
		}
		comments = append(comments, &data.Comment{
			ID:       id,
			ReviewID: reviewID,
			AuthorID: authorID,
			Text:     rec["text"],
			PubDate:  pubDate,
		})
	}
	return comments, nil
}

func count(n int) string {
	return strconv.Itoa(n)
}
