package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avolkov/mediatheca/data"
)

type titles interface {
	CreateTitle(title *data.Title) error
	GetTitle(id int64) (*data.Title, error)
	GetGenresForTitle(titleID int64) ([]data.Genre, error)
	GetAllTitles(genreSlug, categorySlug, name string, year int, filters data.Filters) ([]*data.Title, data.Metadata, error)
	UpdateTitle(title *data.Title) error
	DeleteTitle(id int64) error
}

// CreateTitle creates a title record together with its genre links. The
// insert and the junction rows go in one transaction.
func (r *repository) CreateTitle(title *data.Title) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		INSERT INTO titles (name, year, description, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`
	var categoryID interface{}
	if title.Category != nil {
		categoryID = title.Category.ID
	}
	args := []interface{}{title.Name, title.Year, title.Description, categoryID}
	err = tx.QueryRowContext(ctx, query, args...).Scan(
		&title.ID,
		&title.CreatedAt,
		&title.Version,
	)
	if err != nil {
		return err
	}
	for i := range title.Genres {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO titles_genres (title_id, genre_id)
			VALUES ($1, $2)`,
			title.ID, title.Genres[i].ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetTitle retrieves a title record by its ID, including its category, its
// genre links and the derived rating. The rating is the mean review score,
// recomputed on every read rather than stored, and NULL when the title has
// no reviews.
func (r *repository) GetTitle(id int64) (*data.Title, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT titles.id, titles.created_at, titles.name, titles.year, titles.description, titles.version,
			categories.id, categories.name, categories.slug,
			(SELECT AVG(score) FROM reviews WHERE reviews.title_id = titles.id)
		FROM titles
		LEFT JOIN categories ON titles.category_id = categories.id
		WHERE titles.id = $1`
	var title data.Title
	var categoryID sql.NullInt64
	var categoryName, categorySlug sql.NullString
	var rating sql.NullFloat64
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&title.ID,
		&title.CreatedAt,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.Version,
		&categoryID,
		&categoryName,
		&categorySlug,
		&rating,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if categoryID.Valid {
		title.Category = &data.Category{
			ID:   categoryID.Int64,
			Name: categoryName.String,
			Slug: categorySlug.String,
		}
	}
	if rating.Valid {
		title.Rating = &rating.Float64
	}
	title.Genres, err = r.GetGenresForTitle(title.ID)
	if err != nil {
		return nil, err
	}
	return &title, nil
}

// GetGenresForTitle retrieves the genre records linked to a title.
func (r *repository) GetGenresForTitle(titleID int64) ([]data.Genre, error) {
	query := `
		SELECT genres.id, genres.name, genres.slug
		FROM genres
		INNER JOIN titles_genres ON titles_genres.genre_id = genres.id
		WHERE titles_genres.title_id = $1
		ORDER BY genres.id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, titleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	genres := []data.Genre{}
	for rows.Next() {
		var genre data.Genre
		err := rows.Scan(
			&genre.ID,
			&genre.Name,
			&genre.Slug,
		)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return genres, nil
}

// GetAllTitles retrieves a paginated record of all titles. Records can be
// narrowed by genre slug, category slug, case-insensitive name substring and
// exact year, in any combination.
func (r *repository) GetAllTitles(genreSlug, categorySlug, name string, year int, filters data.Filters) ([]*data.Title, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), titles.id, titles.created_at, titles.name, titles.year, titles.description, titles.version,
			categories.id, categories.name, categories.slug,
			(SELECT AVG(score) FROM reviews WHERE reviews.title_id = titles.id)
		FROM titles
		LEFT JOIN categories ON titles.category_id = categories.id
		WHERE (LOWER(titles.name) LIKE LOWER('%%' || $1 || '%%') OR $1 = '')
		AND (titles.year = $2 OR $2 = 0)
		AND (categories.slug = $3 OR $3 = '')
		AND ($4 = '' OR EXISTS (
			SELECT 1 FROM titles_genres
			INNER JOIN genres ON genres.id = titles_genres.genre_id
			WHERE titles_genres.title_id = titles.id AND genres.slug = $4))
		ORDER BY %s %s, titles.id ASC
		LIMIT $5 OFFSET $6`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{name, year, categorySlug, genreSlug, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	titles := []*data.Title{}
	for rows.Next() {
		var title data.Title
		var categoryID sql.NullInt64
		var categoryName, categorySlug sql.NullString
		var rating sql.NullFloat64
		err := rows.Scan(
			&totalRecords,
			&title.ID,
			&title.CreatedAt,
			&title.Name,
			&title.Year,
			&title.Description,
			&title.Version,
			&categoryID,
			&categoryName,
			&categorySlug,
			&rating,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		if categoryID.Valid {
			title.Category = &data.Category{
				ID:   categoryID.Int64,
				Name: categoryName.String,
				Slug: categorySlug.String,
			}
		}
		if rating.Valid {
			title.Rating = &rating.Float64
		}
		titles = append(titles, &title)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	for i := range titles {
		titles[i].Genres, err = r.GetGenresForTitle(titles[i].ID)
		if err != nil {
			return nil, data.Metadata{}, err
		}
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return titles, metadata, nil
}

// UpdateTitle updates a title record and replaces its genre links, guarding
// against concurrent edits with the version column.
func (r *repository) UpdateTitle(title *data.Title) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		UPDATE titles
		SET name = $1, year = $2, description = $3, category_id = $4, version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version`
	var categoryID interface{}
	if title.Category != nil {
		categoryID = title.Category.ID
	}
	args := []interface{}{title.Name, title.Year, title.Description, categoryID, title.ID, title.Version}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&title.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM titles_genres WHERE title_id = $1`, title.ID)
	if err != nil {
		return err
	}
	for i := range title.Genres {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO titles_genres (title_id, genre_id)
			VALUES ($1, $2)`,
			title.ID, title.Genres[i].ID)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// DeleteTitle deletes a title record. Its reviews, and their comments, are
// removed by the ON DELETE CASCADE rules.
func (r *repository) DeleteTitle(id int64) error {
	if id < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM titles
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
