package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/avolkov/mediatheca/data"
	"github.com/lib/pq"
)

// TitleGenreLink pairs a title with one of its genres during a bulk reload.
type TitleGenreLink struct {
	TitleID int64
	GenreID int64
}

// loader groups the bulk-import methods used by the loaddata command. Each
// method replaces the table contents wholesale: the table is truncated (with
// CASCADE, so dependents emptied here must be reloaded afterwards in
// dependency order) and refilled through a single COPY.
type loader interface {
	ReplaceUsers(users []*data.User) error
	ReplaceCategories(categories []*data.Category) error
	ReplaceGenres(genres []*data.Genre) error
	ReplaceTitles(titles []*data.Title, links []TitleGenreLink) error
	ReplaceReviews(reviews []*data.Review) error
	ReplaceComments(comments []*data.Comment) error
}

// replaceTable truncates a table and bulk-inserts rows via pq.CopyIn inside
// one transaction, then resyncs the table's id sequence so subsequent
// inserts don't collide with imported ids.
func (r *repository) replaceTable(table string, columns []string, rows [][]interface{}, resetSequence bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, `TRUNCATE TABLE `+table+` CASCADE`)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return err
	}
	for _, row := range rows {
		_, err = stmt.ExecContext(ctx, row...)
		if err != nil {
			stmt.Close()
			return err
		}
	}
	// An Exec with no arguments flushes the buffered COPY data.
	_, err = stmt.ExecContext(ctx)
	if err != nil {
		stmt.Close()
		return err
	}
	err = stmt.Close()
	if err != nil {
		return err
	}
	if resetSequence {
		_, err = tx.ExecContext(ctx, `
			SELECT setval(pg_get_serial_sequence('`+table+`', 'id'), (SELECT COALESCE(MAX(id), 1) FROM `+table+`))`)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *repository) ReplaceUsers(users []*data.User) error {
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Bio, u.Role, u.Superuser, true})
	}
	return r.replaceTable("users",
		[]string{"id", "username", "email", "first_name", "last_name", "bio", "role", "superuser", "activated"},
		rows, true)
}

func (r *repository) ReplaceCategories(categories []*data.Category) error {
	rows := make([][]interface{}, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []interface{}{c.ID, c.Name, c.Slug})
	}
	return r.replaceTable("categories", []string{"id", "name", "slug"}, rows, true)
}

func (r *repository) ReplaceGenres(genres []*data.Genre) error {
	rows := make([][]interface{}, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, []interface{}{g.ID, g.Name, g.Slug})
	}
	return r.replaceTable("genres", []string{"id", "name", "slug"}, rows, true)
}

func (r *repository) ReplaceTitles(titles []*data.Title, links []TitleGenreLink) error {
	rows := make([][]interface{}, 0, len(titles))
	for _, t := range titles {
		var categoryID sql.NullInt64
		if t.Category != nil {
			categoryID = sql.NullInt64{Int64: t.Category.ID, Valid: true}
		}
		rows = append(rows, []interface{}{t.ID, t.Name, t.Year, t.Description, categoryID})
	}
	err := r.replaceTable("titles", []string{"id", "name", "year", "description", "category_id"}, rows, true)
	if err != nil {
		return err
	}
	linkRows := make([][]interface{}, 0, len(links))
	for _, l := range links {
		linkRows = append(linkRows, []interface{}{l.TitleID, l.GenreID})
	}
	return r.replaceTable("titles_genres", []string{"title_id", "genre_id"}, linkRows, false)
}

func (r *repository) ReplaceReviews(reviews []*data.Review) error {
	rows := make([][]interface{}, 0, len(reviews))
	for _, rv := range reviews {
		rows = append(rows, []interface{}{rv.ID, rv.TitleID, rv.AuthorID, rv.Text, rv.Score, rv.PubDate})
	}
	return r.replaceTable("reviews", []string{"id", "title_id", "author_id", "text", "score", "pub_date"}, rows, true)
}

func (r *repository) ReplaceComments(comments []*data.Comment) error {
	rows := make([][]interface{}, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []interface{}{c.ID, c.ReviewID, c.AuthorID, c.Text, c.PubDate})
	}
	return r.replaceTable("comments", []string{"id", "review_id", "author_id", "text", "pub_date"}, rows, true)
}
