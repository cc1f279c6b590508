package service

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/avolkov/mediatheca/config"
	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/jsonlog"
	"github.com/avolkov/mediatheca/repository"
)

// mockRepository is an in-memory Repository used by the service tests.
type mockRepository struct {
	mu         sync.Mutex
	users      map[int64]*data.User
	tokens     map[string]int64
	categories map[string]*data.Category
	genres     map[string]*data.Genre
	titles     map[int64]*data.Title
	reviews    map[int64]*data.Review
	comments   map[int64]*data.Comment
	nextID     int64

	// reviewExistsUnavailable makes ReviewExistsForAuthor report false, as
	// the real pre-check does when its query fails.
	reviewExistsUnavailable bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:      make(map[int64]*data.User),
		tokens:     make(map[string]int64),
		categories: make(map[string]*data.Category),
		genres:     make(map[string]*data.Genre),
		titles:     make(map[int64]*data.Title),
		reviews:    make(map[int64]*data.Review),
		comments:   make(map[int64]*data.Comment),
	}
}

func (m *mockRepository) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *mockRepository) CreateUser(user *data.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = m.id()
	user.CreatedAt = time.Now()
	user.Version = 1
	m.users[user.ID] = user
	return nil
}

func (m *mockRepository) GetUserByID(id int64) (*data.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *mockRepository) GetUserByUsername(username string) (*data.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockRepository) GetUserByLogin(username, email string) (*data.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username && u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (m *mockRepository) GetAllUsers(filters data.Filters) ([]*data.User, data.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*data.User, 0, len(m.users))
	for _, u := range m.users {
		clone := *u
		users = append(users, &clone)
	}
	return users, data.CalculateMetadata(len(users), filters.Page, filters.PageSize), nil
}

func (m *mockRepository) UpdateUser(user *data.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.users[user.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if current.Version != user.Version {
		return repository.ErrEditConflict
	}
	user.Version++
	m.users[user.ID] = user
	return nil
}

func (m *mockRepository) DeleteUser(username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if u.Username == username {
			delete(m.users, id)
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (m *mockRepository) GetUserForToken(tokenScope string, tokenPlaintext string) (*data.User, error) {
	m.mu.Lock()
	userID, ok := m.tokens[tokenScope+":"+tokenPlaintext]
	m.mu.Unlock()
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return m.GetUserByID(userID)
}

func (m *mockRepository) CreateNewToken(userID int64, ttl time.Duration, scope string) (*data.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token := &data.Token{
		Plaintext: fmt.Sprintf("MOCKTOKEN%017d", len(m.tokens)+1),
		UserID:    userID,
		Expiry:    time.Now().Add(ttl),
		Scope:     scope,
	}
	m.tokens[scope+":"+token.Plaintext] = userID
	return token, nil
}

func (m *mockRepository) DeleteAllTokensForUser(scope string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, id := range m.tokens {
		if id == userID {
			delete(m.tokens, key)
		}
	}
	return nil
}

func (m *mockRepository) CreateCategory(category *data.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.Slug]; ok {
		return repository.ErrDuplicateRecord
	}
	category.ID = m.id()
	m.categories[category.Slug] = category
	return nil
}

func (m *mockRepository) GetCategoryBySlug(slug string) (*data.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	category, ok := m.categories[slug]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	clone := *category
	return &clone, nil
}

func (m *mockRepository) GetAllCategories(search string, filters data.Filters) ([]*data.Category, data.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	categories := make([]*data.Category, 0, len(m.categories))
	for _, c := range m.categories {
		clone := *c
		categories = append(categories, &clone)
	}
	return categories, data.CalculateMetadata(len(categories), filters.Page, filters.PageSize), nil
}

func (m *mockRepository) DeleteCategory(slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[slug]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(m.categories, slug)
	for _, t := range m.titles {
		if t.Category != nil && t.Category.Slug == slug {
			t.Category = nil
		}
	}
	return nil
}

func (m *mockRepository) CreateGenre(genre *data.Genre) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.genres[genre.Slug]; ok {
		return repository.ErrDuplicateRecord
	}
	genre.ID = m.id()
	m.genres[genre.Slug] = genre
	return nil
}

func (m *mockRepository) GetGenreBySlug(slug string) (*data.Genre, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	genre, ok := m.genres[slug]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	clone := *genre
	return &clone, nil
}

func (m *mockRepository) GetAllGenres(search string, filters data.Filters) ([]*data.Genre, data.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	genres := make([]*data.Genre, 0, len(m.genres))
	for _, g := range m.genres {
		clone := *g
		genres = append(genres, &clone)
	}
	return genres, data.CalculateMetadata(len(genres), filters.Page, filters.PageSize), nil
}

func (m *mockRepository) DeleteGenre(slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.genres[slug]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(m.genres, slug)
	return nil
}

func (m *mockRepository) CreateTitle(title *data.Title) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	title.ID = m.id()
	title.CreatedAt = time.Now()
	title.Version = 1
	m.titles[title.ID] = title
	return nil
}

func (m *mockRepository) GetTitle(id int64) (*data.Title, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	title, ok := m.titles[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	clone := *title
	return &clone, nil
}

func (m *mockRepository) GetGenresForTitle(titleID int64) ([]data.Genre, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	title, ok := m.titles[titleID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return append([]data.Genre{}, title.Genres...), nil
}

func (m *mockRepository) GetAllTitles(genreSlug, categorySlug, name string, year int, filters data.Filters) ([]*data.Title, data.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	titles := make([]*data.Title, 0, len(m.titles))
	for _, t := range m.titles {
		clone := *t
		titles = append(titles, &clone)
	}
	return titles, data.CalculateMetadata(len(titles), filters.Page, filters.PageSize), nil
}

func (m *mockRepository) UpdateTitle(title *data.Title) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.titles[title.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if current.Version != title.Version {
		return repository.ErrEditConflict
	}
	title.Version++
	m.titles[title.ID] = title
	return nil
}

func (m *mockRepository) DeleteTitle(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.titles[id]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(m.titles, id)
	for reviewID, review := range m.reviews {
		if review.TitleID == id {
			delete(m.reviews, reviewID)
		}
	}
	return nil
}

func (m *mockRepository) CreateReview(review *data.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.reviews {
		if existing.TitleID == review.TitleID && existing.AuthorID == review.AuthorID {
			return repository.ErrDuplicateRecord
		}
	}
	review.ID = m.id()
	review.PubDate = time.Now()
	review.Version = 1
	m.reviews[review.ID] = review
	return nil
}

func (m *mockRepository) ReviewExistsForAuthor(titleID, authorID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reviewExistsUnavailable {
		return false
	}
	for _, review := range m.reviews {
		if review.TitleID == titleID && review.AuthorID == authorID {
			return true
		}
	}
	return false
}

func (m *mockRepository) GetReview(titleID, reviewID int64) (*data.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	review, ok := m.reviews[reviewID]
	if !ok || review.TitleID != titleID {
		return nil, repository.ErrRecordNotFound
	}
	clone := *review
	return &clone, nil
}

func (m *mockRepository) GetAllReviewsForTitle(titleID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reviews := make([]*data.Review, 0, len(m.reviews))
	for _, review := range m.reviews {
		if review.TitleID == titleID {
			clone := *review
			reviews = append(reviews, &clone)
		}
	}
	return reviews, data.CalculateMetadata(len(reviews), filters.Page, filters.PageSize), nil
}

func (m *mockRepository) UpdateReview(review *data.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.reviews[review.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if current.Version != review.Version {
		return repository.ErrEditConflict
	}
	review.Version++
	m.reviews[review.ID] = review
	return nil
}

func (m *mockRepository) DeleteReview(titleID, reviewID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	review, ok := m.reviews[reviewID]
	if !ok || review.TitleID != titleID {
		return repository.ErrRecordNotFound
	}
	delete(m.reviews, reviewID)
	for commentID, comment := range m.comments {
		if comment.ReviewID == reviewID {
			delete(m.comments, commentID)
		}
	}
	return nil
}

func (m *mockRepository) CreateComment(comment *data.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	comment.ID = m.id()
	comment.PubDate = time.Now()
	comment.Version = 1
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockRepository) GetComment(reviewID, commentID int64) (*data.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	comment, ok := m.comments[commentID]
	if !ok || comment.ReviewID != reviewID {
		return nil, repository.ErrRecordNotFound
	}
	clone := *comment
	return &clone, nil
}

func (m *mockRepository) GetAllCommentsForReview(reviewID int64, filters data.Filters) ([]*data.Comment, data.Metadata, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	comments := make([]*data.Comment, 0, len(m.comments))
	for _, comment := range m.comments {
		if comment.ReviewID == reviewID {
			clone := *comment
			comments = append(comments, &clone)
		}
	}
	return comments, data.CalculateMetadata(len(comments), filters.Page, filters.PageSize), nil
}

func (m *mockRepository) UpdateComment(comment *data.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.comments[comment.ID]
	if !ok {
		return repository.ErrRecordNotFound
	}
	if current.Version != comment.Version {
		return repository.ErrEditConflict
	}
	comment.Version++
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockRepository) DeleteComment(reviewID, commentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	comment, ok := m.comments[commentID]
	if !ok || comment.ReviewID != reviewID {
		return repository.ErrRecordNotFound
	}
	delete(m.comments, commentID)
	return nil
}

func (m *mockRepository) ReplaceUsers(users []*data.User) error { return nil }

func (m *mockRepository) ReplaceCategories(categories []*data.Category) error { return nil }

func (m *mockRepository) ReplaceGenres(genres []*data.Genre) error { return nil }

func (m *mockRepository) ReplaceTitles(titles []*data.Title, links []repository.TitleGenreLink) error {
	return nil
}

func (m *mockRepository) ReplaceReviews(reviews []*data.Review) error { return nil }

func (m *mockRepository) ReplaceComments(comments []*data.Comment) error { return nil }

// newTestService wires a service instance to a fresh mock repository. The
// returned wait group must be drained before asserting on background work.
func newTestService() (*service, *mockRepository, *sync.WaitGroup) {
	var cfg config.Config
	cfg.Jwt.Secret = "test-secret-which-is-long-enough"
	cfg.Jwt.Issuer = "mediatheca"
	cfg.Jwt.TTL = "1h"
	repo := newMockRepository()
	wg := &sync.WaitGroup{}
	logger := jsonlog.New(io.Discard, jsonlog.LevelFatal)
	return New(cfg, wg, logger, repo), repo, wg
}
