package watchlist

import (
	"errors"
	"log/slog"
	"unicode/utf8"

	"watchlist/internal/database"
	"watchlist/models"
)

const (
	// MaxTitleLength is the longest accepted movie title, in characters.
	MaxTitleLength = 60
	// YearLength is the exact character count a year value must have.
	YearLength = 4
)

var (
	// ErrInvalidInput is returned when a title or year fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a movie id resolves no record.
	ErrNotFound = database.ErrNotFound
)

// Service owns the watchlist entries and the input rules that guard them.
// Validation happens here so the storage layer can stay schema-free about it.
type Service struct {
	movies *database.MovieRepository
}

// NewService returns a service backed by the given repository.
func NewService(movies *database.MovieRepository) *Service {
	return &Service{movies: movies}
}

// validate counts characters, not bytes, so multibyte titles and years are
// measured the way a user sees them.
func validate(title, year string) error {
	if n := utf8.RuneCountInString(title); n == 0 || n > MaxTitleLength {
		return ErrInvalidInput
	}
	if utf8.RuneCountInString(year) != YearLength {
		return ErrInvalidInput
	}
	return nil
}

// List returns all entries in insertion order.
func (s *Service) List() ([]models.Movie, error) {
	return s.movies.List()
}

// Get returns a single entry or ErrNotFound.
func (s *Service) Get(id int64) (*models.Movie, error) {
	return s.movies.Get(id)
}

// Create validates and stores a new entry. Nothing is written when
// validation fails.
func (s *Service) Create(title, year string) (*models.Movie, error) {
	if err := validate(title, year); err != nil {
		return nil, err
	}
	m := &models.Movie{Title: title, Year: year}
	if err := s.movies.Create(m); err != nil {
		return nil, err
	}
	slog.Debug("watchlist.movie.created", "id", m.ID, "title", m.Title)
	return m, nil
}

// Update rewrites an existing entry. A missing id reports ErrNotFound
// before validation runs; invalid input leaves the record untouched.
func (s *Service) Update(id int64, title, year string) (*models.Movie, error) {
	m, err := s.movies.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validate(title, year); err != nil {
		return nil, err
	}
	m.Title = title
	m.Year = year
	if err := s.movies.Update(m); err != nil {
		return nil, err
	}
	slog.Debug("watchlist.movie.updated", "id", m.ID)
	return m, nil
}

// Delete removes an entry, reporting ErrNotFound for unknown ids.
func (s *Service) Delete(id int64) error {
	if err := s.movies.Delete(id); err != nil {
		return err
	}
	slog.Debug("watchlist.movie.deleted", "id", id)
	return nil
}
