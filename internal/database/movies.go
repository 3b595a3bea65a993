package database

import (
	"database/sql"
	"errors"
	"fmt"

	"watchlist/models"
)

// ErrNotFound is returned when a lookup by id resolves no record.
var ErrNotFound = errors.New("record not found")

// querier is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside an explicit transaction when a caller needs one.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// MovieRepository provides CRUD access to the movies table.
type MovieRepository struct {
	db querier
}

// NewMovieRepository creates a repository bound to the given connection.
func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *MovieRepository) WithTx(tx *sql.Tx) *MovieRepository {
	return &MovieRepository{db: tx}
}

// List returns all movies in insertion order.
func (r *MovieRepository) List() ([]models.Movie, error) {
	rows, err := r.db.Query(`SELECT id, title, year FROM movies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// Get returns the movie with the given id, or ErrNotFound.
func (r *MovieRepository) Get(id int64) (*models.Movie, error) {
	var m models.Movie
	err := r.db.QueryRow(`SELECT id, title, year FROM movies WHERE id = ?`, id).
		Scan(&m.ID, &m.Title, &m.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &m, nil
}

// Create inserts a new movie and fills in its assigned id.
func (r *MovieRepository) Create(m *models.Movie) error {
	res, err := r.db.Exec(`INSERT INTO movies (title, year) VALUES (?, ?)`, m.Title, m.Year)
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

// Update rewrites the title and year of an existing movie.
func (r *MovieRepository) Update(m *models.Movie) error {
	res, err := r.db.Exec(`UPDATE movies SET title = ?, year = ? WHERE id = ?`, m.Title, m.Year, m.ID)
	if err != nil {
		return fmt.Errorf("update movie %d: %w", m.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the movie with the given id.
func (r *MovieRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete movie %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored movies.
func (r *MovieRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}
