package database

import (
	"database/sql"
	"errors"
	"fmt"

	"watchlist/models"
)

// UserRepository provides access to the users table. The application runs a
// single-owner model: "the" account is always the first row.
type UserRepository struct {
	db querier
}

// NewUserRepository creates a repository bound to the given connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a copy of the repository that runs inside tx.
func (r *UserRepository) WithTx(tx *sql.Tx) *UserRepository {
	return &UserRepository{db: tx}
}

// First returns the first user row, or nil when the table is empty.
func (r *UserRepository) First() (*models.User, error) {
	var u models.User
	var username sql.NullString
	err := r.db.QueryRow(`SELECT id, name, username, password_hash FROM users ORDER BY id LIMIT 1`).
		Scan(&u.ID, &u.Name, &username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("first user: %w", err)
	}
	u.Username = username.String
	return &u, nil
}

// nullable maps an unset username to NULL so the unique index ignores it;
// seeded accounts have no login name.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts a new user and fills in its assigned id.
func (r *UserRepository) Create(u *models.User) error {
	res, err := r.db.Exec(`INSERT INTO users (name, username, password_hash) VALUES (?, ?, ?)`,
		u.Name, nullable(u.Username), u.PasswordHash)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	u.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update rewrites an existing user row.
func (r *UserRepository) Update(u *models.User) error {
	res, err := r.db.Exec(`UPDATE users SET name = ?, username = ?, password_hash = ? WHERE id = ?`,
		u.Name, nullable(u.Username), u.PasswordHash, u.ID)
	if err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
