package accounts

import (
	"errors"
	"fmt"
	"log/slog"

	"watchlist/internal/database"
	"watchlist/models"
)

// ErrNoAccount is returned when an operation needs the owner account and
// none has been provisioned yet.
var ErrNoAccount = errors.New("no account provisioned")

// ProvisionAction reports which branch Provision took.
type ProvisionAction string

const (
	ProvisionCreated ProvisionAction = "creating"
	ProvisionUpdated ProvisionAction = "updating"
)

// SeedUserName is the display name given to the sample-data owner.
const SeedUserName = "GQH"

// seedMovies is the fixed sample watchlist inserted by Seed.
var seedMovies = []models.Movie{
	{Title: "My Neighbor Totoro", Year: "1988"},
	{Title: "Dead Poets Society", Year: "1989"},
	{Title: "A Perfect World", Year: "1993"},
	{Title: "Leon", Year: "1994"},
	{Title: "Mahjong", Year: "1996"},
	{Title: "Swallowtail Butterfly", Year: "1996"},
	{Title: "King of Comedy", Year: "1999"},
	{Title: "Devils on the Doorstep", Year: "1999"},
	{Title: "WALL-E", Year: "2008"},
	{Title: "The Pork of Music", Year: "2012"},
}

// Service manages the single owner account and database seeding.
type Service struct {
	db *database.DB
}

// NewService returns a service backed by the given database.
func NewService(db *database.DB) *Service {
	return &Service{db: db}
}

// Owner returns the account, or nil when none exists.
func (s *Service) Owner() (*models.User, error) {
	return s.db.Users.First()
}

// Authenticate reports whether username and password identify the owner.
// Unknown usernames and credential mismatches both come back false.
func (s *Service) Authenticate(username, password string) (bool, error) {
	user, err := s.db.Users.First()
	if err != nil {
		return false, err
	}
	if user == nil || user.Username != username {
		return false, nil
	}
	return user.ValidatePassword(password), nil
}

// Rename updates the owner's display name.
func (s *Service) Rename(name string) error {
	user, err := s.db.Users.First()
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNoAccount
	}
	user.Name = name
	if err := s.db.Users.Update(user); err != nil {
		return err
	}
	slog.Debug("watchlist.account.renamed", "name", name)
	return nil
}

// Provision creates the owner account, or updates its username and
// credential when one already exists. The password always goes through the
// model's hashing setter; the plaintext is never stored. Exactly one user
// row exists afterwards.
func (s *Service) Provision(username, password string) (ProvisionAction, error) {
	tx, err := s.db.Connection().Begin()
	if err != nil {
		return "", fmt.Errorf("provision: %w", err)
	}
	defer tx.Rollback()

	users := s.db.Users.WithTx(tx)

	user, err := users.First()
	if err != nil {
		return "", err
	}

	action := ProvisionUpdated
	if user == nil {
		action = ProvisionCreated
		user = &models.User{Name: models.DefaultAdminName, Username: username}
		if err := user.SetPassword(password); err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		if err := users.Create(user); err != nil {
			return "", err
		}
	} else {
		user.Username = username
		if err := user.SetPassword(password); err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		if err := users.Update(user); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("provision: %w", err)
	}
	slog.Info("watchlist.account.provisioned", "username", username, "action", string(action))
	return action, nil
}

// Seed inserts the fixed sample owner and movies in one transaction.
// Not idempotent: running it twice duplicates the movie rows.
func (s *Service) Seed() error {
	tx, err := s.db.Connection().Begin()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer tx.Rollback()

	users := s.db.Users.WithTx(tx)
	movies := s.db.Movies.WithTx(tx)

	if err := users.Create(&models.User{Name: SeedUserName}); err != nil {
		return err
	}
	for _, m := range seedMovies {
		movie := m
		if err := movies.Create(&movie); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	slog.Info("watchlist.database.seeded", "movies", len(seedMovies))
	return nil
}
