package database

import (
	"errors"
	"path/filepath"
	"testing"

	"watchlist/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(Config{DatabasePath: filepath.Join(t.TempDir(), "watchlist.db")})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.db")

	db, err := Open(Config{DatabasePath: path})
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	db.Close()

	// Opening an already-initialized store must not fail or lose data.
	db, err = Open(Config{DatabasePath: path})
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Movies.Count(); err != nil {
		t.Fatalf("schema missing after reopen: %v", err)
	}
}

func TestResetLeavesEmptyUsableSchema(t *testing.T) {
	db := openTestDB(t)

	if err := db.Movies.Create(&models.Movie{Title: "Leon", Year: "1994"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := db.Users.Create(&models.User{Name: "GQH"}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	if err := db.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	movies, err := db.Movies.Count()
	if err != nil {
		t.Fatalf("movies table unusable after reset: %v", err)
	}
	if movies != 0 {
		t.Errorf("expected 0 movies after reset, got %d", movies)
	}

	users, err := db.Users.Count()
	if err != nil {
		t.Fatalf("users table unusable after reset: %v", err)
	}
	if users != 0 {
		t.Errorf("expected 0 users after reset, got %d", users)
	}

	// The reset store must accept writes again.
	if err := db.Movies.Create(&models.Movie{Title: "WALL-E", Year: "2008"}); err != nil {
		t.Fatalf("create after reset failed: %v", err)
	}
}

func TestMovieRepositoryCRUD(t *testing.T) {
	db := openTestDB(t)

	m := &models.Movie{Title: "Mahjong", Year: "1996"}
	if err := db.Movies.Create(m); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("expected an assigned id")
	}

	got, err := db.Movies.Get(m.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Mahjong" || got.Year != "1996" {
		t.Errorf("unexpected record: %+v", got)
	}

	got.Title = "King of Comedy"
	got.Year = "1999"
	if err := db.Movies.Update(got); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	again, err := db.Movies.Get(m.ID)
	if err != nil {
		t.Fatalf("get after update failed: %v", err)
	}
	if again.Title != "King of Comedy" {
		t.Errorf("update did not persist: %+v", again)
	}

	if err := db.Movies.Delete(m.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := db.Movies.Get(m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMovieRepositoryNotFound(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Movies.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
	if err := db.Movies.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}
	if err := db.Movies.Update(&models.Movie{ID: 42, Title: "Leon", Year: "1994"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositoryFirst(t *testing.T) {
	db := openTestDB(t)

	first, err := db.Users.First()
	if err != nil {
		t.Fatalf("first on empty table failed: %v", err)
	}
	if first != nil {
		t.Fatalf("expected nil for an empty table, got %+v", first)
	}

	if err := db.Users.Create(&models.User{Name: "GQH"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := db.Users.Create(&models.User{Name: "Second", Username: "second"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err = db.Users.First()
	if err != nil {
		t.Fatalf("first failed: %v", err)
	}
	if first == nil || first.Name != "GQH" {
		t.Errorf("expected the earliest row, got %+v", first)
	}
}

func TestUserRepositoryEmptyUsernamesDoNotCollide(t *testing.T) {
	db := openTestDB(t)

	if err := db.Users.Create(&models.User{Name: "GQH"}); err != nil {
		t.Fatalf("first unnamed user failed: %v", err)
	}
	if err := db.Users.Create(&models.User{Name: "GQH"}); err != nil {
		t.Fatalf("second unnamed user must not trip the unique index: %v", err)
	}
}
