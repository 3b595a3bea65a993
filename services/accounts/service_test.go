package accounts_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"watchlist/internal/database"
	"watchlist/services/accounts"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(database.Config{
		DatabasePath: filepath.Join(t.TempDir(), "watchlist.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProvisionCreatesSingleAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	action, err := svc.Provision("grey", "totoro1988")
	require.NoError(t, err)
	require.Equal(t, accounts.ProvisionCreated, action)

	count, err := db.Users.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	owner, err := svc.Owner()
	require.NoError(t, err)
	require.Equal(t, "grey", owner.Username)
	require.Equal(t, "Admin", owner.Name)
	require.True(t, owner.ValidatePassword("totoro1988"))
	require.NotEqual(t, "totoro1988", owner.PasswordHash)
}

func TestProvisionUpdatesExistingAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	_, err := svc.Provision("grey", "oldpass")
	require.NoError(t, err)

	action, err := svc.Provision("peter", "newpass")
	require.NoError(t, err)
	require.Equal(t, accounts.ProvisionUpdated, action)

	count, err := db.Users.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count, "update must not add a second user")

	owner, err := svc.Owner()
	require.NoError(t, err)
	require.Equal(t, "peter", owner.Username)

	// The update branch must run the password through the hashing setter,
	// so the new credential verifies and the old one no longer does.
	require.True(t, owner.ValidatePassword("newpass"))
	require.False(t, owner.ValidatePassword("oldpass"))
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	_, err := svc.Provision("grey", "totoro1988")
	require.NoError(t, err)

	ok, err := svc.Authenticate("grey", "totoro1988")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Authenticate("grey", "wrong")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.Authenticate("nobody", "totoro1988")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAuthenticateWithoutAccount(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	ok, err := svc.Authenticate("grey", "totoro1988")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRename(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	_, err := svc.Provision("grey", "totoro1988")
	require.NoError(t, err)

	require.NoError(t, svc.Rename("Grey Li"))

	owner, err := svc.Owner()
	require.NoError(t, err)
	require.Equal(t, "Grey Li", owner.Name)
}

func TestRenameWithoutAccount(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	require.ErrorIs(t, svc.Rename("Grey Li"), accounts.ErrNoAccount)
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	require.NoError(t, svc.Seed())

	movies, err := db.Movies.List()
	require.NoError(t, err)
	require.Len(t, movies, 10)
	require.Equal(t, "My Neighbor Totoro", movies[0].Title)
	require.Equal(t, "1988", movies[0].Year)
	require.Equal(t, "The Pork of Music", movies[9].Title)
	require.Equal(t, "2012", movies[9].Year)

	owner, err := svc.Owner()
	require.NoError(t, err)
	require.Equal(t, "GQH", owner.Name)
	require.False(t, owner.ValidatePassword(""), "seed user has no credential")
}

func TestSeedTwiceDuplicatesMovies(t *testing.T) {
	db := newTestDB(t)
	svc := accounts.NewService(db)

	require.NoError(t, svc.Seed())
	require.NoError(t, svc.Seed())

	count, err := db.Movies.Count()
	require.NoError(t, err)
	require.Equal(t, 20, count)
}
