package app

import (
	"fmt"

	"github.com/gorilla/mux"

	"watchlist/config"
	"watchlist/handlers"
	"watchlist/internal/database"
	"watchlist/services/accounts"
	"watchlist/services/session"
	"watchlist/services/watchlist"
)

// App is the explicit application context: one database handle, the
// services built on it, and the router. Nothing here is a package global.
type App struct {
	cfg *config.Config
	db  *database.DB

	Watchlist *watchlist.Service
	Accounts  *accounts.Service
	Sessions  *session.Store

	router *mux.Router
}

// New opens the store, ensures the schema and wires up the HTTP surface.
func New(cfg *config.Config) (*App, error) {
	db, err := database.Open(database.Config{DatabasePath: cfg.Store.DatabasePath})
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		db:        db,
		Watchlist: watchlist.NewService(db.Movies),
		Accounts:  accounts.NewService(db),
		Sessions:  session.NewStore(cfg.Session.TTL),
	}

	h, err := handlers.New(a.Watchlist, a.Accounts, a.Sessions)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("build handlers: %w", err)
	}

	a.router = newRouter(h)
	return a, nil
}

// DB exposes the database handle for the command surface.
func (a *App) DB() *database.DB {
	return a.db
}

// Router returns the fully registered HTTP router.
func (a *App) Router() *mux.Router {
	return a.router
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.Close()
}
