package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sethvargo/go-password/password"

	"watchlist/internal/app"
	"watchlist/internal/database"
	"watchlist/services/accounts"
)

// runServe starts the HTTP server and blocks until the process is signalled.
func (a *App) runServe(ctx context.Context, args []string) error {
	application, err := app.New(a.cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}
	defer application.Close()

	server := &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      application.Router(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
		IdleTimeout:  a.cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("watchlist.http.listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// runInitDB creates the schema, optionally dropping existing tables first.
func (a *App) runInitDB(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("initdb", flag.ContinueOnError)
	drop := fs.Bool("drop", false, "Create after drop.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := database.Open(database.Config{DatabasePath: a.cfg.Store.DatabasePath})
	if err != nil {
		return err
	}
	defer db.Close()

	if *drop {
		if err := db.Reset(); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, "Initialized database.")
	return nil
}

// runForge seeds the fixed sample owner and movies.
func (a *App) runForge(ctx context.Context, args []string) error {
	db, err := database.Open(database.Config{DatabasePath: a.cfg.Store.DatabasePath})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := accounts.NewService(db).Seed(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Done.")
	return nil
}

// runAdmin provisions the owner account. Missing flags are prompted for;
// the password prompt is hidden and asked twice.
func (a *App) runAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	username := fs.String("username", "", "The username used to login.")
	pass := fs.String("password", "", "The password used to login.")
	generate := fs.Bool("generate", false, "Generate a random password instead of prompting.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		name, err := a.promptText("Username")
		if err != nil {
			return err
		}
		*username = name
	}
	if *username == "" {
		return errors.New("username must not be empty")
	}

	switch {
	case *generate:
		generated, err := password.Generate(16, 4, 2, false, false)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		*pass = generated
		fmt.Fprintf(a.out, "Generated password: %s\n", generated)
	case *pass == "":
		entered, err := a.promptPasswordConfirmed()
		if err != nil {
			return err
		}
		*pass = entered
	}

	db, err := database.Open(database.Config{DatabasePath: a.cfg.Store.DatabasePath})
	if err != nil {
		return err
	}
	defer db.Close()

	svc := accounts.NewService(db)

	// Announce the branch before committing.
	owner, err := svc.Owner()
	if err != nil {
		return err
	}
	if owner != nil {
		fmt.Fprintln(a.out, "Updating user...")
	} else {
		fmt.Fprintln(a.out, "Creating user...")
	}

	if _, err := svc.Provision(*username, *pass); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Done.")
	return nil
}
