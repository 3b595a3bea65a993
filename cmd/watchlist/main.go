package main

import (
	"context"
	"fmt"
	"os"

	"watchlist/config"
	"watchlist/internal/cli"
	"watchlist/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log)

	app := cli.NewApp(cfg)
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "watchlist: %v\n", err)
		os.Exit(1)
	}
}
