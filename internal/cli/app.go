// Package cli implements the administrative command surface: serve, initdb,
// forge and admin. Commands are looked up in an explicit table built at
// startup and run one at a time, outside of request serving.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"watchlist/config"
)

// App holds the command table and the streams commands talk to.
type App struct {
	cfg      *config.Config
	in       *bufio.Reader
	out      io.Writer
	commands map[string]command
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

// NewApp builds the command table for the given configuration.
func NewApp(cfg *config.Config) *App {
	a := &App{
		cfg: cfg,
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}

	table := []command{
		{"serve", "serve", a.runServe},
		{"initdb", "initdb [--drop]", a.runInitDB},
		{"forge", "forge", a.runForge},
		{"admin", "admin [--username U] [--password P] [--generate]", a.runAdmin},
	}
	a.commands = make(map[string]command, len(table))
	for _, c := range table {
		a.commands[c.name] = c
	}

	return a
}

// Run dispatches args (without the program name) to a command. No arguments
// means serve.
func (a *App) Run(ctx context.Context, args []string) error {
	name := "serve"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("unknown command %q", name)
	}
	return cmd.run(ctx, args)
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "usage: watchlist <command>")
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}
