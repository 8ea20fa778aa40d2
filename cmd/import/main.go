// Command import loads a realtime-database JSON export, or the demo data,
// into the SQLite store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playperu/sportselect/internal/config"
	"github.com/playperu/sportselect/internal/database"
	"github.com/playperu/sportselect/internal/migrations"
	"github.com/playperu/sportselect/internal/provider"
)

var errUsage = errors.New("usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "Path to the JSON export. Use - for stdin.")
	dbPath := fs.String("db", cfg.DBPath, "SQLite database path.")
	seed := fs.Bool("seed", false, "Load the demo data instead of a file (only into an empty store).")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if (*file == "") == !*seed {
		fmt.Fprintln(stderr, "exactly one of -file or -seed is required")
		fs.Usage()
		return errUsage
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	db, err := database.Open(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	store := provider.NewSQLStore(db, logger)

	if *seed {
		return provider.Seed(ctx, store)
	}

	var r io.Reader = os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("opening export: %w", err)
		}
		defer f.Close()
		r = f
	}

	_, err = provider.Import(ctx, store, r)
	return err
}
