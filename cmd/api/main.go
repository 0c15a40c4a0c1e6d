// Package main is the entry point for the book catalog API server.
// It wires together configuration, the database connection, and the HTTP router.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/aoideee/book-catalog/internal/catalog"
	"github.com/aoideee/book-catalog/internal/config"
	"github.com/aoideee/book-catalog/internal/data"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config  config.Config     // Settings loaded from the environment and flags
	logger  *slog.Logger      // Structured logger that writes to stdout
	catalog *catalog.Handlers // Book operations shared with the Lambda functions
}

// main is the application entry point.
// It loads configuration, opens the database, wires up dependencies, and starts the HTTP server.
func main() {
	// Create a structured logger that writes human-readable text to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	settings, err := config.Load()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	// Command-line flags override the environment.
	flag.IntVar(&settings.Port, "port", settings.Port, "Server port")
	flag.StringVar(&settings.Env, "env", settings.Env, "Environment(development|staging|production)")
	flag.StringVar(&settings.DB.DSN, "db-dsn", settings.DB.DSN, "PostgreSQL DSN (overrides DB_* variables)")
	flag.BoolVar(&settings.Limiter.Enabled, "limiter-enabled", settings.Limiter.Enabled, "Enable per-IP rate limiter")
	flag.Parse()

	ctx := context.Background()

	// Open and verify the database connection pool.
	db, err := data.OpenDB(ctx, settings)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close() // Close the pool cleanly when main() returns.

	logger.Info("database connection pool established")

	models := data.NewModels(db)
	if err := models.Books.EnsureSchema(ctx); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	// Bundle all shared dependencies into a single struct.
	appInstance := &applicationDependencies{
		config:  settings,
		logger:  logger,
		catalog: catalog.New(models.Books, logger),
	}

	logger.Info("book catalog", "version", appVersion)

	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
