package data

import (
	"context"
	"database/sql"
	"time"

	"github.com/aoideee/book-catalog/internal/config"

	_ "github.com/lib/pq" // Register the PostgreSQL driver with database/sql.
)

// Connect builds the connection pool without contacting the database.
func Connect(cfg config.Config) (*sql.DB, error) {
	// sql.Open only validates the DSN format; it does not actually connect yet.
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.DB.MaxIdleTime)

	return db, nil
}

// OpenDB opens the connection pool, then pings the database with a 5-second
// timeout to confirm it is reachable.
func OpenDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// PingContext performs a real round-trip to verify the database is reachable.
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, classifyError("open database", err)
	}

	return db, nil
}
