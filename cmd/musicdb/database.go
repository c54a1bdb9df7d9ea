package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// pingRetry bounds how long startup waits for Postgres to accept connections.
type pingRetry struct {
	attemptTimeout time.Duration
	maxWait        time.Duration
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

var startupRetry = pingRetry{
	attemptTimeout: 5 * time.Second,
	maxWait:        30 * time.Second,
	initialBackoff: 500 * time.Millisecond,
	maxBackoff:     5 * time.Second,
}

// openDatabase opens a pool on the named driver ("pgx" or "postgres") and
// blocks until the server answers a ping.
func openDatabase(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := startupRetry.wait(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// wait pings db with exponential backoff until it answers, maxWait elapses or
// ctx is done.
func (r pingRetry) wait(ctx context.Context, db *sql.DB) error {
	deadline := time.Now().Add(r.maxWait)
	backoff := r.initialBackoff

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
		err := db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if time.Now().Add(backoff).After(deadline) {
			return fmt.Errorf("ping database after %d attempts: %w", attempt, err)
		}

		log.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", backoff).Msg("database not ready")

		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, r.maxBackoff)
	}
}
