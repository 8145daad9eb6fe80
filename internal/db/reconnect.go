package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/unklstewy/astrom/pkg/config"
)

// maxBackoff caps the delay between reconnection attempts.
const maxBackoff = 60 * time.Second

// ReconnectWithRetry attempts to connect to the database with exponential backoff.
// maxRetries of 0 retries until ctx is done.
func ReconnectWithRetry(ctx context.Context, cfg config.DatabaseConfig, maxRetries int, initialDelay time.Duration) (*DB, error) {
	delay := initialDelay

	for attempt := 1; ; attempt++ {
		log.Printf("Database connection attempt %d...", attempt)

		db, err := Connect(cfg)
		if err == nil {
			log.Println("Database connected")
			return db, nil
		}

		if maxRetries > 0 && attempt >= maxRetries {
			return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempt, err)
		}

		log.Printf("Connection failed: %v (retry in %v)", err, delay)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("gave up connecting: %w", ctx.Err())
		case <-time.After(delay):
		}

		delay = nextBackoff(delay)
	}
}

// nextBackoff doubles the delay up to maxBackoff.
func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}

// EnsureConnection returns db if it answers a ping and otherwise a fresh
// connection. The reduce command calls it before loading the catalog.
func EnsureConnection(ctx context.Context, db *DB, cfg config.DatabaseConfig) (*DB, error) {
	if db == nil || db.DB == nil {
		log.Println("Database connection is nil, attempting to reconnect...")
		return ReconnectWithRetry(ctx, cfg, 3, time.Second)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		log.Printf("Database connection lost: %v", err)
		db.Close()
		return ReconnectWithRetry(ctx, cfg, 3, time.Second)
	}

	return db, nil
}

// HealthCheck reports whether the database answers a ping and a trivial query.
func HealthCheck(ctx context.Context, db *DB) bool {
	if db == nil || db.DB == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Printf("Health check failed - ping error: %v", err)
		return false
	}

	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		log.Printf("Health check failed - query error: %v", err)
		return false
	}

	return result == 1
}

// connErrors are the error fragments lib/pq and net report for a lost connection.
var connErrors = []string{
	"connection refused",
	"broken pipe",
	"no connection",
	"connection reset",
	"bad connection",
	"eof",
	"timeout",
}

// isConnectionError reports whether err looks like a transient connection failure.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// SQLSTATE class 08 is connection exception; 57P01 is admin shutdown.
		return pqErr.Code.Class() == "08" || pqErr.Code == "57P01"
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range connErrors {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// WithRetry runs operation, retrying up to maxRetries times while it fails
// with a connection error. Other errors are returned at once.
func WithRetry(ctx context.Context, operation func() error, maxRetries int, wait time.Duration) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if !isConnectionError(err) {
			return err
		}

		if attempt < maxRetries {
			waitTime := time.Duration(attempt+1) * wait
			log.Printf("Database operation failed (attempt %d/%d): %v (retry in %v)",
				attempt+1, maxRetries+1, err, waitTime)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(waitTime):
			}
		}
	}

	return lastErr
}
