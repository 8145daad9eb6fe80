package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/unklstewy/astrom/pkg/config"
)

//go:embed schema.sql
var schemaSQL embed.FS

// ErrNotFound is returned when a site or star does not exist.
var ErrNotFound = errors.New("not found")

// DB wraps a database connection with helper methods.
type DB struct {
	*sql.DB
	config config.DatabaseConfig
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// connectionString builds the lib/pq keyword/value connection string.
func connectionString(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
		cfg.Database,
		cfg.SSLMode,
	)
}

// Connect establishes a connection to the PostgreSQL database.
func Connect(cfg config.DatabaseConfig) (*DB, error) {
	sqlDB, err := sql.Open("postgres", connectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: sqlDB, config: cfg}, nil
}

// InitSchema creates or updates the database schema.
// This should be called once at application startup.
func (db *DB) InitSchema(ctx context.Context) error {
	schemaBytes, err := schemaSQL.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(schemaBytes)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// GetStats returns row counts of the catalog tables.
func (db *DB) GetStats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)

	for key, query := range map[string]string{
		"sites":         `SELECT COUNT(*) FROM sites`,
		"catalog_stars": `SELECT COUNT(*) FROM catalog_stars`,
	} {
		var n int64
		if err := db.QueryRowContext(ctx, query).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", key, err)
		}
		stats[key] = n
	}

	return stats, nil
}
