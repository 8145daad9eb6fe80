package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/unklstewy/astrom/pkg/config"
	"github.com/unklstewy/astrom/pkg/coordinates"
)

// TestConnect tests database connection with various configurations.
func TestConnect(t *testing.T) {
	t.Run("Valid connection string formatting", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			Username:     "testuser",
			Password:     "testpass",
			Database:     "testdb",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		}

		// Fails if no database is running.
		db, err := Connect(cfg)
		if err != nil {
			if !strings.Contains(err.Error(), "failed to") {
				t.Errorf("Unexpected error format: %v", err)
			}
			return
		}

		if db.DB == nil {
			t.Error("Expected DB field to be initialized")
		}
		if db.config.Host != cfg.Host {
			t.Errorf("Expected host %s, got %s", cfg.Host, db.config.Host)
		}
		db.Close()
	})
}

func TestConnectionString(t *testing.T) {
	cfg := config.DefaultConfig().Database
	cfg.Password = "secret"

	got := connectionString(cfg)
	want := "host=localhost port=5432 user=astrom password=secret dbname=astrom sslmode=disable"
	if got != want {
		t.Errorf("connectionString() = %q, want %q", got, want)
	}
}

func TestReconnectWithRetry(t *testing.T) {
	cfg := config.DefaultConfig().Database
	cfg.Host = "127.0.0.1"
	cfg.Port = 1 // nothing listens here

	start := time.Now()
	db, err := ReconnectWithRetry(context.Background(), cfg, 1, time.Hour)
	if err == nil {
		db.Close()
		t.Fatal("Expected connection to port 1 to fail")
	}
	if !strings.Contains(err.Error(), "after 1 attempts") {
		t.Errorf("Unexpected error: %v", err)
	}
	if time.Since(start) > 30*time.Second {
		t.Error("Single attempt should not wait for the retry delay")
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ReconnectWithRetry(ctx, cfg, 0, time.Hour)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestNextBackoff(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{time.Second, 2 * time.Second},
		{20 * time.Second, 40 * time.Second},
		{40 * time.Second, maxBackoff},
		{maxBackoff, maxBackoff},
	}
	for _, tt := range tests {
		if got := nextBackoff(tt.in); got != tt.want {
			t.Errorf("nextBackoff(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHealthCheckNil(t *testing.T) {
	if HealthCheck(context.Background(), nil) {
		t.Error("nil database reported healthy")
	}
	if HealthCheck(context.Background(), &DB{}) {
		t.Error("unopened database reported healthy")
	}
}

func TestEnsureConnectionNil(t *testing.T) {
	cfg := config.DefaultConfig().Database
	cfg.Host = "127.0.0.1"
	cfg.Port = 1 // nothing listens here

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, in := range []*DB{nil, {}} {
		db, err := EnsureConnection(ctx, in, cfg)
		if err == nil {
			db.Close()
			t.Fatal("Expected reconnect to port 1 to fail")
		}
		if db != nil {
			t.Error("Failed reconnect returned a database")
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("dial tcp 127.0.0.1:5432: connect: Connection Refused"), true},
		{fmt.Errorf("query: %w", errors.New("write: broken pipe")), true},
		{errors.New("driver: bad connection"), true},
		{errors.New("unexpected EOF"), true},
		{errors.New(`pq: relation "sites" does not exist`), false},
		{sql.ErrNoRows, false},
		{&pq.Error{Code: "08006", Message: "connection failure"}, true},
		{fmt.Errorf("save: %w", &pq.Error{Code: "57P01"}), true},
		{&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}, false},
		{&pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"}, false},
	}
	for _, tt := range tests {
		if got := isConnectionError(tt.err); got != tt.want {
			t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			if calls < 3 {
				return errors.New("connection reset by peer")
			}
			return nil
		}, 3, time.Millisecond)
		if err != nil {
			t.Fatalf("WithRetry() error = %v", err)
		}
		if calls != 3 {
			t.Errorf("Expected 3 calls, got %d", calls)
		}
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return ErrNotFound
		}, 3, time.Millisecond)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if calls != 1 {
			t.Errorf("Expected 1 call, got %d", calls)
		}
	})

	t.Run("returns last error when retries run out", func(t *testing.T) {
		calls := 0
		err := WithRetry(ctx, func() error {
			calls++
			return fmt.Errorf("attempt %d: timeout", calls)
		}, 2, time.Millisecond)
		if err == nil || err.Error() != "attempt 3: timeout" {
			t.Errorf("Expected last error, got %v", err)
		}
	})
}

// fakeRow scans a fixed list of values into the destinations.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = r.values[i].(int)
		case *string:
			*p = r.values[i].(string)
		case *float64:
			*p = r.values[i].(float64)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *sql.NullFloat64:
			if err := p.Scan(r.values[i]); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported destination %T", d)
		}
	}
	return nil
}

func TestScanSite(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	row := fakeRow{values: []any{
		7, "Paranal", -24.6272, -70.4042, 2635.0,
		743.0, 12.0, 0.2, 0.55,
		0.0123, 0.12, 0.34, now, now,
	}}

	s, err := scanSite(row)
	if err != nil {
		t.Fatalf("scanSite() error = %v", err)
	}

	obs := s.Observer()
	if obs.Name != "Paranal" || obs.Location.Latitude != -24.6272 || obs.Location.Altitude != 2635 {
		t.Errorf("Unexpected location %+v", obs.Location)
	}
	if obs.Weather.PressureHPa != 743 || obs.Weather.WavelengthMicron != 0.55 {
		t.Errorf("Unexpected weather %+v", obs.Weather)
	}
	if obs.EOP != (coordinates.EarthOrientation{DUT1: 0.0123, XP: 0.12, YP: 0.34}) {
		t.Errorf("Unexpected EOP %+v", obs.EOP)
	}

	back := SiteFromObserver(obs)
	back.ID, back.CreatedAt, back.UpdatedAt = s.ID, s.CreatedAt, s.UpdatedAt
	if back != s {
		t.Errorf("SiteFromObserver(Observer()) = %+v, want %+v", back, s)
	}
}

func TestScanStar(t *testing.T) {
	now := time.Now().UTC()
	row := fakeRow{values: []any{
		1, "Rigil Kentaurus", 14.66013772, -60.83399269,
		-3679.25, 473.67, 742.0, -21.4, -0.01, now, now,
	}}

	s, err := scanStar(row)
	if err != nil {
		t.Fatalf("scanStar() error = %v", err)
	}
	if !s.Magnitude.Valid || s.Magnitude.Float64 != -0.01 {
		t.Errorf("Unexpected magnitude %+v", s.Magnitude)
	}

	cs := s.CatalogStar()
	want := coordinates.CatalogStar{
		Name:           "Rigil Kentaurus",
		RightAscension: 14.66013772,
		Declination:    -60.83399269,
		PMRA:           -3679.25,
		PMDec:          473.67,
		Parallax:       742.0,
		RadialVelocity: -21.4,
	}
	if cs != want {
		t.Errorf("CatalogStar() = %+v, want %+v", cs, want)
	}

	t.Run("null magnitude", func(t *testing.T) {
		row.values[8] = nil
		s, err := scanStar(row)
		if err != nil {
			t.Fatalf("scanStar() error = %v", err)
		}
		if s.Magnitude.Valid {
			t.Error("Expected NULL magnitude")
		}
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := scanStar(fakeRow{err: sql.ErrNoRows})
		if !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("Expected sql.ErrNoRows, got %v", err)
		}
	})
}
