package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/unklstewy/astrom/pkg/coordinates"
)

// Star is a catalog entry. Positions are ICRS at the catalog epoch.
type Star struct {
	ID             int
	Name           string
	RAHours        float64
	DecDegrees     float64
	PMRA           float64 // mas/yr, includes cos(Dec)
	PMDec          float64 // mas/yr
	ParallaxMas    float64
	RadialVelocity float64 // km/s
	Magnitude      sql.NullFloat64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CatalogStar returns the entry in the form the reducer takes.
func (s Star) CatalogStar() coordinates.CatalogStar {
	return coordinates.CatalogStar{
		Name:           s.Name,
		RightAscension: s.RAHours,
		Declination:    s.DecDegrees,
		PMRA:           s.PMRA,
		PMDec:          s.PMDec,
		Parallax:       s.ParallaxMas,
		RadialVelocity: s.RadialVelocity,
	}
}

const starColumns = `id, name, ra_hours, dec_degrees, pm_ra_mas_yr, pm_dec_mas_yr,
	parallax_mas, radial_velocity_kms, magnitude, created_at, updated_at`

func scanStar(row rowScanner) (Star, error) {
	var s Star
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.RAHours,
		&s.DecDegrees,
		&s.PMRA,
		&s.PMDec,
		&s.ParallaxMas,
		&s.RadialVelocity,
		&s.Magnitude,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// StarRepository provides methods for the star catalog.
type StarRepository struct {
	db *DB
}

// NewStarRepository creates a new star repository.
func NewStarRepository(db *DB) *StarRepository {
	return &StarRepository{db: db}
}

// List returns stars brightest first, then by name. A limit of zero or
// less returns the whole catalog.
func (r *StarRepository) List(ctx context.Context, limit int) ([]Star, error) {
	query := `SELECT ` + starColumns + ` FROM catalog_stars
		ORDER BY magnitude ASC NULLS LAST, name ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stars: %w", err)
	}
	defer rows.Close()

	var stars []Star
	for rows.Next() {
		s, err := scanStar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan star: %w", err)
		}
		stars = append(stars, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stars: %w", err)
	}

	return stars, nil
}

// GetByName returns the named star, or ErrNotFound.
func (r *StarRepository) GetByName(ctx context.Context, name string) (*Star, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+starColumns+` FROM catalog_stars WHERE name = $1`, name)
	s, err := scanStar(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("star %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get star %q: %w", name, err)
	}
	return &s, nil
}

// Upsert inserts the star or replaces the stored one of the same name.
func (r *StarRepository) Upsert(ctx context.Context, s *Star) error {
	query := `
		INSERT INTO catalog_stars (name, ra_hours, dec_degrees, pm_ra_mas_yr,
			pm_dec_mas_yr, parallax_mas, radial_velocity_kms, magnitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO UPDATE SET
			ra_hours = EXCLUDED.ra_hours,
			dec_degrees = EXCLUDED.dec_degrees,
			pm_ra_mas_yr = EXCLUDED.pm_ra_mas_yr,
			pm_dec_mas_yr = EXCLUDED.pm_dec_mas_yr,
			parallax_mas = EXCLUDED.parallax_mas,
			radial_velocity_kms = EXCLUDED.radial_velocity_kms,
			magnitude = EXCLUDED.magnitude,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		s.Name,
		s.RAHours,
		s.DecDegrees,
		s.PMRA,
		s.PMDec,
		s.ParallaxMas,
		s.RadialVelocity,
		s.Magnitude,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save star %q: %w", s.Name, err)
	}
	return nil
}

// Count returns the number of stars in the catalog.
func (r *StarRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM catalog_stars`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count stars: %w", err)
	}
	return n, nil
}
