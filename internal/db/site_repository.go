package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/unklstewy/astrom/pkg/coordinates"
)

// Site is a stored observing location with its weather and Earth
// orientation parameters.
type Site struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	ElevationMeters  float64   `json:"elevationMeters"`
	PressureHPa      float64   `json:"pressureHpa"`
	TemperatureC     float64   `json:"temperatureC"`
	RelativeHumidity float64   `json:"relativeHumidity"`
	WavelengthMicron float64   `json:"wavelengthMicron"`
	DUT1             float64   `json:"dut1"`
	XP               float64   `json:"xp"`
	YP               float64   `json:"yp"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Observer returns the site in the form the reducer takes.
func (s Site) Observer() coordinates.Observer {
	return coordinates.Observer{
		Name: s.Name,
		Location: coordinates.Geographic{
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
			Altitude:  s.ElevationMeters,
		},
		Weather: coordinates.Weather{
			PressureHPa:      s.PressureHPa,
			TemperatureC:     s.TemperatureC,
			RelativeHumidity: s.RelativeHumidity,
			WavelengthMicron: s.WavelengthMicron,
		},
		EOP: coordinates.EarthOrientation{
			DUT1: s.DUT1,
			XP:   s.XP,
			YP:   s.YP,
		},
	}
}

// SiteFromObserver is the inverse of Site.Observer.
func SiteFromObserver(o coordinates.Observer) Site {
	return Site{
		Name:             o.Name,
		Latitude:         o.Location.Latitude,
		Longitude:        o.Location.Longitude,
		ElevationMeters:  o.Location.Altitude,
		PressureHPa:      o.Weather.PressureHPa,
		TemperatureC:     o.Weather.TemperatureC,
		RelativeHumidity: o.Weather.RelativeHumidity,
		WavelengthMicron: o.Weather.WavelengthMicron,
		DUT1:             o.EOP.DUT1,
		XP:               o.EOP.XP,
		YP:               o.EOP.YP,
	}
}

const siteColumns = `id, name, latitude, longitude, elevation_meters,
	pressure_hpa, temperature_c, relative_humidity, wavelength_micron,
	dut1_seconds, xp_arcsec, yp_arcsec, created_at, updated_at`

func scanSite(row rowScanner) (Site, error) {
	var s Site
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Latitude,
		&s.Longitude,
		&s.ElevationMeters,
		&s.PressureHPa,
		&s.TemperatureC,
		&s.RelativeHumidity,
		&s.WavelengthMicron,
		&s.DUT1,
		&s.XP,
		&s.YP,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// SiteRepository provides methods for managing observing sites.
type SiteRepository struct {
	db *DB
}

// NewSiteRepository creates a new site repository.
func NewSiteRepository(db *DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// List returns all sites ordered by name.
func (r *SiteRepository) List(ctx context.Context) ([]Site, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+siteColumns+` FROM sites ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	var sites []Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}

	return sites, nil
}

// GetByName returns the named site, or ErrNotFound.
func (r *SiteRepository) GetByName(ctx context.Context, name string) (*Site, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+siteColumns+` FROM sites WHERE name = $1`, name)
	s, err := scanSite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("site %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site %q: %w", name, err)
	}
	return &s, nil
}

// Upsert inserts the site or replaces the stored one of the same name.
// ID and the timestamps are filled in from the database.
func (r *SiteRepository) Upsert(ctx context.Context, s *Site) error {
	query := `
		INSERT INTO sites (name, latitude, longitude, elevation_meters,
			pressure_hpa, temperature_c, relative_humidity, wavelength_micron,
			dut1_seconds, xp_arcsec, yp_arcsec)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (name) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			elevation_meters = EXCLUDED.elevation_meters,
			pressure_hpa = EXCLUDED.pressure_hpa,
			temperature_c = EXCLUDED.temperature_c,
			relative_humidity = EXCLUDED.relative_humidity,
			wavelength_micron = EXCLUDED.wavelength_micron,
			dut1_seconds = EXCLUDED.dut1_seconds,
			xp_arcsec = EXCLUDED.xp_arcsec,
			yp_arcsec = EXCLUDED.yp_arcsec,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		s.Name,
		s.Latitude,
		s.Longitude,
		s.ElevationMeters,
		s.PressureHPa,
		s.TemperatureC,
		s.RelativeHumidity,
		s.WavelengthMicron,
		s.DUT1,
		s.XP,
		s.YP,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save site %q: %w", s.Name, err)
	}
	return nil
}

// Delete removes the named site.
func (r *SiteRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sites WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete site %q: %w", name, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("site %q: %w", name, ErrNotFound)
	}
	return nil
}
