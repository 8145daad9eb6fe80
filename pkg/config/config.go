package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/unklstewy/astrom/pkg/coordinates"
	"github.com/unklstewy/astrom/pkg/geodesy"
	"github.com/unklstewy/astrom/pkg/orientation"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/tracking"
)

// Config represents the complete application configuration.
type Config struct {
	Observer         ObserverConfig         `json:"observer"`
	Atmosphere       AtmosphereConfig       `json:"atmosphere"`
	EarthOrientation EarthOrientationConfig `json:"earth_orientation"`
	Telescope        TelescopeConfig        `json:"telescope"`
	Database         DatabaseConfig         `json:"database"`
	LeapSeconds      LeapSecondsConfig      `json:"leap_seconds"`
}

// ObserverConfig contains the observer's geographic location.
// This is the default site when no site is named on the command line.
type ObserverConfig struct {
	// Name is a friendly identifier for this observer location
	Name string `json:"name"`

	// Latitude in decimal degrees (-90 to +90), geodetic
	Latitude float64 `json:"latitude"`

	// Longitude in decimal degrees (-180 to +180), east positive
	Longitude float64 `json:"longitude"`

	// Elevation in meters above the ellipsoid
	Elevation float64 `json:"elevation"`

	// TimeZone is the IANA timezone name (e.g., "America/New_York")
	// Only used for display; all calculations use UTC
	TimeZone string `json:"timezone"`
}

// AtmosphereConfig holds the conditions used for refraction.
// A pressure of zero disables refraction.
type AtmosphereConfig struct {
	PressureHPa      float64 `json:"pressure_hpa"`
	TemperatureC     float64 `json:"temperature_c"`
	RelativeHumidity float64 `json:"relative_humidity"`
	WavelengthMicron float64 `json:"wavelength_micron"`
}

// EarthOrientationConfig holds the IERS parameters and the model choices.
type EarthOrientationConfig struct {
	// DUT1 is UT1-UTC in seconds, from IERS Bulletin A
	DUT1 float64 `json:"dut1"`

	// XP and YP are the polar motion coordinates in arcseconds
	XP float64 `json:"xp"`
	YP float64 `json:"yp"`

	// Model is the precession-nutation model: IAU1980, IAU2000A,
	// IAU2000B or IAU2006A
	Model string `json:"model"`

	// Ellipsoid is the reference ellipsoid for site coordinates
	Ellipsoid string `json:"ellipsoid"`
}

// TelescopeConfig describes the mount the reductions are checked against.
type TelescopeConfig struct {
	// MountType is either "altaz" or "equatorial"
	MountType string `json:"mount_type"`

	// MinAltitude and MaxAltitude bound the trackable observed altitude
	// in degrees
	MinAltitude float64 `json:"min_altitude"`
	MaxAltitude float64 `json:"max_altitude"`

	// MeridianFlipHourAngle is the hour angle limit in hours for
	// equatorial mounts
	MeridianFlipHourAngle float64 `json:"meridian_flip_hour_angle"`
}

// Limits returns the tracking limits of the mount.
func (t TelescopeConfig) Limits() tracking.TrackingLimits {
	return tracking.TrackingLimits{
		MinAltitude:           t.MinAltitude,
		MaxAltitude:           t.MaxAltitude,
		MeridianFlipHourAngle: t.MeridianFlipHourAngle,
		Equatorial:            t.MountType == "equatorial",
	}
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	// Driver is the database driver (postgres)
	Driver string `json:"driver"`

	// Host is the database server hostname
	Host string `json:"host"`

	// Port is the database server port
	Port int `json:"port"`

	// Database is the database name
	Database string `json:"database"`

	// Username for database authentication
	Username string `json:"username"`

	// Password for database authentication (should be loaded from environment)
	Password string `json:"password"`

	// SSLMode for PostgreSQL connections (disable, require, verify-ca, verify-full)
	SSLMode string `json:"ssl_mode"`

	// MaxOpenConns is the maximum number of open connections
	MaxOpenConns int `json:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle connections
	MaxIdleConns int `json:"max_idle_conns"`
}

// LeapSecondsConfig extends the built-in leap second history with leap
// seconds announced after the release.
type LeapSecondsConfig struct {
	// Extra entries are appended to the built-in table
	Extra []timescale.LeapSecond `json:"extra,omitempty"`

	// ValidThrough is the last year the table is known to cover
	// 0 keeps the built-in value
	ValidThrough int `json:"valid_through,omitempty"`
}

// Load reads configuration from a JSON file.
// If the file doesn't exist, returns a default configuration.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Observer: ObserverConfig{
			Name:      "Primary Observer",
			Latitude:  0.0,
			Longitude: 0.0,
			Elevation: 0.0,
			TimeZone:  "UTC",
		},
		Atmosphere: AtmosphereConfig{
			PressureHPa:      1013.25,
			TemperatureC:     10.0,
			RelativeHumidity: 0.5,
			WavelengthMicron: 0.55, // visual
		},
		EarthOrientation: EarthOrientationConfig{
			Model:     orientation.IAU2006A.String(),
			Ellipsoid: geodesy.WGS84.String(),
		},
		Telescope: TelescopeConfig{
			MountType:             "altaz",
			MinAltitude:           15.0,
			MaxAltitude:           85.0,
			MeridianFlipHourAngle: 6.0,
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			Host:         "localhost",
			Port:         5432,
			Database:     "astrom",
			Username:     "astrom",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
	}
}

// Validate checks the configuration for values the engine would reject or
// silently misuse.
func (c *Config) Validate() error {
	o := c.Observer
	if o.Latitude < -90 || o.Latitude > 90 {
		return fmt.Errorf("observer latitude %g out of range [-90, 90]", o.Latitude)
	}
	if o.Longitude < -180 || o.Longitude > 180 {
		return fmt.Errorf("observer longitude %g out of range [-180, 180]", o.Longitude)
	}
	if o.TimeZone != "" {
		if _, err := time.LoadLocation(o.TimeZone); err != nil {
			return fmt.Errorf("invalid observer timezone: %w", err)
		}
	}

	a := c.Atmosphere
	if a.PressureHPa < 0 {
		return fmt.Errorf("negative pressure %g hPa", a.PressureHPa)
	}
	if a.RelativeHumidity < 0 || a.RelativeHumidity > 1 {
		return fmt.Errorf("relative humidity %g out of range [0, 1]", a.RelativeHumidity)
	}
	if a.PressureHPa > 0 && a.WavelengthMicron <= 0 {
		return fmt.Errorf("wavelength must be positive when refraction is enabled")
	}

	e := c.EarthOrientation
	if e.DUT1 < -1 || e.DUT1 > 1 {
		return fmt.Errorf("DUT1 %g s out of range [-1, 1]", e.DUT1)
	}
	if _, err := orientation.ParseModel(e.Model); err != nil {
		return err
	}
	if _, err := geodesy.ParseEllipsoid(e.Ellipsoid); err != nil {
		return err
	}

	switch c.Telescope.MountType {
	case "altaz", "equatorial":
	default:
		return fmt.Errorf("unknown mount type %q", c.Telescope.MountType)
	}
	if err := c.Telescope.Limits().Validate(); err != nil {
		return fmt.Errorf("invalid telescope limits: %w", err)
	}

	if _, err := c.LeapSeconds.Table(); err != nil {
		return err
	}
	return nil
}

// Site returns the configured observer in facade form.
func (c *Config) Site() coordinates.Observer {
	return coordinates.Observer{
		Name: c.Observer.Name,
		Location: coordinates.Geographic{
			Latitude:  c.Observer.Latitude,
			Longitude: c.Observer.Longitude,
			Altitude:  c.Observer.Elevation,
		},
		Weather: coordinates.Weather{
			PressureHPa:      c.Atmosphere.PressureHPa,
			TemperatureC:     c.Atmosphere.TemperatureC,
			RelativeHumidity: c.Atmosphere.RelativeHumidity,
			WavelengthMicron: c.Atmosphere.WavelengthMicron,
		},
		EOP: coordinates.EarthOrientation{
			DUT1: c.EarthOrientation.DUT1,
			XP:   c.EarthOrientation.XP,
			YP:   c.EarthOrientation.YP,
		},
	}
}

// Reducer returns the reducer for the configured model.
func (c *Config) Reducer() (coordinates.Reducer, error) {
	return coordinates.NewReducer(c.EarthOrientation.Model)
}

// Table builds the leap second table: the built-in history followed by
// the extra entries.
func (l LeapSecondsConfig) Table() (*timescale.LeapSecondTable, error) {
	if len(l.Extra) == 0 && l.ValidThrough == 0 {
		return timescale.DefaultLeapSeconds(), nil
	}
	def := timescale.DefaultLeapSeconds()
	validThrough := l.ValidThrough
	if validThrough == 0 {
		validThrough = def.ValidThrough()
	}
	t, err := timescale.NewLeapSecondTable(append(def.Entries(), l.Extra...), validThrough)
	if err != nil {
		return nil, fmt.Errorf("failed to build leap second table: %w", err)
	}
	return t, nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
// This allows passwords to be kept out of config files and the Earth
// orientation parameters to be refreshed from a cron job.
func (c *Config) applyEnvironmentOverrides() error {
	if dbPassword := os.Getenv("ASTROM_DB_PASSWORD"); dbPassword != "" {
		c.Database.Password = dbPassword
	}
	if dbHost := os.Getenv("ASTROM_DB_HOST"); dbHost != "" {
		c.Database.Host = dbHost
	}

	floats := []struct {
		env string
		dst *float64
	}{
		{"ASTROM_DUT1", &c.EarthOrientation.DUT1},
		{"ASTROM_XP", &c.EarthOrientation.XP},
		{"ASTROM_YP", &c.EarthOrientation.YP},
		{"ASTROM_OBSERVER_LAT", &c.Observer.Latitude},
		{"ASTROM_OBSERVER_LON", &c.Observer.Longitude},
		{"ASTROM_OBSERVER_ELEV", &c.Observer.Elevation},
	}
	for _, f := range floats {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dst = x
	}
	return nil
}
