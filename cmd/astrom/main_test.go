package main

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/unklstewy/astrom/pkg/config"
	"github.com/unklstewy/astrom/pkg/coordinates"
	"github.com/unklstewy/astrom/pkg/timescale"
)

// run executes the root command with a configuration file that does not
// exist, so the defaults apply.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "missing.json")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestParseUTC(t *testing.T) {
	got, err := parseUTC("2024-06-20T14:00:00+02:00")
	if err != nil {
		t.Fatalf("parseUTC() error = %v", err)
	}
	if want := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC); !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("parseUTC() = %v, want %v", got, want)
	}

	if _, err := parseUTC("yesterday"); err == nil {
		t.Error("Expected error for a malformed instant")
	}

	now, err := parseUTC("")
	if err != nil || time.Since(now) > time.Minute {
		t.Errorf("parseUTC(\"\") = %v, %v; want now", now, err)
	}
}

func TestTimeCommand(t *testing.T) {
	out, err := run(t, "time", "--utc", "2000-01-01T11:58:55.816Z")
	if err != nil {
		t.Fatalf("time command error = %v", err)
	}
	for _, want := range []string{
		"2451545.00000000",        // TT Julian Date of J2000.0
		"2000-01-01 12:00:00.000", // TT calendar
		"2000-01-01 11:59:27.816", // TAI calendar
		"J2000.000000000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestAllInstants(t *testing.T) {
	at := time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)
	const dut1 = 0.3

	rows, code, err := allInstants(timescale.DefaultLeapSeconds(), at, dut1)
	if err != nil {
		t.Fatalf("allInstants() error = %v", err)
	}
	if code != 0 {
		t.Errorf("Expected status 0, got %d", code)
	}
	if len(rows) != len(allScales) {
		t.Fatalf("Expected %d rows, got %d", len(allScales), len(rows))
	}

	byScale := map[timescale.Scale]timescale.Instant{}
	for _, r := range rows {
		byScale[r.Scale] = r.Instant
	}
	diff := func(a, b timescale.Scale) float64 {
		x, y := byScale[a], byScale[b]
		return ((x.JD1 - y.JD1) + (x.JD2 - y.JD2)) * 86400
	}

	tests := []struct {
		name string
		a, b timescale.Scale
		want float64
		tol  float64
	}{
		{"TAI-UTC", timescale.TAI, timescale.UTC, 37, 1e-5},
		{"TT-TAI", timescale.TT, timescale.TAI, 32.184, 1e-5},
		{"UT1-UTC", timescale.UT1, timescale.UTC, dut1, 1e-5},
		{"TDB-TT", timescale.TDB, timescale.TT, 0, 0.002},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diff(tt.a, tt.b); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("%s = %.6f s, want %.6f s", tt.name, got, tt.want)
			}
		})
	}

	if got := formatDateTime(rows[0].Calendar); got != "2017-03-01 00:00:00.000" {
		t.Errorf("UTC calendar = %s", got)
	}
}

func TestGeodeticCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default ellipsoid", []string{"--lat", "0", "--lon", "0"}, "6378137.000 m"},
		{"WGS72", []string{"--lat", "0", "--lon", "0", "--ellipsoid", "WGS72"}, "6378135.000 m"},
		{"pole", []string{"--lat", "90", "--lon", "0"}, "6356752.314 m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"geodetic"}, tt.args...)...)
			if err != nil {
				t.Fatalf("geodetic command error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Output missing %q:\n%s", tt.want, out)
			}
		})
	}

	t.Run("unknown ellipsoid", func(t *testing.T) {
		if _, err := run(t, "geodetic", "--lat", "0", "--lon", "0", "--ellipsoid", "Clarke1866"); err == nil {
			t.Error("Expected error for unknown ellipsoid")
		}
	})

	t.Run("missing latitude", func(t *testing.T) {
		if _, err := run(t, "geodetic", "--lon", "0"); err == nil {
			t.Error("Expected error when --lat is missing")
		}
	})
}

func TestObserveCommand(t *testing.T) {
	at := "2024-06-20T03:00:00Z"
	out, err := run(t, "observe", "--name", "Arcturus",
		"--ra", "14.26102", "--dec", "19.18241",
		"--pmra", "-1093.45", "--pmdec", "-1999.4", "--parallax", "88.83", "--rv", "-5.19",
		"--utc", at)
	if err != nil {
		t.Fatalf("observe command error = %v", err)
	}

	cfg := config.DefaultConfig()
	r, err := cfg.Reducer()
	if err != nil {
		t.Fatal(err)
	}
	when, _ := time.Parse(time.RFC3339, at)
	p, err := r.ObservedPlace(coordinates.CatalogStar{
		Name: "Arcturus", RightAscension: 14.26102, Declination: 19.18241,
		PMRA: -1093.45, PMDec: -1999.4, Parallax: 88.83, RadialVelocity: -5.19,
	}, cfg.Site(), when)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Arcturus", deg(p.Horizontal.Azimuth), deg(p.Horizontal.Altitude), hours(p.HourAngle)} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestSunCommand(t *testing.T) {
	out, err := run(t, "sun", "--utc", "2024-06-20T12:00:00Z", "--alt", "60", "--az", "180")
	if err != nil {
		t.Fatalf("sun command error = %v", err)
	}
	// At the configured default site (0°, 0°) the Sun is 23.4° from the zenith
	// and far from the pointing.
	if !strings.Contains(out, "true") || !strings.Contains(out, "CLEAR") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

func TestReduceCatalog(t *testing.T) {
	cfg := config.DefaultConfig()
	r, err := cfg.Reducer()
	if err != nil {
		t.Fatal(err)
	}
	obs := cfg.Site()
	at := time.Date(2024, 1, 15, 21, 30, 0, 0, time.UTC)

	stars := []coordinates.CatalogStar{
		{Name: "Betelgeuse", RightAscension: 5.919529, Declination: 7.407064, PMRA: 27.54, PMDec: 11.3, Parallax: 6.55, RadialVelocity: 21.91},
		{Name: "Sirius", RightAscension: 6.752481, Declination: -16.716116, PMRA: -546.01, PMDec: -1223.07, Parallax: 379.21, RadialVelocity: -5.5},
		{Name: "Polaris", RightAscension: 2.530301, Declination: 89.264109, PMRA: 44.48, PMDec: -11.85, Parallax: 7.54, RadialVelocity: -16.42},
	}

	reduced, err := reduceCatalog(r, obs, stars, at)
	if err != nil {
		t.Fatalf("reduceCatalog() error = %v", err)
	}
	if len(reduced) != len(stars) {
		t.Fatalf("Expected %d results, got %d", len(stars), len(reduced))
	}

	for i, s := range stars {
		want, err := r.ObservedPlace(s, obs, at)
		if err != nil {
			t.Fatal(err)
		}
		got := reduced[i]
		if got.Name != s.Name {
			t.Errorf("Result %d is %s, want %s", i, got.Name, s.Name)
		}
		if math.Abs(got.Position.Horizontal.Azimuth-want.Horizontal.Azimuth) > 1e-12 ||
			math.Abs(got.Position.Horizontal.Altitude-want.Horizontal.Altitude) > 1e-12 {
			t.Errorf("%s: reduced %+v, single %+v", s.Name, got.Position.Horizontal, want.Horizontal)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"observer": {"latitude": 100}}`), 0644); err != nil {
		t.Fatal(err)
	}

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", path, "time"})
	if err := root.Execute(); err == nil {
		t.Error("Expected error for latitude out of range")
	}
}
