package coordinates

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"

	"github.com/unklstewy/astrom/pkg/astrometry"
	"github.com/unklstewy/astrom/pkg/status"
)

// Atacama site of the astrometry package tests, in facade units.
var atacama = Observer{
	Name: "atacama",
	Location: Geographic{
		Latitude:  -1.2345856 * RadiansToDegrees,
		Longitude: -0.527800806 * RadiansToDegrees,
		Altitude:  2738.0,
	},
	Weather: Weather{PressureHPa: 731.0, TemperatureC: 12.8, RelativeHumidity: 0.59, WavelengthMicron: 0.55},
	EOP:     EarthOrientation{DUT1: 0.1550675, XP: 0.0509953, YP: 0.3767214},
}

var greenwich = Observer{
	Name:     "greenwich",
	Location: Geographic{Latitude: 51.4769, Longitude: -0.0005, Altitude: 46.0},
}

func angleDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

// TestGeographicToHorizontal tests the conversion from geographic to horizontal coordinates
func TestGeographicToHorizontal(t *testing.T) {
	observer := Geographic{Latitude: 40.0, Longitude: -74.0, Altitude: 100.0}

	tests := []struct {
		name      string
		target    Geographic
		wantAlt   float64 // Expected altitude (degrees)
		wantAz    float64 // Expected azimuth (degrees)
		tolerance float64 // Tolerance for comparison
	}{
		{
			name:      "Target directly north at same height",
			target:    Geographic{Latitude: 41.0, Longitude: -74.0, Altitude: 100.0},
			wantAlt:   -0.5, // below the horizon by half the arc
			wantAz:    0.0,
			tolerance: 0.05,
		},
		{
			name:      "Target directly east at same height",
			target:    Geographic{Latitude: 40.0, Longitude: -73.0, Altitude: 100.0},
			wantAlt:   -0.38,
			wantAz:    89.7, // great circle heading leans north
			tolerance: 0.1,
		},
		{
			name:      "Target above observer",
			target:    Geographic{Latitude: 40.0, Longitude: -74.0, Altitude: 10100.0},
			wantAlt:   90.0,
			wantAz:    0.0,
			tolerance: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, rng, err := GeographicToHorizontal(tt.target, observer)
			if err != nil {
				t.Fatalf("GeographicToHorizontal() error = %v", err)
			}
			if rng <= 0 {
				t.Errorf("range = %.1f, want positive", rng)
			}

			if math.Abs(result.Altitude-tt.wantAlt) > tt.tolerance {
				t.Errorf("Altitude = %.4f, want %.4f (±%.4f)", result.Altitude, tt.wantAlt, tt.tolerance)
			}

			// Azimuth is meaningless at the zenith
			if result.Altitude < 80.0 {
				if d := angleDiff(result.Azimuth, tt.wantAz); d > tt.tolerance {
					t.Errorf("Azimuth = %.4f, want %.4f (±%.4f)", result.Azimuth, tt.wantAz, tt.tolerance)
				}
			}
		})
	}

	if _, _, err := GeographicToHorizontal(observer, observer); !errors.Is(err, ErrCoincident) {
		t.Errorf("coincident error = %v, want ErrCoincident", err)
	}
}

func TestSplitJulianDate(t *testing.T) {
	tests := []struct {
		name      string
		time      time.Time
		wantJD1   float64
		wantJD2   float64
		tolerance float64
	}{
		{"J2000.0", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451544.5, 0.5, 0},
		{"Unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5, 0.0, 0},
		{"half second", time.Date(2024, 6, 20, 12, 0, 0, 500000000, time.UTC), 2460481.5, 0.5 + 0.5/86400.0, 1e-15},
		{"leap second day", time.Date(2016, 12, 31, 23, 59, 59, 0, time.UTC), 2457753.5, 86399.0 / 86401.0, 1e-15},
		{"non-UTC location", time.Date(2000, 1, 1, 13, 0, 0, 0, time.FixedZone("CET", 3600)), 2451544.5, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jd1, jd2, err := SplitJulianDate(tt.time)
			if err != nil {
				t.Fatalf("SplitJulianDate() error = %v", err)
			}
			if jd1 != tt.wantJD1 || math.Abs(jd2-tt.wantJD2) > tt.tolerance {
				t.Errorf("SplitJulianDate() = %.1f + %.17f, want %.1f + %.17f", jd1, jd2, tt.wantJD1, tt.wantJD2)
			}
		})
	}

	// Agrees with an independent calendar conversion.
	when := time.Date(2013, 4, 2, 23, 15, 43, 550000000, time.UTC)
	jd1, jd2, _ := SplitJulianDate(when)
	if want := julian.TimeToJD(when); math.Abs(jd1+jd2-want) > 1e-8 {
		t.Errorf("JD = %.9f, meeus %.9f", jd1+jd2, want)
	}
}

// TestLocalSiderealTime tests the LST calculation
func TestLocalSiderealTime(t *testing.T) {
	testTime := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	lst, err := LocalSiderealTime(0.0, testTime, 0)
	if err != nil {
		t.Fatalf("LocalSiderealTime() error = %v", err)
	}

	// Greenwich mean sidereal time is 18.697h at J2000.0; the equation of
	// the equinoxes is under a second.
	if math.Abs(lst-18.697374558) > 1e-3 {
		t.Errorf("LST at Greenwich J2000 = %.6f, want 18.697", lst)
	}

	// Independent apparent sidereal time, to well under a second of time.
	want := float64(sidereal.Apparent(julian.TimeToJD(testTime))) / 3600.0
	if d := math.Abs(lst - want); d > 1.0/3600.0 && 24-d > 1.0/3600.0 {
		t.Errorf("LST = %.6f, meeus %.6f", lst, want)
	}

	// Longitude shifts LST one hour per 15 degrees.
	longitudes := []float64{-180.0, -90.0, 0.0, 90.0, 180.0}
	for _, lon := range longitudes {
		l, err := LocalSiderealTime(lon, testTime, 0)
		if err != nil {
			t.Fatalf("LocalSiderealTime(%.1f) error = %v", lon, err)
		}
		if l < 0.0 || l >= 24.0 {
			t.Errorf("LST out of range [0, 24) for longitude %.1f: %.3f", lon, l)
		}
		if d := math.Abs(NormalizeRA(l-lst) - NormalizeRA(lon/15.0)); d > 1e-9 && 24-d > 1e-9 {
			t.Errorf("LST(%.1f) - LST(0) = %.9f h, want %.9f", lon, NormalizeRA(l-lst), NormalizeRA(lon/15.0))
		}
	}
}

func TestCatalogStarConversion(t *testing.T) {
	s := CatalogStar{
		RightAscension: 6.0, Declination: 60.0,
		PMRA: 100.0, PMDec: -50.0, Parallax: 250.0, RadialVelocity: 12.5,
	}.Star()

	if math.Abs(s.RA-math.Pi/2) > 1e-15 || math.Abs(s.Dec-math.Pi/3) > 1e-15 {
		t.Errorf("RA,Dec = %v,%v", s.RA, s.Dec)
	}
	// At Dec 60 the RA rate is twice the catalog value.
	if want := 200.0 * MasToRadians; math.Abs(s.PMRA-want) > 1e-20 {
		t.Errorf("PMRA = %g, want %g", s.PMRA, want)
	}
	if want := -50.0 * MasToRadians; math.Abs(s.PMDec-want) > 1e-20 {
		t.Errorf("PMDec = %g, want %g", s.PMDec, want)
	}
	if s.Parallax != 0.25 || s.RadialVelocity != 12.5 {
		t.Errorf("parallax, rv = %v, %v", s.Parallax, s.RadialVelocity)
	}
}

func TestObservedPlace(t *testing.T) {
	when := time.Date(2013, 4, 2, 23, 15, 43, 550000000, time.UTC)
	star := CatalogStar{
		Name:           "test",
		RightAscension: 2.71 / HoursToRadians,
		Declination:    0.174 * RadiansToDegrees,
		PMRA:           1e-5 * math.Cos(0.174) / MasToRadians,
		PMDec:          5e-6 / MasToRadians,
		Parallax:       100.0,
		RadialVelocity: 55.0,
	}

	got, err := ObservedPlace(star, atacama, when)
	if err != nil {
		t.Fatalf("ObservedPlace() error = %v", err)
	}

	// Same reduction in engine units.
	utc1, utc2, _ := SplitJulianDate(when)
	ob, eo, code := astrometry.CatalogToObserved(star.Star(), utc1, utc2, atacama.EOP.DUT1, atacama.Site())
	if code != status.OK {
		t.Fatalf("CatalogToObserved status = %d", code)
	}

	const tol = 1e-10
	if math.Abs(got.Horizontal.Altitude-(90-ob.ZenithDist*RadiansToDegrees)) > tol {
		t.Errorf("Altitude = %.12f", got.Horizontal.Altitude)
	}
	if angleDiff(got.Horizontal.Azimuth, ob.Azimuth*RadiansToDegrees) > tol {
		t.Errorf("Azimuth = %.12f", got.Horizontal.Azimuth)
	}
	if math.Abs(got.HourAngle-ob.HourAngle/HoursToRadians) > tol {
		t.Errorf("HourAngle = %.12f", got.HourAngle)
	}
	if math.Abs(got.Declination-ob.Declination*RadiansToDegrees) > tol {
		t.Errorf("Declination = %.12f", got.Declination)
	}
	if math.Abs(got.RightAscension-ob.RA/HoursToRadians) > tol {
		t.Errorf("RightAscension = %.12f", got.RightAscension)
	}
	if math.Abs(got.EquationOfOrigins-eo/HoursToRadians) > tol {
		t.Errorf("EquationOfOrigins = %.12f", got.EquationOfOrigins)
	}
	if got.Status != status.OK {
		t.Errorf("Status = %d", got.Status)
	}

	// The star is close to the meridian and low in the north.
	if got.Horizontal.Altitude < 0 || got.Horizontal.Altitude > 10 {
		t.Errorf("Altitude = %.3f, want a few degrees", got.Horizontal.Altitude)
	}
	if math.Abs(got.HourAngle) > 0.5 {
		t.Errorf("HourAngle = %.3f h, want near zero", got.HourAngle)
	}
}

func TestReducerContextReuse(t *testing.T) {
	when := time.Date(2013, 4, 2, 23, 15, 43, 550000000, time.UTC)
	c, eo, code, err := Default.Context(atacama, when)
	if err != nil {
		t.Fatalf("Context() error = %v", err)
	}

	stars := []CatalogStar{
		{Name: "a", RightAscension: 10.35, Declination: 10.0},
		{Name: "b", RightAscension: 11.0, Declination: -40.0, PMRA: 500, PMDec: -300, Parallax: 50},
		{Name: "c", RightAscension: 9.0, Declination: -80.0, RadialVelocity: -30},
	}
	for _, s := range stars {
		quick := ReduceStar(s, &c, eo, code)
		single, err := ObservedPlace(s, atacama, when)
		if err != nil {
			t.Fatalf("ObservedPlace(%s) error = %v", s.Name, err)
		}
		if quick != single {
			t.Errorf("%s: reused context %+v, single %+v", s.Name, quick, single)
		}
	}
}

func TestNewReducer(t *testing.T) {
	if _, err := NewReducer("IAU1999"); err == nil {
		t.Error("NewReducer(IAU1999) error = nil, want error")
	}

	r, err := NewReducer("2000B")
	if err != nil {
		t.Fatalf("NewReducer(2000B) error = %v", err)
	}
	when := time.Date(2013, 4, 2, 23, 15, 43, 0, time.UTC)
	star := CatalogStar{RightAscension: 10.35, Declination: 10.0}
	a, err := r.ObservedPlace(star, atacama, when)
	if err != nil {
		t.Fatalf("ObservedPlace() error = %v", err)
	}
	b, _ := ObservedPlace(star, atacama, when)

	// The truncated model differs by about a milliarcsecond.
	if d := math.Abs(a.Horizontal.Altitude - b.Horizontal.Altitude); d > 1e-5 {
		t.Errorf("2000B altitude differs by %g deg", d)
	}
}

func TestObservedPlaceBadDate(t *testing.T) {
	when := time.Date(-4800, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := ObservedPlace(CatalogStar{}, greenwich, when)
	if err == nil {
		t.Fatal("ObservedPlace() error = nil, want error")
	}
	var se *status.Error
	if !errors.As(err, &se) || se.Code != status.Invalid {
		t.Errorf("error = %v, want a status -1 error", err)
	}
}

func TestCatalogPlaceRoundTrip(t *testing.T) {
	when := time.Date(2024, 6, 20, 22, 0, 0, 0, time.UTC)
	observer := greenwich
	observer.Weather = Weather{PressureHPa: 1013.25, TemperatureC: 15, RelativeHumidity: 0.5, WavelengthMicron: 0.55}

	tests := []struct {
		name       string
		horizontal HorizontalCoordinates
	}{
		{"45 degrees altitude, north", HorizontalCoordinates{Altitude: 45.0, Azimuth: 0.0}},
		{"30 degrees altitude, east", HorizontalCoordinates{Altitude: 30.0, Azimuth: 90.0}},
		{"60 degrees altitude, southwest", HorizontalCoordinates{Altitude: 60.0, Azimuth: 225.0}},
		{"15 degrees altitude, west", HorizontalCoordinates{Altitude: 15.0, Azimuth: 270.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := CatalogPlace(tt.horizontal, observer, when)
			if err != nil {
				t.Fatalf("CatalogPlace() error = %v", err)
			}
			if eq.RightAscension < 0 || eq.RightAscension >= 24 {
				t.Errorf("RA out of range: %.6f", eq.RightAscension)
			}

			result, err := EquatorialToHorizontal(eq, observer, when)
			if err != nil {
				t.Fatalf("EquatorialToHorizontal() error = %v", err)
			}

			// The refraction model inverts to a few milliarcseconds at
			// 15 degrees altitude.
			const tol = 5e-6
			if math.Abs(result.Altitude-tt.horizontal.Altitude) > tol {
				t.Errorf("Altitude round trip: got %.9f, want %.9f", result.Altitude, tt.horizontal.Altitude)
			}
			if angleDiff(result.Azimuth, tt.horizontal.Azimuth) > tol {
				t.Errorf("Azimuth round trip: got %.9f, want %.9f", result.Azimuth, tt.horizontal.Azimuth)
			}
		})
	}
}

// TestNormalizeAzimuth tests azimuth normalization
func TestNormalizeAzimuth(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0.0, 0.0},
		{359.0, 359.0},
		{360.0, 0.0},
		{361.0, 1.0},
		{-1.0, 359.0},
		{-90.0, 270.0},
		{720.0, 0.0},
	}

	for _, tt := range tests {
		got := NormalizeAzimuth(tt.input)
		if math.Abs(got-tt.want) > 0.0001 {
			t.Errorf("NormalizeAzimuth(%.1f) = %.1f, want %.1f", tt.input, got, tt.want)
		}
	}
}

// TestNormalizeRA tests right ascension normalization
func TestNormalizeRA(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0.0, 0.0},
		{12.0, 12.0},
		{23.99, 23.99},
		{24.0, 0.0},
		{25.0, 1.0},
		{-1.0, 23.0},
		{-12.0, 12.0},
		{48.0, 0.0},
	}

	for _, tt := range tests {
		got := NormalizeRA(tt.input)
		if math.Abs(got-tt.want) > 0.0001 {
			t.Errorf("NormalizeRA(%.1f) = %.1f, want %.1f", tt.input, got, tt.want)
		}
	}
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name string
		a, b EquatorialCoordinates
		want float64
	}{
		{"same point", EquatorialCoordinates{5, 20}, EquatorialCoordinates{5, 20}, 0},
		{"quarter turn on equator", EquatorialCoordinates{0, 0}, EquatorialCoordinates{6, 0}, 90},
		{"pole to pole", EquatorialCoordinates{3, 90}, EquatorialCoordinates{17, -90}, 180},
		{"across zero hours", EquatorialCoordinates{23.5, 0}, EquatorialCoordinates{0.5, 0}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngularSeparation(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngularSeparation() = %.12f, want %.12f", got, tt.want)
			}
		})
	}

	h := HorizontalSeparation(HorizontalCoordinates{Altitude: 90}, HorizontalCoordinates{Altitude: 0, Azimuth: 123})
	if math.Abs(h-90) > 1e-9 {
		t.Errorf("zenith to horizon = %.12f, want 90", h)
	}
}
