// Package coordinates is the degree and hour facade over the astrometry
// engine. It speaks the units observers and catalogs use (RA in hours,
// angles in degrees, proper motion in mas/yr, Go time values) and converts
// status failures into errors.
package coordinates

import (
	"math"

	"github.com/unklstewy/astrom/pkg/astrometry"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Constants for coordinate calculations
const (
	// DegreesToRadians converts degrees to radians
	DegreesToRadians = math.Pi / 180.0

	// RadiansToDegrees converts radians to degrees
	RadiansToDegrees = 180.0 / math.Pi

	// HoursToRadians converts hours of right ascension to radians
	HoursToRadians = math.Pi / 12.0

	// MasToRadians converts milliarcseconds to radians
	MasToRadians = vecmat.ArcsecondsToRadians / 1000.0
)

// Geographic represents a position on Earth's surface.
// Uses the WGS84 ellipsoid (same as GPS).
type Geographic struct {
	// Latitude in decimal degrees (-90 to +90)
	// Positive = North, Negative = South
	Latitude float64

	// Longitude in decimal degrees (-180 to +180)
	// Positive = East, Negative = West
	Longitude float64

	// Altitude in meters above the ellipsoid
	Altitude float64
}

// HorizontalCoordinates represents a position in the local horizontal coordinate system.
// Also known as Alt/Az (Altitude-Azimuth) coordinates.
type HorizontalCoordinates struct {
	// Altitude (elevation) in degrees above the horizon
	// 0 = horizon, 90 = zenith (straight up)
	// Negative values are below the horizon
	Altitude float64

	// Azimuth in degrees from north (0-360)
	// 0/360 = North, 90 = East, 180 = South, 270 = West
	Azimuth float64
}

// EquatorialCoordinates represents a position in the equatorial coordinate system.
type EquatorialCoordinates struct {
	// RightAscension (RA) in decimal hours (0-24)
	RightAscension float64

	// Declination (Dec) in decimal degrees (-90 to +90)
	Declination float64
}

// Weather holds the ambient conditions that drive refraction.
// A zero pressure switches refraction off.
type Weather struct {
	PressureHPa      float64 // station pressure
	TemperatureC     float64 // ambient temperature
	RelativeHumidity float64 // 0-1
	WavelengthMicron float64 // effective wavelength; above 100 selects radio
}

// EarthOrientation holds the IERS parameters for the date of observation.
type EarthOrientation struct {
	// DUT1 is UT1-UTC in seconds
	DUT1 float64

	// XP and YP are the polar motion coordinates in arcseconds
	XP float64
	YP float64
}

// Observer represents the location of the observer/telescope together with
// the conditions needed for a rigorous reduction.
type Observer struct {
	// Name identifies the site
	Name string

	// Location is the observer's position on Earth
	Location Geographic

	// Weather at the site
	Weather Weather

	// EOP are the Earth orientation parameters in force
	EOP EarthOrientation
}

// CatalogStar is an ICRS catalog entry in catalog units.
type CatalogStar struct {
	Name string

	// RightAscension in hours, Declination in degrees
	RightAscension float64
	Declination    float64

	// PMRA is the proper motion in RA times cos(Dec), PMDec in Dec (mas/yr)
	PMRA  float64
	PMDec float64

	// Parallax in mas
	Parallax float64

	// RadialVelocity in km/s, positive receding
	RadialVelocity float64
}

// ToRadians converts the Geographic coordinates to radians.
// Returns (latRad, lonRad, altMeters).
func (g Geographic) ToRadians() (float64, float64, float64) {
	return g.Latitude * DegreesToRadians,
		g.Longitude * DegreesToRadians,
		g.Altitude
}

// ToRadians converts HorizontalCoordinates to radians.
// Returns (altRad, azRad).
func (h HorizontalCoordinates) ToRadians() (float64, float64) {
	return h.Altitude * DegreesToRadians,
		h.Azimuth * DegreesToRadians
}

// ToHorizontalDegrees converts radians to HorizontalCoordinates in degrees.
func ToHorizontalDegrees(altRad, azRad float64) HorizontalCoordinates {
	return HorizontalCoordinates{
		Altitude: altRad * RadiansToDegrees,
		Azimuth:  NormalizeAzimuth(azRad * RadiansToDegrees),
	}
}

// ToRadians converts EquatorialCoordinates to radians.
// Returns (raRad, decRad).
func (e EquatorialCoordinates) ToRadians() (float64, float64) {
	return e.RightAscension * HoursToRadians, e.Declination * DegreesToRadians
}

// ToEquatorialDegrees converts radians to EquatorialCoordinates.
// Returns RA in hours (normalized to [0, 24)) and Dec in degrees.
func ToEquatorialDegrees(raRad, decRad float64) EquatorialCoordinates {
	return EquatorialCoordinates{
		RightAscension: NormalizeRA(raRad / HoursToRadians),
		Declination:    decRad * RadiansToDegrees,
	}
}

// Site converts the observer to the engine's radian form.
func (o Observer) Site() astrometry.Site {
	lat, lon, h := o.Location.ToRadians()
	return astrometry.Site{
		Longitude:   lon,
		Latitude:    lat,
		Height:      h,
		XP:          o.EOP.XP * vecmat.ArcsecondsToRadians,
		YP:          o.EOP.YP * vecmat.ArcsecondsToRadians,
		Pressure:    o.Weather.PressureHPa,
		Temperature: o.Weather.TemperatureC,
		Humidity:    o.Weather.RelativeHumidity,
		Wavelength:  o.Weather.WavelengthMicron,
	}
}

// Star converts the entry to the engine's form. The RA proper motion is
// divided by cos(Dec) to give the rate of change of RA itself.
func (s CatalogStar) Star() astrometry.Star {
	dec := s.Declination * DegreesToRadians
	var pmra float64
	if c := math.Cos(dec); c != 0 {
		pmra = s.PMRA * MasToRadians / c
	}
	return astrometry.Star{
		RA:             s.RightAscension * HoursToRadians,
		Dec:            dec,
		PMRA:           pmra,
		PMDec:          s.PMDec * MasToRadians,
		Parallax:       s.Parallax / 1000.0,
		RadialVelocity: s.RadialVelocity,
	}
}

// Equatorial returns the catalog position.
func (s CatalogStar) Equatorial() EquatorialCoordinates {
	return EquatorialCoordinates{RightAscension: s.RightAscension, Declination: s.Declination}
}

// NormalizeAzimuth ensures azimuth is in the range [0, 360).
func NormalizeAzimuth(azimuth float64) float64 {
	az := math.Mod(azimuth, 360.0)
	if az < 0 {
		az += 360.0
	}
	return az
}

// NormalizeRA ensures right ascension is in the range [0, 24).
func NormalizeRA(ra float64) float64 {
	raHours := math.Mod(ra, 24.0)
	if raHours < 0 {
		raHours += 24.0
	}
	return raHours
}

// AngularSeparation returns the angle between two equatorial positions in
// degrees.
func AngularSeparation(a, b EquatorialCoordinates) float64 {
	ar, ad := a.ToRadians()
	br, bd := b.ToRadians()
	return vecmat.SphericalSeparation(ar, ad, br, bd) * RadiansToDegrees
}

// HorizontalSeparation returns the angle between two horizontal positions
// in degrees.
func HorizontalSeparation(a, b HorizontalCoordinates) float64 {
	aa, az1 := a.ToRadians()
	ba, az2 := b.ToRadians()
	return vecmat.SphericalSeparation(az1, aa, az2, ba) * RadiansToDegrees
}
