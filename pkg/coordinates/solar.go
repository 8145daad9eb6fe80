package coordinates

import (
	"fmt"
	"time"

	"github.com/unklstewy/astrom/pkg/astrometry"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// SunPosition represents the sun's position in the sky
type SunPosition struct {
	Altitude  float64   // Degrees above horizon, refracted
	Azimuth   float64   // Degrees from north
	Elevation float64   // Same as altitude (alias)
	Time      time.Time // Calculation time

	// Astrometric is the ICRS place of the Sun as seen by the observer
	Astrometric EquatorialCoordinates

	// DistanceAU is the Sun-observer distance in au
	DistanceAU float64
}

// SunPosition returns the observed place of the Sun. The direction comes
// from the Earth ephemeris behind the reducer and then follows the same
// deflection, aberration, rotation and refraction steps as a star. The
// light time correction to the Sun's barycentric motion is below 0.01
// arcsecond and is ignored.
func (r Reducer) SunPosition(obs Observer, t time.Time) (SunPosition, error) {
	c, eo, code, err := r.Context(obs, t)
	if err != nil {
		return SunPosition{}, fmt.Errorf("failed to compute sun position: %w", err)
	}

	// The context holds the Sun to observer unit vector.
	ra, dec := vecmat.CartesianToSpherical(vecmat.Scale(-1, c.EH))
	ri, di := astrometry.AstrometricToCIRS(ra, dec, &c)
	p := observedPosition(astrometry.CIRSToObservedQuick(ri, di, &c), eo, code)

	return SunPosition{
		Altitude:    p.Horizontal.Altitude,
		Azimuth:     p.Horizontal.Azimuth,
		Elevation:   p.Horizontal.Altitude,
		Time:        t,
		Astrometric: ToEquatorialDegrees(ra, dec),
		DistanceAU:  c.EM,
	}, nil
}

// CalculateSunPosition returns the observed place of the Sun with the
// default reducer.
func CalculateSunPosition(obs Observer, t time.Time) (SunPosition, error) {
	return Default.SunPosition(obs, t)
}

// IsSunAboveHorizon returns true if the sun's upper limb is above the
// horizon. The observed altitude already includes refraction, so only the
// semi-diameter is allowed for.
func (sp SunPosition) IsSunAboveHorizon() bool {
	return sp.Altitude > -0.2666/sp.distance()
}

func (sp SunPosition) distance() float64 {
	if sp.DistanceAU == 0 {
		return 1
	}
	return sp.DistanceAU
}

// AngularSeparation calculates the angular distance between the sun and a point in the sky.
// Returns the separation in degrees.
func (sp SunPosition) AngularSeparation(altitude, azimuth float64) float64 {
	return HorizontalSeparation(
		HorizontalCoordinates{Altitude: sp.Altitude, Azimuth: sp.Azimuth},
		HorizontalCoordinates{Altitude: altitude, Azimuth: azimuth},
	)
}

// SolarSafetyZone represents safety thresholds for pointing near the sun
type SolarSafetyZone int

const (
	SafeZoneClear    SolarSafetyZone = 0 // > 20° from sun - safe
	SafeZoneCaution  SolarSafetyZone = 1 // 10-20° from sun - caution
	SafeZoneWarning  SolarSafetyZone = 2 // 5-10° from sun - warning
	SafeZoneDanger   SolarSafetyZone = 3 // 2-5° from sun - danger
	SafeZoneCritical SolarSafetyZone = 4 // < 2° from sun - CRITICAL
)

// GetSafetyZone returns the safety zone based on angular separation from the sun.
func GetSafetyZone(separation float64) SolarSafetyZone {
	switch {
	case separation < 2.0:
		return SafeZoneCritical
	case separation < 5.0:
		return SafeZoneDanger
	case separation < 10.0:
		return SafeZoneWarning
	case separation < 20.0:
		return SafeZoneCaution
	}
	return SafeZoneClear
}

// String returns a human-readable name for the safety zone
func (z SolarSafetyZone) String() string {
	switch z {
	case SafeZoneClear:
		return "CLEAR"
	case SafeZoneCaution:
		return "CAUTION"
	case SafeZoneWarning:
		return "WARNING"
	case SafeZoneDanger:
		return "DANGER"
	case SafeZoneCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}
