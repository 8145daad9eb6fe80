// Package tracking checks reduced positions against the limits of a
// telescope mount.
package tracking

import (
	"fmt"
	"math"
	"time"

	"github.com/unklstewy/astrom/pkg/coordinates"
)

// MeridianEvent describes what a mount has to do to follow a target.
type MeridianEvent int

const (
	// NoMeridianEvent means tracking can continue normally
	NoMeridianEvent MeridianEvent = iota

	// MeridianFlipRequired means an equatorial mount is past its hour
	// angle limit and must flip to the other side of the pier
	MeridianFlipRequired

	// ZenithCrossing means the target is above the maximum altitude, where
	// an alt-az mount cannot keep up with the azimuth rate
	ZenithCrossing

	// HorizonCrossing means the target is below the minimum altitude
	HorizonCrossing
)

// String returns a short label for tables.
func (e MeridianEvent) String() string {
	switch e {
	case NoMeridianEvent:
		return "ok"
	case MeridianFlipRequired:
		return "flip"
	case ZenithCrossing:
		return "zenith"
	case HorizonCrossing:
		return "low"
	default:
		return fmt.Sprintf("MeridianEvent(%d)", int(e))
	}
}

// TrackingLimits defines the safe tracking limits for a telescope mount.
type TrackingLimits struct {
	// MinAltitude is the minimum observed altitude in degrees
	MinAltitude float64

	// MaxAltitude is the maximum observed altitude in degrees
	MaxAltitude float64

	// MeridianFlipHourAngle is the hour angle limit in hours for
	// equatorial mounts. A target beyond ±limit needs a flip.
	MeridianFlipHourAngle float64

	// Equatorial selects the hour angle check
	Equatorial bool
}

// DefaultTrackingLimits returns conservative tracking limits suitable for most telescopes.
func DefaultTrackingLimits() TrackingLimits {
	return TrackingLimits{
		MinAltitude:           15.0,
		MaxAltitude:           85.0,
		MeridianFlipHourAngle: 6.0,
	}
}

// Validate checks that the limits describe a non-empty sky region.
func (l TrackingLimits) Validate() error {
	if l.MinAltitude < -90 || l.MaxAltitude > 90 || l.MinAltitude >= l.MaxAltitude {
		return fmt.Errorf("invalid altitude limits [%g, %g]", l.MinAltitude, l.MaxAltitude)
	}
	if l.Equatorial && (l.MeridianFlipHourAngle <= 0 || l.MeridianFlipHourAngle > 12) {
		return fmt.Errorf("meridian flip hour angle %g h out of range (0, 12]", l.MeridianFlipHourAngle)
	}
	return nil
}

// CheckMeridianEvent classifies an observed position against the limits.
// The altitude checks come first: a target below the horizon limit needs
// no flip.
func CheckMeridianEvent(p coordinates.ObservedPosition, limits TrackingLimits) MeridianEvent {
	alt := p.Horizontal.Altitude
	switch {
	case alt < limits.MinAltitude:
		return HorizonCrossing
	case alt > limits.MaxAltitude:
		return ZenithCrossing
	case limits.Equatorial && math.Abs(p.HourAngle) > limits.MeridianFlipHourAngle:
		return MeridianFlipRequired
	}
	return NoMeridianEvent
}

// MeridianSide returns the side of the meridian of a target at hour angle
// ha hours.
func MeridianSide(ha float64) string {
	if ha < 0 {
		return "east"
	}
	return "west"
}

// siderealPerSolar is the ratio of UT1 to sidereal time rates.
const siderealPerSolar = 1.00273781191135448

// TimeToTransit returns the time until the next upper culmination of a
// target at hour angle ha hours. Proper motion and the change of the
// apparent place over the interval are ignored, which is good to about a
// second for stars.
func TimeToTransit(ha float64) time.Duration {
	dh := math.Mod(-ha, 24)
	if dh < 0 {
		dh += 24
	}
	return time.Duration(dh / siderealPerSolar * float64(time.Hour))
}

// RecommendTrackingStrategy provides recommendations for tracking through problematic zones.
func RecommendTrackingStrategy(event MeridianEvent, p coordinates.ObservedPosition) string {
	switch event {
	case NoMeridianEvent:
		if math.Abs(p.Declination) > 85.0 {
			return "Target near celestial pole - field rotation is fast on alt-az mounts"
		}
		return "Continue tracking normally"

	case MeridianFlipRequired:
		return "Hour angle limit exceeded with the target " + MeridianSide(p.HourAngle) + " of the meridian - stop tracking, flip, then resume"

	case ZenithCrossing:
		if p.HourAngle < 0 {
			return fmt.Sprintf("Target near zenith, transit in %s - pause tracking until it descends", TimeToTransit(p.HourAngle).Round(time.Second))
		}
		return "Target near zenith and descending - pause tracking briefly"

	case HorizonCrossing:
		return "Target below minimum altitude - wait for it to rise"

	default:
		return "Unknown tracking condition"
	}
}
