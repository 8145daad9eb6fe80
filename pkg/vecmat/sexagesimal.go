package vecmat

import (
	"math"

	"github.com/unklstewy/astrom/pkg/status"
)

// Sign is the sign of a sexagesimal quantity, '+' or '-'.
type Sign byte

// signOf maps anything other than '-' to +1.
func signOf(s Sign) float64 {
	if s == '-' {
		return -1
	}
	return 1
}

// DMSToRadians converts degrees, arcminutes and arcseconds to radians.
// The result is computed even when a field is out of range; the status is
// 1, 2 or 3 for degrees outside 0-359, arcminutes outside 0-59 or
// arcseconds outside 0-<60 respectively.
func DMSToRadians(s Sign, ideg, iamin int, asec float64) (float64, status.Code) {
	rad := signOf(s) * (60.0*(60.0*math.Abs(float64(ideg))+
		math.Abs(float64(iamin))) + math.Abs(asec)) * ArcsecondsToRadians

	switch {
	case ideg < 0 || ideg > 359:
		return rad, 1
	case iamin < 0 || iamin > 59:
		return rad, 2
	case asec < 0 || asec >= 60:
		return rad, 3
	}
	return rad, status.OK
}

// HMSToRadians converts hours, minutes and seconds to radians.
// Status codes as for DMSToRadians, with hours checked against 0-23.
func HMSToRadians(s Sign, ihour, imin int, sec float64) (float64, status.Code) {
	rad := signOf(s) * (60.0*(60.0*math.Abs(float64(ihour))+
		math.Abs(float64(imin))) + math.Abs(sec)) * SecondsToRadians

	return rad, hmsStatus(ihour, imin, sec)
}

// HMSToDays converts hours, minutes and seconds to days.
func HMSToDays(s Sign, ihour, imin int, sec float64) (float64, status.Code) {
	days := signOf(s) * (60.0*(60.0*math.Abs(float64(ihour))+
		math.Abs(float64(imin))) + math.Abs(sec)) / DaySeconds

	return days, hmsStatus(ihour, imin, sec)
}

func hmsStatus(ihour, imin int, sec float64) status.Code {
	switch {
	case ihour < 0 || ihour > 23:
		return 1
	case imin < 0 || imin > 59:
		return 2
	case sec < 0 || sec >= 60:
		return 3
	}
	return status.OK
}

// DaysToHMS decomposes days into hours, minutes, seconds and fraction.
//
// ndp is the resolution: a positive value is the number of decimal places
// in the seconds field, zero or negative values round to 1s, 10s, 1m, 10m,
// 1h or 10h. The returned array holds hours, minutes, seconds and the
// fractional part scaled by 10^ndp.
func DaysToHMS(ndp int, days float64) (Sign, [4]int) {
	sign := Sign('+')
	if days < 0 {
		sign = '-'
	}

	a := DaySeconds * math.Abs(days)

	// Pre-round when the resolution is coarser than 1 second.
	if ndp < 0 {
		nrs := 1
		for n := 1; n <= -ndp; n++ {
			if n == 2 || n == 4 {
				nrs *= 6
			} else {
				nrs *= 10
			}
		}
		rs := float64(nrs)
		a = rs * nint(a/rs)
	}

	nrs := 1
	for n := 1; n <= ndp; n++ {
		nrs *= 10
	}
	rs := float64(nrs)
	rm := rs * 60.0
	rh := rm * 60.0

	a = nint(rs * a)

	ah := math.Trunc(a / rh)
	a -= ah * rh
	am := math.Trunc(a / rm)
	a -= am * rm
	as := math.Trunc(a / rs)
	af := a - as*rs

	return sign, [4]int{int(ah), int(am), int(as), int(af)}
}

// RadiansToHMS decomposes an angle into hours, minutes, seconds and fraction.
func RadiansToHMS(ndp int, angle float64) (Sign, [4]int) {
	return DaysToHMS(ndp, angle/TwoPi)
}

// RadiansToDMS decomposes an angle into degrees, arcminutes, arcseconds and
// fraction.
func RadiansToDMS(ndp int, angle float64) (Sign, [4]int) {
	// Hours to degrees times radians to turns.
	const f = 15.0 / TwoPi
	return DaysToHMS(ndp, angle*f)
}

// nint rounds to the nearest whole number, halves away from zero.
func nint(a float64) float64 {
	if a < 0 {
		return math.Ceil(a - 0.5)
	}
	return math.Floor(a + 0.5)
}
