// Package timescale converts between the astronomical time scales (UTC, TAI,
// TT, TDB, TCB, TCG and UT1) and between calendar dates and two-part Julian
// Dates.
//
// Every date is carried as two float64 parts whose sum is the Julian Date.
// The parts are never combined internally, and each conversion preserves the
// caller's choice of split (whole day first or fraction first), so precision
// is limited only by the larger part.
package timescale

import (
	"math"

	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Reference epochs and scale constants.
const (
	// J2000 is the Julian Date of the reference epoch J2000.0 (TT).
	J2000 = 2451545.0

	// MJDZero is the zero point of the Modified Julian Date.
	MJDZero = 2400000.5

	// MJD77 is the Modified Julian Date of 1977 January 1.0.
	MJD77 = 43144.0

	// DaySeconds is the number of SI seconds in a day.
	DaySeconds = vecmat.DaySeconds

	// DaysPerJulianYear is the length of the Julian year in days.
	DaysPerJulianYear = 365.25

	// DaysPerJulianCentury is the length of the Julian century in days.
	DaysPerJulianCentury = 36525.0

	// DaysPerJulianMillennium is the length of the Julian millennium in days.
	DaysPerJulianMillennium = 365250.0

	// DaysPerTropicalYear is the length of the tropical year (1900) in days,
	// used for Besselian epochs.
	DaysPerTropicalYear = 365.242198781

	// TTMinusTAI is the fixed offset TT-TAI in seconds.
	TTMinusTAI = 32.184

	// LB is the rate of TCB relative to TDB, 1-d(TDB)/d(TCB).
	LB = 1.550519768e-8

	// LG is the rate of TCG relative to TT, 1-d(TT)/d(TCG).
	LG = 6.969290134e-10

	// TDB0 is TDB-TCB at 1977 January 1.0 TAI, in seconds.
	TDB0 = -6.55e-5
)

// Earliest year the Gregorian calendar routines accept.
const minYear = -4799

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// CalendarToJD converts a Gregorian calendar date to a two-part Julian Date:
// the MJD zero point and the Modified Julian Date at 0h.
//
// Status: -1 bad year (before -4799), -2 bad month, -3 bad day. A bad day is
// reported but the date is still computed.
func CalendarToJD(year, month, day int) (djm0, djm float64, code status.Code) {
	if year < minYear {
		return 0, 0, -1
	}
	if month < 1 || month > 12 {
		return 0, 0, -2
	}

	limit := monthDays[month-1]
	if month == 2 && isLeapYear(year) {
		limit++
	}
	if day < 1 || day > limit {
		code = -3
	}

	my := (month - 14) / 12
	iypmy := int64(year + my)
	mjd := (1461*(iypmy+4800))/4 +
		(367*int64(month-2-12*my))/12 -
		(3*((iypmy+4900)/100))/4 +
		int64(day) - 2432076

	return MJDZero, float64(mjd), code
}

// JDToCalendar converts a two-part Julian Date to a Gregorian calendar date
// and fraction of day.
//
// Status -1 means the date is outside the supported range (before
// -4800 March 1 or after JD 1e9).
func JDToCalendar(dj1, dj2 float64) (year, month, day int, fd float64, code status.Code) {
	const (
		djMin = -68569.5
		djMax = 1e9
	)

	dj := dj1 + dj2
	if dj < djMin || dj > djMax {
		return 0, 0, 0, 0, -1
	}

	// Separate each part into whole days and a fraction in [-0.5, 0.5).
	d := math.Round(dj1)
	f1 := dj1 - d
	jd := int64(d)
	d = math.Round(dj2)
	f2 := dj2 - d
	jd += int64(d)

	// f1+f2+0.5 by compensated summation.
	s, cs := 0.5, 0.0
	for _, x := range [2]float64{f1, f2} {
		t := s + x
		if math.Abs(s) >= math.Abs(x) {
			cs += (s - t) + x
		} else {
			cs += (x - t) + s
		}
		s = t
		if s >= 1.0 {
			jd++
			s -= 1.0
		}
	}
	f := s + cs
	cs = f - s

	if f < 0 {
		f = s + 1.0
		cs += (1.0 - f) + s
		s = f
		f = s + cs
		cs = f - s
		jd--
	}

	// A fraction that rounds to 1.0 belongs to the next day.
	if (f - 1.0) >= -epsilon/4 {
		t := s - 1.0
		cs += (s - t) - 1.0
		s = t
		f = s + cs
		if -epsilon/2 < f {
			jd++
			f = math.Max(f, 0)
		}
	}

	l := jd + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= (1461*i)/4 - 31
	k := (80 * l) / 2447
	day = int(l - (2447*k)/80)
	l = k / 11
	month = int(k + 2 - 12*l)
	year = int(100*(n-49) + i + l)

	return year, month, day, f, status.OK
}

// epsilon is the float64 machine epsilon (DBL_EPSILON).
const epsilon = 2.220446049250313080847e-16

// JDToCalendarRounded converts a two-part Julian Date to a Gregorian date
// with the day fraction rounded to ndp decimal places. The result holds
// year, month, day and the fraction scaled by 10^ndp.
//
// Status: -1 date out of range, +1 ndp outside 0-9 (rounded to whole days).
func JDToCalendarRounded(ndp int, dj1, dj2 float64) ([4]int, status.Code) {
	var ymdf [4]int
	var code status.Code

	denom := 1.0
	if ndp >= 0 && ndp <= 9 {
		denom = math.Pow(10, float64(ndp))
	} else {
		code = 1
	}

	d1, d2 := dj1, dj2
	if math.Abs(dj1) < math.Abs(dj2) {
		d1, d2 = dj2, dj1
	}

	// Realign to midnight without losing precision.
	d1 -= 0.5

	d := math.Round(d1)
	f1 := d1 - d
	djd := d
	d = math.Round(d2)
	f2 := d2 - d
	djd += d
	d = math.Round(f1 + f2)
	f := (f1 - d) + f2
	if f < 0 {
		f += 1.0
		d -= 1.0
	}
	djd += d

	rf := math.Round(f*denom) / denom

	djd += 0.5

	y, m, dd, fd, js := JDToCalendar(djd, rf)
	if js != status.OK {
		return ymdf, js
	}
	ymdf = [4]int{y, m, dd, int(math.Round(fd * denom))}
	return ymdf, code
}

// BesselianEpoch converts a Julian Date to a Besselian epoch.
func BesselianEpoch(dj1, dj2 float64) float64 {
	// J2000 minus B1900 in days.
	const d1900 = 36524.68648
	return 1900.0 + ((dj1-J2000)+(dj2+d1900))/DaysPerTropicalYear
}

// BesselianEpochToJD converts a Besselian epoch to a two-part Julian Date.
func BesselianEpochToJD(epb float64) (djm0, djm float64) {
	return MJDZero, 15019.81352 + (epb-1900.0)*DaysPerTropicalYear
}

// JulianEpoch converts a Julian Date to a Julian epoch.
func JulianEpoch(dj1, dj2 float64) float64 {
	return 2000.0 + ((dj1-J2000)+dj2)/DaysPerJulianYear
}

// JulianEpochToJD converts a Julian epoch to a two-part Julian Date.
func JulianEpochToJD(epj float64) (djm0, djm float64) {
	return MJDZero, 51544.5 + (epj-2000.0)*DaysPerJulianYear
}

// fractionToHMS is shared by the date-time formatting helpers.
func fractionToHMS(ndp int, fd float64) [4]int {
	_, hmsf := vecmat.DaysToHMS(ndp, fd)
	return hmsf
}
