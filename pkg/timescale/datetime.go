package timescale

import (
	"math"

	"github.com/unklstewy/astrom/pkg/status"
)

// DateTime is a calendar date and time of day broken into fields. Fraction is
// the fractional seconds scaled by 10^ndp of the call that produced it.
type DateTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Fraction             int
}

// leapDay reports the TAI-UTC at 0h and 12h of a UTC day and the change that
// takes effect at the end of it. A non-zero dleap marks a leap second day.
func (t *LeapSecondTable) leapDay(year, month, day int, dj, w float64) (dat0, dleap float64, code status.Code) {
	dat0, js := t.DeltaAT(year, month, day, 0.0)
	if js < 0 {
		return 0, 0, js
	}
	dat12, js := t.DeltaAT(year, month, day, 0.5)
	if js < 0 {
		return 0, 0, js
	}
	y2, m2, d2, _, js2 := JDToCalendar(dj, w)
	if js2 != status.OK {
		return 0, 0, js2
	}
	dat24, js := t.DeltaAT(y2, m2, d2, 0.0)
	if js < 0 {
		return 0, 0, js
	}
	return dat0, dat24 - (2.0*dat12 - dat0), js
}

// DateTimeToJD encodes a calendar date and time into a two-part Julian Date
// in the given scale. For UTC the length of the day allows for a leap second
// at its end, so 23:59:60.5 is a valid time on such days.
//
// Status:
//
//	+3  both of the next two
//	+2  time is after the end of the day
//	+1  dubious year
//	-1  bad year
//	-2  bad month
//	-3  bad day
//	-4  bad hour
//	-5  bad minute
//	-6  bad second (negative)
func (t *LeapSecondTable) DateTimeToJD(scale Scale, year, month, day, hour, minute int, sec float64) (d1, d2 float64, code status.Code) {
	dj, w, js := CalendarToJD(year, month, day)
	if js != status.OK {
		return 0, 0, js
	}
	dj += w

	dayLength := DaySeconds
	secLimit := 60.0

	if scale == UTC {
		_, dleap, jd := t.leapDay(year, month, day, dj, 1.5)
		if jd < 0 {
			return 0, 0, jd
		}
		js = jd
		dayLength += dleap
		if hour == 23 && minute == 59 {
			secLimit += dleap
		}
	}

	switch {
	case hour < 0 || hour > 23:
		return 0, 0, -4
	case minute < 0 || minute > 59:
		return 0, 0, -5
	case sec < 0:
		return 0, 0, -6
	case sec >= secLimit:
		js += 2
	}

	tm := (60.0*float64(60*hour+minute) + sec) / dayLength
	return dj, tm, js
}

// JDToDateTime formats a two-part Julian Date as calendar date and time
// rounded to ndp decimal places of seconds. For UTC, a time inside a leap
// second is reported as 23:59:60.
//
// Status: +1 dubious year, -1 unacceptable date.
func (t *LeapSecondTable) JDToDateTime(scale Scale, ndp int, d1, d2 float64) (DateTime, status.Code) {
	var dt DateTime
	a1, b1 := d1, d2

	iy1, im1, id1, fd, js := JDToCalendar(a1, b1)
	if js != status.OK {
		return dt, -1
	}

	leap := false
	if scale == UTC {
		_, dleap, jl := t.leapDay(iy1, im1, id1, a1+1.5, b1-fd)
		if jl < 0 {
			return dt, -1
		}
		js = jl
		leap = math.Abs(dleap) > 0.5
		if leap {
			fd += fd * dleap / DaySeconds
		}
	}

	hmsf := fractionToHMS(ndp, fd)

	// Rounding may have pushed the time to 24h.
	if hmsf[0] > 23 {
		iy2, im2, id2, _, j2 := JDToCalendar(a1+1.5, b1-fd)
		if j2 != status.OK {
			return dt, -1
		}
		nextDay := func() {
			iy1, im1, id1 = iy2, im2, id2
			hmsf[0], hmsf[1], hmsf[2] = 0, 0, 0
		}

		if !leap {
			nextDay()
		} else {
			if hmsf[2] > 0 {
				nextDay()
			} else {
				hmsf[0], hmsf[1], hmsf[2] = 23, 59, 60
			}
			if ndp < 0 && hmsf[2] == 60 {
				nextDay()
			}
		}
	}

	dt = DateTime{
		Year: iy1, Month: im1, Day: id1,
		Hour: hmsf[0], Minute: hmsf[1], Second: hmsf[2],
		Fraction: hmsf[3],
	}
	return dt, js
}

// DateTimeToJD encodes a date and time using the built-in leap second table.
func DateTimeToJD(scale Scale, year, month, day, hour, minute int, sec float64) (d1, d2 float64, code status.Code) {
	return DefaultLeapSeconds().DateTimeToJD(scale, year, month, day, hour, minute, sec)
}

// JDToDateTime formats a Julian Date using the built-in leap second table.
func JDToDateTime(scale Scale, ndp int, d1, d2 float64) (DateTime, status.Code) {
	return DefaultLeapSeconds().JDToDateTime(scale, ndp, d1, d2)
}
