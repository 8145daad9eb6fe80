package coordinates

import (
	"fmt"
	"time"

	"github.com/unklstewy/astrom/pkg/orientation"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/timescale"
)

// SplitJulianDate converts a Go time to a two-part UTC Julian Date. The
// first part is the Julian Date of 0h on the day and the second the
// fraction of the day, so no precision is lost. Days containing a leap
// second are handled.
func SplitJulianDate(t time.Time) (jd1, jd2 float64, err error) {
	u := t.UTC()
	sec := float64(u.Second()) + float64(u.Nanosecond())/1e9
	jd1, jd2, code := timescale.DateTimeToJD(timescale.UTC,
		u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), sec)
	if err := status.Check("DateTimeToJD", code, "unacceptable date"); err != nil {
		return 0, 0, fmt.Errorf("failed to convert %s to a Julian Date: %w", u.Format(time.RFC3339), err)
	}
	return jd1, jd2, nil
}

// observerTimes returns the UTC Julian Date together with the UT1 and TT
// dates of t.
func observerTimes(t time.Time, dut1 float64) (utc1, utc2, ut11, ut12, tt1, tt2 float64, err error) {
	utc1, utc2, err = SplitJulianDate(t)
	if err != nil {
		return
	}
	ut11, ut12, code := timescale.UTCToUT1(utc1, utc2, dut1)
	if err = status.Check("UTCToUT1", code, "unacceptable date"); err != nil {
		err = fmt.Errorf("failed to compute UT1: %w", err)
		return
	}
	tai1, tai2, code := timescale.UTCToTAI(utc1, utc2)
	if err = status.Check("UTCToTAI", code, "unacceptable date"); err != nil {
		err = fmt.Errorf("failed to compute TAI: %w", err)
		return
	}
	tt1, tt2 = timescale.TAIToTT(tai1, tai2)
	return
}

// LocalSiderealTime returns the local apparent sidereal time in hours
// [0, 24) for an east longitude in degrees, using the IAU 2006/2000A
// Greenwich apparent sidereal time. dut1 is UT1-UTC in seconds.
func LocalSiderealTime(longitudeDeg float64, t time.Time, dut1 float64) (float64, error) {
	_, _, ut11, ut12, tt1, tt2, err := observerTimes(t, dut1)
	if err != nil {
		return 0, err
	}
	gst := orientation.GST06A(ut11, ut12, tt1, tt2)
	return NormalizeRA((gst*RadiansToDegrees + longitudeDeg) / 15.0), nil
}
