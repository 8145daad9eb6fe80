package timescale

import (
	"math"

	"github.com/unklstewy/astrom/pkg/status"
)

// addToSmaller adds delta to whichever part has the smaller magnitude, which
// keeps the caller's split and its precision.
func addToSmaller(a1, a2, delta float64) (float64, float64) {
	if math.Abs(a1) > math.Abs(a2) {
		return a1, a2 + delta
	}
	return a1 + delta, a2
}

// TAIToTT converts TAI to TT.
func TAIToTT(tai1, tai2 float64) (tt1, tt2 float64) {
	return addToSmaller(tai1, tai2, TTMinusTAI/DaySeconds)
}

// TTToTAI converts TT to TAI.
func TTToTAI(tt1, tt2 float64) (tai1, tai2 float64) {
	return addToSmaller(tt1, tt2, -TTMinusTAI/DaySeconds)
}

// TTToTDB converts TT to TDB given dtr = TDB-TT in seconds, usually from
// TDBMinusTT.
func TTToTDB(tt1, tt2, dtr float64) (tdb1, tdb2 float64) {
	return addToSmaller(tt1, tt2, dtr/DaySeconds)
}

// TDBToTT converts TDB to TT given dtr = TDB-TT in seconds.
func TDBToTT(tdb1, tdb2, dtr float64) (tt1, tt2 float64) {
	return addToSmaller(tdb1, tdb2, -dtr/DaySeconds)
}

// TAIToUT1 converts TAI to UT1 given dta = UT1-TAI in seconds.
func TAIToUT1(tai1, tai2, dta float64) (ut11, ut12 float64) {
	return addToSmaller(tai1, tai2, dta/DaySeconds)
}

// UT1ToTAI converts UT1 to TAI given dta = UT1-TAI in seconds.
func UT1ToTAI(ut11, ut12, dta float64) (tai1, tai2 float64) {
	return addToSmaller(ut11, ut12, -dta/DaySeconds)
}

// TTToUT1 converts TT to UT1 given dt = TT-UT1 in seconds (ΔT).
func TTToUT1(tt1, tt2, dt float64) (ut11, ut12 float64) {
	return addToSmaller(tt1, tt2, -dt/DaySeconds)
}

// UT1ToTT converts UT1 to TT given dt = TT-UT1 in seconds (ΔT).
func UT1ToTT(ut11, ut12, dt float64) (tt1, tt2 float64) {
	return addToSmaller(ut11, ut12, dt/DaySeconds)
}

// TCBToTDB converts TCB to TDB using the IAU 2006 defining relation.
func TCBToTDB(tcb1, tcb2 float64) (tdb1, tdb2 float64) {
	const (
		t77td = MJDZero + MJD77
		t77tf = TTMinusTAI / DaySeconds
		tdb0  = TDB0 / DaySeconds
	)

	if math.Abs(tcb1) > math.Abs(tcb2) {
		d := tcb1 - t77td
		return tcb1, tcb2 + tdb0 - (d+(tcb2-t77tf))*LB
	}
	d := tcb2 - t77td
	return tcb1 + tdb0 - (d+(tcb1-t77tf))*LB, tcb2
}

// TDBToTCB converts TDB to TCB.
func TDBToTCB(tdb1, tdb2 float64) (tcb1, tcb2 float64) {
	const (
		t77td = MJDZero + MJD77
		t77tf = TTMinusTAI / DaySeconds
		tdb0  = TDB0 / DaySeconds
		elbb  = LB / (1.0 - LB)
	)

	if math.Abs(tdb1) > math.Abs(tdb2) {
		d := t77td - tdb1
		f := tdb2 - tdb0
		return tdb1, f - (d-(f-t77tf))*elbb
	}
	d := t77td - tdb2
	f := tdb1 - tdb0
	return f - (d-(f-t77tf))*elbb, tdb2
}

// TCGToTT converts TCG to TT.
func TCGToTT(tcg1, tcg2 float64) (tt1, tt2 float64) {
	const t77t = MJD77 + TTMinusTAI/DaySeconds

	if math.Abs(tcg1) > math.Abs(tcg2) {
		return tcg1, tcg2 - ((tcg1-MJDZero)+(tcg2-t77t))*LG
	}
	return tcg1 - ((tcg2-MJDZero)+(tcg1-t77t))*LG, tcg2
}

// TTToTCG converts TT to TCG.
func TTToTCG(tt1, tt2 float64) (tcg1, tcg2 float64) {
	const (
		t77t = MJD77 + TTMinusTAI/DaySeconds
		elgg = LG / (1.0 - LG)
	)

	if math.Abs(tt1) > math.Abs(tt2) {
		return tt1, tt2 + ((tt1-MJDZero)+(tt2-t77t))*elgg
	}
	return tt1 + ((tt2-MJDZero)+(tt1-t77t))*elgg, tt2
}

// UTCToTAI converts UTC to TAI. Before 1972 the rubber-second drift is
// applied, and on a leap second day the extra second is spread over the
// whole day, in the usual "quasi-JD" representation of UTC.
//
// Status: +1 dubious year, -1 unacceptable date.
func (t *LeapSecondTable) UTCToTAI(utc1, utc2 float64) (tai1, tai2 float64, code status.Code) {
	big1 := math.Abs(utc1) >= math.Abs(utc2)
	u1, u2 := utc1, utc2
	if !big1 {
		u1, u2 = utc2, utc1
	}

	iy, im, id, fd, j := JDToCalendar(u1, u2)
	if j != status.OK {
		return 0, 0, j
	}
	dat0, j := t.DeltaAT(iy, im, id, 0.0)
	if j < 0 {
		return 0, 0, j
	}
	dat12, j := t.DeltaAT(iy, im, id, 0.5)
	if j < 0 {
		return 0, 0, j
	}
	iyt, imt, idt, _, jt := JDToCalendar(u1+1.5, u2-fd)
	if jt != status.OK {
		return 0, 0, jt
	}
	dat24, j := t.DeltaAT(iyt, imt, idt, 0.0)
	if j < 0 {
		return 0, 0, j
	}

	// Split the change in TAI-UTC into a daily drift and a jump.
	dlod := 2.0 * (dat12 - dat0)
	dleap := dat24 - (dat0 + dlod)

	fd *= (DaySeconds + dleap) / DaySeconds
	fd *= (DaySeconds + dlod) / DaySeconds

	z1, z2, jz := CalendarToJD(iy, im, id)
	if jz != status.OK {
		return 0, 0, -1
	}

	a2 := z1 - u1
	a2 += z2
	a2 += fd + dat0/DaySeconds

	if big1 {
		return u1, a2, j
	}
	return a2, u1, j
}

// TAIToUTC converts TAI to UTC by iterating UTCToTAI.
//
// Status: +1 dubious year, -1 unacceptable date.
func (t *LeapSecondTable) TAIToUTC(tai1, tai2 float64) (utc1, utc2 float64, code status.Code) {
	big1 := math.Abs(tai1) >= math.Abs(tai2)
	a1, a2 := tai1, tai2
	if !big1 {
		a1, a2 = tai2, tai1
	}

	u1, u2 := a1, a2
	var j status.Code
	for i := 0; i < 3; i++ {
		var g1, g2 float64
		g1, g2, j = t.UTCToTAI(u1, u2)
		if j < 0 {
			return 0, 0, j
		}
		u2 += a1 - g1
		u2 += a2 - g2
	}

	if big1 {
		return u1, u2, j
	}
	return u2, u1, j
}

// UTCToUT1 converts UTC to UT1 given dut1 = UT1-UTC in seconds.
//
// Status: +1 dubious year, -1 unacceptable date.
func (t *LeapSecondTable) UTCToUT1(utc1, utc2, dut1 float64) (ut11, ut12 float64, code status.Code) {
	iy, im, id, _, j := JDToCalendar(utc1, utc2)
	if j != status.OK {
		return 0, 0, -1
	}
	dat, js := t.DeltaAT(iy, im, id, 0.0)
	if js < 0 {
		return 0, 0, -1
	}

	dta := dut1 - dat
	u1, u2, jw := t.UTCToTAI(utc1, utc2)
	if jw < 0 {
		return 0, 0, -1
	}

	ut11, ut12 = TAIToUT1(u1, u2, dta)
	return ut11, ut12, js
}

// UT1ToUTC converts UT1 to UTC given dut1 = UT1-UTC in seconds. Near a leap
// second the UT1-UTC value is ramped so that the result obeys the quasi-JD
// UTC convention of UTCToTAI.
//
// Status: +1 dubious year, -1 unacceptable date.
func (t *LeapSecondTable) UT1ToUTC(ut11, ut12, dut1 float64) (utc1, utc2 float64, code status.Code) {
	duts := dut1

	big1 := math.Abs(ut11) >= math.Abs(ut12)
	u1, u2 := ut11, ut12
	if !big1 {
		u1, u2 = ut12, ut11
	}

	// Look for a leap second within a few days of the given UT1.
	d1 := u1
	dats1 := 0.0
	var js status.Code
	for i := -1; i <= 3; i++ {
		d2 := u2 + float64(i)
		iy, im, id, _, j := JDToCalendar(d1, d2)
		if j != status.OK {
			return 0, 0, -1
		}
		var dats2 float64
		dats2, js = t.DeltaAT(iy, im, id, 0.0)
		if js < 0 {
			return 0, 0, -1
		}
		if i == -1 {
			dats1 = dats2
		}
		ddats := dats2 - dats1
		if math.Abs(ddats) >= 0.5 {
			// Make sure UT1-UTC is the value from before the leap.
			if ddats*duts >= 0 {
				duts -= ddats
			}

			// UT1 at the start of the UTC day that ends in the leap.
			sd1, sd2, jc := CalendarToJD(iy, im, id)
			if jc != status.OK {
				return 0, 0, -1
			}
			us1 := sd1
			us2 := sd2 - 1.0 + duts/DaySeconds

			du := u1 - us1
			du += u2 - us2
			if du > 0 {
				fd := du * DaySeconds / (DaySeconds + ddats)
				duts += ddats * math.Min(fd, 1.0)
			}
			break
		}
		dats1 = dats2
	}

	u2 -= duts / DaySeconds

	if big1 {
		return u1, u2, js
	}
	return u2, u1, js
}

// UTCToTAI converts UTC to TAI using the built-in leap second table.
func UTCToTAI(utc1, utc2 float64) (tai1, tai2 float64, code status.Code) {
	return DefaultLeapSeconds().UTCToTAI(utc1, utc2)
}

// TAIToUTC converts TAI to UTC using the built-in leap second table.
func TAIToUTC(tai1, tai2 float64) (utc1, utc2 float64, code status.Code) {
	return DefaultLeapSeconds().TAIToUTC(tai1, tai2)
}

// UTCToUT1 converts UTC to UT1 using the built-in leap second table.
func UTCToUT1(utc1, utc2, dut1 float64) (ut11, ut12 float64, code status.Code) {
	return DefaultLeapSeconds().UTCToUT1(utc1, utc2, dut1)
}

// UT1ToUTC converts UT1 to UTC using the built-in leap second table.
func UT1ToUTC(ut11, ut12, dut1 float64) (utc1, utc2 float64, code status.Code) {
	return DefaultLeapSeconds().UT1ToUTC(ut11, ut12, dut1)
}
