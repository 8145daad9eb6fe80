package timescale

import (
	"fmt"
	"strings"

	"github.com/unklstewy/astrom/pkg/status"
)

// Scale identifies a time scale.
type Scale int

// Supported time scales.
const (
	UTC Scale = iota
	TAI
	TT
	TDB
	TCB
	TCG
	UT1
)

var scaleNames = [...]string{"UTC", "TAI", "TT", "TDB", "TCB", "TCG", "UT1"}

// String returns the conventional abbreviation of the scale.
func (s Scale) String() string {
	if s < 0 || int(s) >= len(scaleNames) {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return scaleNames[s]
}

// ParseScale parses a scale abbreviation, ignoring case.
func ParseScale(name string) (Scale, error) {
	for i, n := range scaleNames {
		if strings.EqualFold(name, n) {
			return Scale(i), nil
		}
	}
	return 0, fmt.Errorf("unknown time scale %q", name)
}

// Offsets holds the externally supplied differences needed by some
// conversions. DUT1 is UT1-UTC and DeltaT is TT-UT1, both in seconds. DTR is
// TDB-TT in seconds; when zero the geocentric TDBMinusTT value is used.
type Offsets struct {
	DUT1   float64
	DeltaT float64
	DTR    float64
}

// Instant is a moment expressed as a two-part Julian Date in a scale.
type Instant struct {
	Scale Scale
	JD1   float64
	JD2   float64
}

// NewInstant builds an Instant from a two-part Julian Date.
func NewInstant(scale Scale, jd1, jd2 float64) Instant {
	return Instant{Scale: scale, JD1: jd1, JD2: jd2}
}

// JD returns the Julian Date as a single number (with loss of precision).
func (in Instant) JD() float64 {
	return in.JD1 + in.JD2
}

// Convert expresses the instant in another scale using the built-in leap
// second table.
func (in Instant) Convert(target Scale, off Offsets) (Instant, status.Code) {
	return in.ConvertWith(DefaultLeapSeconds(), target, off)
}

// ConvertWith expresses the instant in another scale. The conversion walks
// the chain UTC-TAI-TT, branching from TT to TDB-TCB, TCG or UT1. Status
// codes of the individual steps are merged with status.Worst; on failure the
// zero Instant is returned.
func (in Instant) ConvertWith(t *LeapSecondTable, target Scale, off Offsets) (Instant, status.Code) {
	if in.Scale < UTC || in.Scale > UT1 || target < UTC || target > UT1 {
		return Instant{}, status.Invalid
	}
	if in.Scale == target {
		return in, status.OK
	}

	code := status.OK
	cur := in

	// UT1 to or from UTC is direct when DUT1 is known and no TT is needed.
	if cur.Scale == UT1 && target == UTC {
		u1, u2, c := t.UT1ToUTC(cur.JD1, cur.JD2, off.DUT1)
		if c < 0 {
			return Instant{}, c
		}
		return Instant{UTC, u1, u2}, c
	}
	if cur.Scale == UTC && target == UT1 {
		u1, u2, c := t.UTCToUT1(cur.JD1, cur.JD2, off.DUT1)
		if c < 0 {
			return Instant{}, c
		}
		return Instant{UT1, u1, u2}, c
	}

	// Climb to TT.
	for cur.Scale != TT {
		var next Instant
		var c status.Code
		next, c = cur.towardTT(t, off)
		code = status.Worst(code, c)
		if c < 0 {
			return Instant{}, c
		}
		cur = next
		if cur.Scale == target {
			return cur, code
		}
	}

	// Descend from TT to the target.
	path := pathFromTT(target)
	for _, s := range path {
		var c status.Code
		cur, c = cur.step(t, s, off)
		code = status.Worst(code, c)
		if c < 0 {
			return Instant{}, c
		}
	}
	return cur, code
}

// towardTT moves one step closer to TT.
func (in Instant) towardTT(t *LeapSecondTable, off Offsets) (Instant, status.Code) {
	switch in.Scale {
	case UTC:
		a1, a2, c := t.UTCToTAI(in.JD1, in.JD2)
		return Instant{TAI, a1, a2}, c
	case TAI:
		a1, a2 := TAIToTT(in.JD1, in.JD2)
		return Instant{TT, a1, a2}, status.OK
	case TCB:
		a1, a2 := TCBToTDB(in.JD1, in.JD2)
		return Instant{TDB, a1, a2}, status.OK
	case TDB:
		a1, a2 := TDBToTT(in.JD1, in.JD2, off.tdbMinusTT(in.JD1, in.JD2))
		return Instant{TT, a1, a2}, status.OK
	case TCG:
		a1, a2 := TCGToTT(in.JD1, in.JD2)
		return Instant{TT, a1, a2}, status.OK
	case UT1:
		a1, a2 := UT1ToTT(in.JD1, in.JD2, off.DeltaT)
		return Instant{TT, a1, a2}, status.OK
	}
	return Instant{}, status.Invalid
}

// step moves from the current scale to the adjacent scale s on the way
// down from TT.
func (in Instant) step(t *LeapSecondTable, s Scale, off Offsets) (Instant, status.Code) {
	switch {
	case in.Scale == TT && s == TAI:
		a1, a2 := TTToTAI(in.JD1, in.JD2)
		return Instant{TAI, a1, a2}, status.OK
	case in.Scale == TAI && s == UTC:
		a1, a2, c := t.TAIToUTC(in.JD1, in.JD2)
		return Instant{UTC, a1, a2}, c
	case in.Scale == TT && s == TDB:
		a1, a2 := TTToTDB(in.JD1, in.JD2, off.tdbMinusTT(in.JD1, in.JD2))
		return Instant{TDB, a1, a2}, status.OK
	case in.Scale == TDB && s == TCB:
		a1, a2 := TDBToTCB(in.JD1, in.JD2)
		return Instant{TCB, a1, a2}, status.OK
	case in.Scale == TT && s == TCG:
		a1, a2 := TTToTCG(in.JD1, in.JD2)
		return Instant{TCG, a1, a2}, status.OK
	case in.Scale == TT && s == UT1:
		a1, a2 := TTToUT1(in.JD1, in.JD2, off.DeltaT)
		return Instant{UT1, a1, a2}, status.OK
	}
	return Instant{}, status.Invalid
}

func pathFromTT(target Scale) []Scale {
	switch target {
	case TAI:
		return []Scale{TAI}
	case UTC:
		return []Scale{TAI, UTC}
	case TDB:
		return []Scale{TDB}
	case TCB:
		return []Scale{TDB, TCB}
	case TCG:
		return []Scale{TCG}
	case UT1:
		return []Scale{UT1}
	}
	return nil
}

// tdbMinusTT returns the configured TDB-TT or the geocentric series value.
// The series argument is insensitive to the TT/TDB distinction.
func (off Offsets) tdbMinusTT(d1, d2 float64) float64 {
	if off.DTR != 0 {
		return off.DTR
	}
	return TDBMinusTT(d1, d2, 0, 0, 0, 0)
}
