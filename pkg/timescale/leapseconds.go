package timescale

import (
	"fmt"
	"sync"

	"github.com/unklstewy/astrom/pkg/status"
)

// LeapSecond is one change of TAI-UTC, effective from the first day of the
// given month. Entries before 1972 also carry the drift of the rubber-second
// era: DeltaAT grows by (MJD - DriftEpoch) * DriftRate seconds.
type LeapSecond struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	DeltaAT    float64 `json:"delta_at"`
	DriftEpoch float64 `json:"drift_epoch,omitempty"`
	DriftRate  float64 `json:"drift_rate,omitempty"`
}

// defaultEntries is the IERS leap second history from the start of UTC.
var defaultEntries = []LeapSecond{
	{1960, 1, 1.4178180, 37300.0, 0.0012960},
	{1961, 1, 1.4228180, 37300.0, 0.0012960},
	{1961, 8, 1.3728180, 37300.0, 0.0012960},
	{1962, 1, 1.8458580, 37665.0, 0.0011232},
	{1963, 11, 1.9458580, 37665.0, 0.0011232},
	{1964, 1, 3.2401300, 38761.0, 0.0012960},
	{1964, 4, 3.3401300, 38761.0, 0.0012960},
	{1964, 9, 3.4401300, 38761.0, 0.0012960},
	{1965, 1, 3.5401300, 38761.0, 0.0012960},
	{1965, 3, 3.6401300, 38761.0, 0.0012960},
	{1965, 7, 3.7401300, 38761.0, 0.0012960},
	{1965, 9, 3.8401300, 38761.0, 0.0012960},
	{1966, 1, 4.3131700, 39126.0, 0.0025920},
	{1968, 2, 4.2131700, 39126.0, 0.0025920},
	{1972, 1, 10.0, 0, 0},
	{1972, 7, 11.0, 0, 0},
	{1973, 1, 12.0, 0, 0},
	{1974, 1, 13.0, 0, 0},
	{1975, 1, 14.0, 0, 0},
	{1976, 1, 15.0, 0, 0},
	{1977, 1, 16.0, 0, 0},
	{1978, 1, 17.0, 0, 0},
	{1979, 1, 18.0, 0, 0},
	{1980, 1, 19.0, 0, 0},
	{1981, 7, 20.0, 0, 0},
	{1982, 7, 21.0, 0, 0},
	{1983, 7, 22.0, 0, 0},
	{1985, 7, 23.0, 0, 0},
	{1988, 1, 24.0, 0, 0},
	{1990, 1, 25.0, 0, 0},
	{1991, 1, 26.0, 0, 0},
	{1992, 7, 27.0, 0, 0},
	{1993, 7, 28.0, 0, 0},
	{1994, 7, 29.0, 0, 0},
	{1996, 1, 30.0, 0, 0},
	{1997, 7, 31.0, 0, 0},
	{1999, 1, 32.0, 0, 0},
	{2006, 1, 33.0, 0, 0},
	{2009, 1, 34.0, 0, 0},
	{2012, 7, 35.0, 0, 0},
	{2015, 7, 36.0, 0, 0},
	{2017, 1, 37.0, 0, 0},
}

// DefaultValidThrough is the year through which the built-in table is known
// to be complete.
const DefaultValidThrough = 2025

// dubiousSpan is how many years past ValidThrough results stay trusted.
const dubiousSpan = 5

// LeapSecondTable is an immutable, ordered TAI-UTC history.
type LeapSecondTable struct {
	entries      []LeapSecond
	validThrough int
}

// NewLeapSecondTable validates the entries and builds a table. Entries must be
// in strictly increasing (year, month) order, and from 1972 on DeltaAT must
// not decrease. validThrough is the last year the table is known to cover;
// dates more than five years later are flagged as dubious.
func NewLeapSecondTable(entries []LeapSecond, validThrough int) (*LeapSecondTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("leap second table is empty")
	}

	for i, e := range entries {
		if e.Month < 1 || e.Month > 12 {
			return nil, fmt.Errorf("leap second entry %d: invalid month %d", i, e.Month)
		}
		if i == 0 {
			continue
		}
		prev := entries[i-1]
		if 12*e.Year+e.Month <= 12*prev.Year+prev.Month {
			return nil, fmt.Errorf("leap second entry %d (%d-%02d) is not after %d-%02d",
				i, e.Year, e.Month, prev.Year, prev.Month)
		}
		if e.Year >= 1972 && e.DeltaAT < prev.DeltaAT {
			return nil, fmt.Errorf("leap second entry %d (%d-%02d): TAI-UTC decreases from %g to %g",
				i, e.Year, e.Month, prev.DeltaAT, e.DeltaAT)
		}
	}

	last := entries[len(entries)-1].Year
	if validThrough < last {
		validThrough = last
	}

	t := &LeapSecondTable{
		entries:      make([]LeapSecond, len(entries)),
		validThrough: validThrough,
	}
	copy(t.entries, entries)
	return t, nil
}

var (
	defaultTable     *LeapSecondTable
	defaultTableOnce sync.Once
)

// DefaultLeapSeconds returns the built-in table. It is created on first use
// and shared read-only afterwards.
func DefaultLeapSeconds() *LeapSecondTable {
	defaultTableOnce.Do(func() {
		t, err := NewLeapSecondTable(defaultEntries, DefaultValidThrough)
		if err != nil {
			panic(fmt.Sprintf("built-in leap second table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// DefaultLeapSecondEntries returns a copy of the built-in history, suitable
// for extending with newly announced leap seconds.
func DefaultLeapSecondEntries() []LeapSecond {
	out := make([]LeapSecond, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// Entries returns a copy of the table's entries.
func (t *LeapSecondTable) Entries() []LeapSecond {
	out := make([]LeapSecond, len(t.entries))
	copy(out, t.entries)
	return out
}

// ValidThrough returns the last year the table is known to cover.
func (t *LeapSecondTable) ValidThrough() int {
	return t.validThrough
}

// DeltaAT returns TAI-UTC in seconds for a UTC calendar date and fraction of
// day fd. fd only matters before 1972, when UTC drifted against TAI.
//
// Status:
//
//	+1  dubious year (before the table or too far past it)
//	-1  bad year
//	-2  bad month
//	-3  bad day
//	-4  bad fraction of day
//	-5  internal error (no entry applies)
//
// For +1 before the first entry the result is zero.
func (t *LeapSecondTable) DeltaAT(year, month, day int, fd float64) (float64, status.Code) {
	if fd < 0 || fd > 1 {
		return 0, -4
	}

	_, djm, js := CalendarToJD(year, month, day)
	if js != status.OK {
		return 0, js
	}

	if year < t.entries[0].Year {
		return 0, status.Dubious
	}

	code := status.OK
	if year > t.validThrough+dubiousSpan {
		code = status.Dubious
	}

	m := 12*year + month
	i := len(t.entries) - 1
	for ; i >= 0; i-- {
		if m >= 12*t.entries[i].Year+t.entries[i].Month {
			break
		}
	}
	if i < 0 {
		return 0, -5
	}

	e := t.entries[i]
	da := e.DeltaAT
	if e.DriftRate != 0 {
		da += (djm + fd - e.DriftEpoch) * e.DriftRate
	}
	return da, code
}

// DeltaAT returns TAI-UTC from the built-in table.
func DeltaAT(year, month, day int, fd float64) (float64, status.Code) {
	return DefaultLeapSeconds().DeltaAT(year, month, day, fd)
}
