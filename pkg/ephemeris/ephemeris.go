// Package ephemeris provides low-precision analytical positions and
// velocities of the Earth, the Moon and the major planets.
//
// All results are in au and au per day, referred to the J2000.0 mean
// equator and equinox (the planets and the Earth) or to the GCRS (the
// Moon). Every routine evaluates a fixed number of series terms, so calls
// never block and always return in bounded time.
package ephemeris

import (
	"fmt"
	"strings"

	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// AstronomicalUnit is the IAU 2012 astronomical unit in meters.
const AstronomicalUnit = 149597870.7e3

// EarthMoonMassRatio is the DE405 ratio of the Earth's mass to the Moon's.
const EarthMoonMassRatio = 81.30056907

// Body identifies a major planet. The Earth-Moon barycenter stands in for
// the Earth.
type Body int

const (
	Mercury Body = iota + 1
	Venus
	EMB
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var bodyNames = [...]string{"", "Mercury", "Venus", "EMB", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

// String returns the body name.
func (b Body) String() string {
	if b.Valid() {
		return bodyNames[b]
	}
	return fmt.Sprintf("Body(%d)", int(b))
}

// Valid reports whether b is one of the eight supported bodies.
func (b Body) Valid() bool {
	return b >= Mercury && b <= Neptune
}

// ParseBody parses a body name, ignoring case. "Earth" selects EMB.
func ParseBody(name string) (Body, error) {
	n := strings.TrimSpace(name)
	if strings.EqualFold(n, "earth") {
		return EMB, nil
	}
	for b := Mercury; b <= Neptune; b++ {
		if strings.EqualFold(n, bodyNames[b]) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown body %q", name)
}

// Source supplies the Earth's heliocentric and barycentric state for a TDB
// date. Context builders accept any Source, so a numerically integrated
// ephemeris can replace the analytical series.
type Source interface {
	EarthState(date1, date2 float64) (helio, bary vecmat.PV, code status.Code)
}

// Analytical is the Source backed by the series in this package.
type Analytical struct{}

// EarthState implements Source.
func (Analytical) EarthState(date1, date2 float64) (helio, bary vecmat.PV, code status.Code) {
	return Earth(date1, date2)
}

// Default is the Source used when the caller supplies none.
var Default Source = Analytical{}
