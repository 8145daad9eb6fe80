// Package geodesy converts between geodetic and geocentric coordinates on
// the standard reference ellipsoids, and gives the position and velocity of
// a terrestrial observer in the celestial intermediate frame.
package geodesy

import (
	"fmt"
	"math"
	"strings"

	"github.com/unklstewy/astrom/pkg/orientation"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Ellipsoid selects a reference ellipsoid.
type Ellipsoid int

const (
	WGS84 Ellipsoid = iota + 1
	GRS80
	WGS72
)

type ellipsoidParams struct {
	name string
	a    float64 // equatorial radius (meters)
	f    float64 // flattening
}

var ellipsoids = map[Ellipsoid]ellipsoidParams{
	WGS84: {"WGS84", 6378137.0, 1.0 / 298.257223563},
	GRS80: {"GRS80", 6378137.0, 1.0 / 298.257222101},
	WGS72: {"WGS72", 6378135.0, 1.0 / 298.26},
}

// String returns the ellipsoid name.
func (e Ellipsoid) String() string {
	if p, ok := ellipsoids[e]; ok {
		return p.name
	}
	return fmt.Sprintf("Ellipsoid(%d)", int(e))
}

// ParseEllipsoid parses an ellipsoid name such as "WGS84", ignoring case.
func ParseEllipsoid(name string) (Ellipsoid, error) {
	n := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "")
	for e, p := range ellipsoids {
		if p.name == n {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown ellipsoid %q", name)
}

// Parameters returns the equatorial radius in meters and the flattening of
// the ellipsoid. An unknown ellipsoid gives zeros and status -1.
func (e Ellipsoid) Parameters() (a, f float64, code status.Code) {
	p, ok := ellipsoids[e]
	if !ok {
		return 0, 0, status.Invalid
	}
	return p.a, p.f, status.OK
}

// GeodeticToGeocentric converts geodetic longitude, latitude (radians) and
// height above the ellipsoid (meters) to geocentric Cartesian coordinates
// in meters. The status is -1 for an unknown ellipsoid and -2 for an
// illegal case; the result is then zero.
func GeodeticToGeocentric(e Ellipsoid, elong, phi, height float64) (vecmat.Vector3, status.Code) {
	a, f, code := e.Parameters()
	if code != status.OK {
		return vecmat.Vector3{}, code
	}
	xyz, code := GeodeticToGeocentricAF(a, f, elong, phi, height)
	if code != status.OK {
		return vecmat.Vector3{}, -2
	}
	return xyz, status.OK
}

// GeodeticToGeocentricAF is GeodeticToGeocentric for an ellipsoid
// given by its equatorial radius a (meters) and flattening f. The status is
// -1 for an illegal case.
func GeodeticToGeocentricAF(a, f, elong, phi, height float64) (vecmat.Vector3, status.Code) {
	sp, cp := math.Sincos(phi)
	w := (1.0 - f) * (1.0 - f)
	d := cp*cp + w*sp*sp
	if d <= 0.0 {
		return vecmat.Vector3{}, status.Invalid
	}
	ac := a / math.Sqrt(d)
	as := w * ac

	r := (ac + height) * cp
	return vecmat.Vector3{r * math.Cos(elong), r * math.Sin(elong), (as + height) * sp}, status.OK
}

// GeocentricToGeodetic converts geocentric Cartesian coordinates in meters
// to geodetic longitude, latitude (radians) and height (meters). The status
// is -1 for an unknown ellipsoid and -2 for an illegal case; the outputs
// are then zero.
func GeocentricToGeodetic(e Ellipsoid, xyz vecmat.Vector3) (elong, phi, height float64, code status.Code) {
	a, f, code := e.Parameters()
	if code == status.OK {
		elong, phi, height, code = GeocentricToGeodeticAF(a, f, xyz)
		if code < 0 {
			code = -2
		}
	}
	if code < 0 {
		return 0, 0, 0, code
	}
	return elong, phi, height, code
}

// GeocentricToGeodeticAF is GeocentricToGeodetic for an ellipsoid
// given by its equatorial radius a (meters) and flattening f, using the
// closed form of Fukushima (2006). The status is -1 for an illegal f and -2
// for an illegal a.
func GeocentricToGeodeticAF(a, f float64, xyz vecmat.Vector3) (elong, phi, height float64, code status.Code) {
	if f < 0.0 || f >= 1.0 {
		return 0, 0, 0, status.Invalid
	}
	if a <= 0.0 {
		return 0, 0, 0, -2
	}

	// Functions of the ellipsoid parameters (with further validation of f).
	aeps2 := a * a * 1e-32
	e2 := (2.0 - f) * f
	e4t := e2 * e2 * 1.5
	ec2 := 1.0 - e2
	if ec2 <= 0.0 {
		return 0, 0, 0, status.Invalid
	}
	ec := math.Sqrt(ec2)
	b := a * ec

	x, y, z := xyz[0], xyz[1], xyz[2]

	// Distance from the polar axis squared.
	p2 := x*x + y*y

	if p2 > 0.0 {
		elong = math.Atan2(y, x)
	}

	absz := math.Abs(z)

	if p2 > aeps2 {
		p := math.Sqrt(p2)

		// Normalization.
		s0 := absz / a
		pn := p / a
		zc := ec * s0

		// Prepare Newton correction factors.
		c0 := ec * pn
		c02 := c0 * c0
		c03 := c02 * c0
		s02 := s0 * s0
		s03 := s02 * s0
		a02 := c02 + s02
		a0 := math.Sqrt(a02)
		a03 := a02 * a0
		d0 := zc*a03 + e2*s03
		f0 := pn*a03 - e2*c03

		// Prepare Halley correction factor.
		b0 := e4t * s02 * c02 * pn * (a0 - ec)
		s1 := d0*f0 - b0*s0
		cc := ec * (f0*f0 - b0*c0)

		phi = math.Atan(s1 / cc)
		s12 := s1 * s1
		cc2 := cc * cc
		height = (p*cc + absz*s1 - a*math.Sqrt(ec2*s12+cc2)) / math.Sqrt(s12+cc2)
	} else {
		// Exception: pole.
		phi = math.Pi / 2.0
		height = absz - b
	}

	if z < 0 {
		phi = -phi
	}
	return elong, phi, height, status.OK
}

// earthRotationRate is the Earth's rotation rate in radians per UT1
// second.
const earthRotationRate = 1.00273781191135448 * vecmat.TwoPi / vecmat.DaySeconds

// ObservatoryPV returns the position (meters) and velocity (m/s) of a
// terrestrial observer with respect to the CIRS, given its WGS84 longitude,
// latitude and height, the polar motion xp, yp, the TIO locator sp and the
// Earth rotation angle theta (all angles in radians).
func ObservatoryPV(elong, phi, height, xp, yp, sp, theta float64) vecmat.PV {
	xyzm, _ := GeodeticToGeocentric(WGS84, elong, phi, height)

	// Polar motion and TIO position.
	rpm := orientation.PolarMotionMatrix(xp, yp, sp)
	xyz := vecmat.TMulMV(rpm, xyzm)
	x, y, z := xyz[0], xyz[1], xyz[2]

	s, c := math.Sincos(theta)
	return vecmat.PV{
		{c*x - s*y, s*x + c*y, z},
		{earthRotationRate * (-s*x - c*y), earthRotationRate * (c*x - s*y), 0.0},
	}
}
