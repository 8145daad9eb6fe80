package astrometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/unklstewy/astrom/pkg/ephemeris"
	"github.com/unklstewy/astrom/pkg/orientation"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Observed is a place in the observed frame. All angles are in radians.
type Observed struct {
	Azimuth     float64 // N=0, E=90°
	ZenithDist  float64 // zenith distance
	HourAngle   float64
	Declination float64
	RA          float64 // CIO-based right ascension
}

// ObservedType selects the representation of an observed place given to
// the inverse transforms.
type ObservedType byte

const (
	Azimuth        ObservedType = 'A' // azimuth and zenith distance
	HourAngle      ObservedType = 'H' // hour angle and declination
	RightAscension ObservedType = 'R' // CIO-based RA and declination
)

// Valid reports whether t is one of the defined types.
func (t ObservedType) Valid() bool {
	return t == Azimuth || t == HourAngle || t == RightAscension
}

func (t ObservedType) String() string {
	if t.Valid() {
		return string(t)
	}
	return fmt.Sprintf("ObservedType(%d)", byte(t))
}

// ParseObservedType parses "A", "H" or "R", ignoring case.
func ParseObservedType(s string) (ObservedType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 {
		if t := ObservedType(s[0]); t.Valid() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown observed coordinate type %q", s)
}

// CatalogToCIRSQuick transforms an ICRS star to CIRS RA,Dec. The context
// must come from BuildCIRS, BuildObserved or one of their variants.
func CatalogToCIRSQuick(s Star, c *Context) (ri, di float64) {
	pco := ProperMotionParallax(s, c.PMT, c.EB)
	pnat := DeflectSun(pco, c.EH, c.EM)
	return toCIRS(pnat, c)
}

// AstrometricToCIRS transforms an ICRS astrometric place, which already
// includes space motion and parallax, to CIRS RA,Dec.
func AstrometricToCIRS(rc, dc float64, c *Context) (ri, di float64) {
	pnat := DeflectSun(vecmat.SphericalToCartesian(rc, dc), c.EH, c.EM)
	return toCIRS(pnat, c)
}

// CatalogToCIRSBodies is CatalogToCIRSQuick with light deflection by the
// given bodies instead of the Sun alone.
func CatalogToCIRSBodies(s Star, c *Context, bodies []Body) (ri, di float64) {
	pco := ProperMotionParallax(s, c.PMT, c.EB)
	pnat := DeflectBodies(bodies, c.EB, pco)
	return toCIRS(pnat, c)
}

// toCIRS applies aberration and the BPN rotation to a natural direction.
func toCIRS(pnat vecmat.Vector3, c *Context) (ri, di float64) {
	ppr := Aberrate(pnat, c.V, c.EM, c.BM1)
	pi := vecmat.MulMV(c.BPN, ppr)
	w, di := vecmat.CartesianToSpherical(pi)
	return vecmat.NormalizeAngle(w), di
}

// CatalogToCIRS transforms an ICRS star to CIRS RA,Dec at the TDB date
// date1+date2, using IAU 2006/2000A precession-nutation and the default
// ephemeris. It also returns the equation of the origins.
func CatalogToCIRS(s Star, date1, date2 float64) (ri, di, eo float64) {
	c, eo := BuildCIRS13(date1, date2)
	ri, di = CatalogToCIRSQuick(s, &c)
	return ri, di, eo
}

// CatalogToAstrometricQuick applies space motion and parallax only, giving
// the astrometric place for the context's instant and observer.
func CatalogToAstrometricQuick(s Star, c *Context) (ra, da float64) {
	w, da := vecmat.CartesianToSpherical(ProperMotionParallax(s, c.PMT, c.EB))
	return vecmat.NormalizeAngle(w), da
}

// CatalogToAstrometric is CatalogToAstrometricQuick for a geocentric
// observer at the TDB date date1+date2.
func CatalogToAstrometric(s Star, date1, date2 float64) (ra, da float64) {
	c, _ := BuildCIRS13(date1, date2)
	return CatalogToAstrometricQuick(s, &c)
}

// CIRSToObservedQuick transforms CIRS RA,Dec to observed coordinates. The
// context must come from BuildObserved or BuildTerrestrial.
func CIRSToObservedQuick(ri, di float64, c *Context) Observed {
	// Minimum cos(alt) and sin(alt) for refraction purposes.
	const (
		celmin = 1e-6
		selmin = 0.05
	)

	// CIRS RA,Dec to Cartesian -HA,Dec.
	v := vecmat.SphericalToCartesian(ri-c.Eral, di)
	x, y, z := v[0], v[1], v[2]

	// Polar motion.
	sx, cx := math.Sincos(c.Xpl)
	sy, cy := math.Sincos(c.Ypl)
	xhd := cx*x + sx*z
	yhd := sx*sy*x + cy*y - cx*sy*z
	zhd := -sx*cy*x + sy*y + cx*cy*z

	// Diurnal aberration.
	f := 1.0 - c.Diurab*yhd
	xhdt := f * xhd
	yhdt := f * (yhd + c.Diurab)
	zhdt := f * zhd

	// Cartesian -HA,Dec to Cartesian Az,El (S=0,E=90).
	xaet := c.Sphi*xhdt - c.Cphi*zhdt
	yaet := yhdt
	zaet := c.Cphi*xhdt + c.Sphi*zhdt

	// Azimuth (N=0,E=90).
	var azobs float64
	if xaet != 0.0 || yaet != 0.0 {
		azobs = math.Atan2(yaet, -xaet)
	}

	// Cosine and sine of altitude, with precautions.
	r := math.Max(math.Sqrt(xaet*xaet+yaet*yaet), celmin)
	z = math.Max(zaet, selmin)

	// A*tan(z)+B*tan^3(z) model, with Newton-Raphson correction.
	tz := r / z
	w := c.Refb * tz * tz
	del := (c.Refa + w) * tz / (1.0 + (c.Refa+3.0*w)/(z*z))

	// Apply the change, giving observed vector.
	cosdel := 1.0 - del*del/2.0
	f = cosdel - del*z/r
	xaeo := xaet * f
	yaeo := yaet * f
	zaeo := cosdel*zaet + del*r

	zdobs := math.Atan2(math.Sqrt(xaeo*xaeo+yaeo*yaeo), zaeo)

	// Az/El vector to HA,Dec vector (both right-handed).
	v = vecmat.Vector3{
		c.Sphi*xaeo + c.Cphi*zaeo,
		yaeo,
		-c.Cphi*xaeo + c.Sphi*zaeo,
	}
	hmobs, dcobs := vecmat.CartesianToSpherical(v)

	return Observed{
		Azimuth:     vecmat.NormalizeAngle(azobs),
		ZenithDist:  zdobs,
		HourAngle:   -hmobs,
		Declination: dcobs,
		RA:          vecmat.NormalizeAngle(c.Eral + hmobs),
	}
}

// CIRSToObserved is CIRSToObservedQuick for a UTC instant and a site. The
// status is +1 for a dubious year and -1 for an unacceptable date, when the
// result is zero.
func CIRSToObserved(ri, di, utc1, utc2, dut1 float64, site Site) (Observed, status.Code) {
	c, code := BuildTerrestrial13(utc1, utc2, dut1, site)
	if code < 0 {
		return Observed{}, code
	}
	return CIRSToObservedQuick(ri, di, &c), code
}

// CatalogToObserved transforms an ICRS star to observed coordinates for a
// UTC instant and a site, using IAU 2006/2000A precession-nutation and the
// default ephemeris. It also returns the equation of the origins. The
// status is as for BuildObserved13.
func CatalogToObserved(s Star, utc1, utc2, dut1 float64, site Site) (Observed, float64, status.Code) {
	return CatalogToObservedWith(orientation.IAU2006A, ephemeris.Default, s, utc1, utc2, dut1, site)
}

// CatalogToObservedWith is CatalogToObserved for any precession-nutation
// model and ephemeris source.
func CatalogToObservedWith(model orientation.Model, src ephemeris.Source, s Star, utc1, utc2, dut1 float64, site Site) (Observed, float64, status.Code) {
	c, eo, code := BuildObservedWith(model, src, utc1, utc2, dut1, site)
	if code < 0 {
		return Observed{}, 0, code
	}
	ri, di := CatalogToCIRSQuick(s, &c)
	return CIRSToObservedQuick(ri, di, &c), eo, code
}

// ObservedToCIRSQuick transforms an observed place to CIRS RA,Dec. ob1 and
// ob2 are azimuth and zenith distance, hour angle and declination, or
// CIO-based RA and declination depending on typ. An unknown type gives
// zero results and status -2.
func ObservedToCIRSQuick(typ ObservedType, ob1, ob2 float64, c *Context) (ri, di float64, code status.Code) {
	const selmin = 0.05

	if !typ.Valid() {
		return 0, 0, status.UnknownType
	}
	c1, c2 := ob1, ob2
	sphi, cphi := c.Sphi, c.Cphi

	var xaeo, yaeo, zaeo float64
	if typ == Azimuth {
		// Az,ZD to Cartesian (S=0,E=90).
		ce := math.Sin(c2)
		xaeo = -math.Cos(c1) * ce
		yaeo = math.Sin(c1) * ce
		zaeo = math.Cos(c2)
	} else {
		if typ == RightAscension {
			c1 = c.Eral - c1
		}
		// To Cartesian -HA,Dec, then Az,El (S=0,E=90).
		v := vecmat.SphericalToCartesian(-c1, c2)
		xaeo = sphi*v[0] - cphi*v[2]
		yaeo = v[1]
		zaeo = cphi*v[0] + sphi*v[2]
	}

	// Azimuth (S=0,E=90).
	var az float64
	if xaeo != 0.0 || yaeo != 0.0 {
		az = math.Atan2(yaeo, xaeo)
	}

	// Sine of observed ZD, and observed ZD.
	sz := math.Sqrt(xaeo*xaeo + yaeo*yaeo)
	zdo := math.Atan2(sz, zaeo)

	// Refraction.
	tz := sz / math.Max(zaeo, selmin)
	dref := (c.Refa + c.Refb*tz*tz) * tz
	zdt := zdo + dref

	// To Cartesian Az,ZD, then -HA,Dec.
	ce := math.Sin(zdt)
	xaet := math.Cos(az) * ce
	yaet := math.Sin(az) * ce
	zaet := math.Cos(zdt)
	xmhda := sphi*xaet + cphi*zaet
	ymhda := yaet
	zmhda := -cphi*xaet + sphi*zaet

	// Diurnal aberration.
	f := 1.0 + c.Diurab*ymhda
	xhd := f * xmhda
	yhd := f * (ymhda - c.Diurab)
	zhd := f * zmhda

	// Polar motion.
	sx, cx := math.Sincos(c.Xpl)
	sy, cy := math.Sincos(c.Ypl)
	v := vecmat.Vector3{
		cx*xhd + sx*sy*yhd - sx*cy*zhd,
		cy*yhd + sy*zhd,
		sx*xhd - cx*sy*yhd + cx*cy*zhd,
	}

	hma, di := vecmat.CartesianToSpherical(v)
	return vecmat.NormalizeAngle(c.Eral + hma), di, status.OK
}

// ObservedToCIRS is ObservedToCIRSQuick for a UTC instant and a site.
func ObservedToCIRS(typ ObservedType, ob1, ob2, utc1, utc2, dut1 float64, site Site) (ri, di float64, code status.Code) {
	if !typ.Valid() {
		return 0, 0, status.UnknownType
	}
	c, code := BuildTerrestrial13(utc1, utc2, dut1, site)
	if code < 0 {
		return 0, 0, code
	}
	ri, di, _ = ObservedToCIRSQuick(typ, ob1, ob2, &c)
	return ri, di, code
}

// ObservedToCatalog transforms an observed place to ICRS astrometric
// RA,Dec for a UTC instant and a site.
func ObservedToCatalog(typ ObservedType, ob1, ob2, utc1, utc2, dut1 float64, site Site) (rc, dc float64, code status.Code) {
	if !typ.Valid() {
		return 0, 0, status.UnknownType
	}
	c, _, code := BuildObserved13(utc1, utc2, dut1, site)
	if code < 0 {
		return 0, 0, code
	}
	ri, di, _ := ObservedToCIRSQuick(typ, ob1, ob2, &c)
	rc, dc = CIRSToCatalogQuick(ri, di, &c)
	return rc, dc, code
}

// CIRSToCatalogQuick transforms CIRS RA,Dec to ICRS astrometric RA,Dec,
// inverting aberration and light deflection by the Sun iteratively.
func CIRSToCatalogQuick(ri, di float64, c *Context) (rc, dc float64) {
	return fromCIRS(ri, di, c, func(p vecmat.Vector3) vecmat.Vector3 {
		return DeflectSun(p, c.EH, c.EM)
	})
}

// CIRSToCatalogBodies is CIRSToCatalogQuick with light deflection by the
// given bodies instead of the Sun alone.
func CIRSToCatalogBodies(ri, di float64, c *Context, bodies []Body) (rc, dc float64) {
	return fromCIRS(ri, di, c, func(p vecmat.Vector3) vecmat.Vector3 {
		return DeflectBodies(bodies, c.EB, p)
	})
}

// CIRSToCatalog is CIRSToCatalogQuick at the TDB date date1+date2, using
// IAU 2006/2000A precession-nutation and the default ephemeris. It also
// returns the equation of the origins.
func CIRSToCatalog(ri, di, date1, date2 float64) (rc, dc, eo float64) {
	c, eo := BuildCIRS13(date1, date2)
	rc, dc = CIRSToCatalogQuick(ri, di, &c)
	return rc, dc, eo
}

// fromCIRS undoes the BPN rotation, then aberration (two iterations) and
// light deflection (five iterations).
func fromCIRS(ri, di float64, c *Context, deflect func(vecmat.Vector3) vecmat.Vector3) (rc, dc float64) {
	pi := vecmat.SphericalToCartesian(ri, di)
	ppr := vecmat.TMulMV(c.BPN, pi)

	var d, pnat vecmat.Vector3
	for j := 0; j < 2; j++ {
		_, before := vecmat.Normalize(vecmat.Sub(ppr, d))
		after := Aberrate(before, c.V, c.EM, c.BM1)
		d = vecmat.Sub(after, before)
		_, pnat = vecmat.Normalize(vecmat.Sub(ppr, d))
	}

	d = vecmat.Vector3{}
	var pco vecmat.Vector3
	for j := 0; j < 5; j++ {
		_, before := vecmat.Normalize(vecmat.Sub(pnat, d))
		after := deflect(before)
		d = vecmat.Sub(after, before)
		_, pco = vecmat.Normalize(vecmat.Sub(pnat, d))
	}

	w, dc := vecmat.CartesianToSpherical(pco)
	return vecmat.NormalizeAngle(w), dc
}
