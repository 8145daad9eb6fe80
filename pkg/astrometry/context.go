// Package astrometry transforms star positions between the ICRS catalog
// frame, the CIRS and the observed frame of a terrestrial site.
//
// The expensive per-epoch and per-site quantities are gathered once into a
// Context by one of the Build functions; the transforms then take the
// context by reference, so reducing many stars at one instant costs only the
// per-star geometry. A context is valid for exactly one (instant, site)
// pair. Passing it to a transform for another instant is not detected and
// gives wrong results.
package astrometry

import (
	"math"

	"github.com/unklstewy/astrom/pkg/ephemeris"
	"github.com/unklstewy/astrom/pkg/geodesy"
	"github.com/unklstewy/astrom/pkg/orientation"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Physical constants.
const (
	// SpeedOfLight in meters per second.
	SpeedOfLight = 299792458.0

	// lightTimeAU is the light time for 1 au in seconds.
	lightTimeAU = ephemeris.AstronomicalUnit / SpeedOfLight

	// schwarzschildSun is the Schwarzschild radius of the Sun in au.
	schwarzschildSun = 1.97412574336e-8
)

// Context holds the star-independent parameters of a reduction.
type Context struct {
	PMT    float64        // proper motion time interval (SSB, Julian years)
	EB     vecmat.Vector3 // SSB to observer (vector, au)
	EH     vecmat.Vector3 // Sun to observer (unit vector)
	EM     float64        // distance from Sun to observer (au)
	V      vecmat.Vector3 // barycentric observer velocity (vector, c)
	BM1    float64        // sqrt(1-|v|^2): reciprocal of Lorenz factor
	BPN    vecmat.Matrix3 // bias-precession-nutation matrix
	Along  float64        // longitude + s' + dERA(DUT) (radians)
	Xpl    float64        // polar motion xp wrt local meridian (radians)
	Ypl    float64        // polar motion yp wrt local meridian (radians)
	Sphi   float64        // sine of geodetic latitude
	Cphi   float64        // cosine of geodetic latitude
	Diurab float64        // magnitude of diurnal aberration vector
	Eral   float64        // "local" Earth rotation angle (radians)
	Refa   float64        // refraction constant A (radians)
	Refb   float64        // refraction constant B (radians)
}

// Site describes a terrestrial observer and the ambient conditions used for
// refraction.
type Site struct {
	Longitude float64 // east positive, WGS84 (radians)
	Latitude  float64 // geodetic, WGS84 (radians)
	Height    float64 // above the ellipsoid (meters)

	// Polar motion coordinates (radians).
	XP, YP float64

	Pressure    float64 // hPa; zero disables refraction
	Temperature float64 // ambient, °C
	Humidity    float64 // relative, 0-1
	Wavelength  float64 // micrometers
}

// BuildGeocentric prepares a context for transformations between ICRS and
// GCRS for an observer at the geocenter. date1+date2 is the TDB Julian Date,
// ebpv the Earth's barycentric position and velocity (au, au/day) and ehp
// its heliocentric position (au).
func BuildGeocentric(date1, date2 float64, ebpv vecmat.PV, ehp vecmat.Vector3) Context {
	return BuildSpace(date1, date2, vecmat.PV{}, ebpv, ehp)
}

// BuildGeocentric13 is BuildGeocentric with the Earth taken from the
// default ephemeris.
func BuildGeocentric13(date1, date2 float64) Context {
	ehpv, ebpv, _ := ephemeris.Default.EarthState(date1, date2)
	return BuildGeocentric(date1, date2, ebpv, ehpv[0])
}

// BuildSpace prepares a context for an observer in space, given its
// geocentric position and velocity in the GCRS (m, m/s).
func BuildSpace(date1, date2 float64, pv, ebpv vecmat.PV, ehp vecmat.Vector3) Context {
	// au/day to m/s
	const auDayToMS = ephemeris.AstronomicalUnit / vecmat.DaySeconds
	// light time for 1 au (days)
	const cr = lightTimeAU / vecmat.DaySeconds

	var c Context
	c.PMT = ((date1 - timescale.J2000) + date2) / timescale.DaysPerJulianYear

	// Adjust the Earth ephemeris to the observer.
	var pb, vb, ph vecmat.Vector3
	for i := 0; i < 3; i++ {
		dp := pv[0][i] / ephemeris.AstronomicalUnit
		dv := pv[1][i] / auDayToMS
		pb[i] = ebpv[0][i] + dp
		vb[i] = ebpv[1][i] + dv
		ph[i] = ehp[i] + dp
	}

	c.EB = pb
	c.EM, c.EH = vecmat.Normalize(ph)

	// Barycentric velocity in units of c, and reciprocal of Lorenz factor.
	c.V = vecmat.Scale(cr, vb)
	c.BM1 = math.Sqrt(1.0 - vecmat.Dot(c.V, c.V))

	c.BPN = vecmat.Identity()
	return c
}

// BuildSpace13 is BuildSpace with the Earth taken from the default
// ephemeris.
func BuildSpace13(date1, date2 float64, pv vecmat.PV) Context {
	ehpv, ebpv, _ := ephemeris.Default.EarthState(date1, date2)
	return BuildSpace(date1, date2, pv, ebpv, ehpv[0])
}

// BuildCIRS prepares a context for transformations between ICRS and CIRS
// for a geocentric observer, given the CIP X,Y and the CIO locator s.
func BuildCIRS(date1, date2 float64, ebpv vecmat.PV, ehp vecmat.Vector3, x, y, s float64) Context {
	c := BuildGeocentric(date1, date2, ebpv, ehp)
	c.BPN = orientation.C2IFromXYS(x, y, s)
	return c
}

// BuildCIRS13 is BuildCIRS using IAU 2006/2000A precession-nutation and the
// default ephemeris. It also returns the equation of the origins.
func BuildCIRS13(date1, date2 float64) (c Context, eo float64) {
	c, eo, _ = BuildCIRSWith(orientation.IAU2006A, ephemeris.Default, date1, date2)
	return c, eo
}

// BuildCIRSWith is BuildCIRS13 for any precession-nutation model and
// ephemeris source. The status is -1 for an invalid model, otherwise the
// ephemeris status.
func BuildCIRSWith(model orientation.Model, src ephemeris.Source, date1, date2 float64) (Context, float64, status.Code) {
	if !model.Valid() {
		return Context{}, 0, status.Invalid
	}
	ehpv, ebpv, code := src.EarthState(date1, date2)

	r := model.BPN(date1, date2)
	x, y := orientation.CIPXY(r)
	s := model.CIOLocator(date1, date2, x, y)

	c := BuildCIRS(date1, date2, ebpv, ehpv[0], x, y, s)
	return c, orientation.EquationOfOrigins(r, s), code
}

// siteRotation fills the site-dependent fields shared by BuildObserved and
// BuildTerrestrial.
func (c *Context) siteRotation(sp, theta, elong, phi, xp, yp float64) {
	// CIRS to apparent [HA,Dec].
	r := vecmat.Identity()
	r = vecmat.RotateZ(theta+sp, r)
	r = vecmat.RotateY(-xp, r)
	r = vecmat.RotateX(-yp, r)
	r = vecmat.RotateZ(elong, r)

	// Local Earth rotation angle.
	a, b := r[0][0], r[0][1]
	if a != 0.0 || b != 0.0 {
		c.Eral = math.Atan2(b, a)
	} else {
		c.Eral = 0.0
	}

	// Polar motion with respect to the local meridian.
	c.Xpl = math.Atan2(r[0][2], math.Sqrt(a*a+b*b))
	a, b = r[1][2], r[2][2]
	if a != 0.0 || b != 0.0 {
		c.Ypl = -math.Atan2(a, b)
	} else {
		c.Ypl = 0.0
	}

	c.Along = vecmat.NormalizeAngleSigned(c.Eral - theta)
	c.Sphi, c.Cphi = math.Sincos(phi)
}

// BuildObserved prepares a context for transformations between ICRS and
// observed coordinates, given the Earth ephemeris, the CIP X,Y and CIO
// locator s, the Earth rotation angle theta, the site longitude, latitude
// and height, polar motion xp, yp, the TIO locator sp and the refraction
// constants.
func BuildObserved(date1, date2 float64, ebpv vecmat.PV, ehp vecmat.Vector3,
	x, y, s, theta, elong, phi, hm, xp, yp, sp, refa, refb float64) Context {
	// GCRS to CIRS.
	r := orientation.C2IFromXYS(x, y, s)

	// Observer's geocentric position and velocity, rotated into the GCRS.
	pvc := geodesy.ObservatoryPV(elong, phi, hm, xp, yp, sp, theta)
	pv := vecmat.TMulMPV(r, pvc)

	c := BuildSpace(date1, date2, pv, ebpv, ehp)
	c.siteRotation(sp, theta, elong, phi, xp, yp)
	c.Refa, c.Refb = refa, refb

	// Diurnal aberration is already in the observer's velocity.
	c.Diurab = 0.0
	c.BPN = r
	return c
}

// BuildObserved13 is BuildObserved for a UTC instant, using IAU 2006/2000A
// precession-nutation, the default ephemeris and refraction constants from
// the site conditions. dut1 is UT1-UTC in seconds. It also returns the
// equation of the origins. The status is +1 for a dubious year and -1 for
// an unacceptable date.
func BuildObserved13(utc1, utc2, dut1 float64, site Site) (Context, float64, status.Code) {
	return BuildObservedWith(orientation.IAU2006A, ephemeris.Default, utc1, utc2, dut1, site)
}

// BuildObservedWith is BuildObserved13 for any precession-nutation model
// and ephemeris source. A negative status leaves the context zero.
func BuildObservedWith(model orientation.Model, src ephemeris.Source, utc1, utc2, dut1 float64, site Site) (Context, float64, status.Code) {
	if !model.Valid() {
		return Context{}, 0, status.Invalid
	}
	tt1, tt2, ut11, ut12, code := siteTimes(utc1, utc2, dut1)
	if code < 0 {
		return Context{}, 0, code
	}

	ehpv, ebpv, ecode := src.EarthState(tt1, tt2)

	r := model.BPN(tt1, tt2)
	x, y := orientation.CIPXY(r)
	s := model.CIOLocator(tt1, tt2, x, y)

	theta := orientation.EarthRotationAngle(ut11, ut12)
	sp := orientation.TIOLocator00(tt1, tt2)
	refa, refb := RefractionConstants(site.Pressure, site.Temperature, site.Humidity, site.Wavelength)

	c := BuildObserved(tt1, tt2, ebpv, ehpv[0], x, y, s, theta,
		site.Longitude, site.Latitude, site.Height, site.XP, site.YP, sp, refa, refb)
	return c, orientation.EquationOfOrigins(r, s), status.Worst(code, ecode)
}

// BuildTerrestrial prepares a context for transformations between CIRS and
// observed coordinates, given the TIO locator sp, the Earth rotation angle
// theta, the site and the refraction constants.
func BuildTerrestrial(sp, theta, elong, phi, hm, xp, yp, refa, refb float64) Context {
	var c Context
	c.siteRotation(sp, theta, elong, phi, xp, yp)

	pv := geodesy.ObservatoryPV(elong, phi, hm, xp, yp, sp, theta)
	c.Diurab = math.Hypot(pv[1][0], pv[1][1]) / SpeedOfLight

	c.Refa, c.Refb = refa, refb
	return c
}

// BuildTerrestrial13 is BuildTerrestrial for a UTC instant. The status is +1
// for a dubious year and -1 for an unacceptable date.
func BuildTerrestrial13(utc1, utc2, dut1 float64, site Site) (Context, status.Code) {
	tt1, tt2, ut11, ut12, code := siteTimes(utc1, utc2, dut1)
	if code < 0 {
		return Context{}, code
	}
	sp := orientation.TIOLocator00(tt1, tt2)
	theta := orientation.EarthRotationAngle(ut11, ut12)
	refa, refb := RefractionConstants(site.Pressure, site.Temperature, site.Humidity, site.Wavelength)
	return BuildTerrestrial(sp, theta, site.Longitude, site.Latitude, site.Height, site.XP, site.YP, refa, refb), code
}

// UpdateEarthRotation returns a copy of c with the local Earth rotation
// angle set for the Earth rotation angle theta.
func (c Context) UpdateEarthRotation(theta float64) Context {
	c.Eral = theta + c.Along
	return c
}

// UpdateEarthRotation13 is UpdateEarthRotation for the UT1 date ut11+ut12.
func (c Context) UpdateEarthRotation13(ut11, ut12 float64) Context {
	return c.UpdateEarthRotation(orientation.EarthRotationAngle(ut11, ut12))
}

// siteTimes converts UTC to TT and UT1. Only the UTC to TAI status is
// reported.
func siteTimes(utc1, utc2, dut1 float64) (tt1, tt2, ut11, ut12 float64, code status.Code) {
	tai1, tai2, code := timescale.UTCToTAI(utc1, utc2)
	if code < 0 {
		return 0, 0, 0, 0, status.Invalid
	}
	tt1, tt2 = timescale.TAIToTT(tai1, tai2)
	ut11, ut12, ucode := timescale.UTCToUT1(utc1, utc2, dut1)
	if ucode < 0 {
		return 0, 0, 0, 0, status.Invalid
	}
	return tt1, tt2, ut11, ut12, code
}
