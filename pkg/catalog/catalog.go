// Package catalog propagates star catalog entries in time and converts them
// between the FK5 and Hipparcos systems.
//
// Entries use astrometry.Star: RA,Dec in radians, proper motion in radians
// per year (RA rate, not scaled by cos Dec), parallax in arcseconds and
// radial velocity in km/s. Space motion is handled rigorously, including
// the relativistic Doppler and light-time effects.
package catalog

import (
	"math"

	"github.com/unklstewy/astrom/pkg/astrometry"
	"github.com/unklstewy/astrom/pkg/ephemeris"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

const (
	// radiansToArcseconds converts radians to arcseconds.
	radiansToArcseconds = 206264.8062470963551564734

	// speedOfLight in au per day.
	speedOfLight = vecmat.DaySeconds * astrometry.SpeedOfLight / ephemeris.AstronomicalUnit
)

// Status bits of StarToPV.
const (
	// DistanceOverridden means the parallax was too small and a distance
	// of about 10 Mpc was assumed.
	DistanceOverridden status.Code = 1
	// VelocityZeroed means the space velocity exceeded half the speed of
	// light and was set to zero.
	VelocityZeroed status.Code = 2
	// NotConverged means the relativistic correction did not converge.
	NotConverged status.Code = 4
)

// StarToPV converts a catalog entry to a barycentric position and velocity
// (au, au/day). The velocity is the inertial one: the observed proper
// motion and radial velocity are corrected for the changing light time.
// The status is a sum of DistanceOverridden, VelocityZeroed and
// NotConverged.
func StarToPV(s astrometry.Star) (vecmat.PV, status.Code) {
	// Smallest allowed parallax (arcsec).
	const pxmin = 1e-7
	// Largest allowed speed (fraction of c).
	const vmax = 0.5
	const imax = 100

	var code status.Code
	w := s.Parallax
	if w < pxmin {
		w = pxmin
		code = DistanceOverridden
	}
	r := radiansToArcseconds / w

	// Radial velocity (au/day).
	rd := vecmat.DaySeconds * s.RadialVelocity * 1e3 / ephemeris.AstronomicalUnit

	// Proper motion (radian/day).
	rad := s.PMRA / timescale.DaysPerJulianYear
	decd := s.PMDec / timescale.DaysPerJulianYear

	pv := vecmat.S2PV(s.RA, s.Dec, r, rad, decd, rd)

	if v2 := vecmat.Dot(pv[1], pv[1]); v2/speedOfLight/speedOfLight > vmax*vmax {
		pv[1] = vecmat.Vector3{}
		code += VelocityZeroed
	}

	// Split the velocity into radial and transverse components.
	_, x := vecmat.Normalize(pv[0])
	vsr := vecmat.Dot(x, pv[1])
	usr := vecmat.Scale(vsr, x)
	ust := vecmat.Sub(pv[1], usr)
	vst := vecmat.Norm(ust)

	betsr := vsr / speedOfLight
	betst := vst / speedOfLight

	// Iterate the observed-to-inertial correction terms until they stop
	// improving.
	bett, betr := betst, betsr
	var d, del, od, odel, odd, oddel float64
	i := 0
	for ; i < imax; i++ {
		d = 1.0 + betr
		w := betr*betr + bett*bett
		del = -w / (math.Sqrt(1.0-w) + 1.0)
		betr = d*betsr + del
		bett = d * betst
		if i > 0 {
			dd := math.Abs(d - od)
			ddel := math.Abs(del - odel)
			if i > 1 && dd >= odd && ddel >= oddel {
				break
			}
			odd, oddel = dd, ddel
		}
		od, odel = d, del
	}
	if i >= imax {
		code += NotConverged
	}

	ut := vecmat.Scale(d, ust)
	ur := vecmat.Scale(speedOfLight*(d*betsr+del), x)
	pv[1] = vecmat.Add(ur, ut)
	return pv, code
}

// PVToStar converts a barycentric position and inertial velocity (au,
// au/day) to a catalog entry. The status is -1 for a superluminal speed and
// -2 for a null position vector; the entry is then zero.
func PVToStar(pv vecmat.PV) (astrometry.Star, status.Code) {
	r, x := vecmat.Normalize(pv[0])
	vr := vecmat.Dot(x, pv[1])
	ur := vecmat.Scale(vr, x)
	ut := vecmat.Sub(pv[1], ur)
	vt := vecmat.Norm(ut)

	bett := vt / speedOfLight
	betr := vr / speedOfLight

	// Inertial to observed correction terms.
	d := 1.0 + betr
	w := betr*betr + bett*bett
	if d == 0.0 || w >= 1.0 {
		return astrometry.Star{}, status.Invalid
	}
	del := -w / (math.Sqrt(1.0-w) + 1.0)

	ust := vecmat.Scale(1.0/d, ut)
	usr := vecmat.Scale(speedOfLight*(betr-del)/d, x)
	obs := vecmat.PV{pv[0], vecmat.Add(usr, ust)}

	a, dec, r, rad, decd, rd := vecmat.PV2S(obs)
	if r == 0.0 {
		return astrometry.Star{}, -2
	}

	return astrometry.Star{
		RA:             vecmat.NormalizeAngle(a),
		Dec:            dec,
		PMRA:           rad * timescale.DaysPerJulianYear,
		PMDec:          decd * timescale.DaysPerJulianYear,
		Parallax:       radiansToArcseconds / r,
		RadialVelocity: 1e-3 * rd * ephemeris.AstronomicalUnit / vecmat.DaySeconds,
	}, status.OK
}

// StarProperMotion propagates a catalog entry from the TDB epoch ep1a+ep1b
// to ep2a+ep2b, applying space motion and the change in light time. The
// status is that of StarToPV, or -1 if the result could not be formed.
func StarProperMotion(s astrometry.Star, ep1a, ep1b, ep2a, ep2b float64) (astrometry.Star, status.Code) {
	pv1, j1 := StarToPV(s)

	// Light time when observed (days).
	tl1 := vecmat.Norm(pv1[0]) / speedOfLight

	// Time interval, before to after (days).
	dt := (ep2a - ep1a) + (ep2b - ep1b)

	// Geometric position at the later epoch, then its light time.
	pv := vecmat.PVUpdate(dt+tl1, pv1)
	r2 := vecmat.Dot(pv[0], pv[0])
	rdv := vecmat.Dot(pv[0], pv[1])
	v2 := vecmat.Dot(pv[1], pv[1])
	c2mv2 := speedOfLight*speedOfLight - v2
	if c2mv2 <= 0 {
		return astrometry.Star{}, status.Invalid
	}
	tl2 := (-rdv + math.Sqrt(rdv*rdv+c2mv2*r2)) / c2mv2

	// Observed place at the later epoch.
	pv2 := vecmat.PVUpdate(dt+(tl1-tl2), pv1)

	out, j2 := PVToStar(pv2)
	if j2 != status.OK {
		return astrometry.Star{}, status.Invalid
	}
	return out, j1
}

// ProperMotionSafe is StarProperMotion with the parallax raised where it
// is too small for the proper motion, avoiding the warnings of StarToPV for
// stars with no catalog parallax. The status has 1 added when the parallax
// was raised, unless StarProperMotion already reported it.
func ProperMotionSafe(s astrometry.Star, ep1a, ep1b, ep2a, ep2b float64) (astrometry.Star, status.Code) {
	// Minimum allowed parallax (arcsec).
	const pxmin = 5e-7
	// Factor giving a maximum transverse speed of about 1% c.
	const f = 326.0

	pm := f * vecmat.SphericalSeparation(0.0, 0.0, s.PMRA, s.PMDec)

	var jpx status.Code
	if s.Parallax < pm {
		jpx = 1
		s.Parallax = pm
	}
	if s.Parallax < pxmin {
		jpx = 1
		s.Parallax = pxmin
	}

	out, j := StarProperMotion(s, ep1a, ep1b, ep2a, ep2b)
	if j%2 == 0 {
		j += jpx
	}
	return out, j
}
