package astrometry

import (
	"math"

	"github.com/unklstewy/astrom/pkg/ephemeris"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Body is a solar-system body that deflects light.
type Body struct {
	BM float64   // mass of the body (solar masses)
	DL float64   // deflection limiter (radians^2/2)
	PV vecmat.PV // barycentric position and velocity (au, au/day)
}

// Star is a catalog entry at the ICRS reference epoch J2000.0 (TDB).
type Star struct {
	RA, Dec float64 // right ascension and declination (radians)

	// Proper motion: RA is dRA/dt, not cos(Dec)*dRA/dt (radians/year).
	PMRA, PMDec float64

	Parallax       float64 // arcseconds
	RadialVelocity float64 // km/s, positive receding
}

// ProperMotionParallax applies proper motion and parallax to the star,
// given the proper motion time interval pmt (Julian years) and the SSB to
// observer vector pob (au). The result is the BCRS coordinate direction.
func ProperMotionParallax(s Star, pmt float64, pob vecmat.Vector3) vecmat.Vector3 {
	// km/s to au/year
	const vf = vecmat.DaySeconds * timescale.DaysPerJulianMillennium / ephemeris.AstronomicalUnit
	// light time for 1 au, Julian years
	const aulty = lightTimeAU / vecmat.DaySeconds / timescale.DaysPerJulianYear

	sr, cr := math.Sincos(s.RA)
	sd, cd := math.Sincos(s.Dec)
	x, y, z := cr*cd, sr*cd, sd
	p := vecmat.Vector3{x, y, z}

	// Proper motion time interval including Roemer effect.
	dt := pmt + vecmat.Dot(p, pob)*aulty

	// Space motion (radians per year).
	pxr := s.Parallax * vecmat.ArcsecondsToRadians
	w := vf * s.RadialVelocity * pxr
	pdz := s.PMDec * z
	pm := vecmat.Vector3{
		-s.PMRA*y - pdz*cr + w*x,
		s.PMRA*x - pdz*sr + w*y,
		s.PMDec*cd + w*z,
	}

	for i := 0; i < 3; i++ {
		p[i] += dt*pm[i] - pxr*pob[i]
	}
	_, pco := vecmat.Normalize(p)
	return pco
}

// Deflect applies light deflection by a solar-system body of mass bm (solar
// masses). p is the direction from observer to source, q the direction from
// body to source, e the direction from body to observer, em the distance
// from body to observer (au) and dlim the deflection limiter.
func Deflect(bm float64, p, q, e vecmat.Vector3, em, dlim float64) vecmat.Vector3 {
	qpe := vecmat.Add(q, e)
	qdqpe := vecmat.Dot(q, qpe)

	w := bm * schwarzschildSun / em / math.Max(qdqpe, dlim)

	peq := vecmat.Cross(p, vecmat.Cross(e, q))
	return vecmat.AddScaled(p, w, peq)
}

// DeflectSun applies light deflection by the Sun to the direction p of a
// source at infinity. e is the direction from Sun to observer and em the
// distance (au).
func DeflectSun(p, e vecmat.Vector3, em float64) vecmat.Vector3 {
	// The limiter is smaller for distant observers.
	em2 := math.Max(em*em, 1.0)
	dlim := 1e-6 / em2
	return Deflect(1.0, p, p, e, em, dlim)
}

// DeflectBodies applies light deflection by each of the bodies in turn to
// the BCRS direction sc of a star, as seen by an observer at ob (au, SSB).
// The Sun, if wanted, must be one of the bodies.
func DeflectBodies(bodies []Body, ob, sc vecmat.Vector3) vecmat.Vector3 {
	// light time for 1 au (days)
	const cr = lightTimeAU / vecmat.DaySeconds

	sn := sc
	for _, b := range bodies {
		// Body to observer vector at epoch of observation (au).
		v := vecmat.Sub(ob, b.PV[0])

		// Minus the time since the light passed the body (days), clamped
		// for sources between the body and the observer.
		dt := math.Min(vecmat.Dot(sn, v)*cr, 0.0)

		// Backtrack the body to the time the light was passing it.
		ev := vecmat.AddScaled(v, -dt, b.PV[1])
		em, e := vecmat.Normalize(ev)

		sn = Deflect(b.BM, sn, sn, e, em, b.DL)
	}
	return sn
}

// Aberrate applies stellar aberration to the natural direction pnat, given
// the observer's barycentric velocity v (units of c), the distance s from
// the Sun to the observer (au) and bm1, the reciprocal of the Lorenz
// factor. The result is the proper direction.
func Aberrate(pnat, v vecmat.Vector3, s, bm1 float64) vecmat.Vector3 {
	pdv := vecmat.Dot(pnat, v)
	w1 := 1.0 + pdv/(1.0+bm1)
	w2 := schwarzschildSun / s

	var p vecmat.Vector3
	for i := 0; i < 3; i++ {
		p[i] = pnat[i]*bm1 + w1*v[i] + w2*(v[i]-pdv*pnat[i])
	}
	_, ppr := vecmat.Normalize(p)
	return ppr
}

// RefractionConstants returns the constants A and B of the refraction
// model dZ = A tan Z + B tan^3 Z, given the pressure (hPa), the ambient
// temperature (°C), the relative humidity (0-1) and the wavelength
// (micrometers). Wavelengths above 100 micrometers select the radio
// formula. Inputs are clamped to the valid ranges and zero pressure gives
// zero refraction.
func RefractionConstants(phpa, tc, rh, wl float64) (refa, refb float64) {
	optic := wl <= 100.0

	t := math.Min(math.Max(tc, -150.0), 200.0)
	p := math.Min(math.Max(phpa, 0.0), 10000.0)
	r := math.Min(math.Max(rh, 0.0), 1.0)
	w := math.Min(math.Max(wl, 0.1), 1e6)

	// Water vapour pressure at the observer.
	var pw float64
	if p > 0.0 {
		ps := math.Pow(10.0, (0.7859+0.03477*t)/(1.0+0.00412*t)) * (1.0 + p*(4.5e-6+6e-10*t*t))
		pw = r * ps / (1.0 - (1.0-r)*ps/p)
	}

	// Refractive index minus 1 at the observer.
	tk := t + 273.15
	var gamma float64
	if optic {
		wlsq := w * w
		gamma = ((77.53484e-6+(4.39108e-7+3.666e-9/wlsq)/wlsq)*p - 11.2684e-6*pw) / tk
	} else {
		gamma = (77.6890e-6*p - (6.3938e-6-0.375463/tk)*pw) / tk
	}

	// Formula for beta from Stone, with empirical adjustments.
	beta := 4.4474e-6 * tk
	if !optic {
		beta -= 0.0074 * pw * beta
	}

	return gamma * (1.0 - beta), -gamma * (beta - gamma/2.0)
}
