package catalog

import (
	"github.com/unklstewy/astrom/pkg/astrometry"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// FK5HipparcosRotation returns the FK5 to Hipparcos rotation matrix and the
// spin of Hipparcos with respect to FK5 (radians per year), from Mignard &
// Froeschlé (2000).
func FK5HipparcosRotation() (r5h vecmat.Matrix3, s5h vecmat.Vector3) {
	// FK5 wrt Hipparcos orientation and spin (radians, radians/year).
	const (
		epx = -19.9e-3 * vecmat.ArcsecondsToRadians
		epy = -9.1e-3 * vecmat.ArcsecondsToRadians
		epz = 22.9e-3 * vecmat.ArcsecondsToRadians
		omx = -0.30e-3 * vecmat.ArcsecondsToRadians
		omy = 0.60e-3 * vecmat.ArcsecondsToRadians
		omz = 0.70e-3 * vecmat.ArcsecondsToRadians
	)
	r5h = vecmat.RotationVectorToMatrix(vecmat.Vector3{epx, epy, epz})
	return r5h, vecmat.Vector3{omx, omy, omz}
}

// FK5ToHipparcos transforms an FK5 (J2000.0) catalog entry to Hipparcos.
// The status is that of the final PVToStar.
func FK5ToHipparcos(s astrometry.Star) (astrometry.Star, status.Code) {
	pv5, _ := StarToPV(s)

	r5h, s5h := FK5HipparcosRotation()
	s5h = vecmat.Scale(1.0/timescale.DaysPerJulianYear, s5h)

	// Orient the position, and the spin-corrected motion, into Hipparcos.
	var pvh vecmat.PV
	pvh[0] = vecmat.MulMV(r5h, pv5[0])
	wxp := vecmat.Cross(pv5[0], s5h)
	pvh[1] = vecmat.MulMV(r5h, vecmat.Add(wxp, pv5[1]))

	return PVToStar(pvh)
}

// HipparcosToFK5 transforms a Hipparcos catalog entry to FK5 (J2000.0).
// The status is that of the final PVToStar.
func HipparcosToFK5(s astrometry.Star) (astrometry.Star, status.Code) {
	pvh, _ := StarToPV(s)

	r5h, s5h := FK5HipparcosRotation()
	s5h = vecmat.Scale(1.0/timescale.DaysPerJulianYear, s5h)

	// Spin in the Hipparcos system.
	sh := vecmat.MulMV(r5h, s5h)

	var pv5 vecmat.PV
	pv5[0] = vecmat.TMulMV(r5h, pvh[0])
	wxp := vecmat.Cross(pvh[0], sh)
	pv5[1] = vecmat.TMulMV(r5h, vecmat.Sub(pvh[1], wxp))

	return PVToStar(pv5)
}

// FK5ToHipparcosZeroPM transforms an FK5 (J2000.0) position of a star
// with zero Hipparcos proper motion, at the TDB date date1+date2, to
// Hipparcos RA,Dec.
func FK5ToHipparcosZeroPM(r5, d5, date1, date2 float64) (rh, dh float64) {
	// Interval from the given date to J2000.0 (Julian years).
	t := -((date1 - timescale.J2000) + date2) / timescale.DaysPerJulianYear

	p5e := vecmat.SphericalToCartesian(r5, d5)
	r5h, s5h := FK5HipparcosRotation()

	// Derotate the accumulated spin, then rotate into Hipparcos.
	rst := vecmat.RotationVectorToMatrix(vecmat.Scale(t, s5h))
	p5 := vecmat.TMulMV(rst, p5e)
	ph := vecmat.MulMV(r5h, p5)

	w, dh := vecmat.CartesianToSpherical(ph)
	return vecmat.NormalizeAngle(w), dh
}

// HipparcosToFK5ZeroPM transforms a Hipparcos position of a star with zero
// Hipparcos proper motion, at the TDB date date1+date2, to FK5 (J2000.0)
// RA,Dec and the FK5 proper motion (radians/year) the spin implies.
func HipparcosToFK5ZeroPM(rh, dh, date1, date2 float64) (r5, d5, dr5, dd5 float64) {
	// Interval from J2000.0 to the given date (Julian years).
	t := ((date1 - timescale.J2000) + date2) / timescale.DaysPerJulianYear

	ph := vecmat.SphericalToCartesian(rh, dh)
	r5h, s5h := FK5HipparcosRotation()
	sh := vecmat.MulMV(r5h, s5h)

	// Accumulated spin, then FK5 to Hipparcos.
	rst := vecmat.RotationVectorToMatrix(vecmat.Scale(t, s5h))
	r5ht := vecmat.MulMM(r5h, rst)

	var pv5e vecmat.PV
	pv5e[0] = vecmat.TMulMV(r5ht, ph)
	pv5e[1] = vecmat.TMulMV(r5ht, vecmat.Cross(sh, ph))

	w, d5, _, dr5, dd5, _ := vecmat.PV2S(pv5e)
	return vecmat.NormalizeAngle(w), d5, dr5, dd5
}
