package orientation

import (
	"math"

	"github.com/unklstewy/astrom/pkg/vecmat"
)

// cioTerm is one periodic term with multipliers of l, l', F, D, Om, LVe,
// LE and pA, and sine and cosine amplitudes in arcseconds.
type cioTerm struct {
	n    [8]int
	s, c float64
}

// fundamentalArgs8 returns the eight arguments used by the CIO series.
func fundamentalArgs8(t float64) [8]float64 {
	return [8]float64{
		MeanAnomalyMoon(t),
		MeanAnomalySun(t),
		MeanArgLatitudeMoon(t),
		MeanElongationMoon(t),
		MeanLongitudeNodeMoon(t),
		MeanLongitudeVenus(t),
		MeanLongitudeEarth(t),
		GeneralPrecessionLongitude(t),
	}
}

// sumTerms adds the series to w, smallest terms first.
func sumTerms(w float64, fa *[8]float64, terms []cioTerm) float64 {
	for i := len(terms) - 1; i >= 0; i-- {
		a := 0.0
		for j, n := range terms[i].n {
			a += float64(n) * fa[j]
		}
		w += terms[i].s*math.Sin(a) + terms[i].c*math.Cos(a)
	}
	return w
}

func cioLocator(date1, date2, x, y float64, poly *[6]float64, t1, t2, t3 []cioTerm) float64 {
	t := centuries(date1, date2)
	fa := fundamentalArgs8(t)

	w0 := sumTerms(poly[0], &fa, sTerms0[:])
	w1 := sumTerms(poly[1], &fa, t1)
	w2 := sumTerms(poly[2], &fa, t2)
	w3 := sumTerms(poly[3], &fa, t3)
	w4 := sumTerms(poly[4], &fa, sTerms4[:])
	w5 := poly[5]

	return (w0+(w1+(w2+(w3+(w4+w5*t)*t)*t)*t)*t)*das2r - x*y/2.0
}

// CIOLocator00 returns the CIO locator s, given the CIP X,Y, consistent with
// the IAU 2000A precession-nutation model.
func CIOLocator00(date1, date2, x, y float64) float64 {
	return cioLocator(date1, date2, x, y, &s00Poly, s00Terms1[:], s00Terms2[:], s00Terms3[:])
}

// CIOLocator06 returns the CIO locator s, given the CIP X,Y, consistent with
// the IAU 2006 precession model.
func CIOLocator06(date1, date2, x, y float64) float64 {
	return cioLocator(date1, date2, x, y, &s06Poly, s06Terms1[:], s06Terms2[:], s06Terms3[:])
}

// CIOLocator00A returns s using the IAU 2000A model for X,Y.
func CIOLocator00A(date1, date2 float64) float64 {
	_, _, s := CIPXYS00A(date1, date2)
	return s
}

// CIOLocator00B returns s using the IAU 2000B model for X,Y.
func CIOLocator00B(date1, date2 float64) float64 {
	_, _, s := CIPXYS00B(date1, date2)
	return s
}

// CIOLocator06A returns s using the IAU 2006/2000A model for X,Y.
func CIOLocator06A(date1, date2 float64) float64 {
	_, _, s := CIPXYS06A(date1, date2)
	return s
}

// CIPXYS00A returns the CIP X,Y and the CIO locator s from IAU 2000A.
func CIPXYS00A(date1, date2 float64) (x, y, s float64) {
	x, y = CIPXY(BPNMatrix00A(date1, date2))
	return x, y, CIOLocator00(date1, date2, x, y)
}

// CIPXYS00B returns the CIP X,Y and the CIO locator s from IAU 2000B.
func CIPXYS00B(date1, date2 float64) (x, y, s float64) {
	x, y = CIPXY(BPNMatrix00B(date1, date2))
	return x, y, CIOLocator00(date1, date2, x, y)
}

// CIPXYS06A returns the CIP X,Y and the CIO locator s from IAU 2006/2000A.
func CIPXYS06A(date1, date2 float64) (x, y, s float64) {
	x, y = CIPXY(BPNMatrix06A(date1, date2))
	return x, y, CIOLocator06(date1, date2, x, y)
}

// TIOLocator00 returns the TIO locator s', positioning the Terrestrial
// Intermediate Origin on the equator of the CIP.
func TIOLocator00(date1, date2 float64) float64 {
	return -47e-6 * centuries(date1, date2) * das2r
}

// PolarMotionMatrix forms the matrix of polar motion (ITRS to TIRS) from
// the pole coordinates xp, yp and the TIO locator sp.
func PolarMotionMatrix(xp, yp, sp float64) vecmat.Matrix3 {
	r := vecmat.Identity()
	r = vecmat.RotateZ(sp, r)
	r = vecmat.RotateY(-xp, r)
	return vecmat.RotateX(-yp, r)
}

// C2IFromXYS forms the celestial-to-intermediate matrix from the CIP X,Y
// and the CIO locator s.
func C2IFromXYS(x, y, s float64) vecmat.Matrix3 {
	r2 := x*x + y*y
	e := 0.0
	if r2 > 0 {
		e = math.Atan2(y, x)
	}
	d := math.Atan(math.Sqrt(r2 / (1.0 - r2)))

	r := vecmat.Identity()
	r = vecmat.RotateZ(e, r)
	r = vecmat.RotateY(d, r)
	return vecmat.RotateZ(-(e + s), r)
}

// C2IFromXY forms the celestial-to-intermediate matrix from the CIP X,Y,
// computing s with the IAU 2000 series.
func C2IFromXY(date1, date2, x, y float64) vecmat.Matrix3 {
	return C2IFromXYS(x, y, CIOLocator00(date1, date2, x, y))
}

// C2IFromBPN forms the celestial-to-intermediate matrix from a
// bias-precession-nutation matrix (IAU 2000).
func C2IFromBPN(date1, date2 float64, rbpn vecmat.Matrix3) vecmat.Matrix3 {
	x, y := CIPXY(rbpn)
	return C2IFromXY(date1, date2, x, y)
}

// C2I00A returns the IAU 2000A celestial-to-intermediate matrix.
func C2I00A(date1, date2 float64) vecmat.Matrix3 {
	return C2IFromBPN(date1, date2, BPNMatrix00A(date1, date2))
}

// C2I00B returns the IAU 2000B celestial-to-intermediate matrix.
func C2I00B(date1, date2 float64) vecmat.Matrix3 {
	return C2IFromBPN(date1, date2, BPNMatrix00B(date1, date2))
}

// C2I06A returns the IAU 2006/2000A celestial-to-intermediate matrix.
func C2I06A(date1, date2 float64) vecmat.Matrix3 {
	x, y, s := CIPXYS06A(date1, date2)
	return C2IFromXYS(x, y, s)
}

// C2TFromCIO assembles the celestial-to-terrestrial matrix from CIO-based
// components: celestial-to-intermediate matrix, Earth rotation angle and
// polar motion matrix.
func C2TFromCIO(rc2i vecmat.Matrix3, era float64, rpom vecmat.Matrix3) vecmat.Matrix3 {
	return vecmat.MulMM(rpom, vecmat.RotateZ(era, rc2i))
}

// C2TFromEquinox assembles the celestial-to-terrestrial matrix from
// equinox-based components: BPN matrix, Greenwich apparent sidereal time
// and polar motion matrix.
func C2TFromEquinox(rbpn vecmat.Matrix3, gst float64, rpom vecmat.Matrix3) vecmat.Matrix3 {
	return vecmat.MulMM(rpom, vecmat.RotateZ(gst, rbpn))
}

// C2TFromNutation forms the celestial-to-terrestrial matrix given TT and
// UT1, the nutation components and the pole coordinates, using the IAU 2000
// equinox-based formulation.
func C2TFromNutation(tta, ttb, uta, utb, dpsi, deps, xp, yp float64) vecmat.Matrix3 {
	pn := PrecessionNutation00(tta, ttb, dpsi, deps)
	gmst := GMST00(uta, utb, tta, ttb)
	ee := EquationOfEquinoxes00(tta, ttb, pn.EpsA, dpsi)
	rpom := PolarMotionMatrix(xp, yp, TIOLocator00(tta, ttb))
	return C2TFromEquinox(pn.RBPN, gmst+ee, rpom)
}

// C2TFromXY forms the celestial-to-terrestrial matrix given TT and UT1, the
// CIP X,Y and the pole coordinates.
func C2TFromXY(tta, ttb, uta, utb, x, y, xp, yp float64) vecmat.Matrix3 {
	rc2i := C2IFromXY(tta, ttb, x, y)
	era := EarthRotationAngle(uta, utb)
	rpom := PolarMotionMatrix(xp, yp, TIOLocator00(tta, ttb))
	return C2TFromCIO(rc2i, era, rpom)
}

// C2T00A returns the IAU 2000A celestial-to-terrestrial matrix.
func C2T00A(tta, ttb, uta, utb, xp, yp float64) vecmat.Matrix3 {
	rc2i := C2I00A(tta, ttb)
	era := EarthRotationAngle(uta, utb)
	rpom := PolarMotionMatrix(xp, yp, TIOLocator00(tta, ttb))
	return C2TFromCIO(rc2i, era, rpom)
}

// C2T00B returns the IAU 2000B celestial-to-terrestrial matrix. The TIO
// locator is neglected, consistent with the model's accuracy.
func C2T00B(tta, ttb, uta, utb, xp, yp float64) vecmat.Matrix3 {
	rc2i := C2I00B(tta, ttb)
	era := EarthRotationAngle(uta, utb)
	rpom := PolarMotionMatrix(xp, yp, 0)
	return C2TFromCIO(rc2i, era, rpom)
}

// C2T06A returns the IAU 2006/2000A celestial-to-terrestrial matrix.
func C2T06A(tta, ttb, uta, utb, xp, yp float64) vecmat.Matrix3 {
	rc2i := C2I06A(tta, ttb)
	era := EarthRotationAngle(uta, utb)
	rpom := PolarMotionMatrix(xp, yp, TIOLocator00(tta, ttb))
	return C2TFromCIO(rc2i, era, rpom)
}
