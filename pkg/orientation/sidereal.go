package orientation

import (
	"math"

	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// EarthRotationAngle returns the Earth rotation angle (IAU 2000) for a UT1
// date.
func EarthRotationAngle(dj1, dj2 float64) float64 {
	d1, d2 := dj2, dj1
	if dj1 < dj2 {
		d1, d2 = dj1, dj2
	}
	t := d1 + (d2 - timescale.J2000)

	// Fractional part of T (days).
	f := math.Mod(d1, 1.0) + math.Mod(d2, 1.0)

	return vecmat.NormalizeAngle(twoPi * (f + 0.7790572732640 + 0.00273781191135448*t))
}

// GMST82 returns Greenwich mean sidereal time from the IAU 1982 model, for a
// UT1 date.
func GMST82(dj1, dj2 float64) float64 {
	// Coefficients of the IAU 1982 expression, adjusted to start at 0h UT1.
	const (
		a = 24110.54841 - timescale.DaySeconds/2.0
		b = 8640184.812866
		c = 0.093104
		d = -6.2e-6
	)

	d1, d2 := dj2, dj1
	if dj1 < dj2 {
		d1, d2 = dj1, dj2
	}
	t := (d1 + (d2 - timescale.J2000)) / timescale.DaysPerJulianCentury

	// Fractional part of JD(UT1), in seconds.
	f := timescale.DaySeconds * (math.Mod(d1, 1.0) + math.Mod(d2, 1.0))

	return vecmat.NormalizeAngle(vecmat.SecondsToRadians * ((a + (b+(c+d*t)*t)*t) + f))
}

// GMST00 returns Greenwich mean sidereal time consistent with the IAU 2000
// resolutions, given UT1 and TT dates.
func GMST00(uta, utb, tta, ttb float64) float64 {
	t := centuries(tta, ttb)
	return vecmat.NormalizeAngle(EarthRotationAngle(uta, utb) +
		(0.014506+
			(4612.15739966+
				(1.39667721+
					(-0.00009344+
						(0.00001882)*t)*t)*t)*t)*das2r)
}

// GMST06 returns Greenwich mean sidereal time consistent with the IAU 2006
// precession, given UT1 and TT dates.
func GMST06(uta, utb, tta, ttb float64) float64 {
	t := centuries(tta, ttb)
	return vecmat.NormalizeAngle(EarthRotationAngle(uta, utb) +
		(0.014506+
			(4612.156534+
				(1.3915817+
					(-0.00000044+
						(-0.000029956+
							(-0.0000000368)*t)*t)*t)*t)*t)*das2r)
}

// GST94 returns Greenwich apparent sidereal time consistent with IAU 1982
// and 1994 resolutions, for a UT1 date.
func GST94(uta, utb float64) float64 {
	return vecmat.NormalizeAngle(GMST82(uta, utb) + EquationOfEquinoxes94(uta, utb))
}

// GST00A returns Greenwich apparent sidereal time consistent with IAU 2000
// resolutions, given UT1 and TT dates.
func GST00A(uta, utb, tta, ttb float64) float64 {
	return vecmat.NormalizeAngle(GMST00(uta, utb, tta, ttb) + EquationOfEquinoxes00A(tta, ttb))
}

// GST00B returns Greenwich apparent sidereal time from the IAU 2000B
// nutation, for a UT1 date (TT is taken equal to UT1).
func GST00B(uta, utb float64) float64 {
	return vecmat.NormalizeAngle(GMST00(uta, utb, uta, utb) + EquationOfEquinoxes00B(uta, utb))
}

// GST06 returns Greenwich apparent sidereal time consistent with IAU 2006
// resolutions, given UT1 and TT dates and the bias-precession-nutation
// matrix.
func GST06(uta, utb, tta, ttb float64, rnpb vecmat.Matrix3) float64 {
	x, y := CIPXY(rnpb)
	s := CIOLocator06(tta, ttb, x, y)
	era := EarthRotationAngle(uta, utb)
	return vecmat.NormalizeAngle(era - EquationOfOrigins(rnpb, s))
}

// GST06A returns Greenwich apparent sidereal time from the IAU 2006/2000A
// model.
func GST06A(uta, utb, tta, ttb float64) float64 {
	return GST06(uta, utb, tta, ttb, BPNMatrix06A(tta, ttb))
}

// EquationOfEquinoxes94 returns the equation of the equinoxes of the IAU
// 1994 model, for a TDB date.
func EquationOfEquinoxes94(date1, date2 float64) float64 {
	t := centuries(date1, date2)

	// Longitude of the mean ascending node of the lunar orbit.
	om := vecmat.NormalizeAngleSigned(
		(450160.280+(-482890.539+(7.455+0.008*t)*t)*t)*das2r +
			math.Mod(-5.0*t, 1.0)*twoPi)

	dpsi, _ := Nutation80(date1, date2)
	eps0 := MeanObliquity80(date1, date2)

	return dpsi*math.Cos(eps0) + das2r*(0.00264*math.Sin(om)+0.000063*math.Sin(om+om))
}

// EquationOfEquinoxes00 returns the IAU 2000 equation of the equinoxes given
// the mean obliquity and the nutation in longitude.
func EquationOfEquinoxes00(date1, date2, epsa, dpsi float64) float64 {
	return dpsi*math.Cos(epsa) + EquationOfEquinoxesCT00(date1, date2)
}

// EquationOfEquinoxes00A returns the equation of the equinoxes from the IAU
// 2000A model.
func EquationOfEquinoxes00A(date1, date2 float64) float64 {
	_, depspr := PrecessionRate00(date1, date2)
	epsa := MeanObliquity80(date1, date2) + depspr
	dpsi, _ := Nutation00A(date1, date2)
	return EquationOfEquinoxes00(date1, date2, epsa, dpsi)
}

// EquationOfEquinoxes00B returns the equation of the equinoxes from the IAU
// 2000B model.
func EquationOfEquinoxes00B(date1, date2 float64) float64 {
	_, depspr := PrecessionRate00(date1, date2)
	epsa := MeanObliquity80(date1, date2) + depspr
	dpsi, _ := Nutation00B(date1, date2)
	return EquationOfEquinoxes00(date1, date2, epsa, dpsi)
}

// EquationOfEquinoxes06A returns the equation of the equinoxes consistent
// with IAU 2006 precession and IAU 2000A nutation.
func EquationOfEquinoxes06A(date1, date2 float64) float64 {
	gst := GST06A(0, 0, date1, date2)
	gmst := GMST06(0, 0, date1, date2)
	return vecmat.NormalizeAngleSigned(gst - gmst)
}

// EquationOfEquinoxesCT00 returns the complementary terms of the equation of
// the equinoxes (IERS Conventions 2003).
func EquationOfEquinoxesCT00(date1, date2 float64) float64 {
	t := centuries(date1, date2)
	fa := fundamentalArgs8(t)
	s0 := sumTerms(0, &fa, eectTerms0[:])
	s1 := sumTerms(0, &fa, eectTerms1[:])
	return (s0 + s1*t) * das2r
}

// EquationOfOrigins returns the equation of the origins, given the
// classical NPB matrix and the CIO locator s.
func EquationOfOrigins(rnpb vecmat.Matrix3, s float64) float64 {
	// Wallace & Capitaine (2006) expression.
	x := rnpb[2][0]
	ax := x / (1.0 + rnpb[2][2])
	xs := 1.0 - ax*x
	ys := -ax * rnpb[2][1]
	zs := -x
	p := rnpb[0][0]*xs + rnpb[0][1]*ys + rnpb[0][2]*zs
	q := rnpb[1][0]*xs + rnpb[1][1]*ys + rnpb[1][2]*zs
	if p != 0 || q != 0 {
		return s - math.Atan2(q, p)
	}
	return s
}

// EquationOfOrigins06A returns the equation of the origins from the IAU
// 2006 precession and IAU 2000A nutation.
func EquationOfOrigins06A(date1, date2 float64) float64 {
	r := BPNMatrix06A(date1, date2)
	x, y := CIPXY(r)
	return EquationOfOrigins(r, CIOLocator06(date1, date2, x, y))
}
