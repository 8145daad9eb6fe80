package ephemeris

import (
	"math"

	"github.com/unklstewy/astrom/pkg/orientation"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// lunarTerm is one periodic term of the Meeus (1998) lunar series:
// multipliers of D, M, M' and F, then the longitude (or latitude)
// coefficient in degrees and the distance coefficient in meters.
type lunarTerm struct {
	nd, nem, nemp, nf int
	coefl, coefr      float64
}

// Longitude and distance.
var lunarLR = [...]lunarTerm{
	{0, 0, 1, 0, 6.288774, -20905355.0},
	{2, 0, -1, 0, 1.274027, -3699111.0},
	{2, 0, 0, 0, 0.658314, -2955968.0},
	{0, 0, 2, 0, 0.213618, -569925.0},
	{0, 1, 0, 0, -0.185116, 48888.0},
	{0, 0, 0, 2, -0.114332, -3149.0},
	{2, 0, -2, 0, 0.058793, 246158.0},
	{2, -1, -1, 0, 0.057066, -152138.0},
	{2, 0, 1, 0, 0.053322, -170733.0},
	{2, -1, 0, 0, 0.045758, -204586.0},
	{0, 1, -1, 0, -0.040923, -129620.0},
	{1, 0, 0, 0, -0.034720, 108743.0},
	{0, 1, 1, 0, -0.030383, 104755.0},
	{2, 0, 0, -2, 0.015327, 10321.0},
	{0, 0, 1, 2, -0.012528, 0.0},
	{0, 0, 1, -2, 0.010980, 79661.0},
	{4, 0, -1, 0, 0.010675, -34782.0},
	{0, 0, 3, 0, 0.010034, -23210.0},
	{4, 0, -2, 0, 0.008548, -21636.0},
	{2, 1, -1, 0, -0.007888, 24208.0},
	{2, 1, 0, 0, -0.006766, 30824.0},
	{1, 0, -1, 0, -0.005163, -8379.0},
	{1, 1, 0, 0, 0.004987, -16675.0},
	{2, -1, 1, 0, 0.004036, -12831.0},
	{2, 0, 2, 0, 0.003994, -10445.0},
	{4, 0, 0, 0, 0.003861, -11650.0},
	{2, 0, -3, 0, 0.003665, 14403.0},
	{0, 1, -2, 0, -0.002689, -7003.0},
	{2, 0, -1, 2, -0.002602, 0.0},
	{2, -1, -2, 0, 0.002390, 10056.0},
	{1, 0, 1, 0, -0.002348, 6322.0},
	{2, -2, 0, 0, 0.002236, -9884.0},
	{0, 1, 2, 0, -0.002120, 5751.0},
	{0, 2, 0, 0, -0.002069, 0.0},
	{2, -2, -1, 0, 0.002048, -4950.0},
	{2, 0, 1, -2, -0.001773, 4130.0},
	{2, 0, 0, 2, -0.001595, 0.0},
	{4, -1, -1, 0, 0.001215, -3958.0},
	{0, 0, 2, 2, -0.001110, 0.0},
	{3, 0, -1, 0, -0.000892, 3258.0},
	{2, 1, 1, 0, -0.000810, 2616.0},
	{4, -1, -2, 0, 0.000759, -1897.0},
	{0, 2, -1, 0, -0.000713, -2117.0},
	{2, 2, -1, 0, -0.000700, 2354.0},
	{2, 1, -2, 0, 0.000691, 0.0},
	{2, -1, 0, -2, 0.000596, 0.0},
	{4, 0, 1, 0, 0.000549, -1423.0},
	{0, 0, 4, 0, 0.000537, -1117.0},
	{4, -1, 0, 0, 0.000520, -1571.0},
	{1, 0, -2, 0, -0.000487, -1739.0},
	{2, 1, 0, -2, -0.000399, 0.0},
	{0, 0, 2, -2, -0.000381, -4421.0},
	{1, 1, 1, 0, 0.000351, 0.0},
	{3, 0, -2, 0, -0.000340, 0.0},
	{4, 0, -3, 0, 0.000330, 0.0},
	{2, -1, 2, 0, 0.000327, 0.0},
	{0, 2, 1, 0, -0.000323, 1165.0},
	{1, 1, -1, 0, 0.000299, 0.0},
	{2, 0, 3, 0, 0.000294, 0.0},
	{2, 0, -1, -2, 0.000000, 8752.0},
}

// Latitude (coefl only).
var lunarB = [...]lunarTerm{
	{0, 0, 0, 1, 5.128122, 0},
	{0, 0, 1, 1, 0.280602, 0},
	{0, 0, 1, -1, 0.277693, 0},
	{2, 0, 0, -1, 0.173237, 0},
	{2, 0, -1, 1, 0.055413, 0},
	{2, 0, -1, -1, 0.046271, 0},
	{2, 0, 0, 1, 0.032573, 0},
	{0, 0, 2, 1, 0.017198, 0},
	{2, 0, 1, -1, 0.009266, 0},
	{0, 0, 2, -1, 0.008822, 0},
	{2, -1, 0, -1, 0.008216, 0},
	{2, 0, -2, -1, 0.004324, 0},
	{2, 0, 1, 1, 0.004200, 0},
	{2, 1, 0, -1, -0.003359, 0},
	{2, -1, -1, 1, 0.002463, 0},
	{2, -1, 0, 1, 0.002211, 0},
	{2, -1, -1, -1, 0.002065, 0},
	{0, 1, -1, -1, -0.001870, 0},
	{4, 0, -1, -1, 0.001828, 0},
	{0, 1, 0, 1, -0.001794, 0},
	{0, 0, 0, 3, -0.001749, 0},
	{0, 1, -1, 1, -0.001565, 0},
	{1, 0, 0, 1, -0.001491, 0},
	{0, 1, 1, 1, -0.001475, 0},
	{0, 1, 1, -1, -0.001410, 0},
	{0, 1, 0, -1, -0.001344, 0},
	{1, 0, 0, -1, -0.001335, 0},
	{0, 0, 3, 1, 0.001107, 0},
	{4, 0, 0, -1, 0.001021, 0},
	{4, 0, -1, 1, 0.000833, 0},
	{0, 0, 1, -3, 0.000777, 0},
	{4, 0, -2, 1, 0.000671, 0},
	{2, 0, 0, -3, 0.000607, 0},
	{2, 0, 2, -1, 0.000596, 0},
	{2, -1, 1, -1, 0.000491, 0},
	{2, 0, -2, 1, -0.000451, 0},
	{0, 0, 3, -1, 0.000439, 0},
	{2, 0, 2, 1, 0.000422, 0},
	{2, 0, -3, -1, 0.000421, 0},
	{2, 1, -1, 1, -0.000366, 0},
	{2, 1, 0, 1, -0.000351, 0},
	{4, 0, 0, 1, 0.000331, 0},
	{2, -1, 1, 1, 0.000315, 0},
	{2, -2, 0, -1, 0.000302, 0},
	{0, 0, 1, 3, -0.000283, 0},
	{2, 1, 1, -1, -0.000229, 0},
	{1, 1, 0, -1, 0.000223, 0},
	{1, 1, 0, 1, 0.000223, 0},
	{0, 1, -2, -1, -0.000220, 0},
	{2, 1, -1, -1, -0.000220, 0},
	{1, 0, 1, 1, -0.000185, 0},
	{2, -1, -2, -1, 0.000181, 0},
	{0, 1, 2, 1, -0.000177, 0},
	{4, 0, -2, -1, 0.000176, 0},
	{4, -1, -1, -1, 0.000166, 0},
	{1, 0, 1, -1, -0.000164, 0},
	{4, 0, 1, -1, 0.000132, 0},
	{1, 0, -1, -1, -0.000119, 0},
	{4, -1, 0, -1, 0.000115, 0},
	{2, -2, 0, 1, 0.000107, 0},
}

// lunarPoly evaluates a quartic in degrees, returning the angle modulo one
// turn and its rate, both in radians (rate per Julian century).
func lunarPoly(c [5]float64, t float64) (a, rate float64) {
	a = vecmat.DegreesToRadians * math.Mod(c[0]+(c[1]+(c[2]+(c[3]+c[4]*t)*t)*t)*t, 360.0)
	rate = vecmat.DegreesToRadians * (c[1] + (c[2]*2.0+(c[3]*3.0+c[4]*4.0*t)*t)*t)
	return a, rate
}

var (
	// Moon's mean longitude wrt mean equinox and ecliptic of date.
	moonMeanLongitude = [5]float64{218.31665436, 481267.88123421, -0.0015786, 1.0 / 538841.0, -1.0 / 65194000.0}
	// Moon's mean elongation.
	moonElongation = [5]float64{297.8501921, 445267.1114034, -0.0018819, 1.0 / 545868.0, 1.0 / 113065000.0}
	// Sun's mean anomaly.
	sunAnomaly = [5]float64{357.5291092, 35999.0502909, -0.0001536, 1.0 / 24490000.0, 0.0}
	// Moon's mean anomaly.
	moonAnomaly = [5]float64{134.9633964, 477198.8675055, 0.0087414, 1.0 / 69699.0, -1.0 / 14712000.0}
	// Mean distance of the Moon from its ascending node.
	moonNodeDistance = [5]float64{93.2720950, 483202.0175233, -0.0036539, 1.0 / 3526000.0, 1.0 / 863310000.0}
)

// Moon returns the geocentric position and velocity of the Moon in the
// GCRS, from the truncated ELP 2000-82 series in Meeus (1998) with
// analytic rates. date1+date2 is the TT Julian Date.
//
// Position accuracy is about 10 arcseconds in longitude, 3 in latitude and
// 5 km in distance over 1900-2100.
func Moon(date1, date2 float64) vecmat.PV {
	const (
		// Fixed term in distance (m).
		r0 = 385000560.0

		// Coefficients of the E factor.
		e1 = -0.002516
		e2 = -0.0000074
	)

	t := ((date1 - timescale.J2000) + date2) / timescale.DaysPerJulianCentury

	elp, delp := lunarPoly(moonMeanLongitude, t)
	d, dd := lunarPoly(moonElongation, t)
	em, dem := lunarPoly(sunAnomaly, t)
	emp, demp := lunarPoly(moonAnomaly, t)
	f, df := lunarPoly(moonNodeDistance, t)

	// Meeus A1 (Venus), A2 (Jupiter) and A3 (sidereal motion in longitude).
	a1 := vecmat.DegreesToRadians * (119.75 + 131.849*t)
	da1 := vecmat.DegreesToRadians * 131.849
	a2 := vecmat.DegreesToRadians * (53.09 + 479264.290*t)
	da2 := vecmat.DegreesToRadians * 479264.290
	a3 := vecmat.DegreesToRadians * (313.45 + 481266.484*t)
	da3 := vecmat.DegreesToRadians * 481266.484

	// Eccentricity factor and its square.
	e := 1.0 + (e1+e2*t)*t
	de := e1 + 2.0*e2*t
	esq := e * e
	desq := 2.0 * e * de

	// Additive terms (degrees) start the summations.
	elpmf := elp - f
	delpmf := delp - df
	vel := 0.003958*math.Sin(a1) + 0.001962*math.Sin(elpmf) + 0.000318*math.Sin(a2)
	vdel := 0.003958*math.Cos(a1)*da1 + 0.001962*math.Cos(elpmf)*delpmf + 0.000318*math.Cos(a2)*da2
	vr, vdr := 0.0, 0.0

	a1mf, da1mf := a1-f, da1-df
	a1pf, da1pf := a1+f, da1+df
	dlpmp, slpmp := elp-emp, elp+emp
	vb := -0.002235*math.Sin(elp) + 0.000382*math.Sin(a3) +
		0.000175*math.Sin(a1mf) + 0.000175*math.Sin(a1pf) +
		0.000127*math.Sin(dlpmp) - 0.000115*math.Sin(slpmp)
	vdb := -0.002235*math.Cos(elp)*delp + 0.000382*math.Cos(a3)*da3 +
		0.000175*math.Cos(a1mf)*da1mf + 0.000175*math.Cos(a1pf)*da1pf +
		0.000127*math.Cos(dlpmp)*(delp-demp) - 0.000115*math.Cos(slpmp)*(delp+demp)

	factor := func(nem int) (en, den float64) {
		switch nem {
		case 1, -1:
			return e, de
		case 2, -2:
			return esq, desq
		}
		return 1.0, 0.0
	}
	argument := func(x *lunarTerm) (arg, darg float64) {
		arg = float64(x.nd)*d + float64(x.nem)*em + float64(x.nemp)*emp + float64(x.nf)*f
		darg = float64(x.nd)*dd + float64(x.nem)*dem + float64(x.nemp)*demp + float64(x.nf)*df
		return arg, darg
	}

	// Longitude and distance, smallest terms first.
	for i := len(lunarLR) - 1; i >= 0; i-- {
		x := &lunarLR[i]
		en, den := factor(x.nem)
		arg, darg := argument(x)
		s, c := math.Sincos(arg)
		vel += x.coefl * s * en
		vdel += x.coefl * (c*darg*en + s*den)
		vr += x.coefr * c * en
		vdr += x.coefr * (-s*darg*en + c*den)
	}
	el := elp + vecmat.DegreesToRadians*vel
	del := (delp + vecmat.DegreesToRadians*vdel) / timescale.DaysPerJulianCentury
	r := (vr + r0) / AstronomicalUnit
	dr := vdr / AstronomicalUnit / timescale.DaysPerJulianCentury

	// Latitude.
	for i := len(lunarB) - 1; i >= 0; i-- {
		x := &lunarB[i]
		en, den := factor(x.nem)
		arg, darg := argument(x)
		s, c := math.Sincos(arg)
		vb += x.coefl * s * en
		vdb += x.coefl * (c*darg*en + s*den)
	}
	b := vb * vecmat.DegreesToRadians
	db := vdb * vecmat.DegreesToRadians / timescale.DaysPerJulianCentury

	pv := vecmat.S2PV(el, b, r, del, db, dr)

	// Mean ecliptic and equinox of date to GCRS.
	fw := orientation.FukushimaWilliams06(date1, date2)
	rm := vecmat.Identity()
	rm = vecmat.RotateZ(fw.Psib, rm)
	rm = vecmat.RotateX(-fw.Phib, rm)
	rm = vecmat.RotateZ(-fw.Gamb, rm)

	return vecmat.MulMPV(rm, pv)
}
