package ephemeris

import (
	"math"

	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

const (
	// Gaussian gravitational constant.
	gaussK = 0.017202098950

	// Sine and cosine of the J2000.0 mean obliquity (IAU 1976).
	sinEps = 0.3977771559319137
	cosEps = 0.9174820620691818

	// Maximum number of iterations allowed to solve Kepler's equation.
	keplerMaxIter = 10
)

// Mean elements and perturbations of Simon et al. (1994), one row per body
// from Mercury to Neptune.
var (
	// Inverse planetary masses (Sun = 1).
	inverseMasses = [8]float64{6023600.0, 408523.5, 328900.5, 3098710.0, 1047.355, 3498.5, 22869.0, 19314.0}

	// Semi-major axis (au), with rates per millennium.
	semiMajorAxis = [8][3]float64{
		{0.3870983098, 0.0, 0.0},
		{0.7233298200, 0.0, 0.0},
		{1.0000010178, 0.0, 0.0},
		{1.5236793419, 3e-10, 0.0},
		{5.2026032092, 19132e-10, -39e-10},
		{9.5549091915, -0.0000213896, 444e-10},
		{19.2184460618, -3716e-10, 979e-10},
		{30.1103868694, -16635e-10, 686e-10},
	}

	// Mean longitude (degrees and arcseconds).
	meanLongitude = [8][3]float64{
		{252.25090552, 5381016286.88982, -1.92789},
		{181.97980085, 2106641364.33548, 0.59381},
		{100.46645683, 1295977422.83429, -2.04411},
		{355.43299958, 689050774.93988, 0.94264},
		{34.35151874, 109256603.77991, -30.60378},
		{50.07744430, 43996098.55732, 75.61614},
		{314.05500511, 15424811.93933, -1.75083},
		{304.34866548, 7865503.20744, 0.21103},
	}

	eccentricity = [8][3]float64{
		{0.2056317526, 0.0002040653, -28349e-10},
		{0.0067719164, -0.0004776521, 98127e-10},
		{0.0167086342, -0.0004203654, -0.0000126734},
		{0.0934006477, 0.0009048438, -80641e-10},
		{0.0484979255, 0.0016322542, -0.0000471366},
		{0.0555481426, -0.0034664062, -0.0000643639},
		{0.0463812221, -0.0002729293, 0.0000078913},
		{0.0094557470, 0.0000603263, 0.0},
	}

	// Longitude of the perihelion (degrees and arcseconds).
	perihelion = [8][3]float64{
		{77.45611904, 5719.11590, -4.83016},
		{131.56370300, 175.48640, -498.48184},
		{102.93734808, 11612.35290, 53.27577},
		{336.06023395, 15980.45908, -62.32800},
		{14.33120687, 7758.75163, 259.95938},
		{93.05723748, 20395.49439, 190.25952},
		{173.00529106, 3215.56238, -34.09288},
		{48.12027554, 1050.71912, 27.39717},
	}

	// Inclination (degrees and arcseconds).
	inclination = [8][3]float64{
		{7.00498625, -214.25629, 0.28977},
		{3.39466189, -30.84437, -11.67836},
		{0.0, 469.97289, -3.35053},
		{1.84972648, -293.31722, -8.11830},
		{1.30326698, -71.55890, 11.95297},
		{2.48887878, 91.85195, -17.66225},
		{0.77319689, -60.72723, 1.25759},
		{1.76995259, 8.12333, 0.08135},
	}

	// Longitude of the ascending node (degrees and arcseconds).
	node = [8][3]float64{
		{48.33089304, -4515.21727, -31.79892},
		{76.67992019, -10008.48154, -51.32614},
		{174.87317577, -8679.27034, 15.34191},
		{49.55809321, -10620.90088, -230.57416},
		{100.46440702, 6362.03561, 326.52178},
		{113.66550252, -9240.19942, -66.23743},
		{74.00595701, 2669.15033, 145.93964},
		{131.78405702, -221.94322, -0.78728},
	}

	// Trigonometric terms added to the semi-major axes.
	axisMult = [8][9]float64{
		{69613, 75645, 88306, 59899, 15746, 71087, 142173, 3086, 0},
		{21863, 32794, 26934, 10931, 26250, 43725, 53867, 28939, 0},
		{16002, 21863, 32004, 10931, 14529, 16368, 15318, 32794, 0},
		{6345, 7818, 15636, 7077, 8184, 14163, 1107, 4872, 0},
		{1760, 1454, 1167, 880, 287, 2640, 19, 2047, 1454},
		{574, 0, 880, 287, 19, 1760, 1167, 306, 574},
		{204, 0, 177, 1265, 4, 385, 200, 208, 204},
		{0, 102, 106, 4, 98, 1367, 487, 204, 0},
	}
	axisCos = [8][9]float64{
		{4, -13, 11, -9, -9, -3, -1, 4, 0},
		{-156, 59, -42, 6, 19, -20, -10, -12, 0},
		{64, -152, 62, -8, 32, -41, 19, -11, 0},
		{124, 621, -145, 208, 54, -57, 30, 15, 0},
		{-23437, -2634, 6601, 6259, -1507, -1821, 2620, -2115, -1489},
		{62911, -119919, 79336, 17814, -24241, 12068, 8306, -4893, 8902},
		{389061, -262125, -44088, 8387, -22976, -2093, -615, -9720, 6633},
		{-412235, -157046, -31430, 37817, -9740, -13, -7449, 9644, 0},
	}
	axisSin = [8][9]float64{
		{-29, -1, 9, 6, -6, 5, 4, 0, 0},
		{-48, -125, -26, -37, 18, -13, -20, -2, 0},
		{-150, -46, 68, 54, 14, 24, -28, 22, 0},
		{-621, 532, -694, -20, 192, -94, 71, -73, 0},
		{-14614, -19828, -5869, 1881, -4372, -2255, 782, 930, 913},
		{139737, 0, 24667, 51123, -5102, 7429, -4095, -1976, -9566},
		{-138081, 0, 37205, -49039, -41901, -33872, -27037, -12474, 18797},
		{0, 28492, 133236, 69654, 52322, -49577, -26430, -3593, 0},
	}

	// Trigonometric terms added to the mean longitudes.
	longMult = [8][10]float64{
		{3086, 15746, 69613, 59899, 75645, 88306, 12661, 2658, 0, 0},
		{21863, 32794, 10931, 73, 4387, 26934, 1473, 2157, 0, 0},
		{10, 16002, 21863, 10931, 1473, 32004, 4387, 73, 0, 0},
		{10, 6345, 7818, 1107, 15636, 7077, 8184, 532, 10, 0},
		{19, 1760, 1454, 287, 1167, 880, 574, 2640, 19, 1454},
		{19, 574, 287, 306, 1760, 12, 31, 38, 19, 574},
		{4, 204, 177, 8, 31, 200, 1265, 102, 4, 204},
		{4, 102, 106, 8, 98, 1367, 487, 204, 4, 102},
	}
	longCos = [8][10]float64{
		{21, -95, -157, 41, -5, 42, 23, 30, 0, 0},
		{-160, -313, -235, 60, -74, -76, -27, 34, 0, 0},
		{-325, -322, -79, 232, -52, 97, 55, -41, 0, 0},
		{2268, -979, 802, 602, -668, -33, 345, 201, -55, 0},
		{7610, -4997, -7689, -5841, -2617, 1115, -748, -607, 6074, 354},
		{-18549, 30125, 20012, -730, 824, 23, 1289, -352, -14767, -2062},
		{-135245, -14594, 4197, -4030, -5630, -2898, 2540, -306, 2939, 1986},
		{89948, 2103, 8963, 2695, 3682, 1648, 866, -154, -1963, -283},
	}
	longSin = [8][10]float64{
		{-342, 136, -23, 62, 66, -52, -33, 17, 0, 0},
		{524, -149, -35, 117, 151, 122, -71, -62, 0, 0},
		{-105, -137, 258, 35, -116, -88, -112, -80, 0, 0},
		{854, -205, -936, -240, 140, -341, -97, -232, 536, 0},
		{-56980, 8016, 1012, 1448, -3024, -3710, 318, 503, 3767, 577},
		{138606, -13478, -4964, 1441, -1319, -1482, 427, 1236, -9167, -1918},
		{71234, -41116, 5334, -4935, -1848, 66, 434, -1748, 3780, -701},
		{-47645, 11647, 2166, 3194, 679, 0, -244, -419, -2531, 48},
	}
)

// Planet returns the heliocentric position and velocity of a major planet,
// J2000.0 mean equator and equinox, from the mean elements and periodic
// terms of Simon et al. (1994). date1+date2 is the TDB Julian Date.
//
// The status is -1 for an unknown body (the result is zero), +1 for a date
// outside 1000-3000 AD and +2 if Kepler's equation did not converge.
// Positions are good to a few arcseconds over 1800-2050 for the inner
// planets and tens of arcseconds for the outer ones.
func Planet(date1, date2 float64, body Body) (vecmat.PV, status.Code) {
	if !body.Valid() {
		return vecmat.PV{}, status.Invalid
	}
	n := int(body) - 1

	// Time since J2000.0 in Julian millennia.
	t := ((date1 - timescale.J2000) + date2) / timescale.DaysPerJulianMillennium

	code := status.OK
	if math.Abs(t) > 1.0 {
		code = status.Dubious
	}

	// Mean elements.
	da := semiMajorAxis[n][0] + (semiMajorAxis[n][1]+semiMajorAxis[n][2]*t)*t
	dl := (3600.0*meanLongitude[n][0] + (meanLongitude[n][1]+meanLongitude[n][2]*t)*t) * vecmat.ArcsecondsToRadians
	de := eccentricity[n][0] + (eccentricity[n][1]+eccentricity[n][2]*t)*t
	dp := vecmat.NormalizeAngleSigned((3600.0*perihelion[n][0] + (perihelion[n][1]+perihelion[n][2]*t)*t) * vecmat.ArcsecondsToRadians)
	di := (3600.0*inclination[n][0] + (inclination[n][1]+inclination[n][2]*t)*t) * vecmat.ArcsecondsToRadians
	dom := vecmat.NormalizeAngleSigned((3600.0*node[n][0] + (node[n][1]+node[n][2]*t)*t) * vecmat.ArcsecondsToRadians)

	// Periodic terms.
	dmu := 0.35953620 * t
	for k := 0; k < 8; k++ {
		arga := axisMult[n][k] * dmu
		argl := longMult[n][k] * dmu
		da += (axisCos[n][k]*math.Cos(arga) + axisSin[n][k]*math.Sin(arga)) * 1e-7
		dl += (longCos[n][k]*math.Cos(argl) + longSin[n][k]*math.Sin(argl)) * 1e-7
	}
	arga := axisMult[n][8] * dmu
	da += t * (axisCos[n][8]*math.Cos(arga) + axisSin[n][8]*math.Sin(arga)) * 1e-7
	for k := 8; k < 10; k++ {
		argl := longMult[n][k] * dmu
		dl += t * (longCos[n][k]*math.Cos(argl) + longSin[n][k]*math.Sin(argl)) * 1e-7
	}
	dl = math.Mod(dl, vecmat.TwoPi)

	// Eccentric anomaly.
	am := dl - dp
	ae := am + de*math.Sin(am)
	dae := 1.0
	for k := 0; k < keplerMaxIter && math.Abs(dae) > 1e-12; {
		dae = (am - ae + de*math.Sin(ae)) / (1.0 - de*math.Cos(ae))
		ae += dae
		k++
		if k == keplerMaxIter-1 {
			code = 2
		}
	}

	// True anomaly.
	ae2 := ae / 2.0
	at := 2.0 * math.Atan2(math.Sqrt((1.0+de)/(1.0-de))*math.Sin(ae2), math.Cos(ae2))

	// Distance (au) and speed (radians per day).
	r := da * (1.0 - de*math.Cos(ae))
	v := gaussK * math.Sqrt((1.0+1.0/inverseMasses[n])/(da*da*da))

	si2 := math.Sin(di / 2.0)
	xq := si2 * math.Cos(dom)
	xp := si2 * math.Sin(dom)
	tl := at + dp
	xsw, xcw := math.Sincos(tl)
	xm2 := 2.0 * (xp*xcw - xq*xsw)
	xf := da / math.Sqrt(1.0-de*de)
	ci2 := math.Cos(di / 2.0)
	xms := (de*math.Sin(dp) + xsw) * xf
	xmc := (de*math.Cos(dp) + xcw) * xf
	xpxq2 := 2.0 * xp * xq

	var pv vecmat.PV

	// Ecliptic position, rotated to the equator.
	x := r * (xcw - xm2*xp)
	y := r * (xsw + xm2*xq)
	z := r * (-xm2 * ci2)
	pv[0] = vecmat.Vector3{x, y*cosEps - z*sinEps, y*sinEps + z*cosEps}

	// Ecliptic velocity, rotated to the equator.
	x = v * ((-1.0+2.0*xp*xp)*xms + xpxq2*xmc)
	y = v * ((1.0-2.0*xq*xq)*xmc - xpxq2*xms)
	z = v * (2.0 * ci2 * (xp*xms + xq*xmc))
	pv[1] = vecmat.Vector3{x, y*cosEps - z*sinEps, y*sinEps + z*cosEps}

	return pv, code
}

// Mass returns the mass of a body in solar masses, or zero for an unknown
// body. The EMB mass includes the Moon.
func Mass(body Body) float64 {
	if !body.Valid() {
		return 0
	}
	return 1.0 / inverseMasses[body-1]
}
