package orientation

import (
	"math"

	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// BiasPrecession holds the frame bias, precession and combined matrices.
type BiasPrecession struct {
	RB  vecmat.Matrix3 // frame bias, GCRS to mean J2000.0
	RP  vecmat.Matrix3 // precession, mean J2000.0 to mean of date
	RBP vecmat.Matrix3 // bias-precession, GCRS to mean of date
}

// FWAngles are the Fukushima-Williams precession angles.
type FWAngles struct {
	Gamb float64 // F-W angle gamma_bar
	Phib float64 // F-W angle phi_bar
	Psib float64 // F-W angle psi_bar
	Epsa float64 // mean obliquity of date
}

// IAU2006Angles are the IAU 2006 precession angles in their various
// parameterizations. All are radians.
type IAU2006Angles struct {
	Eps0   float64 // obliquity of the ecliptic at J2000.0
	PsiA   float64 // luni-solar precession
	OmA    float64 // inclination of equator wrt J2000.0 ecliptic
	BPA    float64 // ecliptic pole x, J2000.0 ecliptic triad
	BQA    float64 // ecliptic pole -y, J2000.0 ecliptic triad
	PiA    float64 // angle between moving and J2000.0 ecliptics
	BPiA   float64 // longitude of ascending node of the ecliptic
	EpsA   float64 // obliquity of the ecliptic
	ChiA   float64 // planetary precession
	ZA     float64 // equatorial precession: -3rd 323 Euler angle
	ZetaA  float64 // equatorial precession: -1st 323 Euler angle
	ThetaA float64 // equatorial precession: 2nd 323 Euler angle
	PA     float64 // general precession
	Gam    float64 // Fukushima-Williams angle gamma_J2000
	Phi    float64 // Fukushima-Williams angle phi_J2000
	Psi    float64 // Fukushima-Williams angle psi_J2000
}

// J2000.0 obliquity (Lieske et al. 1977).
const eps0IAU1976 = 84381.448 * das2r

// FrameBias00 returns the frame bias components of the IAU 2000
// precession-nutation model: longitude and obliquity corrections and the
// ICRS right ascension of the J2000.0 mean equinox.
func FrameBias00() (dpsibi, depsbi, dra float64) {
	return -0.041775 * das2r, -0.0068192 * das2r, -0.0146 * das2r
}

// PrecessionRate00 returns the IAU 2000 corrections to the IAU 1976
// precession rates, in longitude and obliquity.
func PrecessionRate00(date1, date2 float64) (dpsipr, depspr float64) {
	const (
		precor = -0.29965 * das2r
		oblcor = -0.02524 * das2r
	)
	t := centuries(date1, date2)
	return precor * t, oblcor * t
}

// BiasPrecession00 returns the frame bias and precession matrices of the
// IAU 2000 model (IAU 1976 precession with the IAU 2000 rate corrections).
func BiasPrecession00(date1, date2 float64) BiasPrecession {
	t := centuries(date1, date2)

	dpsibi, depsbi, dra0 := FrameBias00()

	// Precession angles (Lieske et al. 1977) without corrections.
	psia77 := (5038.7784 + (-1.07259+(-0.001147)*t)*t) * t * das2r
	oma77 := eps0IAU1976 + ((0.05127+(-0.007726)*t)*t)*t*das2r
	chia := (10.5526 + (-2.38064+(-0.001125)*t)*t) * t * das2r

	dpsipr, depspr := PrecessionRate00(date1, date2)
	psia := psia77 + dpsipr
	oma := oma77 + depspr

	rb := vecmat.Identity()
	rb = vecmat.RotateZ(dra0, rb)
	rb = vecmat.RotateY(dpsibi*math.Sin(eps0IAU1976), rb)
	rb = vecmat.RotateX(-depsbi, rb)

	rp := vecmat.Identity()
	rp = vecmat.RotateX(eps0IAU1976, rp)
	rp = vecmat.RotateZ(-psia, rp)
	rp = vecmat.RotateX(-oma, rp)
	rp = vecmat.RotateZ(chia, rp)

	return BiasPrecession{RB: rb, RP: rp, RBP: vecmat.MulMM(rp, rb)}
}

// BiasPrecession06 returns the frame bias and precession matrices of the
// IAU 2006 model.
func BiasPrecession06(date1, date2 float64) BiasPrecession {
	fw := FukushimaWilliams06(timescale.MJDZero, mjdJ2000)
	rb := FWToMatrix(fw.Gamb, fw.Phib, fw.Psib, fw.Epsa)
	rbp := BiasPrecessionMatrix06(date1, date2)
	return BiasPrecession{RB: rb, RP: vecmat.MulMM(rbp, vecmat.Transpose(rb)), RBP: rbp}
}

// MJD of J2000.0.
const mjdJ2000 = 51544.5

// PrecessionAngles76 returns the IAU 1976 equatorial precession angles
// zeta, z and theta for precession from epoch date01+date02 to epoch
// date11+date12 (both TDB).
func PrecessionAngles76(date01, date02, date11, date12 float64) (zeta, z, theta float64) {
	t0 := centuries(date01, date02)
	t := ((date11 - date01) + (date12 - date02)) / timescale.DaysPerJulianCentury
	tas2r := t * das2r
	w := 2306.2181 + (1.39656-0.000139*t0)*t0

	zeta = (w + ((0.30188 - 0.000344*t0) + 0.017998*t) * t) * tas2r
	z = (w + ((1.09468 + 0.000066*t0) + 0.018203*t) * t) * tas2r
	theta = ((2004.3109 + (-0.85330-0.000217*t0)*t0) +
		((-0.42665-0.000217*t0)-0.041833*t)*t) * tas2r
	return zeta, z, theta
}

// PrecessionMatrix76 returns the IAU 1976 precession matrix from J2000.0 to
// the given date.
func PrecessionMatrix76(date1, date2 float64) vecmat.Matrix3 {
	zeta, z, theta := PrecessionAngles76(timescale.J2000, 0, date1, date2)
	r := vecmat.Identity()
	r = vecmat.RotateZ(-zeta, r)
	r = vecmat.RotateY(theta, r)
	return vecmat.RotateZ(-z, r)
}

// BiasPrecessionMatrix00 returns the IAU 2000 bias-precession matrix.
func BiasPrecessionMatrix00(date1, date2 float64) vecmat.Matrix3 {
	return BiasPrecession00(date1, date2).RBP
}

// BiasPrecessionMatrix06 returns the IAU 2006 bias-precession matrix.
func BiasPrecessionMatrix06(date1, date2 float64) vecmat.Matrix3 {
	fw := FukushimaWilliams06(date1, date2)
	return FWToMatrix(fw.Gamb, fw.Phib, fw.Psib, fw.Epsa)
}

// MeanObliquity80 returns the IAU 1980 mean obliquity of the ecliptic.
func MeanObliquity80(date1, date2 float64) float64 {
	t := centuries(date1, date2)
	return das2r * (84381.448 +
		(-46.8150+
			(-0.00059+
				0.001813*t)*t)*t)
}

// MeanObliquity06 returns the IAU 2006 mean obliquity of the ecliptic.
func MeanObliquity06(date1, date2 float64) float64 {
	t := centuries(date1, date2)
	return (84381.406 +
		(-46.836769+
			(-0.0001831+
				(0.00200340+
					(-0.000000576+
						(-0.0000000434)*t)*t)*t)*t)*t) * das2r
}

// PrecessionAngles06 returns the IAU 2006 precession angles (Capitaine et
// al. 2003, Hilton et al. 2006).
func PrecessionAngles06(date1, date2 float64) IAU2006Angles {
	t := centuries(date1, date2)
	var a IAU2006Angles

	a.Eps0 = 84381.406 * das2r

	a.PsiA = (5038.481507 +
		(-1.0790069+
			(-0.00114045+
				(0.000132851+
					(-0.0000000951)*t)*t)*t)*t) * t * das2r

	a.OmA = a.Eps0 + ((-0.025754+
		(0.0512623+
			(-0.00772503+
				(-0.000000467+
					(0.0000003337)*t)*t)*t)*t)*t)*das2r

	a.BPA = (4.199094 +
		(0.1939873+
			(-0.00022466+
				(-0.000000912+
					(0.0000000120)*t)*t)*t)*t) * t * das2r

	a.BQA = (-46.811015 +
		(0.0510283+
			(0.00052413+
				(-0.000000646+
					(-0.0000000172)*t)*t)*t)*t) * t * das2r

	a.PiA = (46.998973 +
		(-0.0334926+
			(-0.00012559+
				(0.000000113+
					(-0.0000000022)*t)*t)*t)*t) * t * das2r

	a.BPiA = (629546.7936 +
		(-867.95758+
			(0.157992+
				(-0.0005371+
					(-0.00004797+
						(0.000000072)*t)*t)*t)*t)*t) * das2r

	a.EpsA = MeanObliquity06(date1, date2)

	a.ChiA = (10.556403 +
		(-2.3814292+
			(-0.00121197+
				(0.000170663+
					(-0.0000000560)*t)*t)*t)*t) * t * das2r

	a.ZA = (-2.650545 +
		(2306.077181+
			(1.0927348+
				(0.01826837+
					(-0.000028596+
						(-0.0000002904)*t)*t)*t)*t)*t) * das2r

	a.ZetaA = (2.650545 +
		(2306.083227+
			(0.2988499+
				(0.01801828+
					(-0.000005971+
						(-0.0000003173)*t)*t)*t)*t)*t) * das2r

	a.ThetaA = (2004.191903 +
		(-0.4294934+
			(-0.04182264+
				(-0.000007089+
					(-0.0000001274)*t)*t)*t)*t) * t * das2r

	a.PA = (5028.796195 +
		(1.1054348+
			(0.00007964+
				(-0.000023857+
					(-0.0000000383)*t)*t)*t)*t) * t * das2r

	a.Gam = (10.556403 +
		(0.4932044+
			(-0.00031238+
				(-0.000002788+
					(0.0000000260)*t)*t)*t)*t) * t * das2r

	a.Phi = a.Eps0 + ((-46.811015+
		(0.0511269+
			(0.00053289+
				(-0.000000440+
					(-0.0000000176)*t)*t)*t)*t)*t)*das2r

	a.Psi = (5038.481507 +
		(1.5584176+
			(-0.00018522+
				(-0.000026452+
					(-0.0000000148)*t)*t)*t)*t) * t * das2r

	return a
}

// FukushimaWilliams06 returns the IAU 2006 precession angles in the
// Fukushima-Williams four-rotation form, including frame bias.
func FukushimaWilliams06(date1, date2 float64) FWAngles {
	t := centuries(date1, date2)

	gamb := (-0.052928 +
		(10.556378+
			(0.4932044+
				(-0.00031238+
					(-0.000002788+
						(0.0000000260)*t)*t)*t)*t)*t) * das2r
	phib := (84381.412819 +
		(-46.811016+
			(0.0511268+
				(0.00053289+
					(-0.000000440+
						(-0.0000000176)*t)*t)*t)*t)*t) * das2r
	psib := (-0.041775 +
		(5038.481484+
			(1.5584175+
				(-0.00018522+
					(-0.000026452+
						(-0.0000000148)*t)*t)*t)*t)*t) * das2r

	return FWAngles{Gamb: gamb, Phib: phib, Psib: psib, Epsa: MeanObliquity06(date1, date2)}
}

// FWToMatrix forms a rotation matrix from Fukushima-Williams angles. With
// nutation added to psi and eps the result is the full BPN matrix.
func FWToMatrix(gamb, phib, psi, eps float64) vecmat.Matrix3 {
	r := vecmat.Identity()
	r = vecmat.RotateZ(gamb, r)
	r = vecmat.RotateX(phib, r)
	r = vecmat.RotateZ(-psi, r)
	return vecmat.RotateX(-eps, r)
}

// FWToXY returns the CIP X,Y coordinates from Fukushima-Williams angles.
func FWToXY(gamb, phib, psi, eps float64) (x, y float64) {
	return CIPXY(FWToMatrix(gamb, phib, psi, eps))
}

// CIPXY extracts the CIP X,Y coordinates from a bias-precession-nutation
// matrix.
func CIPXY(rbpn vecmat.Matrix3) (x, y float64) {
	return rbpn[2][0], rbpn[2][1]
}
