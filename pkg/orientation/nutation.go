package orientation

import (
	"math"

	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

type nut80Term struct {
	nl, nlp, nf, nd, nom int
	sp, spt              float64 // longitude sine coefficient and rate
	ce, cet              float64 // obliquity cosine coefficient and rate
}

type luniSolarTerm struct {
	nl, nlp, nf, nd, nom int
	sp, spt, cp          float64 // longitude: sin, t*sin, cos
	ce, cet, se          float64 // obliquity: cos, t*cos, sin
}

// PrecessionNutation is the full set of IAU 2000/2006 precession-nutation
// results for one date.
type PrecessionNutation struct {
	DPsi float64        // nutation in longitude
	DEps float64        // nutation in obliquity
	EpsA float64        // mean obliquity
	RB   vecmat.Matrix3 // frame bias
	RP   vecmat.Matrix3 // precession
	RBP  vecmat.Matrix3 // bias-precession
	RN   vecmat.Matrix3 // nutation
	RBPN vecmat.Matrix3 // GCRS to true equator and equinox of date
}

const (
	// 0.1 microarcsecond to radians.
	u2r = das2r / 1e7

	// Mean planetary contribution used when the planetary series is not
	// evaluated (McCarthy & Luzum 2003).
	dpPlan = -0.135 * das2r / 1e3
	dePlan = 0.388 * das2r / 1e3
)

// Nutation80 returns the IAU 1980 nutation in longitude and obliquity.
func Nutation80(date1, date2 float64) (dpsi, deps float64) {
	const u = das2r / 1e4

	t := centuries(date1, date2)

	// Fundamental arguments (IAU 1980).
	el := vecmat.NormalizeAngleSigned(
		(485866.733+(715922.633+(31.310+0.064*t)*t)*t)*das2r +
			math.Mod(1325.0*t, 1.0)*twoPi)
	elp := vecmat.NormalizeAngleSigned(
		(1287099.804+(1292581.224+(-0.577-0.012*t)*t)*t)*das2r +
			math.Mod(99.0*t, 1.0)*twoPi)
	f := vecmat.NormalizeAngleSigned(
		(335778.877+(295263.137+(-13.257+0.011*t)*t)*t)*das2r +
			math.Mod(1342.0*t, 1.0)*twoPi)
	d := vecmat.NormalizeAngleSigned(
		(1072261.307+(1105601.328+(-6.891+0.019*t)*t)*t)*das2r +
			math.Mod(1236.0*t, 1.0)*twoPi)
	om := vecmat.NormalizeAngleSigned(
		(450160.280+(-482890.539+(7.455+0.008*t)*t)*t)*das2r +
			math.Mod(-5.0*t, 1.0)*twoPi)

	// Smallest terms first.
	dp, de := 0.0, 0.0
	for j := len(nut80Terms) - 1; j >= 0; j-- {
		x := &nut80Terms[j]
		arg := float64(x.nl)*el + float64(x.nlp)*elp + float64(x.nf)*f +
			float64(x.nd)*d + float64(x.nom)*om
		if s := x.sp + x.spt*t; s != 0 {
			dp += s * math.Sin(arg)
		}
		if c := x.ce + x.cet*t; c != 0 {
			de += c * math.Cos(arg)
		}
	}
	return dp * u, de * u
}

// sumLuniSolar evaluates the luni-solar series for the given Delaunay
// arguments, returning units of 0.1 uas.
func sumLuniSolar(t, el, elp, f, d, om float64) (dp, de float64) {
	for i := len(luniSolarTerms) - 1; i >= 0; i-- {
		x := &luniSolarTerms[i]
		arg := math.Mod(float64(x.nl)*el+float64(x.nlp)*elp+float64(x.nf)*f+
			float64(x.nd)*d+float64(x.nom)*om, twoPi)
		sarg, carg := math.Sincos(arg)
		dp += (x.sp+x.spt*t)*sarg + x.cp*carg
		de += (x.ce+x.cet*t)*carg + x.se*sarg
	}
	return dp, de
}

// Nutation00A returns the IAU 2000A nutation in longitude and obliquity,
// with the full IERS 2003 polynomial fundamental arguments.
//
// TODO: add the remaining 601 luni-solar and 687 planetary terms of the
// MHB2000 series. Until then the luni-solar part carries the 77 leading
// terms and the planetary part is the mean offset, which agrees with the
// complete series to about 0.5 mas.
func Nutation00A(date1, date2 float64) (dpsi, deps float64) {
	t := centuries(date1, date2)

	el := MeanAnomalyMoon(t)
	elp := math.Mod(1287104.79305+
		t*(129596581.0481+
			t*(-0.5532+
				t*(0.000136+
					t*(-0.00001149)))), turnas) * das2r
	f := MeanArgLatitudeMoon(t)
	d := math.Mod(1072260.70369+
		t*(1602961601.2090+
			t*(-6.3706+
				t*(0.006593+
					t*(-0.00003169)))), turnas) * das2r
	om := MeanLongitudeNodeMoon(t)

	dp, de := sumLuniSolar(t, el, elp, f, d, om)
	return dp*u2r + dpPlan, de*u2r + dePlan
}

// Nutation00B returns the IAU 2000B nutation: the 77 leading luni-solar
// terms with linear arguments and a fixed planetary offset. It agrees with
// IAU 2000A to about 1 mas between 1995 and 2050.
func Nutation00B(date1, date2 float64) (dpsi, deps float64) {
	t := centuries(date1, date2)

	el := math.Mod(485868.249036+1717915923.2178*t, turnas) * das2r
	elp := math.Mod(1287104.79305+129596581.0481*t, turnas) * das2r
	f := math.Mod(335779.526232+1739527262.8478*t, turnas) * das2r
	d := math.Mod(1072260.70369+1602961601.2090*t, turnas) * das2r
	om := math.Mod(450160.398036-6962890.5431*t, turnas) * das2r

	dp, de := sumLuniSolar(t, el, elp, f, d, om)
	return dp*u2r + dpPlan, de*u2r + dePlan
}

// Nutation06A returns the IAU 2000A nutation with the IAU 2006 adjustments
// for the secular change in J2 and the new obliquity.
func Nutation06A(date1, date2 float64) (dpsi, deps float64) {
	t := centuries(date1, date2)
	fj2 := -2.7774e-6 * t

	dp, de := Nutation00A(date1, date2)
	return dp + dp*(0.4697e-6+fj2), de + de*fj2
}

// NutationMatrix forms the nutation matrix from the mean obliquity and the
// nutation components.
func NutationMatrix(epsa, dpsi, deps float64) vecmat.Matrix3 {
	r := vecmat.Identity()
	r = vecmat.RotateX(epsa, r)
	r = vecmat.RotateZ(-dpsi, r)
	return vecmat.RotateX(-(epsa + deps), r)
}

// NutationMatrix80 returns the IAU 1980 nutation matrix.
func NutationMatrix80(date1, date2 float64) vecmat.Matrix3 {
	dpsi, deps := Nutation80(date1, date2)
	return NutationMatrix(MeanObliquity80(date1, date2), dpsi, deps)
}

// NutationMatrix00A returns the IAU 2000A nutation matrix.
func NutationMatrix00A(date1, date2 float64) vecmat.Matrix3 {
	return PrecessionNutation00A(date1, date2).RN
}

// NutationMatrix00B returns the IAU 2000B nutation matrix.
func NutationMatrix00B(date1, date2 float64) vecmat.Matrix3 {
	return PrecessionNutation00B(date1, date2).RN
}

// NutationMatrix06A returns the IAU 2006/2000A nutation matrix.
func NutationMatrix06A(date1, date2 float64) vecmat.Matrix3 {
	dpsi, deps := Nutation06A(date1, date2)
	return NutationMatrix(MeanObliquity06(date1, date2), dpsi, deps)
}

// PrecessionNutation00 combines IAU 2000 precession with the given
// nutation components.
func PrecessionNutation00(date1, date2, dpsi, deps float64) PrecessionNutation {
	_, depspr := PrecessionRate00(date1, date2)
	epsa := MeanObliquity80(date1, date2) + depspr

	bp := BiasPrecession00(date1, date2)
	rn := NutationMatrix(epsa, dpsi, deps)

	return PrecessionNutation{
		DPsi: dpsi,
		DEps: deps,
		EpsA: epsa,
		RB:   bp.RB,
		RP:   bp.RP,
		RBP:  bp.RBP,
		RN:   rn,
		RBPN: vecmat.MulMM(rn, bp.RBP),
	}
}

// PrecessionNutation06 combines IAU 2006 precession with the given
// nutation components.
func PrecessionNutation06(date1, date2, dpsi, deps float64) PrecessionNutation {
	// Bias-precession Fukushima-Williams angles of J2000.0 (frame bias).
	fw := FukushimaWilliams06(timescale.MJDZero, mjdJ2000)
	rb := FWToMatrix(fw.Gamb, fw.Phib, fw.Psib, fw.Epsa)

	// Bias-precession of date.
	fw = FukushimaWilliams06(date1, date2)
	rbp := FWToMatrix(fw.Gamb, fw.Phib, fw.Psib, fw.Epsa)
	rp := vecmat.MulMM(rbp, vecmat.Transpose(rb))

	rbpn := FWToMatrix(fw.Gamb, fw.Phib, fw.Psib+dpsi, fw.Epsa+deps)
	rn := vecmat.MulMM(rbpn, vecmat.Transpose(rbp))

	return PrecessionNutation{
		DPsi: dpsi,
		DEps: deps,
		EpsA: fw.Epsa,
		RB:   rb,
		RP:   rp,
		RBP:  rbp,
		RN:   rn,
		RBPN: rbpn,
	}
}

// PrecessionNutation00A is PrecessionNutation00 with IAU 2000A nutation.
func PrecessionNutation00A(date1, date2 float64) PrecessionNutation {
	dpsi, deps := Nutation00A(date1, date2)
	return PrecessionNutation00(date1, date2, dpsi, deps)
}

// PrecessionNutation00B is PrecessionNutation00 with IAU 2000B nutation.
func PrecessionNutation00B(date1, date2 float64) PrecessionNutation {
	dpsi, deps := Nutation00B(date1, date2)
	return PrecessionNutation00(date1, date2, dpsi, deps)
}

// PrecessionNutation06A is PrecessionNutation06 with IAU 2006/2000A
// nutation.
func PrecessionNutation06A(date1, date2 float64) PrecessionNutation {
	dpsi, deps := Nutation06A(date1, date2)
	return PrecessionNutation06(date1, date2, dpsi, deps)
}

// BPNMatrix80 returns the IAU 1976/1980 precession-nutation matrix.
func BPNMatrix80(date1, date2 float64) vecmat.Matrix3 {
	return vecmat.MulMM(NutationMatrix80(date1, date2), PrecessionMatrix76(date1, date2))
}

// BPNMatrix00A returns the IAU 2000A bias-precession-nutation matrix.
func BPNMatrix00A(date1, date2 float64) vecmat.Matrix3 {
	return PrecessionNutation00A(date1, date2).RBPN
}

// BPNMatrix00B returns the IAU 2000B bias-precession-nutation matrix.
func BPNMatrix00B(date1, date2 float64) vecmat.Matrix3 {
	return PrecessionNutation00B(date1, date2).RBPN
}

// BPNMatrix06A returns the IAU 2006/2000A bias-precession-nutation matrix.
func BPNMatrix06A(date1, date2 float64) vecmat.Matrix3 {
	fw := FukushimaWilliams06(date1, date2)
	dp, de := Nutation06A(date1, date2)
	return FWToMatrix(fw.Gamb, fw.Phib, fw.Psib+dp, fw.Epsa+de)
}
