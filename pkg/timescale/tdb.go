package timescale

import (
	"math"

	"github.com/unklstewy/astrom/pkg/vecmat"
)

// fairheadTerm is one periodic term of the TDB-TT series: amplitude in
// seconds, frequency in radians per Julian millennium and phase in radians.
type fairheadTerm struct {
	amp, freq, phase float64
}

// Index ranges into fairheadTerms for each power of T. The T**1 group
// carries the 52 largest terms of the published 205.
var fairheadPowers = [5][2]int{
	{0, 474},
	{474, 526},
	{526, 611},
	{611, 631},
	{631, 634},
}

// TDBMinusTT returns TDB-TT in seconds for an observer on the Earth, using
// the Fairhead & Bretagnon (1990) series with the topocentric terms of Moyer
// (1981) and Murray (1983).
//
// date1+date2 is the date in TDB (TT may be used with negligible error). ut
// is the UT1 fraction of day, elong the east longitude in radians, u the
// distance from the Earth's spin axis in km and v the distance north of the
// equatorial plane in km. Setting ut, elong, u and v to zero gives the
// geocentric value.
func TDBMinusTT(date1, date2, ut, elong, u, v float64) float64 {
	// Time since J2000.0 in Julian millennia.
	t := ((date1 - J2000) + date2) / DaysPerJulianMillennium

	// Local solar time.
	tsol := math.Mod(ut, 1.0)*vecmat.TwoPi + elong

	// Fundamental arguments (Simon et al. 1994), degrees.
	w := t / 3600.0
	elsun := math.Mod(280.46645683+1296027711.03429*w, 360.0) * vecmat.DegreesToRadians
	emsun := math.Mod(357.52910918+1295965810.481*w, 360.0) * vecmat.DegreesToRadians
	d := math.Mod(297.85019547+16029616012.090*w, 360.0) * vecmat.DegreesToRadians
	elj := math.Mod(34.35151874+109306899.89453*w, 360.0) * vecmat.DegreesToRadians
	els := math.Mod(50.07744430+44046398.47038*w, 360.0) * vecmat.DegreesToRadians

	wt := 0.00029e-10*u*math.Sin(tsol+elsun-els) +
		0.00100e-10*u*math.Sin(tsol-2.0*emsun) +
		0.00133e-10*u*math.Sin(tsol-d) +
		0.00133e-10*u*math.Sin(tsol+elsun-elj) -
		0.00229e-10*u*math.Sin(tsol+2.0*elsun+emsun) -
		0.02200e-10*v*math.Cos(elsun+emsun) +
		0.05312e-10*u*math.Sin(tsol-emsun) -
		0.13677e-10*u*math.Sin(tsol+2.0*elsun) -
		1.31840e-10*v*math.Cos(elsun) +
		3.17679e-10*u*math.Sin(tsol)

	// Sum each power of T from the smallest terms up.
	var wp [5]float64
	for p, r := range fairheadPowers {
		sum := 0.0
		for j := r[1] - 1; j >= r[0]; j-- {
			f := fairheadTerms[j]
			sum += f.amp * math.Sin(f.freq*t+f.phase)
		}
		wp[p] = sum
	}
	w = t*(t*(t*(t*wp[4]+wp[3])+wp[2])+wp[1]) + wp[0]

	// Adjustments to use JPL planetary masses instead of IAU.
	wj := 0.00065e-6*math.Sin(6069.776754*t+4.021194) +
		0.00033e-6*math.Sin(213.299095*t+5.543132) +
		(-0.00196e-6 * math.Sin(6208.294251*t+5.696701)) +
		(-0.00173e-6 * math.Sin(74.781599*t+2.435900)) +
		0.03638e-6*t*t

	return w + wj + wt
}
