package ephemeris

import (
	"math"

	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Earth returns the heliocentric and barycentric position and velocity of
// the Earth, J2000.0 mean equator and equinox, in au and au/day.
// date1+date2 is the TDB Julian Date.
//
// The Earth is placed off the Earth-Moon barycenter of Planet by the lunar
// theory of Moon, and the Sun off the solar-system barycenter by the eight
// planets weighted by mass. The result agrees with the VSOP2000-based
// series of Bretagnon to about 2e-5 au in position and 5e-7 au/day in
// velocity. The status is +1 for dates outside 1900-2100, when the
// accuracy degrades.
func Earth(date1, date2 float64) (helio, bary vecmat.PV, code status.Code) {
	t := ((date1 - timescale.J2000) + date2) / timescale.DaysPerJulianYear
	if math.Abs(t) > 100.0 {
		code = status.Dubious
	}

	emb, _ := Planet(date1, date2, EMB)

	// The Moon is in the GCRS; the offset is below the frame bias.
	moon := Moon(date1, date2)
	helio = vecmat.PVSub(emb, scalePV(1.0/(1.0+EarthMoonMassRatio), moon))

	sun := SunBarycentric(date1, date2)
	bary = vecmat.PVAdd(helio, sun)
	return helio, bary, code
}

// SunBarycentric returns the position and velocity of the Sun relative to
// the solar-system barycenter.
func SunBarycentric(date1, date2 float64) vecmat.PV {
	var sum vecmat.PV
	total := 1.0
	for b := Mercury; b <= Neptune; b++ {
		pv, _ := Planet(date1, date2, b)
		mu := Mass(b)
		total += mu
		sum = vecmat.PVSub(sum, scalePV(mu, pv))
	}
	return scalePV(1.0/total, sum)
}

func scalePV(s float64, pv vecmat.PV) vecmat.PV {
	return vecmat.PV{vecmat.Scale(s, pv[0]), vecmat.Scale(s, pv[1])}
}
