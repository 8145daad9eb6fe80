// Package orientation computes the orientation of the Earth in the
// celestial frame: frame bias, precession, nutation, the CIO locator, Earth
// rotation and sidereal time, for the IAU 1976/1980, 2000A, 2000B and 2006A
// model generations.
//
// Dates are two-part Julian Dates in TT unless a parameter is named for
// UT1. Angles are radians and matrices rotate celestial vectors into the
// frame of date (r-matrix convention: v' = R v).
package orientation

import (
	"math"

	"github.com/unklstewy/astrom/pkg/timescale"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

const (
	das2r  = vecmat.ArcsecondsToRadians
	turnas = vecmat.TurnArcseconds
	twoPi  = vecmat.TwoPi
)

// centuries returns Julian centuries since J2000.0 for a two-part date.
func centuries(date1, date2 float64) float64 {
	return ((date1 - timescale.J2000) + date2) / timescale.DaysPerJulianCentury
}

// The fundamental arguments below follow the IERS Conventions (2003). t is
// TDB Julian centuries since J2000.0 (TT is adequate).

// MeanAnomalyMoon returns l, the mean anomaly of the Moon.
func MeanAnomalyMoon(t float64) float64 {
	return math.Mod(485868.249036+
		t*(1717915923.2178+
			t*(31.8792+
				t*(0.051635+
					t*(-0.00024470)))), turnas) * das2r
}

// MeanAnomalySun returns l', the mean anomaly of the Sun.
func MeanAnomalySun(t float64) float64 {
	return math.Mod(1287104.793048+
		t*(129596581.0481+
			t*(-0.5532+
				t*(0.000136+
					t*(-0.00001149)))), turnas) * das2r
}

// MeanArgLatitudeMoon returns F = L - Ω, where L is the mean longitude of
// the Moon.
func MeanArgLatitudeMoon(t float64) float64 {
	return math.Mod(335779.526232+
		t*(1739527262.8478+
			t*(-12.7512+
				t*(-0.001037+
					t*(0.00000417)))), turnas) * das2r
}

// MeanElongationMoon returns D, the mean elongation of the Moon from the Sun.
func MeanElongationMoon(t float64) float64 {
	return math.Mod(1072260.703692+
		t*(1602961601.2090+
			t*(-6.3706+
				t*(0.006593+
					t*(-0.00003169)))), turnas) * das2r
}

// MeanLongitudeNodeMoon returns Ω, the mean longitude of the Moon's
// ascending node.
func MeanLongitudeNodeMoon(t float64) float64 {
	return math.Mod(450160.398036+
		t*(-6962890.5431+
			t*(7.4722+
				t*(0.007702+
					t*(-0.00005939)))), turnas) * das2r
}

// MeanLongitudeMercury returns the mean longitude of Mercury.
func MeanLongitudeMercury(t float64) float64 {
	return math.Mod(4.402608842+2608.7903141574*t, twoPi)
}

// MeanLongitudeVenus returns the mean longitude of Venus.
func MeanLongitudeVenus(t float64) float64 {
	return math.Mod(3.176146697+1021.3285546211*t, twoPi)
}

// MeanLongitudeEarth returns the mean longitude of the Earth.
func MeanLongitudeEarth(t float64) float64 {
	return math.Mod(1.753470314+628.3075849991*t, twoPi)
}

// MeanLongitudeMars returns the mean longitude of Mars.
func MeanLongitudeMars(t float64) float64 {
	return math.Mod(6.203480913+334.0612426700*t, twoPi)
}

// MeanLongitudeJupiter returns the mean longitude of Jupiter.
func MeanLongitudeJupiter(t float64) float64 {
	return math.Mod(0.599546497+52.9690962641*t, twoPi)
}

// MeanLongitudeSaturn returns the mean longitude of Saturn.
func MeanLongitudeSaturn(t float64) float64 {
	return math.Mod(0.874016757+21.3299104960*t, twoPi)
}

// MeanLongitudeUranus returns the mean longitude of Uranus.
func MeanLongitudeUranus(t float64) float64 {
	return math.Mod(5.481293872+7.4781598567*t, twoPi)
}

// MeanLongitudeNeptune returns the mean longitude of Neptune.
func MeanLongitudeNeptune(t float64) float64 {
	return math.Mod(5.311886287+3.8133035638*t, twoPi)
}

// GeneralPrecessionLongitude returns p_A, the general accumulated precession
// in longitude.
func GeneralPrecessionLongitude(t float64) float64 {
	return (0.024381750 + 0.00000538691*t) * t
}
