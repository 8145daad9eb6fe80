package catalog

import (
	"math"
	"testing"

	"github.com/unklstewy/astrom/pkg/astrometry"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.20g, want %.20g (±%g)", name, got, want, tol)
	}
}

func nearStar(t *testing.T, got, want astrometry.Star, tol [6]float64) {
	t.Helper()
	near(t, "ra", got.RA, want.RA, tol[0])
	near(t, "dec", got.Dec, want.Dec, tol[1])
	near(t, "pmra", got.PMRA, want.PMRA, tol[2])
	near(t, "pmdec", got.PMDec, want.PMDec, tol[3])
	near(t, "parallax", got.Parallax, want.Parallax, tol[4])
	near(t, "rv", got.RadialVelocity, want.RadialVelocity, tol[5])
}

var barnardLike = astrometry.Star{
	RA: 0.01686756, Dec: -1.093989828,
	PMRA: -1.78323516e-5, PMDec: 2.336024047e-6,
	Parallax: 0.74723, RadialVelocity: -21.6,
}

func TestStarToPV(t *testing.T) {
	pv, code := StarToPV(barnardLike)
	if code != status.OK {
		t.Errorf("status = %d", code)
	}
	near(t, "p[0]", pv[0][0], 126668.5912743160601, 1e-10)
	near(t, "p[1]", pv[0][1], 2136.792716839935195, 1e-12)
	near(t, "p[2]", pv[0][2], -245251.2339876830091, 1e-10)
	near(t, "v[0]", pv[1][0], -0.004051854008955661432, 1e-13)
	near(t, "v[1]", pv[1][1], -0.006253919754414779923, 1e-15)
	near(t, "v[2]", pv[1][2], 0.01189353714588109283, 1e-13)

	// The inverse recovers the entry.
	s, code := PVToStar(pv)
	if code != status.OK {
		t.Fatalf("PVToStar status = %d", code)
	}
	nearStar(t, s, barnardLike, [6]float64{1e-12, 1e-12, 1e-16, 1e-16, 1e-12, 1e-10})
}

func TestStarToPVWarnings(t *testing.T) {
	tests := []struct {
		name string
		star astrometry.Star
		want status.Code
	}{
		{"no parallax", astrometry.Star{RA: 1.0, Dec: 0.5}, DistanceOverridden},
		{"superluminal", astrometry.Star{RA: 1.0, Dec: 0.5, PMRA: 0.1, Parallax: 1e-7}, VelocityZeroed},
		{"both", astrometry.Star{RA: 1.0, Dec: 0.5, PMRA: 0.1}, DistanceOverridden + VelocityZeroed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv, code := StarToPV(tt.star)
			if code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
			if code&VelocityZeroed != 0 && pv[1] != (vecmat.Vector3{}) {
				t.Errorf("velocity = %v, want zero", pv[1])
			}
		})
	}
}

func TestPVToStarFailures(t *testing.T) {
	if s, code := PVToStar(vecmat.PV{{1, 0, 0}, {1000, 0, 0}}); code != status.Invalid || s != (astrometry.Star{}) {
		t.Errorf("superluminal: %+v, status %d; want zero, -1", s, code)
	}
	if s, code := PVToStar(vecmat.PV{}); code != -2 || s != (astrometry.Star{}) {
		t.Errorf("null position: %+v, status %d; want zero, -2", s, code)
	}
}

func TestStarProperMotion(t *testing.T) {
	s, code := StarProperMotion(barnardLike, 2400000.5, 50083.0, 2400000.5, 53736.0)
	if code != status.OK {
		t.Errorf("status = %d", code)
	}
	nearStar(t, s, astrometry.Star{
		RA: 0.01668919069414256149, Dec: -1.093966454217127897,
		PMRA: -0.1783662682153176524e-4, PMDec: 0.2338092915983989595e-5,
		Parallax: 0.7473533835317719243, RadialVelocity: -21.59905170476417175,
	}, [6]float64{1e-13, 1e-13, 1e-17, 1e-17, 1e-13, 1e-11})
}

func TestProperMotionSafe(t *testing.T) {
	in := astrometry.Star{RA: 1.234, Dec: 0.789, PMRA: 1e-5, PMDec: -2e-5, Parallax: 1e-2, RadialVelocity: 10.0}
	s, code := ProperMotionSafe(in, 2400000.5, 48348.5625, 2400000.5, 51544.5)
	if code != status.OK {
		t.Errorf("status = %d", code)
	}
	nearStar(t, s, astrometry.Star{
		RA: 1.234087484501017061, Dec: 0.7888249982450468567,
		PMRA: 0.9996457663586073988e-5, PMDec: -0.2000040085106754565e-4,
		Parallax: 0.9999997295356830666e-2, RadialVelocity: 10.38468380293920069,
	}, [6]float64{1e-12, 1e-12, 1e-12, 1e-16, 1e-12, 1e-10})

	// Without a parallax one is supplied from the proper motion.
	in.Parallax = 0
	s, code = ProperMotionSafe(in, 2400000.5, 48348.5625, 2400000.5, 51544.5)
	if code != 1 {
		t.Errorf("zero parallax status = %d, want 1", code)
	}
	near(t, "ra", s.RA, 1.234087484522232, 1e-12)
	near(t, "dec", s.Dec, 0.7888249982026008, 1e-12)
}

func TestFK5HipparcosRotation(t *testing.T) {
	r5h, s5h := FK5HipparcosRotation()
	want := vecmat.Matrix3{
		{0.9999999999999928638, 1.1102233509835495e-07, 4.411803963527301e-08},
		{-1.1102233084981164e-07, 0.9999999999999891830, -9.647792498531089e-08},
		{-4.4118050326662195e-08, 9.647792009628368e-08, 0.9999999999999943728},
	}
	for i := range want {
		for j := range want[i] {
			near(t, "r5h", r5h[i][j], want[i][j], 1e-14)
		}
	}
	near(t, "s5h[0]", s5h[0], -0.1454441043328607981e-8, 1e-17)
	near(t, "s5h[1]", s5h[1], 0.2908882086657215962e-8, 1e-17)
	near(t, "s5h[2]", s5h[2], 0.3393695767766751955e-8, 1e-17)
}

func TestFK5ToHipparcos(t *testing.T) {
	in := astrometry.Star{
		RA: 1.76779433, Dec: -0.2917517103,
		PMRA: -1.91851572e-7, PMDec: -5.8468475e-6,
		Parallax: 0.379210, RadialVelocity: -7.6,
	}
	s, code := FK5ToHipparcos(in)
	if code != status.OK {
		t.Errorf("status = %d", code)
	}
	nearStar(t, s, astrometry.Star{
		RA: 1.767794226299947632, Dec: -0.2917516070530391757,
		PMRA: -0.1961874125605721270e-6, PMDec: -0.58459905176693911e-5,
		Parallax: 0.37921, RadialVelocity: -7.6000000940000254,
	}, [6]float64{1e-14, 1e-14, 1e-19, 1e-19, 1e-14, 1e-11})

	// And back again.
	back, code := HipparcosToFK5(s)
	if code != status.OK {
		t.Errorf("round trip status = %d", code)
	}
	nearStar(t, back, in, [6]float64{1e-12, 1e-12, 1e-16, 1e-16, 1e-12, 1e-9})
}

func TestHipparcosToFK5(t *testing.T) {
	in := astrometry.Star{
		RA: 1.767794352, Dec: -0.2917512594,
		PMRA: -2.76413026e-6, PMDec: -5.92994449e-6,
		Parallax: 0.379210, RadialVelocity: -7.6,
	}
	s, code := HipparcosToFK5(in)
	if code != status.OK {
		t.Errorf("status = %d", code)
	}
	nearStar(t, s, astrometry.Star{
		RA: 1.767794455700065506, Dec: -0.2917513626469638890,
		PMRA: -0.27597945024511204e-5, PMDec: -0.59308014093262838e-5,
		Parallax: 0.37921, RadialVelocity: -7.6000001309071126,
	}, [6]float64{1e-13, 1e-13, 1e-18, 1e-18, 1e-13, 1e-11})
}

func TestZeroProperMotion(t *testing.T) {
	rh, dh := FK5ToHipparcosZeroPM(1.76779433, -0.2917517103, 2400000.5, 54479.0)
	near(t, "rh", rh, 1.767794191464423978, 1e-12)
	near(t, "dh", dh, -0.2917516001679884419, 1e-12)

	r5, d5, dr5, dd5 := HipparcosToFK5ZeroPM(1.767794352, -0.2917512594, 2400000.5, 54479.0)
	near(t, "r5", r5, 1.767794490535581026, 1e-13)
	near(t, "d5", d5, -0.2917513695320114258, 1e-14)
	near(t, "dr5", dr5, 0.4335890983539243029e-8, 1e-22)
	near(t, "dd5", dd5, -0.8569648841237745902e-9, 1e-23)
}
