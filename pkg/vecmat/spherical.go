package vecmat

import "math"

// SphericalToCartesian converts spherical coordinates to a unit vector.
// theta is the longitude-like angle, phi the latitude-like angle.
func SphericalToCartesian(theta, phi float64) Vector3 {
	sp, cp := math.Sincos(phi)
	st, ct := math.Sincos(theta)
	return Vector3{ct * cp, st * cp, sp}
}

// CartesianToSpherical converts a p-vector (of any length) into spherical
// coordinates. theta is not normalized into [0, 2π); wrap it with
// NormalizeAngle when a catalog-style longitude is needed.
func CartesianToSpherical(p Vector3) (theta, phi float64) {
	x, y, z := p[0], p[1], p[2]
	d2 := x*x + y*y

	if d2 != 0 {
		theta = math.Atan2(y, x)
	}
	if z != 0 {
		phi = math.Atan2(z, math.Sqrt(d2))
	}
	return theta, phi
}

// S2P converts spherical polar coordinates to a p-vector.
func S2P(theta, phi, r float64) Vector3 {
	return Scale(r, SphericalToCartesian(theta, phi))
}

// P2S converts a p-vector to spherical polar coordinates.
func P2S(p Vector3) (theta, phi, r float64) {
	theta, phi = CartesianToSpherical(p)
	return theta, phi, Norm(p)
}

// Separation returns the angle between two p-vectors.
func Separation(a, b Vector3) float64 {
	ss := Norm(Cross(a, b))
	cs := Dot(a, b)
	if ss == 0 && cs == 0 {
		return 0
	}
	return math.Atan2(ss, cs)
}

// SphericalSeparation returns the angular separation between two sets of
// spherical coordinates.
func SphericalSeparation(al, ap, bl, bp float64) float64 {
	return Separation(SphericalToCartesian(al, ap), SphericalToCartesian(bl, bp))
}

// PositionAngle returns the position angle of b with respect to a, both
// given as p-vectors. The result is in the range -π to +π, measured from
// north towards east.
func PositionAngle(a, b Vector3) float64 {
	am, au := Normalize(a)
	bm := Norm(b)

	st, ct := 0.0, 1.0
	if am != 0 && bm != 0 {
		xa, ya, za := a[0], a[1], a[2]
		eta := Vector3{-xa * za, -ya * za, xa*xa + ya*ya}
		xi := Cross(eta, au)
		a2b := Sub(b, a)
		st = Dot(a2b, xi)
		ct = Dot(a2b, eta)
		if st == 0 && ct == 0 {
			ct = 1.0
		}
	}
	return math.Atan2(st, ct)
}

// SphericalPositionAngle returns the position angle of B with respect to A,
// both given as spherical coordinates.
func SphericalPositionAngle(al, ap, bl, bp float64) float64 {
	dl := bl - al
	y := math.Sin(dl) * math.Cos(bp)
	x := math.Sin(bp)*math.Cos(ap) - math.Cos(bp)*math.Sin(ap)*math.Cos(dl)
	if x == 0 && y == 0 {
		return 0
	}
	return math.Atan2(y, x)
}
