package vecmat

import "math"

// PV is a position/velocity vector: PV[0] is the position, PV[1] the
// velocity.
type PV [2]Vector3

// MulMPV multiplies a pv-vector by an r-matrix.
func MulMPV(r Matrix3, pv PV) PV {
	return PV{MulMV(r, pv[0]), MulMV(r, pv[1])}
}

// TMulMPV multiplies a pv-vector by the transpose of an r-matrix.
func TMulMPV(r Matrix3, pv PV) PV {
	return PV{TMulMV(r, pv[0]), TMulMV(r, pv[1])}
}

// PVAdd returns a + b.
func PVAdd(a, b PV) PV {
	return PV{Add(a[0], b[0]), Add(a[1], b[1])}
}

// PVSub returns a - b.
func PVSub(a, b PV) PV {
	return PV{Sub(a[0], b[0]), Sub(a[1], b[1])}
}

// PVDot returns the inner product of two pv-vectors: the scalar product of
// the positions and its time derivative.
func PVDot(a, b PV) [2]float64 {
	return [2]float64{
		Dot(a[0], b[0]),
		Dot(a[0], b[1]) + Dot(a[1], b[0]),
	}
}

// PVCross returns the outer product of two pv-vectors.
func PVCross(a, b PV) PV {
	return PV{
		Cross(a[0], b[0]),
		Add(Cross(a[0], b[1]), Cross(a[1], b[0])),
	}
}

// PVNorm returns the modulus of the position and of the velocity.
func PVNorm(pv PV) (r, s float64) {
	return Norm(pv[0]), Norm(pv[1])
}

// PVUpdate advances a pv-vector by dt, assuming uniform motion.
func PVUpdate(dt float64, pv PV) PV {
	return PV{AddScaled(pv[0], dt, pv[1]), pv[1]}
}

// PVUpdatePosition advances only the position of a pv-vector by dt.
func PVUpdatePosition(dt float64, pv PV) Vector3 {
	return AddScaled(pv[0], dt, pv[1])
}

// S2PV converts position and velocity in spherical coordinates to a
// pv-vector.
func S2PV(theta, phi, r, td, pd, rd float64) PV {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	rcp := r * cp
	x := rcp * ct
	y := rcp * st
	rpd := r * pd
	w := rpd*sp - cp*rd

	return PV{
		{x, y, r * sp},
		{-y*td - w*ct, x*td - w*st, rpd*cp + sp*rd},
	}
}

// PV2S converts a pv-vector to spherical coordinates and their rates.
func PV2S(pv PV) (theta, phi, r, td, pd, rd float64) {
	x, y, z := pv[0][0], pv[0][1], pv[0][2]
	xd, yd, zd := pv[1][0], pv[1][1], pv[1][2]

	rxy2 := x*x + y*y
	r2 := rxy2 + z*z
	rtrue := math.Sqrt(r2)

	// Null position vector: use the velocity to find the direction.
	rw := rtrue
	if r2 == 0 {
		x, y, z = xd, yd, zd
		rxy2 = x*x + y*y
		r2 = rxy2 + z*z
		rw = math.Sqrt(r2)
	}

	rxy := math.Sqrt(rxy2)
	xyp := x*xd + y*yd
	if rxy2 != 0 {
		theta = math.Atan2(y, x)
		phi = math.Atan2(z, rxy)
		td = (x*yd - y*xd) / rxy2
		pd = (zd*rxy2 - z*xyp) / (r2 * rxy)
	} else if z != 0 {
		phi = math.Atan2(z, rxy)
	}

	r = rtrue
	if rw != 0 {
		rd = (xyp + z*zd) / rw
	}
	return theta, phi, r, td, pd, rd
}
