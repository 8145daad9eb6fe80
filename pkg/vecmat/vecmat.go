// Package vecmat provides the fixed-size vector and matrix kernel used by
// every astrometry routine.
//
// All types are plain arrays and every function works on values, so nothing
// here allocates. Angles are in radians throughout.
package vecmat

import "math"

// Constants for angle and unit conversions
const (
	// TwoPi is 2π
	TwoPi = 2 * math.Pi

	// DegreesToRadians converts degrees to radians
	DegreesToRadians = math.Pi / 180.0

	// RadiansToDegrees converts radians to degrees
	RadiansToDegrees = 180.0 / math.Pi

	// ArcsecondsToRadians converts arcseconds to radians
	ArcsecondsToRadians = 4.848136811095359935899141e-6

	// SecondsToRadians converts seconds of time to radians
	SecondsToRadians = 7.272205216643039903848712e-5

	// TurnArcseconds is the number of arcseconds in a full circle
	TurnArcseconds = 1296000.0

	// DaySeconds is the number of seconds in a day
	DaySeconds = 86400.0
)

// Vector3 is a position or direction (p-vector).
type Vector3 [3]float64

// Matrix3 is a 3x3 matrix, usually a rotation (r-matrix).
type Matrix3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotateX rotates the matrix r about the x-axis by phi.
// The rotation is applied on the left: result = Rx(phi) * r.
func RotateX(phi float64, r Matrix3) Matrix3 {
	s, c := math.Sincos(phi)
	for j := 0; j < 3; j++ {
		a1 := c*r[1][j] + s*r[2][j]
		a2 := -s*r[1][j] + c*r[2][j]
		r[1][j] = a1
		r[2][j] = a2
	}
	return r
}

// RotateY rotates the matrix r about the y-axis by theta.
func RotateY(theta float64, r Matrix3) Matrix3 {
	s, c := math.Sincos(theta)
	for j := 0; j < 3; j++ {
		a0 := c*r[0][j] - s*r[2][j]
		a2 := s*r[0][j] + c*r[2][j]
		r[0][j] = a0
		r[2][j] = a2
	}
	return r
}

// RotateZ rotates the matrix r about the z-axis by psi.
func RotateZ(psi float64, r Matrix3) Matrix3 {
	s, c := math.Sincos(psi)
	for j := 0; j < 3; j++ {
		a0 := c*r[0][j] + s*r[1][j]
		a1 := -s*r[0][j] + c*r[1][j]
		r[0][j] = a0
		r[1][j] = a1
	}
	return r
}

// MulMV multiplies a vector by a matrix: r * p.
func MulMV(r Matrix3, p Vector3) Vector3 {
	var rp Vector3
	for j := 0; j < 3; j++ {
		w := 0.0
		for i := 0; i < 3; i++ {
			w += r[j][i] * p[i]
		}
		rp[j] = w
	}
	return rp
}

// TMulMV multiplies a vector by the transpose of a matrix: rᵀ * p.
func TMulMV(r Matrix3, p Vector3) Vector3 {
	return MulMV(Transpose(r), p)
}

// MulMM multiplies two matrices: a * b.
func MulMM(a, b Matrix3) Matrix3 {
	var atb Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w := 0.0
			for k := 0; k < 3; k++ {
				w += a[i][k] * b[k][j]
			}
			atb[i][j] = w
		}
	}
	return atb
}

// Transpose returns the transpose of r.
func Transpose(r Matrix3) Matrix3 {
	var rt Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rt[i][j] = r[j][i]
		}
	}
	return rt
}

// Dot returns the scalar product a·b.
func Dot(a, b Vector3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Norm returns the modulus of p.
func Norm(p Vector3) float64 {
	return math.Sqrt(Dot(p, p))
}

// Normalize splits p into modulus and unit vector.
// A zero vector yields modulus 0 and a zero unit vector; callers must check
// the modulus before trusting the direction.
func Normalize(p Vector3) (float64, Vector3) {
	w := Norm(p)
	if w == 0 {
		return 0, Vector3{}
	}
	return w, Scale(1/w, p)
}

// Sub returns a - b.
func Sub(a, b Vector3) Vector3 {
	return Vector3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Add returns a + b.
func Add(a, b Vector3) Vector3 {
	return Vector3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Scale returns s * p.
func Scale(s float64, p Vector3) Vector3 {
	return Vector3{s * p[0], s * p[1], s * p[2]}
}

// AddScaled returns a + s*b.
func AddScaled(a Vector3, s float64, b Vector3) Vector3 {
	return Add(a, Scale(s, b))
}

// Cross returns the vector product a × b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// RotationVectorToMatrix forms the r-matrix corresponding to a rotation
// vector (axis times angle).
func RotationVectorToMatrix(w Vector3) Matrix3 {
	x, y, z := w[0], w[1], w[2]
	phi := math.Sqrt(x*x + y*y + z*z)
	s, c := math.Sincos(phi)
	f := 1.0 - c

	if phi > 0 {
		x /= phi
		y /= phi
		z /= phi
	}

	return Matrix3{
		{x*x*f + c, x*y*f + z*s, x*z*f - y*s},
		{y*x*f - z*s, y*y*f + c, y*z*f + x*s},
		{z*x*f + y*s, z*y*f - x*s, z*z*f + c},
	}
}

// MatrixToRotationVector expresses an r-matrix as a rotation vector.
func MatrixToRotationVector(r Matrix3) Vector3 {
	x := r[1][2] - r[2][1]
	y := r[2][0] - r[0][2]
	z := r[0][1] - r[1][0]
	s2 := math.Sqrt(x*x + y*y + z*z)
	if s2 == 0 {
		return Vector3{}
	}
	c2 := r[0][0] + r[1][1] + r[2][2] - 1.0
	phi := math.Atan2(s2, c2)
	f := phi / s2
	return Vector3{x * f, y * f, z * f}
}

// NormalizeAngle normalizes an angle into the range [0, 2π).
func NormalizeAngle(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if w < 0 {
		w += TwoPi
	}
	return w
}

// NormalizeAngleSigned normalizes an angle into the range (-π, +π].
func NormalizeAngleSigned(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if math.Abs(w) >= math.Pi {
		w -= math.Copysign(TwoPi, a)
	}
	return w
}
