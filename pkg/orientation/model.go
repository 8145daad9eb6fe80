package orientation

import (
	"fmt"
	"strings"

	"github.com/unklstewy/astrom/pkg/vecmat"
)

// Model selects a precession-nutation model generation. The zero value is
// not a valid model.
type Model int

const (
	// IAU1980 is IAU 1976 precession with IAU 1980 nutation.
	IAU1980 Model = iota + 1
	// IAU2000A is IAU 2000 precession-nutation.
	IAU2000A
	// IAU2000B is IAU 2000 precession with the truncated 2000B nutation.
	IAU2000B
	// IAU2006A is IAU 2006 precession with IAU 2000A nutation.
	IAU2006A
)

var modelNames = map[Model]string{
	IAU1980:  "IAU1980",
	IAU2000A: "IAU2000A",
	IAU2000B: "IAU2000B",
	IAU2006A: "IAU2006A",
}

// String returns the model name.
func (m Model) String() string {
	if n, ok := modelNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// Valid reports whether m is one of the defined models.
func (m Model) Valid() bool {
	_, ok := modelNames[m]
	return ok
}

// ParseModel parses a model name such as "IAU2006A" or "2006a".
func ParseModel(name string) (Model, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(n, "IAU") {
		n = "IAU" + n
	}
	for m, s := range modelNames {
		if s == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown precession-nutation model %q", name)
}

// Nutation returns the nutation components of the model. Invalid models
// return zero.
func (m Model) Nutation(date1, date2 float64) (dpsi, deps float64) {
	switch m {
	case IAU1980:
		return Nutation80(date1, date2)
	case IAU2000A:
		return Nutation00A(date1, date2)
	case IAU2000B:
		return Nutation00B(date1, date2)
	case IAU2006A:
		return Nutation06A(date1, date2)
	}
	return 0, 0
}

// MeanObliquity returns the mean obliquity the model's nutation matrix is
// built on.
func (m Model) MeanObliquity(date1, date2 float64) float64 {
	switch m {
	case IAU1980:
		return MeanObliquity80(date1, date2)
	case IAU2000A, IAU2000B:
		_, depspr := PrecessionRate00(date1, date2)
		return MeanObliquity80(date1, date2) + depspr
	case IAU2006A:
		return MeanObliquity06(date1, date2)
	}
	return 0
}

// BPN returns the bias-precession-nutation matrix of the model. Invalid
// models return the identity.
func (m Model) BPN(date1, date2 float64) vecmat.Matrix3 {
	switch m {
	case IAU1980:
		return BPNMatrix80(date1, date2)
	case IAU2000A:
		return BPNMatrix00A(date1, date2)
	case IAU2000B:
		return BPNMatrix00B(date1, date2)
	case IAU2006A:
		return BPNMatrix06A(date1, date2)
	}
	return vecmat.Identity()
}

// CIOLocator returns the CIO locator s matching the model, given the CIP
// X,Y. IAU2006A uses the 2006 series, the others the 2000 series.
func (m Model) CIOLocator(date1, date2, x, y float64) float64 {
	if m == IAU2006A {
		return CIOLocator06(date1, date2, x, y)
	}
	return CIOLocator00(date1, date2, x, y)
}

// CIPXYS returns the CIP X,Y and the CIO locator s. For IAU1980 the pole is
// taken from the 1976/1980 matrix and s from the IAU 2000 series.
func (m Model) CIPXYS(date1, date2 float64) (x, y, s float64) {
	x, y = CIPXY(m.BPN(date1, date2))
	return x, y, m.CIOLocator(date1, date2, x, y)
}

// EquationOfOrigins returns the equation of the origins of the model.
func (m Model) EquationOfOrigins(date1, date2 float64) float64 {
	r := m.BPN(date1, date2)
	x, y := CIPXY(r)
	return EquationOfOrigins(r, m.CIOLocator(date1, date2, x, y))
}

// SiderealTime returns Greenwich apparent sidereal time from the model's
// own formulation.
func (m Model) SiderealTime(uta, utb, tta, ttb float64) float64 {
	switch m {
	case IAU1980:
		return GST94(uta, utb)
	case IAU2000A:
		return GST00A(uta, utb, tta, ttb)
	case IAU2000B:
		return GST00B(uta, utb)
	case IAU2006A:
		return GST06A(uta, utb, tta, ttb)
	}
	return 0
}
