package geodesy

import (
	"math"
	"testing"

	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.20g, want %.20g (±%g)", name, got, want, tol)
	}
}

func TestParameters(t *testing.T) {
	tests := []struct {
		e    Ellipsoid
		a, f float64
		code status.Code
	}{
		{0, 0, 0, status.Invalid},
		{WGS84, 6378137.0, 0.3352810664747480720e-2, status.OK},
		{GRS80, 6378137.0, 0.3352810681182318935e-2, status.OK},
		{WGS72, 6378135.0, 0.3352779454167504862e-2, status.OK},
		{4, 0, 0, status.Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			a, f, code := tt.e.Parameters()
			if code != tt.code {
				t.Fatalf("status = %d, want %d", code, tt.code)
			}
			near(t, "a", a, tt.a, 1e-10)
			near(t, "f", f, tt.f, 1e-18)
		})
	}
}

func TestGeodeticToGeocentric(t *testing.T) {
	tests := []struct {
		e    Ellipsoid
		want vecmat.Vector3
		code status.Code
	}{
		{0, vecmat.Vector3{}, status.Invalid},
		{WGS84, vecmat.Vector3{-5599000.5577049947, 233011.67223479203, -3040909.4706983363}, status.OK},
		{GRS80, vecmat.Vector3{-5599000.5577260984, 233011.6722356702949, -3040909.4706095476}, status.OK},
		{WGS72, vecmat.Vector3{-5598998.7626301490, 233011.5975297822211, -3040908.6861467111}, status.OK},
		{4, vecmat.Vector3{}, status.Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			xyz, code := GeodeticToGeocentric(tt.e, 3.1, -0.5, 2500.0)
			if code != tt.code {
				t.Fatalf("status = %d, want %d", code, tt.code)
			}
			for k := range xyz {
				near(t, "xyz", xyz[k], tt.want[k], 1e-7)
			}
		})
	}

	xyz, code := GeodeticToGeocentricAF(6378136.0, 0.0033528, 3.1, -0.5, 2500.0)
	if code != status.OK {
		t.Fatalf("status = %d", code)
	}
	near(t, "x", xyz[0], -5598999.6665116875, 1e-7)
	near(t, "y", xyz[1], 233011.63514630572, 1e-7)
	near(t, "z", xyz[2], -3040909.0517314132, 1e-7)
}

func TestGeocentricToGeodetic(t *testing.T) {
	xyz := vecmat.Vector3{2e6, 3e6, 5.244e6}
	tests := []struct {
		e           Ellipsoid
		elong, phi  float64
		height      float64
		code        status.Code
		wantFailure bool
	}{
		{0, 0, 0, 0, status.Invalid, true},
		{WGS84, 0.9827937232473290680, 0.97160184819075459, 331.4172461426059892, status.OK, false},
		{GRS80, 0.98279372324732907, 0.97160184820607853, 331.41731754844348, status.OK, false},
		{WGS72, 0.98279372324732907, 0.9716018181101511937, 333.2770726130318123, status.OK, false},
		{4, 0, 0, 0, status.Invalid, true},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			elong, phi, height, code := GeocentricToGeodetic(tt.e, xyz)
			if code != tt.code {
				t.Fatalf("status = %d, want %d", code, tt.code)
			}
			if tt.wantFailure {
				if elong != 0 || phi != 0 || height != 0 {
					t.Errorf("failure outputs = %g %g %g, want zeros", elong, phi, height)
				}
				return
			}
			near(t, "elong", elong, tt.elong, 1e-14)
			near(t, "phi", phi, tt.phi, 1e-14)
			near(t, "height", height, tt.height, 1e-8)
		})
	}

	elong, phi, height, code := GeocentricToGeodeticAF(6378136.0, 0.0033528, xyz)
	if code != status.OK {
		t.Fatalf("status = %d", code)
	}
	near(t, "elong", elong, 0.9827937232473290680, 1e-14)
	near(t, "phi", phi, 0.9716018377570411532, 1e-14)
	near(t, "height", height, 332.36862495764397, 1e-8)
}

func TestGeocentricToGeodeticBadEllipsoid(t *testing.T) {
	if _, _, _, code := GeocentricToGeodeticAF(6378136.0, -0.1, vecmat.Vector3{1, 2, 3}); code != status.Invalid {
		t.Errorf("negative flattening status = %d, want -1", code)
	}
	if _, _, _, code := GeocentricToGeodeticAF(0, 0.003, vecmat.Vector3{1, 2, 3}); code != -2 {
		t.Errorf("zero radius status = %d, want -2", code)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, e := range []Ellipsoid{WGS84, GRS80, WGS72} {
		for _, c := range []struct{ elong, phi, h float64 }{
			{-1.5, 0.7, 1200},
			{2.9, -1.2, -30},
			{0.1, 1.5707963267948966, 500},
			{0.4, 0, 0},
		} {
			xyz, code := GeodeticToGeocentric(e, c.elong, c.phi, c.h)
			if code != status.OK {
				t.Fatalf("%v: status %d", e, code)
			}
			elong, phi, h, code := GeocentricToGeodetic(e, xyz)
			if code != status.OK {
				t.Fatalf("%v: status %d", e, code)
			}
			if math.Abs(c.phi) < math.Pi/2 {
				near(t, e.String()+" elong", elong, c.elong, 1e-12)
			}
			near(t, e.String()+" phi", phi, c.phi, 1e-12)
			near(t, e.String()+" height", h, c.h, 1e-6)
		}
	}
}

func TestParseEllipsoid(t *testing.T) {
	for in, want := range map[string]Ellipsoid{"wgs84": WGS84, "GRS-80": GRS80, " WGS72 ": WGS72} {
		got, err := ParseEllipsoid(in)
		if err != nil || got != want {
			t.Errorf("ParseEllipsoid(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseEllipsoid("Clarke1866"); err == nil {
		t.Error("ParseEllipsoid(Clarke1866) succeeded")
	}
}

func TestObservatoryPV(t *testing.T) {
	pv := ObservatoryPV(2.0, 0.5, 3000.0, 1e-6, -0.5e-6, 1e-8, 5.0)
	near(t, "p[0]", pv[0][0], 4225081.367071159207, 1e-5)
	near(t, "p[1]", pv[0][1], 3681943.215856198144, 1e-5)
	near(t, "p[2]", pv[0][2], 3041149.399241260785, 1e-5)
	near(t, "v[0]", pv[1][0], -268.4915389365998787, 1e-9)
	near(t, "v[1]", pv[1][1], 308.0977983288903123, 1e-9)
	near(t, "v[2]", pv[1][2], 0, 0)
}
