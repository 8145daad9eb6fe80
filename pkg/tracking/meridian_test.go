package tracking

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/unklstewy/astrom/pkg/coordinates"
)

// TestDefaultTrackingLimits tests default limit creation.
func TestDefaultTrackingLimits(t *testing.T) {
	limits := DefaultTrackingLimits()

	if limits.MinAltitude != 15.0 {
		t.Errorf("Expected min altitude 15.0, got %f", limits.MinAltitude)
	}
	if limits.MaxAltitude != 85.0 {
		t.Errorf("Expected max altitude 85.0, got %f", limits.MaxAltitude)
	}
	if limits.MeridianFlipHourAngle != 6.0 {
		t.Errorf("Expected meridian flip HA 6.0, got %f", limits.MeridianFlipHourAngle)
	}
	if limits.Equatorial {
		t.Error("Expected alt-az by default")
	}
	if err := limits.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		limits  TrackingLimits
		wantErr bool
	}{
		{"inverted altitudes", TrackingLimits{MinAltitude: 60, MaxAltitude: 30}, true},
		{"above zenith", TrackingLimits{MinAltitude: 0, MaxAltitude: 95}, true},
		{"equatorial without flip limit", TrackingLimits{MinAltitude: 0, MaxAltitude: 80, Equatorial: true}, true},
		{"alt-az ignores flip limit", TrackingLimits{MinAltitude: 0, MaxAltitude: 80}, false},
		{"equatorial", TrackingLimits{MinAltitude: 10, MaxAltitude: 80, MeridianFlipHourAngle: 0.5, Equatorial: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.limits.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func position(alt, ha, dec float64) coordinates.ObservedPosition {
	return coordinates.ObservedPosition{
		Horizontal:  coordinates.HorizontalCoordinates{Altitude: alt, Azimuth: 180},
		HourAngle:   ha,
		Declination: dec,
	}
}

// TestCheckMeridianEvent tests meridian event detection.
func TestCheckMeridianEvent(t *testing.T) {
	altaz := DefaultTrackingLimits()
	eq := altaz
	eq.Equatorial = true

	tests := []struct {
		name   string
		pos    coordinates.ObservedPosition
		limits TrackingLimits
		want   MeridianEvent
	}{
		{"Below minimum altitude", position(10, -3, 0), altaz, HorizonCrossing},
		{"Below minimum beats flip", position(10, 7, 0), eq, HorizonCrossing},
		{"Near zenith", position(87, -0.1, 30), altaz, ZenithCrossing},
		{"Alt-az past six hours", position(20, 6.5, 60), altaz, NoMeridianEvent},
		{"Equatorial past six hours", position(20, 6.5, 60), eq, MeridianFlipRequired},
		{"Equatorial east", position(20, -6.5, 60), eq, MeridianFlipRequired},
		{"Equatorial inside limit", position(45, 2, 10), eq, NoMeridianEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckMeridianEvent(tt.pos, tt.limits); got != tt.want {
				t.Errorf("CheckMeridianEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeToTransit(t *testing.T) {
	sidereal := func(h float64) time.Duration {
		return time.Duration(h / siderealPerSolar * float64(time.Hour))
	}

	tests := []struct {
		name string
		ha   float64
		want time.Duration
	}{
		{"on the meridian", 0, 0},
		{"two hours east", -2, sidereal(2)},
		{"just past transit", 0.5, sidereal(23.5)},
		{"lower culmination", 12, sidereal(12)},
		{"lower culmination from the east", -12, sidereal(12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeToTransit(tt.ha)
			if math.Abs(float64(got-tt.want)) > float64(time.Millisecond) {
				t.Errorf("TimeToTransit(%v) = %v, want %v", tt.ha, got, tt.want)
			}
		})
	}

	// A sidereal day is 23h 56m 4.09s.
	solarDayHours := 24.0
	day := time.Duration(solarDayHours / siderealPerSolar * float64(time.Hour))
	if d := day - (23*time.Hour + 56*time.Minute + 4090*time.Millisecond); d.Abs() > 10*time.Millisecond {
		t.Errorf("Sidereal day off by %v", d)
	}
}

func TestMeridianEventString(t *testing.T) {
	if HorizonCrossing.String() != "low" || MeridianFlipRequired.String() != "flip" {
		t.Error("Unexpected event labels")
	}
	if MeridianEvent(42).String() != "MeridianEvent(42)" {
		t.Errorf("Unexpected label %q", MeridianEvent(42).String())
	}
}

func TestRecommendTrackingStrategy(t *testing.T) {
	tests := []struct {
		name  string
		event MeridianEvent
		pos   coordinates.ObservedPosition
		want  string
	}{
		{"normal", NoMeridianEvent, position(40, 1, 20), "normally"},
		{"pole", NoMeridianEvent, position(40, 1, 89), "celestial pole"},
		{"flip west", MeridianFlipRequired, position(40, 6.5, 20), "west of the meridian"},
		{"zenith rising", ZenithCrossing, position(88, -0.05, 20), "transit in 3m0s"},
		{"zenith setting", ZenithCrossing, position(88, 0.05, 20), "descending"},
		{"low", HorizonCrossing, position(5, 1, 20), "rise"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendTrackingStrategy(tt.event, tt.pos)
			if !strings.Contains(got, tt.want) {
				t.Errorf("RecommendTrackingStrategy() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
