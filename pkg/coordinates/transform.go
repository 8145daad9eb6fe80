package coordinates

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/unklstewy/astrom/pkg/astrometry"
	"github.com/unklstewy/astrom/pkg/ephemeris"
	"github.com/unklstewy/astrom/pkg/geodesy"
	"github.com/unklstewy/astrom/pkg/orientation"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/vecmat"
)

// ErrCoincident is returned by GeographicToHorizontal when the target and
// the observer are the same point.
var ErrCoincident = errors.New("target coincides with observer")

// ObservedPosition is the place of a target as seen by an observer.
type ObservedPosition struct {
	// Horizontal is the observed (refracted) altitude and azimuth
	Horizontal HorizontalCoordinates

	// HourAngle in hours (-12 to +12), Declination in degrees
	HourAngle   float64
	Declination float64

	// RightAscension is the CIO-based right ascension in hours
	RightAscension float64

	// EquationOfOrigins is ERA-GST in hours
	EquationOfOrigins float64

	// Status is the advisory status of the reduction (0 or +1 for a
	// dubious date)
	Status status.Code
}

// ApparentRA returns the equinox-based right ascension in hours.
func (p ObservedPosition) ApparentRA() float64 {
	return NormalizeRA(p.RightAscension - p.EquationOfOrigins)
}

func observedPosition(ob astrometry.Observed, eo float64, code status.Code) ObservedPosition {
	return ObservedPosition{
		Horizontal:        ToHorizontalDegrees(math.Pi/2-ob.ZenithDist, ob.Azimuth),
		HourAngle:         vecmat.NormalizeAngleSigned(ob.HourAngle) / HoursToRadians,
		Declination:       ob.Declination * RadiansToDegrees,
		RightAscension:    NormalizeRA(ob.RA / HoursToRadians),
		EquationOfOrigins: eo / HoursToRadians,
		Status:            code,
	}
}

// Reducer selects the precession-nutation model and the Earth ephemeris
// used by the facade.
type Reducer struct {
	Model     orientation.Model
	Ephemeris ephemeris.Source
}

// Default is the IAU 2006/2000A reducer on the analytical ephemeris.
var Default = Reducer{Model: orientation.IAU2006A, Ephemeris: ephemeris.Default}

// NewReducer returns a reducer for the named model, such as "IAU2006A".
func NewReducer(model string) (Reducer, error) {
	m, err := orientation.ParseModel(model)
	if err != nil {
		return Reducer{}, fmt.Errorf("failed to create reducer: %w", err)
	}
	return Reducer{Model: m, Ephemeris: ephemeris.Default}, nil
}

// Context builds the astrometry context for an observer and an instant.
// It can be reused for every target at that instant. The equation of the
// origins is returned in radians.
func (r Reducer) Context(obs Observer, t time.Time) (astrometry.Context, float64, status.Code, error) {
	utc1, utc2, err := SplitJulianDate(t)
	if err != nil {
		return astrometry.Context{}, 0, 0, err
	}
	c, eo, code := astrometry.BuildObservedWith(r.Model, r.Ephemeris, utc1, utc2, obs.EOP.DUT1, obs.Site())
	if err := status.Check("BuildObserved", code, "unacceptable date or model"); err != nil {
		return astrometry.Context{}, 0, 0, fmt.Errorf("failed to prepare reduction for %s: %w", obs.Name, err)
	}
	return c, eo, code, nil
}

// ObservedPlace reduces a catalog star to its observed place.
func (r Reducer) ObservedPlace(star CatalogStar, obs Observer, t time.Time) (ObservedPosition, error) {
	c, eo, code, err := r.Context(obs, t)
	if err != nil {
		return ObservedPosition{}, fmt.Errorf("failed to compute observed place of %s: %w", star.Name, err)
	}
	return ReduceStar(star, &c, eo, code), nil
}

// CatalogPlace converts an observed altitude and azimuth to the ICRS
// astrometric place.
func (r Reducer) CatalogPlace(h HorizontalCoordinates, obs Observer, t time.Time) (EquatorialCoordinates, error) {
	c, _, _, err := r.Context(obs, t)
	if err != nil {
		return EquatorialCoordinates{}, fmt.Errorf("failed to compute catalog place: %w", err)
	}
	alt, az := h.ToRadians()
	ri, di, code := astrometry.ObservedToCIRSQuick(astrometry.Azimuth, az, math.Pi/2-alt, &c)
	if err := status.Check("ObservedToCIRS", code, ""); err != nil {
		return EquatorialCoordinates{}, fmt.Errorf("failed to compute catalog place: %w", err)
	}
	rc, dc := astrometry.CIRSToCatalogQuick(ri, di, &c)
	return ToEquatorialDegrees(rc, dc), nil
}

// ReduceStar transforms a star with a prepared context, as returned by
// Reducer.Context for the same instant and observer.
func ReduceStar(star CatalogStar, c *astrometry.Context, eo float64, code status.Code) ObservedPosition {
	ri, di := astrometry.CatalogToCIRSQuick(star.Star(), c)
	return observedPosition(astrometry.CIRSToObservedQuick(ri, di, c), eo, code)
}

// ObservedPlace reduces a catalog star to its observed place with the
// default reducer.
func ObservedPlace(star CatalogStar, obs Observer, t time.Time) (ObservedPosition, error) {
	return Default.ObservedPlace(star, obs, t)
}

// CatalogPlace converts an observed altitude and azimuth to the ICRS
// astrometric place with the default reducer.
func CatalogPlace(h HorizontalCoordinates, obs Observer, t time.Time) (EquatorialCoordinates, error) {
	return Default.CatalogPlace(h, obs, t)
}

// EquatorialToHorizontal converts an ICRS position of a distant object with
// no proper motion to observed altitude and azimuth.
func EquatorialToHorizontal(eq EquatorialCoordinates, obs Observer, t time.Time) (HorizontalCoordinates, error) {
	p, err := ObservedPlace(CatalogStar{RightAscension: eq.RightAscension, Declination: eq.Declination}, obs, t)
	if err != nil {
		return HorizontalCoordinates{}, err
	}
	return p.Horizontal, nil
}

// GeographicToHorizontal returns the altitude and azimuth of a terrestrial
// target as seen from the observer's location, together with the straight
// line range in meters. Both positions are on the WGS84 ellipsoid, so the
// Earth's curvature is included. There is no refraction.
func GeographicToHorizontal(target, observer Geographic) (HorizontalCoordinates, float64, error) {
	olat, olon, oh := observer.ToRadians()
	tlat, tlon, th := target.ToRadians()

	po, code := geodesy.GeodeticToGeocentric(geodesy.WGS84, olon, olat, oh)
	if err := status.Check("GeodeticToGeocentric", code, "observer"); err != nil {
		return HorizontalCoordinates{}, 0, fmt.Errorf("failed to locate observer: %w", err)
	}
	pt, code := geodesy.GeodeticToGeocentric(geodesy.WGS84, tlon, tlat, th)
	if err := status.Check("GeodeticToGeocentric", code, "target"); err != nil {
		return HorizontalCoordinates{}, 0, fmt.Errorf("failed to locate target: %w", err)
	}

	rng, d := vecmat.Normalize(vecmat.Sub(pt, po))
	if rng == 0 {
		return HorizontalCoordinates{}, 0, ErrCoincident
	}

	// Local east, north and up at the observer.
	sphi, cphi := math.Sincos(olat)
	slam, clam := math.Sincos(olon)
	east := vecmat.Dot(d, vecmat.Vector3{-slam, clam, 0})
	north := vecmat.Dot(d, vecmat.Vector3{-sphi * clam, -sphi * slam, cphi})
	up := vecmat.Dot(d, vecmat.Vector3{cphi * clam, cphi * slam, sphi})

	var az float64
	if east != 0 || north != 0 {
		az = math.Atan2(east, north)
	}
	alt := math.Atan2(up, math.Hypot(east, north))
	return ToHorizontalDegrees(alt, az), rng, nil
}
