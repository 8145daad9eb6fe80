package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unklstewy/astrom/pkg/coordinates"
	"github.com/unklstewy/astrom/pkg/geodesy"
	"github.com/unklstewy/astrom/pkg/status"
)

func (a *app) geodeticCmd() *cobra.Command {
	var (
		loc       coordinates.Geographic
		ellipsoid string
		look      bool
	)

	cmd := &cobra.Command{
		Use:   "geodetic",
		Short: "Convert geodetic coordinates to geocentric",
		Long: `
Converts a geodetic latitude, longitude and height to geocentric X, Y, Z
on the chosen reference ellipsoid. With --look the point is also given as
azimuth, elevation and range from the configured observer (WGS84).

Example:
  astrom geodetic --lat 51.4769 --lon -0.0005 --height 46 --ellipsoid GRS80
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ellipsoid == "" {
				ellipsoid = a.cfg.EarthOrientation.Ellipsoid
			}
			e, err := geodesy.ParseEllipsoid(ellipsoid)
			if err != nil {
				return err
			}
			eq, f, _ := e.Parameters()

			lat, lon, h := loc.ToRadians()
			xyz, code := geodesy.GeodeticToGeocentric(e, lon, lat, h)
			if err := status.Check("GeodeticToGeocentric", code, "illegal case"); err != nil {
				return fmt.Errorf("failed to convert position: %w", err)
			}

			fields := [][2]string{
				{"Ellipsoid", fmt.Sprintf("%s (a = %.3f m, 1/f = %.9f)", e, eq, 1/f)},
				{"X", fmt.Sprintf("%.3f m", xyz[0])},
				{"Y", fmt.Sprintf("%.3f m", xyz[1])},
				{"Z", fmt.Sprintf("%.3f m", xyz[2])},
			}

			if look {
				site := a.cfg.Site()
				hz, rng, err := coordinates.GeographicToHorizontal(loc, site.Location)
				if err != nil {
					return err
				}
				fields = append(fields,
					[2]string{"Azimuth from " + site.Name, deg(hz.Azimuth)},
					[2]string{"Elevation from " + site.Name, deg(hz.Altitude)},
					[2]string{"Range from " + site.Name, fmt.Sprintf("%.3f m", rng)},
				)
			}

			renderFields(cmd.OutOrStdout(), "Geocentric position", fields)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&loc.Latitude, "lat", 0, "Geodetic latitude in degrees")
	fl.Float64Var(&loc.Longitude, "lon", 0, "Longitude in degrees, east positive")
	fl.Float64Var(&loc.Altitude, "height", 0, "Height above the ellipsoid in meters")
	fl.StringVar(&ellipsoid, "ellipsoid", "", "Reference ellipsoid: WGS84, GRS80 or WGS72 (default from configuration)")
	fl.BoolVar(&look, "look", false, "Also give azimuth, elevation and range from the configured observer")
	cmd.MarkFlagRequired("lat")
	cmd.MarkFlagRequired("lon")
	return cmd
}
