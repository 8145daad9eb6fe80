package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unklstewy/astrom/pkg/coordinates"
)

func (a *app) sunCmd() *cobra.Command {
	var (
		utc     string
		alt, az float64
	)

	cmd := &cobra.Command{
		Use:   "sun",
		Short: "Observed place of the Sun and the solar safety zone of a pointing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseUTC(utc)
			if err != nil {
				return err
			}
			r, err := a.cfg.Reducer()
			if err != nil {
				return err
			}
			obs := a.cfg.Site()

			sp, err := r.SunPosition(obs, t)
			if err != nil {
				return err
			}

			fields := [][2]string{
				{"Azimuth", deg(sp.Azimuth)},
				{"Altitude", deg(sp.Altitude)},
				{"Above horizon", fmt.Sprint(sp.IsSunAboveHorizon())},
				{"Astrometric RA", hours(sp.Astrometric.RightAscension)},
				{"Astrometric Dec", deg(sp.Astrometric.Declination)},
				{"Distance", fmt.Sprintf("%.9f au", sp.DistanceAU)},
			}
			if cmd.Flags().Changed("alt") || cmd.Flags().Changed("az") {
				sep := sp.AngularSeparation(alt, az)
				zone := coordinates.GetSafetyZone(sep)
				z := zone.String()
				if zone >= coordinates.SafeZoneWarning {
					z = warnStyle.Render(z)
				}
				fields = append(fields,
					[2]string{"Separation from pointing", deg(sep)},
					[2]string{"Safety zone", z})
			}

			renderFields(cmd.OutOrStdout(),
				fmt.Sprintf("Sun from %s at %s", obs.Name, t.Format("2006-01-02 15:04:05 MST")),
				fields)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&utc, "utc", "", "Instant in RFC 3339 (default now)")
	f.Float64Var(&alt, "alt", 0, "Pointing altitude in degrees for the safety check")
	f.Float64Var(&az, "az", 0, "Pointing azimuth in degrees for the safety check")
	return cmd
}
