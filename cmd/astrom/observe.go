package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/unklstewy/astrom/pkg/coordinates"
	"github.com/unklstewy/astrom/pkg/tracking"
)

func (a *app) observeCmd() *cobra.Command {
	var (
		star coordinates.CatalogStar
		utc  string
	)

	cmd := &cobra.Command{
		Use:   "observe",
		Short: "Observed place of a catalog star from the configured site",
		Long: `
Transforms an ICRS catalog position to the observed azimuth, altitude,
hour angle and declination at the configured site, including refraction
when the configured pressure is non-zero.

Examples:
  # Arcturus now
  astrom observe --name Arcturus --ra 14.26102 --dec 19.18241 --pmra -1093.45 --pmdec -1999.4 --parallax 88.83 --rv -5.19

  # A fixed instant
  astrom observe --ra 5.919529 --dec 7.407064 --utc 2024-01-15T21:30:00Z
`,
		Args: cobra.NoArgs,
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

			p, err := r.ObservedPlace(star, obs, t)
			if err != nil {
				return err
			}
			warnAdvisory("observe", p.Status)

			name := star.Name
			if name == "" {
				name = "target"
			}
			ev := tracking.CheckMeridianEvent(p, a.cfg.Telescope.Limits())
			fields := append(observedFields(p),
				[2]string{"Transit in", tracking.TimeToTransit(p.HourAngle).Round(time.Second).String()},
				[2]string{"Mount", tracking.RecommendTrackingStrategy(ev, p)},
			)
			renderFields(cmd.OutOrStdout(),
				fmt.Sprintf("%s from %s at %s", name, obs.Name, t.Format("2006-01-02 15:04:05.000 MST")),
				fields)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&star.Name, "name", "", "Target name")
	f.Float64Var(&star.RightAscension, "ra", 0, "ICRS right ascension in hours")
	f.Float64Var(&star.Declination, "dec", 0, "ICRS declination in degrees")
	f.Float64Var(&star.PMRA, "pmra", 0, "Proper motion in RA times cos(Dec), mas/yr")
	f.Float64Var(&star.PMDec, "pmdec", 0, "Proper motion in Dec, mas/yr")
	f.Float64Var(&star.Parallax, "parallax", 0, "Parallax in mas")
	f.Float64Var(&star.RadialVelocity, "rv", 0, "Radial velocity in km/s, receding positive")
	f.StringVar(&utc, "utc", "", "Instant in RFC 3339 (default now)")
	cmd.MarkFlagRequired("ra")
	cmd.MarkFlagRequired("dec")
	return cmd
}

func observedFields(p coordinates.ObservedPosition) [][2]string {
	return [][2]string{
		{"Azimuth", deg(p.Horizontal.Azimuth)},
		{"Altitude", deg(p.Horizontal.Altitude)},
		{"Hour angle", hours(p.HourAngle)},
		{"Declination", deg(p.Declination)},
		{"Right ascension (CIO)", hours(p.RightAscension)},
		{"Right ascension (equinox)", hours(p.ApparentRA())},
		{"Equation of the origins", hours(p.EquationOfOrigins)},
	}
}
