package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unklstewy/astrom/internal/db"
)

func (a *app) siteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Manage stored observing sites",
	}

	var site db.Site
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Store a site, replacing one of the same name",
		Long: `
Stores a site. Weather and Earth orientation parameters not given on the
command line are taken from the configuration.

Example:
  astrom site add Paranal --lat -24.6272 --lon -70.4042 --height 2635 --pressure 743
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := db.SiteFromObserver(a.cfg.Site())
			f := cmd.Flags()
			for _, name := range weatherFlags {
				if !f.Changed(name) {
					*siteField(&site, name) = *siteField(&defaults, name)
				}
			}
			site.Name = args[0]
			if site.Latitude < -90 || site.Latitude > 90 || site.Longitude < -180 || site.Longitude > 180 {
				return fmt.Errorf("site %s: latitude or longitude out of range", site.Name)
			}

			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.NewSiteRepository(database).Upsert(ctx, &site); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored site %s (id %d)\n", site.Name, site.ID)
			return nil
		},
	}
	f := add.Flags()
	f.Float64Var(&site.Latitude, "lat", 0, "Geodetic latitude in degrees")
	f.Float64Var(&site.Longitude, "lon", 0, "Longitude in degrees, east positive")
	f.Float64Var(&site.ElevationMeters, "height", 0, "Height above the ellipsoid in meters")
	f.Float64Var(&site.PressureHPa, "pressure", 0, "Pressure in hPa (0 disables refraction)")
	f.Float64Var(&site.TemperatureC, "temperature", 0, "Temperature in Celsius")
	f.Float64Var(&site.RelativeHumidity, "humidity", 0, "Relative humidity, 0 to 1")
	f.Float64Var(&site.WavelengthMicron, "wavelength", 0, "Observing wavelength in micrometers")
	f.Float64Var(&site.DUT1, "dut1", 0, "UT1-UTC in seconds")
	f.Float64Var(&site.XP, "xp", 0, "Polar motion x in arcseconds")
	f.Float64Var(&site.YP, "yp", 0, "Polar motion y in arcseconds")
	add.MarkFlagRequired("lat")
	add.MarkFlagRequired("lon")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored sites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			sites, err := db.NewSiteRepository(database).List(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, len(sites))
			for i, s := range sites {
				rows[i] = []string{
					s.Name, deg(s.Latitude), deg(s.Longitude),
					fmt.Sprintf("%.1f m", s.ElevationMeters),
					fmt.Sprintf("%.1f hPa", s.PressureHPa),
					fmt.Sprintf("%+.4f s", s.DUT1),
				}
			}
			renderTable(cmd.OutOrStdout(), "Sites",
				[]string{"Name", "Latitude", "Longitude", "Height", "Pressure", "DUT1"}, rows)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a stored site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.NewSiteRepository(database).Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted site %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, list, del)
	return cmd
}

// weatherFlags are the site add flags that default to the configuration.
var weatherFlags = []string{"pressure", "temperature", "humidity", "wavelength", "dut1", "xp", "yp"}

// siteField returns the Site field behind a site add flag.
func siteField(s *db.Site, flag string) *float64 {
	switch flag {
	case "pressure":
		return &s.PressureHPa
	case "temperature":
		return &s.TemperatureC
	case "humidity":
		return &s.RelativeHumidity
	case "wavelength":
		return &s.WavelengthMicron
	case "dut1":
		return &s.DUT1
	case "xp":
		return &s.XP
	default:
		return &s.YP
	}
}

func (a *app) starCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "star",
		Short: "Manage the stored star catalog",
	}

	var (
		star db.Star
		mag  float64
	)
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Store a catalog star, replacing one of the same name",
		Long: `
Stores an ICRS catalog entry. Proper motion in right ascension includes
the cos(Dec) factor, as in Hipparcos and Gaia.

Example:
  astrom star add Vega --ra 18.6156489 --dec 38.7836889 --pmra 200.94 --pmdec 286.23 --parallax 130.23 --rv -13.5 --mag 0.03
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			star.Name = args[0]
			if star.RAHours < 0 || star.RAHours >= 24 || star.DecDegrees < -90 || star.DecDegrees > 90 {
				return fmt.Errorf("star %s: right ascension or declination out of range", star.Name)
			}
			if cmd.Flags().Changed("mag") {
				star.Magnitude.Float64, star.Magnitude.Valid = mag, true
			}

			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := db.NewStarRepository(database).Upsert(ctx, &star); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored star %s (id %d)\n", star.Name, star.ID)
			return nil
		},
	}
	f := add.Flags()
	f.Float64Var(&star.RAHours, "ra", 0, "ICRS right ascension in hours")
	f.Float64Var(&star.DecDegrees, "dec", 0, "ICRS declination in degrees")
	f.Float64Var(&star.PMRA, "pmra", 0, "Proper motion in RA times cos(Dec), mas/yr")
	f.Float64Var(&star.PMDec, "pmdec", 0, "Proper motion in Dec, mas/yr")
	f.Float64Var(&star.ParallaxMas, "parallax", 0, "Parallax in mas")
	f.Float64Var(&star.RadialVelocity, "rv", 0, "Radial velocity in km/s")
	f.Float64Var(&mag, "mag", 0, "Visual magnitude")
	add.MarkFlagRequired("ra")
	add.MarkFlagRequired("dec")

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog stars, brightest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			repo := db.NewStarRepository(database)
			total, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			stars, err := repo.List(ctx, limit)
			if err != nil {
				return err
			}
			rows := make([][]string, len(stars))
			for i, s := range stars {
				m := "-"
				if s.Magnitude.Valid {
					m = fmt.Sprintf("%.2f", s.Magnitude.Float64)
				}
				rows[i] = []string{s.Name, hours(s.RAHours), deg(s.DecDegrees), m}
			}
			renderTable(cmd.OutOrStdout(),
				fmt.Sprintf("Catalog (%d of %d)", len(stars), total),
				[]string{"Name", "RA", "Dec", "Mag"}, rows)
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 0, "Maximum number of stars (0 for all)")

	show := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one catalog star",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			s, err := db.NewStarRepository(database).GetByName(ctx, args[0])
			if err != nil {
				return err
			}
			renderFields(cmd.OutOrStdout(), s.Name, [][2]string{
				{"Right ascension", hours(s.RAHours)},
				{"Declination", deg(s.DecDegrees)},
				{"PM RA cos(Dec)", fmt.Sprintf("%.3f mas/yr", s.PMRA)},
				{"PM Dec", fmt.Sprintf("%.3f mas/yr", s.PMDec)},
				{"Parallax", fmt.Sprintf("%.3f mas", s.ParallaxMas)},
				{"Radial velocity", fmt.Sprintf("%.2f km/s", s.RadialVelocity)},
			})
			return nil
		},
	}

	cmd.AddCommand(add, list, show)
	return cmd
}
