package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/unklstewy/astrom/internal/db"
	"github.com/unklstewy/astrom/pkg/coordinates"
	"github.com/unklstewy/astrom/pkg/tracking"
)

// openDB connects with retries and makes sure the schema exists.
func (a *app) openDB(ctx context.Context) (*db.DB, error) {
	database, err := db.ReconnectWithRetry(ctx, a.cfg.Database, 3, time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.InitSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

type reducedStar struct {
	Name     string
	Position coordinates.ObservedPosition
}

// reduceCatalog builds one context for the site and instant and reduces
// every star with it.
func reduceCatalog(r coordinates.Reducer, obs coordinates.Observer, stars []coordinates.CatalogStar, t time.Time) ([]reducedStar, error) {
	c, eo, code, err := r.Context(obs, t)
	if err != nil {
		return nil, err
	}
	warnAdvisory("reduce", code)

	out := make([]reducedStar, len(stars))
	for i, s := range stars {
		out[i] = reducedStar{Name: s.Name, Position: coordinates.ReduceStar(s, &c, eo, code)}
	}
	return out, nil
}

func (a *app) reduceCmd() *cobra.Command {
	var (
		siteName  string
		limit     int
		utc       string
		aboveOnly bool
	)

	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Observed places of the stored catalog from a stored site",
		Long: `
Loads a site and the star catalog from PostgreSQL and reduces every star to
its observed place at one instant. The star-independent quantities are
computed once.

Examples:
  astrom reduce --site Paranal --limit 50
  astrom reduce --site Paranal --above --utc 2024-06-20T03:00:00Z
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

			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if database != nil {
					database.Close()
				}
			}()

			obs := a.cfg.Site()
			if siteName != "" {
				site, err := db.NewSiteRepository(database).GetByName(ctx, siteName)
				if err != nil {
					return err
				}
				obs = site.Observer()
			}

			// The site lookup may have outlived a server restart.
			database, err = db.EnsureConnection(ctx, database, a.cfg.Database)
			if err != nil {
				return err
			}

			var rows []db.Star
			err = db.WithRetry(ctx, func() error {
				var err error
				rows, err = db.NewStarRepository(database).List(ctx, limit)
				return err
			}, 2, time.Second)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				log.Println("catalog is empty; add stars with 'astrom star add'")
				return nil
			}

			stars := make([]coordinates.CatalogStar, len(rows))
			for i, s := range rows {
				stars[i] = s.CatalogStar()
			}
			reduced, err := reduceCatalog(r, obs, stars, t)
			if err != nil {
				return err
			}

			limits := a.cfg.Telescope.Limits()
			var table [][]string
			for _, s := range reduced {
				p := s.Position
				if aboveOnly && p.Horizontal.Altitude <= 0 {
					continue
				}
				table = append(table, []string{
					s.Name,
					deg(p.Horizontal.Azimuth),
					deg(p.Horizontal.Altitude),
					hours(p.HourAngle),
					deg(p.Declination),
					tracking.TimeToTransit(p.HourAngle).Round(time.Minute).String(),
					tracking.CheckMeridianEvent(p, limits).String(),
				})
			}
			renderTable(cmd.OutOrStdout(),
				fmt.Sprintf("%d stars from %s at %s", len(table), obs.Name, t.Format("2006-01-02 15:04:05 MST")),
				[]string{"Star", "Azimuth", "Altitude", "Hour angle", "Declination", "Transit in", "Mount"},
				table)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&siteName, "site", "", "Stored site name (default the configured observer)")
	f.IntVar(&limit, "limit", 0, "Maximum number of stars, brightest first (0 for all)")
	f.StringVar(&utc, "utc", "", "Instant in RFC 3339 (default now)")
	f.BoolVar(&aboveOnly, "above", false, "Only list stars above the horizon")
	return cmd
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the database and count stored sites and stars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			database, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			if !db.HealthCheck(ctx, database) {
				return fmt.Errorf("database %s@%s failed the health check", a.cfg.Database.Database, a.cfg.Database.Host)
			}
			stats, err := database.GetStats(ctx)
			if err != nil {
				return err
			}
			renderFields(cmd.OutOrStdout(), "Database "+a.cfg.Database.Database, [][2]string{
				{"Sites", fmt.Sprint(stats["sites"])},
				{"Catalog stars", fmt.Sprint(stats["catalog_stars"])},
			})
			return nil
		},
	}
}
