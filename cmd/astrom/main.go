// Command astrom reduces star positions for an observing site and converts
// between time scales and site coordinate systems.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/unklstewy/astrom/pkg/config"
	"github.com/unklstewy/astrom/pkg/status"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("astrom: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by the sub-commands.
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "astrom",
		Short: "Fundamental astronomy reductions for an observing site",
		Long: `
astrom transforms catalog star positions to the place observed from a site,
converts instants between UTC, TAI, TT, TDB, TCB, TCG and UT1, and converts
geodetic site coordinates to geocentric.

The site, weather and Earth orientation parameters come from the
configuration file. DUT1 and polar motion can be refreshed from the
environment with ASTROM_DUT1, ASTROM_XP and ASTROM_YP.
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "configs/config.json", "Path to configuration file")

	root.AddCommand(
		a.observeCmd(),
		a.sunCmd(),
		a.reduceCmd(),
		a.siteCmd(),
		a.starCmd(),
		a.statusCmd(),
		a.timeCmd(),
		a.geodeticCmd(),
	)
	return root
}

func (a *app) loadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration %s: %w", a.configPath, err)
	}
	a.cfg = cfg
	return nil
}

// parseUTC parses an RFC 3339 instant; empty means now.
func parseUTC(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --utc %q: %w", s, err)
	}
	return t.UTC(), nil
}

// warnAdvisory logs a positive status code. The result is still used.
func warnAdvisory(what string, code status.Code) {
	if code > 0 {
		log.Printf("warning: %s: status %d, date outside the reliable range of the models", what, code)
	}
}
