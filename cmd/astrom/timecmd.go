package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/unklstewy/astrom/pkg/status"
	"github.com/unklstewy/astrom/pkg/timescale"
)

var allScales = []timescale.Scale{
	timescale.UTC, timescale.TAI, timescale.TT, timescale.TDB,
	timescale.TCB, timescale.TCG, timescale.UT1,
}

// instantRow is one line of the time command output.
type instantRow struct {
	Scale    timescale.Scale
	Instant  timescale.Instant
	Calendar timescale.DateTime
}

// allInstants expresses a UTC instant in every supported scale. TT-UT1 is
// derived from the leap second table and DUT1.
func allInstants(table *timescale.LeapSecondTable, t time.Time, dut1 float64) ([]instantRow, status.Code, error) {
	t = t.UTC()
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	u1, u2, code := table.DateTimeToJD(timescale.UTC, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), sec)
	if err := status.Check("DateTimeToJD", code, "bad UTC date"); err != nil {
		return nil, 0, fmt.Errorf("failed to convert %s: %w", t.Format(time.RFC3339), err)
	}
	utc := timescale.NewInstant(timescale.UTC, u1, u2)

	off := timescale.Offsets{DUT1: dut1}
	tt, c := utc.ConvertWith(table, timescale.TT, off)
	code = status.Worst(code, c)
	ut1, c := utc.ConvertWith(table, timescale.UT1, off)
	code = status.Worst(code, c)
	if err := status.Check("Convert", code, "UTC to TT or UT1"); err != nil {
		return nil, 0, fmt.Errorf("failed to convert %s: %w", t.Format(time.RFC3339), err)
	}
	off.DeltaT = ((tt.JD1 - ut1.JD1) + (tt.JD2 - ut1.JD2)) * 86400

	rows := make([]instantRow, 0, len(allScales))
	for _, s := range allScales {
		in, c := utc.ConvertWith(table, s, off)
		if err := status.Check("Convert", c, "UTC to "+s.String()); err != nil {
			return nil, 0, fmt.Errorf("failed to convert to %s: %w", s, err)
		}
		code = status.Worst(code, c)

		dt, c := table.JDToDateTime(s, 3, in.JD1, in.JD2)
		if err := status.Check("JDToDateTime", c, s.String()); err != nil {
			return nil, 0, fmt.Errorf("failed to format %s: %w", s, err)
		}
		rows = append(rows, instantRow{Scale: s, Instant: in, Calendar: dt})
	}
	return rows, code, nil
}

func formatDateTime(dt timescale.DateTime) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Fraction)
}

func (a *app) timeCmd() *cobra.Command {
	var utc string

	cmd := &cobra.Command{
		Use:   "time",
		Short: "Express a UTC instant in every time scale",
		Long: `
Prints the instant as a Julian Date, a Modified Julian Date and a calendar
date in UTC, TAI, TT, TDB, TCB, TCG and UT1. Leap seconds come from the
built-in table extended by the leap_seconds section of the configuration.
UT1 uses the configured DUT1.

Example:
  astrom time --utc 2000-01-01T11:58:55.816Z
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseUTC(utc)
			if err != nil {
				return err
			}
			table, err := a.cfg.LeapSeconds.Table()
			if err != nil {
				return err
			}

			rows, code, err := allInstants(table, t, a.cfg.EarthOrientation.DUT1)
			if err != nil {
				return err
			}
			warnAdvisory("time", code)

			out := make([][]string, 0, len(rows)+2)
			var tt timescale.Instant
			for _, r := range rows {
				if r.Scale == timescale.TT {
					tt = r.Instant
				}
				out = append(out, []string{
					r.Scale.String(),
					fmt.Sprintf("%.8f", r.Instant.JD()),
					fmt.Sprintf("%.8f", (r.Instant.JD1-2400000.5)+r.Instant.JD2),
					formatDateTime(r.Calendar),
				})
			}
			renderTable(cmd.OutOrStdout(), "Time scales", []string{"Scale", "JD", "MJD", "Calendar"}, out)
			renderFields(cmd.OutOrStdout(), "Epochs (TT)", [][2]string{
				{"Julian epoch", fmt.Sprintf("J%.9f", timescale.JulianEpoch(tt.JD1, tt.JD2))},
				{"Besselian epoch", fmt.Sprintf("B%.9f", timescale.BesselianEpoch(tt.JD1, tt.JD2))},
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&utc, "utc", "", "Instant in RFC 3339 (default now)")
	return cmd
}
