package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/okian/cricanalytics/internal/adapters/render"
	"github.com/okian/cricanalytics/internal/domain/compare"
)

// Messages for states that are reported rather than failed.
const (
	msgNeedTwoPlayers = "Need at least two players to compare."
	msgSamePlayer     = "Select two different players."
	msgNoImpact       = "No impact data for selected players."
)

// ErrCompareArgs is returned when compare gets exactly one name.
var ErrCompareArgs = errors.New("compare takes two player names or none")

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the load summary and the batting table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := a.analyze(cmd.Context())
			if report.Empty() {
				a.notice(render.NoData)
				return nil
			}
			fmt.Fprintln(a.out, render.Summary(report))
			fmt.Fprintln(a.out, render.BattingTable(report.Batting, a.cfg.MaxTableRows))
			return nil
		},
	}
}

func newImpactCommand(a *app) *cobra.Command {
	var players []string

	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Print contribution and consistency per batsman",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := a.analyze(cmd.Context())
			if report.Empty() {
				a.notice(render.NoData)
				return nil
			}
			rows := report.Impact
			if len(players) > 0 {
				rows = report.ImpactFor(players...)
				if len(rows) == 0 {
					a.notice(msgNoImpact)
					return nil
				}
			}
			fmt.Fprintln(a.out, render.ImpactTable(rows, a.cfg.MaxTableRows))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&players, "player", "p", nil, "only these batsmen (repeat or comma-separate)")
	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [P1 P2]",
		Short: "Compare two batsmen side by side",
		Long: `Compare two batsmen by runs, balls, strike rate and average.
Without names the first two batsmen are compared.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("%w, got %d", ErrCompareArgs, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.analyze(cmd.Context())
			if report.Empty() {
				a.notice(render.NoData)
				return nil
			}

			var p1, p2 string
			if len(args) == 2 {
				p1, p2 = args[0], args[1]
			} else {
				d1, d2, err := report.DefaultPair()
				if err != nil {
					a.notice(msgNeedTwoPlayers)
					return nil //nolint:nilerr // reported, not failed
				}
				p1, p2 = d1, d2
			}

			c, err := report.Compare(p1, p2)
			switch {
			case errors.Is(err, compare.ErrNotEnoughPlayers):
				a.notice(msgNeedTwoPlayers)
				return nil
			case errors.Is(err, compare.ErrSamePlayer):
				_, _ = color.New(color.FgYellow).Fprintln(a.out, msgSamePlayer)
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintln(a.out, render.ComparisonTable(c))
			rows := report.ImpactFor(p1, p2)
			if len(rows) == 0 {
				a.notice(msgNoImpact)
				return nil
			}
			fmt.Fprintln(a.out, render.ImpactTable(rows, 0))
			return nil
		},
	}
}
