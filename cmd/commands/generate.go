package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/okian/cricanalytics/internal/testmatches"
)

func newGenerateCommand(a *app) *cobra.Command {
	cfg := testmatches.Config{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic match files into --dir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Dir = a.cfg.DataDir
			paths, err := testmatches.Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Generated %s files in %s\n", humanize.Comma(int64(len(paths))), cfg.Dir)
			return nil
		},
	}
	cmd.Flags().IntVarP(&cfg.Matches, "matches", "n", testmatches.DefaultMatches, "well-formed match files")
	cmd.Flags().IntVar(&cfg.Overs, "overs", testmatches.DefaultOvers, "overs per innings")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&cfg.CorruptFiles, "corrupt", 0, "extra files that fail to parse")
	return cmd
}
