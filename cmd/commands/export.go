package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/okian/cricanalytics/internal/adapters/export"
	"github.com/okian/cricanalytics/internal/adapters/render"
)

func newExportCommand(a *app) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the delivery, batting and impact tables to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := a.analyze(cmd.Context())
			if report.Empty() {
				a.notice(render.NoData)
			}
			paths, err := export.Write(format, out, report)
			if err != nil {
				return err
			}
			ok := color.New(color.FgGreen)
			for _, p := range paths {
				_, _ = ok.Fprintf(a.out, "wrote %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "export", "output directory (csv) or workbook path (xlsx)")
	return cmd
}
