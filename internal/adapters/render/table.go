// Package render formats reports for terminals (go-pretty tables) and
// browsers (go-echarts pages).
package render

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/okian/cricanalytics/internal/domain/analysis"
	"github.com/okian/cricanalytics/internal/domain/compare"
	"github.com/okian/cricanalytics/internal/domain/model"
	"github.com/okian/cricanalytics/internal/domain/types"
)

// NoData is shown when a run produced no deliveries.
const NoData = "No valid match data found in the folder."

const blankName = "(no name)"

// Summary renders the headline line for a report.
func Summary(r *analysis.Report) string {
	if r.Empty() {
		return NoData
	}
	s := r.Summary()
	return fmt.Sprintf("Loaded %s deliveries from %s matches.",
		humanize.Comma(int64(s.Deliveries)), humanize.Comma(int64(s.Matches)))
}

// BattingTable renders batting rows. maxRows <= 0 shows every row.
func BattingTable(stats []model.BattingStats, maxRows int) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Batsman", "Runs", "Balls", "Outs", "Strike Rate", "Average"})
	shown := limit(len(stats), maxRows)
	for _, s := range stats[:shown] {
		tbl.AppendRow(table.Row{
			name(s.Batsman),
			humanize.Comma(int64(s.Runs)),
			humanize.Comma(int64(s.Balls)),
			s.Outs,
			strconv.FormatFloat(s.StrikeRate, 'f', 2, 64),
			s.Average.String(),
		})
	}
	alignNumbers(tbl, 2, 6)
	tbl.AppendFooter(footer(shown, len(stats)))
	return tbl.Render()
}

// ImpactTable renders impact rows in their given order.
func ImpactTable(rows []model.Impact, maxRows int) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Batsman", "Avg Contribution %", "Max Contribution %", "Matches", "Consistency Index"})
	shown := limit(len(rows), maxRows)
	for _, r := range rows[:shown] {
		tbl.AppendRow(table.Row{
			name(r.Batsman),
			r.AvgContribution.String(),
			r.MaxContribution.String(),
			r.Matches,
			r.Consistency.String(),
		})
	}
	alignNumbers(tbl, 2, 5)
	tbl.AppendFooter(footer(shown, len(rows)))
	return tbl.Render()
}

// ComparisonTable renders one metric per row with a column per player.
func ComparisonTable(c compare.Comparison) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Metric", name(c.Players[0]), name(c.Players[1])})
	for _, m := range c.Metrics {
		tbl.AppendRow(table.Row{m.Name, metricValue(m.Name, m.Values[0]), metricValue(m.Name, m.Values[1])})
	}
	alignNumbers(tbl, 2, 3)
	return tbl.Render()
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	return tbl
}

func alignNumbers(tbl table.Writer, from, to int) {
	cfg := make([]table.ColumnConfig, 0, to-from+1)
	for n := from; n <= to; n++ {
		cfg = append(cfg, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	tbl.SetColumnConfigs(cfg)
}

func footer(shown, total int) table.Row {
	if shown < total {
		return table.Row{fmt.Sprintf("Showing %d of %d", shown, total)}
	}
	return table.Row{fmt.Sprintf("Total: %d", total)}
}

func limit(n, maxRows int) int {
	if maxRows > 0 && n > maxRows {
		return maxRows
	}
	return n
}

func name(s string) string {
	if s == "" {
		return blankName
	}
	return s
}

func metricValue(metric string, v types.NullFloat64) string {
	if !v.Valid {
		return v.String()
	}
	switch metric {
	case compare.MetricRuns, compare.MetricBalls:
		return humanize.Comma(int64(v.Value))
	default:
		return v.String()
	}
}
