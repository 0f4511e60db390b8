package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/okian/cricanalytics/internal/domain/analysis"
	"github.com/okian/cricanalytics/internal/domain/compare"
	"github.com/okian/cricanalytics/internal/domain/model"
)

const (
	chartWidth     = "900px"
	chartHeight    = "450px"
	topRunsLimit   = 15
	baseSymbolSize = 8
	symbolPerMatch = 4
	maxSymbolSize  = 48
)

// Dashboard writes an HTML page with the top run scorers, the impact
// scatter and, when c is not nil, the two-player comparison.
func Dashboard(w io.Writer, r *analysis.Report, c *compare.Comparison) error {
	page := components.NewPage()
	page.PageTitle = "Cricket Player Impact & Consistency"
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(topRunsChart(r))
	if c != nil {
		page.AddCharts(comparisonChart(*c))
	}
	page.AddCharts(impactScatter(r.Impact))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

func initOpts() opts.Initialization {
	return opts.Initialization{Width: chartWidth, Height: chartHeight}
}

func topRunsChart(r *analysis.Report) *charts.Bar {
	stats := topByRuns(r.Batting, topRunsLimit)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithTitleOpts(opts.Title{Title: "Top Run Scorers", Subtitle: Summary(r)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Runs"}),
	)

	labels := make([]string, len(stats))
	data := make([]opts.BarData, len(stats))
	for i, s := range stats {
		labels[i] = name(s.Batsman)
		data[i] = opts.BarData{Value: s.Runs}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Runs", data)
	return bar
}

func comparisonChart(c compare.Comparison) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s vs %s", name(c.Players[0]), name(c.Players[1]))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(c.Metrics))
	series := [2][]opts.BarData{make([]opts.BarData, len(c.Metrics)), make([]opts.BarData, len(c.Metrics))}
	for i, m := range c.Metrics {
		labels[i] = m.Name
		for p := range series {
			var v any
			if m.Values[p].Valid {
				v = m.Values[p].Value
			}
			series[p][i] = opts.BarData{Value: v}
		}
	}
	bar.SetXAxis(labels)
	bar.AddSeries(name(c.Players[0]), series[0])
	bar.AddSeries(name(c.Players[1]), series[1])
	return bar
}

// impactScatter plots average contribution against consistency; the symbol
// grows with matches played. Rows with an undefined value are left out.
func impactScatter(rows []model.Impact) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts()),
		charts.WithTitleOpts(opts.Title{Title: "Impact vs Consistency"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{c}"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Avg Contribution %", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Consistency Index", Type: "value"}),
	)

	data := make([]opts.ScatterData, 0, len(rows))
	for _, r := range rows {
		if !r.AvgContribution.Valid || !r.Consistency.Valid {
			continue
		}
		data = append(data, opts.ScatterData{
			Name:       name(r.Batsman),
			Value:      []any{r.AvgContribution.Value, r.Consistency.Value, name(r.Batsman)},
			SymbolSize: symbolSize(r.Matches),
		})
	}
	scatter.AddSeries("Batsmen", data)
	return scatter
}

func symbolSize(matches int) int {
	size := baseSymbolSize + matches*symbolPerMatch
	if size > maxSymbolSize {
		return maxSymbolSize
	}
	return size
}

// topByRuns returns up to n rows ordered by runs, highest first. Ties keep
// batting order.
func topByRuns(stats []model.BattingStats, n int) []model.BattingStats {
	out := make([]model.BattingStats, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Runs > out[j].Runs })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
