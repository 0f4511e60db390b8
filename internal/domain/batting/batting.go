// Package batting computes per-batsman summary statistics from the flat
// delivery table.
package batting

import (
	"sort"

	"github.com/okian/cricanalytics/internal/domain/model"
	"github.com/okian/cricanalytics/internal/domain/types"
)

const percent = 100

type tally struct {
	runs  int
	balls int
	outs  int
}

// Compute groups deliveries by batsman and derives runs, balls faced, outs,
// strike rate and average. Rows are ordered by batsman name. The empty
// batsman label is a group like any other. An empty table yields nil.
func Compute(d model.Deliveries) []model.BattingStats {
	if d.Empty() {
		return nil
	}

	tallies := make(map[string]*tally)
	for _, x := range d {
		t, ok := tallies[x.Batsman]
		if !ok {
			t = &tally{}
			tallies[x.Batsman] = t
		}
		t.runs += x.RunsBatsman
		t.balls++
		if x.IsWicket {
			t.outs++
		}
	}

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]model.BattingStats, 0, len(names))
	for _, name := range names {
		t := tallies[name]
		out = append(out, model.BattingStats{
			Batsman:    name,
			Runs:       t.runs,
			Balls:      t.balls,
			Outs:       t.outs,
			StrikeRate: types.Round2(float64(t.runs) / float64(t.balls) * percent),
			Average:    types.Ratio(float64(t.runs), float64(t.outs)).Round2(),
		})
	}
	return out
}

// Find returns the row for name.
func Find(stats []model.BattingStats, name string) (model.BattingStats, bool) {
	for _, s := range stats {
		if s.Batsman == name {
			return s, true
		}
	}
	return model.BattingStats{}, false
}

// Players lists the batsmen in row order.
func Players(stats []model.BattingStats) []string {
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.Batsman
	}
	return out
}
