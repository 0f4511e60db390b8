// Package impact measures how much of each match's total a batsman scored
// and how evenly those contributions are spread across matches.
package impact

import (
	"sort"

	"github.com/okian/cricanalytics/internal/domain/model"
	"github.com/okian/cricanalytics/internal/domain/types"
)

const percent = 100

type matchBatsman struct {
	match   string
	batsman string
}

// MatchTotals sums the recorded total runs of every delivery per match.
func MatchTotals(d model.Deliveries) map[string]int {
	totals := make(map[string]int)
	for _, x := range d {
		totals[x.MatchID] += x.TotalRuns
	}
	return totals
}

// Contributions joins each (match, batsman) run tally with the match total.
// Rows are ordered by match then batsman. Percentage is null for a match
// whose total is zero.
func Contributions(d model.Deliveries) []model.Contribution {
	if d.Empty() {
		return nil
	}

	totals := MatchTotals(d)
	runs := make(map[matchBatsman]int)
	for _, x := range d {
		runs[matchBatsman{match: x.MatchID, batsman: x.Batsman}] += x.RunsBatsman
	}

	keys := make([]matchBatsman, 0, len(runs))
	for k := range runs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].match != keys[j].match {
			return keys[i].match < keys[j].match
		}
		return keys[i].batsman < keys[j].batsman
	})

	out := make([]model.Contribution, 0, len(keys))
	for _, k := range keys {
		total := totals[k.match]
		out = append(out, model.Contribution{
			MatchID:    k.match,
			Batsman:    k.batsman,
			Runs:       runs[k],
			MatchTotal: total,
			Percentage: types.Ratio(float64(runs[k])*percent, float64(total)).Round2(),
		})
	}
	return out
}

type profile struct {
	sum     float64
	defined int
	max     types.NullFloat64
	matches map[string]struct{}
}

// Compute aggregates contributions per batsman: mean and best percentage,
// distinct matches and the consistency index (mean / best). Undefined
// percentages are skipped by mean and max but the match still counts.
// Rows are sorted by average contribution, highest first, nulls last.
func Compute(d model.Deliveries) []model.Impact {
	contribs := Contributions(d)
	if len(contribs) == 0 {
		return nil
	}

	profiles := make(map[string]*profile)
	names := make([]string, 0)
	for _, c := range contribs {
		p, ok := profiles[c.Batsman]
		if !ok {
			p = &profile{matches: make(map[string]struct{})}
			profiles[c.Batsman] = p
			names = append(names, c.Batsman)
		}
		p.matches[c.MatchID] = struct{}{}
		v, ok := c.Percentage.Float64()
		if !ok {
			continue
		}
		p.sum += v
		p.defined++
		if !p.max.Valid || v > p.max.Value {
			p.max = types.Some(v)
		}
	}
	sort.Strings(names)

	out := make([]model.Impact, 0, len(names))
	for _, name := range names {
		p := profiles[name]
		avg := types.Ratio(p.sum, float64(p.defined))
		consistency := types.Null()
		if avg.Valid && p.max.Valid {
			consistency = types.Ratio(avg.Value, p.max.Value).Round2()
		}
		out = append(out, model.Impact{
			Batsman:         name,
			AvgContribution: avg.Round2(),
			MaxContribution: p.max.Round2(),
			Matches:         len(p.matches),
			Consistency:     consistency,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].AvgContribution, out[j].AvgContribution
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Valid && a.Value > b.Value
	})
	return out
}

// Filter selects the rows whose batsman is in names, keeping row order.
func Filter(rows []model.Impact, names ...string) []model.Impact {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}
	out := make([]model.Impact, 0, len(names))
	for _, r := range rows {
		if _, ok := want[r.Batsman]; ok {
			out = append(out, r)
		}
	}
	return out
}
