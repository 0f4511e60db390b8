// Package model contains domain models passed between layers.
package model

import (
	"sort"

	"github.com/okian/cricanalytics/internal/domain/types"
)

// Delivery is one ball bowled, flattened out of a match file.
type Delivery struct {
	MatchID     string `json:"match"`   // source file name
	Inning      string `json:"inning"`  // innings key, e.g. "1st innings"
	Ball        string `json:"ball"`    // raw ball key as recorded, e.g. "0.1"
	Batsman     string `json:"batsman"` // may be empty
	Bowler      string `json:"bowler"`  // may be empty
	RunsBatsman int    `json:"runs"`
	Extras      int    `json:"extras"`
	TotalRuns   int    `json:"total"` // as recorded; not recomputed
	IsWicket    bool   `json:"wicket"`
}

// Deliveries is the flat event table in insertion order.
type Deliveries []Delivery

// Len returns the number of rows.
func (d Deliveries) Len() int { return len(d) }

// Empty reports whether the table has no rows.
func (d Deliveries) Empty() bool { return len(d) == 0 }

// Matches returns the distinct match ids, sorted.
func (d Deliveries) Matches() []string {
	return distinct(d, func(x Delivery) string { return x.MatchID })
}

// Batsmen returns the distinct batsman labels, sorted. The empty label is
// included when present.
func (d Deliveries) Batsmen() []string {
	return distinct(d, func(x Delivery) string { return x.Batsman })
}

func distinct(d Deliveries, key func(Delivery) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, x := range d {
		k := key(x)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// BattingStats is one batsman's summary across all loaded deliveries.
type BattingStats struct {
	Batsman    string            `json:"batsman"`
	Runs       int               `json:"runs"`
	Balls      int               `json:"balls"`
	Outs       int               `json:"outs"`
	StrikeRate float64           `json:"strike_rate"`
	Average    types.NullFloat64 `json:"average"` // null when Outs == 0
}

// Contribution is a batsman's share of one match's total runs.
type Contribution struct {
	MatchID    string            `json:"match"`
	Batsman    string            `json:"batsman"`
	Runs       int               `json:"runs"`
	MatchTotal int               `json:"match_total"`
	Percentage types.NullFloat64 `json:"contribution_pct"` // null when MatchTotal == 0
}

// Impact is a batsman's cross-match contribution profile.
type Impact struct {
	Batsman         string            `json:"batsman"`
	AvgContribution types.NullFloat64 `json:"avg_contribution_pct"`
	MaxContribution types.NullFloat64 `json:"max_contribution_pct"`
	Matches         int               `json:"matches"`
	Consistency     types.NullFloat64 `json:"consistency_index"`
}
