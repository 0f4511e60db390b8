// Package compare builds a side-by-side view of two batsmen.
package compare

import (
	"fmt"

	"github.com/okian/cricanalytics/internal/domain/batting"
	"github.com/okian/cricanalytics/internal/domain/model"
	"github.com/okian/cricanalytics/internal/domain/types"
)

const minPlayers = 2

// Metric names in display order.
const (
	MetricRuns       = "Runs"
	MetricBalls      = "Balls"
	MetricStrikeRate = "Strike Rate"
	MetricAverage    = "Average"
)

// Metric is one comparison row; Values follow Comparison.Players.
type Metric struct {
	Name   string               `json:"metric"`
	Values [2]types.NullFloat64 `json:"values"`
}

// Comparison holds two players' batting figures side by side.
type Comparison struct {
	Players [2]string `json:"players"`
	Metrics []Metric  `json:"metrics"`
}

// New compares p1 and p2 using precomputed batting rows.
func New(stats []model.BattingStats, p1, p2 string) (Comparison, error) {
	if len(stats) < minPlayers {
		return Comparison{}, ErrNotEnoughPlayers
	}
	if p1 == p2 {
		return Comparison{}, ErrSamePlayer
	}
	s1, ok := batting.Find(stats, p1)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, p1)
	}
	s2, ok := batting.Find(stats, p2)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, p2)
	}

	return Comparison{
		Players: [2]string{p1, p2},
		Metrics: []Metric{
			{Name: MetricRuns, Values: [2]types.NullFloat64{types.Some(float64(s1.Runs)), types.Some(float64(s2.Runs))}},
			{Name: MetricBalls, Values: [2]types.NullFloat64{types.Some(float64(s1.Balls)), types.Some(float64(s2.Balls))}},
			{Name: MetricStrikeRate, Values: [2]types.NullFloat64{types.Some(s1.StrikeRate), types.Some(s2.StrikeRate)}},
			{Name: MetricAverage, Values: [2]types.NullFloat64{s1.Average, s2.Average}},
		},
	}, nil
}

// DefaultPair returns the first two players in row order.
func DefaultPair(stats []model.BattingStats) (string, string, error) {
	if len(stats) < minPlayers {
		return "", "", ErrNotEnoughPlayers
	}
	return stats[0].Batsman, stats[1].Batsman, nil
}

// Metric looks up a row by name.
func (c Comparison) Metric(name string) (Metric, bool) {
	for _, m := range c.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}
