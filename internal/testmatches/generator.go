// Package testmatches writes synthetic ball-by-ball match files for tests
// and demos.
package testmatches

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Odds for one simulated ball.
const (
	wicketChance = 0.05
	extrasChance = 0.07
	ballsPerOver = 6
)

var (
	teams  = [2]string{"Harbour City", "Northfield"} //nolint:gochecknoglobals // fixture data
	squads = [2][]string{                             //nolint:gochecknoglobals // fixture data
		{"R Kapoor", "J Mendis", "T Okafor", "S Varga", "L Haddad", "M Brandt", "P Nair"},
		{"D Quinn", "A Farouk", "K Lindqvist", "E Moreau", "B Adeyemi", "H Tanaka", "C Silva"},
	}
	runWeights = []struct{ runs, weight int }{ //nolint:gochecknoglobals // fixture data
		{0, 38}, {1, 30}, {2, 10}, {3, 2}, {4, 13}, {6, 7},
	}
	wicketKinds = []string{"bowled", "caught", "lbw", "run out", "stumped"} //nolint:gochecknoglobals // fixture data
	venues      = []string{"Riverside Oval", "Cedar Park", "Old Mill Ground"}  //nolint:gochecknoglobals // fixture data
)

// corruptContent fails YAML parsing.
const corruptContent = "innings: [\n  - {unclosed\n"

// Generate writes cfg.Matches match files and cfg.CorruptFiles broken files
// into cfg.Dir and returns their paths in write order.
func Generate(ctx context.Context, cfg Config) ([]string, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", cfg.Dir, err)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)) //nolint:gosec // deterministic fixtures
	paths := make([]string, 0, cfg.Matches+cfg.CorruptFiles)

	for i := 1; i <= cfg.Matches; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		data, err := yaml.Marshal(simulateMatch(rng, cfg.Overs))
		if err != nil {
			return paths, fmt.Errorf("encode match %d: %w", i, err)
		}
		path := filepath.Join(cfg.Dir, fmt.Sprintf("match_%03d.yaml", i))
		if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // fixture files are world-readable
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	for i := 1; i <= cfg.CorruptFiles; i++ {
		path := filepath.Join(cfg.Dir, fmt.Sprintf("corrupt_%02d.yaml", i))
		if err := os.WriteFile(path, []byte(corruptContent), 0o644); err != nil { //nolint:gosec // fixture files are world-readable
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func simulateMatch(rng *rand.Rand, overs int) matchFile {
	first := rng.IntN(2)
	order := [2]int{first, 1 - first}

	m := matchFile{
		Meta: meta{DataVersion: "0.9", Revision: 1},
		Info: info{Teams: []string{teams[0], teams[1]}, Venue: venues[rng.IntN(len(venues))]},
	}
	labels := [2]string{"1st innings", "2nd innings"}
	for i, bat := range order {
		bowl := 1 - bat
		m.Innings = append(m.Innings, map[string]inning{
			labels[i]: simulateInnings(rng, teams[bat], squads[bat], squads[bowl], overs),
		})
	}
	return m
}

func simulateInnings(rng *rand.Rand, team string, batters, bowlers []string, overs int) inning {
	inn := inning{Team: team}
	striker, nonStriker, next := 0, 1, 2

	for over := 0; over < overs; over++ {
		bowler := bowlers[len(bowlers)-1-over%3]
		for ball := 1; ball <= ballsPerOver; ball++ {
			d := delivery{Batsman: batters[striker], NonStriker: batters[nonStriker], Bowler: bowler}
			switch r := rng.Float64(); {
			case r < wicketChance:
				d.Wicket = &wicket{Kind: wicketKinds[rng.IntN(len(wicketKinds))], PlayerOut: batters[striker]}
			case r < wicketChance+extrasChance:
				d.Runs.Extras = 1 + rng.IntN(2)
			default:
				d.Runs.Batsman = pickRuns(rng)
			}
			d.Runs.Total = d.Runs.Batsman + d.Runs.Extras

			label := fmt.Sprintf("%d.%d", over, ball)
			inn.Deliveries = append(inn.Deliveries, map[string]delivery{label: d})

			if d.Wicket != nil {
				if next >= len(batters) {
					return inn
				}
				striker = next
				next++
			} else if d.Runs.Batsman%2 == 1 {
				striker, nonStriker = nonStriker, striker
			}
		}
		striker, nonStriker = nonStriker, striker
	}
	return inn
}

func pickRuns(rng *rand.Rand) int {
	total := 0
	for _, w := range runWeights {
		total += w.weight
	}
	n := rng.IntN(total)
	for _, w := range runWeights {
		if n < w.weight {
			return w.runs
		}
		n -= w.weight
	}
	return 0
}
