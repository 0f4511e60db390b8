package testmatches

import "errors"

// Defaults applied by Generate for zero Config fields.
const (
	DefaultMatches = 3
	DefaultOvers   = 5
)

// ErrInvalidConfig is returned for negative counts or an empty Dir.
var ErrInvalidConfig = errors.New("invalid generator config")

// Config controls synthetic match generation.
type Config struct {
	Dir          string // Output directory, created if missing
	Matches      int    // Number of well-formed match files
	Overs        int    // Overs per innings before the innings closes
	Seed         uint64 // Same seed, same files
	CorruptFiles int    // Number of extra files that fail to parse
}

func (c Config) withDefaults() (Config, error) {
	if c.Dir == "" || c.Matches < 0 || c.Overs < 0 || c.CorruptFiles < 0 {
		return c, ErrInvalidConfig
	}
	if c.Matches == 0 && c.CorruptFiles == 0 {
		c.Matches = DefaultMatches
	}
	if c.Overs == 0 {
		c.Overs = DefaultOvers
	}
	return c, nil
}

// match file shape, in key order.

type matchFile struct {
	Meta    meta                `yaml:"meta"`
	Info    info                `yaml:"info"`
	Innings []map[string]inning `yaml:"innings"`
}

type meta struct {
	DataVersion string `yaml:"data_version"`
	Revision    int    `yaml:"revision"`
}

type info struct {
	Teams []string `yaml:"teams"`
	Venue string   `yaml:"venue"`
}

type inning struct {
	Team       string                `yaml:"team"`
	Deliveries []map[string]delivery `yaml:"deliveries"`
}

type delivery struct {
	Batsman    string  `yaml:"batsman"`
	NonStriker string  `yaml:"non_striker"`
	Bowler     string  `yaml:"bowler"`
	Runs       runs    `yaml:"runs"`
	Wicket     *wicket `yaml:"wicket,omitempty"`
}

type runs struct {
	Batsman int `yaml:"batsman"`
	Extras  int `yaml:"extras"`
	Total   int `yaml:"total"`
}

type wicket struct {
	Kind      string `yaml:"kind"`
	PlayerOut string `yaml:"player_out"`
}
