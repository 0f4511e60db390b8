// Package analysis bundles one pipeline run: the flat delivery table, the
// per-file warnings, and both aggregate views.
package analysis

import (
	"github.com/google/uuid"

	"github.com/okian/cricanalytics/internal/adapters/matchfile"
	"github.com/okian/cricanalytics/internal/domain/batting"
	"github.com/okian/cricanalytics/internal/domain/compare"
	"github.com/okian/cricanalytics/internal/domain/impact"
	"github.com/okian/cricanalytics/internal/domain/model"
)

// Report is the immutable result of one run over a directory.
type Report struct {
	RunID          uuid.UUID
	Directory      string
	DirectoryFound bool
	Files          []matchfile.FileOutcome
	Deliveries     model.Deliveries
	Warnings       []matchfile.Warning
	Batting        []model.BattingStats
	Impact         []model.Impact
}

// Summary is the headline of a report.
type Summary struct {
	RunID          string `json:"run_id"`
	Directory      string `json:"directory"`
	DirectoryFound bool   `json:"directory_found"`
	Deliveries     int    `json:"deliveries"`
	Matches        int    `json:"matches"`
	Batsmen        int    `json:"batsmen"`
	Files          int    `json:"files"`
	Warnings       int    `json:"warnings"`
	Empty          bool   `json:"empty"`
}

// Build computes both aggregate views for a load result.
func Build(res matchfile.Result) *Report {
	return New(res, batting.Compute(res.Deliveries), impact.Compute(res.Deliveries))
}

// New assembles a report from views computed elsewhere.
func New(res matchfile.Result, stats []model.BattingStats, rows []model.Impact) *Report {
	return &Report{
		RunID:          uuid.New(),
		Directory:      res.Directory,
		DirectoryFound: res.DirectoryFound,
		Files:          res.Files,
		Deliveries:     res.Deliveries,
		Warnings:       res.Warnings,
		Batting:        stats,
		Impact:         rows,
	}
}

// Empty reports whether no delivery was loaded.
func (r *Report) Empty() bool { return r.Deliveries.Empty() }

// Summary returns counts for the report.
func (r *Report) Summary() Summary {
	return Summary{
		RunID:          r.RunID.String(),
		Directory:      r.Directory,
		DirectoryFound: r.DirectoryFound,
		Deliveries:     r.Deliveries.Len(),
		Matches:        len(r.Deliveries.Matches()),
		Batsmen:        len(r.Batting),
		Files:          len(r.Files),
		Warnings:       len(r.Warnings),
		Empty:          r.Empty(),
	}
}

// Players lists the batsmen in batting order.
func (r *Report) Players() []string { return batting.Players(r.Batting) }

// ImpactFor selects impact rows for names, keeping the table order.
func (r *Report) ImpactFor(names ...string) []model.Impact {
	return impact.Filter(r.Impact, names...)
}

// Compare builds a side-by-side comparison of two batsmen.
func (r *Report) Compare(p1, p2 string) (compare.Comparison, error) {
	return compare.New(r.Batting, p1, p2)
}

// DefaultPair returns the first two batsmen.
func (r *Report) DefaultPair() (string, string, error) {
	return compare.DefaultPair(r.Batting)
}
