// Package export writes a report's delivery, batting, and impact tables to
// CSV files or one XLSX workbook.
package export

import (
	"github.com/okian/cricanalytics/internal/domain/analysis"
	"github.com/okian/cricanalytics/internal/domain/types"
)

// Formats accepted by Write.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Table names, used as CSV file stems and XLSX sheet names.
const (
	TableDeliveries = "Deliveries"
	TableBatting    = "Batting"
	TableImpact     = "Impact"
)

// Table is a header plus typed rows. A nil cell is an undefined value.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Tables returns the three report tables in export order.
func Tables(r *analysis.Report) []Table {
	return []Table{deliveriesTable(r), battingTable(r), impactTable(r)}
}

func deliveriesTable(r *analysis.Report) Table {
	t := Table{
		Name:   TableDeliveries,
		Header: []string{"match", "inning", "ball", "batsman", "bowler", "runs", "extras", "total", "wicket"},
		Rows:   make([][]any, 0, r.Deliveries.Len()),
	}
	for _, d := range r.Deliveries {
		wicket := 0
		if d.IsWicket {
			wicket = 1
		}
		t.Rows = append(t.Rows, []any{
			d.MatchID, d.Inning, d.Ball, d.Batsman, d.Bowler,
			d.RunsBatsman, d.Extras, d.TotalRuns, wicket,
		})
	}
	return t
}

func battingTable(r *analysis.Report) Table {
	t := Table{
		Name:   TableBatting,
		Header: []string{"Batsman", "Runs", "Balls", "Outs", "Strike Rate", "Average"},
		Rows:   make([][]any, 0, len(r.Batting)),
	}
	for _, s := range r.Batting {
		t.Rows = append(t.Rows, []any{s.Batsman, s.Runs, s.Balls, s.Outs, s.StrikeRate, cell(s.Average)})
	}
	return t
}

func impactTable(r *analysis.Report) Table {
	t := Table{
		Name: TableImpact,
		Header: []string{
			"Batsman", "Avg_Contribution_Percentage", "Max_Contribution_Percentage",
			"Matches", "Consistency Index",
		},
		Rows: make([][]any, 0, len(r.Impact)),
	}
	for _, i := range r.Impact {
		t.Rows = append(t.Rows, []any{
			i.Batsman, cell(i.AvgContribution), cell(i.MaxContribution), i.Matches, cell(i.Consistency),
		})
	}
	return t
}

func cell(v types.NullFloat64) any {
	if !v.Valid {
		return nil
	}
	return v.Value
}
