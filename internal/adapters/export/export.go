package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/okian/cricanalytics/internal/domain/analysis"
)

// Write exports r in format. For csv, out is a directory; for xlsx it is
// the workbook path, and a directory gets "cricanalytics.xlsx" appended.
func Write(format, out string, r *analysis.Report) ([]string, error) {
	tables := Tables(r)
	switch strings.ToLower(format) {
	case FormatCSV:
		return WriteCSV(out, tables)
	case FormatXLSX:
		if !strings.EqualFold(filepath.Ext(out), ".xlsx") {
			out = filepath.Join(out, "cricanalytics.xlsx")
		}
		if err := WriteXLSX(out, tables); err != nil {
			return nil, err
		}
		return []string{out}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
