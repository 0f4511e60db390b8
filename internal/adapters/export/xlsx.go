package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes every table as a sheet of one workbook at path.
func WriteXLSX(path string, tables []Table) (err error) {
	if len(tables) == 0 {
		return fmt.Errorf("%w: no tables", ErrWriteExport)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %w", ErrWriteExport, dir, err)
		}
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close workbook: %w", ErrWriteExport, cerr)
		}
	}()

	defaultSheet := f.GetSheetName(0)
	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				return fmt.Errorf("%w: sheet %s: %w", ErrWriteExport, t.Name, err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("%w: sheet %s: %w", ErrWriteExport, t.Name, err)
		}
		if err := writeSheet(f, t); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrWriteExport, path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, t Table) error {
	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := setRow(f, t.Name, 1, header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, t.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, n int, values []any) error {
	axis, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("%w: row %d: %w", ErrWriteExport, n, err)
	}
	if err := f.SetSheetRow(sheet, axis, &values); err != nil {
		return fmt.Errorf("%w: %s row %d: %w", ErrWriteExport, sheet, n, err)
	}
	return nil
}
