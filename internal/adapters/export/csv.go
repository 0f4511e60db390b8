package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteCSV writes one CSV file per table into dir and returns the paths.
func WriteCSV(dir string, tables []Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrWriteExport, dir, err)
	}
	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, strings.ToLower(t.Name)+".csv")
		if err := writeCSVFile(path, t); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSVFile(path string, t Table) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteExport, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrWriteExport, path, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("%w: header of %s: %w", ErrWriteExport, path, err)
	}
	record := make([]string, len(t.Header))
	for i, row := range t.Rows {
		for j, v := range row {
			record[j] = csvValue(v)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: record %d of %s: %w", ErrWriteExport, i, path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteExport, path, err)
	}
	return nil
}

func csvValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
