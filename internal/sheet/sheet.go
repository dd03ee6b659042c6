// Package sheet reads and writes the tabular name lists the pipeline works
// on. Input is one CSV with a header row; output is the same table with
// extra result columns, split into batch files of a configurable size.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rajeev-Jha-RJ/namelisttranslator/internal/metrics"
	"github.com/samber/lo"
)

// Table is an in-memory spreadsheet: a header row plus data rows. Rows are
// normalized to header width on read, so cell access by column index is safe.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Read loads a CSV file with a header row.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are normalized below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: file has no header row", path)
	}

	headers := records[0]
	rows := lo.Map(records[1:], func(row []string, _ int) []string {
		// Pad short rows and trim overlong ones so appended columns always
		// line up with their headers.
		for len(row) < len(headers) {
			row = append(row, "")
		}
		return row[:len(headers)]
	})

	return &Table{Headers: headers, Rows: rows}, nil
}

// ColumnIndex finds a header by name, case-insensitively.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found (have %s)", name, strings.Join(t.Headers, ", "))
}

// AppendColumn adds a named column; values must cover every row.
func (t *Table) AppendColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}
	t.Headers = append(t.Headers, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// WriteBatches writes the table into dir, split into files of batchSize
// rows named like base_001.csv. batchSize <= 0 writes a single file. The
// header row repeats in every batch so each file stands alone. Returns the
// paths written.
func WriteBatches(dir, base string, t *Table, batchSize int) ([]string, error) {
	if batchSize <= 0 || batchSize >= len(t.Rows) {
		path := filepath.Join(dir, base+".csv")
		if err := writeFile(path, t.Headers, t.Rows); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var paths []string
	for i, chunk := range lo.Chunk(t.Rows, batchSize) {
		path := filepath.Join(dir, fmt.Sprintf("%s_%03d.csv", base, i+1))
		if err := writeFile(path, t.Headers, chunk); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, headers []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing rows to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	metrics.BatchFilesWritten.Inc()
	return nil
}
