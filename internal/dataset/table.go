// Package dataset loads CSV tables and provides row-level helpers.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Row is one source row: string cells keyed by column name plus the
// stable 1-based position the row had in the file.
type Row struct {
	Index int
	Cells map[string]string
}

// Cell returns the value for a column, empty when absent.
func (r Row) Cell(col string) string {
	return r.Cells[col]
}

// Table is an ordered CSV table. Columns preserve file order.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Empty reports whether the table has zero data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Load reads a CSV file from disk.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	return Parse(f, filepath.Base(path))
}

// Parse reads CSV content into a Table. The first record is the header;
// short records are padded, long ones keep only the header's columns.
func Parse(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{Name: name}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, 0, len(header))
	for _, h := range header {
		columns = append(columns, strings.TrimSpace(h))
	}

	t := &Table{Name: name, Columns: columns}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		if blankRecord(rec) {
			continue
		}
		cells := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				cells[col] = rec[i]
			} else {
				cells[col] = ""
			}
		}
		t.Rows = append(t.Rows, Row{Index: len(t.Rows) + 1, Cells: cells})
	}
	return t, nil
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// FilterRows returns the rows whose serialized form contains the filter
// text, case-insensitively. An empty filter keeps every row.
func (t *Table) FilterRows(filter string) []Row {
	needle := strings.ToLower(strings.TrimSpace(filter))
	if needle == "" {
		return t.Rows
	}
	out := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if strings.Contains(strings.ToLower(t.serializeRow(row)), needle) {
			out = append(out, row)
		}
	}
	return out
}

// serializeRow builds a stable textual form of a row: all cells in column
// order, JSON-style, so filtering sees column names and values alike.
func (t *Table) serializeRow(row Row) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, col := range t.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(col))
		b.WriteByte(':')
		b.WriteString(strconv.Quote(row.Cells[col]))
	}
	b.WriteByte('}')
	return b.String()
}

// ParseNumber coerces a cell to a float, tolerating thousands separators,
// percent signs and non-breaking spaces. Returns false for anything that
// does not resolve to a finite number.
func ParseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
