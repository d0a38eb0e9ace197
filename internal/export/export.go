// Package export writes and reads the normalized-facts interchange CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

// Header is the fixed interchange column order.
var Header = []string{"dayIndex", "player", "guesses", "solved", "isCrown", "crownRound"}

// Record is one parsed interchange row.
type Record struct {
	DayIndex   int
	Player     string
	Guesses    int
	Solved     bool
	IsCrown    bool
	CrownRound string
}

// WriteFacts emits facts in the fixed column order. Fields are wrapped in
// double quotes only when they contain a comma, quote, or newline, with
// embedded quotes doubled. Lines are joined by newlines with no trailing
// newline after the last record.
func WriteFacts(w io.Writer, facts []model.Fact) error {
	if _, err := io.WriteString(w, strings.Join(Header, ",")); err != nil {
		return err
	}
	for _, f := range facts {
		fields := []string{
			strconv.Itoa(f.Day.Index),
			f.Player,
			guessesField(f),
			strconv.FormatBool(f.Solved),
			strconv.FormatBool(f.IsCrown),
			f.CrownRound,
		}
		for i, v := range fields {
			fields[i] = quoteField(v)
		}
		if _, err := io.WriteString(w, "\n"+strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return nil
}

func guessesField(f model.Fact) string {
	if !f.Solved {
		return ""
	}
	return strconv.Itoa(f.Guesses)
}

func quoteField(v string) string {
	if !strings.ContainsAny(v, "\",\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// AsTable converts facts into a table in the interchange column layout,
// for previewing datasets that no longer have their source CSV.
func AsTable(name string, facts []model.Fact) *dataset.Table {
	t := &dataset.Table{Name: name, Columns: append([]string(nil), Header...)}
	for i, f := range facts {
		cells := map[string]string{
			"dayIndex":   strconv.Itoa(f.Day.Index),
			"player":     f.Player,
			"guesses":    guessesField(f),
			"solved":     strconv.FormatBool(f.Solved),
			"isCrown":    strconv.FormatBool(f.IsCrown),
			"crownRound": f.CrownRound,
		}
		t.Rows = append(t.Rows, dataset.Row{Index: i + 1, Cells: cells})
	}
	return t
}

// ReadRecords parses interchange CSV content back into records.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, want := range Header {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected header column %d: %q", i, header[i])
		}
	}

	var out []Record
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read record %d: %w", len(out)+1, err)
		}
		dayIndex, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("record %d: bad day index %q", len(out)+1, rec[0])
		}
		solved, err := strconv.ParseBool(rec[3])
		if err != nil {
			return nil, fmt.Errorf("record %d: bad solved flag %q", len(out)+1, rec[3])
		}
		isCrown, err := strconv.ParseBool(rec[4])
		if err != nil {
			return nil, fmt.Errorf("record %d: bad crown flag %q", len(out)+1, rec[4])
		}
		guesses := 0
		if rec[2] != "" {
			guesses, err = strconv.Atoi(rec[2])
			if err != nil {
				return nil, fmt.Errorf("record %d: bad guesses %q", len(out)+1, rec[2])
			}
		}
		out = append(out, Record{
			DayIndex:   dayIndex,
			Player:     rec[1],
			Guesses:    guesses,
			Solved:     solved,
			IsCrown:    isCrown,
			CrownRound: rec[5],
		})
	}
	return out, nil
}
