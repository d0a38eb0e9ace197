package wordle

import (
	"strings"

	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

// GuessColumns are the seven per-round outcome columns, in round order.
var GuessColumns = []string{"1/6", "2/6", "3/6", "4/6", "5/6", "6/6", "X/6"}

// Crown column headers come from a bot export and show up with the emoji
// either intact or mangled by misreading its UTF-8 bytes as
// Windows-1252 or Latin-1.
var (
	crownAliases = []string{
		"\U0001f451",
		"\u00f0\u0178\u2018\u2018",
		"\u00f0\u009f\u0091\u0091",
		"crown",
	}
	crownRoundAliases = []string{
		"\U0001f451 Round",
		"\u00f0\u0178\u2018\u2018 Round",
		"\u00f0\u009f\u0091\u0091 Round",
		"crown round",
	}
)

const dateColumnName = "date posted"

// IsSummary reports whether the columns form a Wordle summary table:
// all seven guess columns present, order irrelevant.
func IsSummary(columns []string) bool {
	have := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		have[c] = struct{}{}
	}
	for _, want := range GuessColumns {
		if _, ok := have[want]; !ok {
			return false
		}
	}
	return true
}

// Classify maps a column list to a schema kind.
func Classify(columns []string) model.SchemaKind {
	if len(columns) == 0 {
		return model.SchemaNone
	}
	if IsSummary(columns) {
		return model.SchemaWordle
	}
	return model.SchemaGeneric
}

// DetectDateColumn returns the date column name, or "" when absent.
// Matching is case-insensitive on the literal header "date posted".
func DetectDateColumn(columns []string) string {
	for _, c := range columns {
		if strings.EqualFold(strings.TrimSpace(c), dateColumnName) {
			return c
		}
	}
	return ""
}

// findColumn resolves the first candidate present in the row, checked in
// priority order with exact names first, then a case-insensitive scan of
// the column list.
func findColumn(row dataset.Row, columns, candidates []string) (string, bool) {
	for _, cand := range candidates {
		if v, ok := row.Cells[cand]; ok {
			return v, true
		}
	}
	for _, cand := range candidates {
		for _, col := range columns {
			if strings.EqualFold(col, cand) {
				return row.Cells[col], true
			}
		}
	}
	return "", false
}

// crownHandles parses the row's crown cell into its handle set.
func crownHandles(row dataset.Row, columns []string) []string {
	v, ok := findColumn(row, columns, crownAliases)
	if !ok {
		return nil
	}
	return ParseHandles(v)
}

// crownRound returns the trimmed crown-round value, or "" when absent.
func crownRound(row dataset.Row, columns []string) string {
	v, ok := findColumn(row, columns, crownRoundAliases)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
