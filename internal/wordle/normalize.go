package wordle

import (
	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

// Normalize expands a Wordle summary table into tidy facts: one fact per
// (row, guess column, handle) occurrence. Buckets with no handles emit
// nothing; a handle repeated within a row yields one fact per occurrence.
func Normalize(t *dataset.Table) []model.Fact {
	if t.Empty() {
		return nil
	}
	dateCol := DetectDateColumn(t.Columns)

	var out []model.Fact
	for _, row := range t.Rows {
		day := ResolveDay(row, row.Index, dateCol)
		crowns := crownSet(crownHandles(row, t.Columns))
		round := crownRound(row, t.Columns)

		for i, col := range GuessColumns {
			solved := col != "X/6"
			guesses := 0
			if solved {
				guesses = i + 1
			}
			for _, player := range ParseHandles(row.Cell(col)) {
				_, isCrown := crowns[player]
				out = append(out, model.Fact{
					Day:        day,
					Player:     player,
					Guesses:    guesses,
					Solved:     solved,
					IsCrown:    isCrown,
					CrownRound: round,
					SourceRow:  row.Index,
				})
			}
		}
	}
	return out
}

func crownSet(handles []string) map[string]struct{} {
	set := make(map[string]struct{}, len(handles))
	for _, h := range handles {
		set[h] = struct{}{}
	}
	return set
}

// Players returns the distinct player handles in first-seen order.
func Players(facts []model.Fact) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, f := range facts {
		if _, ok := seen[f.Player]; ok {
			continue
		}
		seen[f.Player] = struct{}{}
		out = append(out, f.Player)
	}
	return out
}
