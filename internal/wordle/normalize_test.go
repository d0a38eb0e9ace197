package wordle

import (
	"strings"
	"testing"

	"github.com/averku/chartle/internal/dataset"
)

func parseTable(t *testing.T, csv string) *dataset.Table {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(csv), "test.csv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return table
}

func TestNormalizeExpandsHandles(t *testing.T) {
	csv := "👑 Round,👑,1/6,2/6,3/6,4/6,5/6,6/6,X/6\n" +
		`"2/6","@a @c",--,@a,"@b @b",--,--,--,@c` + "\n"
	table := parseTable(t, csv)
	facts := Normalize(table)

	if len(facts) != 4 {
		t.Fatalf("expected 4 facts, got %d", len(facts))
	}
	for _, f := range facts {
		if f.Solved != (f.Guesses != 0) {
			t.Fatalf("solved/guesses mismatch: %+v", f)
		}
		if f.Solved && (f.Guesses < 1 || f.Guesses > 6) {
			t.Fatalf("guesses out of range: %+v", f)
		}
		if f.CrownRound != "2/6" {
			t.Fatalf("unexpected crown round: %+v", f)
		}
		if f.SourceRow != 1 {
			t.Fatalf("unexpected source row: %+v", f)
		}
	}

	if facts[0].Player != "@a" || !facts[0].IsCrown || facts[0].Guesses != 2 {
		t.Fatalf("unexpected first fact: %+v", facts[0])
	}
	if facts[1].Player != "@b" || facts[1].IsCrown {
		t.Fatalf("duplicate handle should not be crowned: %+v", facts[1])
	}
	if facts[2].Player != "@b" {
		t.Fatalf("duplicate handle should emit twice: %+v", facts[2])
	}
	last := facts[3]
	if last.Player != "@c" || last.Solved || !last.IsCrown {
		t.Fatalf("unexpected unsolved fact: %+v", last)
	}
	if last.GuessBucket() != "X" {
		t.Fatalf("unsolved bucket should be X, got %q", last.GuessBucket())
	}
}

func TestNormalizeMojibakeCrownHeader(t *testing.T) {
	crown := "ðŸ‘‘"
	csv := crown + " Round," + crown + ",1/6,2/6,3/6,4/6,5/6,6/6,X/6\n" +
		"3/6,@a,--,--,@a,--,--,--,@b\n"
	facts := Normalize(parseTable(t, csv))
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if !facts[0].IsCrown || facts[0].CrownRound != "3/6" {
		t.Fatalf("crown not recognized under mangled header: %+v", facts[0])
	}
	if facts[1].IsCrown {
		t.Fatalf("non-crown player marked crowned: %+v", facts[1])
	}
}

func TestNormalizeFactCountInvariant(t *testing.T) {
	table, err := dataset.LoadSample()
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	want := 0
	for _, row := range table.Rows {
		for _, col := range GuessColumns {
			want += len(ParseHandles(row.Cell(col)))
		}
	}
	facts := Normalize(table)
	if len(facts) != want {
		t.Fatalf("expected %d facts, got %d", want, len(facts))
	}
}

func TestNormalizeEmptyTable(t *testing.T) {
	table := parseTable(t, "1/6,2/6,3/6,4/6,5/6,6/6,X/6\n")
	if got := Normalize(table); got != nil {
		t.Fatalf("empty table should normalize to nil, got %v", got)
	}
}

func TestNormalizeWithDateColumn(t *testing.T) {
	csv := "Date Posted,1/6,2/6,3/6,4/6,5/6,6/6,X/6\n" +
		"2024-05-10,@a,--,--,--,--,--,--\n" +
		"2024-05-10,--,@b,--,--,--,--,--\n" +
		"2024-05-11,--,--,@a,--,--,--,--\n"
	facts := Normalize(parseTable(t, csv))
	if len(facts) != 3 {
		t.Fatalf("expected 3 facts, got %d", len(facts))
	}
	if facts[0].Day.Key != facts[1].Day.Key {
		t.Fatalf("same date should share a day key: %+v vs %+v", facts[0].Day, facts[1].Day)
	}
	if facts[0].Day.Key == facts[2].Day.Key {
		t.Fatalf("different dates should not share a key: %+v", facts[2].Day)
	}
}

func TestPlayers(t *testing.T) {
	csv := "1/6,2/6,3/6,4/6,5/6,6/6,X/6\n" +
		"@a,@b,--,--,--,--,@a\n"
	players := Players(Normalize(parseTable(t, csv)))
	if len(players) != 2 || players[0] != "@a" || players[1] != "@b" {
		t.Fatalf("unexpected players: %v", players)
	}
}
