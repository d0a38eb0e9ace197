package wordle

import (
	"testing"

	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

func TestIsSummary(t *testing.T) {
	full := []string{"day streak", "👑 Round", "👑", "1/6", "2/6", "3/6", "4/6", "5/6", "6/6", "X/6"}
	if !IsSummary(full) {
		t.Fatal("expected summary columns to match")
	}
	if IsSummary([]string{"1/6", "2/6", "3/6"}) {
		t.Fatal("partial guess columns should not match")
	}
	if IsSummary([]string{"1/6", "2/6", "3/6", "4/6", "5/6", "6/6", "x/6"}) {
		t.Fatal("matching is case-sensitive")
	}
}

func TestClassify(t *testing.T) {
	if got := Classify(nil); got != model.SchemaNone {
		t.Fatalf("empty columns: got %v", got)
	}
	if got := Classify([]string{"a", "b"}); got != model.SchemaGeneric {
		t.Fatalf("generic columns: got %v", got)
	}
	if got := Classify(GuessColumns); got != model.SchemaWordle {
		t.Fatalf("guess columns: got %v", got)
	}
}

func TestDetectDateColumn(t *testing.T) {
	if got := DetectDateColumn([]string{"a", "Date Posted", "b"}); got != "Date Posted" {
		t.Fatalf("expected case-insensitive match, got %q", got)
	}
	if got := DetectDateColumn([]string{"a", "b"}); got != "" {
		t.Fatalf("expected no match, got %q", got)
	}
}

func TestFindColumnAliases(t *testing.T) {
	columns := []string{"CROWN", "Crown Round"}
	row := dataset.Row{Index: 1, Cells: map[string]string{
		"CROWN":       "@winner",
		"Crown Round": "3/6",
	}}
	if got := crownHandles(row, columns); len(got) != 1 || got[0] != "@winner" {
		t.Fatalf("unexpected crown handles: %v", got)
	}
	if got := crownRound(row, columns); got != "3/6" {
		t.Fatalf("unexpected crown round: %q", got)
	}
}

func TestFindColumnMojibake(t *testing.T) {
	for _, header := range []string{
		"\u00f0\u0178\u2018\u2018", // UTF-8 bytes read as Windows-1252
		"\u00f0\u009f\u0091\u0091", // UTF-8 bytes read as Latin-1
	} {
		columns := []string{header}
		row := dataset.Row{Index: 1, Cells: map[string]string{header: "@a @b"}}
		got := crownHandles(row, columns)
		if len(got) != 2 || got[0] != "@a" || got[1] != "@b" {
			t.Fatalf("header %q: unexpected crown handles: %v", header, got)
		}
	}
}
