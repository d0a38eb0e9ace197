package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

func salesTable(t *testing.T) *dataset.Table {
	t.Helper()
	csv := "city,sales\na,10\nb,20\n"
	table, err := dataset.Parse(strings.NewReader(csv), "sales.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func TestGenericReportAggregated(t *testing.T) {
	var buf bytes.Buffer
	cfg := model.ViewConfig{XColumn: "city", YColumn: "sales", Mode: model.AggSum}
	if err := writeGenericReport(&buf, salesTable(t), cfg); err != nil {
		t.Fatalf("writeGenericReport failed: %v", err)
	}
	if !strings.Contains(buf.String(), "SUM of sales by city") {
		t.Fatalf("expected aggregate title, got:\n%s", buf.String())
	}
}

func TestGenericReportUngrouped(t *testing.T) {
	var buf bytes.Buffer
	cfg := model.ViewConfig{XColumn: "city", YColumn: "sales", Mode: model.AggNone}
	if err := writeGenericReport(&buf, salesTable(t), cfg); err != nil {
		t.Fatalf("writeGenericReport failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"city", "sales", "a", "10", "b", "20"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in raw point listing, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "█") {
		t.Fatalf("ungrouped mode should not draw bars, got:\n%s", out)
	}
}
