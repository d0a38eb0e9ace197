package htmlchart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/averku/chartle/internal/model"
)

func TestWritePageBar(t *testing.T) {
	s := model.Series{
		Title:  "Round distribution",
		Labels: []string{"1", "2", "X"},
		Values: []float64{2, 4, 1},
		YLabel: "Games",
	}
	var buf bytes.Buffer
	if err := WritePage(&buf, "chartle", BuildBar(s)); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<html>") {
		t.Fatalf("expected html document, got %q", out[:min(len(out), 80)])
	}
	if !strings.Contains(out, "Round distribution") {
		t.Fatalf("expected chart title in page")
	}
}

func TestWritePageMultipleCharts(t *testing.T) {
	bar := BuildBar(model.Series{Title: "Bars", Labels: []string{"a"}, Values: []float64{1}})
	line := BuildLine(model.Series{Title: "Lines", Labels: []string{"a", "b"}, Values: []float64{1, 2}})
	scatter := BuildScatter(model.PointSeries{
		Title:  "Dots",
		XLabel: "x",
		YLabel: "y",
		Points: []model.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
	})

	var buf bytes.Buffer
	if err := WritePage(&buf, "chartle", bar, line, scatter); err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Bars", "Lines", "Dots"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
}

func TestWritePageEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePage(&buf, "chartle"); err == nil {
		t.Fatal("expected error for empty chart list")
	}
}

func TestBuildChartDispatch(t *testing.T) {
	s := model.Series{Title: "Dispatch", Labels: []string{"a"}, Values: []float64{1}}
	for _, kind := range []string{"line", "bar"} {
		var buf bytes.Buffer
		if err := WritePage(&buf, "chartle", BuildChart(s, kind)); err != nil {
			t.Fatalf("WritePage(%s) failed: %v", kind, err)
		}
		if !strings.Contains(buf.String(), "Dispatch") {
			t.Fatalf("expected title for %s chart", kind)
		}
	}
}
