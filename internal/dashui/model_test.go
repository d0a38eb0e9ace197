package dashui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/averku/chartle/internal/analytics"
	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

func wordleTable(t *testing.T) *dataset.Table {
	t.Helper()
	csv := "1/6,2/6,3/6,4/6,5/6,6/6,X/6,\U0001F451,\U0001F451 Round\n" +
		"--,@alice,--,@bob,--,--,@carol,@alice,2/6\n" +
		"@bob,--,--,--,--,--,--,@bob,1/6\n"
	table, err := dataset.Parse(strings.NewReader(csv), "test.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func TestNewModelWordle(t *testing.T) {
	m := NewModel(wordleTable(t), model.ViewConfig{})
	if m.schema != model.SchemaWordle {
		t.Fatalf("expected wordle schema, got %v", m.schema)
	}
	if m.cfg.Preset != analytics.PresetRoundDistribution {
		t.Fatalf("expected default preset, got %q", m.cfg.Preset)
	}
	if m.cfg.Limit != model.DefaultLimit {
		t.Fatalf("expected default limit, got %d", m.cfg.Limit)
	}
	if len(m.facts) != 4 {
		t.Fatalf("expected 4 facts, got %d", len(m.facts))
	}
	if len(m.players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(m.players))
	}
}

func TestViewAfterResize(t *testing.T) {
	m := NewModel(wordleTable(t), model.ViewConfig{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(*Model)
	view := m.View()
	if view == "" {
		t.Fatal("expected non-empty view after resize")
	}
	if !strings.Contains(view, "Chart") || !strings.Contains(view, "Leaderboard") {
		t.Fatalf("expected tab labels in view")
	}
	if !strings.Contains(view, "preset=round_distribution") {
		t.Fatalf("expected settings summary in view")
	}
}

func TestPresetCycling(t *testing.T) {
	m := NewModel(wordleTable(t), model.ViewConfig{})
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = updated.(*Model)
	if m.cfg.Preset != analytics.PresetPlayersPerDay {
		t.Fatalf("expected next preset, got %q", m.cfg.Preset)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'P'}})
	m = updated.(*Model)
	if m.cfg.Preset != analytics.PresetRoundDistribution {
		t.Fatalf("expected previous preset, got %q", m.cfg.Preset)
	}
}

func TestNextPresetWraps(t *testing.T) {
	last := analytics.Presets[len(analytics.Presets)-1]
	if got := nextPreset(last, 1); got != analytics.Presets[0] {
		t.Fatalf("expected wrap to first preset, got %q", got)
	}
	if got := nextPreset(analytics.Presets[0], -1); got != last {
		t.Fatalf("expected wrap to last preset, got %q", got)
	}
}

func TestDaysWindowSteps(t *testing.T) {
	if got := nextDaysWindow(0); got != daysStep {
		t.Fatalf("expected %d, got %d", daysStep, got)
	}
	if got := prevDaysWindow(daysStep); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := prevDaysWindow(0); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
}

func TestGenericTableChart(t *testing.T) {
	csv := "city,sales\na,10\nb,20\n"
	table, err := dataset.Parse(strings.NewReader(csv), "sales.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	m := NewModel(table, model.ViewConfig{XColumn: "city", YColumn: "sales", Mode: model.AggSum})
	if m.schema != model.SchemaGeneric {
		t.Fatalf("expected generic schema, got %v", m.schema)
	}
	content := m.renderChartTab(80)
	if !strings.Contains(content, "SUM of sales by city") {
		t.Fatalf("expected aggregate chart title, got:\n%s", content)
	}
}

func TestGenericRawPoints(t *testing.T) {
	csv := "city,sales\na,10\nb,20\n"
	table, err := dataset.Parse(strings.NewReader(csv), "sales.csv")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	m := NewModel(table, model.ViewConfig{XColumn: "city", YColumn: "sales", Mode: model.AggNone})
	content := m.renderChartTab(80)
	for _, want := range []string{"city", "sales", "a", "10", "b", "20"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in raw point listing, got:\n%s", want, content)
		}
	}
	if strings.Contains(content, "█") {
		t.Fatalf("ungrouped mode should not draw bars, got:\n%s", content)
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("hello world", 8); got != "hello..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateLine("short", 10); got != "short" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}

func TestFitLines(t *testing.T) {
	out := fitLines("a\nb", 3, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Fatalf("expected padded line of width 3, got %q", line)
		}
	}
}
