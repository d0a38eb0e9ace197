package analytics

import (
	"testing"

	"github.com/averku/chartle/internal/model"
)

func TestSummarizeConservation(t *testing.T) {
	facts := []model.Fact{
		fact(1, "@a", 3, true),
		fact(1, "@b", 3, false),
		fact(1, "@c", 0, false),
		fact(2, "@a", 1, true),
	}
	m := Summarize(facts)
	if m.TotalGames != 4 || m.CrownWins != 2 {
		t.Fatalf("unexpected totals: %+v", m)
	}
	sum := 0
	for _, b := range model.GuessBuckets {
		sum += m.PerRound[b]
		if m.PerRoundCrown[b] > m.PerRound[b] {
			t.Fatalf("crown count exceeds round count in bucket %s: %+v", b, m)
		}
	}
	if sum != m.TotalGames {
		t.Fatalf("per-round counts (%d) must sum to total games (%d)", sum, m.TotalGames)
	}
	if m.PerRound["3"] != 2 || m.PerRound["X"] != 1 || m.PerRoundCrown["3"] != 1 {
		t.Fatalf("unexpected buckets: %+v", m)
	}
}

func TestSummarizePlayer(t *testing.T) {
	facts := []model.Fact{
		fact(1, "@a", 3, true),
		fact(1, "@b", 2, false),
		fact(2, "@a", 0, false),
	}
	m := SummarizePlayer(facts, "@a")
	if m.TotalGames != 2 || m.CrownWins != 1 {
		t.Fatalf("unexpected player metrics: %+v", m)
	}
	empty := SummarizePlayer(facts, "@nobody")
	if empty.TotalGames != 0 || empty.CrownWins != 0 {
		t.Fatalf("missing player should yield zero metrics: %+v", empty)
	}
	if empty.PerRound == nil || len(empty.PerRound) != len(model.GuessBuckets) {
		t.Fatalf("zero metrics should still carry buckets: %+v", empty)
	}
}

func TestScoring(t *testing.T) {
	wants := map[string]int{"1": 21, "2": 20, "3": 18, "4": 15, "5": 11, "6": 6, "X": 1, "?": 1}
	for bucket, want := range wants {
		if got := PointValue(bucket); got != want {
			t.Fatalf("PointValue(%q) = %d, want %d", bucket, got, want)
		}
	}
	m := Summarize([]model.Fact{
		fact(1, "@a", 1, false),
		fact(1, "@b", 6, false),
		fact(1, "@c", 0, false),
	})
	if got := TotalPoints(m); got != 21+6+1 {
		t.Fatalf("TotalPoints = %d, want %d", got, 21+6+1)
	}
}
