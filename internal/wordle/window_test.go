package wordle

import (
	"strconv"
	"testing"

	"github.com/averku/chartle/internal/model"
)

func dayFact(day int, player string) model.Fact {
	return model.Fact{
		Day: model.DayIdentity{
			Index:     day,
			Timestamp: int64(day),
			Label:     "Day " + strconv.Itoa(day),
			Key:       strconv.Itoa(day),
		},
		Player:  player,
		Guesses: 3,
		Solved:  true,
	}
}

func TestSelectLastDays(t *testing.T) {
	facts := []model.Fact{
		dayFact(1, "@a"), dayFact(1, "@b"),
		dayFact(2, "@a"),
		dayFact(3, "@c"),
	}
	w := SelectLastDays(facts, 2)
	if w.Resolved != 2 || w.TotalDays != 3 {
		t.Fatalf("unexpected window: %+v", w)
	}
	if len(w.Facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(w.Facts))
	}
	if w.Facts[0].Day.Key != "2" || w.Facts[1].Day.Key != "3" {
		t.Fatalf("unexpected selection: %+v", w.Facts)
	}
	if w.LatestLabel != "Day 3" {
		t.Fatalf("unexpected latest label: %q", w.LatestLabel)
	}
}

func TestSelectLastDaysClamps(t *testing.T) {
	facts := []model.Fact{dayFact(1, "@a"), dayFact(2, "@b")}
	for _, requested := range []int{0, -4, 99} {
		w := SelectLastDays(facts, requested)
		if w.Resolved != 2 || len(w.Facts) != 2 {
			t.Fatalf("requested %d: expected all days, got %+v", requested, w)
		}
	}
}

func TestSelectLastDaysSubset(t *testing.T) {
	facts := []model.Fact{
		dayFact(1, "@a"), dayFact(2, "@b"), dayFact(3, "@c"), dayFact(4, "@d"),
	}
	all := SelectLastDays(facts, 0)
	for n := 1; n <= all.TotalDays; n++ {
		sub := SelectLastDays(facts, n)
		if sub.Resolved != n {
			t.Fatalf("n=%d: resolved %d", n, sub.Resolved)
		}
		inAll := make(map[string]bool)
		for _, f := range all.Facts {
			inAll[f.Day.Key+f.Player] = true
		}
		for _, f := range sub.Facts {
			if !inAll[f.Day.Key+f.Player] {
				t.Fatalf("n=%d: fact not in full window: %+v", n, f)
			}
		}
	}
}

func TestSelectLastDaysEmpty(t *testing.T) {
	w := SelectLastDays(nil, 5)
	if w.Resolved != 0 || w.TotalDays != 0 || len(w.Facts) != 0 {
		t.Fatalf("expected empty window, got %+v", w)
	}
}

func TestSelectLastDaysOrdersByTimestamp(t *testing.T) {
	// Facts arrive out of chronological order.
	facts := []model.Fact{dayFact(3, "@c"), dayFact(1, "@a"), dayFact(2, "@b")}
	w := SelectLastDays(facts, 1)
	if len(w.Facts) != 1 || w.Facts[0].Player != "@c" {
		t.Fatalf("expected most recent day selected, got %+v", w.Facts)
	}
}
