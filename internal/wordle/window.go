package wordle

import (
	"sort"

	"github.com/averku/chartle/internal/model"
)

// Window is the outcome of selecting the trailing N distinct days.
type Window struct {
	Facts       []model.Fact
	Resolved    int
	TotalDays   int
	LatestLabel string
}

// SelectLastDays picks the facts belonging to the most recent requested
// distinct days. A requested count of zero or less means all days; the
// count is otherwise clamped to [1, total]. Fact order is preserved.
func SelectLastDays(facts []model.Fact, requested int) Window {
	days := distinctDays(facts)
	total := len(days)
	if total == 0 {
		return Window{}
	}

	resolved := requested
	if resolved <= 0 || resolved > total {
		resolved = total
	}

	selected := days[total-resolved:]
	keys := make(map[string]struct{}, len(selected))
	for _, d := range selected {
		keys[d.Key] = struct{}{}
	}

	out := make([]model.Fact, 0, len(facts))
	for _, f := range facts {
		if _, ok := keys[f.Day.Key]; ok {
			out = append(out, f)
		}
	}
	return Window{
		Facts:       out,
		Resolved:    resolved,
		TotalDays:   total,
		LatestLabel: selected[len(selected)-1].Label,
	}
}

// distinctDays dedups day identities by key, keeping the first
// occurrence's metadata, sorted ascending by timestamp then index.
func distinctDays(facts []model.Fact) []model.DayIdentity {
	seen := make(map[string]struct{})
	var days []model.DayIdentity
	for _, f := range facts {
		if _, ok := seen[f.Day.Key]; ok {
			continue
		}
		seen[f.Day.Key] = struct{}{}
		days = append(days, f.Day)
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].Timestamp == days[j].Timestamp {
			return days[i].Index < days[j].Index
		}
		return days[i].Timestamp < days[j].Timestamp
	})
	return days
}

// DistinctDays exposes the ordered distinct day identities of a fact set.
func DistinctDays(facts []model.Fact) []model.DayIdentity {
	return distinctDays(facts)
}
