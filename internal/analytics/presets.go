// Package analytics contains the pure reducers behind every chart.
package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/averku/chartle/internal/model"
	"github.com/averku/chartle/internal/wordle"
)

// Preset identifiers for the Wordle analytics.
const (
	PresetRoundDistribution = "round_distribution"
	PresetPlayersPerDay     = "players_per_day"
	PresetSolveRate         = "solve_rate"
	PresetAvgGuesses        = "avg_guesses"
	PresetTopPlayers        = "top_players"
)

// Presets lists every preset in display order.
var Presets = []string{
	PresetRoundDistribution,
	PresetPlayersPerDay,
	PresetSolveRate,
	PresetAvgGuesses,
	PresetTopPlayers,
}

// BuildPreset dispatches a preset by name. The second return is false for
// an unknown preset.
func BuildPreset(name string, facts []model.Fact, limit int) (model.Series, bool) {
	switch name {
	case PresetRoundDistribution:
		return RoundDistribution(facts), true
	case PresetPlayersPerDay:
		return PlayersPerDay(facts), true
	case PresetSolveRate:
		return SolveRatePerDay(facts), true
	case PresetAvgGuesses:
		return AvgGuessesPerDay(facts), true
	case PresetTopPlayers:
		return TopPlayers(facts, limit), true
	default:
		return model.Series{}, false
	}
}

// SuggestedChart returns the chart type a preset looks best as.
func SuggestedChart(name string) string {
	switch name {
	case PresetPlayersPerDay, PresetSolveRate, PresetAvgGuesses:
		return "line"
	default:
		return "bar"
	}
}

// RoundDistribution counts facts per guess bucket in fixed bucket order.
func RoundDistribution(facts []model.Fact) model.Series {
	counts := make(map[string]int, len(model.GuessBuckets))
	for _, f := range facts {
		counts[f.GuessBucket()]++
	}
	values := make([]float64, len(model.GuessBuckets))
	for i, b := range model.GuessBuckets {
		values[i] = float64(counts[b])
	}
	return model.Series{
		Labels: append([]string(nil), model.GuessBuckets...),
		Values: values,
		Title:  "Round distribution",
		YLabel: "Players",
	}
}

// PlayersPerDay counts facts per day, days in chronological order.
func PlayersPerDay(facts []model.Fact) model.Series {
	days := wordle.DistinctDays(facts)
	counts := make(map[string]int)
	for _, f := range facts {
		counts[f.Day.Key]++
	}
	s := model.Series{Title: "Players per day", YLabel: "Players"}
	for _, d := range days {
		s.Labels = append(s.Labels, d.Label)
		s.Values = append(s.Values, float64(counts[d.Key]))
	}
	return s
}

// SolveRatePerDay computes the per-day solved percentage, one decimal.
func SolveRatePerDay(facts []model.Fact) model.Series {
	days := wordle.DistinctDays(facts)
	total := make(map[string]int)
	solved := make(map[string]int)
	for _, f := range facts {
		total[f.Day.Key]++
		if f.Solved {
			solved[f.Day.Key]++
		}
	}
	s := model.Series{Title: "Solve rate per day", YLabel: "Solve rate (%)"}
	for _, d := range days {
		rate := 0.0
		if t := total[d.Key]; t > 0 {
			rate = round1(100 * float64(solved[d.Key]) / float64(t))
		}
		s.Labels = append(s.Labels, d.Label)
		s.Values = append(s.Values, rate)
	}
	return s
}

// AvgGuessesPerDay averages guesses over solved facts per day, two
// decimals. Days without a solve emit zero.
func AvgGuessesPerDay(facts []model.Fact) model.Series {
	days := wordle.DistinctDays(facts)
	sum := make(map[string]int)
	cnt := make(map[string]int)
	for _, f := range facts {
		if !f.Solved {
			continue
		}
		sum[f.Day.Key] += f.Guesses
		cnt[f.Day.Key]++
	}
	s := model.Series{Title: "Average guesses per day (solves only)", YLabel: "Avg guesses"}
	for _, d := range days {
		den := cnt[d.Key]
		if den == 0 {
			den = 1
		}
		s.Labels = append(s.Labels, d.Label)
		s.Values = append(s.Values, round2(float64(sum[d.Key])/float64(den)))
	}
	return s
}

// TopPlayers ranks players by solve count, descending, ties broken by
// handle, truncated to limit.
func TopPlayers(facts []model.Fact, limit int) model.Series {
	solves := make(map[string]int)
	for _, f := range facts {
		if f.Solved {
			solves[f.Player]++
		}
	}
	type entry struct {
		player string
		count  int
	}
	entries := make([]entry, 0, len(solves))
	for p, c := range solves {
		entries = append(entries, entry{player: p, count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count == entries[j].count {
			return entries[i].player < entries[j].player
		}
		return entries[i].count > entries[j].count
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	s := model.Series{
		Title:  fmt.Sprintf("Top %d players by solves", limit),
		YLabel: "Solves",
	}
	for _, e := range entries {
		s.Labels = append(s.Labels, e.player)
		s.Values = append(s.Values, float64(e.count))
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
