package analytics

import (
	"sort"

	"github.com/averku/chartle/internal/model"
)

// KingWins ranks players by crown wins. Sorted descending by win count,
// ties broken by handle; ranks are the 1-based positions after the sort.
// A non-positive limit keeps every player.
func KingWins(facts []model.Fact, limit int) []model.LeaderboardRow {
	type tally struct {
		games int
		wins  int
	}
	byPlayer := make(map[string]*tally)
	for _, f := range facts {
		t := byPlayer[f.Player]
		if t == nil {
			t = &tally{}
			byPlayer[f.Player] = t
		}
		t.games++
		if f.IsCrown {
			t.wins++
		}
	}

	rows := make([]model.LeaderboardRow, 0, len(byPlayer))
	for player, t := range byPlayer {
		rows = append(rows, model.LeaderboardRow{
			Player:     player,
			TotalGames: t.games,
			WinCount:   t.wins,
			WinRatio:   float64(t.wins) / float64(t.games),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].WinCount == rows[j].WinCount {
			return rows[i].Player < rows[j].Player
		}
		return rows[i].WinCount > rows[j].WinCount
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
