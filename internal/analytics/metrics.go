package analytics

import "github.com/averku/chartle/internal/model"

// Summarize folds facts into group metrics: per-bucket counts, crown
// counts per bucket, and running totals.
func Summarize(facts []model.Fact) model.GroupMetrics {
	m := model.NewGroupMetrics()
	for _, f := range facts {
		bucket := f.GuessBucket()
		m.PerRound[bucket]++
		m.TotalGames++
		if f.IsCrown {
			m.PerRoundCrown[bucket]++
			m.CrownWins++
		}
	}
	return m
}

// SummarizePlayer is the same fold restricted to one player's facts.
// A player with no facts yields zero-valued metrics.
func SummarizePlayer(facts []model.Fact, player string) model.GroupMetrics {
	m := model.NewGroupMetrics()
	for _, f := range facts {
		if f.Player != player {
			continue
		}
		bucket := f.GuessBucket()
		m.PerRound[bucket]++
		m.TotalGames++
		if f.IsCrown {
			m.PerRoundCrown[bucket]++
			m.CrownWins++
		}
	}
	return m
}
