package analytics

import "github.com/averku/chartle/internal/model"

// Placement scores per solve round. Unsolved and unknown buckets are
// worth a single point.
var pointTable = map[string]int{
	"1": 21,
	"2": 20,
	"3": 18,
	"4": 15,
	"5": 11,
	"6": 6,
}

// PointValue returns the placement score for a guess bucket.
func PointValue(bucket string) int {
	if v, ok := pointTable[bucket]; ok {
		return v
	}
	return 1
}

// TotalPoints sums the placement score over every counted game.
func TotalPoints(m model.GroupMetrics) int {
	total := 0
	for bucket, count := range m.PerRound {
		total += count * PointValue(bucket)
	}
	return total
}
