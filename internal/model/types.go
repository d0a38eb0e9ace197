// Package model defines shared data structures.
package model

// SchemaKind classifies a loaded table.
type SchemaKind int

const (
	// SchemaNone means no table is loaded.
	SchemaNone SchemaKind = iota
	// SchemaWordle means the table matches the Wordle summary shape.
	SchemaWordle
	// SchemaGeneric covers every other CSV.
	SchemaGeneric
)

// String returns a short human-readable name for the schema kind.
func (k SchemaKind) String() string {
	switch k {
	case SchemaWordle:
		return "wordle"
	case SchemaGeneric:
		return "generic"
	default:
		return "none"
	}
}

// DayIdentity resolves which logical day a source row belongs to.
// Key is unique per distinct day; Timestamp orders days, Index breaks ties.
type DayIdentity struct {
	Index     int
	Timestamp int64
	Label     string
	Key       string
}

// Fact is one normalized (day, player) observation. Guesses is 0 and
// Solved false for an X/6 entry; otherwise Guesses is 1..6.
type Fact struct {
	Day        DayIdentity
	Player     string
	Guesses    int
	Solved     bool
	IsCrown    bool
	CrownRound string
	SourceRow  int
}

// GuessBucket returns the fact's distribution bucket: "1".."6" or "X".
func (f Fact) GuessBucket() string {
	if !f.Solved {
		return "X"
	}
	return string(rune('0' + f.Guesses))
}

// Series is the universal chart-ready output shape: parallel label and
// value sequences plus axis metadata.
type Series struct {
	Labels []string
	Values []float64
	Title  string
	YLabel string
}

// Point is a single numeric scatter point.
type Point struct {
	X float64
	Y float64
}

// PointSeries holds scatter-ready numeric points.
type PointSeries struct {
	Points []Point
	Title  string
	XLabel string
	YLabel string
}

// LeaderboardRow is one ranked entry of the king-wins leaderboard.
type LeaderboardRow struct {
	Rank       int
	Player     string
	TotalGames int
	WinCount   int
	WinRatio   float64
}

// GuessBuckets lists the distribution buckets in display order.
var GuessBuckets = []string{"1", "2", "3", "4", "5", "6", "X"}

// GroupMetrics aggregates facts for a group of players (or one player).
type GroupMetrics struct {
	TotalGames    int
	CrownWins     int
	PerRound      map[string]int
	PerRoundCrown map[string]int
}

// NewGroupMetrics returns zero-valued metrics with all buckets present.
func NewGroupMetrics() GroupMetrics {
	perRound := make(map[string]int, len(GuessBuckets))
	perCrown := make(map[string]int, len(GuessBuckets))
	for _, b := range GuessBuckets {
		perRound[b] = 0
		perCrown[b] = 0
	}
	return GroupMetrics{PerRound: perRound, PerRoundCrown: perCrown}
}

// AggMode selects how the generic aggregator reduces grouped rows.
type AggMode string

const (
	AggNone  AggMode = "none"
	AggCount AggMode = "count"
	AggSum   AggMode = "sum"
	AggAvg   AggMode = "avg"
)

// ParseAggMode validates a user-supplied aggregation mode string.
func ParseAggMode(s string) (AggMode, bool) {
	switch AggMode(s) {
	case AggNone, AggCount, AggSum, AggAvg:
		return AggMode(s), true
	default:
		return "", false
	}
}

// ViewConfig carries the per-render scalar inputs.
type ViewConfig struct {
	// Days limits wordle presets to the last N distinct days; 0 means all.
	Days int
	// Limit caps leaderboard and top-player output.
	Limit int
	// Preset names the analytic to render in wordle mode.
	Preset string
	// Filter is a free-text row filter applied before everything else.
	Filter string
	// XColumn, YColumn and Mode drive the generic path.
	XColumn string
	YColumn string
	Mode    AggMode
}

const (
	// LimitMin and LimitMax bound the leaderboard limit.
	LimitMin = 3
	LimitMax = 50
	// DefaultLimit is used when no limit is configured.
	DefaultLimit = 15
)

// ClampLimit forces a leaderboard limit into the accepted range.
func ClampLimit(n int) int {
	if n <= 0 {
		return DefaultLimit
	}
	if n < LimitMin {
		return LimitMin
	}
	if n > LimitMax {
		return LimitMax
	}
	return n
}
