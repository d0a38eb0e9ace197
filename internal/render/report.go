package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/averku/chartle/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Overview prints headline numbers for a set of facts.
func Overview(w io.Writer, facts []model.Fact, players []string, totalDays int, latestLabel string) error {
	if len(facts) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	solved := 0
	for _, f := range facts {
		if f.Solved {
			solved++
		}
	}
	if _, err := fmt.Fprintln(w, "Overview"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Days: %d\n", totalDays); err != nil {
		return err
	}
	if latestLabel != "" {
		if _, err := fmt.Fprintf(w, "Latest day: %s\n", latestLabel); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Games: %d\n", len(facts)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Players: %d\n", len(players)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Solve rate: %.1f%%\n", float64(solved)/float64(len(facts))*100); err != nil {
		return err
	}
	if spark := Sparkline(gamesPerDay(facts)); len(spark) > 1 {
		if _, err := fmt.Fprintf(w, "Activity: %s\n", spark); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// gamesPerDay counts facts per distinct day, in first-seen day order.
func gamesPerDay(facts []model.Fact) []float64 {
	var order []string
	counts := make(map[string]int)
	for _, f := range facts {
		if _, ok := counts[f.Day.Key]; !ok {
			order = append(order, f.Day.Key)
		}
		counts[f.Day.Key]++
	}
	out := make([]float64, len(order))
	for i, key := range order {
		out[i] = float64(counts[key])
	}
	return out
}

// Leaderboard prints ranked win counts as an aligned table.
func Leaderboard(w io.Writer, rows []model.LeaderboardRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No crown wins recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "King of Wordle"); err != nil {
		return err
	}
	headers := []string{"Rank", "Player", "Wins", "Games", "Win %"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", r.Rank),
			r.Player,
			fmt.Sprintf("%d", r.WinCount),
			fmt.Sprintf("%d", r.TotalGames),
			fmt.Sprintf("%.1f%%", r.WinRatio*100),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true}
	for _, line := range Table(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := valuesMinMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
