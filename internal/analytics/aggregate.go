package analytics

import (
	"fmt"
	"strings"

	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

const blankGroup = "(blank)"

// RawPoint pairs the raw cell values of the selected columns for one row.
// Numeric coercion is the rendering boundary's job, not the aggregator's.
type RawPoint struct {
	X string
	Y string
}

// RawPoints returns one point per row in original order.
func RawPoints(rows []dataset.Row, xCol, yCol string) []RawPoint {
	out := make([]RawPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, RawPoint{X: r.Cell(xCol), Y: r.Cell(yCol)})
	}
	return out
}

// NumericPoints coerces both columns through the lenient number parser,
// dropping rows where either side fails.
func NumericPoints(rows []dataset.Row, xCol, yCol string) []model.Point {
	var out []model.Point
	for _, r := range rows {
		x, okX := dataset.ParseNumber(r.Cell(xCol))
		y, okY := dataset.ParseNumber(r.Cell(yCol))
		if !okX || !okY {
			continue
		}
		out = append(out, model.Point{X: x, Y: y})
	}
	return out
}

// GroupBy groups rows by the x column's string value and reduces the y
// column per the mode. Groups are emitted in first-seen order; a blank x
// lands in the "(blank)" group. For sum/avg, rows whose y does not coerce
// are skipped; count counts every row.
func GroupBy(rows []dataset.Row, xCol, yCol string, mode model.AggMode) model.Series {
	type bucket struct {
		sum   float64
		count int
		rows  int
	}
	var order []string
	buckets := make(map[string]*bucket)

	for _, r := range rows {
		key := strings.TrimSpace(r.Cell(xCol))
		if key == "" {
			key = blankGroup
		} else {
			key = r.Cell(xCol)
		}
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
			order = append(order, key)
		}
		b.rows++
		if mode == model.AggSum || mode == model.AggAvg {
			if y, ok := dataset.ParseNumber(r.Cell(yCol)); ok {
				b.sum += y
				b.count++
			}
		}
	}

	s := model.Series{
		Title:  groupTitle(mode, xCol, yCol),
		YLabel: groupYLabel(mode, yCol),
	}
	for _, key := range order {
		b := buckets[key]
		var v float64
		switch mode {
		case model.AggCount:
			v = float64(b.rows)
		case model.AggSum:
			v = b.sum
		case model.AggAvg:
			den := b.count
			if den == 0 {
				den = 1
			}
			v = round2(b.sum / float64(den))
		}
		s.Labels = append(s.Labels, key)
		s.Values = append(s.Values, v)
	}
	return s
}

func groupTitle(mode model.AggMode, xCol, yCol string) string {
	if mode == model.AggCount {
		return fmt.Sprintf("COUNT by %s", xCol)
	}
	return fmt.Sprintf("%s of %s by %s", strings.ToUpper(string(mode)), yCol, xCol)
}

func groupYLabel(mode model.AggMode, yCol string) string {
	switch mode {
	case model.AggCount:
		return "Count"
	case model.AggSum:
		return fmt.Sprintf("Sum(%s)", yCol)
	case model.AggAvg:
		return fmt.Sprintf("Avg(%s)", yCol)
	default:
		return "Value"
	}
}
