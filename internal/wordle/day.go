package wordle

import (
	"fmt"
	"strconv"
	"time"

	"github.com/averku/chartle/internal/dataset"
	"github.com/averku/chartle/internal/model"
)

const dayLabelLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ResolveDay derives the day identity for a row. With a parseable date
// cell the key is the calendar date, so rows naming the same date
// collapse into one logical day. Without one the row position stands in,
// making every such row its own day.
func ResolveDay(row dataset.Row, position int, dateColumn string) model.DayIdentity {
	if dateColumn != "" {
		if t, ok := parseDate(row.Cell(dateColumn)); ok {
			label := t.Format(dayLabelLayout)
			return model.DayIdentity{
				Index:     position,
				Timestamp: t.UnixMilli(),
				Label:     label,
				Key:       label,
			}
		}
	}
	return model.DayIdentity{
		Index:     position,
		Timestamp: int64(position),
		Label:     fmt.Sprintf("Day %d", position),
		Key:       strconv.Itoa(position),
	}
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
