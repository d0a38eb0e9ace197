package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/averku/chartle/internal/model"
)

const (
	barFill         = '█'
	defaultBarWidth = 40
)

// Bar renders a horizontal bar chart for a series. Labels are aligned with
// their display width so wide runes keep the bars in a straight column.
func Bar(w io.Writer, s model.Series, width int) error {
	if len(s.Values) == 0 {
		_, err := fmt.Fprintln(w, "No data points.")
		return err
	}
	if width <= 0 {
		width = defaultBarWidth
	}

	if s.Title != "" {
		if _, err := fmt.Fprintln(w, s.Title); err != nil {
			return err
		}
	}

	labelWidth := 0
	for _, label := range s.Labels {
		if lw := runewidth.StringWidth(label); lw > labelWidth {
			labelWidth = lw
		}
	}
	_, maxVal := valuesMinMax(s.Values)
	if maxVal <= 0 {
		maxVal = 1
	}

	for i, v := range s.Values {
		label := ""
		if i < len(s.Labels) {
			label = s.Labels[i]
		}
		bar := barCells(v, maxVal, width)
		pad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(label))
		line := fmt.Sprintf("%s%s %s %s", label, pad, strings.Repeat(string(barFill), bar), formatAxisValue(v))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func barCells(v, maxVal float64, width int) int {
	if v <= 0 {
		return 0
	}
	n := int(math.Round(v / maxVal * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}

// Chart dispatches to the bar or line renderer based on the chart kind.
func Chart(w io.Writer, s model.Series, kind string, width, height int, forceColor bool) error {
	if kind == "line" {
		return Line(w, s, width, height, forceColor)
	}
	return Bar(w, s, width)
}
