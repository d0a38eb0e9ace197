// Package htmlchart renders chart series as a standalone HTML page.
package htmlchart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/averku/chartle/internal/model"
)

const (
	chartWidth  = "900px"
	chartHeight = "480px"
)

// BuildBar creates an echarts bar chart from a series.
func BuildBar(s model.Series) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(s)...)
	data := make([]opts.BarData, len(s.Values))
	for i, v := range s.Values {
		data[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(s.Labels).AddSeries(seriesName(s), data)
	return bar
}

// BuildLine creates an echarts line chart from a series.
func BuildLine(s model.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(baseOptions(s)...)
	data := make([]opts.LineData, len(s.Values))
	for i, v := range s.Values {
		data[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(s.Labels).AddSeries(seriesName(s), data)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	return line
}

// BuildScatter creates an echarts scatter chart from numeric points.
func BuildScatter(ps model.PointSeries) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: ps.Title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:  ps.XLabel,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  ps.YLabel,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
	)
	data := make([]opts.ScatterData, len(ps.Points))
	for i, p := range ps.Points {
		data[i] = opts.ScatterData{Value: []float64{p.X, p.Y}}
	}
	name := ps.Title
	if name == "" {
		name = "Points"
	}
	scatter.AddSeries(name, data)
	return scatter
}

// BuildChart dispatches on the chart kind and returns a renderable chart.
func BuildChart(s model.Series, kind string) components.Charter {
	if kind == "line" {
		return BuildLine(s)
	}
	return BuildBar(s)
}

// WritePage renders one or more charts as a single HTML page.
func WritePage(w io.Writer, title string, chs ...components.Charter) error {
	if len(chs) == 0 {
		return fmt.Errorf("no charts to render")
	}
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(chs...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

func baseOptions(s model.Series) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.YLabel}),
	}
}

func seriesName(s model.Series) string {
	if s.YLabel != "" {
		return s.YLabel
	}
	if s.Title != "" {
		return s.Title
	}
	return "Values"
}
