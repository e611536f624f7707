package graph

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tinywasm/graph/errs"
)

// barChart draws one bar per value. With several datasets the bars of each
// label sit next to each other and carry the dataset name.
func barChart(data *Data, title string, opts RenderOptions) (drawable, error) {
	var bars []chart.Value
	grouped := len(data.Datasets) > 1

	n := len(data.Labels)
	for _, ds := range data.Datasets {
		if len(ds.Values) > n {
			n = len(ds.Values)
		}
	}

	for i := 0; i < n; i++ {
		for _, ds := range data.Datasets {
			if i >= len(ds.Values) {
				continue
			}
			label := labelAt(data.Labels, i)
			if grouped {
				label = label + " (" + ds.Label + ")"
			}
			col := drawingColor(colorAt(ds.Colors, i))
			bars = append(bars, chart.Value{
				Label: label,
				Value: orZero(ds.Values[i]),
				Style: chart.Style{
					FillColor:   col,
					StrokeColor: col,
					StrokeWidth: float64(ds.BorderWidth),
				},
			})
		}
	}
	if len(bars) == 0 {
		return nil, errs.New("bar chart", ':', "no values to draw")
	}

	values := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = b.Value
	}
	var yAxis chart.YAxis
	if lo, hi, ok := bounds(values); ok {
		yAxis.Range = flatRange(lo, hi, true)
	}

	return chart.BarChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: yAxis,
		Bars:  bars,
	}, nil
}
