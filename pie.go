package graph

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tinywasm/graph/errs"
)

// pieChart draws the first dataset, one slice per label.
func pieChart(data *Data, title string, opts RenderOptions) (drawable, error) {
	if len(data.Datasets) == 0 {
		return nil, errs.New("pie chart", ':', "no dataset")
	}
	ds := data.Datasets[0]

	var values []chart.Value
	total := 0.0
	for i, v := range ds.Values {
		v = orZero(v)
		if v < 0 {
			v = 0
		}
		total += v
		values = append(values, chart.Value{
			Label: labelAt(data.Labels, i),
			Value: v,
			Style: chart.Style{
				FillColor:   drawingColor(colorAt(ds.Colors, i)),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: float64(ds.BorderWidth),
			},
		})
	}
	if total == 0 {
		return nil, errs.New("pie chart", ':', "values sum to zero")
	}

	return chart.PieChart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      opts.Width,
		Height:     opts.Height,
		Values:     values,
	}, nil
}
