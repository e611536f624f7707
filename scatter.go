package graph

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tinywasm/graph/errs"
)

// scatterChart draws dots only, legend at the bottom.
func scatterChart(data *Data, title string, opts RenderOptions) (drawable, error) {
	var series []chart.Series
	var allX, allY []float64
	for _, ds := range data.Datasets {
		var xs, ys []float64
		for _, p := range ds.Points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				continue
			}
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		if len(xs) == 0 {
			continue
		}
		allX, allY = append(allX, xs...), append(allY, ys...)
		col := drawingColor(ds.Color)
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    col,
			},
		})
	}
	if len(series) == 0 {
		return nil, errs.New("scatter chart", ':', "no points to draw")
	}

	c := chart.Chart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  xAxis(allX, nil),
		YAxis:  yAxis(allY),
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}
	return c, nil
}
