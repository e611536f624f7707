package graph

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tinywasm/graph/errs"
)

// lineChart plots every dataset over the category labels with a thin
// legend on top.
func lineChart(data *Data, title string, opts RenderOptions) (drawable, error) {
	n := len(data.Labels)
	for _, ds := range data.Datasets {
		if len(ds.Values) > n {
			n = len(ds.Values)
		}
	}

	ticks := make([]chart.Tick, n)
	for i := range ticks {
		ticks[i] = chart.Tick{Value: float64(i), Label: labelAt(data.Labels, i)}
	}

	var series []chart.Series
	var allX, allY []float64
	for _, ds := range data.Datasets {
		var xs, ys []float64
		for i, v := range ds.Values {
			// unparsed values leave a gap
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, v)
		}
		if len(xs) == 0 {
			continue
		}
		allX, allY = append(allX, xs...), append(allY, ys...)
		width := float64(ds.BorderWidth)
		if width <= 0 {
			width = 1
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawingColor(ds.Color),
				StrokeWidth: width * 2,
				FillColor:   toDrawing(ds.Fill),
				DotColor:    drawingColor(ds.Color),
				DotWidth:    3,
			},
		})
	}
	if len(series) == 0 {
		return nil, errs.New("line chart", ':', "no values to draw")
	}

	c := chart.Chart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  xAxis(allX, ticks),
		YAxis:  yAxis(allY),
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.LegendThin(&c)}
	return c, nil
}

// xAxis pads a single x position with unlabeled ticks on both sides.
func xAxis(xs []float64, ticks []chart.Tick) chart.XAxis {
	lo, hi, _ := bounds(xs)
	r := flatRange(lo, hi, false)
	if r == nil {
		return chart.XAxis{Ticks: ticks}
	}
	var padded []chart.Tick
	if len(ticks) > 0 {
		padded = append(padded, chart.Tick{Value: r.GetMin()})
		for _, t := range ticks {
			if t.Value == lo {
				padded = append(padded, t)
			}
		}
		padded = append(padded, chart.Tick{Value: r.GetMax()})
	}
	return chart.XAxis{Range: r, Ticks: padded}
}

func yAxis(ys []float64) chart.YAxis {
	lo, hi, _ := bounds(ys)
	return chart.YAxis{Range: flatRange(lo, hi, false)}
}
