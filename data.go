package graph

import (
	"github.com/tinywasm/graph/errs"
)

// ChartType selects the renderer and the shape of Data.
type ChartType string

const (
	Bar     ChartType = "bar"
	Line    ChartType = "line"
	Pie     ChartType = "pie"
	Scatter ChartType = "scatter"
)

// ChartTypes lists the chart types in selector order.
var ChartTypes = []ChartType{Bar, Line, Pie, Scatter}

func (t ChartType) String() string { return string(t) }

// PointBased reports whether values are read as x,y pairs.
func (t ChartType) PointBased() bool { return t == Scatter }

// ParseChartType validates a chart type name.
func ParseChartType(s string) (ChartType, error) {
	for _, t := range ChartTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errs.New(errs.ErrUnknownChartType, ':', s)
}

// DefaultTitle is drawn when the user left the title empty.
func (t ChartType) DefaultTitle() string {
	switch t {
	case Line:
		return "Line Chart"
	case Pie:
		return "Pie Chart"
	case Scatter:
		return "Scatter Chart"
	default:
		return "Bar Chart"
	}
}

// LineFill is the translucent area under a line series.
var LineFill = Color{R: 0, G: 0, B: 0, A: 26}

// Point is one scatter coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Dataset is one named series.
//
// Category charts use Values; bar and pie color every value through Colors,
// line uses Color for the stroke and Fill under it. Scatter uses Points and
// Color.
type Dataset struct {
	Label       string    `yaml:"label"`
	Values      []float64 `yaml:"values,omitempty"`
	Points      []Point   `yaml:"points,omitempty"`
	Color       string    `yaml:"color,omitempty"`
	Fill        Color     `yaml:"-"`
	Colors      []string  `yaml:"colors,omitempty"`
	BorderWidth int       `yaml:"border_width,omitempty"`
}

// Data is the normalized dataset handed to a renderer.
// Labels is nil for point-based charts.
type Data struct {
	Type     ChartType `yaml:"type"`
	Labels   []string  `yaml:"labels,omitempty"`
	Datasets []Dataset `yaml:"datasets"`
}
