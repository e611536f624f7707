package graph

import (
	"bytes"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tinywasm/graph/errs"
)

// Output selects what a renderer leaves in its Container.
type Output string

const (
	// Raster keeps only a bitmap, like a canvas element.
	Raster Output = "raster"
	// Vector also embeds SVG markup that can be exported as .svg.
	Vector Output = "vector"
)

// RenderOptions are the presentation settings shared by all renderers.
type RenderOptions struct {
	Width  int
	Height int
	Output Output
}

// DefaultRenderOptions matches the preview area of the page.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 800, Height: 500, Output: Raster}
}

// drawable is implemented by chart.Chart, chart.BarChart and chart.PieChart.
type drawable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Container is the result of rendering one chart. It never changes after
// Render returns, so exports may read it from any goroutine.
type Container struct {
	Type   ChartType
	Title  string
	Width  int
	Height int

	raster []byte
	vector []byte
}

// Rasterize returns the chart as PNG. The returned bytes must not be
// modified.
func (c *Container) Rasterize() ([]byte, error) {
	if c == nil || c.raster == nil {
		return nil, errs.ErrNoChart
	}
	return c.raster, nil
}

// Markup returns the embedded SVG document, or nil for raster output.
func (c *Container) Markup() []byte {
	if c == nil {
		return nil
	}
	return c.vector
}

// Render draws data with the renderer of data.Type. An empty title is
// replaced by the chart type's default title.
func Render(data *Data, title string, opts RenderOptions) (*Container, error) {
	if data == nil {
		return nil, errs.ErrNoChart
	}
	def := DefaultRenderOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if title == "" {
		title = data.Type.DefaultTitle()
	}

	var (
		d   drawable
		err error
	)
	switch data.Type {
	case Bar:
		d, err = barChart(data, title, opts)
	case Line:
		d, err = lineChart(data, title, opts)
	case Pie:
		d, err = pieChart(data, title, opts)
	case Scatter:
		d, err = scatterChart(data, title, opts)
	default:
		return nil, errs.New(errs.ErrUnknownChartType, ':', string(data.Type))
	}
	if err != nil {
		return nil, err
	}

	// drawn once here so a chart go-chart refuses fails at Render
	var buf bytes.Buffer
	if err := d.Render(chart.PNG, &buf); err != nil {
		return nil, errs.New("rasterize", string(data.Type), "chart", ':', err)
	}
	if buf.Len() == 0 {
		return nil, errs.ErrEmptyImage
	}

	c := &Container{
		Type:   data.Type,
		Title:  title,
		Width:  opts.Width,
		Height: opts.Height,
		raster: buf.Bytes(),
	}

	if opts.Output == Vector {
		var buf bytes.Buffer
		if err := d.Render(chart.SVG, &buf); err != nil {
			return nil, errs.New("render", string(data.Type), "chart as svg", ':', err)
		}
		c.vector = buf.Bytes()
	}
	return c, nil
}

// drawingColor converts a form color; unreadable colors fall back to gray.
func drawingColor(hex string) drawing.Color {
	c, err := ParseHex(hex)
	if err != nil {
		return drawing.Color{R: 100, G: 100, B: 100, A: 255}
	}
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toDrawing(c Color) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// orZero draws unparsed values as empty bars or slices.
func orZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func colorAt(colors []string, i int) string {
	if i < len(colors) {
		return colors[i]
	}
	return ""
}

// bounds returns the smallest and largest finite values.
func bounds(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi, ok = math.Min(lo, v), math.Max(hi, v), true
	}
	return lo, hi, ok
}

// flatRange gives an axis a span when all its values are equal, since
// go-chart cannot draw a zero range. It returns nil when lo < hi. With
// fromZero the range is widened to include zero instead of padded.
func flatRange(lo, hi float64, fromZero bool) chart.Range {
	if lo < hi {
		return nil
	}
	if !fromZero {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)
	if lo == hi {
		hi = 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func titleStyle() chart.Style {
	return chart.Style{FontSize: 14}
}
