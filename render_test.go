package graph

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/tinywasm/graph/errs"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderAllTypes(t *testing.T) {
	for _, typ := range ChartTypes {
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()
			c, err := Render(sampleData(typ), "", DefaultRenderOptions())
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if c.Title != typ.DefaultTitle() {
				t.Errorf("title = %q, want %q", c.Title, typ.DefaultTitle())
			}
			if c.Markup() != nil {
				t.Error("raster output carries vector markup")
			}
			img, err := c.Rasterize()
			if err != nil {
				t.Fatalf("Rasterize: %v", err)
			}
			if !bytes.HasPrefix(img, pngSignature) {
				t.Error("rasterized chart is not a PNG")
			}
		})
	}
}

func TestRenderVector(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Output = Vector
	c, err := Render(sampleData(Line), "Trend", opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(c.Markup(), []byte("<svg")) {
		t.Fatalf("markup has no <svg>: %.80s", c.Markup())
	}
}

func TestRenderMultipleDatasets(t *testing.T) {
	f := NewForm()
	f.SetLabels("Q1,Q2")
	f.SetValues(0, "1,2")
	f.AddDataset()
	f.SetValues(1, "3,4")

	for _, typ := range []ChartType{Bar, Line} {
		c, err := Render(f.Submit(typ), "", DefaultRenderOptions())
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if _, err := c.Rasterize(); err != nil {
			t.Fatalf("%s: Rasterize: %v", typ, err)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(nil, "", DefaultRenderOptions()); !errors.Is(err, errs.ErrNoChart) {
		t.Errorf("nil data: err = %v", err)
	}

	bad := &Data{Type: "radar", Datasets: []Dataset{{Values: []float64{1}}}}
	if _, err := Render(bad, "", DefaultRenderOptions()); !errors.Is(err, errs.ErrUnknownChartType) {
		t.Errorf("unknown type: err = %v", err)
	}

	zero := &Data{Type: Pie, Labels: []string{"a"}, Datasets: []Dataset{{Values: []float64{0, math.NaN()}}}}
	if _, err := Render(zero, "", DefaultRenderOptions()); err == nil {
		t.Error("pie of zeros should fail")
	}

	var c *Container
	if _, err := c.Rasterize(); !errors.Is(err, errs.ErrNoChart) {
		t.Errorf("nil container: err = %v", err)
	}
}

func TestRenderFlatRanges(t *testing.T) {
	tests := []struct {
		name   string
		typ    ChartType
		labels string
		values string
	}{
		{"equal bars", Bar, "A,B,C", "5,5,5"},
		{"single bar", Bar, "A", "5"},
		{"zero bars", Bar, "A,B", "0,0"},
		{"unparsed bars", Bar, "A,B", "x,y"},
		{"negative equal bars", Bar, "A,B", "-3,-3"},
		{"single line point", Line, "A", "5"},
		{"flat line", Line, "A,B,C", "5,5,5"},
		{"line with one parsed value", Line, "A,B", "5,abc"},
		{"single scatter point", Scatter, "", "1,2"},
		{"vertical scatter", Scatter, "", "1,2,1,5"},
		{"horizontal scatter", Scatter, "", "1,2,4,2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := NewForm()
			f.SetLabels(tt.labels)
			f.SetValues(0, tt.values)

			c, err := Render(f.Submit(tt.typ), "", DefaultRenderOptions())
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			img, err := c.Rasterize()
			if err != nil {
				t.Fatalf("Rasterize: %v", err)
			}
			if !bytes.HasPrefix(img, pngSignature) {
				t.Error("rasterized chart is not a PNG")
			}
		})
	}
}

func TestFlatRange(t *testing.T) {
	if r := flatRange(1, 2, false); r != nil {
		t.Errorf("spanning range padded: %v", r)
	}
	tests := []struct {
		lo, hi   float64
		fromZero bool
		min, max float64
	}{
		{5, 5, false, 4, 6},
		{5, 5, true, 0, 5},
		{-3, -3, true, -3, 0},
		{0, 0, true, 0, 1},
	}
	for _, tt := range tests {
		r := flatRange(tt.lo, tt.hi, tt.fromZero)
		if r == nil || r.GetMin() != tt.min || r.GetMax() != tt.max {
			t.Errorf("flatRange(%v, %v, %v) = %v, want [%v, %v]", tt.lo, tt.hi, tt.fromZero, r, tt.min, tt.max)
		}
	}
}

func TestRenderErrorReachesPreview(t *testing.T) {
	p := NewPreview(DefaultRenderOptions())
	zero := &Data{Type: Pie, Labels: []string{"a"}, Datasets: []Dataset{{Values: []float64{0}}}}
	p.Update(Snapshot{Type: Pie, Data: zero})
	if p.Err() == nil || p.Container() != nil {
		t.Fatalf("err = %v, container = %v", p.Err(), p.Container())
	}
}

func TestOrZero(t *testing.T) {
	if orZero(math.NaN()) != 0 || orZero(math.Inf(1)) != 0 || orZero(2.5) != 2.5 {
		t.Fatal("orZero")
	}
}
