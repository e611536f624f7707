package graph

import (
	"math"
	"strconv"
	"strings"

	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/graph/errs"
)

// paletteSize is the number of per-value colors a new dataset starts with.
const paletteSize = 6

var defaultPalette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}

// Form is the raw text state behind the data entry form.
// All slices are indexed by dataset and always have the same length.
type Form struct {
	Labels        string
	DatasetLabels []string
	DatasetValues []string
	Colors        []string
	Palettes      [][]string

	randomColor func() string
}

// NewForm returns a form holding one empty dataset.
func NewForm() *Form {
	palette := make([]string, len(defaultPalette))
	copy(palette, defaultPalette)
	return &Form{
		DatasetLabels: []string{"Dataset 1"},
		DatasetValues: []string{""},
		Colors:        []string{defaultPalette[0]},
		Palettes:      [][]string{palette},
		randomColor:   RandomColor,
	}
}

// Len returns the number of dataset rows.
func (f *Form) Len() int {
	return len(f.DatasetLabels)
}

func (f *Form) color() string {
	if f.randomColor == nil {
		return RandomColor()
	}
	return f.randomColor()
}

func (f *Form) check(i int) error {
	if i < 0 || i >= f.Len() {
		return errs.New(errs.ErrIndexOutOfRange, ':', i)
	}
	return nil
}

// AddDataset appends a row with a default label, no values, one random
// color and a random palette.
func (f *Form) AddDataset() {
	f.DatasetLabels = append(f.DatasetLabels, Sprintf("Dataset %d", f.Len()+1))
	f.DatasetValues = append(f.DatasetValues, "")
	f.Colors = append(f.Colors, f.color())

	palette := make([]string, paletteSize)
	for i := range palette {
		palette[i] = f.color()
	}
	f.Palettes = append(f.Palettes, palette)
}

// RemoveDataset deletes row i. The last remaining row is never removed.
func (f *Form) RemoveDataset(i int) bool {
	if f.Len() <= 1 || f.check(i) != nil {
		return false
	}
	f.DatasetLabels = append(f.DatasetLabels[:i], f.DatasetLabels[i+1:]...)
	f.DatasetValues = append(f.DatasetValues[:i], f.DatasetValues[i+1:]...)
	f.Colors = append(f.Colors[:i], f.Colors[i+1:]...)
	f.Palettes = append(f.Palettes[:i], f.Palettes[i+1:]...)
	return true
}

// SetLabels sets the comma-separated category labels.
func (f *Form) SetLabels(s string) {
	f.Labels = s
}

func (f *Form) SetDatasetLabel(i int, s string) error {
	if err := f.check(i); err != nil {
		return err
	}
	f.DatasetLabels[i] = s
	return nil
}

// SetValues sets the comma-separated values of row i and grows its
// palette so every typed value has a color.
func (f *Form) SetValues(i int, s string) error {
	if err := f.check(i); err != nil {
		return err
	}
	f.DatasetValues[i] = s
	f.ensurePalette(i, len(splitList(s)))
	return nil
}

func (f *Form) SetColor(i int, c string) error {
	if err := f.check(i); err != nil {
		return err
	}
	f.Colors[i] = c
	return nil
}

// SetPaletteColor sets the color of value j in row i.
func (f *Form) SetPaletteColor(i, j int, c string) error {
	if err := f.check(i); err != nil {
		return err
	}
	if j < 0 {
		return errs.New(errs.ErrIndexOutOfRange, ':', j)
	}
	f.ensurePalette(i, j+1)
	f.Palettes[i][j] = c
	return nil
}

// ValueCount returns how many comma-separated tokens row i holds.
func (f *Form) ValueCount(i int) int {
	if f.check(i) != nil {
		return 0
	}
	return len(splitList(f.DatasetValues[i]))
}

func (f *Form) ensurePalette(i, n int) {
	for len(f.Palettes[i]) < n {
		f.Palettes[i] = append(f.Palettes[i], f.color())
	}
}

// Submit turns the raw text into normalized chart data for t.
//
// Tokens that are not numbers become NaN and are kept. Scatter values are
// read as x,y pairs and a trailing odd value is dropped.
func (f *Form) Submit(t ChartType) *Data {
	data := &Data{Type: t}
	if !t.PointBased() {
		data.Labels = splitList(f.Labels)
	}

	data.Datasets = make([]Dataset, f.Len())
	for i, label := range f.DatasetLabels {
		values := parseValues(f.DatasetValues[i])

		switch t {
		case Scatter:
			points := make([]Point, 0, len(values)/2)
			for j := 0; j+1 < len(values); j += 2 {
				points = append(points, Point{X: values[j], Y: values[j+1]})
			}
			data.Datasets[i] = Dataset{Label: label, Points: points, Color: f.Colors[i]}
		case Line:
			data.Datasets[i] = Dataset{
				Label:       label,
				Values:      values,
				Color:       f.Colors[i],
				Fill:        LineFill,
				BorderWidth: 1,
			}
		default:
			f.ensurePalette(i, len(values))
			colors := make([]string, len(values))
			copy(colors, f.Palettes[i])
			data.Datasets[i] = Dataset{
				Label:       label,
				Values:      values,
				Colors:      colors,
				BorderWidth: 1,
			}
		}
	}
	return data
}

// splitList splits on commas and trims every item. An empty string yields
// one empty item, the same as the text field holding nothing.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func parseValues(s string) []float64 {
	items := splitList(s)
	values := make([]float64, len(items))
	for i, item := range items {
		// out of range values such as 1e400 count as unparsed
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			v = math.NaN()
		}
		values[i] = v
	}
	return values
}
