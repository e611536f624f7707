package graph

import (
	"strconv"
	"strings"

	. "github.com/tinywasm/fmt"
	"gopkg.in/yaml.v3"

	"github.com/tinywasm/graph/env"
	"github.com/tinywasm/graph/errs"
)

// FormFile is a form saved as YAML, used by the CLI in place of typing.
//
//	type: bar
//	title: Q1 Sales
//	labels: [Jan, Feb, Mar]
//	datasets:
//	  - label: North
//	    values: [10, 20, 30]
//	    palette: ["#FF6384", "#36A2EB", "#FFCE56"]
type FormFile struct {
	Type     ChartType         `yaml:"type"`
	Title    string            `yaml:"title"`
	Labels   []string          `yaml:"labels"`
	Datasets []FormFileDataset `yaml:"datasets"`
}

// FormFileDataset is one dataset row of a FormFile.
type FormFileDataset struct {
	Label   string    `yaml:"label"`
	Values  []float64 `yaml:"values"`
	Color   string    `yaml:"color"`
	Palette []string  `yaml:"palette"`
}

// ParseFormFile decodes YAML. An empty type means bar.
func ParseFormFile(data []byte) (*FormFile, error) {
	var ff FormFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, errs.New("invalid form file", ':', err)
	}
	if ff.Type == "" {
		ff.Type = Bar
	}
	if _, err := ParseChartType(string(ff.Type)); err != nil {
		return nil, err
	}
	if len(ff.Datasets) == 0 {
		return nil, errs.New("form file has no datasets")
	}
	return &ff, nil
}

// LoadFormFile reads a FormFile through env.FileReader.
func LoadFormFile(path string) (*FormFile, error) {
	data, err := env.FileReader(path)
	if err != nil {
		return nil, errs.New("load form file", path, ':', err)
	}
	return ParseFormFile(data)
}

// Fill writes the file into f the way a user would type it: one row per
// dataset, values joined by commas.
func (ff *FormFile) Fill(f *Form) {
	for f.Len() > 1 {
		f.RemoveDataset(f.Len() - 1)
	}
	f.SetLabels(strings.Join(ff.Labels, ", "))

	for i, ds := range ff.Datasets {
		if i > 0 {
			f.AddDataset()
		}
		label := ds.Label
		if label == "" {
			label = Sprintf("Dataset %d", i+1)
		}
		f.SetDatasetLabel(i, label)
		f.SetValues(i, joinValues(ds.Values))
		if ds.Color != "" {
			f.SetColor(i, ds.Color)
		}
		for j, c := range ds.Palette {
			f.SetPaletteColor(i, j, c)
		}
	}
}

// Apply selects the type, sets the title, fills f and submits it.
func (ff *FormFile) Apply(f *Form, p *Page) (*Data, error) {
	if err := p.SelectType(ff.Type); err != nil {
		return nil, err
	}
	p.SetTitle(ff.Title)
	ff.Fill(f)
	return p.Submit(f), nil
}

func joinValues(values []float64) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(items, ",")
}
