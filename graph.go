package graph

import (
	"context"

	"github.com/tinywasm/graph/env"
	"github.com/tinywasm/graph/errs"
)

// LoggerFunc replaces the environment logger.
type LoggerFunc func(message ...any)

// SaveFunc replaces the environment file writer.
type SaveFunc func(name string, data []byte, mime string) error

// AlertFunc replaces the environment alert.
type AlertFunc func(message string)

// ReadFileFunc replaces the environment file reader.
type ReadFileFunc func(path string) ([]byte, error)

// Graph wires the form, the page, the preview and the exporter together.
// The browser UI and the CLI both drive one Graph.
type Graph struct {
	Form     *Form
	Page     *Page
	Preview  *Preview
	Exporter *Exporter
	Config   Config

	logger func(message ...any)
	cancel func()
}

// New builds a Graph. Options are a Config, LoggerFunc, SaveFunc,
// AlertFunc or ReadFileFunc; unset ones come from package env.
func New(options ...any) (*Graph, error) {
	g := &Graph{
		Config: DefaultConfig(),
		logger: env.Logger,
	}
	var save SaveFunc
	alert := AlertFunc(env.Alert)
	read := ReadFileFunc(env.FileReader)

	for _, opt := range options {
		switch v := opt.(type) {
		case Config:
			g.Config = v
		case LoggerFunc:
			g.logger = v
		case SaveFunc:
			save = v
		case AlertFunc:
			alert = v
		case ReadFileFunc:
			read = v
		}
	}
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	if save == nil {
		save = SaveFunc(env.SetupDefaultFileWriter(g.Config.OutputDir))
	}

	page, err := NewPage()
	if err != nil {
		return nil, err
	}

	g.Form = NewForm()
	g.Page = page
	g.Preview = NewPreview(g.Config.RenderOptions())
	g.Exporter = &Exporter{
		Save:     save,
		Notify:   alert,
		Log:      g.Log,
		ReadFile: read,
		FontPath: g.Config.FontPath,
	}
	g.cancel = page.Subscribe(func(s Snapshot) {
		g.Preview.Update(s)
	})
	return g, nil
}

// Log writes a diagnostic message.
func (g *Graph) Log(message ...any) {
	if g.logger != nil {
		g.logger(message...)
	}
}

// Submit reads the form into the page; the preview redraws.
func (g *Graph) Submit() error {
	g.Page.Submit(g.Form)
	if err := g.Preview.Err(); err != nil {
		g.Log("render", string(g.Page.Type()), "failed:", err)
		return err
	}
	return nil
}

// Export saves the chart currently shown in the preview.
func (g *Graph) Export(ctx context.Context, f Format) error {
	c := g.Preview.Container()
	if c == nil {
		err := errs.ErrNoChart
		g.Log("export", string(f), "failed:", err)
		return err
	}
	return g.Exporter.Export(ctx, c, g.Page.ExportTitle(), f)
}

// Close detaches the preview from the page.
func (g *Graph) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
