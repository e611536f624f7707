package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tinywasm/graph"
	"github.com/tinywasm/graph/env"
	"github.com/tinywasm/graph/logging"
	"github.com/tinywasm/graph/utils"
)

// renderOptions holds options for the render command.
type renderOptions struct {
	configPath string
	formPath   string
	chartType  string
	title      string
	labels     string
	datasets   []string
	colors     []string
	formats    []string
	outDir     string
	output     string
	watch      bool
}

func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart and export it",
		Long: `Render a chart from flags or a YAML form file and write it to disk.

Values are comma-separated like in the browser form. Scatter charts read
values as x,y pairs.

Examples:
  # Bar chart with two datasets as PNG and PDF
  graphmaker render -t bar --title "Q1 Sales" --labels Jan,Feb,Mar \
    -d North=10,20,30 -d South=5,15,25 --format png,pdf

  # Vector chart from a form file, re-rendered on every save
  graphmaker render -f sales.yaml --format svg --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().StringVarP(&opts.formPath, "form", "f", "", "Path to YAML form file")
	cmd.Flags().StringVarP(&opts.chartType, "type", "t", "bar", "Chart type (bar, line, pie, scatter)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Chart title")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "Comma-separated category labels")
	cmd.Flags().StringArrayVarP(&opts.datasets, "dataset", "d", nil, "Dataset as label=v1,v2,... (repeatable)")
	cmd.Flags().StringArrayVar(&opts.colors, "color", nil, "Dataset color as #RRGGBB, in dataset order (repeatable)")
	cmd.Flags().StringSliceVar(&opts.formats, "format", []string{"png"}, "Export formats (png, svg, pdf)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&opts.output, "output", "", "Render output: raster or vector (overrides config)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-render when the form file changes")

	return cmd
}

func (a *App) runRender(ctx context.Context, opts *renderOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: a.stderr})

	formats, err := parseFormats(opts.formats)
	if err != nil {
		return err
	}
	if opts.watch && opts.formPath == "" {
		return errors.New("--watch needs a form file (-f)")
	}

	if err := a.renderOnce(ctx, cfg, opts, formats); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return a.watch(ctx, opts.formPath, func() error {
		return a.renderOnce(ctx, cfg, opts, formats)
	})
}

func (a *App) loadConfig(opts *renderOptions) (graph.Config, error) {
	cfg := graph.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := graph.LoadConfig(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	if opts.outDir != "" {
		cfg.OutputDir = opts.outDir
	}
	if opts.output != "" {
		cfg.Output = graph.Output(opts.output)
	} else if hasFormat(opts.formats, graph.SVG) {
		// svg export reads the vector markup
		cfg.Output = graph.Vector
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// renderOnce builds a fresh Graph, fills it and exports every format.
func (a *App) renderOnce(ctx context.Context, cfg graph.Config, opts *renderOptions, formats []graph.Format) error {
	var failures []string
	g, err := graph.New(
		cfg,
		graph.SaveFunc(env.SetupDefaultFileWriter(cfg.OutputDir)),
		graph.AlertFunc(func(msg string) {
			failures = append(failures, msg)
			logging.Warn().Msg(msg)
		}),
		graph.LoggerFunc(func(message ...any) {
			logging.Debug().Msg(utils.JoinArgs(message...))
		}),
	)
	if err != nil {
		return err
	}
	defer g.Close()

	if opts.formPath != "" {
		ff, err := graph.LoadFormFile(opts.formPath)
		if err != nil {
			return err
		}
		if _, err := ff.Apply(g.Form, g.Page); err != nil {
			return err
		}
	} else {
		if err := fillFromFlags(g, opts); err != nil {
			return err
		}
		if err := g.Submit(); err != nil {
			return err
		}
	}
	if err := g.Preview.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	typ := string(g.Page.Type())
	for _, f := range formats {
		if err := g.Export(ctx, f); err != nil {
			logging.With(logging.Error(),
				logging.ChartType(typ),
				logging.Format(string(f)),
				logging.ErrorField(err),
			).Msg("export failed")
			return fmt.Errorf("export %s: %w", f, err)
		}
		name := filepath.Join(cfg.OutputDir, graph.FileName(g.Page.ExportTitle(), f))
		logging.With(logging.Info(),
			logging.ChartType(typ),
			logging.Format(string(f)),
			logging.File(name),
		).Msg("chart exported")
		fmt.Fprintln(a.stdout, name)
	}
	if len(failures) > 0 {
		return errors.New(strings.Join(failures, "; "))
	}
	return nil
}

// fillFromFlags types the flag values into the page and form.
func fillFromFlags(g *graph.Graph, opts *renderOptions) error {
	t, err := graph.ParseChartType(strings.ToLower(opts.chartType))
	if err != nil {
		return err
	}
	if err := g.Page.SelectType(t); err != nil {
		return err
	}
	g.Page.SetTitle(opts.title)
	g.Form.SetLabels(opts.labels)

	if len(opts.datasets) == 0 {
		return errors.New("at least one --dataset is required without a form file")
	}
	for i, spec := range opts.datasets {
		if i > 0 {
			g.Form.AddDataset()
		}
		label, values, ok := strings.Cut(spec, "=")
		if !ok {
			values, label = label, ""
		}
		if label != "" {
			if err := g.Form.SetDatasetLabel(i, label); err != nil {
				return err
			}
		}
		if err := g.Form.SetValues(i, values); err != nil {
			return err
		}
	}
	for i, c := range opts.colors {
		if _, err := graph.ParseHex(c); err != nil {
			return err
		}
		if err := g.Form.SetColor(i, c); err != nil {
			return fmt.Errorf("--color %s: %w", c, err)
		}
	}
	return nil
}

func parseFormats(names []string) ([]graph.Format, error) {
	formats := make([]graph.Format, 0, len(names))
	for _, n := range names {
		f, err := graph.ParseFormat(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, errors.New("no export format given")
	}
	return formats, nil
}

func hasFormat(names []string, f graph.Format) bool {
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), string(f)) {
			return true
		}
	}
	return false
}
