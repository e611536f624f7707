package graph

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tinywasm/graph/env"
	"github.com/tinywasm/graph/errs"
)

// Config holds the settings shared by the page, the CLI and the server.
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Output    Output `yaml:"output"`
	OutputDir string `yaml:"output_dir"`
	FontPath  string `yaml:"font_path"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig renders 800x500 raster charts into the working directory.
func DefaultConfig() Config {
	opts := DefaultRenderOptions()
	return Config{
		Width:     opts.Width,
		Height:    opts.Height,
		Output:    opts.Output,
		OutputDir: ".",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// RenderOptions extracts the renderer settings.
func (c Config) RenderOptions() RenderOptions {
	return RenderOptions{Width: c.Width, Height: c.Height, Output: c.Output}
}

// ParseConfig reads YAML over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errs.New("invalid config", ':', err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config through env.FileReader.
func LoadConfig(path string) (Config, error) {
	data, err := env.FileReader(path)
	if err != nil {
		return Config{}, errs.New("load config", path, ':', err)
	}
	return ParseConfig(data)
}

// Validate rejects sizes and output modes the renderers cannot use.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errs.New("invalid chart size", strconv.Itoa(c.Width)+"x"+strconv.Itoa(c.Height))
	}
	switch c.Output {
	case Raster, Vector:
	default:
		return errs.New("invalid output '"+string(c.Output)+"', want raster or vector")
	}
	return nil
}
