package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApp_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "graphmaker version") {
		t.Errorf("version output missing 'graphmaker version', got: %s", stdout.String())
	}
}

func TestApp_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	if err := app.ExecuteWithArgs(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("help command failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "render") {
		t.Errorf("help output missing 'render' command, got: %s", stdout.String())
	}
}

func TestApp_RenderFlags(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)

	err := app.ExecuteWithArgs(context.Background(), []string{
		"render", "-t", "bar", "--title", "Q1 Sales",
		"--labels", "Jan,Feb,Mar",
		"-d", "North=10,20,30", "-d", "South=5,15,25",
		"--color", "#112233",
		"--format", "png,svg,pdf", "-o", dir,
	})
	if err != nil {
		t.Fatalf("render failed: %v\nstderr: %s", err, stderr.String())
	}

	for _, name := range []string{"q1_sales.png", "q1_sales.svg", "q1_sales.pdf"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("stdout does not list %s", name)
		}
	}
}

func TestApp_RenderFormFile(t *testing.T) {
	dir := t.TempDir()
	form := filepath.Join(dir, "points.yaml")
	content := `
type: scatter
datasets:
  - label: samples
    values: [1, 2, 3, 5, 4, 1]
`
	if err := os.WriteFile(form, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	if err := app.ExecuteWithArgs(context.Background(), []string{"render", "-f", form, "-o", dir}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "scatter_grafik.png")); err != nil {
		t.Errorf("scatter_grafik.png not written: %v", err)
	}
}

func TestApp_RenderErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no dataset", []string{"render", "-o", dir}},
		{"bad type", []string{"render", "-t", "radar", "-d", "1,2", "-o", dir}},
		{"bad format", []string{"render", "-d", "1,2", "--format", "gif", "-o", dir}},
		{"bad color", []string{"render", "-d", "1,2", "--color", "blue", "-o", dir}},
		{"svg from raster", []string{"render", "-d", "1,2", "--format", "svg", "--output", "raster", "-o", dir}},
		{"watch without form", []string{"render", "-d", "1,2", "--watch", "-o", dir}},
		{"missing form", []string{"render", "-f", filepath.Join(dir, "nope.yaml"), "-o", dir}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			app := New().WithOutput(&stdout, &stderr)
			if err := app.ExecuteWithArgs(context.Background(), tt.args); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("failed renders wrote %d files", len(entries))
	}
}
