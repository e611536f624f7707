//go:build !wasm
// +build !wasm

package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinywasm/graph/logging"
	"github.com/tinywasm/graph/utils"
)

// SetupDefaultLogger routes messages to the structured backend logger.
func SetupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		logging.Info().Msg(utils.JoinArgs(a...))
	}
}

// SetupDefaultFileWriter writes exported files below dir.
// eg: SetupDefaultFileWriter("out")("q1_sales.pdf", data, "application/pdf")
func SetupDefaultFileWriter(dir string) func(filename string, data []byte, mime string) error {
	return func(filename string, data []byte, mime string) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		path := filepath.Join(dir, filepath.Base(filename))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
}

// SetupDefaultFileReader reads resources from disk.
func SetupDefaultFileReader() func(path string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("file does not exist: %s", abs)
			}
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, not a file: %s", abs)
		}
		return os.ReadFile(abs)
	}
}

// SetupDefaultAlert reports user-facing failures as warnings.
func SetupDefaultAlert() func(message string) {
	return func(message string) {
		logging.Warn().Msg(message)
	}
}
