//go:build wasm
// +build wasm

package env

import (
	"io"
	"syscall/js"

	"github.com/tinywasm/fetch"

	"github.com/tinywasm/graph/errs"
	"github.com/tinywasm/graph/utils"
)

// SetupDefaultLogger writes to the browser console.
func SetupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		console := js.Global().Get("console")
		if !console.IsUndefined() {
			console.Call("log", utils.JoinArgs(a...))
		}
	}
}

// SetupDefaultFileWriter triggers a browser download; dir is ignored.
func SetupDefaultFileWriter(dir string) func(filename string, data []byte, mime string) error {
	return func(filename string, data []byte, mime string) error {
		uint8Array := js.Global().Get("Uint8Array").New(len(data))
		js.CopyBytesToJS(uint8Array, data)

		blob := js.Global().Get("Blob").New([]any{uint8Array}, map[string]any{"type": mime})
		url := js.Global().Get("URL").Call("createObjectURL", blob)

		link := js.Global().Get("document").Call("createElement", "a")
		link.Set("href", url)
		link.Set("download", filename)
		link.Call("click")
		js.Global().Get("URL").Call("revokeObjectURL", url)
		return nil
	}
}

// SetupDefaultFileReader fetches static resources from the page origin.
func SetupDefaultFileReader() func(path string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		resp, err := fetch.Get(path)
		if err != nil {
			return nil, errs.New("error fetching file", path, ':', err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return nil, errs.New("error fetching file", path, ':', "status", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errs.New("error reading response body for", path, ':', err)
		}
		return data, nil
	}
}

// SetupDefaultAlert shows window.alert.
func SetupDefaultAlert() func(message string) {
	return func(message string) {
		js.Global().Call("alert", message)
	}
}
