//go:build wasm
// +build wasm

package ui

import (
	"context"
	"syscall/js"

	"github.com/tinywasm/graph"
)

// ShowChart is the preview callback: vector charts are inlined, raster
// charts shown through a Blob URL image.
func ShowChart(c *graph.Container, err error) {
	box := document.Call("getElementById", "chart-container")
	if box.IsNull() {
		G.Log("chart-container not found")
		return
	}
	box.Set("innerHTML", "")

	if err != nil {
		ShowError("Could not draw the chart: " + err.Error())
		return
	}
	if c == nil {
		return
	}

	if markup := c.Markup(); markup != nil {
		box.Set("innerHTML", string(markup))
		return
	}

	img, err := c.Rasterize()
	if err != nil {
		ShowError("Could not draw the chart: " + err.Error())
		return
	}

	uint8Array := js.Global().Get("Uint8Array").New(len(img))
	js.CopyBytesToJS(uint8Array, img)
	blob := js.Global().Get("Blob").New([]any{uint8Array}, map[string]any{"type": "image/png"})

	previous := box.Get("dataset").Get("url")
	if !previous.IsUndefined() {
		js.Global().Get("URL").Call("revokeObjectURL", previous)
	}
	url := js.Global().Get("URL").Call("createObjectURL", blob).String()
	box.Get("dataset").Set("url", url)

	image := el("img", "chart-image")
	image.Set("src", url)
	image.Set("alt", c.Title)
	box.Call("appendChild", image)
}

// ShowError shows message in place of the chart.
func ShowError(message string) {
	box := document.Call("getElementById", "chart-container")
	box.Set("innerHTML", "")

	errorDiv := el("div", "error-message")
	errorDiv.Set("textContent", message)
	box.Call("appendChild", errorDiv)
}

// exportButton runs the export off the event loop so the page stays
// responsive; failures are reported by the exporter.
func exportButton(f graph.Format) js.Value {
	return button("Export "+string(f), func() {
		go G.Export(context.Background(), f)
	})
}
