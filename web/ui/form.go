//go:build wasm
// +build wasm

package ui

import (
	"syscall/js"

	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/graph"
)

// renderRows redraws one row per dataset. Bar and pie rows get a color
// per value, line and scatter rows a single color.
func renderRows() {
	rowsBox.Set("innerHTML", "")
	t := G.Page.Type()
	perValue := t == graph.Bar || t == graph.Pie

	for i := 0; i < G.Form.Len(); i++ {
		rowsBox.Call("appendChild", datasetRow(i, perValue))
	}
}

func datasetRow(i int, perValue bool) js.Value {
	row := el("div", "dataset-row")

	label := input("text", G.Form.DatasetLabels[i])
	onInput(label, func(v string) { G.Form.SetDatasetLabel(i, v) })
	row.Call("appendChild", field("Label:", label))

	values := input("text", G.Form.DatasetValues[i])
	if G.Page.Type().PointBased() {
		values.Set("placeholder", "x1, y1, x2, y2")
	} else {
		values.Set("placeholder", "10, 20, 30")
	}
	row.Call("appendChild", field("Values:", values))

	colors := el("div", "colors")
	row.Call("appendChild", colors)
	drawColors(colors, i, perValue)

	onInput(values, func(v string) {
		G.Form.SetValues(i, v)
		if perValue {
			drawColors(colors, i, perValue)
		}
	})

	if G.Form.Len() > 1 {
		row.Call("appendChild", button("Remove", func() {
			if G.Form.RemoveDataset(i) {
				renderRows()
			}
		}))
	}
	return row
}

func drawColors(box js.Value, i int, perValue bool) {
	box.Set("innerHTML", "")
	if !perValue {
		picker := input("color", G.Form.Colors[i])
		onInput(picker, func(v string) { G.Form.SetColor(i, v) })
		box.Call("appendChild", picker)
		return
	}

	n := G.Form.ValueCount(i)
	for j := 0; j < n; j++ {
		j := j
		picker := input("color", G.Form.Palettes[i][j])
		picker.Set("title", Sprintf("Value %d", j+1))
		onInput(picker, func(v string) { G.Form.SetPaletteColor(i, j, v) })
		box.Call("appendChild", picker)
	}
}
