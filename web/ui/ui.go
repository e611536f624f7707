//go:build wasm
// +build wasm

package ui

import (
	"syscall/js"

	"github.com/tinywasm/graph"
)

var (
	G          *graph.Graph
	document   js.Value
	titleInput js.Value
	labelInput js.Value
	rowsBox    js.Value
	typeBtns   = map[graph.ChartType]js.Value{}
)

// Setup builds the page and binds it to g.
func Setup(g *graph.Graph) {
	G = g
	document = js.Global().Get("document")
	setupUI()

	G.Preview.OnRender(ShowChart)
	G.Page.Subscribe(func(s graph.Snapshot) {
		markType(s.Type)
	})
}

func setupUI() {
	body := document.Get("body")
	body.Set("innerHTML", "")

	container := el("div", "container")

	heading := el("h1", "")
	heading.Set("textContent", "Chart Generator")
	container.Call("appendChild", heading)

	// chart type selector
	types := el("div", "type-selector")
	for _, t := range graph.ChartTypes {
		t := t
		btn := button(t.DefaultTitle(), func() {
			if err := G.Page.SelectType(t); err != nil {
				G.Log("select type:", err)
				return
			}
			renderRows()
		})
		typeBtns[t] = btn
		types.Call("appendChild", btn)
	}
	container.Call("appendChild", types)

	formSection := el("div", "form-section")

	titleInput = input("text", "")
	titleInput.Set("placeholder", "Chart title")
	onInput(titleInput, func(v string) { G.Page.SetTitle(v) })
	formSection.Call("appendChild", field("Title:", titleInput))

	labelInput = input("text", G.Form.Labels)
	labelInput.Set("placeholder", "Jan, Feb, Mar")
	onInput(labelInput, func(v string) { G.Form.SetLabels(v) })
	formSection.Call("appendChild", field("Labels (comma separated):", labelInput))

	rowsBox = el("div", "datasets")
	formSection.Call("appendChild", rowsBox)

	actions := el("div", "form-actions")
	actions.Call("appendChild", button("Add dataset", func() {
		G.Form.AddDataset()
		renderRows()
	}))
	actions.Call("appendChild", button("Create chart", func() {
		if err := G.Submit(); err != nil {
			ShowError("Could not draw the chart: " + err.Error())
		}
	}))
	formSection.Call("appendChild", actions)
	container.Call("appendChild", formSection)

	preview := el("div", "chart-container")
	preview.Set("id", "chart-container")
	container.Call("appendChild", preview)

	exports := el("div", "export-actions")
	for _, f := range graph.Formats {
		exports.Call("appendChild", exportButton(f))
	}
	container.Call("appendChild", exports)

	body.Call("appendChild", container)

	renderRows()
	loadStyles()
}

func markType(t graph.ChartType) {
	for typ, btn := range typeBtns {
		if typ == t {
			btn.Get("classList").Call("add", "active")
		} else {
			btn.Get("classList").Call("remove", "active")
		}
	}
}

func loadStyles() {
	head := document.Get("head")

	existingLink := document.Call("querySelector", "link[href='style.css']")
	if !existingLink.IsNull() {
		return
	}

	link := document.Call("createElement", "link")
	link.Set("rel", "stylesheet")
	link.Set("href", "style.css")
	head.Call("appendChild", link)
}

func el(tag, class string) js.Value {
	e := document.Call("createElement", tag)
	if class != "" {
		e.Set("className", class)
	}
	return e
}

func input(kind, value string) js.Value {
	in := el("input", "")
	in.Set("type", kind)
	in.Set("value", value)
	return in
}

func field(label string, in js.Value) js.Value {
	wrap := el("label", "field")
	span := el("span", "")
	span.Set("textContent", label)
	wrap.Call("appendChild", span)
	wrap.Call("appendChild", in)
	return wrap
}

func button(text string, fn func()) js.Value {
	btn := el("button", "")
	btn.Set("type", "button")
	btn.Set("textContent", text)
	btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	}))
	return btn
}

func onInput(in js.Value, fn func(string)) {
	in.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(this.Get("value").String())
		return nil
	}))
}
