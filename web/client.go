//go:build wasm

package main

import (
	"github.com/tinywasm/graph"
	"github.com/tinywasm/graph/env"
	"github.com/tinywasm/graph/web/ui"
)

func main() {
	cfg, err := graph.LoadConfig("config.yaml")
	if err != nil {
		env.Logger("using default config:", err)
		cfg = graph.DefaultConfig()
	}

	g, err := graph.New(cfg)
	if err != nil {
		env.Alert(err.Error())
		return
	}

	g.Log("graph page starting")

	ui.Setup(g)

	g.Log("graph page ready")

	select {}
}
