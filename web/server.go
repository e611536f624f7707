//go:build !wasm

package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tinywasm/graph"
	"github.com/tinywasm/graph/logging"
)

func main() {
	publicDir := flag.String("public-dir", "", "Directory containing static files")
	port := flag.String("port", "", "Port to listen on")
	flag.Parse()

	// Priority: flag > env var > default
	if *port == "" {
		*port = os.Getenv("PORT")
		if *port == "" {
			*port = "4430"
		}
	}

	if *publicDir == "" {
		*publicDir = os.Getenv("PUBLIC_DIR")
		if *publicDir == "" {
			*publicDir = "public"
		}
	}

	configPath := os.Getenv("GRAPH_CONFIG")
	cfg := graph.DefaultConfig()
	if configPath != "" {
		loaded, err := graph.LoadConfig(configPath)
		if err != nil {
			logging.Error().Err(err).Str("config", configPath).Msg("invalid config")
			os.Exit(1)
		}
		cfg = loaded
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})

	absPublicDir, err := filepath.Abs(*publicDir)
	if err != nil {
		logging.Error().Err(err).Msg("error resolving public directory path")
		os.Exit(1)
	}

	if _, err := os.Stat(absPublicDir); os.IsNotExist(err) {
		logging.Error().Str("dir", absPublicDir).Msg("static files directory does not exist")
		os.Exit(1)
	}

	logging.Info().Str("dir", absPublicDir).Msg("serving static files")

	server := &http.Server{
		Addr:    ":" + *port,
		Handler: newMux(absPublicDir, configPath),
	}

	logging.Info().Str("port", *port).Msg("starting server")
	if err := server.ListenAndServe(); err != nil {
		logging.Error().Err(err).Msg("server failed to start")
		os.Exit(1)
	}
}

// newMux serves the page without caching. When configPath is set the
// config is also served as /config.yaml for the wasm client.
func newMux(publicDir, configPath string) *http.ServeMux {
	fs := http.FileServer(http.Dir(publicDir))

	noCache := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			h.ServeHTTP(w, r)
		})
	}

	mux := http.NewServeMux()
	mux.Handle("/", noCache(fs))

	if configPath != "" {
		mux.Handle("/config.yaml", noCache(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			http.ServeFile(w, r, configPath)
		})))
	}

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is running"))
	})

	return mux
}
