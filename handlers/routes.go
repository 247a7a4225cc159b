// Package handlers is the consuming surface over the catalog core: a small
// HTTP mux a UI layer (or any player) can read snapshots from and trigger
// reloads through. It never mutates the catalog beyond calling Reload.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alorle/iptv-catalog/catalog"
)

// Dependencies holds all the dependencies needed by the handlers.
type Dependencies struct {
	Catalog *catalog.Service
	Logger  *slog.Logger
}

// SetupRoutes configures all HTTP routes and handlers.
func SetupRoutes(deps Dependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.Logger.Warn("error writing health response", "error", err)
		}
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/channels", createChannelsHandler(deps))
	mux.HandleFunc("/api/groups", createGroupsHandler(deps))
	mux.HandleFunc("/api/reload", createReloadHandler(deps))

	mux.HandleFunc("/playlist.m3u", createPlaylistHandler(deps))

	return mux
}
