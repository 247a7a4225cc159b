package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alorle/iptv-catalog/catalog"
	"github.com/alorle/iptv-catalog/m3u"
)

// channelsResponse is the JSON shape served to the UI layer.
type channelsResponse struct {
	SnapshotID string              `json:"snapshot_id"`
	Source     catalog.SourceState `json:"source"`
	Query      string              `json:"query,omitempty"`
	Group      string              `json:"group,omitempty"`
	Count      int                 `json:"count"`
	Channels   []m3u.Channel       `json:"channels"`
}

// createChannelsHandler serves the current channel list, filtered by the
// optional q (search) and group query parameters.
func createChannelsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		snap := deps.Catalog.Current()
		query := r.URL.Query().Get("q")
		group := r.URL.Query().Get("group")

		channels := catalog.Filter(snap.Channels, query, group)
		if channels == nil {
			channels = []m3u.Channel{}
		}

		resp := channelsResponse{
			SnapshotID: snap.ID.String(),
			Source:     snap.Source,
			Query:      query,
			Group:      group,
			Count:      len(channels),
			Channels:   channels,
		}

		writeJSON(w, deps, http.StatusOK, resp)
	}
}

// createGroupsHandler serves the group index of the current snapshot.
func createGroupsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		snap := deps.Catalog.Current()
		writeJSON(w, deps, http.StatusOK, map[string]any{
			"snapshot_id": snap.ID.String(),
			"source":      snap.Source,
			"groups":      snap.Groups,
		})
	}
}

// createReloadHandler triggers a reload. Terminal reload failures map to
// 503 so the client can render a retry prompt.
func createReloadHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		snap, err := deps.Catalog.Reload(r.Context())
		if err != nil {
			if errors.Is(err, catalog.ErrNoConfigAvailable) || errors.Is(err, catalog.ErrNoPlaylistAvailable) {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
			deps.Logger.Error("reload failed", "error", err)
			http.Error(w, "reload failed", http.StatusInternalServerError)
			return
		}

		writeJSON(w, deps, http.StatusOK, map[string]any{
			"snapshot_id": snap.ID.String(),
			"source":      snap.Source,
			"channels":    len(snap.Channels),
			"groups":      len(snap.Groups),
		})
	}
}

func writeJSON(w http.ResponseWriter, deps Dependencies, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		deps.Logger.Warn("error writing JSON response", "error", err)
	}
}
