package handlers

import (
	"net/http"

	"github.com/alorle/iptv-catalog/catalog"
	"github.com/alorle/iptv-catalog/m3u"
)

// createPlaylistHandler re-encodes the current snapshot as an extended M3U
// document, optionally restricted by the group query parameter.
func createPlaylistHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		snap := deps.Catalog.Current()
		channels := catalog.Filter(snap.Channels, "", r.URL.Query().Get("group"))

		encoder := m3u.NewEncoder()
		for _, ch := range channels {
			encoder.AddChannel(ch)
		}

		w.Header().Set("Content-Type", "audio/x-mpegurl")
		if err := encoder.Encode(w); err != nil {
			deps.Logger.Warn("error writing playlist response", "error", err)
		}
	}
}
