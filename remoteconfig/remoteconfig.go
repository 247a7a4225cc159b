// Package remoteconfig models the remotely hosted JSON document that
// drives app behavior and points at the playlist to ingest. Every field is
// optional; absence never raises an error, only invalid JSON does.
package remoteconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultPlaylistURL is the compiled-in fallback used when the remote
// configuration omits app.m3u_url.
const DefaultPlaylistURL = "https://iptv-org.github.io/iptv/index.m3u"

// ErrMalformedConfig is returned when the configuration document is not
// valid JSON.
var ErrMalformedConfig = errors.New("malformed configuration document")

// App groups the behavior fields the catalog core consumes directly.
type App struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	WelcomeText  string `json:"welcome_text"`
	Notification string `json:"notification"`
	M3UURL       string `json:"m3u_url"`
}

// Features carries the remote boolean switches. Absent flags decode to
// false; unknown flags are dropped.
type Features struct {
	ShowWelcome      bool `json:"show_welcome"`
	ShowNotification bool `json:"show_notification"`
	ShowUpdates      bool `json:"show_updates"`
}

// AppConfig is the remote-controlled behavior descriptor. The updates,
// downloads, legal and contact sections are opaque to the core; they are
// carried as raw JSON and handed to the consumer untouched.
type AppConfig struct {
	App       App             `json:"app"`
	Updates   json.RawMessage `json:"updates,omitempty"`
	Downloads json.RawMessage `json:"downloads,omitempty"`
	Legal     json.RawMessage `json:"legal,omitempty"`
	Contact   json.RawMessage `json:"contact,omitempty"`
	Features  Features        `json:"features"`
}

// Parse decodes a configuration document. A well-formed document with
// missing fields parses cleanly and relies on the documented fallbacks.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	return &cfg, nil
}

// PlaylistURL returns the location of the M3U document to fetch next. It
// is never empty: a missing app.m3u_url falls back to the compiled-in
// default.
func (c *AppConfig) PlaylistURL() string {
	if strings.TrimSpace(c.App.M3UURL) == "" {
		return DefaultPlaylistURL
	}
	return strings.TrimSpace(c.App.M3UURL)
}
