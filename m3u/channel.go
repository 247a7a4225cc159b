package m3u

import "github.com/google/uuid"

// DefaultGroup is the bucket assigned to channels whose metadata carries no
// group-title.
const DefaultGroup = "Others"

// DefaultUserAgent is sent with stream requests when a playlist entry does
// not declare its own user agent.
const DefaultUserAgent = "IPTVCatalog/1.0"

// Channel represents a single playable entry parsed from an extended M3U
// document. Channels are created exclusively by the Parser during a parse
// pass and are never mutated afterwards; every reload replaces the whole
// list.
type Channel struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	LogoURL   string            `json:"logo"`
	Group     string            `json:"group"`
	StreamURL string            `json:"url"`
	Headers   map[string]string `json:"headers"`
}
