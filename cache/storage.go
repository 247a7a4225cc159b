// Package cache provides durable key/value persistence of the last
// successfully fetched configuration and playlist documents. The store
// holds raw fetched bytes and enforces no TTL; staleness policy lives in
// the catalog service.
package cache

import "errors"

// Fixed slot keys used by the catalog reload path. The two slots are read
// and written independently.
const (
	KeyConfig   = "config"
	KeyPlaylist = "playlist"
)

// ErrNotFound is returned by Read when a slot has never been written.
var ErrNotFound = errors.New("cache entry not found")

// Storage defines the interface for cache operations. Writes are
// last-write-wins and overwrite any previous value for that key; there is
// no versioning or history.
type Storage interface {
	// Read returns the raw bytes stored under key, or ErrNotFound.
	Read(key string) ([]byte, error)

	// Write stores data under key, replacing any previous value.
	Write(key string, data []byte) error
}
