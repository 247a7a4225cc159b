package catalog

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alorle/iptv-catalog/m3u"
	"github.com/alorle/iptv-catalog/remoteconfig"
)

// AllGroups is the sentinel group that disables group filtering. It is
// always the first entry of Snapshot.Groups.
const AllGroups = "All"

// SourceState indicates where the documents behind a snapshot came from.
type SourceState string

const (
	// SourceEmpty marks the zero snapshot served before the first
	// successful reload.
	SourceEmpty SourceState = "empty"
	// SourceLive means both documents were fetched from the network.
	SourceLive SourceState = "live"
	// SourceCached means at least one document came from the local cache.
	SourceCached SourceState = "cached"
)

// Snapshot is the externally visible state of the catalog: the active
// configuration, the ordered channel list and the group index. It is
// constructed atomically, replaced wholesale on every reload and never
// mutated in place, so a consumer always observes a consistent catalog.
type Snapshot struct {
	ID       uuid.UUID               `json:"id"`
	Config   *remoteconfig.AppConfig `json:"config"`
	Channels []m3u.Channel           `json:"channels"`
	Groups   []string                `json:"groups"`
	Source   SourceState             `json:"source"`
	LoadedAt time.Time               `json:"loaded_at"`
}

// emptySnapshot is what Current returns before the first successful
// reload.
func emptySnapshot() *Snapshot {
	return &Snapshot{
		ID:     uuid.New(),
		Groups: []string{AllGroups},
		Source: SourceEmpty,
	}
}

// buildGroups collects the distinct group labels of the parsed channels,
// sorted lexicographically, with the All sentinel prepended.
func buildGroups(channels []m3u.Channel) []string {
	seen := make(map[string]struct{}, len(channels))
	var names []string
	for _, ch := range channels {
		if _, ok := seen[ch.Group]; ok {
			continue
		}
		seen[ch.Group] = struct{}{}
		names = append(names, ch.Group)
	}
	sort.Strings(names)

	groups := make([]string, 0, len(names)+1)
	groups = append(groups, AllGroups)
	return append(groups, names...)
}
