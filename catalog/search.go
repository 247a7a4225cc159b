package catalog

import (
	"strings"

	"github.com/alorle/iptv-catalog/m3u"
)

// Filter returns the subset of channels whose name or group contains query
// as a case-insensitive substring, intersected with the group filter unless
// it is empty or the All sentinel. It is a pure function with no side
// effects, idempotent, and cheap enough to call on every keystroke.
func Filter(channels []m3u.Channel, query, group string) []m3u.Channel {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	byGroup := group != "" && group != AllGroups

	var result []m3u.Channel
	for _, ch := range channels {
		if byGroup && ch.Group != group {
			continue
		}

		if queryLower != "" &&
			!strings.Contains(strings.ToLower(ch.Name), queryLower) &&
			!strings.Contains(strings.ToLower(ch.Group), queryLower) {
			continue
		}

		result = append(result, ch)
	}

	return result
}
