package m3u

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	extinfPrefix    = "#EXTINF:"
	extvlcoptPrefix = "#EXTVLCOPT:"
)

// ErrEmptyPlaylist is returned when a parse pass emits no channels at all.
// Malformed individual entries never cause it on their own; they degrade to
// the built-in fallback values instead.
var ErrEmptyPlaylist = errors.New("playlist contains no channels")

// Parser converts extended M3U text into an ordered list of Channel
// records. It is a single-pass, line-by-line state machine: an EXTINF line
// opens a pending entry, option lines accumulate headers for it, and the
// next non-comment line closes it with the stream URL.
type Parser struct {
	fallbackGroup string
}

// NewParser creates a Parser with the default fallback group label.
func NewParser() *Parser {
	return &Parser{fallbackGroup: DefaultGroup}
}

// NewParserWithGroup creates a Parser that buckets ungrouped channels under
// the given label instead of DefaultGroup.
func NewParserWithGroup(group string) *Parser {
	if strings.TrimSpace(group) == "" {
		group = DefaultGroup
	}
	return &Parser{fallbackGroup: group}
}

// Parse scans content in document order and returns the channels it
// describes, preserving source ordering. A URL line with no pending entry
// is silently dropped; a pending entry is discarded after every URL line
// whether or not it produced a channel. Returns ErrEmptyPlaylist when the
// resulting list is empty.
func (p *Parser) Parse(content []byte) ([]Channel, error) {
	lines := strings.Split(string(content), "\n")

	var (
		channels []Channel
		pending  bool
		name     string
		logo     string
		group    string
	)
	headers := newHeaderAccumulator()

	reset := func() {
		pending = false
		name, logo, group = "", "", ""
		headers.reset()
	}

	for _, raw := range lines {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))

		switch {
		case line == "":
			// Blank lines do not change state.

		case strings.HasPrefix(line, extinfPrefix):
			// A new metadata line discards any entry still pending.
			reset()
			name, logo, group = p.extractEntry(line, len(channels)+1)
			pending = true

		case strings.HasPrefix(line, extvlcoptPrefix):
			headers.addOption(strings.TrimPrefix(line, extvlcoptPrefix))

		case strings.HasPrefix(line, "#"):
			// Other comments are ignored and do not change state.

		default:
			if pending {
				url := headers.consumePipe(line)
				if url != "" {
					channels = append(channels, Channel{
						ID:        uuid.New(),
						Name:      name,
						LogoURL:   logo,
						Group:     group,
						StreamURL: url,
						Headers:   headers.finish(),
					})
				}
			}
			reset()
		}
	}

	if len(channels) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return channels, nil
}

// extractEntry resolves the display name, logo and group for one EXTINF
// line. The display name falls back to tvg-name and then to a synthesized
// "Channel n" using the 1-based position the entry would take in the
// output. The group falls back to the parser's fallback label when absent
// or empty; the logo stays empty when absent.
func (p *Parser) extractEntry(line string, n int) (name, logo, group string) {
	name = extractDisplayName(line)
	if name == "" {
		name = strings.TrimSpace(extractAttribute(tvgNameRegex, line))
	}
	if name == "" {
		name = fmt.Sprintf("Channel %d", n)
	}

	logo = extractAttribute(tvgLogoRegex, line)

	group = extractAttribute(groupTitleRegex, line)
	if group == "" {
		group = p.fallbackGroup
	}
	return name, logo, group
}
