package m3u

import (
	"regexp"
	"strings"
)

var (
	tvgNameRegex    = regexp.MustCompile(`tvg-name="([^"]*)"`)
	tvgLogoRegex    = regexp.MustCompile(`tvg-logo="([^"]*)"`)
	groupTitleRegex = regexp.MustCompile(`group-title="([^"]*)"`)
)

// extractDisplayName extracts the display name from an EXTINF line.
// The display name is the text after the last comma in
// "#EXTINF:-1 tvg-id="..." tvg-name="...",Channel Name".
// Returns empty string if the line has no comma.
func extractDisplayName(extinf string) string {
	commaIdx := strings.LastIndex(extinf, ",")
	if commaIdx == -1 {
		return ""
	}
	return strings.TrimSpace(extinf[commaIdx+1:])
}

// extractAttribute extracts a single quoted key="value" attribute from an
// EXTINF line. Attribute keys are matched case-sensitively and may appear
// in any order; unrecognized attributes are ignored by the caller simply
// by never asking for them. Returns empty string when the attribute is
// absent.
func extractAttribute(re *regexp.Regexp, extinf string) string {
	matches := re.FindStringSubmatch(extinf)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}
