package m3u

import "strings"

// Canonical header names used in Channel.Headers.
const (
	HeaderUserAgent = "User-Agent"
	HeaderReferer   = "Referer"
	HeaderCookie    = "Cookie"
)

// canonicalHeaderName maps the key spellings found in playlists (VLC option
// keys, pipe-suffix keys) to the canonical HTTP header name. Matching is
// case-insensitive on the key; unrecognized keys report ok=false and are
// ignored by the caller.
func canonicalHeaderName(key string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "user-agent", "http-user-agent":
		return HeaderUserAgent, true
	case "referer", "referrer", "http-referer", "http-referrer":
		return HeaderReferer, true
	case "cookie", "http-cookie":
		return HeaderCookie, true
	}
	return "", false
}

// headerAccumulator collects the stream headers for the channel currently
// being assembled. Option lines are recorded first; the inline pipe suffix
// on the URL line is parsed last and overwrites them. The accumulator is
// reset once a channel is emitted and never outlives a single entry.
type headerAccumulator struct {
	headers map[string]string
}

func newHeaderAccumulator() *headerAccumulator {
	return &headerAccumulator{headers: make(map[string]string)}
}

func (a *headerAccumulator) reset() {
	a.headers = make(map[string]string)
}

// addOption records a single key=value player option. The value is
// everything after the first '=', trimmed. Unrecognized keys and lines
// without '=' are ignored without error.
func (a *headerAccumulator) addOption(opt string) {
	key, value, ok := strings.Cut(opt, "=")
	if !ok {
		return
	}
	canonical, ok := canonicalHeaderName(key)
	if !ok {
		return
	}
	a.headers[canonical] = strings.TrimSpace(value)
}

// consumePipe splits an inline |key=value[&key=value...] suffix off a URL
// line, records any recognized headers and returns the playback URL, which
// is only the portion before the first '|'.
func (a *headerAccumulator) consumePipe(rawURL string) string {
	url, suffix, found := strings.Cut(rawURL, "|")
	url = strings.TrimSpace(url)
	if !found {
		return url
	}
	for _, pair := range strings.Split(suffix, "&") {
		a.addOption(pair)
	}
	return url
}

// finish returns the header map for the channel being emitted. When neither
// syntax set a user agent the compiled-in default is injected, so every
// channel carries at least a User-Agent.
func (a *headerAccumulator) finish() map[string]string {
	out := make(map[string]string, len(a.headers)+1)
	for k, v := range a.headers {
		out[k] = v
	}
	if out[HeaderUserAgent] == "" {
		out[HeaderUserAgent] = DefaultUserAgent
	}
	return out
}
