package m3u

import (
	"fmt"
	"io"
)

// Encoder writes a channel list back out as an extended M3U document, so a
// downstream player can consume the catalog without talking to the origin
// playlist.
type Encoder struct {
	items []Channel
}

func NewEncoder() *Encoder {
	return &Encoder{items: []Channel{}}
}

func (e *Encoder) AddChannel(ch Channel) {
	e.items = append(e.items, ch)
}

func (e *Encoder) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "#EXTM3U\n"); err != nil {
		return err
	}

	for _, item := range e.items {
		if err := encodeChannel(w, item); err != nil {
			return err
		}
	}

	return nil
}

func encodeChannel(w io.Writer, ch Channel) error {
	if _, err := fmt.Fprintf(w, "#EXTINF:-1"); err != nil {
		return err
	}

	if ch.LogoURL != "" {
		if _, err := fmt.Fprintf(w, " tvg-logo=\"%s\"", ch.LogoURL); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, " group-title=\"%s\",%s\n", ch.Group, ch.Name); err != nil {
		return err
	}

	// The default user agent is implicit; only explicit headers survive a
	// round trip.
	if ua := ch.Headers[HeaderUserAgent]; ua != "" && ua != DefaultUserAgent {
		if _, err := fmt.Fprintf(w, "%shttp-user-agent=%s\n", extvlcoptPrefix, ua); err != nil {
			return err
		}
	}
	if ref := ch.Headers[HeaderReferer]; ref != "" {
		if _, err := fmt.Fprintf(w, "%shttp-referrer=%s\n", extvlcoptPrefix, ref); err != nil {
			return err
		}
	}
	if cookie := ch.Headers[HeaderCookie]; cookie != "" {
		if _, err := fmt.Fprintf(w, "%shttp-cookie=%s\n", extvlcoptPrefix, cookie); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n", ch.StreamURL); err != nil {
		return err
	}

	return nil
}
