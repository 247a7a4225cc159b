// Package fetcher performs timed HTTP retrieval of the remote
// configuration and playlist documents. Failures are classified into a
// small taxonomy so the caller can decide on cache fallback.
package fetcher

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alorle/iptv-catalog/m3u"
)

// Fetcher retrieves remote documents over HTTP with a fixed timeout.
type Fetcher struct {
	client    *http.Client
	configURL string
	userAgent string
}

// New creates a Fetcher for the given configuration document location.
// Both FetchConfig and FetchPlaylist are bounded by timeout.
func New(configURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		configURL: configURL,
		userAgent: m3u.DefaultUserAgent,
	}
}

// FetchConfig retrieves the remote configuration document.
func (f *Fetcher) FetchConfig(ctx context.Context) ([]byte, error) {
	return f.fetch(ctx, f.configURL)
}

// FetchPlaylist retrieves the M3U document at url.
func (f *Fetcher) FetchPlaylist(ctx context.Context, url string) ([]byte, error) {
	return f.fetch(ctx, url)
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindUnreachable, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Kind: KindHTTPStatus, URL: url, Status: resp.StatusCode}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(url, err)
	}

	return content, nil
}

// classify maps a transport error to the fetch taxonomy. Deadline
// exhaustion from either the client timeout or the caller's context counts
// as a timeout; everything else is unreachable.
func classify(url string, err error) *FetchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &FetchError{Kind: KindTimeout, URL: url, Err: err}
	}
	return &FetchError{Kind: KindUnreachable, URL: url, Err: err}
}
