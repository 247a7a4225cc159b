package fetcher

import "context"

// Interface defines the contract for timed retrieval of the remote
// configuration and playlist documents. Implementations perform no retries;
// retry and backoff policy belongs to the caller.
type Interface interface {
	// FetchConfig retrieves the remote configuration document.
	FetchConfig(ctx context.Context) ([]byte, error)

	// FetchPlaylist retrieves the M3U document at the given URL.
	FetchPlaylist(ctx context.Context, url string) ([]byte, error)
}
