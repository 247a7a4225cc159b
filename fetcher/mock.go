package fetcher

import "context"

// MockFetcher is a mock implementation of the Interface for testing.
type MockFetcher struct {
	FetchConfigFunc   func(ctx context.Context) ([]byte, error)
	FetchPlaylistFunc func(ctx context.Context, url string) ([]byte, error)
}

// FetchConfig implements Interface.FetchConfig.
func (m *MockFetcher) FetchConfig(ctx context.Context) ([]byte, error) {
	if m.FetchConfigFunc != nil {
		return m.FetchConfigFunc(ctx)
	}
	return nil, nil
}

// FetchPlaylist implements Interface.FetchPlaylist.
func (m *MockFetcher) FetchPlaylist(ctx context.Context, url string) ([]byte, error) {
	if m.FetchPlaylistFunc != nil {
		return m.FetchPlaylistFunc(ctx, url)
	}
	return nil, nil
}
