// Package catalog orchestrates the remote source, the M3U parser and the
// cache store under a fetch-or-fallback policy, and exposes the resulting
// channel set plus group index to consumers.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alorle/iptv-catalog/cache"
	"github.com/alorle/iptv-catalog/fetcher"
	"github.com/alorle/iptv-catalog/m3u"
	"github.com/alorle/iptv-catalog/metrics"
	"github.com/alorle/iptv-catalog/remoteconfig"
)

// Terminal reload errors. Fetch and parse problems are recovered locally
// by falling back to the cache; only these two surface to the caller, to
// be rendered as a retry prompt.
var (
	ErrNoConfigAvailable   = errors.New("no configuration available: remote fetch failed and cache is empty")
	ErrNoPlaylistAvailable = errors.New("no playlist available: remote fetch failed and cache is empty")
)

// Service maintains the current catalog snapshot. Reload is the only
// writer of both the snapshot and the cache; concurrent readers always
// observe the old or the new snapshot in full.
type Service struct {
	source fetcher.Interface
	store  cache.Storage
	parser *m3u.Parser
	logger *slog.Logger

	mu      sync.RWMutex
	current *Snapshot

	inflightMu     sync.Mutex
	inflightCancel context.CancelFunc
	inflightGen    uint64
}

// NewService creates a catalog service. Before the first successful reload
// Current returns an empty snapshot.
func NewService(source fetcher.Interface, store cache.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:  source,
		store:   store,
		parser:  m3u.NewParser(),
		logger:  logger,
		current: emptySnapshot(),
	}
}

// Current returns the last complete snapshot.
func (s *Service) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload fetches the configuration and playlist documents, falling back to
// the cached copies when the network fails, and atomically installs a new
// snapshot. It is idempotent and safe to call repeatedly; a Reload started
// while another is in flight cancels the earlier one so the cache only
// ever has a single writer.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	gen := s.beginReload(cancel)
	defer s.endReload(gen, cancel)

	start := time.Now()

	cfg, cfgLive, err := s.resolveConfig(ctx)
	if err != nil {
		metrics.RecordReload("error")
		return nil, err
	}

	channels, playlistLive, err := s.resolvePlaylist(ctx, cfg.PlaylistURL())
	if err != nil {
		metrics.RecordReload("error")
		return nil, err
	}

	// A canceled reload must not install a snapshot; the newer reload owns
	// the state now.
	if err := ctx.Err(); err != nil {
		metrics.RecordReload("error")
		return nil, err
	}

	snap := &Snapshot{
		ID:       uuid.New(),
		Config:   cfg,
		Channels: channels,
		Groups:   buildGroups(channels),
		Source:   SourceCached,
		LoadedAt: time.Now(),
	}
	if cfgLive && playlistLive {
		snap.Source = SourceLive
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	metrics.RecordReload(string(snap.Source))
	metrics.SetCatalogSize(len(snap.Channels), len(snap.Groups))
	metrics.ReloadDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("catalog reloaded",
		"snapshot_id", snap.ID,
		"source", snap.Source,
		"channels", len(snap.Channels),
		"groups", len(snap.Groups)-1,
		"duration", time.Since(start),
	)

	return snap, nil
}

// resolveConfig fetches the remote configuration, caching it on success
// and falling back to the cached copy on any fetch or parse failure. The
// bool reports whether the configuration is live.
func (s *Service) resolveConfig(ctx context.Context) (*remoteconfig.AppConfig, bool, error) {
	raw, err := s.source.FetchConfig(ctx)
	if err == nil {
		cfg, parseErr := remoteconfig.Parse(raw)
		if parseErr == nil {
			if writeErr := s.store.Write(cache.KeyConfig, raw); writeErr != nil {
				s.logger.Warn("failed to cache configuration", "error", writeErr)
			}
			return cfg, true, nil
		}
		err = parseErr
	}

	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}

	s.recordFetchFailure("config", err)
	s.logger.Warn("falling back to cached configuration", "error", err)

	cached, cacheErr := s.store.Read(cache.KeyConfig)
	if cacheErr != nil {
		return nil, false, ErrNoConfigAvailable
	}

	cfg, parseErr := remoteconfig.Parse(cached)
	if parseErr != nil {
		return nil, false, ErrNoConfigAvailable
	}

	metrics.RecordCacheFallback("config")
	return cfg, false, nil
}

// resolvePlaylist fetches and parses the playlist, falling back to the
// cached text on fetch failure. An empty live playlist counts as a fetch
// failure for fallback purposes, and the cache is only written after the
// live text parsed to a non-empty channel list, so stale or absent data
// never overwrites a good cached playlist. The bool reports whether the
// playlist is live.
func (s *Service) resolvePlaylist(ctx context.Context, url string) ([]m3u.Channel, bool, error) {
	raw, err := s.source.FetchPlaylist(ctx, url)
	if err == nil {
		channels, parseErr := s.parser.Parse(raw)
		if parseErr == nil {
			if writeErr := s.store.Write(cache.KeyPlaylist, raw); writeErr != nil {
				s.logger.Warn("failed to cache playlist", "error", writeErr)
			}
			return channels, true, nil
		}
		err = parseErr
	}

	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}

	s.recordFetchFailure("playlist", err)
	s.logger.Warn("falling back to cached playlist", "url", url, "error", err)

	cached, cacheErr := s.store.Read(cache.KeyPlaylist)
	if cacheErr != nil {
		return nil, false, ErrNoPlaylistAvailable
	}

	channels, parseErr := s.parser.Parse(cached)
	if parseErr != nil {
		return nil, false, ErrNoPlaylistAvailable
	}

	metrics.RecordCacheFallback("playlist")
	return channels, false, nil
}

func (s *Service) recordFetchFailure(document string, err error) {
	var fetchErr *fetcher.FetchError
	if errors.As(err, &fetchErr) {
		metrics.RecordFetchError(document, fetchErr.Kind.String())
		return
	}
	metrics.RecordFetchError(document, "parse")
}

// beginReload cancels any in-flight reload and registers this one.
func (s *Service) beginReload(cancel context.CancelFunc) uint64 {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()

	if s.inflightCancel != nil {
		s.inflightCancel()
	}
	s.inflightCancel = cancel
	s.inflightGen++
	return s.inflightGen
}

// endReload releases the in-flight registration if it still belongs to
// this reload.
func (s *Service) endReload(gen uint64, cancel context.CancelFunc) {
	s.inflightMu.Lock()
	if s.inflightGen == gen {
		s.inflightCancel = nil
	}
	s.inflightMu.Unlock()
	cancel()
}
