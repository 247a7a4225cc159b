package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Reloads counts catalog reloads by result ("live", "cached", "error").
	Reloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_reloads_total",
		Help: "Total number of catalog reloads by result",
	}, []string{"result"})

	// FetchErrors counts failed document retrievals by document and kind.
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetch_errors_total",
		Help: "Total number of failed remote document fetches",
	}, []string{"document", "kind"})

	// CacheFallbacks counts how often a document was served from the local
	// cache because the remote fetch failed.
	CacheFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_fallbacks_total",
		Help: "Total number of documents served from the local cache",
	}, []string{"document"})

	// ChannelsLoaded tracks the channel count of the current snapshot.
	ChannelsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_channels_loaded",
		Help: "Number of channels in the current catalog snapshot",
	})

	// GroupsLoaded tracks the group count of the current snapshot,
	// including the All sentinel.
	GroupsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_groups_loaded",
		Help: "Number of groups in the current catalog snapshot",
	})

	// ReloadDuration observes how long a full reload takes.
	ReloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_reload_duration_seconds",
		Help:    "Duration of catalog reloads",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordReload increments the reload counter for the given result.
func RecordReload(result string) {
	Reloads.WithLabelValues(result).Inc()
}

// RecordFetchError increments the fetch error counter for a document and
// error kind.
func RecordFetchError(document, kind string) {
	FetchErrors.WithLabelValues(document, kind).Inc()
}

// RecordCacheFallback increments the cache fallback counter for a document.
func RecordCacheFallback(document string) {
	CacheFallbacks.WithLabelValues(document).Inc()
}

// SetCatalogSize updates the snapshot size gauges.
func SetCatalogSize(channels, groups int) {
	ChannelsLoaded.Set(float64(channels))
	GroupsLoaded.Set(float64(groups))
}
