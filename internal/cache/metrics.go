package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Groups of catalog responses. Each group is a separate cache with its own series
// and, on Redis, its own keys.
const (
	GroupSearch   = "search"
	GroupEpisodes = "episodes"
)

// Groups lists every group a cache may be created for.
var Groups = []string{GroupSearch, GroupEpisodes}

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

var (
	// LookupsTotal counts cache lookups by group and result ("hit" or "miss").
	LookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showsearch",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of catalog response lookups in the cache.",
		},
		[]string{"group", "result"},
	)

	// EvictionsTotal counts catalog responses pushed out of a group by size limits.
	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showsearch",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of catalog responses evicted from the cache.",
		},
		[]string{"group"},
	)

	// StoredBytesTotal sums the size of the response bodies written to a group.
	StoredBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "showsearch",
			Subsystem: "cache",
			Name:      "stored_bytes_total",
			Help:      "Total bytes of catalog response bodies written to the cache.",
		},
		[]string{"group"},
	)
)

func init() {
	prometheus.MustRegister(LookupsTotal, EvictionsTotal, StoredBytesTotal)

	// Known groups are exported at zero before the first request.
	for _, group := range Groups {
		metricsFor(group)
	}
}

// groupMetrics holds the counters of one group, resolved once per cache.
type groupMetrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	evictions   prometheus.Counter
	storedBytes prometheus.Counter
}

func metricsFor(group string) groupMetrics {
	return groupMetrics{
		hits:        LookupsTotal.WithLabelValues(group, resultHit),
		misses:      LookupsTotal.WithLabelValues(group, resultMiss),
		evictions:   EvictionsTotal.WithLabelValues(group),
		storedBytes: StoredBytesTotal.WithLabelValues(group),
	}
}

func knownGroup(group string) bool {
	for _, g := range Groups {
		if g == group {
			return true
		}
	}
	return false
}

var (
	sizeGaugesMu sync.Mutex
	sizeGauges   = make(map[string]prometheus.GaugeFunc)
	// sizeRegisterer is swapped for an isolated registry in tests.
	sizeRegisterer prometheus.Registerer = prometheus.DefaultRegisterer
)

// registerSizeGauge exports the number of entries of group, read from lenFunc at scrape
// time. A newer cache of the same group takes the series over.
func registerSizeGauge(group string, lenFunc func() int) prometheus.GaugeFunc {
	gauge := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   "showsearch",
			Subsystem:   "cache",
			Name:        "entries",
			Help:        "Current number of catalog responses in the cache.",
			ConstLabels: prometheus.Labels{"group": group},
		},
		func() float64 { return float64(lenFunc()) },
	)

	sizeGaugesMu.Lock()
	defer sizeGaugesMu.Unlock()

	if old, ok := sizeGauges[group]; ok {
		sizeRegisterer.Unregister(old)
	}
	sizeGauges[group] = gauge
	_ = sizeRegisterer.Register(gauge)
	return gauge
}

// unregisterSizeGauge drops gauge unless a newer cache of group already replaced it.
func unregisterSizeGauge(group string, gauge prometheus.GaugeFunc) {
	sizeGaugesMu.Lock()
	defer sizeGaugesMu.Unlock()

	if current, ok := sizeGauges[group]; ok && current == gauge {
		sizeRegisterer.Unregister(gauge)
		delete(sizeGauges, group)
	}
}
