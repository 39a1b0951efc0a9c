package cache

import "github.com/prometheus/client_golang/prometheus"

// instrumentedCache counts lookups and written bytes of one group. Evictions are
// counted by the OnEvict hook installed in New.
type instrumentedCache struct {
	inner   Cache
	group   string
	metrics groupMetrics
	size    prometheus.GaugeFunc
}

func newInstrumentedCache(inner Cache, group string, m groupMetrics) *instrumentedCache {
	return &instrumentedCache{
		inner:   inner,
		group:   group,
		metrics: m,
		// Redis expires fields on its own, so the size is read at scrape time.
		size: registerSizeGauge(group, inner.Len),
	}
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	body, ok := c.inner.Get(key)
	if ok {
		c.metrics.hits.Inc()
	} else {
		c.metrics.misses.Inc()
	}
	return body, ok
}

func (c *instrumentedCache) Set(key string, body []byte) {
	c.metrics.storedBytes.Add(float64(len(body)))
	c.inner.Set(key, body)
}

func (c *instrumentedCache) Contains(key string) bool {
	return c.inner.Contains(key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

func (c *instrumentedCache) Close() error {
	unregisterSizeGauge(c.group, c.size)
	return c.inner.Close()
}
