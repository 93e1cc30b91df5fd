// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zbdd

import "github.com/prometheus/client_golang/prometheus"

// metricsSink receives counters from an Engine's operation, independent of
// whether anyone is actually scraping them. Grounded on the noop/real sink
// split used for the cache metrics in Voskan-arena-cache's pkg/metrics.go.
type metricsSink interface {
	incUniqueHit()
	incUniqueMiss()
	incCacheHit()
	incCacheMiss()
	incGC(freed int)
	setCapacity(n int)
}

type noopMetrics struct{}

func (noopMetrics) incUniqueHit()      {}
func (noopMetrics) incUniqueMiss()     {}
func (noopMetrics) incCacheHit()       {}
func (noopMetrics) incCacheMiss()      {}
func (noopMetrics) incGC(freed int)    {}
func (noopMetrics) setCapacity(n int)  {}

// promMetrics reports an Engine's counters to a prometheus.Registry supplied
// via WithMetrics.
type promMetrics struct {
	uniqueHit  prometheus.Counter
	uniqueMiss prometheus.Counter
	cacheHit   prometheus.Counter
	cacheMiss  prometheus.Counter
	gcRuns     prometheus.Counter
	gcFreed    prometheus.Counter
	capacity   prometheus.Gauge
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	m := &promMetrics{
		uniqueHit: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zbdd_unique_hits_total", Help: "Unique-table lookups that found an existing node.",
		}),
		uniqueMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zbdd_unique_misses_total", Help: "Unique-table lookups that created a new node.",
		}),
		cacheHit: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zbdd_cache_hits_total", Help: "Operation cache lookups that were served from cache.",
		}),
		cacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zbdd_cache_misses_total", Help: "Operation cache lookups that recomputed their result.",
		}),
		gcRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zbdd_gc_runs_total", Help: "Garbage collections performed.",
		}),
		gcFreed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "zbdd_gc_freed_nodes_total", Help: "Nodes reclaimed across all garbage collections.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "zbdd_arena_capacity", Help: "Current arena capacity in slots.",
		}),
	}
	reg.MustRegister(m.uniqueHit, m.uniqueMiss, m.cacheHit, m.cacheMiss, m.gcRuns, m.gcFreed, m.capacity)
	return m
}

func (m *promMetrics) incUniqueHit()     { m.uniqueHit.Inc() }
func (m *promMetrics) incUniqueMiss()    { m.uniqueMiss.Inc() }
func (m *promMetrics) incCacheHit()      { m.cacheHit.Inc() }
func (m *promMetrics) incCacheMiss()     { m.cacheMiss.Inc() }
func (m *promMetrics) incGC(freed int) {
	m.gcRuns.Inc()
	m.gcFreed.Add(float64(freed))
}
func (m *promMetrics) setCapacity(n int) { m.capacity.Set(float64(n)) }
