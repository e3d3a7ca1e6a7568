package stackvec

import "github.com/prometheus/client_golang/prometheus"

var _ prometheus.Collector = (*StatsCollector)(nil)

// StatsCollector exposes the package-wide placement counters as prometheus
// metrics. Register it with a prometheus.Registerer to monitor how often
// buffers land on the stack versus the heap, and why the heap fallback
// fires.
type StatsCollector struct {
	stackPlacements *prometheus.Desc
	heapPlacements  *prometheus.Desc
	releases        *prometheus.Desc
}

// NewStatsCollector creates a collector over the package placement
// counters.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{
		stackPlacements: prometheus.NewDesc(
			"stackvec_stack_placements_total",
			"Buffers whose placement verdict chose inline stack storage",
			nil, nil,
		),
		heapPlacements: prometheus.NewDesc(
			"stackvec_heap_placements_total",
			"Buffers whose placement verdict fell back to the heap",
			[]string{"reason"}, nil,
		),
		releases: prometheus.NewDesc(
			"stackvec_releases_total",
			"Buffers released so far",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.stackPlacements
	ch <- c.heapPlacements
	ch <- c.releases
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		c.stackPlacements, prometheus.CounterValue,
		float64(allocCounters.stack.Load()),
	)
	for r := reasonInlineCapacity; r < numHeapReasons; r++ {
		ch <- prometheus.MustNewConstMetric(
			c.heapPlacements, prometheus.CounterValue,
			float64(allocCounters.reasons[r].Load()),
			r.String(),
		)
	}
	ch <- prometheus.MustNewConstMetric(
		c.releases, prometheus.CounterValue,
		float64(allocCounters.releases.Load()),
	)
}
