package vector

import "github.com/prometheus/client_golang/prometheus"

// MetricsSource is anything that can report allocator counters, such as a
// StatsAllocator of any element type.
type MetricsSource interface {
	Metrics() AllocatorMetrics
}

// StatsCollector exports a MetricsSource to Prometheus. Every scrape takes
// a fresh snapshot.
type StatsCollector struct {
	source MetricsSource

	allocations       *prometheus.Desc
	failedAllocations *prometheus.Desc
	deallocations     *prometheus.Desc
	slotsInUse        *prometheus.Desc
	constructs        *prometheus.Desc
	constructFailures *prometheus.Desc
	destroys          *prometheus.Desc
	liveObjects       *prometheus.Desc
}

// NewStatsCollector builds a collector whose metric names start with
// namespace. constLabels are attached to every metric, which lets several
// allocators share one registry.
func NewStatsCollector(namespace string, source MetricsSource, constLabels prometheus.Labels) *StatsCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, constLabels)
	}
	return &StatsCollector{
		source:            source,
		allocations:       desc("allocations_total", "Blocks handed out by the allocator."),
		failedAllocations: desc("failed_allocations_total", "Allocation requests that failed."),
		deallocations:     desc("deallocations_total", "Blocks returned to the allocator."),
		slotsInUse:        desc("slots_in_use", "Element slots allocated and not yet released."),
		constructs:        desc("constructs_total", "Elements constructed in place."),
		constructFailures: desc("construct_failures_total", "Element constructions that failed."),
		destroys:          desc("destroys_total", "Elements destroyed."),
		liveObjects:       desc("live_objects", "Elements constructed and not yet destroyed."),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocations
	ch <- c.failedAllocations
	ch <- c.deallocations
	ch <- c.slotsInUse
	ch <- c.constructs
	ch <- c.constructFailures
	ch <- c.destroys
	ch <- c.liveObjects
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	m := c.source.Metrics()
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(m.Allocations))
	ch <- prometheus.MustNewConstMetric(c.failedAllocations, prometheus.CounterValue, float64(m.FailedAllocations))
	ch <- prometheus.MustNewConstMetric(c.deallocations, prometheus.CounterValue, float64(m.Deallocations))
	ch <- prometheus.MustNewConstMetric(c.slotsInUse, prometheus.GaugeValue, float64(m.SlotsInUse))
	ch <- prometheus.MustNewConstMetric(c.constructs, prometheus.CounterValue, float64(m.Constructs))
	ch <- prometheus.MustNewConstMetric(c.constructFailures, prometheus.CounterValue, float64(m.ConstructFailures))
	ch <- prometheus.MustNewConstMetric(c.destroys, prometheus.CounterValue, float64(m.Destroys))
	ch <- prometheus.MustNewConstMetric(c.liveObjects, prometheus.GaugeValue, float64(m.LiveObjects))
}

var _ prometheus.Collector = (*StatsCollector)(nil)
