// Package promvector exports vector.Array metrics to Prometheus.
package promvector

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vector"
)

// Source yields a metrics snapshot. *vector.Array satisfies it.
//
// Collect runs on the scraping goroutine. Arrays are not goroutine-safe, so
// an array that is mutated concurrently must be tracked through a SourceFunc
// that takes the caller's lock.
type Source interface {
	Metrics() vector.Metrics
}

// SourceFunc adapts a function to Source.
type SourceFunc func() vector.Metrics

// Metrics calls f.
func (f SourceFunc) Metrics() vector.Metrics { return f() }

// Collector is a prometheus.Collector reporting one labelled series per
// tracked array.
type Collector struct {
	mu      sync.Mutex
	sources map[string]Source

	size          *prometheus.Desc
	capacity      *prometheus.Desc
	reservedBytes *prometheus.Desc
	utilization   *prometheus.Desc
	reallocations *prometheus.Desc
}

// NewCollector returns a Collector whose metric names are prefixed with
// namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"array"}
	return &Collector{
		sources: make(map[string]Source),
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "size"),
			"Number of live elements",
			labels, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "capacity"),
			"Number of allocated element slots",
			labels, nil,
		),
		reservedBytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "reserved_bytes"),
			"Bytes held by the backing buffer",
			labels, nil,
		),
		utilization: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "utilization_ratio"),
			"Ratio of live elements to capacity",
			labels, nil,
		),
		reallocations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "reallocations"),
			"Backing buffer replacements by the array currently holding the buffer; drops when the array is moved from or copied into",
			labels, nil,
		),
	}
}

// Track starts reporting src under the given array label, replacing any
// source already tracked under that name.
func (c *Collector) Track(name string, src Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[name] = src
}

// Untrack stops reporting the named array.
func (c *Collector) Untrack(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sources, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.reservedBytes
	ch <- c.utilization
	ch <- c.reallocations
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, src := range c.sources {
		m := src.Metrics()
		ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(m.Size), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity), name)
		ch <- prometheus.MustNewConstMetric(c.reservedBytes, prometheus.GaugeValue, float64(m.BytesReserved), name)
		ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization, name)
		ch <- prometheus.MustNewConstMetric(c.reallocations, prometheus.GaugeValue, float64(m.Reallocations), name)
	}
}
