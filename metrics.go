// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// Collector exports the statistics of a BDD as Prometheus metrics. Values are
// read from a Snapshot of the BDD each time the collector is scraped.
//
// Like every other method of BDD, Collect must not be called concurrently with
// operations on the same BDD. Register the collector with a registry that is
// gathered from the goroutine using the BDD, or between computations.
type Collector struct {
	b        *BDD
	nodes    *prom.Desc
	free     *prom.Desc
	produced *prom.Desc
	gcs      *prom.Desc
	cache    *prom.Desc
	unique   *prom.Desc
}

// NewCollector returns a collector for the metrics of b. All metric names are
// prefixed with namespace, which may be empty.
func NewCollector(b *BDD, namespace string) *Collector {
	name := func(n string) string {
		return prom.BuildFQName(namespace, "bdd", n)
	}
	return &Collector{
		b:        b,
		nodes:    prom.NewDesc(name("nodes"), "Size of the node table.", nil, nil),
		free:     prom.NewDesc(name("free_nodes"), "Number of free slots in the node table.", nil, nil),
		produced: prom.NewDesc(name("produced_nodes_total"), "Total number of nodes built.", nil, nil),
		gcs:      prom.NewDesc(name("gc_total"), "Number of garbage collections.", nil, nil),
		cache:    prom.NewDesc(name("cache_lookups_total"), "Lookups in the operator caches.", []string{"result"}, nil),
		unique:   prom.NewDesc(name("unique_lookups_total"), "Lookups in the unique table (debug builds only).", []string{"result"}, nil),
	}
}

// Describe returns all descriptions of the collector.
func (c *Collector) Describe(ch chan<- *prom.Desc) {
	ch <- c.nodes
	ch <- c.free
	ch <- c.produced
	ch <- c.gcs
	ch <- c.cache
	ch <- c.unique
}

// Collect returns the current state of all metrics of the collector. Nothing
// is reported once the BDD is closed.
func (c *Collector) Collect(ch chan<- prom.Metric) {
	if c.b.closed {
		return
	}
	s := c.b.Snapshot()
	ch <- prom.MustNewConstMetric(c.nodes, prom.GaugeValue, float64(s.Nodes))
	ch <- prom.MustNewConstMetric(c.free, prom.GaugeValue, float64(s.Free))
	ch <- prom.MustNewConstMetric(c.produced, prom.CounterValue, float64(s.Produced))
	ch <- prom.MustNewConstMetric(c.gcs, prom.CounterValue, float64(s.GCs))
	ch <- prom.MustNewConstMetric(c.cache, prom.CounterValue, float64(s.OpHit), "hit")
	ch <- prom.MustNewConstMetric(c.cache, prom.CounterValue, float64(s.OpMiss), "miss")
	ch <- prom.MustNewConstMetric(c.unique, prom.CounterValue, float64(s.UniqueHit), "hit")
	ch <- prom.MustNewConstMetric(c.unique, prom.CounterValue, float64(s.UniqueMiss), "miss")
}
