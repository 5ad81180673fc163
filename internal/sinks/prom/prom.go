// Package prom implements the watcher sinks exporting statistics
// reports as Prometheus gauges.
package prom

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every gauge exported by the prometheus sinks. The API
// server serves it on /metrics.
var Registry = prometheus.NewRegistry()

// gaugeSet lazily registers gauge vectors by counter name. Counter
// names arrive with the reports, so vectors cannot be declared up front.
type gaugeSet struct {
	mu   sync.Mutex
	reg  prometheus.Registerer
	vecs map[string]*prometheus.GaugeVec
}

func newGaugeSet(reg prometheus.Registerer) *gaugeSet {
	return &gaugeSet{
		reg:  reg,
		vecs: make(map[string]*prometheus.GaugeVec),
	}
}

// get returns the gauge vector with the given name and label names,
// registering it on first use.
func (g *gaugeSet) get(name string, labels []string) *prometheus.GaugeVec {

	g.mu.Lock()
	defer g.mu.Unlock()

	name = sanitizeName(name)

	if v, ok := g.vecs[name]; ok {
		return v
	}

	v := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: name,
		Help: "Datapath statistic " + name + ".",
	}, labels)

	// Sinks for multiple datapaths share one registry; reuse the
	// vector registered by the first sink that saw this counter.
	if err := g.reg.Register(v); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(err)
		}
		v = are.ExistingCollector.(*prometheus.GaugeVec)
	}
	g.vecs[name] = v

	return v
}

// sanitizeName rewrites a counter name into a valid metric name.
func sanitizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
