// Package pipeline fans decoded statistics reports out to the watcher
// sinks registered for each datapath. The protocol-level poller that
// requests statistics and decodes replies lives outside this module
// and feeds reports in through Deliver.
package pipeline

import (
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ashrafm152/gauge/internal/sinks"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// Pipeline is the registry of watchers keyed by datapath ID.
type Pipeline struct {
	mu       sync.Mutex
	watchers map[uint64][]watcher

	stats Stats
}

// watcher couples one resolved sink to the datapath and report kind it
// serves.
type watcher struct {
	dp   *datapath.Datapath
	kind types.ReportKind
	sink sinks.Sink
}

// Stats holds counters about report delivery through the pipeline.
type Stats struct {
	// Amount of reports delivered to at least one sink.
	ReportsDelivered uint64 `json:"reports_delivered"`
	// Amount of sink update failures.
	UpdateErrors uint64 `json:"update_errors"`
}

// New creates a new Pipeline structure.
func New() *Pipeline {
	return &Pipeline{watchers: make(map[uint64][]watcher)}
}

// RegisterSink registers a sink for the given datapath and report kind.
func (p *Pipeline) RegisterSink(dp *datapath.Datapath, kind types.ReportKind, s sinks.Sink) error {

	if s == nil {
		return errNilSink
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.watchers[dp.DPID] = append(p.watchers[dp.DPID], watcher{dp: dp, kind: kind, sink: s})

	log.Infof("Registered %s watcher '%s' for %s to pipeline", kind, s.Name(), dp)

	return nil
}

// Deliver hands one decoded report to every sink watching its report
// kind on the given datapath. Sinks are updated synchronously, in
// registration order; the first update error is returned after all
// sinks have been attempted.
func (p *Pipeline) Deliver(dpID uint64, rcvTime time.Time, msg ofstats.Message) error {

	p.mu.Lock()
	ws := p.watchers[dpID]
	p.mu.Unlock()

	if len(ws) == 0 {
		return errUnknownDatapath
	}

	kind := kindOf(msg)

	var first error
	for _, w := range ws {
		if w.kind != kind {
			continue
		}

		if err := w.sink.Update(rcvTime, msg); err != nil {
			atomic.AddUint64(&p.stats.UpdateErrors, 1)
			log.Errorf("Watcher '%s': error rendering %s report: %s", w.sink.Name(), kind, err)
			if first == nil {
				first = err
			}
		}
	}

	atomic.AddUint64(&p.stats.ReportsDelivered, 1)

	return first
}

// GetSinks gets a list of the sinks registered to the pipeline.
func (p *Pipeline) GetSinks() []sinks.Sink {

	p.mu.Lock()
	defer p.mu.Unlock()

	var out []sinks.Sink
	for _, ws := range p.watchers {
		for _, w := range ws {
			out = append(out, w.sink)
		}
	}

	return out
}

// Stats returns a snapshot of the pipeline's delivery counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		ReportsDelivered: atomic.LoadUint64(&p.stats.ReportsDelivered),
		UpdateErrors:     atomic.LoadUint64(&p.stats.UpdateErrors),
	}
}

// kindOf maps a report message onto its report kind.
func kindOf(msg ofstats.Message) types.ReportKind {
	switch msg.(type) {
	case *ofstats.PortStatus:
		return types.PortState
	case *ofstats.PortStats:
		return types.PortStats
	case *ofstats.FlowStats:
		return types.FlowTable
	case *ofstats.MeterStats:
		return types.MeterStats
	}
	// Message is a closed interface; this is unreachable.
	panic("unhandled report message type")
}
