package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// PortStatsSink exports per-port counters as gauges named after the
// counter, labelled with the datapath and port label.
type PortStatsSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	gauges *gaugeSet
	stats  types.SinkStats
}

// NewPortStatsSink returns a new PortStatsSink registering on reg.
func NewPortStatsSink(cfg types.SinkConfig, dp *datapath.Datapath, reg prometheus.Registerer) *PortStatsSink {
	return &PortStatsSink{config: cfg, dp: dp, gauges: newGaugeSet(reg)}
}

// Name gets the name of the PortStatsSink.
func (s *PortStatsSink) Name() string {
	return s.config.Name
}

// Update records one port counter report.
func (s *PortStatsSink) Update(_ time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ps, ok := msg.(*ofstats.PortStats)
	if !ok {
		return errWrongReportKind
	}

	label, err := s.dp.PortLabel(ps.PortNo)
	if err != nil {
		return err
	}

	for _, c := range ps.Counters {
		s.gauges.get(c.Name, []string{"dp_name", "port_name"}).
			WithLabelValues(s.dp.Name, label).
			Set(float64(c.Value))
	}

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the PortStatsSink's statistics structure.
func (s *PortStatsSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}
