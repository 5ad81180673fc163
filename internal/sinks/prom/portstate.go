package prom

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// PortStateSink exports the last seen port state-change reason as the
// port_state_reason gauge.
type PortStateSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	gauges *gaugeSet
	stats  types.SinkStats
}

// NewPortStateSink returns a new PortStateSink registering on reg.
func NewPortStateSink(cfg types.SinkConfig, dp *datapath.Datapath, reg prometheus.Registerer) *PortStateSink {
	return &PortStateSink{config: cfg, dp: dp, gauges: newGaugeSet(reg)}
}

// Name gets the name of the PortStateSink.
func (s *PortStateSink) Name() string {
	return s.config.Name
}

// Update records one port status report.
func (s *PortStateSink) Update(_ time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ps, ok := msg.(*ofstats.PortStatus)
	if !ok {
		return errWrongReportKind
	}

	s.gauges.get("port_state_reason", []string{"dp_name", "port"}).
		WithLabelValues(s.dp.Name, strconv.FormatUint(uint64(ps.PortNo), 10)).
		Set(float64(ps.Reason))

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the PortStateSink's statistics structure.
func (s *PortStateSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}
