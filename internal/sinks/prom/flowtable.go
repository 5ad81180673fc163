package prom

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// FlowTableSink exports per-flow packet and byte counts as gauges
// labelled with the datapath, table ID and flow priority.
type FlowTableSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	gauges *gaugeSet
	stats  types.SinkStats
}

// NewFlowTableSink returns a new FlowTableSink registering on reg.
func NewFlowTableSink(cfg types.SinkConfig, dp *datapath.Datapath, reg prometheus.Registerer) *FlowTableSink {
	return &FlowTableSink{config: cfg, dp: dp, gauges: newGaugeSet(reg)}
}

// Name gets the name of the FlowTableSink.
func (s *FlowTableSink) Name() string {
	return s.config.Name
}

// Update records one flow table snapshot.
func (s *FlowTableSink) Update(_ time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	fs, ok := msg.(*ofstats.FlowStats)
	if !ok {
		return errWrongReportKind
	}

	labels := []string{"dp_name", "table_id", "priority"}

	for _, fl := range fs.Flows {
		tableID := strconv.FormatUint(uint64(fl.TableID), 10)
		priority := strconv.FormatUint(uint64(fl.Priority), 10)

		s.gauges.get("flow_packet_count", labels).
			WithLabelValues(s.dp.Name, tableID, priority).
			Set(float64(fl.PacketCount))
		s.gauges.get("flow_byte_count", labels).
			WithLabelValues(s.dp.Name, tableID, priority).
			Set(float64(fl.ByteCount))
	}

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the FlowTableSink's statistics structure.
func (s *FlowTableSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}
