package prom

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ashrafm152/gauge/internal/sinks/helpers"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// MeterStatsSink exports per-meter counters as gauges labelled with the
// datapath and meter ID.
type MeterStatsSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	gauges *gaugeSet
	stats  types.SinkStats
}

// NewMeterStatsSink returns a new MeterStatsSink registering on reg.
func NewMeterStatsSink(cfg types.SinkConfig, dp *datapath.Datapath, reg prometheus.Registerer) *MeterStatsSink {
	return &MeterStatsSink{config: cfg, dp: dp, gauges: newGaugeSet(reg)}
}

// Name gets the name of the MeterStatsSink.
func (s *MeterStatsSink) Name() string {
	return s.config.Name
}

// Update records one meter counter report. Counter key segments are
// joined with underscores to form the metric names.
func (s *MeterStatsSink) Update(_ time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ms, ok := msg.(*ofstats.MeterStats)
	if !ok {
		return errWrongReportKind
	}

	pairs, err := helpers.MeterStatPairs(ms)
	if err != nil {
		return err
	}

	meterID := strconv.FormatUint(uint64(ms.MeterID), 10)

	for _, c := range helpers.FormatStatPairs("_", pairs) {
		s.gauges.get(c.Name, []string{"dp_name", "meter_id"}).
			WithLabelValues(s.dp.Name, meterID).
			Set(float64(c.Value))
	}

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the MeterStatsSink's statistics structure.
func (s *MeterStatsSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}
