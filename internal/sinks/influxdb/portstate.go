package influxdb

import (
	"strconv"
	"time"

	influx "github.com/influxdata/influxdb/client/v2"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// PortStateSink writes port link-state change reasons as points in the
// port_state_reason measurement.
type PortStateSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	client influx.Client
	stats  types.SinkStats
}

// NewPortStateSink returns a new PortStateSink with a connected client.
func NewPortStateSink(cfg types.SinkConfig, dp *datapath.Datapath) (*PortStateSink, error) {

	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	return &PortStateSink{config: cfg, dp: dp, client: c}, nil
}

// Name gets the name of the PortStateSink.
func (s *PortStateSink) Name() string {
	return s.config.Name
}

// Update writes one port status report.
func (s *PortStateSink) Update(rcvTime time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ps, ok := msg.(*ofstats.PortStatus)
	if !ok {
		return errWrongReportKind
	}

	pt, err := portStatePoint(s.dp, ps, rcvTime)
	if err != nil {
		return err
	}

	if err := writePoints(s.client, s.config.Database, []*influx.Point{pt}); err != nil {
		s.stats.IncrWriteErrors()
		return err
	}

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the PortStateSink's statistics structure.
func (s *PortStateSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}

// portStatePoint builds the data point for one port status report.
// The numeric reason code is carried as the point's value.
func portStatePoint(dp *datapath.Datapath, ps *ofstats.PortStatus, ts time.Time) (*influx.Point, error) {

	tags := map[string]string{
		"dp_name": dp.Name,
		"port":    strconv.FormatUint(uint64(ps.PortNo), 10),
	}

	fields := map[string]interface{}{
		"value": int64(ps.Reason),
	}

	return influx.NewPoint("port_state_reason", tags, fields, ts)
}
