package influxdb

import (
	"time"

	influx "github.com/influxdata/influxdb/client/v2"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// PortStatsSink writes per-port counters as points, one measurement
// per counter name, tagged with the datapath and port label.
type PortStatsSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	client influx.Client
	stats  types.SinkStats
}

// NewPortStatsSink returns a new PortStatsSink with a connected client.
func NewPortStatsSink(cfg types.SinkConfig, dp *datapath.Datapath) (*PortStatsSink, error) {

	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	return &PortStatsSink{config: cfg, dp: dp, client: c}, nil
}

// Name gets the name of the PortStatsSink.
func (s *PortStatsSink) Name() string {
	return s.config.Name
}

// Update writes one port counter report as one batch of points.
func (s *PortStatsSink) Update(rcvTime time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ps, ok := msg.(*ofstats.PortStats)
	if !ok {
		return errWrongReportKind
	}

	pts, err := portStatsPoints(s.dp, ps, rcvTime)
	if err != nil {
		return err
	}

	if err := writePoints(s.client, s.config.Database, pts); err != nil {
		s.stats.IncrWriteErrors()
		return err
	}

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the PortStatsSink's statistics structure.
func (s *PortStatsSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}

// portStatsPoints builds one point per counter of a port counter report.
// An unknown port number fails the whole report; the identity provider's
// error is propagated.
func portStatsPoints(dp *datapath.Datapath, ps *ofstats.PortStats, ts time.Time) ([]*influx.Point, error) {

	label, err := dp.PortLabel(ps.PortNo)
	if err != nil {
		return nil, err
	}

	tags := map[string]string{
		"dp_name":   dp.Name,
		"port_name": label,
	}

	pts := make([]*influx.Point, 0, len(ps.Counters))
	for _, c := range ps.Counters {
		pt, err := influx.NewPoint(c.Name, tags, map[string]interface{}{
			"value": int64(c.Value),
		}, ts)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}

	return pts, nil
}
