package influxdb

import (
	"strconv"
	"time"

	influx "github.com/influxdata/influxdb/client/v2"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// FlowTableSink writes flow table snapshots as per-flow packet and byte
// counter points. Every snapshot is written independently; replies are
// not aggregated across a poll cycle.
type FlowTableSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	client influx.Client
	stats  types.SinkStats
}

// NewFlowTableSink returns a new FlowTableSink with a connected client.
func NewFlowTableSink(cfg types.SinkConfig, dp *datapath.Datapath) (*FlowTableSink, error) {

	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	return &FlowTableSink{config: cfg, dp: dp, client: c}, nil
}

// Name gets the name of the FlowTableSink.
func (s *FlowTableSink) Name() string {
	return s.config.Name
}

// Update writes one flow table snapshot as one batch of points.
func (s *FlowTableSink) Update(rcvTime time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	fs, ok := msg.(*ofstats.FlowStats)
	if !ok {
		return errWrongReportKind
	}

	pts, err := flowTablePoints(s.dp, fs, rcvTime)
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

// Stats returns the FlowTableSink's statistics structure.
func (s *FlowTableSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}

// flowTablePoints builds flow_packet_count and flow_byte_count points
// for every entry in the snapshot.
func flowTablePoints(dp *datapath.Datapath, fs *ofstats.FlowStats, ts time.Time) ([]*influx.Point, error) {

	pts := make([]*influx.Point, 0, len(fs.Flows)*2)

	for _, fl := range fs.Flows {
		tags := map[string]string{
			"dp_name":  dp.Name,
			"table_id": strconv.FormatUint(uint64(fl.TableID), 10),
			"priority": strconv.FormatUint(uint64(fl.Priority), 10),
		}

		for name, val := range map[string]uint64{
			"flow_packet_count": fl.PacketCount,
			"flow_byte_count":   fl.ByteCount,
		} {
			pt, err := influx.NewPoint(name, tags, map[string]interface{}{
				"value": int64(val),
			}, ts)
			if err != nil {
				return nil, err
			}
			pts = append(pts, pt)
		}
	}

	return pts, nil
}
