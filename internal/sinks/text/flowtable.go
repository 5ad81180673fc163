package text

import (
	"encoding/json"
	"io"
	"time"

	"github.com/ashrafm152/gauge/internal/sinks/helpers"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// FlowTableSink dumps flow table snapshots to a file as a stream of
// timestamped JSON documents, one document per poll, separated by a
// YAML document marker. Snapshots received within the same poll cycle
// are written as independent documents; no aggregation takes place.
//
// Output is gzip-compressed when the watcher's compress option is set.
type FlowTableSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	stats  types.SinkStats
}

// flowTableDoc is the document written per flow table snapshot.
type flowTableDoc struct {
	Time string      `json:"time"`
	Ref  string      `json:"ref"`
	Msg  interface{} `json:"msg"`
}

// NewFlowTableSink returns a new FlowTableSink for the given datapath.
func NewFlowTableSink(cfg types.SinkConfig, dp *datapath.Datapath) *FlowTableSink {
	return &FlowTableSink{config: cfg, dp: dp}
}

// Name gets the name of the FlowTableSink.
func (s *FlowTableSink) Name() string {
	return s.config.Name
}

// Update appends one snapshot document to the configured file.
func (s *FlowTableSink) Update(rcvTime time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	fs, ok := msg.(*ofstats.FlowStats)
	if !ok {
		return errWrongReportKind
	}

	doc := flowTableDoc{
		Time: helpers.RcvTimeString(rcvTime),
		Ref:  s.dp.Name + "-flowtables",
		Msg:  fs,
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	err = appendFile(s.config.File, s.config.Compress, func(w io.Writer) error {
		_, err := io.WriteString(w, "---\n"+string(out)+"\n")
		return err
	})
	if err != nil {
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
