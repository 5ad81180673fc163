// Package text implements the watcher sinks writing human-readable
// records to the process log and optional append-only files.
package text

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ashrafm152/gauge/internal/sinks/helpers"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// PortStateSink renders port link-state changes as log lines.
type PortStateSink struct {

	// Sink's configuration object.
	config types.SinkConfig

	// Identity of the monitored datapath.
	dp *datapath.Datapath

	// Sink stats.
	stats types.SinkStats
}

// NewPortStateSink returns a new PortStateSink for the given datapath.
func NewPortStateSink(cfg types.SinkConfig, dp *datapath.Datapath) *PortStateSink {
	return &PortStateSink{config: cfg, dp: dp}
}

// Name gets the name of the PortStateSink.
func (s *PortStateSink) Name() string {
	return s.config.Name
}

// Update renders one port status report. The message is always emitted
// to the process log; when a file is configured, the same message is
// appended to it, tab-separated from the rendered receive time.
func (s *PortStateSink) Update(rcvTime time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ps, ok := msg.(*ofstats.PortStatus)
	if !ok {
		return errWrongReportKind
	}

	logMsg := fmt.Sprintf("%s %s", s.dp, portStateMessage(ps))
	log.Info(logMsg)

	if s.config.File != "" {
		line := helpers.RcvTimeString(rcvTime) + "\t" + logMsg + "\n"
		if err := appendString(s.config.File, line); err != nil {
			s.stats.IncrWriteErrors()
			return err
		}
	}

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the PortStateSink's statistics structure.
func (s *PortStateSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}

// portStateMessage maps a port status report onto its log message.
// Unrecognized reason codes degrade to a default message, they are
// never an error.
func portStateMessage(ps *ofstats.PortStatus) string {

	switch ps.Reason {
	case ofstats.PortReasonAdd:
		return fmt.Sprintf("port %d added", ps.PortNo)
	case ofstats.PortReasonDelete:
		return fmt.Sprintf("port %d deleted", ps.PortNo)
	case ofstats.PortReasonModify:
		if ps.LinkDown() {
			return fmt.Sprintf("port %d down", ps.PortNo)
		}
		return fmt.Sprintf("port %d up", ps.PortNo)
	default:
		return fmt.Sprintf("port %d unknown state %d", ps.PortNo, ps.Reason)
	}
}
