package text

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ashrafm152/gauge/internal/sinks/helpers"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// PortStatsSink renders per-port counter reports as log lines, one
// series per counter.
type PortStatsSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	stats  types.SinkStats
}

// NewPortStatsSink returns a new PortStatsSink for the given datapath.
func NewPortStatsSink(cfg types.SinkConfig, dp *datapath.Datapath) *PortStatsSink {
	return &PortStatsSink{config: cfg, dp: dp}
}

// Name gets the name of the PortStatsSink.
func (s *PortStatsSink) Name() string {
	return s.config.Name
}

// SeriesName derives the stable series name of one counter on one port.
// The port label is looked up on the datapath identity; an unknown port
// number is propagated as its error, no default is substituted.
func (s *PortStatsSink) SeriesName(portNo uint32, statName string) (string, error) {

	label, err := s.dp.PortLabel(portNo)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{s.dp.Name, label, statName}, "-"), nil
}

// Update renders one port counter report.
func (s *PortStatsSink) Update(rcvTime time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ps, ok := msg.(*ofstats.PortStats)
	if !ok {
		return errWrongReportKind
	}

	rcvTimeStr := helpers.RcvTimeString(rcvTime)

	var lines strings.Builder
	for _, c := range ps.Counters {
		series, err := s.SeriesName(ps.PortNo, c.Name)
		if err != nil {
			return err
		}

		logMsg := fmt.Sprintf("%s: %d", series, c.Value)
		log.Info(logMsg)
		lines.WriteString(rcvTimeStr + "\t" + logMsg + "\n")
	}

	if s.config.File != "" {
		if err := appendString(s.config.File, lines.String()); err != nil {
			s.stats.IncrWriteErrors()
			return err
		}
	}

	s.stats.IncrRecordsWritten()

	return nil
}

// Stats returns the PortStatsSink's statistics structure.
func (s *PortStatsSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}
