package text

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ashrafm152/gauge/internal/sinks/helpers"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// MeterStatsSink renders per-meter counter reports as log lines.
type MeterStatsSink struct {
	config types.SinkConfig
	dp     *datapath.Datapath
	stats  types.SinkStats
}

// NewMeterStatsSink returns a new MeterStatsSink for the given datapath.
func NewMeterStatsSink(cfg types.SinkConfig, dp *datapath.Datapath) *MeterStatsSink {
	return &MeterStatsSink{config: cfg, dp: dp}
}

// Name gets the name of the MeterStatsSink.
func (s *MeterStatsSink) Name() string {
	return s.config.Name
}

// SeriesName derives the stable series name of one counter on one meter.
// Meters are named by their numeric ID instead of a port label.
func (s *MeterStatsSink) SeriesName(meterID uint32, statName string) string {
	return strings.Join([]string{s.dp.Name, strconv.FormatUint(uint64(meterID), 10), statName}, "-")
}

// Update renders one meter counter report.
func (s *MeterStatsSink) Update(rcvTime time.Time, msg ofstats.Message) error {

	s.stats.IncrReportsPushed()

	ms, ok := msg.(*ofstats.MeterStats)
	if !ok {
		return errWrongReportKind
	}

	pairs, err := helpers.MeterStatPairs(ms)
	if err != nil {
		return err
	}

	rcvTimeStr := helpers.RcvTimeString(rcvTime)

	var lines strings.Builder
	for _, c := range helpers.FormatStatPairs("-", pairs) {
		logMsg := fmt.Sprintf("%s: %d", s.SeriesName(ms.MeterID, c.Name), c.Value)
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

// Stats returns the MeterStatsSink's statistics structure.
func (s *MeterStatsSink) Stats() types.SinkStatsData {
	return s.stats.Get()
}
