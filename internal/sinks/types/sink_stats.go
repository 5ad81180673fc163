package types

import "sync/atomic"

// SinkStats is an embeddable struct holding a SinkStatsData.
type SinkStats struct {
	data SinkStatsData
}

// SinkStatsData holds performance metrics about a watcher sink.
type SinkStatsData struct {
	// Amount of reports delivered to the sink.
	ReportsPushed uint64 `json:"reports_pushed"`
	// Amount of records successfully written to the backend.
	RecordsWritten uint64 `json:"records_written"`
	// Amount of backend write failures.
	WriteErrors uint64 `json:"write_errors"`
}

// IncrReportsPushed atomically increases the sink's report counter by one.
func (s *SinkStats) IncrReportsPushed() {
	atomic.AddUint64(&s.data.ReportsPushed, 1)
}

// IncrRecordsWritten atomically increases the sink's written record counter by one.
func (s *SinkStats) IncrRecordsWritten() {
	atomic.AddUint64(&s.data.RecordsWritten, 1)
}

// IncrWriteErrors atomically increases the sink's write failure counter by one.
func (s *SinkStats) IncrWriteErrors() {
	atomic.AddUint64(&s.data.WriteErrors, 1)
}

// Get returns a non-atomic snapshot of the stats data.
func (s *SinkStats) Get() SinkStatsData {
	return SinkStatsData{
		ReportsPushed:  atomic.LoadUint64(&s.data.ReportsPushed),
		RecordsWritten: atomic.LoadUint64(&s.data.RecordsWritten),
		WriteErrors:    atomic.LoadUint64(&s.data.WriteErrors),
	}
}
