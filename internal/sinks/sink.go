// Package sinks resolves watcher configurations to concrete sink
// implementations and defines the contract they share.
package sinks

import (
	"time"

	"github.com/ashrafm152/gauge/internal/sinks/influxdb"
	"github.com/ashrafm152/gauge/internal/sinks/prom"
	"github.com/ashrafm152/gauge/internal/sinks/text"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

// A Sink renders statistics reports of one kind into one backend's
// output.
type Sink interface {

	// Get the sink's name.
	Name() string

	// Render one report received at rcvTime. Blocking; all I/O
	// completes before Update returns. I/O errors are returned to
	// the caller, never handled here.
	Update(rcvTime time.Time, msg ofstats.Message) error

	// Get a snapshot copy of the sink's performance statistics.
	Stats() types.SinkStatsData
}

// New returns a new, initialized Sink for the report kind and backend
// named by the given SinkConfig. A combination outside the support
// matrix fails with a *ConfigError; this is a startup-time failure and
// is never retried.
func New(cfg types.SinkConfig, dp *datapath.Datapath) (Sink, error) {

	switch cfg.Kind {
	case types.PortState:
		switch cfg.Backend {
		case types.Text:
			return text.NewPortStateSink(cfg, dp), nil
		case types.Influx:
			return influxdb.NewPortStateSink(cfg, dp)
		case types.Prometheus:
			return prom.NewPortStateSink(cfg, dp, prom.Registry), nil
		}

	case types.PortStats:
		switch cfg.Backend {
		case types.Text:
			return text.NewPortStatsSink(cfg, dp), nil
		case types.Influx:
			return influxdb.NewPortStatsSink(cfg, dp)
		case types.Prometheus:
			return prom.NewPortStatsSink(cfg, dp, prom.Registry), nil
		}

	case types.FlowTable:
		switch cfg.Backend {
		case types.Text:
			return text.NewFlowTableSink(cfg, dp), nil
		case types.Influx:
			return influxdb.NewFlowTableSink(cfg, dp)
		case types.Prometheus:
			return prom.NewFlowTableSink(cfg, dp, prom.Registry), nil
		}

	// meter_stats has never had an influx backend upstream; the
	// asymmetry is carried as-is.
	case types.MeterStats:
		switch cfg.Backend {
		case types.Text:
			return text.NewMeterStatsSink(cfg, dp), nil
		case types.Prometheus:
			return prom.NewMeterStatsSink(cfg, dp, prom.Registry), nil
		}
	}

	return nil, &ConfigError{Kind: cfg.Kind, Backend: cfg.Backend}
}
