// Package influxdb implements the watcher sinks writing statistics
// reports to an InfluxDB time-series database.
package influxdb

import (
	"time"

	influx "github.com/influxdata/influxdb/client/v2"

	"github.com/ashrafm152/gauge/internal/sinks/types"
)

const defaultTimeout = 10 * time.Second

// newClient constructs an InfluxDB HTTP client from a sink configuration.
func newClient(cfg types.SinkConfig) (influx.Client, error) {

	if cfg.Address == "" {
		return nil, errEmptySinkAddress
	}
	if cfg.Database == "" {
		return nil, errEmptySinkDatabase
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return influx.NewHTTPClient(influx.HTTPConfig{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  timeout,
	})
}

// writePoints writes the given points to the database in one batch.
// The write is synchronous; it completes before the sink's Update returns.
func writePoints(c influx.Client, database string, pts []*influx.Point) error {

	bp, err := influx.NewBatchPoints(influx.BatchPointsConfig{
		Precision: "s",
		Database:  database,
	})
	if err != nil {
		return err
	}

	for _, pt := range pts {
		bp.AddPoint(pt)
	}

	return c.Write(bp)
}
