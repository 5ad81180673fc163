package influxdb

import "errors"

var (
	errEmptySinkAddress  = errors.New("influx sink requires an address")
	errEmptySinkDatabase = errors.New("influx sink requires a database name")
	errWrongReportKind   = errors.New("report message does not match the sink's report kind")
)
