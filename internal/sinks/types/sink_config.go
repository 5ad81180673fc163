package types

import "time"

// SinkConfig represents the configuration of one watcher sink.
// It is constructed once at startup and read-only thereafter.
type SinkConfig struct {

	// Name of the watcher.
	Name string `mapstructure:"-"`

	// The kind of report this sink renders.
	Kind ReportKind `mapstructure:"type"`

	// The backend this sink writes to.
	Backend BackendKind `mapstructure:"backend"`

	// Output file path for text sinks. Opened in append mode on
	// every write, never held open between calls.
	File string `mapstructure:"file"`

	// Gzip-compress file output. (flow_table text sink)
	Compress bool `mapstructure:"compress"`

	// Target address of the sink's backing storage. (influx)
	Address string `mapstructure:"address"`

	// Username of the sink's backing storage. (influx)
	Username string `mapstructure:"username"`

	// Password of the sink's backing storage. (influx)
	Password string `mapstructure:"password"`

	// Database name of the sink's backing storage. (influx)
	Database string `mapstructure:"database"`

	// Write timeout of the sink's backing storage. (influx)
	Timeout time.Duration `mapstructure:"timeout"`
}
