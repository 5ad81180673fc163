package sinks

import (
	"fmt"

	"github.com/ashrafm152/gauge/internal/sinks/types"
)

// ConfigError reports a watcher configuration naming a (report kind,
// backend) combination outside the support matrix.
type ConfigError struct {
	Kind    types.ReportKind
	Backend types.BackendKind
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unsupported watcher config: report kind '%s' with backend '%s'", e.Kind, e.Backend)
}
