package types

import "fmt"

// BackendKind represents the output backend a watcher writes to.
type BackendKind uint8

// Enum of supported backend kinds.
const (
	Text BackendKind = iota
	Influx
	Prometheus
)

// String returns the configuration-file spelling of the backend kind.
func (b BackendKind) String() string {
	switch b {
	case Text:
		return "text"
	case Influx:
		return "influx"
	case Prometheus:
		return "prometheus"
	}
	return fmt.Sprintf("BackendKind(%d)", uint8(b))
}

// ParseBackendKind converts a configuration string into a BackendKind.
func ParseBackendKind(s string) (BackendKind, error) {
	switch s {
	case "text":
		return Text, nil
	case "influx", "influxdb":
		return Influx, nil
	case "prometheus":
		return Prometheus, nil
	default:
		return BackendKind(0), fmt.Errorf("failed parsing backend kind %v", s)
	}
}
