package types

import "fmt"

// ReportKind represents the category of telemetry a watcher emits.
type ReportKind uint8

// Enum of supported report kinds.
const (
	PortState ReportKind = iota
	PortStats
	FlowTable
	MeterStats
)

// String returns the configuration-file spelling of the report kind.
func (k ReportKind) String() string {
	switch k {
	case PortState:
		return "port_state"
	case PortStats:
		return "port_stats"
	case FlowTable:
		return "flow_table"
	case MeterStats:
		return "meter_stats"
	}
	return fmt.Sprintf("ReportKind(%d)", uint8(k))
}

// ParseReportKind converts a configuration string into a ReportKind.
func ParseReportKind(s string) (ReportKind, error) {
	switch s {
	case "port_state":
		return PortState, nil
	case "port_stats":
		return PortStats, nil
	case "flow_table":
		return FlowTable, nil
	case "meter_stats":
		return MeterStats, nil
	default:
		return ReportKind(0), fmt.Errorf("failed parsing report kind %v", s)
	}
}
