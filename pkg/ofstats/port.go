package ofstats

// Port status change reasons, as defined by OpenFlow 1.3.
const (
	PortReasonAdd uint8 = iota
	PortReasonDelete
	PortReasonModify
)

// PortStateLinkDown is the link-down bit of a port's state field.
const PortStateLinkDown uint32 = 1 << 0

// PortStatus is a port link-state change report.
type PortStatus struct {

	// Number of the port the change applies to.
	PortNo uint32

	// Reason code for the change. Codes outside the known
	// set are carried as-is.
	Reason uint8

	// Port state bits, only meaningful when Reason is PortReasonModify.
	State uint32
}

// LinkDown reports whether the port's link is down.
func (p *PortStatus) LinkDown() bool {
	return p.State&PortStateLinkDown != 0
}

// Counter is a single named statistic value.
type Counter struct {
	Name  string
	Value uint64
}

// PortStats is a per-port counter report. Counters preserve
// the order they were decoded in.
type PortStats struct {
	PortNo   uint32
	Counters []Counter
}
