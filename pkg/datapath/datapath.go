// Package datapath describes the identity of a monitored datapath:
// its ID, display name and port labels.
package datapath

import "fmt"

// Datapath is the identity of one monitored datapath. It is read-only
// after construction.
type Datapath struct {

	// Datapath ID, unique per monitored device.
	DPID uint64

	// Human-readable display name.
	Name string

	// Port number to label mapping.
	Ports map[uint32]string
}

// PortLabel returns the configured label of the given port number.
// An unknown port number is an error; no default is substituted.
func (d *Datapath) PortLabel(portNo uint32) (string, error) {
	label, ok := d.Ports[portNo]
	if !ok {
		return "", fmt.Errorf("datapath %s: no label for port %d", d.Name, portNo)
	}
	return label, nil
}

// String returns the datapath's log prefix, eg. "DPID 1 (0x1)".
func (d *Datapath) String() string {
	return fmt.Sprintf("DPID %d (0x%x)", d.DPID, d.DPID)
}
