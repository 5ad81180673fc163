package ofstats

// A Message is a decoded statistics report received from a datapath.
// The set of implementations is closed; sinks dispatch on the concrete type.
type Message interface {
	message()
}

func (*PortStatus) message() {}
func (*PortStats) message()  {}
func (*MeterStats) message() {}
func (*FlowStats) message()  {}
