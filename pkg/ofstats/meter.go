package ofstats

// BandStats holds the counters of one rate-limiting band of a meter.
type BandStats struct {
	PacketBandCount uint64
	ByteBandCount   uint64
}

// MeterStats is a per-meter counter report.
type MeterStats struct {
	MeterID       uint32
	FlowCount     uint32
	PacketInCount uint64
	ByteInCount   uint64

	// Per-band counters, in band order. Never empty in a
	// well-formed report.
	Bands []BandStats
}
