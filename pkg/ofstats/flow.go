package ofstats

// FlowEntry is one flow table entry of a flow statistics reply.
type FlowEntry struct {
	TableID     uint8                  `json:"table_id"`
	Priority    uint16                 `json:"priority"`
	DurationSec uint32                 `json:"duration_sec"`
	PacketCount uint64                 `json:"packet_count"`
	ByteCount   uint64                 `json:"byte_count"`
	Match       map[string]interface{} `json:"match,omitempty"`
}

// FlowStats is a snapshot of a datapath's flow table at poll time.
// One FlowStats describes one statistics reply; replies are not
// aggregated across a poll cycle.
type FlowStats struct {
	Flows []FlowEntry `json:"flows"`
}
