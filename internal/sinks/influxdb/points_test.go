package influxdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

var testDP = &datapath.Datapath{
	DPID:  1,
	Name:  "sw1",
	Ports: map[uint32]string{1: "port1"},
}

func TestPortStatePoint(t *testing.T) {

	ps := &ofstats.PortStatus{PortNo: 3, Reason: ofstats.PortReasonDelete}

	pt, err := portStatePoint(testDP, ps, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "port_state_reason", pt.Name())
	assert.Equal(t, map[string]string{"dp_name": "sw1", "port": "3"}, pt.Tags())

	fields, err := pt.Fields()
	require.NoError(t, err)
	assert.Equal(t, int64(ofstats.PortReasonDelete), fields["value"])
}

func TestPortStatsPoints(t *testing.T) {

	ps := &ofstats.PortStats{
		PortNo: 1,
		Counters: []ofstats.Counter{
			{Name: "rx_packets", Value: 12},
			{Name: "tx_bytes", Value: 34},
		},
	}

	pts, err := portStatsPoints(testDP, ps, time.Now())
	require.NoError(t, err)
	require.Len(t, pts, 2)

	assert.Equal(t, "rx_packets", pts[0].Name())
	assert.Equal(t, "tx_bytes", pts[1].Name())
	assert.Equal(t, "port1", pts[0].Tags()["port_name"])

	// Unknown ports fail the whole report.
	ps.PortNo = 42
	_, err = portStatsPoints(testDP, ps, time.Now())
	assert.Error(t, err)
}

func TestFlowTablePoints(t *testing.T) {

	fs := &ofstats.FlowStats{Flows: []ofstats.FlowEntry{
		{TableID: 0, Priority: 100, PacketCount: 10, ByteCount: 1000},
	}}

	pts, err := flowTablePoints(testDP, fs, time.Now())
	require.NoError(t, err)
	require.Len(t, pts, 2)

	names := []string{pts[0].Name(), pts[1].Name()}
	assert.ElementsMatch(t, []string{"flow_packet_count", "flow_byte_count"}, names)
	assert.Equal(t, "100", pts[0].Tags()["priority"])
}

func TestNewClientValidation(t *testing.T) {

	_, err := newClient(types.SinkConfig{})
	assert.Equal(t, errEmptySinkAddress, err)

	_, err = newClient(types.SinkConfig{Address: "http://localhost:8086"})
	assert.Equal(t, errEmptySinkDatabase, err)
}
