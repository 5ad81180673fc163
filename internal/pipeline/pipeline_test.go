package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrafm152/gauge/internal/sinks"
	"github.com/ashrafm152/gauge/internal/sinks/text"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

var testDP = &datapath.Datapath{
	DPID:  1,
	Name:  "sw1",
	Ports: map[uint32]string{1: "port1"},
}

func TestDeliverByKind(t *testing.T) {

	p := New()

	state := text.NewPortStateSink(types.SinkConfig{Name: "state"}, testDP)
	meter := text.NewMeterStatsSink(types.SinkConfig{Name: "mstats"}, testDP)

	require.NoError(t, p.RegisterSink(testDP, types.PortState, state))
	require.NoError(t, p.RegisterSink(testDP, types.MeterStats, meter))

	msg := &ofstats.PortStatus{PortNo: 1, Reason: ofstats.PortReasonAdd}
	require.NoError(t, p.Deliver(1, time.Now(), msg))

	// Only the port_state watcher saw the report.
	assert.Equal(t, uint64(1), state.Stats().ReportsPushed)
	assert.Equal(t, uint64(0), meter.Stats().ReportsPushed)

	assert.Equal(t, uint64(1), p.Stats().ReportsDelivered)
	assert.Equal(t, uint64(0), p.Stats().UpdateErrors)
}

func TestDeliverUnknownDatapath(t *testing.T) {

	p := New()
	err := p.Deliver(99, time.Now(), &ofstats.PortStatus{})
	assert.Equal(t, errUnknownDatapath, err)
}

func TestDeliverPropagatesUpdateError(t *testing.T) {

	p := New()

	// A port_stats report for an unlabelled port fails its sink.
	ps := text.NewPortStatsSink(types.SinkConfig{Name: "pstats"}, testDP)
	require.NoError(t, p.RegisterSink(testDP, types.PortStats, ps))

	msg := &ofstats.PortStats{
		PortNo:   42,
		Counters: []ofstats.Counter{{Name: "rx_packets", Value: 1}},
	}

	assert.Error(t, p.Deliver(1, time.Now(), msg))
	assert.Equal(t, uint64(1), p.Stats().UpdateErrors)
}

func TestRegisterNilSink(t *testing.T) {

	p := New()
	assert.Equal(t, errNilSink, p.RegisterSink(testDP, types.PortState, nil))
}

func TestGetSinks(t *testing.T) {

	p := New()
	require.NoError(t, p.RegisterSink(testDP, types.PortState,
		text.NewPortStateSink(types.SinkConfig{Name: "state"}, testDP)))

	ss := p.GetSinks()
	require.Len(t, ss, 1)
	assert.Implements(t, (*sinks.Sink)(nil), ss[0])
}
