package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrafm152/gauge/pkg/ofstats"
)

func TestRcvTimeString(t *testing.T) {

	ts := time.Date(2019, time.March, 7, 14, 5, 9, 0, time.Local)
	assert.Equal(t, "Mar 07 14:05:09", RcvTimeString(ts))
}

func TestFormatStatPairs(t *testing.T) {

	pairs := []StatPair{
		{Key: []string{"byte", "in", "count"}, Value: 100},
		{Key: []string{"packet", "in", "count"}, Value: 10},
		// Switches report unsupported counters as all-one-bits.
		{Key: []string{"rx", "errors"}, Value: ^uint64(0)},
	}

	assert.Equal(t, []ofstats.Counter{
		{Name: "byte-in-count", Value: 100},
		{Name: "packet-in-count", Value: 10},
		{Name: "rx-errors", Value: 0},
	}, FormatStatPairs("-", pairs))

	assert.Equal(t, []ofstats.Counter{
		{Name: "byte_in_count", Value: 100},
		{Name: "packet_in_count", Value: 10},
		{Name: "rx_errors", Value: 0},
	}, FormatStatPairs("_", pairs))
}

func TestMeterStatPairsOrder(t *testing.T) {

	ms := &ofstats.MeterStats{
		MeterID:       3,
		FlowCount:     5,
		ByteInCount:   100,
		PacketInCount: 10,
		Bands: []ofstats.BandStats{
			{ByteBandCount: 50, PacketBandCount: 4},
			// Additional bands are ignored; only the first is consumed.
			{ByteBandCount: 999, PacketBandCount: 999},
		},
	}

	pairs, err := MeterStatPairs(ms)
	require.NoError(t, err)

	assert.Equal(t, []ofstats.Counter{
		{Name: "flow-count", Value: 5},
		{Name: "byte-in-count", Value: 100},
		{Name: "packet-in-count", Value: 10},
		{Name: "byte-band-count", Value: 50},
		{Name: "packet-band-count", Value: 4},
	}, FormatStatPairs("-", pairs))
}

func TestMeterStatPairsNoBands(t *testing.T) {

	_, err := MeterStatPairs(&ofstats.MeterStats{MeterID: 3})
	assert.Equal(t, ErrNoMeterBands, err)
}
