package text

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/ofstats"
)

func TestMeterStatsSeriesName(t *testing.T) {

	s := NewMeterStatsSink(types.SinkConfig{Name: "mstats"}, testDP)
	assert.Equal(t, "sw1-3-byte-in-count", s.SeriesName(3, "byte-in-count"))
}

func TestMeterStatsUpdate(t *testing.T) {

	file := filepath.Join(t.TempDir(), "mstats.log")

	s := NewMeterStatsSink(types.SinkConfig{Name: "mstats", File: file}, testDP)

	ms := &ofstats.MeterStats{
		MeterID:       3,
		FlowCount:     5,
		ByteInCount:   100,
		PacketInCount: 10,
		Bands:         []ofstats.BandStats{{ByteBandCount: 50, PacketBandCount: 4}},
	}

	require.NoError(t, s.Update(time.Now(), ms))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "sw1-3-flow-count: 5\n")
	assert.Contains(t, string(b), "sw1-3-byte-band-count: 50\n")
	assert.Contains(t, string(b), "sw1-3-packet-band-count: 4\n")
}
