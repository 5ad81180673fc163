package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrafm152/gauge/internal/sinks/types"
)

func TestDecodeWatcherConfigMap(t *testing.T) {

	cfg := map[string]interface{}{
		"flows": map[string]interface{}{
			"datapath": "sw1",
			"type":     "flow_table",
			"backend":  "text",
			"file":     "/var/log/gauge/flows",
			"compress": true,
		},
	}

	wcs, err := DecodeWatcherConfigMap(cfg)
	require.NoError(t, err)
	require.Len(t, wcs, 1)

	wc := wcs[0]
	assert.Equal(t, "flows", wc.Name)
	assert.Equal(t, "sw1", wc.Datapath)
	assert.Equal(t, types.FlowTable, wc.Kind)
	assert.Equal(t, types.Text, wc.Backend)
	assert.Equal(t, "/var/log/gauge/flows", wc.File)
	assert.True(t, wc.Compress)
}

func TestDecodeWatcherConfigMapInflux(t *testing.T) {

	cfg := map[string]interface{}{
		"pstats": map[string]interface{}{
			"datapath": "sw1",
			"type":     "port_stats",
			"backend":  "influx",
			"address":  "http://localhost:8086",
			"database": "gauge",
			"timeout":  "5s",
		},
	}

	wcs, err := DecodeWatcherConfigMap(cfg)
	require.NoError(t, err)
	require.Len(t, wcs, 1)

	assert.Equal(t, types.Influx, wcs[0].Backend)
	assert.Equal(t, 5*time.Second, wcs[0].Timeout)
}

func TestDecodeWatcherConfigMapInvalidKind(t *testing.T) {

	cfg := map[string]interface{}{
		"bad": map[string]interface{}{
			"type":    "port_wobble",
			"backend": "text",
		},
	}

	_, err := DecodeWatcherConfigMap(cfg)
	assert.Error(t, err)
}

func TestDecodeDatapathConfigMap(t *testing.T) {

	cfg := map[string]interface{}{
		"sw1": map[string]interface{}{
			"dp_id": 1,
			"ports": map[string]interface{}{
				"1": "port1",
				"3": "uplink",
			},
		},
	}

	dps, err := DecodeDatapathConfigMap(cfg)
	require.NoError(t, err)
	require.Contains(t, dps, "sw1")

	dp := dps["sw1"]
	assert.Equal(t, uint64(1), dp.DPID)
	assert.Equal(t, "sw1", dp.Name)

	label, err := dp.PortLabel(3)
	require.NoError(t, err)
	assert.Equal(t, "uplink", label)
}
