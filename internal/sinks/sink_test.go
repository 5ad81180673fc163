package sinks

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashrafm152/gauge/internal/sinks/text"
	"github.com/ashrafm152/gauge/internal/sinks/types"
	"github.com/ashrafm152/gauge/pkg/datapath"
)

var testDP = &datapath.Datapath{
	DPID:  1,
	Name:  "sw1",
	Ports: map[uint32]string{1: "port1"},
}

// influxParams fills the fields the influx backend requires.
func influxParams(cfg types.SinkConfig) types.SinkConfig {
	cfg.Address = "http://localhost:8086"
	cfg.Database = "gauge"
	return cfg
}

func TestNewSupportMatrix(t *testing.T) {

	supported := map[types.ReportKind][]types.BackendKind{
		types.PortState:  {types.Text, types.Influx, types.Prometheus},
		types.PortStats:  {types.Text, types.Influx, types.Prometheus},
		types.FlowTable:  {types.Text, types.Influx, types.Prometheus},
		types.MeterStats: {types.Text, types.Prometheus},
	}

	kinds := []types.ReportKind{types.PortState, types.PortStats, types.FlowTable, types.MeterStats}
	backends := []types.BackendKind{types.Text, types.Influx, types.Prometheus}

	for _, kind := range kinds {
		for _, backend := range backends {
			t.Run(fmt.Sprintf("%s/%s", kind, backend), func(t *testing.T) {

				cfg := influxParams(types.SinkConfig{
					Name:    "test",
					Kind:    kind,
					Backend: backend,
				})

				s, err := New(cfg, testDP)

				var want bool
				for _, b := range supported[kind] {
					if b == backend {
						want = true
					}
				}

				if want {
					require.NoError(t, err)
					assert.NotNil(t, s)
				} else {
					require.Error(t, err)
					var ce *ConfigError
					require.True(t, errors.As(err, &ce))
					assert.Equal(t, kind, ce.Kind)
					assert.Equal(t, backend, ce.Backend)
				}
			})
		}
	}
}

func TestNewMeterStatsInflux(t *testing.T) {

	// The one asymmetric cell of the matrix.
	_, err := New(influxParams(types.SinkConfig{Kind: types.MeterStats, Backend: types.Influx}), testDP)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meter_stats")
	assert.Contains(t, err.Error(), "influx")

	s, err := New(types.SinkConfig{Name: "mstats", Kind: types.MeterStats, Backend: types.Text}, testDP)
	require.NoError(t, err)
	assert.IsType(t, &text.MeterStatsSink{}, s)
}

func TestNewUnknownKind(t *testing.T) {

	_, err := New(types.SinkConfig{Kind: types.ReportKind(42), Backend: types.Text}, testDP)
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
}
