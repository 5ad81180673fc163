package datapath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortLabel(t *testing.T) {

	dp := Datapath{
		DPID:  0xb,
		Name:  "sw1",
		Ports: map[uint32]string{1: "uplink", 2: "host1"},
	}

	l, err := dp.PortLabel(1)
	assert.NoError(t, err)
	assert.Equal(t, "uplink", l)

	// Unknown ports are an error, not a default label.
	_, err = dp.PortLabel(7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port 7")
}

func TestString(t *testing.T) {

	dp := Datapath{DPID: 11, Name: "sw1"}
	assert.Equal(t, "DPID 11 (0xb)", dp.String())
}
