package config

import (
	"github.com/mitchellh/mapstructure"

	"github.com/ashrafm152/gauge/pkg/datapath"
)

// DatapathConfig represents the configured identity of one monitored
// datapath.
type DatapathConfig struct {

	// Display name of the datapath.
	Name string `mapstructure:"-"`

	// Datapath ID.
	DPID uint64 `mapstructure:"dp_id"`

	// Port number to label mapping.
	Ports map[uint32]string `mapstructure:"ports"`
}

// DecodeDatapathConfigMap extracts datapath identities from
// configuration data, keyed by their configured name.
func DecodeDatapathConfigMap(cfg map[string]interface{}) (map[string]*datapath.Datapath, error) {

	out := make(map[string]*datapath.Datapath, len(cfg))

	for name, params := range cfg {
		dc := DatapathConfig{Name: name}

		d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			// Port numbers arrive as string keys from the config file.
			WeaklyTypedInput: true,
			Result:           &dc,
		})
		if err != nil {
			panic(err)
		}

		if err := d.Decode(params); err != nil {
			return nil, err
		}

		out[name] = &datapath.Datapath{
			DPID:  dc.DPID,
			Name:  name,
			Ports: dc.Ports,
		}
	}

	return out, nil
}
