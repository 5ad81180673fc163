// Package config decodes the application's datapath and watcher
// configuration maps.
package config

import (
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/ashrafm152/gauge/internal/sinks/types"
)

// WatcherConfig represents the configuration of one watcher: the sink
// parameters plus the name of the datapath it monitors.
type WatcherConfig struct {
	types.SinkConfig `mapstructure:",squash"`

	// Name of the configured datapath this watcher monitors.
	Datapath string `mapstructure:"datapath"`
}

// DecodeWatcherConfigMap extracts a map of WatcherConfigs from
// configuration data. The value of the string map is expected to be a
// nested string-map-interface with the annotated fields of a
// WatcherConfig.
func DecodeWatcherConfigMap(cfg map[string]interface{}) ([]WatcherConfig, error) {

	out := make([]WatcherConfig, 0, len(cfg))

	for name, params := range cfg {
		wc := WatcherConfig{}
		wc.Name = name // ignored by mapstructure, use map key as name

		d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToReportKindHookFunc(),
				stringToBackendKindHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			Result: &wc,
		})
		if err != nil {
			panic(err)
		}

		// Decode watcher configuration map into WatcherConfig.
		if err := d.Decode(params); err != nil {
			return nil, err
		}

		out = append(out, wc)
	}

	return out, nil
}

// stringToReportKindHookFunc returns a mapstructure.DecodeHookFunc that
// converts strings to ReportKinds.
func stringToReportKindHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(types.ReportKind(0)) {
			return data, nil
		}

		return types.ParseReportKind(data.(string))
	}
}

// stringToBackendKindHookFunc returns a mapstructure.DecodeHookFunc that
// converts strings to BackendKinds.
func stringToBackendKindHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(types.BackendKind(0)) {
			return data, nil
		}

		return types.ParseBackendKind(data.(string))
	}
}
