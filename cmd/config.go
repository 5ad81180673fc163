package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ashrafm152/gauge/internal/config"
	"github.com/ashrafm152/gauge/internal/pipeline"
	"github.com/ashrafm152/gauge/internal/sinks"
	"github.com/ashrafm152/gauge/pkg/datapath"
)

var (
	// Key names in configuration file.
	cfgAPIEnabled    = "api_enabled"
	cfgAPIEndpoint   = "api_endpoint"
	cfgPProfEnabled  = "pprof_enabled"
	cfgPProfEndpoint = "pprof_endpoint"

	cfgDatapaths = "datapaths"
	cfgWatchers  = "watchers"

	// Default application configuration.
	cfgDefaults = map[string]interface{}{
		// HTTP API endpoint. (watcher stats and prometheus metrics)
		cfgAPIEnabled:  true,
		cfgAPIEndpoint: "localhost:8000",

		// Run a pprof endpoint during operation. (live profiling)
		cfgPProfEnabled:  false,
		cfgPProfEndpoint: "localhost:6060",
	}
)

func init() {
	// Initialize Viper with configuration defaults.
	for k, v := range cfgDefaults {
		viper.SetDefault(k, v)
	}
}

// initRegisterWatchers resolves a list of watcher configurations
// against the configured datapaths and registers the resulting sinks
// to the given pipeline. An unsupported (report kind, backend)
// combination fails here, before any polling starts.
func initRegisterWatchers(wl []config.WatcherConfig, dps map[string]*datapath.Datapath, pipe *pipeline.Pipeline) error {

	for _, wc := range wl {
		dp, ok := dps[wc.Datapath]
		if !ok {
			return errors.Errorf("watcher '%s' references unknown datapath '%s'", wc.Name, wc.Datapath)
		}

		// Create and initialize a new sink based on the watcher config.
		sink, err := sinks.New(wc.SinkConfig, dp)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("creating watcher '%s'", wc.Name))
		}
		log.Debugf("Created %s/%s sink '%s'", wc.Kind, wc.Backend, wc.Name)

		// Register created sink with pipeline.
		if err := pipe.RegisterSink(dp, wc.Kind, sink); err != nil {
			return errors.Wrap(err, fmt.Sprintf("registering watcher '%s' to pipeline", wc.Name))
		}
		log.Debugf("Registered %s/%s sink '%s' to pipeline", wc.Kind, wc.Backend, wc.Name)
	}

	return nil
}
