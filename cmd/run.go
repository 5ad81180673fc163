package cmd

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ashrafm152/gauge/internal/apiserver"
	"github.com/ashrafm152/gauge/internal/config"
	"github.com/ashrafm152/gauge/internal/pipeline"
	"github.com/ashrafm152/gauge/internal/pprof"
	"github.com/ashrafm152/gauge/pkg/datapath"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:          "run",
	Short:        "Resolve the configured watchers and serve their outputs.",
	RunE:         run,
	SilenceUsage: true, // Don't show usage when RunE returns error.
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) error {

	log.Infoln("Starting", versionStr())

	if viper.GetBool(cfgPProfEnabled) {
		pprof.ListenAndServe(viper.GetString(cfgPProfEndpoint))
	}

	dps, wcfg, err := getDatapathWatcherConfig()
	if err != nil {
		return err
	}

	pipe := pipeline.New()

	// Resolve and register all watchers. Any unsupported watcher
	// configuration aborts startup here.
	if err := initRegisterWatchers(wcfg, dps, pipe); err != nil {
		return errors.Wrap(err, "initialize and register watchers")
	}

	// Initialize and run the API server if enabled.
	if viper.GetBool(cfgAPIEnabled) {
		if err := apiserver.Init(pipe); err != nil {
			return err
		}

		if err := apiserver.Run(viper.GetString(cfgAPIEndpoint)); err != nil {
			return err
		}
	}

	// The protocol poller delivering reports into the pipeline is
	// hosted outside this process tree; from here on, serve until
	// interrupted.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	log.Info("Exiting with signal ", <-sig)

	return nil
}

// getDatapathWatcherConfig parses the datapath and watcher
// configurations from Viper.
func getDatapathWatcherConfig() (map[string]*datapath.Datapath, []config.WatcherConfig, error) {

	// Get datapath identities from Viper.
	dps, err := config.DecodeDatapathConfigMap(viper.GetStringMap(cfgDatapaths))
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("Read datapath configuration: %+v", dps)

	// Get watcher configuration from Viper.
	wcfg, err := config.DecodeWatcherConfigMap(viper.GetStringMap(cfgWatchers))
	if err != nil {
		return nil, nil, err
	}
	// Log as debug, these often contain credentials.
	log.Debugf("Read watcher configuration: %+v", wcfg)

	return dps, wcfg, nil
}
