package apiserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/ashrafm152/gauge/internal/pipeline"
	"github.com/ashrafm152/gauge/internal/sinks/prom"
)

var (
	// Processing pipeline handle.
	pipe *pipeline.Pipeline

	// Whether or not package was successfully initialized.
	initSuccess bool
)

// Init configures the package with handles to the objects it exposes.
func Init(p *pipeline.Pipeline) error {

	if p == nil {
		return errNoPipe
	}
	pipe = p

	// Mark package as initialized.
	initSuccess = true

	return nil
}

// Run the HTTP listener. /stats serves watcher statistics as JSON,
// /metrics serves the prometheus sinks' registry.
func Run(addr string) error {

	// Check if the package was properly initialized.
	if !initSuccess {
		return errNotInit
	}

	r := mux.NewRouter()

	r.HandleFunc("/stats", HandleStats)
	r.Handle("/metrics", promhttp.HandlerFor(prom.Registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(addr, r); err != nil {
			log.Fatalf("Error in http listener: %s", err)
		}
	}()

	log.Infof("API server listening on address '%s'", addr)

	return nil
}
