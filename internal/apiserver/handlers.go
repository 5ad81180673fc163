package apiserver

import (
	"net/http"

	"github.com/ashrafm152/gauge/internal/pipeline"
	"github.com/ashrafm152/gauge/internal/sinks/types"
)

// statsResponse is the document served on /stats.
type statsResponse struct {
	Pipeline pipeline.Stats                 `json:"pipeline"`
	Sinks    map[string]types.SinkStatsData `json:"sinks"`
}

// HandleStats returns statistics about the pipeline and its sinks.
func HandleStats(w http.ResponseWriter, r *http.Request) {

	resp := statsResponse{
		Pipeline: pipe.Stats(),
		Sinks:    make(map[string]types.SinkStatsData),
	}

	for _, s := range pipe.GetSinks() {
		resp.Sinks[s.Name()] = s.Stats()
	}

	writeJSON(w, resp)
}
