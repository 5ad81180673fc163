package apiserver

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// writeJSON encodes v to the http stream and logs on error.
func writeJSON(w http.ResponseWriter, v interface{}) {

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("error writing to http stream: %s", err)
	}
}
