package api

import (
	"encoding/json"
	"net/http"

	"github.com/example/studycoach/internal/logger"
)

// handleState returns the full application state as JSON, matching the
// on-disk document shape. Useful for scripting against a running server.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("serving state snapshot")

	state := s.Store.Load()

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		log.Error("failed to encode state: %v", err)
	}
}
