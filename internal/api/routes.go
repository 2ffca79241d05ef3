package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/", s.handleOverview)
	r.Get("/roadmap", s.handleRoadmap)
	r.Get("/cards", s.handleCards)
	r.Get("/resources", s.handleResources)
	r.Get("/projects", s.handleProjects)
	r.Get("/tips", s.handleTips)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/state", s.handleState)

	return r
}
