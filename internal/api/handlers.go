// Package api serves the read-only HTML dashboard. Mutations go through
// the CLI; handlers only load state and render it.
package api

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/review"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/store"
)

type Server struct {
	Store      *store.Store
	Roadmap    services.RoadmapService
	Progress   services.ProgressService
	Flashcards services.FlashcardService
	Resources  services.ResourceService
	Projects   services.ProjectService
	Tips       services.TipsService
	Templates  *template.Template
}

type pageData map[string]any

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering overview page")

	progress, err := s.Progress.Progress(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	focus, err := s.Roadmap.Focus(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	state := s.Store.Load()
	dueCount := review.DueCount(state.AllCards(), time.Now())

	s.render(w, r, "pages/overview.html", pageData{
		"title":     "Overview",
		"active":    "overview",
		"progress":  progress,
		"focus":     focus,
		"due_count": dueCount,
		"recent":    recentSessions(progress.Sessions, 5),
	})
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering roadmap page")

	overview, err := s.Roadmap.Overview(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	upcoming, err := s.Roadmap.Upcoming(r.Context(), 5)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/roadmap.html", pageData{
		"title":    "Roadmap",
		"active":   "roadmap",
		"roadmap":  overview,
		"upcoming": upcoming,
	})
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering flashcards page")

	decks, err := s.Flashcards.Decks(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	due, err := s.Flashcards.DueCards(r.Context(), 10)
	if err != nil {
		handleError(w, r, err)
		return
	}

	state := s.Store.Load()
	dueCount := review.DueCount(state.AllCards(), time.Now())

	s.render(w, r, "pages/cards.html", pageData{
		"title":     "Flashcards",
		"active":    "cards",
		"decks":     decks,
		"due":       due,
		"due_count": dueCount,
	})
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	log.Debug("rendering resources page, topic filter %q", topic)

	var resources []models.Resource
	var err error
	if topic != "" {
		resources, err = s.Resources.ByTopic(r.Context(), topic)
	} else {
		resources, err = s.Resources.All(r.Context())
	}
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/resources.html", pageData{
		"title":     "Resources",
		"active":    "resources",
		"resources": resources,
		"topic":     topic,
	})
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering projects page")

	projects, err := s.Projects.All(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/projects.html", pageData{
		"title":    "Projects",
		"active":   "projects",
		"projects": projects,
	})
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering tips page")

	recent, err := s.Tips.Recent(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "pages/tips.html", pageData{
		"title":  "Tips",
		"active": "tips",
		"tips":   recent,
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}

	log := logger.FromContext(r.Context())
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// recentSessions returns the last n sessions, newest first.
func recentSessions(sessions []models.Session, n int) []models.Session {
	if len(sessions) > n {
		sessions = sessions[len(sessions)-n:]
	}
	out := make([]models.Session, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		out = append(out, sessions[i])
	}
	return out
}
