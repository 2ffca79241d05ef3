package services

import (
	"context"
	"strings"
	"time"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/store"
)

// ProjectService handles the GitHub portfolio
type ProjectService interface {
	Add(ctx context.Context, name, repoURL, description string, skills []string) (models.Project, error)
	All(ctx context.Context) ([]models.Project, error)
	SetStatus(ctx context.Context, projectID string, status models.ProjectStatus) error
	SetFeature(ctx context.Context, projectID, feature string, done bool) error
}

type projectService struct {
	store *store.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *store.Store) ProjectService {
	return &projectService{store: store}
}

func (s *projectService) Add(ctx context.Context, name, repoURL, description string, skills []string) (models.Project, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, errors.NewValidationError("name", "cannot be empty")
	}

	now := time.Now().UTC()
	project := models.Project{
		ID:            models.NewID(),
		Name:          name,
		RepoURL:       repoURL,
		Description:   description,
		SkillsCovered: cleanList(skills),
		Status:        models.ProjectPlanning,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := s.store.Update(func(state *models.State) error {
		state.Projects = append(state.Projects, project)
		return nil
	})
	if err != nil {
		return models.Project{}, err
	}

	log.Info("project added: id=%s, name=%s", project.ID, project.Name)
	return project, nil
}

func (s *projectService) All(ctx context.Context) ([]models.Project, error) {
	state := s.store.Load()
	return state.Projects, nil
}

func (s *projectService) SetStatus(ctx context.Context, projectID string, status models.ProjectStatus) error {
	log := logger.FromContext(ctx)

	err := s.store.Update(func(state *models.State) error {
		project := findProject(state, projectID)
		if project == nil {
			return errors.NewNotFoundError("project", projectID)
		}
		project.Status = status
		project.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("project %s status set to %s", projectID, status)
	return nil
}

func (s *projectService) SetFeature(ctx context.Context, projectID, feature string, done bool) error {
	log := logger.FromContext(ctx)

	err := s.store.Update(func(state *models.State) error {
		project := findProject(state, projectID)
		if project == nil {
			return errors.NewNotFoundError("project", projectID)
		}
		switch strings.ToLower(strings.TrimSpace(feature)) {
		case "readme":
			project.HasReadme = done
		case "docs":
			project.HasDocs = done
		case "tests":
			project.HasTests = done
		case "demo":
			project.HasDemo = done
		default:
			return errors.NewValidationError("feature", "must be one of: readme, docs, tests, demo")
		}
		project.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("project %s feature %s set to %t", projectID, feature, done)
	return nil
}

func findProject(state *models.State, projectID string) *models.Project {
	for i := range state.Projects {
		if state.Projects[i].ID == projectID {
			return &state.Projects[i]
		}
	}
	return nil
}
