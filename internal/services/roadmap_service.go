package services

import (
	"context"
	"time"

	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/roadmap"
	"github.com/example/studycoach/internal/store"
)

// RoadmapService handles plan navigation and task completion
type RoadmapService interface {
	Overview(ctx context.Context) (models.Roadmap, error)
	Focus(ctx context.Context) (roadmap.Focus, error)
	Upcoming(ctx context.Context, limit int) ([]roadmap.UpcomingTask, error)
	CompleteTask(ctx context.Context, taskID string) error
	ImportPlan(ctx context.Context, path string) (int, error)
}

type roadmapService struct {
	store *store.Store
}

// NewRoadmapService creates a new RoadmapService
func NewRoadmapService(store *store.Store) RoadmapService {
	return &roadmapService{store: store}
}

func (s *roadmapService) Overview(ctx context.Context) (models.Roadmap, error) {
	state := s.store.Load()
	return state.Roadmap, nil
}

func (s *roadmapService) Focus(ctx context.Context) (roadmap.Focus, error) {
	state := s.store.Load()
	return roadmap.CurrentFocus(state.Roadmap), nil
}

func (s *roadmapService) Upcoming(ctx context.Context, limit int) ([]roadmap.UpcomingTask, error) {
	state := s.store.Load()
	return roadmap.UpcomingTasks(state.Roadmap, limit), nil
}

func (s *roadmapService) CompleteTask(ctx context.Context, taskID string) error {
	log := logger.FromContext(ctx)

	err := s.store.Update(func(state *models.State) error {
		if err := roadmap.CompleteTask(&state.Roadmap, taskID); err != nil {
			return err
		}
		refreshMilestones(state)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("task completed: %s", taskID)
	return nil
}

func (s *roadmapService) ImportPlan(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx)

	years, err := roadmap.LoadPlan(path)
	if err != nil {
		return 0, err
	}

	err = s.store.Update(func(state *models.State) error {
		state.Roadmap.Years = append(state.Roadmap.Years, years...)
		state.Roadmap.UpdatedAt = time.Now().UTC()
		refreshMilestones(state)
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("imported %d years from %s", len(years), path)
	return len(years), nil
}

// refreshMilestones re-derives the progress milestone counters from the plan.
func refreshMilestones(state *models.State) {
	completed, total := roadmap.TaskCensus(state.Roadmap)
	state.Progress.CompletedMilestones = completed
	state.Progress.TotalMilestones = total
}
