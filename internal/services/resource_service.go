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

// ResourceService handles the learning resource library
type ResourceService interface {
	Add(ctx context.Context, title, resourceType, url string, difficulty models.Difficulty, description string, topics []string) (models.Resource, error)
	All(ctx context.Context) ([]models.Resource, error)
	ByTopic(ctx context.Context, topic string) ([]models.Resource, error)
	SetStatus(ctx context.Context, resourceID string, status models.ResourceStatus) (models.Resource, error)
}

type resourceService struct {
	store *store.Store
}

// NewResourceService creates a new ResourceService
func NewResourceService(store *store.Store) ResourceService {
	return &resourceService{store: store}
}

func (s *resourceService) Add(ctx context.Context, title, resourceType, url string, difficulty models.Difficulty, description string, topics []string) (models.Resource, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return models.Resource{}, errors.NewValidationError("title", "cannot be empty")
	}
	resourceType = strings.ToLower(strings.TrimSpace(resourceType))
	if resourceType == "" {
		return models.Resource{}, errors.NewValidationError("type", "cannot be empty")
	}

	topics = cleanList(topics)
	if len(topics) == 0 {
		topics = []string{title}
	}

	resource := models.Resource{
		ID:           models.NewID(),
		Title:        title,
		Type:         resourceType,
		URL:          url,
		Difficulty:   difficulty,
		Description:  description,
		MappedTopics: topics,
		Status:       models.ResourceTodo,
		AddedAt:      time.Now().UTC(),
	}
	err := s.store.Update(func(state *models.State) error {
		state.Resources = append(state.Resources, resource)
		return nil
	})
	if err != nil {
		return models.Resource{}, err
	}

	log.Info("resource added: id=%s, title=%s", resource.ID, resource.Title)
	return resource, nil
}

func (s *resourceService) All(ctx context.Context) ([]models.Resource, error) {
	state := s.store.Load()
	return state.Resources, nil
}

func (s *resourceService) ByTopic(ctx context.Context, topic string) ([]models.Resource, error) {
	state := s.store.Load()

	var matched []models.Resource
	for _, r := range state.Resources {
		for _, t := range r.MappedTopics {
			if t == topic {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched, nil
}

func (s *resourceService) SetStatus(ctx context.Context, resourceID string, status models.ResourceStatus) (models.Resource, error) {
	log := logger.FromContext(ctx)

	var updated models.Resource
	err := s.store.Update(func(state *models.State) error {
		for i := range state.Resources {
			if state.Resources[i].ID != resourceID {
				continue
			}
			state.Resources[i].Status = status
			if status == models.ResourceCompleted {
				now := time.Now().UTC()
				state.Resources[i].CompletedAt = &now
			}
			updated = state.Resources[i]
			return nil
		}
		return errors.NewNotFoundError("resource", resourceID)
	})
	if err != nil {
		return models.Resource{}, err
	}

	log.Info("resource %s status set to %s", resourceID, status)
	return updated, nil
}
