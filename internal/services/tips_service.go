package services

import (
	"context"
	"time"

	"github.com/example/studycoach/internal/advisor"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/roadmap"
	"github.com/example/studycoach/internal/store"
	"github.com/example/studycoach/internal/tips"
)

// TipsService handles weekly coaching tips
type TipsService interface {
	GenerateWeek(ctx context.Context, asOf time.Time) ([]models.WeeklyTip, error)
	Recent(ctx context.Context) ([]models.WeeklyTip, error)
}

type tipsService struct {
	store     *store.Store
	generator *tips.Generator
	coach     *advisor.Coach
}

// NewTipsService creates a new TipsService
func NewTipsService(store *store.Store, generator *tips.Generator, coach *advisor.Coach) TipsService {
	return &tipsService{store: store, generator: generator, coach: coach}
}

// GenerateWeek produces one tip per category for asOf's week. Each category
// first asks the advisor for a personalized tip and falls back to the
// template bank when that fails, so a disabled advisor still yields a full
// set. A week that already has tips keeps them; re-running the command does
// not duplicate or overwrite.
func (s *tipsService) GenerateWeek(ctx context.Context, asOf time.Time) ([]models.WeeklyTip, error) {
	log := logger.FromContext(ctx)

	week := tips.WeekNumber(asOf)

	state := s.store.Load()
	if existing := tipsForWeek(state.Tips, week); len(existing) > 0 {
		log.Debug("tips for week %d already exist", week)
		return existing, nil
	}

	generated := s.generator.ForWeek(week, asOf.UTC())
	focus := roadmap.CurrentFocus(state.Roadmap)
	focusLabel := "AI/ML Learning"
	if !focus.Done && focus.Week != "" {
		focusLabel = focus.Week
	}

	for i := range generated {
		content, err := s.coach.WeeklyTip(ctx, generated[i].Category, focusLabel)
		if err != nil {
			log.Debug("advisor tip unavailable for %s, using template: %v", generated[i].Category, err)
			continue
		}
		generated[i].Content = content
		generated[i].Source = models.TipSourceOpenAI
	}

	err := s.store.Update(func(state *models.State) error {
		state.Tips = append(state.Tips, generated...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("generated %d tips for week %d", len(generated), week)
	return generated, nil
}

func tipsForWeek(all []models.WeeklyTip, week int) []models.WeeklyTip {
	var matched []models.WeeklyTip
	for _, tip := range all {
		if tip.Week == week {
			matched = append(matched, tip)
		}
	}
	return matched
}

// Recent returns the latest batch of tips, at most one per category.
func (s *tipsService) Recent(ctx context.Context) ([]models.WeeklyTip, error) {
	state := s.store.Load()

	all := state.Tips
	if len(all) > len(models.TipCategories) {
		all = all[len(all)-len(models.TipCategories):]
	}
	return all, nil
}
