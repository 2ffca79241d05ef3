package services

import (
	"context"
	"strings"
	"time"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/store"
	"github.com/example/studycoach/internal/streak"
)

// WeekStats summarizes the sessions logged since the start of the current
// week (Monday).
type WeekStats struct {
	WeekStart  time.Time
	Sessions   int
	TotalHours float64
	Topics     []string
}

// ProgressService handles session logging and progress statistics
type ProgressService interface {
	LogSession(ctx context.Context, hours float64, topics, resources []string, notes, mood string) (models.Session, error)
	Progress(ctx context.Context) (models.ProgressState, error)
	WeekStats(ctx context.Context, asOf time.Time) (WeekStats, error)
}

type progressService struct {
	store *store.Store
}

// NewProgressService creates a new ProgressService
func NewProgressService(store *store.Store) ProgressService {
	return &progressService{store: store}
}

func (s *progressService) LogSession(ctx context.Context, hours float64, topics, resources []string, notes, mood string) (models.Session, error) {
	log := logger.FromContext(ctx)
	log.Debug("logging session: hours=%.2f, topics=%v", hours, topics)

	if hours <= 0 {
		return models.Session{}, errors.NewValidationError("hours", "must be greater than zero")
	}
	topics = cleanList(topics)
	if len(topics) == 0 {
		return models.Session{}, errors.NewValidationError("topics", "at least one topic is required")
	}

	now := time.Now().UTC()
	session := models.Session{
		Date:          now.Format(models.DateLayout),
		DurationHours: hours,
		TopicsCovered: topics,
		ResourcesUsed: cleanList(resources),
		Notes:         notes,
		Mood:          mood,
	}

	err := s.store.Update(func(state *models.State) error {
		state.Progress.Sessions = append(state.Progress.Sessions, session)
		state.Progress.TotalHours += hours
		state.Progress.LastSessionDate = session.Date
		current, longest := streak.Recompute(state.Progress.Sessions, now)
		state.Progress.CurrentStreak = current
		state.Progress.LongestStreak = longest
		state.Progress.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.Error("failed to save session: %v", err)
		return models.Session{}, err
	}

	log.Info("session logged: %s, %.1fh", session.Date, hours)
	return session, nil
}

func (s *progressService) Progress(ctx context.Context) (models.ProgressState, error) {
	state := s.store.Load()
	return state.Progress, nil
}

func (s *progressService) WeekStats(ctx context.Context, asOf time.Time) (WeekStats, error) {
	state := s.store.Load()

	weekStart := startOfWeek(asOf)
	stats := WeekStats{WeekStart: weekStart}
	seen := make(map[string]bool)

	for _, session := range state.Progress.Sessions {
		day, ok := session.Day()
		if !ok || day.Before(weekStart) {
			continue
		}
		stats.Sessions++
		stats.TotalHours += session.DurationHours
		for _, topic := range session.TopicsCovered {
			if !seen[topic] {
				seen[topic] = true
				stats.Topics = append(stats.Topics, topic)
			}
		}
	}
	return stats, nil
}

// startOfWeek returns the Monday of asOf's week, at midnight UTC.
func startOfWeek(asOf time.Time) time.Time {
	t := asOf.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysSinceMonday)
}

func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
