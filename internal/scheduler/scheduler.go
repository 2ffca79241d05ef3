// Package scheduler runs the periodic background jobs for serve mode:
// reminding about due cards, keeping the streak honest across idle days,
// and generating the weekly tip batch.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/review"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/store"
	"github.com/example/studycoach/internal/streak"
	"github.com/example/studycoach/internal/tips"
)

// Scheduler owns the background jobs that keep derived state fresh while
// the HTTP server runs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	store     *store.Store
	tips      services.TipsService
	log       *logger.Logger
}

// New creates a Scheduler. Jobs do not run until Start is called.
func New(st *store.Store, tipsService services.TipsService) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		store:     st,
		tips:      tipsService,
		log:       logger.Default().WithPrefix("scheduler"),
	}
}

// Start registers the jobs and launches them in the background.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Hour().Do(s.logDueCards); err != nil {
		return err
	}
	if _, err := s.scheduler.Every(1).Day().At("00:05").Do(s.refreshStreak); err != nil {
		return err
	}
	if _, err := s.scheduler.Every(1).Monday().At("06:00").Do(s.generateWeeklyTips); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.log.Info("background jobs started")
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.log.Info("background jobs stopped")
}

// logDueCards reports how many cards are waiting for review.
func (s *Scheduler) logDueCards() {
	state := s.store.Load()
	due := review.DueCount(state.AllCards(), time.Now())
	if due == 0 {
		s.log.Debug("no cards due for review")
		return
	}
	s.log.Info("%d cards due for review", due)
}

// refreshStreak recomputes the study streak so it drops to zero after a
// missed day even when no new session arrives to trigger the update.
func (s *Scheduler) refreshStreak() {
	err := s.store.Update(func(state *models.State) error {
		current, longest := streak.Recompute(state.Progress.Sessions, time.Now())
		if state.Progress.CurrentStreak == current && state.Progress.LongestStreak == longest {
			return nil
		}
		s.log.Info("streak refreshed: current %d, longest %d", current, longest)
		state.Progress.CurrentStreak = current
		state.Progress.LongestStreak = longest
		return nil
	})
	if err != nil {
		s.log.Error("streak refresh failed: %v", err)
	}
}

// generateWeeklyTips produces the tip batch for the new week. The tips
// service keeps existing weeks untouched, so a restart mid-week does not
// duplicate tips.
func (s *Scheduler) generateWeeklyTips() {
	now := time.Now()

	ctx := logger.NewContext(context.Background(), s.log)
	if _, err := s.tips.GenerateWeek(ctx, now); err != nil {
		s.log.Error("weekly tip generation failed: %v", err)
		return
	}
	s.log.Info("refreshed tips for week %d", tips.WeekNumber(now))
}
