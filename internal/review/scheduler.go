// Package review schedules flashcard reviews: picking which cards are due
// and rescheduling a card after an outcome.
package review

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/models"
)

// Review intervals per outcome.
const (
	masteredInterval  = 30 * 24 * time.Hour
	easyInterval      = 7 * 24 * time.Hour
	hardInterval      = 24 * time.Hour
	difficultInterval = 6 * time.Hour
)

// SelectDue orders cards for a review session and returns at most limit of
// them. Priority tiers: never-reviewed cards, then difficult cards, then
// cards whose next review has arrived, then everything else. Ties within a
// tier break by ascending review count; the sort is stable, so repeated
// calls without an intervening review return the same sequence.
func SelectDue(cards []models.Flashcard, asOf time.Time, limit int) []models.Flashcard {
	if limit <= 0 || len(cards) == 0 {
		return nil
	}

	ordered := make([]models.Flashcard, len(cards))
	copy(ordered, cards)

	sort.SliceStable(ordered, func(i, j int) bool {
		ti, tj := tier(ordered[i], asOf), tier(ordered[j], asOf)
		if ti != tj {
			return ti < tj
		}
		return ordered[i].ReviewCount < ordered[j].ReviewCount
	})

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

// DueCount reports how many cards currently need attention: new cards,
// difficult cards, and cards whose next review time has passed.
func DueCount(cards []models.Flashcard, asOf time.Time) int {
	n := 0
	for _, c := range cards {
		if tier(c, asOf) < 3 {
			n++
		}
	}
	return n
}

func tier(c models.Flashcard, asOf time.Time) int {
	switch {
	case c.Status == models.CardNew:
		return 0
	case c.Status == models.CardDifficult:
		return 1
	case c.NextReview != nil && !c.NextReview.After(asOf):
		return 2
	default:
		return 3
	}
}

// ApplyOutcome reschedules one card after a review. The outcome fixes the
// new status and the next review interval, anchored on asOf; the review
// count always increments by exactly one. A card never stays NEW past its
// first review. An unrecognized outcome is rejected before any change.
func ApplyOutcome(card models.Flashcard, outcome models.ReviewOutcome, asOf time.Time) (models.Flashcard, error) {
	var status models.CardStatus
	var interval time.Duration

	switch outcome {
	case models.OutcomeMastered:
		status, interval = models.CardMastered, masteredInterval
	case models.OutcomeEasy:
		status, interval = models.CardReviewing, easyInterval
	case models.OutcomeHard:
		status, interval = models.CardReviewing, hardInterval
	case models.OutcomeDifficult:
		status, interval = models.CardDifficult, difficultInterval
	default:
		return card, errors.NewValidationError("outcome", fmt.Sprintf("unrecognized review outcome %q", outcome))
	}

	reviewedAt := asOf
	next := asOf.Add(interval)

	card.Status = status
	card.ReviewCount++
	card.LastReviewed = &reviewedAt
	card.NextReview = &next
	return card, nil
}
