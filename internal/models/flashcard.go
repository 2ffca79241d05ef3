package models

import (
	"strings"
	"time"
)

// CardStatus tracks where a flashcard sits in its review lifecycle.
type CardStatus string

const (
	CardNew       CardStatus = "new"
	CardReviewing CardStatus = "reviewing"
	CardDifficult CardStatus = "difficult"
	CardMastered  CardStatus = "mastered"
)

// ReviewOutcome is the self-graded result of reviewing one card.
type ReviewOutcome string

const (
	OutcomeEasy      ReviewOutcome = "easy"
	OutcomeHard      ReviewOutcome = "hard"
	OutcomeDifficult ReviewOutcome = "difficult"
	OutcomeMastered  ReviewOutcome = "mastered"
)

// ParseOutcome normalizes a user-supplied outcome string.
func ParseOutcome(s string) (ReviewOutcome, bool) {
	switch ReviewOutcome(strings.ToLower(strings.TrimSpace(s))) {
	case OutcomeEasy:
		return OutcomeEasy, true
	case OutcomeHard:
		return OutcomeHard, true
	case OutcomeDifficult:
		return OutcomeDifficult, true
	case OutcomeMastered:
		return OutcomeMastered, true
	}
	return "", false
}

// Flashcard is a single question/answer card. NextReview is nil until the
// first review; it only ever moves forward from the review instant.
type Flashcard struct {
	ID           string     `json:"card_id"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	Topic        string     `json:"topic"`
	Status       CardStatus `json:"status"`
	Difficulty   Difficulty `json:"difficulty"`
	ReviewCount  int        `json:"review_count"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	NextReview   *time.Time `json:"next_review,omitempty"`
}

// Deck is a collection of flashcards on one topic. Cards belong to exactly
// one deck.
type Deck struct {
	ID           string      `json:"deck_id"`
	Topic        string      `json:"topic"`
	Description  string      `json:"description"`
	Cards        []Flashcard `json:"cards"`
	CreatedAt    time.Time   `json:"created_at"`
	TotalReviews int         `json:"total_reviews"`
}
