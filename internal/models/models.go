package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short random identifier: the first 8 hex characters of a
// v4 UUID. Short IDs keep CLI commands typeable.
func NewID() string {
	return uuid.NewString()[:8]
}

// Difficulty grades resources and flashcards.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes a user-supplied difficulty string.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyBeginner:
		return DifficultyBeginner, true
	case DifficultyIntermediate:
		return DifficultyIntermediate, true
	case DifficultyAdvanced:
		return DifficultyAdvanced, true
	}
	return "", false
}
