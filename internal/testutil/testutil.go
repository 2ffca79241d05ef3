package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/store"
)

// TempStore creates a store backed by a file in a per-test temp directory.
// The file does not exist until the first save, so a fresh store loads the
// seeded default state.
func TempStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "learning_data.json"))
}

// SeededStore creates a temp store and saves the given state into it.
func SeededStore(t *testing.T, state *models.State) *store.Store {
	t.Helper()
	s := TempStore(t)
	require.NoError(t, s.Save(state))
	return s
}

// Day parses a YYYY-MM-DD date into a UTC midnight time.
func Day(t *testing.T, date string) time.Time {
	t.Helper()
	day, err := time.Parse(models.DateLayout, date)
	require.NoError(t, err)
	return day
}

// StateWithDeck returns a minimal state holding one deck, for flashcard
// tests that do not care about the seeded roadmap.
func StateWithDeck(deck models.Deck) *models.State {
	return &models.State{
		Decks: []models.Deck{deck},
	}
}
