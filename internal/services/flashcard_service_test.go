package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/studycoach/internal/advisor"
	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/store"
	"github.com/example/studycoach/internal/testutil"
	"github.com/example/studycoach/internal/testutil/mocks"
)

func newFlashcardService(t *testing.T) (services.FlashcardService, *store.Store) {
	t.Helper()
	s := testutil.TempStore(t)
	return services.NewFlashcardService(s, advisor.NewCoach(advisor.Disabled{})), s
}

func TestCreateDeckAndAddCard(t *testing.T) {
	svc, store := newFlashcardService(t)
	ctx := context.Background()

	deck, err := svc.CreateDeck(ctx, "Transformers", "Attention and friends")
	require.NoError(t, err)
	assert.NotEmpty(t, deck.ID)

	card, err := svc.AddCard(ctx, deck.ID, "What is self-attention?", "Tokens attending to each other.", models.DifficultyIntermediate)
	require.NoError(t, err)
	assert.Equal(t, "Transformers", card.Topic, "card inherits the deck topic")
	assert.Equal(t, models.CardNew, card.Status)

	state := store.Load()
	require.Len(t, state.Decks, 1)
	require.Len(t, state.Decks[0].Cards, 1)
	assert.Equal(t, card.ID, state.Decks[0].Cards[0].ID)
}

func TestCreateDeck_RejectsEmptyTopic(t *testing.T) {
	svc, _ := newFlashcardService(t)

	_, err := svc.CreateDeck(context.Background(), "  ", "")

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestAddCard_UnknownDeck(t *testing.T) {
	svc, _ := newFlashcardService(t)

	_, err := svc.AddCard(context.Background(), "nope", "q", "a", models.DifficultyBeginner)

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDueCards_NewCardsFirst(t *testing.T) {
	later := time.Now().UTC().Add(48 * time.Hour)
	state := testutil.StateWithDeck(models.Deck{
		ID:    "d1",
		Topic: "Python",
		Cards: []models.Flashcard{
			{ID: "c1", Question: "q1", Answer: "a1", Status: models.CardReviewing, NextReview: &later},
			{ID: "c2", Question: "q2", Answer: "a2", Status: models.CardNew},
		},
	})
	svc := services.NewFlashcardService(testutil.SeededStore(t, state), advisor.NewCoach(advisor.Disabled{}))

	due, err := svc.DueCards(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "c2", due[0].ID, "new cards come before scheduled ones")
}

func TestReviewCard_PersistsOutcome(t *testing.T) {
	state := testutil.StateWithDeck(models.Deck{
		ID:    "d1",
		Topic: "Python",
		Cards: []models.Flashcard{{ID: "c1", Question: "q", Answer: "a", Status: models.CardNew}},
	})
	s := testutil.SeededStore(t, state)
	svc := services.NewFlashcardService(s, advisor.NewCoach(advisor.Disabled{}))

	reviewed, err := svc.ReviewCard(context.Background(), "c1", models.OutcomeEasy)

	require.NoError(t, err)
	assert.Equal(t, models.CardReviewing, reviewed.Status)
	assert.Equal(t, 1, reviewed.ReviewCount)
	require.NotNil(t, reviewed.NextReview)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), *reviewed.NextReview, time.Minute)

	persisted := s.Load()
	assert.Equal(t, models.CardReviewing, persisted.Decks[0].Cards[0].Status)
	assert.Equal(t, 1, persisted.Decks[0].TotalReviews, "deck review counter increments")
}

func TestReviewCard_UnknownCard(t *testing.T) {
	svc, _ := newFlashcardService(t)

	_, err := svc.ReviewCard(context.Background(), "missing", models.OutcomeEasy)

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestReviewCard_InvalidOutcomeLeavesStateAlone(t *testing.T) {
	state := testutil.StateWithDeck(models.Deck{
		ID:    "d1",
		Topic: "Python",
		Cards: []models.Flashcard{{ID: "c1", Question: "q", Answer: "a", Status: models.CardNew}},
	})
	s := testutil.SeededStore(t, state)
	svc := services.NewFlashcardService(s, advisor.NewCoach(advisor.Disabled{}))

	_, err := svc.ReviewCard(context.Background(), "c1", models.ReviewOutcome("sideways"))

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	persisted := s.Load()
	assert.Equal(t, models.CardNew, persisted.Decks[0].Cards[0].Status)
	assert.Zero(t, persisted.Decks[0].TotalReviews)
}

func TestImportDeck_CSV(t *testing.T) {
	state := testutil.StateWithDeck(models.Deck{ID: "d1", Topic: "ML basics"})
	s := testutil.SeededStore(t, state)
	svc := services.NewFlashcardService(s, advisor.NewCoach(advisor.Disabled{}))

	path := filepath.Join(t.TempDir(), "cards.csv")
	content := "Question,Answer\nWhat is SGD?,Stochastic gradient descent.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := svc.ImportDeck(context.Background(), "d1", path)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	persisted := s.Load()
	require.Len(t, persisted.Decks[0].Cards, 1)
	assert.Equal(t, "ML basics", persisted.Decks[0].Cards[0].Topic, "imported cards take the deck topic")
}

func TestImportDeck_UnknownDeck(t *testing.T) {
	svc, _ := newFlashcardService(t)

	_, err := svc.ImportDeck(context.Background(), "missing", "whatever.xlsx")

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGenerateCards_AppendsToDeck(t *testing.T) {
	state := testutil.StateWithDeck(models.Deck{ID: "d1", Topic: "Transformers"})
	s := testutil.SeededStore(t, state)

	mockAdvisor := new(mocks.MockAdvisor)
	mockAdvisor.On("Generate", mock.Anything, mock.Anything).
		Return(`[{"question":"What is attention?","answer":"A weighted token mix."}]`, nil)
	svc := services.NewFlashcardService(s, advisor.NewCoach(mockAdvisor))

	cards, err := svc.GenerateCards(context.Background(), "d1", "", 1)

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Transformers", cards[0].Topic, "empty topic falls back to the deck topic")

	persisted := s.Load()
	assert.Len(t, persisted.Decks[0].Cards, 1)
	mockAdvisor.AssertExpectations(t)
}

func TestGenerateCards_DisabledAdvisor(t *testing.T) {
	state := testutil.StateWithDeck(models.Deck{ID: "d1", Topic: "Transformers"})
	svc := services.NewFlashcardService(testutil.SeededStore(t, state), advisor.NewCoach(advisor.Disabled{}))

	_, err := svc.GenerateCards(context.Background(), "d1", "", 3)

	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
