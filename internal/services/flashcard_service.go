package services

import (
	"context"
	"strings"
	"time"

	"github.com/example/studycoach/internal/advisor"
	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/excel"
	"github.com/example/studycoach/internal/logger"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/review"
	"github.com/example/studycoach/internal/store"
)

// FlashcardService handles decks, cards, and review sessions
type FlashcardService interface {
	CreateDeck(ctx context.Context, topic, description string) (models.Deck, error)
	AddCard(ctx context.Context, deckID, question, answer string, difficulty models.Difficulty) (models.Flashcard, error)
	Decks(ctx context.Context) ([]models.Deck, error)
	DueCards(ctx context.Context, limit int) ([]models.Flashcard, error)
	ReviewCard(ctx context.Context, cardID string, outcome models.ReviewOutcome) (models.Flashcard, error)
	ImportDeck(ctx context.Context, deckID, filePath string) (*excel.ImportResult, error)
	GenerateCards(ctx context.Context, deckID, topic string, n int) ([]models.Flashcard, error)
}

type flashcardService struct {
	store *store.Store
	coach *advisor.Coach
}

// NewFlashcardService creates a new FlashcardService
func NewFlashcardService(store *store.Store, coach *advisor.Coach) FlashcardService {
	return &flashcardService{store: store, coach: coach}
}

func (s *flashcardService) CreateDeck(ctx context.Context, topic, description string) (models.Deck, error) {
	log := logger.FromContext(ctx)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.Deck{}, errors.NewValidationError("topic", "cannot be empty")
	}

	deck := models.Deck{
		ID:          models.NewID(),
		Topic:       topic,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	err := s.store.Update(func(state *models.State) error {
		state.Decks = append(state.Decks, deck)
		return nil
	})
	if err != nil {
		return models.Deck{}, err
	}

	log.Info("deck created: id=%s, topic=%s", deck.ID, deck.Topic)
	return deck, nil
}

func (s *flashcardService) AddCard(ctx context.Context, deckID, question, answer string, difficulty models.Difficulty) (models.Flashcard, error) {
	log := logger.FromContext(ctx)

	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return models.Flashcard{}, errors.NewValidationError("question", "cannot be empty")
	}
	if answer == "" {
		return models.Flashcard{}, errors.NewValidationError("answer", "cannot be empty")
	}

	var card models.Flashcard
	err := s.store.Update(func(state *models.State) error {
		deck := state.FindDeck(deckID)
		if deck == nil {
			return errors.NewNotFoundError("deck", deckID)
		}
		card = models.Flashcard{
			ID:         models.NewID(),
			Question:   question,
			Answer:     answer,
			Topic:      deck.Topic,
			Status:     models.CardNew,
			Difficulty: difficulty,
			CreatedAt:  time.Now().UTC(),
		}
		deck.Cards = append(deck.Cards, card)
		return nil
	})
	if err != nil {
		return models.Flashcard{}, err
	}

	log.Debug("card added: deck=%s, card=%s", deckID, card.ID)
	return card, nil
}

func (s *flashcardService) Decks(ctx context.Context) ([]models.Deck, error) {
	state := s.store.Load()
	return state.Decks, nil
}

func (s *flashcardService) DueCards(ctx context.Context, limit int) ([]models.Flashcard, error) {
	state := s.store.Load()
	return review.SelectDue(state.AllCards(), time.Now().UTC(), limit), nil
}

func (s *flashcardService) ReviewCard(ctx context.Context, cardID string, outcome models.ReviewOutcome) (models.Flashcard, error) {
	log := logger.FromContext(ctx)

	var reviewed models.Flashcard
	err := s.store.Update(func(state *models.State) error {
		deck, card := state.FindCard(cardID)
		if card == nil {
			return errors.NewNotFoundError("card", cardID)
		}
		updated, err := review.ApplyOutcome(*card, outcome, time.Now().UTC())
		if err != nil {
			return err
		}
		*card = updated
		deck.TotalReviews++
		reviewed = updated
		return nil
	})
	if err != nil {
		return models.Flashcard{}, err
	}

	log.Debug("card reviewed: card=%s, outcome=%s, status=%s", cardID, outcome, reviewed.Status)
	return reviewed, nil
}

func (s *flashcardService) ImportDeck(ctx context.Context, deckID, filePath string) (*excel.ImportResult, error) {
	log := logger.FromContext(ctx)

	state := s.store.Load()
	deck := state.FindDeck(deckID)
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	result, err := excel.ImportCards(excel.DefaultImportConfig(filePath, deck.Topic))
	if err != nil {
		return nil, err
	}

	err = s.store.Update(func(state *models.State) error {
		deck := state.FindDeck(deckID)
		if deck == nil {
			return errors.NewNotFoundError("deck", deckID)
		}
		deck.Cards = append(deck.Cards, result.Cards...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("imported %d cards into deck %s (%d skipped)", result.Imported, deckID, result.Skipped)
	return result, nil
}

func (s *flashcardService) GenerateCards(ctx context.Context, deckID, topic string, n int) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	if n <= 0 {
		n = 5
	}

	state := s.store.Load()
	deck := state.FindDeck(deckID)
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}
	if strings.TrimSpace(topic) == "" {
		topic = deck.Topic
	}

	cards, err := s.coach.GenerateCards(ctx, topic, models.DifficultyIntermediate, n)
	if err != nil {
		return nil, err
	}

	err = s.store.Update(func(state *models.State) error {
		deck := state.FindDeck(deckID)
		if deck == nil {
			return errors.NewNotFoundError("deck", deckID)
		}
		deck.Cards = append(deck.Cards, cards...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("generated %d cards for deck %s", len(cards), deckID)
	return cards, nil
}
