package models

import "time"

// State is the root application document, persisted as a single JSON file
// and always read and written wholesale.
type State struct {
	Roadmap   Roadmap       `json:"roadmap"`
	Progress  ProgressState `json:"progress"`
	Resources []Resource    `json:"resources"`
	Decks     []Deck        `json:"flashcard_decks"`
	Projects  []Project     `json:"github_projects"`
	Tips      []WeeklyTip   `json:"weekly_tips"`
	UpdatedAt time.Time     `json:"last_updated"`
}

// AllCards flattens every deck's cards in deck order.
func (s *State) AllCards() []Flashcard {
	var cards []Flashcard
	for _, d := range s.Decks {
		cards = append(cards, d.Cards...)
	}
	return cards
}

// FindDeck returns the deck with the given id, or nil.
func (s *State) FindDeck(deckID string) *Deck {
	for i := range s.Decks {
		if s.Decks[i].ID == deckID {
			return &s.Decks[i]
		}
	}
	return nil
}

// FindCard returns the card with the given id and its owning deck, or nils.
func (s *State) FindCard(cardID string) (*Deck, *Flashcard) {
	for i := range s.Decks {
		for j := range s.Decks[i].Cards {
			if s.Decks[i].Cards[j].ID == cardID {
				return &s.Decks[i], &s.Decks[i].Cards[j]
			}
		}
	}
	return nil, nil
}
