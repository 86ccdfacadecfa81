package session

import "github.com/abhisek/odootrail/internal/catalog"

// Card returns the current flashcard.
func (s *Session) Card() catalog.Card {
	return s.lesson.Cards[s.cards.index]
}

// CardIndex returns the 0-based position in the deck.
func (s *Session) CardIndex() int { return s.cards.index }

// DeckSize returns the number of cards.
func (s *Session) DeckSize() int { return len(s.lesson.Cards) }

// Flipped reports whether the current card shows its answer side.
func (s *Session) Flipped() bool { return s.cards.flipped }

// DeckDone reports whether the deck reached its terminal completed state.
func (s *Session) DeckDone() bool { return s.cards.deckDone }

// Flip toggles the current card. Position is untouched.
func (s *Session) Flip() {
	if s.cards.deckDone {
		return
	}
	s.cards.flipped = !s.cards.flipped
}

// NextCard advances the deck. On the last card it transitions to the
// completed state instead of advancing.
func (s *Session) NextCard() {
	if s.cards.deckDone {
		return
	}
	if s.cards.index < len(s.lesson.Cards)-1 {
		s.cards.index++
		s.cards.flipped = false
		return
	}
	s.cards.deckDone = true
}

// PrevCard steps back one card, resetting the flip.
func (s *Session) PrevCard() {
	if s.cards.deckDone || s.cards.index == 0 {
		return
	}
	s.cards.index--
	s.cards.flipped = false
}

// ReviewAgain restarts the deck from the completed state.
func (s *Session) ReviewAgain() {
	s.cards.index = 0
	s.cards.flipped = false
	s.cards.deckDone = false
}
