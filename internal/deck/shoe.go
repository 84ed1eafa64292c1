package deck

import (
	"errors"
	"math/rand"
)

// ErrShoeEmpty is returned when a draw is requested and neither the shoe nor
// the discard pile has any cards left.
var ErrShoeEmpty = errors.New("deck: shoe and discard pile are empty")

// Shoe holds one or more shuffled decks plus a discard pile. Drawn cards are
// owned by the caller until returned via Discard; when the shoe runs dry the
// discard pile is shuffled back in.
type Shoe struct {
	cards   []Card
	discard []Card
	rng     *rand.Rand
}

// NewShoe creates a shoe holding deckCount standard 52-card decks. The RNG is
// explicit so tests can make shuffles deterministic.
func NewShoe(deckCount int, rng *rand.Rand) *Shoe {
	s := &Shoe{rng: rng}
	s.Generate(deckCount)
	return s
}

// NewStackedShoe creates a shoe that deals the given cards in order, for
// deterministic deals in tests.
func NewStackedShoe(cards []Card) *Shoe {
	s := &Shoe{rng: rand.New(rand.NewSource(0))}
	s.cards = append(s.cards, cards...)
	return s
}

// Generate discards the current contents and refills the shoe with deckCount
// full decks, shuffled.
func (s *Shoe) Generate(deckCount int) {
	if deckCount < 1 {
		deckCount = 1
	}
	s.cards = make([]Card, 0, 52*deckCount)
	s.discard = s.discard[:0]
	for d := 0; d < deckCount; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.Shuffle()
}

// Shuffle randomizes the order of the undrawn cards
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top card. If the shoe is empty the discard
// pile is shuffled back in first.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		if len(s.discard) == 0 {
			return Card{}, ErrShoeEmpty
		}
		s.cards = append(s.cards, s.discard...)
		s.discard = s.discard[:0]
		s.Shuffle()
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// DrawN draws n cards, stopping early only if the shoe and discards run out.
func (s *Shoe) DrawN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := s.Draw()
		if err != nil {
			return cards, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Discard returns a drawn card to the discard pile
func (s *Shoe) Discard(card Card) {
	s.discard = append(s.discard, card)
}

// DiscardAll returns a batch of drawn cards to the discard pile
func (s *Shoe) DiscardAll(cards []Card) {
	s.discard = append(s.discard, cards...)
}

// Remaining returns the number of undrawn cards in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Clear empties the shoe and the discard pile
func (s *Shoe) Clear() {
	s.cards = s.cards[:0]
	s.discard = s.discard[:0]
}
