package evaluator

import (
	"fmt"
	"strings"

	"github.com/feltops/cardroom/internal/deck"
)

var rankByChar = map[byte]deck.Rank{
	'2': deck.Two, '3': deck.Three, '4': deck.Four, '5': deck.Five,
	'6': deck.Six, '7': deck.Seven, '8': deck.Eight, '9': deck.Nine,
	'T': deck.Ten, 'J': deck.Jack, 'Q': deck.Queen, 'K': deck.King,
	'A': deck.Ace,
}

var suitByChar = map[byte]deck.Suit{
	's': deck.Spades, 'h': deck.Hearts, 'd': deck.Diamonds, 'c': deck.Clubs,
}

// ParseCards parses card notation like "AsKsQsJsTs" into cards. Ranks are
// 2-9, T, J, Q, K, A; suits are s, h, d, c. Case-insensitive.
func ParseCards(s string) ([]deck.Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length %d", len(s))
	}

	cards := make([]deck.Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		rank, ok := rankByChar[upper(s[i])]
		if !ok {
			return nil, fmt.Errorf("unknown rank %q at position %d", s[i], i)
		}
		suit, ok := suitByChar[lower(s[i+1])]
		if !ok {
			return nil, fmt.Errorf("unknown suit %q at position %d", s[i+1], i+1)
		}
		cards = append(cards, deck.Card{Rank: rank, Suit: suit})
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []deck.Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
