package evaluator

import (
	"github.com/feltops/cardroom/internal/deck"
)

// Classify categorizes an exactly-five-card hand. The hand must already be
// sorted ascending by (rank, suit); use deck.Sorted if unsure. Categories are
// mutually exclusive so the predicates compose in best-to-worst order.
func Classify(hand []deck.Card) Ranking {
	if len(hand) != 5 {
		return HighCard
	}

	flush := isFlush(hand)
	straight := isStraight(hand)

	switch {
	case straight && flush && hand[0].Rank == deck.Ten:
		return RoyalFlush
	case straight && flush:
		return StraightFlush
	case isFourOfAKind(hand):
		return FourOfAKind
	case isFullHouse(hand):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case isThreeOfAKind(hand):
		return ThreeOfAKind
	}

	switch pairCount(hand) {
	case 2:
		return TwoPair
	case 1:
		return Pair
	default:
		return HighCard
	}
}

func isFlush(hand []deck.Card) bool {
	for i := 1; i < 5; i++ {
		if hand[i].Suit != hand[0].Suit {
			return false
		}
	}
	return true
}

func isStraight(hand []deck.Card) bool {
	if isWheel(hand) {
		return true
	}
	for i := 1; i < 5; i++ {
		if hand[i].Rank != hand[i-1].Rank+1 {
			return false
		}
	}
	return true
}

// isWheel matches A-2-3-4-5, which sorts as 2,3,4,5,A with the ace high.
// Matching the exact pattern keeps the ace-low exception out of every other
// code path.
func isWheel(hand []deck.Card) bool {
	return hand[0].Rank == deck.Two &&
		hand[1].Rank == deck.Three &&
		hand[2].Rank == deck.Four &&
		hand[3].Rank == deck.Five &&
		hand[4].Rank == deck.Ace
}

func isFourOfAKind(hand []deck.Card) bool {
	// Four equal ranks occupy positions 0-3 or 1-4 in a sorted hand.
	return hand[0].Rank == hand[3].Rank || hand[1].Rank == hand[4].Rank
}

func isFullHouse(hand []deck.Card) bool {
	if hand[0].Rank != hand[1].Rank || hand[3].Rank != hand[4].Rank {
		return false
	}
	return hand[2].Rank == hand[1].Rank || hand[2].Rank == hand[3].Rank
}

func isThreeOfAKind(hand []deck.Card) bool {
	// In a sorted hand any trips must include the middle card.
	return hand[2].Rank == hand[0].Rank || hand[2].Rank == hand[4].Rank ||
		(hand[1].Rank == hand[2].Rank && hand[2].Rank == hand[3].Rank)
}

func pairCount(hand []deck.Card) int {
	count := 0
	for i := 1; i < 5; i++ {
		if hand[i].Rank == hand[i-1].Rank {
			count++
		}
	}
	return count
}
