package evaluator

import (
	"github.com/feltops/cardroom/internal/deck"
)

// wheelScore is the kicker score for A-2-3-4-5, precomputed with the ace
// playing low (ranks 1,2,3,4,5): 1^1 + 2^2 + 3^3 + 4^4 + 5^5. It is below the
// score of every other straight, so the wheel loses to 2-3-4-5-6.
const wheelScore uint64 = 3413

// Score computes a total-ordered kicker score for a sorted five-card hand.
// Scores are only comparable between hands of the same Ranking; equal scores
// mean an exact tie, never a further tie-break.
//
// The hand is weighted by position: Σ (position+1)^rank over the ascending
// sort. The top weight on the strongest card keeps higher kickers dominant
// within a category. 64-bit arithmetic is required: A-A-A-A-K overflows
// signed 32 bits.
func Score(hand []deck.Card) uint64 {
	if len(hand) != 5 {
		return 0
	}
	if isWheel(hand) {
		return wheelScore
	}
	var total uint64
	for i, c := range hand {
		total += ipow(uint64(i+1), uint64(c.Rank))
	}
	return total
}

func ipow(base, exp uint64) uint64 {
	result := uint64(1)
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result
}
