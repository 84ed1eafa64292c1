package evaluator

import (
	"fmt"

	"github.com/feltops/cardroom/internal/deck"
)

// Best returns the strongest five-card hand choosable from 5 to 7 cards,
// along with its Ranking. All C(n,5) subsets are classified; subsets tied on
// category are separated by kicker score. The result depends only on the card
// multiset, not input order.
func Best(cards []deck.Card) ([]deck.Card, Ranking, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return nil, HighCard, fmt.Errorf("evaluator: need 5 to 7 cards, got %d", len(cards))
	}

	// Sorting up front makes subset enumeration order-independent.
	pool := deck.Sorted(cards)

	var (
		best      []deck.Card
		bestRank  Ranking
		bestScore uint64
		first     = true
	)

	forEachSubset(pool, func(hand []deck.Card) {
		rank := Classify(hand)
		if first || rank.Beats(bestRank) {
			best = append(best[:0], hand...)
			bestRank = rank
			bestScore = Score(hand)
			first = false
			return
		}
		if rank == bestRank {
			if score := Score(hand); score > bestScore {
				best = append(best[:0], hand...)
				bestScore = score
			}
		}
	})

	return best, bestRank, nil
}

// forEachSubset visits every five-card subset of pool in a fixed order. The
// pool is already sorted, so each subset arrives sorted too.
func forEachSubset(pool []deck.Card, visit func([]deck.Card)) {
	n := len(pool)
	if n == 5 {
		visit(pool)
		return
	}

	hand := make([]deck.Card, 5)
	idx := [5]int{}
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == 5 {
			for i, j := range idx {
				hand[i] = pool[j]
			}
			visit(hand)
			return
		}
		for i := start; i <= n-(5-depth); i++ {
			idx[depth] = i
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}
