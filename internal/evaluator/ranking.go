package evaluator

// Ranking is a hand category. Lower values are stronger: comparisons always
// use this ordering, never sums of card ranks.
type Ranking int

const (
	RoyalFlush Ranking = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

// String returns the readable name of the ranking
func (r Ranking) String() string {
	switch r {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Beats returns true if r is a strictly better category than other
func (r Ranking) Beats(other Ranking) bool {
	return r < other
}

// Compare returns 1 if r is stronger than other, -1 if weaker, 0 if the
// categories are equal (kicker scores decide from there).
func (r Ranking) Compare(other Ranking) int {
	switch {
	case r < other:
		return 1
	case r > other:
		return -1
	default:
		return 0
	}
}
