package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltops/cardroom/internal/deck"
	"github.com/feltops/cardroom/internal/evaluator"
)

// newTestController builds a controller over a stacked shoe so every deal is
// deterministic. Cards are dealt hole cards first in seat order, then the
// board streets in phase order.
func newTestController(t *testing.T, cfg Config, stacks []int, cards string) *Controller {
	t.Helper()
	names := make([]string, len(stacks))
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	players, err := NewPlayerLedger(names, stacks)
	require.NoError(t, err)
	shoe := deck.NewStackedShoe(evaluator.MustParseCards(cards))
	return NewController(cfg, players, shoe, nil)
}

func totalStacks(c *Controller) int {
	total := 0
	for _, p := range c.Players().Players() {
		total += p.Stack + p.Bet
	}
	return total
}

func TestHeadsUpRoundToShowdown(t *testing.T) {
	cfg := Config{Variant: TexasHoldem, SmallBlind: 1, BigBlind: 2}
	// Seat 0 holds aces, seat 1 kings, the board misses both.
	c := newTestController(t, cfg, []int{100, 100}, "AsAh KsKh 2c7d9s Jc 3d")

	require.NoError(t, c.StartRound())
	assert.Equal(t, PhasePreFlop, c.Phase())
	assert.NotEqual(t, [16]byte{}, [16]byte(c.RoundID()))

	// Heads-up the dealer posts the small blind and opens the betting.
	require.Equal(t, 0, c.CurrentTurn())
	assert.Equal(t, 99, c.Players().Player(0).Stack)
	assert.Equal(t, 98, c.Players().Player(1).Stack)

	require.NoError(t, c.Act(0, ActionCall, 0))
	require.Equal(t, 1, c.CurrentTurn())
	require.NoError(t, c.Act(1, ActionCheck, 0))

	// The big blind's check closes pre-flop; three board cards come out.
	assert.Equal(t, PhaseFlop, c.Phase())
	assert.Len(t, c.Community(), 3)
	assert.Equal(t, []int{4}, c.PotTotals())

	for _, phase := range []Phase{PhaseTurn, PhaseRiver, PhaseConclusion} {
		require.NoError(t, c.Act(1, ActionCheck, 0))
		require.NoError(t, c.Act(0, ActionCheck, 0))
		if phase != PhaseConclusion {
			assert.Equal(t, phase, c.Phase())
		}
	}

	require.True(t, c.Finished())
	result := c.Result()
	require.NotNil(t, result)
	assert.False(t, result.Uncontested)
	assert.Equal(t, 4, result.PotTotal)
	assert.Equal(t, map[int]int{0: 4}, result.Payouts)

	require.Len(t, result.Awards, 1)
	award := result.Awards[0]
	assert.Equal(t, MainPot, award.Kind)
	assert.Equal(t, []int{0}, award.Winners)
	assert.Equal(t, evaluator.Pair, award.Ranking)

	assert.Equal(t, 102, c.Players().Player(0).Stack)
	assert.Equal(t, 98, c.Players().Player(1).Stack)
	assert.Equal(t, 200, totalStacks(c))

	// The button alternates for the next round.
	assert.Equal(t, 1, c.Players().DealerSeat())
}

func TestFoldsEndRoundUncontested(t *testing.T) {
	cfg := Config{Variant: TexasHoldem, SmallBlind: 1, BigBlind: 2}
	c := newTestController(t, cfg, []int{100, 100, 100}, "2h3h 4h5h 6h7h")

	require.NoError(t, c.StartRound())
	require.Equal(t, 0, c.CurrentTurn())

	require.NoError(t, c.Act(0, ActionFold, 0))
	require.NoError(t, c.Act(1, ActionFold, 0))

	require.True(t, c.Finished())
	result := c.Result()
	require.NotNil(t, result)
	assert.True(t, result.Uncontested)
	assert.Equal(t, map[int]int{2: 3}, result.Payouts)

	assert.Equal(t, 100, c.Players().Player(0).Stack)
	assert.Equal(t, 99, c.Players().Player(1).Stack)
	assert.Equal(t, 101, c.Players().Player(2).Stack)
	assert.Equal(t, 300, totalStacks(c))
}

// A short all-in creates a capped pot; later betting lands in a pot the
// all-in seat cannot win, and each pot goes to the best hand among its own
// eligible seats.
func TestSidePotsSettleSeparately(t *testing.T) {
	cfg := Config{Variant: TexasHoldem, SmallBlind: 1, BigBlind: 2}
	c := newTestController(t, cfg, []int{10, 100, 100}, "AsAh KsKh QsQh 2c7d9s Jc 3d")

	require.NoError(t, c.StartRound())

	require.NoError(t, c.Act(0, ActionAllIn, 0))
	require.NoError(t, c.Act(1, ActionCall, 0))
	require.NoError(t, c.Act(2, ActionCall, 0))

	assert.Equal(t, PhaseFlop, c.Phase())
	assert.Equal(t, []int{30}, c.PotTotals())

	require.NoError(t, c.Act(1, ActionRaise, 20))
	require.NoError(t, c.Act(2, ActionCall, 0))

	// The all-in seat stays eligible only for the first pot.
	pots := c.Pots()
	require.Len(t, pots, 2)
	assert.Equal(t, SidePot, pots[0].Kind)
	assert.Equal(t, 30, pots[0].Total)
	assert.Equal(t, []int{0, 1, 2}, pots[0].Eligible)
	assert.Equal(t, MainPot, pots[1].Kind)
	assert.Equal(t, 40, pots[1].Total)
	assert.Equal(t, []int{1, 2}, pots[1].Eligible)

	require.NoError(t, c.Act(1, ActionCheck, 0))
	require.NoError(t, c.Act(2, ActionCheck, 0))
	require.NoError(t, c.Act(1, ActionCheck, 0))
	require.NoError(t, c.Act(2, ActionCheck, 0))

	require.True(t, c.Finished())
	result := c.Result()
	require.Len(t, result.Awards, 2)
	assert.Equal(t, []int{0}, result.Awards[0].Winners)
	assert.Equal(t, []int{1}, result.Awards[1].Winners)
	assert.Equal(t, map[int]int{0: 30, 1: 40}, result.Payouts)

	assert.Equal(t, 30, c.Players().Player(0).Stack)
	assert.Equal(t, 110, c.Players().Player(1).Stack)
	assert.Equal(t, 70, c.Players().Player(2).Stack)
	assert.Equal(t, 210, totalStacks(c))
}

// When tied winners split a pot that does not divide evenly, the odd chips
// go one at a time to winners starting left of the dealer.
func TestOddChipGoesLeftOfDealer(t *testing.T) {
	cfg := Config{Variant: TexasHoldem, SmallBlind: 1, BigBlind: 2}
	// Both live seats play the board's royal flush; the pot is 5.
	c := newTestController(t, cfg, []int{100, 100, 100}, "2h3h 4d5d 6c7c TsJsQs Ks As")

	require.NoError(t, c.StartRound())
	require.NoError(t, c.Act(0, ActionCall, 0))
	require.NoError(t, c.Act(1, ActionFold, 0))
	require.NoError(t, c.Act(2, ActionCheck, 0))

	for c.Phase() != PhaseConclusion && !c.Finished() {
		require.NoError(t, c.Act(2, ActionCheck, 0))
		require.NoError(t, c.Act(0, ActionCheck, 0))
	}

	require.True(t, c.Finished())
	result := c.Result()
	require.Len(t, result.Awards, 1)
	assert.Equal(t, evaluator.RoyalFlush, result.Awards[0].Ranking)
	assert.ElementsMatch(t, []int{0, 2}, result.Awards[0].Winners)

	// Seat 2 sits closer to the dealer's left and takes the odd chip.
	assert.Equal(t, map[int]int{0: 2, 2: 3}, result.Payouts)
	assert.Equal(t, 100, c.Players().Player(0).Stack)
	assert.Equal(t, 99, c.Players().Player(1).Stack)
	assert.Equal(t, 101, c.Players().Player(2).Stack)
}

// Once every live seat is all-in the remaining streets run out with no
// further action.
func TestAllInRunsOutTheBoard(t *testing.T) {
	cfg := Config{Variant: TexasHoldem, SmallBlind: 1, BigBlind: 2}
	c := newTestController(t, cfg, []int{50, 50}, "AsAh KsKh 2c7d9s Jc 3d")

	require.NoError(t, c.StartRound())
	require.NoError(t, c.Act(0, ActionAllIn, 0))
	require.NoError(t, c.Act(1, ActionCall, 0))

	// Both stacks are in; the round settles without another Act call.
	require.True(t, c.Finished())
	result := c.Result()
	assert.Equal(t, map[int]int{0: 100}, result.Payouts)
	assert.Equal(t, 100, c.Players().Player(0).Stack)
	assert.Equal(t, 0, c.Players().Player(1).Stack)

	// The busted seat sits out from here on.
	assert.Equal(t, Broke, c.Players().Player(1).Status)
}

func TestActValidation(t *testing.T) {
	cfg := Config{Variant: TexasHoldem, SmallBlind: 1, BigBlind: 2}
	c := newTestController(t, cfg, []int{100, 100, 100}, "2h3h 4d5d 6c7c 8h9hTh Jh Qh")

	require.ErrorIs(t, c.Act(0, ActionCheck, 0), ErrRoundOver)
	require.NoError(t, c.StartRound())
	require.ErrorIs(t, c.StartRound(), ErrRoundInProgress)

	// Out of turn.
	require.ErrorIs(t, c.Act(1, ActionCall, 0), ErrNotYourTurn)
	assert.Nil(t, c.LegalActions(1))

	// Illegal action on turn: rejected without mutating anything.
	before := c.Players().Player(0).Stack
	require.ErrorIs(t, c.Act(0, ActionCheck, 0), ErrCheckFacingBet)
	assert.Equal(t, before, c.Players().Player(0).Stack)
	assert.Equal(t, 0, c.CurrentTurn())

	require.ErrorIs(t, c.Act(0, ActionRaise, 3), ErrRaiseTooSmall)
	require.ErrorIs(t, c.Exchange(0, nil), ErrNoExchange)
}

func TestFiveCardDrawRound(t *testing.T) {
	cfg := Config{Variant: FiveCardDraw, Ante: 2}
	c := newTestController(t, cfg, []int{50, 50, 50, 50},
		"2h4d7c9hJs 2s3s4s5s6s 8d8cKdQh3c 2d5c7hTd9c AhAdAc")

	require.NoError(t, c.StartRound())
	assert.Equal(t, PhaseDraw, c.Phase())
	assert.Equal(t, []int{8}, c.PotTotals())
	for _, p := range c.Players().Players() {
		assert.Len(t, p.Hole, 5)
		assert.Equal(t, 48, p.Stack)
	}

	// First betting pass, left of the dealer.
	for _, seat := range []int{1, 2, 3, 0} {
		require.Equal(t, seat, c.CurrentTurn())
		require.NoError(t, c.Act(seat, ActionCheck, 0))
	}

	// The exchange window opens before post-draw betting.
	assert.Equal(t, PhasePostDraw, c.Phase())
	require.Equal(t, 1, c.CurrentTurn())
	require.ErrorIs(t, c.Act(1, ActionCheck, 0), ErrNotYourTurn)
	require.ErrorIs(t, c.Exchange(2, nil), ErrNotYourTurn)
	require.ErrorIs(t, c.Exchange(1, []int{0, 1, 2, 3}), ErrExchangeLimit)

	require.NoError(t, c.Exchange(1, nil))
	require.NoError(t, c.Exchange(2, nil))
	require.NoError(t, c.Exchange(3, []int{0, 1, 2}))
	require.NoError(t, c.Exchange(0, nil))

	// Seat 3 drew three aces but keeps only five cards.
	assert.Len(t, c.Players().Player(3).Hole, 5)

	for _, seat := range []int{1, 2, 3, 0} {
		require.Equal(t, seat, c.CurrentTurn())
		require.NoError(t, c.Act(seat, ActionCheck, 0))
	}

	require.True(t, c.Finished())
	result := c.Result()
	require.Len(t, result.Awards, 1)
	assert.Equal(t, evaluator.StraightFlush, result.Awards[0].Ranking)
	assert.Equal(t, map[int]int{1: 8}, result.Payouts)
	assert.Equal(t, 56, c.Players().Player(1).Stack)
	assert.Equal(t, 200, totalStacks(c))
}

// Forced antes a stack cannot cover split the opening pot into tiers.
func TestShortAnteOpensSidePot(t *testing.T) {
	cfg := Config{Variant: FiveCardDraw, Ante: 2}
	c := newTestController(t, cfg, []int{1, 50, 50, 50},
		"2h4d7c9hJs 2s3s4s5s6s 8d8cKdQh3c 2d5c7hTd9c")

	require.NoError(t, c.StartRound())

	pots := c.Pots()
	require.Len(t, pots, 2)
	assert.Equal(t, SidePot, pots[0].Kind)
	assert.Equal(t, 4, pots[0].Total)
	assert.Equal(t, []int{0, 1, 2, 3}, pots[0].Eligible)
	assert.Equal(t, MainPot, pots[1].Kind)
	assert.Equal(t, 3, pots[1].Total)
	assert.Equal(t, []int{1, 2, 3}, pots[1].Eligible)

	// Seat 0 is already all-in for the ante and never gets a turn.
	assert.Equal(t, AllIn, c.Players().Player(0).Status)
	assert.Equal(t, 1, c.CurrentTurn())
}
