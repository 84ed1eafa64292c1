package game

import (
	"fmt"
	"sort"

	"github.com/feltops/cardroom/internal/deck"
	"github.com/feltops/cardroom/internal/evaluator"
)

// showdown settles every pot: the best hand among each pot's eligible, still
// live players takes it, ties split it, and odd chips go one at a time to
// winners starting left of the dealer.
func (c *Controller) showdown() error {
	result := &RoundResult{
		RoundID:  c.roundID,
		Variant:  c.cfg.Variant,
		Payouts:  make(map[int]int),
		PotTotal: c.pots.Total(),
	}

	pots := c.pots.Pots()
	for i, pot := range pots {
		if pot.Total == 0 {
			if _, _, err := c.pots.DistributePot(1, i); err != nil {
				return err
			}
			continue
		}

		winners, ranking, best, err := c.bestAmong(pot.Eligible)
		if err != nil {
			return err
		}
		if len(winners) == 0 {
			return fmt.Errorf("%w: pot %d has no live eligible players", ErrInvariant, i)
		}

		share, remainder, err := c.pots.DistributePot(len(winners), i)
		if err != nil {
			return err
		}
		for _, seat := range winners {
			c.players.Payout(seat, share)
			result.Payouts[seat] += share
		}
		for _, seat := range c.orderFromDealer(winners)[:remainder] {
			c.players.Payout(seat, 1)
			result.Payouts[seat]++
		}

		result.Awards = append(result.Awards, PotAward{
			PotIndex: i,
			Kind:     pot.Kind,
			Amount:   pot.Total,
			Winners:  winners,
			Ranking:  ranking,
			BestHand: best,
		})

		c.logger.Info("pot settled",
			"round", c.roundID, "pot", i, "kind", pot.Kind.String(),
			"amount", pot.Total, "winners", winners, "hand", ranking.String())
	}

	return c.finishRound(result)
}

// bestAmong evaluates each live eligible seat's strongest hand and returns
// the seats tied for best, with the winning category and five cards.
func (c *Controller) bestAmong(eligible []int) ([]int, evaluator.Ranking, []deck.Card, error) {
	var (
		winners   []int
		bestRank  evaluator.Ranking
		bestScore uint64
		bestHand  []deck.Card
	)

	for _, seat := range eligible {
		p := c.players.Player(seat)
		if p == nil || !p.InRound() {
			continue
		}

		cards := append(append([]deck.Card(nil), p.Hole...), c.community...)
		hand, rank, err := evaluator.Best(cards)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("evaluating seat %d: %w", seat, err)
		}
		score := evaluator.Score(hand)

		switch {
		case len(winners) == 0 || rank.Beats(bestRank) || (rank == bestRank && score > bestScore):
			winners = winners[:0]
			winners = append(winners, seat)
			bestRank, bestScore = rank, score
			bestHand = hand
		case rank == bestRank && score == bestScore:
			winners = append(winners, seat)
		}
	}

	return winners, bestRank, bestHand, nil
}

// orderFromDealer sorts seats clockwise starting one past the dealer, the
// order odd chips are handed out in.
func (c *Controller) orderFromDealer(seats []int) []int {
	dealer := c.players.DealerSeat()
	n := c.players.Seats()
	ordered := append([]int(nil), seats...)
	sort.Slice(ordered, func(i, j int) bool {
		return (ordered[i]-dealer-1+n)%n < (ordered[j]-dealer-1+n)%n
	})
	return ordered
}

// settleUncontested awards everything to the last player holding cards,
// skipping the showdown. Outstanding bets are folded into the pots first:
// the winner's own bet through the normal path, surrendered bets without
// eligibility.
func (c *Controller) settleUncontested() error {
	winner := c.players.LastPlayerStanding()
	if winner == -1 {
		return fmt.Errorf("%w: uncontested settle with no player standing", ErrInvariant)
	}

	folded := make([]int, c.players.Seats())
	own := make([]int, c.players.Seats())
	for seat, p := range c.players.Players() {
		if seat == winner || p.Status == AllIn {
			own[seat] = p.Bet
		} else {
			folded[seat] = p.Bet
		}
	}
	if err := c.pots.AddToPot(own, c.inRound); err != nil {
		return err
	}
	if err := c.pots.AddFoldedBetsToPot(folded); err != nil {
		return err
	}
	c.players.ClearBets()

	if err := c.checkConservation(); err != nil {
		return err
	}

	result := &RoundResult{
		RoundID:     c.roundID,
		Variant:     c.cfg.Variant,
		Uncontested: true,
		Payouts:     make(map[int]int),
		PotTotal:    c.pots.Total(),
	}

	for i, pot := range c.pots.Pots() {
		share, _, err := c.pots.DistributePot(1, i)
		if err != nil {
			return err
		}
		c.players.Payout(winner, share)
		result.Payouts[winner] += share
		result.Awards = append(result.Awards, PotAward{
			PotIndex: i,
			Kind:     pot.Kind,
			Amount:   pot.Total,
			Winners:  []int{winner},
		})
	}

	c.logger.Info("round won uncontested",
		"round", c.roundID, "seat", winner, "amount", result.Payouts[winner])

	return c.finishRound(result)
}

// finishRound returns cards to the shoe, clears the pots, busts empty
// stacks, and rotates the button for the next round.
func (c *Controller) finishRound(result *RoundResult) error {
	if err := c.pots.ResetPots(); err != nil {
		return err
	}

	for _, p := range c.players.Players() {
		if len(p.Hole) > 0 {
			c.shoe.DiscardAll(p.Hole)
			p.Hole = nil
		}
	}
	if len(c.community) > 0 {
		c.shoe.DiscardAll(c.community)
		c.community = nil
	}

	c.players.EliminatePlayers()
	c.players.SetNextRoundBlinds()

	c.finished = true
	c.result = result
	return nil
}
