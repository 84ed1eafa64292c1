// Package ai provides betting strategies that drive seats without a human.
// A strategy only chooses among the actions the engine reports as legal; the
// engine validates whatever comes back regardless.
package ai

import (
	"math/rand"

	"github.com/feltops/cardroom/internal/game"
)

// Decision is a chosen action with the raise-to amount when raising.
type Decision struct {
	Action game.Action
	Amount int
}

// Strategy decides a seat's next move from its view of the table.
type Strategy interface {
	// Decide picks an action for the on-turn seat.
	Decide(view game.TableView) Decision
	// ChooseDiscards picks hole card indices to exchange in draw games.
	ChooseDiscards(view game.TableView) []int
}

// CallingStrategy checks when free and calls everything else.
type CallingStrategy struct{}

// NewCallingStrategy creates the calling station.
func NewCallingStrategy() *CallingStrategy {
	return &CallingStrategy{}
}

func (s *CallingStrategy) Decide(view game.TableView) Decision {
	switch {
	case view.CanPlay(game.ActionCheck):
		return Decision{Action: game.ActionCheck}
	case view.CanPlay(game.ActionCall):
		return Decision{Action: game.ActionCall}
	case view.CanPlay(game.ActionAllIn):
		return Decision{Action: game.ActionAllIn}
	default:
		return Decision{Action: game.ActionFold}
	}
}

func (s *CallingStrategy) ChooseDiscards(view game.TableView) []int {
	return keepPairsDiscards(view)
}

// RandomStrategy mixes checks, calls, raises and the occasional fold. The
// RNG is explicit so simulations are reproducible.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates a random strategy over the given RNG.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) Decide(view game.TableView) Decision {
	roll := s.rng.Intn(100)

	if view.CanPlay(game.ActionRaise) && roll < 20 {
		me := view.Me()
		maxTo := me.Bet + me.Stack
		minTo := view.CurrentBet + view.MinRaise
		if maxTo > minTo {
			return Decision{Action: game.ActionRaise, Amount: minTo + s.rng.Intn(maxTo-minTo+1)}
		}
	}
	if view.CanPlay(game.ActionCheck) {
		return Decision{Action: game.ActionCheck}
	}
	if view.CanPlay(game.ActionCall) && roll < 85 {
		return Decision{Action: game.ActionCall}
	}
	if view.CanPlay(game.ActionAllIn) && roll < 50 {
		return Decision{Action: game.ActionAllIn}
	}
	return Decision{Action: game.ActionFold}
}

func (s *RandomStrategy) ChooseDiscards(view game.TableView) []int {
	return keepPairsDiscards(view)
}

// keepPairsDiscards keeps any paired ranks and throws away up to three of
// the lowest loose cards.
func keepPairsDiscards(view game.TableView) []int {
	hole := view.Me().Hole
	counts := map[int]int{}
	for _, c := range hole {
		counts[int(c.Rank)]++
	}

	type loose struct{ idx, rank int }
	var candidates []loose
	for i, c := range hole {
		if counts[int(c.Rank)] == 1 {
			candidates = append(candidates, loose{i, int(c.Rank)})
		}
	}
	// Lowest ranks go first.
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].rank < candidates[i].rank {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	}

	var discard []int
	for _, c := range candidates {
		if len(discard) == 3 {
			break
		}
		discard = append(discard, c.idx)
	}
	return discard
}
