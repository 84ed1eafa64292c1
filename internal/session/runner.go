// Package session runs rounds to completion, bridging strategies and the
// settlement engine. Pacing lives here, outside the core: the controller's
// transitions are pure and callable on demand, the runner just waits between
// them.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/feltops/cardroom/internal/ai"
	"github.com/feltops/cardroom/internal/game"
	"github.com/feltops/cardroom/internal/statistics"
)

// ErrNoStrategy is returned when the on-turn seat has no decision maker.
var ErrNoStrategy = errors.New("session: no strategy for seat")

// Runner plays rounds with a strategy per seat.
type Runner struct {
	controller *game.Controller
	strategies map[int]ai.Strategy
	stats      []*statistics.Accumulator
	clock      quartz.Clock
	pacing     time.Duration
	logger     *log.Logger
}

// NewRunner wires a controller to its seat strategies. The clock is only
// used for pacing delays; pass quartz.NewMock in tests.
func NewRunner(controller *game.Controller, strategies map[int]ai.Strategy, clock quartz.Clock, pacing time.Duration, logger *log.Logger) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		controller: controller,
		strategies: strategies,
		clock:      clock,
		pacing:     pacing,
		logger:     logger,
	}
}

// Track registers a statistics accumulator to receive each round's result.
func (r *Runner) Track(acc *statistics.Accumulator) {
	r.stats = append(r.stats, acc)
}

// PlayRound drives one round from deal to settlement.
func (r *Runner) PlayRound() (*game.RoundResult, error) {
	if err := r.controller.StartRound(); err != nil {
		return nil, fmt.Errorf("starting round: %w", err)
	}

	for !r.controller.Finished() {
		turn := r.controller.CurrentTurn()
		if turn == -1 {
			return nil, fmt.Errorf("%w: round stalled with no turn", game.ErrInvariant)
		}

		strategy, ok := r.strategies[turn]
		if !ok {
			return nil, fmt.Errorf("%w %d", ErrNoStrategy, turn)
		}

		r.pause()

		view := r.controller.Snapshot(turn)
		if view.Exchanging {
			if err := r.controller.Exchange(turn, strategy.ChooseDiscards(view)); err != nil {
				// A bad discard choice stands pat rather than stalling.
				r.logger.Warn("discard rejected, standing pat", "seat", turn, "err", err)
				if err := r.controller.Exchange(turn, nil); err != nil {
					return nil, err
				}
			}
			continue
		}

		decision := strategy.Decide(view)
		if err := r.controller.Act(turn, decision.Action, decision.Amount); err != nil {
			if errors.Is(err, game.ErrInvariant) {
				return nil, err
			}
			// Illegal action: the engine rejected it without mutating
			// anything, so fall back to the safest legal move.
			r.logger.Warn("action rejected", "seat", turn, "action", decision.Action.String(), "err", err)
			if err := r.fallback(turn, view); err != nil {
				return nil, err
			}
		}
	}

	result := r.controller.Result()
	for _, acc := range r.stats {
		acc.RecordRound(result)
	}
	return result, nil
}

// fallback plays check if free, otherwise folds
func (r *Runner) fallback(turn int, view game.TableView) error {
	if view.CanPlay(game.ActionCheck) {
		return r.controller.Act(turn, game.ActionCheck, 0)
	}
	return r.controller.Act(turn, game.ActionFold, 0)
}

func (r *Runner) pause() {
	if r.pacing <= 0 {
		return
	}
	timer := r.clock.NewTimer(r.pacing)
	<-timer.C
}

// PlayRounds plays up to n rounds, stopping early when fewer than two seats
// can still post a bet.
func (r *Runner) PlayRounds(n int) ([]*game.RoundResult, error) {
	results := make([]*game.RoundResult, 0, n)
	for i := 0; i < n; i++ {
		live := 0
		for _, p := range r.controller.Players().Players() {
			if p.Status != game.Broke {
				live++
			}
		}
		if live < 2 {
			r.logger.Info("session over", "rounds", len(results), "live", live)
			break
		}

		result, err := r.PlayRound()
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
