// Package statistics accumulates session results for a tracked seat. The
// accumulator is passed into the round runner explicitly and updated once
// per settled round; nothing here is ambient or global.
package statistics

import (
	"fmt"

	"github.com/feltops/cardroom/internal/game"
)

// Accumulator tracks one seat's results across a session.
type Accumulator struct {
	Seat int

	RoundsPlayed int
	Wins         int
	Losses       int
	ChipsWon     int
	LargestPot   int
	Uncontested  int
}

// NewAccumulator tracks results for the given seat.
func NewAccumulator(seat int) *Accumulator {
	return &Accumulator{Seat: seat}
}

// RecordRound folds one settled round into the tallies.
func (a *Accumulator) RecordRound(result *game.RoundResult) {
	if result == nil {
		return
	}
	a.RoundsPlayed++

	won := result.Payouts[a.Seat]
	if won > 0 {
		a.Wins++
		a.ChipsWon += won
		if result.Uncontested {
			a.Uncontested++
		}
	} else {
		a.Losses++
	}
	if result.PotTotal > a.LargestPot {
		a.LargestPot = result.PotTotal
	}
}

// WinRate returns the fraction of rounds won
func (a *Accumulator) WinRate() float64 {
	if a.RoundsPlayed == 0 {
		return 0
	}
	return float64(a.Wins) / float64(a.RoundsPlayed)
}

// Summary returns a one-line session report
func (a *Accumulator) Summary() string {
	return fmt.Sprintf("rounds=%d wins=%d losses=%d winrate=%.1f%% chips_won=%d largest_pot=%d",
		a.RoundsPlayed, a.Wins, a.Losses, a.WinRate()*100, a.ChipsWon, a.LargestPot)
}
