package statistics

import (
	"strings"
	"testing"

	"github.com/feltops/cardroom/internal/game"
)

func TestAccumulatorRecordsRounds(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(1)

	acc.RecordRound(&game.RoundResult{Payouts: map[int]int{1: 40}, PotTotal: 40})
	acc.RecordRound(&game.RoundResult{Payouts: map[int]int{0: 25}, PotTotal: 25})
	acc.RecordRound(&game.RoundResult{Payouts: map[int]int{1: 10}, PotTotal: 10, Uncontested: true})

	if acc.RoundsPlayed != 3 {
		t.Errorf("RoundsPlayed = %d, want 3", acc.RoundsPlayed)
	}
	if acc.Wins != 2 || acc.Losses != 1 {
		t.Errorf("Wins/Losses = %d/%d, want 2/1", acc.Wins, acc.Losses)
	}
	if acc.ChipsWon != 50 {
		t.Errorf("ChipsWon = %d, want 50", acc.ChipsWon)
	}
	if acc.LargestPot != 40 {
		t.Errorf("LargestPot = %d, want 40", acc.LargestPot)
	}
	if acc.Uncontested != 1 {
		t.Errorf("Uncontested = %d, want 1", acc.Uncontested)
	}
}

func TestAccumulatorWinRate(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(0)
	if acc.WinRate() != 0 {
		t.Errorf("WinRate with no rounds = %f", acc.WinRate())
	}

	acc.RecordRound(&game.RoundResult{Payouts: map[int]int{0: 5}})
	acc.RecordRound(&game.RoundResult{Payouts: map[int]int{}})
	if acc.WinRate() != 0.5 {
		t.Errorf("WinRate = %f, want 0.5", acc.WinRate())
	}
}

func TestAccumulatorIgnoresNil(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(0)
	acc.RecordRound(nil)
	if acc.RoundsPlayed != 0 {
		t.Errorf("nil result counted as a round")
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	acc := NewAccumulator(2)
	acc.RecordRound(&game.RoundResult{Payouts: map[int]int{2: 12}, PotTotal: 12})

	s := acc.Summary()
	for _, want := range []string{"rounds=1", "wins=1", "chips_won=12", "largest_pot=12"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() = %q, missing %q", s, want)
		}
	}
}
