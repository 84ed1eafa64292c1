package game

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvariant wraps conditions that can only arise from a sequencing bug,
// never from player input. Callers treat these as fatal.
var ErrInvariant = errors.New("game: invariant violation")

// PotKind distinguishes the least-constrained pot from capped side pots.
type PotKind int

const (
	MainPot PotKind = iota
	SidePot
)

func (k PotKind) String() string {
	return [...]string{"main", "side"}[k]
}

// Pot holds chips and the ordered set of seats still able to win them. A
// folded player's chips stay in every pot they reached, but the player does
// not.
type Pot struct {
	Kind        PotKind
	Total       int
	Eligible    []int
	distributed bool
}

// EligibleContains reports whether seat can win this pot
func (p *Pot) EligibleContains(seat int) bool {
	for _, s := range p.Eligible {
		if s == seat {
			return true
		}
	}
	return false
}

type potPhase int

const (
	potUninitialized potPhase = iota
	potActive
	potSettled
)

// PotLedger owns the round's pots. Pots are stored lowest tier first; the
// last pot is always the least-constrained one where current betting lands,
// and is labelled the main pot. Capped all-in tiers before it are side pots.
type PotLedger struct {
	pots        []Pot
	phase       potPhase
	contributed int
	distributed int
}

// NewPotLedger creates an uninitialized ledger; InitializePot begins a round.
func NewPotLedger() *PotLedger {
	return &PotLedger{}
}

// InitializePot creates the round's pots from the ante contributions, one
// entry per seat (zero for seats that posted nothing). Equal contributions
// produce a single pot with every contributor eligible. Unequal
// contributions (forced all-ins below the ante) are peeled into ascending
// tiers: each tier's pot takes (tier - previous tier) from every player who
// reached it, and only they are eligible for it.
func (pl *PotLedger) InitializePot(contributions []int, inRound func(seat int) bool) error {
	if pl.phase == potActive {
		return fmt.Errorf("%w: pots already initialized", ErrInvariant)
	}
	pl.pots = []Pot{{Kind: MainPot}}
	pl.contributed = 0
	pl.distributed = 0
	pl.phase = potActive
	pl.addTiered(contributions, inRound)
	return nil
}

// AddToPot folds a completed street's bets into the currently active pot. If
// the street contained all-ins below the final table bet, new capped tiers
// are peeled off into further pots. If a player who went all-in on an
// earlier street is still eligible for the active pot, this street's chips
// open a fresh pot instead, so that player is never exposed to bets they
// could not match.
func (pl *PotLedger) AddToPot(contributions []int, inRound func(seat int) bool) error {
	if pl.phase != potActive {
		return fmt.Errorf("%w: pots not active", ErrInvariant)
	}

	total := 0
	for _, c := range contributions {
		total += c
	}
	if total == 0 {
		return nil
	}

	active := &pl.pots[len(pl.pots)-1]
	for _, seat := range active.Eligible {
		if seat < len(contributions) && inRound(seat) && contributions[seat] == 0 {
			pl.pots = append(pl.pots, Pot{})
			break
		}
	}

	pl.addTiered(contributions, inRound)
	return nil
}

// addTiered distributes one betting period's contributions across tiers.
// Chips from folded players count toward pot totals at each tier they
// reached; eligibility only ever includes players still in the round.
func (pl *PotLedger) addTiered(contributions []int, inRound func(seat int) bool) {
	total := 0
	for _, c := range contributions {
		total += c
	}
	if total == 0 {
		return
	}
	pl.contributed += total

	tiers := cappedTiers(contributions, inRound)
	active := len(pl.pots) - 1

	prev := 0
	for _, tier := range tiers {
		slice := 0
		for _, c := range contributions {
			if got := min(c, tier) - prev; got > 0 {
				slice += got
			}
		}
		eligible := contributorsAtTier(contributions, tier, inRound)
		if prev == 0 {
			// The lowest tier merges into the pot this street's betting was
			// feeding.
			pl.pots[active].Total += slice
			pl.pots[active].Eligible = eligible
		} else {
			pl.pots = append(pl.pots, Pot{Total: slice, Eligible: eligible})
		}
		prev = tier
	}

	// Whatever sits above the highest capped tier forms the new
	// least-constrained pot.
	excess := 0
	for _, c := range contributions {
		if c > prev {
			excess += c - prev
		}
	}
	if excess > 0 {
		eligible := contributorsAtTier(contributions, prev+1, inRound)
		switch {
		case len(tiers) == 0:
			pl.pots[active].Total += excess
			if len(eligible) > 0 {
				pl.pots[active].Eligible = eligible
			}
		case len(eligible) > 0:
			pl.pots = append(pl.pots, Pot{Total: excess, Eligible: eligible})
		default:
			// Only folded chips above the top tier; they stay with the
			// highest pot without adding eligibility.
			pl.pots[len(pl.pots)-1].Total += excess
		}
	}

	pl.relabel()
}

// relabel keeps the last pot marked main and everything under it side
func (pl *PotLedger) relabel() {
	for i := range pl.pots {
		if i == len(pl.pots)-1 {
			pl.pots[i].Kind = MainPot
		} else {
			pl.pots[i].Kind = SidePot
		}
	}
}

// cappedTiers returns the distinct contribution levels of live players who
// could not match the street's largest contribution, ascending. Each one
// caps a pot.
func cappedTiers(contributions []int, inRound func(seat int) bool) []int {
	max := 0
	for _, c := range contributions {
		if c > max {
			max = c
		}
	}
	seen := map[int]bool{}
	var tiers []int
	for seat, c := range contributions {
		if c > 0 && c < max && inRound(seat) && !seen[c] {
			seen[c] = true
			tiers = append(tiers, c)
		}
	}
	sort.Ints(tiers)
	return tiers
}

func contributorsAtTier(contributions []int, tier int, inRound func(seat int) bool) []int {
	var eligible []int
	for seat, c := range contributions {
		if c >= tier && inRound(seat) {
			eligible = append(eligible, seat)
		}
	}
	return eligible
}

// AddFoldedBetsToPot adds chips surrendered by folding players to the active
// pot's total without granting anyone eligibility.
func (pl *PotLedger) AddFoldedBetsToPot(foldedBets []int) error {
	if pl.phase != potActive {
		return fmt.Errorf("%w: pots not active", ErrInvariant)
	}
	total := 0
	for _, b := range foldedBets {
		total += b
	}
	if total > 0 {
		pl.pots[len(pl.pots)-1].Total += total
		pl.contributed += total
	}
	return nil
}

// RemoveFoldedPlayer strikes a seat from every pot's eligibility set. Totals
// are untouched: folded chips stay where they were.
func (pl *PotLedger) RemoveFoldedPlayer(seat int) {
	for i := range pl.pots {
		eligible := pl.pots[i].Eligible[:0]
		for _, s := range pl.pots[i].Eligible {
			if s != seat {
				eligible = append(eligible, s)
			}
		}
		pl.pots[i].Eligible = eligible
	}
}

// DistributePot splits a pot between winnerCount winners. It returns the
// per-winner share and the odd chips that do not divide evenly; the caller
// assigns those one at a time starting left of the dealer — chips are never
// silently dropped.
func (pl *PotLedger) DistributePot(winnerCount, potIndex int) (share, remainder int, err error) {
	if potIndex < 0 || potIndex >= len(pl.pots) {
		return 0, 0, fmt.Errorf("%w: pot index %d of %d", ErrInvariant, potIndex, len(pl.pots))
	}
	if winnerCount < 1 {
		return 0, 0, fmt.Errorf("%w: %d winners for pot %d", ErrInvariant, winnerCount, potIndex)
	}
	pot := &pl.pots[potIndex]
	if pot.distributed {
		return 0, 0, fmt.Errorf("%w: pot %d already distributed", ErrInvariant, potIndex)
	}
	pot.distributed = true
	pl.distributed += pot.Total
	return pot.Total / winnerCount, pot.Total % winnerCount, nil
}

// ResetPots clears the round's pots. Every pot must have been distributed
// first; chips never disappear from an undistributed pot.
func (pl *PotLedger) ResetPots() error {
	for i := range pl.pots {
		if pl.pots[i].Total > 0 && !pl.pots[i].distributed {
			return fmt.Errorf("%w: pot %d reset before distribution", ErrInvariant, i)
		}
	}
	if pl.distributed != pl.contributed {
		return fmt.Errorf("%w: contributed %d but distributed %d", ErrInvariant, pl.contributed, pl.distributed)
	}
	pl.pots = nil
	pl.phase = potSettled
	return nil
}

// Pots returns a copy of the current pots
func (pl *PotLedger) Pots() []Pot {
	pots := make([]Pot, len(pl.pots))
	copy(pots, pl.pots)
	for i := range pots {
		pots[i].Eligible = append([]int(nil), pl.pots[i].Eligible...)
	}
	return pots
}

// Totals returns each pot's chip total for display
func (pl *PotLedger) Totals() []int {
	totals := make([]int, len(pl.pots))
	for i, p := range pl.pots {
		totals[i] = p.Total
	}
	return totals
}

// Total returns the chips across all pots
func (pl *PotLedger) Total() int {
	total := 0
	for _, p := range pl.pots {
		total += p.Total
	}
	return total
}

// Contributed returns all chips ever added this round, for conservation checks
func (pl *PotLedger) Contributed() int {
	return pl.contributed
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
