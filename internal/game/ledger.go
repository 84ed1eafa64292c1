package game

import (
	"errors"
	"fmt"
)

// Betting action errors. These reject the action without touching state; the
// caller re-prompts rather than coercing to a different action.
var (
	ErrSeatOutOfRange  = errors.New("game: seat out of range")
	ErrCannotAct       = errors.New("game: player cannot act")
	ErrCheckFacingBet  = errors.New("game: cannot check facing a bet")
	ErrRaiseTooSmall   = errors.New("game: raise below minimum")
	ErrInsufficient    = errors.New("game: insufficient chips")
	ErrNothingToCall   = errors.New("game: nothing to call")
)

// PlayerLedger owns every seat's stack, current-street bet and status, and
// applies betting actions one player at a time. It never talks to pots or the
// shoe; the controller sequences those.
type PlayerLedger struct {
	players []*Player
}

// NewPlayerLedger seats the named players with their starting stacks.
func NewPlayerLedger(names []string, stacks []int) (*PlayerLedger, error) {
	if len(names) != len(stacks) {
		return nil, fmt.Errorf("game: %d names for %d stacks", len(names), len(stacks))
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("game: need at least 2 players, got %d", len(names))
	}
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = &Player{Name: name, Stack: stacks[i], Status: In}
	}
	players[0].Position = Dealer
	if len(players) == 2 {
		players[1].Position = BigBlind
	} else {
		players[1].Position = SmallBlind
		players[2].Position = BigBlind
	}
	return &PlayerLedger{players: players}, nil
}

// Players returns the seats in order. Callers must not mutate through it
// outside of tests.
func (l *PlayerLedger) Players() []*Player {
	return l.players
}

// Player returns the player at seat, or nil if out of range
func (l *PlayerLedger) Player(seat int) *Player {
	if seat < 0 || seat >= len(l.players) {
		return nil
	}
	return l.players[seat]
}

// Seats returns the number of seats
func (l *PlayerLedger) Seats() int {
	return len(l.players)
}

func (l *PlayerLedger) actor(seat int) (*Player, error) {
	p := l.Player(seat)
	if p == nil {
		return nil, ErrSeatOutOfRange
	}
	if !p.CanAct() {
		return nil, fmt.Errorf("%w: seat %d is %s", ErrCannotAct, seat, p.Status)
	}
	return p, nil
}

// Check passes the action without betting. Only legal when the player has
// already matched the table bet.
func (l *PlayerLedger) Check(seat, currentBet int) error {
	p, err := l.actor(seat)
	if err != nil {
		return err
	}
	if p.Bet != currentBet {
		return fmt.Errorf("%w: table bet %d, seat %d has %d in", ErrCheckFacingBet, currentBet, seat, p.Bet)
	}
	p.Status = Called
	return nil
}

// Call matches the table bet. A player without enough chips to match is put
// all-in for their remaining stack.
func (l *PlayerLedger) Call(seat, currentBet int) error {
	p, err := l.actor(seat)
	if err != nil {
		return err
	}
	owed := currentBet - p.Bet
	if owed <= 0 {
		return fmt.Errorf("%w: seat %d already has %d in", ErrNothingToCall, seat, p.Bet)
	}
	if owed >= p.Stack {
		return l.AllIn(seat)
	}
	p.Stack -= owed
	p.Bet += owed
	p.Status = Called
	return nil
}

// Raise lifts the player's street bet to total. Every other player who had
// already called is put back In: a raise reopens the action and they must
// match the new bet.
func (l *PlayerLedger) Raise(seat, currentBet, minRaise, total int) error {
	p, err := l.actor(seat)
	if err != nil {
		return err
	}
	if total <= currentBet {
		return fmt.Errorf("%w: raise to %d does not exceed table bet %d", ErrRaiseTooSmall, total, currentBet)
	}
	added := total - p.Bet
	if added > p.Stack {
		return fmt.Errorf("%w: raise to %d needs %d, seat %d has %d", ErrInsufficient, total, added, seat, p.Stack)
	}
	if total < currentBet+minRaise && added < p.Stack {
		return fmt.Errorf("%w: minimum raise to %d", ErrRaiseTooSmall, currentBet+minRaise)
	}
	p.Stack -= added
	p.Bet = total
	if p.Stack == 0 {
		p.Status = AllIn
	} else {
		p.Status = Called
	}
	l.reopenAction(seat)
	return nil
}

// AllIn commits the player's entire remaining stack
func (l *PlayerLedger) AllIn(seat int) error {
	p, err := l.actor(seat)
	if err != nil {
		return err
	}
	if p.Stack == 0 {
		return fmt.Errorf("%w: seat %d has no chips", ErrInsufficient, seat)
	}
	p.Bet += p.Stack
	p.Stack = 0
	p.Status = AllIn
	return nil
}

// Fold surrenders the player's cards for the round
func (l *PlayerLedger) Fold(seat int) error {
	p, err := l.actor(seat)
	if err != nil {
		return err
	}
	p.Status = Folded
	return nil
}

// reopenAction puts every other matched player back In after a raise
func (l *PlayerLedger) reopenAction(raiser int) {
	for i, p := range l.players {
		if i != raiser && p.Status == Called {
			p.Status = In
		}
	}
}

// IsActivePlayer returns true if the seat is eligible to act this street
func (l *PlayerLedger) IsActivePlayer(seat int) bool {
	p := l.Player(seat)
	return p != nil && p.CanAct()
}

// AdvanceRound returns true when the street is over: nobody is left with
// unmatched action.
func (l *PlayerLedger) AdvanceRound() bool {
	for _, p := range l.players {
		if p.Status == In {
			return false
		}
	}
	return true
}

// AdvanceToRoundConclusion returns true when betting has become moot: at
// least one player is all-in and at most one other player could still act.
// Remaining streets are dealt face-up without further betting.
func (l *PlayerLedger) AdvanceToRoundConclusion() bool {
	allIn := 0
	canAct := 0
	for _, p := range l.players {
		switch {
		case p.Status == AllIn:
			allIn++
		case p.CanAct():
			canAct++
		}
	}
	return allIn >= 1 && canAct <= 1
}

// OnePlayerLeft returns true when exactly one player still holds cards; the
// round short-circuits straight to payout without a showdown.
func (l *PlayerLedger) OnePlayerLeft() bool {
	count := 0
	for _, p := range l.players {
		if p.InRound() {
			count++
		}
	}
	return count == 1
}

// LastPlayerStanding returns the seat OnePlayerLeft refers to, or -1
func (l *PlayerLedger) LastPlayerStanding() int {
	seat := -1
	for i, p := range l.players {
		if p.InRound() {
			if seat != -1 {
				return -1
			}
			seat = i
		}
	}
	return seat
}

// Payout credits winnings to a seat's stack, the only way chips enter a stack
func (l *PlayerLedger) Payout(seat, amount int) {
	if p := l.Player(seat); p != nil && amount > 0 {
		p.Stack += amount
	}
}

// EliminatePlayers marks busted players Broke at round end. If the dealer
// busted, the button passes to the next live seat.
func (l *PlayerLedger) EliminatePlayers() {
	for seat, p := range l.players {
		if p.Status == Broke {
			continue
		}
		if p.Stack == 0 && p.Bet == 0 {
			wasDealer := p.Position == Dealer
			p.Status = Broke
			p.Position = NoPosition
			if wasDealer {
				l.passButton(seat)
			}
		}
	}
}

// passButton hands the button to the next live seat clockwise of from
func (l *PlayerLedger) passButton(from int) {
	n := len(l.players)
	for i := 1; i <= n; i++ {
		p := l.players[(from+i)%n]
		if p.Status != Broke {
			p.Position = Dealer
			return
		}
	}
}

// SetNextRoundBlinds rotates dealer, small blind and big blind one live seat
// clockwise. Heads-up the two positions simply alternate: the dealer posts
// the small blind.
func (l *PlayerLedger) SetNextRoundBlinds() {
	live := l.liveSeats()
	if len(live) < 2 {
		return
	}

	dealer := l.DealerSeat()
	for _, p := range l.players {
		if p.Status != Broke {
			p.Position = NoPosition
		}
	}

	next := func(seat int) int {
		for i := 1; i <= len(l.players); i++ {
			cand := (seat + i) % len(l.players)
			if l.players[cand].Status != Broke {
				return cand
			}
		}
		return seat
	}

	newDealer := next(dealer)
	l.players[newDealer].Position = Dealer
	if len(live) == 2 {
		l.players[next(newDealer)].Position = BigBlind
		return
	}
	sb := next(newDealer)
	l.players[sb].Position = SmallBlind
	l.players[next(sb)].Position = BigBlind
}

func (l *PlayerLedger) liveSeats() []int {
	seats := make([]int, 0, len(l.players))
	for i, p := range l.players {
		if p.Status != Broke {
			seats = append(seats, i)
		}
	}
	return seats
}

// DealerSeat returns the seat holding the button, or -1
func (l *PlayerLedger) DealerSeat() int {
	for i, p := range l.players {
		if p.Position == Dealer {
			return i
		}
	}
	return -1
}

// PositionSeat returns the seat holding pos, or -1
func (l *PlayerLedger) PositionSeat(pos Position) int {
	for i, p := range l.players {
		if p.Position == pos {
			return i
		}
	}
	return -1
}

// ResetForRound clears bets, hole cards and statuses for a new round. Broke
// players stay broke; everyone else starts In.
func (l *PlayerLedger) ResetForRound() {
	for _, p := range l.players {
		p.Bet = 0
		p.Hole = nil
		if p.Status != Broke {
			p.Status = In
		}
	}
}

// Bets returns each seat's current-street bet
func (l *PlayerLedger) Bets() []int {
	bets := make([]int, len(l.players))
	for i, p := range l.players {
		bets[i] = p.Bet
	}
	return bets
}

// ClearBets zeroes per-street bets after they have been folded into the pots
func (l *PlayerLedger) ClearBets() {
	for _, p := range l.players {
		p.Bet = 0
	}
}

// TotalChips sums stacks and outstanding bets, used for conservation checks
func (l *PlayerLedger) TotalChips() int {
	total := 0
	for _, p := range l.players {
		total += p.Stack + p.Bet
	}
	return total
}
