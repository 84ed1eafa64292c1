package game

import (
	"github.com/feltops/cardroom/internal/deck"
)

// Status tracks where a player stands within the current betting street.
type Status int

const (
	// In means the player still owes action this street.
	In Status = iota
	// Folded means the player has surrendered their cards for the round.
	Folded
	// Called means the player has acted and matched the table bet.
	Called
	// AllIn means the player's whole stack is committed; no further action.
	AllIn
	// Broke means the player busted in an earlier round and sits out.
	Broke
)

func (s Status) String() string {
	return [...]string{"in", "folded", "called", "allin", "broke"}[s]
}

// Position marks the rotating table positions.
type Position int

const (
	NoPosition Position = iota
	Dealer
	SmallBlind
	BigBlind
)

func (p Position) String() string {
	return [...]string{"none", "dealer", "small blind", "big blind"}[p]
}

// Player is one seat at the table. Stack and Bet only shrink through betting
// actions and only grow through payouts; Stack never goes negative.
type Player struct {
	Name     string
	Stack    int
	Bet      int
	Status   Status
	Position Position
	Hole     []deck.Card
}

// CanAct returns true if the player is eligible to act this street
func (p *Player) CanAct() bool {
	return p.Status == In || p.Status == Called
}

// InRound returns true if the player still holds cards this round
func (p *Player) InRound() bool {
	return p.Status != Folded && p.Status != Broke
}
