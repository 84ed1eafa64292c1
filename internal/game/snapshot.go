package game

import (
	"github.com/feltops/cardroom/internal/deck"
)

// SeatView is one seat's publicly visible state. Hole cards are only
// populated for the viewer's own seat.
type SeatView struct {
	Seat     int
	Name     string
	Stack    int
	Bet      int
	Status   Status
	Position Position
	Hole     []deck.Card
}

// TableView is a read-only snapshot of the table for one viewer: everything
// the presentation layer or a strategy may see. The core never depends on
// anything that consumes it.
type TableView struct {
	Phase      Phase
	Variant    Variant
	CurrentBet int
	MinRaise   int
	Turn       int
	Exchanging bool
	Community  []deck.Card
	PotTotals  []int
	Seats      []SeatView
	Viewer     int
	Legal      []Action
}

// Snapshot builds a view of the table as seen from the viewer's seat.
func (c *Controller) Snapshot(viewer int) TableView {
	seats := make([]SeatView, c.players.Seats())
	for i, p := range c.players.Players() {
		seats[i] = SeatView{
			Seat:     i,
			Name:     p.Name,
			Stack:    p.Stack,
			Bet:      p.Bet,
			Status:   p.Status,
			Position: p.Position,
		}
		if i == viewer {
			seats[i].Hole = append([]deck.Card(nil), p.Hole...)
		}
	}

	return TableView{
		Phase:      c.Phase(),
		Variant:    c.cfg.Variant,
		CurrentBet: c.betting.CurrentBet,
		MinRaise:   c.betting.MinRaise,
		Turn:       c.betting.Turn,
		Exchanging: c.exchanging,
		Community:  c.Community(),
		PotTotals:  c.pots.Totals(),
		Seats:      seats,
		Viewer:     viewer,
		Legal:      c.LegalActions(viewer),
	}
}

// Me returns the viewer's own seat view
func (v TableView) Me() SeatView {
	if v.Viewer >= 0 && v.Viewer < len(v.Seats) {
		return v.Seats[v.Viewer]
	}
	return SeatView{Seat: -1}
}

// ToCall returns what the viewer owes to match the table bet
func (v TableView) ToCall() int {
	me := v.Me()
	if owed := v.CurrentBet - me.Bet; owed > 0 {
		return owed
	}
	return 0
}

// CanPlay reports whether action is in the legal set
func (v TableView) CanPlay(action Action) bool {
	for _, a := range v.Legal {
		if a == action {
			return true
		}
	}
	return false
}
