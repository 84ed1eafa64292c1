package game

// Action represents a player action
type Action int

const (
	ActionFold Action = iota
	ActionCheck
	ActionCall
	ActionRaise
	ActionAllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// BettingState is the per-street betting position: the amount every live
// player must match, whose turn it is, and whether the street's opening
// action has been taken (distinguishing "nobody has acted" from "everyone
// has acted and matched").
type BettingState struct {
	CurrentBet int
	MinRaise   int
	Turn       int
	Opened     bool

	bigBlind int
}

// NewBettingState creates betting state for a round; MinRaise resets to the
// big blind at the top of each street.
func NewBettingState(bigBlind int) *BettingState {
	if bigBlind <= 0 {
		// Ante-only games still need a raise floor.
		bigBlind = 1
	}
	return &BettingState{MinRaise: bigBlind, Turn: -1, bigBlind: bigBlind}
}

// ResetForStreet clears the table bet for a new street
func (b *BettingState) ResetForStreet() {
	b.CurrentBet = 0
	b.MinRaise = b.bigBlind
	b.Opened = false
}

// LegalActions derives the actions open to a player facing the current bet.
// The engine still validates whatever comes back; this exists so the
// presentation layer can offer only sensible choices.
func (b *BettingState) LegalActions(p *Player) []Action {
	if p == nil || !p.CanAct() {
		return nil
	}

	actions := []Action{ActionFold}
	owed := b.CurrentBet - p.Bet

	if owed <= 0 {
		actions = append(actions, ActionCheck)
		if p.Stack > b.MinRaise {
			actions = append(actions, ActionRaise, ActionAllIn)
		} else if p.Stack > 0 {
			actions = append(actions, ActionAllIn)
		}
		return actions
	}

	if owed >= p.Stack {
		return append(actions, ActionAllIn)
	}
	actions = append(actions, ActionCall)
	if p.Stack > owed+b.MinRaise {
		actions = append(actions, ActionRaise, ActionAllIn)
	} else {
		actions = append(actions, ActionAllIn)
	}
	return actions
}
