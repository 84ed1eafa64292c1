package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/feltops/cardroom/internal/deck"
	"github.com/feltops/cardroom/internal/evaluator"
)

// Variant selects the phase sequence for a round.
type Variant int

const (
	TexasHoldem Variant = iota
	FiveCardDraw
)

func (v Variant) String() string {
	return [...]string{"holdem", "five-card draw"}[v]
}

// Phase is one stage of a round.
type Phase int

const (
	PhasePreFlop Phase = iota
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseDraw
	PhasePostDraw
	PhaseConclusion
)

func (p Phase) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "draw", "postdraw", "conclusion"}[p]
}

var phaseOrder = map[Variant][]Phase{
	TexasHoldem:  {PhasePreFlop, PhaseFlop, PhaseTurn, PhaseRiver, PhaseConclusion},
	FiveCardDraw: {PhaseDraw, PhasePostDraw, PhaseConclusion},
}

// communityDeals is the number of board cards revealed entering each phase
var communityDeals = map[Phase]int{
	PhaseFlop:  3,
	PhaseTurn:  1,
	PhaseRiver: 1,
}

const maxExchange = 3

// Turn sequencing errors.
var (
	ErrNotYourTurn     = errors.New("game: not your turn")
	ErrRoundOver       = errors.New("game: round is over")
	ErrRoundInProgress = errors.New("game: round already in progress")
	ErrNoExchange      = errors.New("game: card exchange not open")
	ErrExchangeLimit   = fmt.Errorf("game: at most %d cards may be exchanged", maxExchange)
)

// Config holds the table stakes for a controller.
type Config struct {
	Variant    Variant
	Ante       int
	SmallBlind int
	BigBlind   int
}

// PotAward records one pot's settlement for the round result.
type PotAward struct {
	PotIndex int
	Kind     PotKind
	Amount   int
	Winners  []int
	Ranking  evaluator.Ranking
	BestHand []deck.Card
}

// RoundResult summarizes a settled round.
type RoundResult struct {
	RoundID     uuid.UUID
	Variant     Variant
	Uncontested bool
	Awards      []PotAward
	Payouts     map[int]int
	PotTotal    int
}

// Controller drives one betting round at a time: it owns turn order, phase
// transitions, and the hand-off of completed bets into the pot ledger. All
// state transitions are synchronous; pacing belongs to the caller.
type Controller struct {
	cfg     Config
	players *PlayerLedger
	pots    *PotLedger
	shoe    *deck.Shoe
	betting *BettingState
	logger  *log.Logger

	phases    []Phase
	phaseIdx  int
	community []deck.Card
	roundID   uuid.UUID

	exchanging bool
	exchanged  []bool

	started       bool
	finished      bool
	startingTotal int
	result        *RoundResult
}

// NewController creates a controller over the given seats and shoe.
func NewController(cfg Config, players *PlayerLedger, shoe *deck.Shoe, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		cfg:     cfg,
		players: players,
		pots:    NewPotLedger(),
		shoe:    shoe,
		betting: NewBettingState(cfg.BigBlind),
		logger:  logger,
		phases:  phaseOrder[cfg.Variant],
	}
}

// Players exposes the player ledger for the presentation layer
func (c *Controller) Players() *PlayerLedger { return c.players }

// Pots exposes current pot totals for display
func (c *Controller) Pots() []Pot { return c.pots.Pots() }

// PotTotals returns each pot's chip count
func (c *Controller) PotTotals() []int { return c.pots.Totals() }

// Community returns the board cards revealed so far
func (c *Controller) Community() []deck.Card {
	return append([]deck.Card(nil), c.community...)
}

// Phase returns the current phase
func (c *Controller) Phase() Phase { return c.phases[c.phaseIdx] }

// RoundID identifies the round in progress
func (c *Controller) RoundID() uuid.UUID { return c.roundID }

// CurrentTurn returns the seat due to act, or -1 when no action is pending
func (c *Controller) CurrentTurn() int {
	if c.finished || !c.started {
		return -1
	}
	return c.betting.Turn
}

// Finished reports whether the round has settled
func (c *Controller) Finished() bool { return c.finished }

// Result returns the settled round's result, or nil while play continues
func (c *Controller) Result() *RoundResult { return c.result }

// LegalActions returns the actions open to the seat currently on turn.
// Any other seat gets nothing.
func (c *Controller) LegalActions(seat int) []Action {
	if c.finished || !c.started || c.exchanging || seat != c.betting.Turn {
		return nil
	}
	return c.betting.LegalActions(c.players.Player(seat))
}

// StartRound resets seats, posts antes and blinds, deals, and opens the
// first betting phase.
func (c *Controller) StartRound() error {
	if c.started && !c.finished {
		return ErrRoundInProgress
	}

	c.players.ResetForRound()
	c.pots = NewPotLedger()
	c.betting = NewBettingState(c.cfg.BigBlind)
	c.phaseIdx = 0
	c.community = nil
	c.roundID = uuid.New()
	c.exchanging = false
	c.exchanged = nil
	c.started = true
	c.finished = false
	c.startingTotal = c.players.TotalChips()
	c.result = nil

	if err := c.postAntes(); err != nil {
		return err
	}
	if c.cfg.Variant == TexasHoldem {
		c.postBlinds()
	}
	if err := c.deal(); err != nil {
		return err
	}

	c.logger.Info("round started",
		"round", c.roundID, "variant", c.cfg.Variant.String(), "phase", c.Phase().String())

	c.betting.Turn = c.firstToAct()
	if c.betting.Turn == -1 || c.players.AdvanceRound() {
		// Forced bets already closed the action (everyone all-in or broke).
		return c.endStreet()
	}
	return nil
}

// postAntes collects the ante from every live seat straight into the pots.
// A seat that cannot cover the ante is forced all-in for what it has.
func (c *Controller) postAntes() error {
	contributions := make([]int, c.players.Seats())
	if c.cfg.Ante > 0 {
		for seat, p := range c.players.Players() {
			if p.Status == Broke {
				continue
			}
			posted := min(c.cfg.Ante, p.Stack)
			p.Stack -= posted
			contributions[seat] = posted
			if p.Stack == 0 {
				p.Status = AllIn
			}
		}
	}
	return c.pots.InitializePot(contributions, c.inRound)
}

// postBlinds posts the small and big blind into the street bets; pre-flop
// opens at the big blind.
func (c *Controller) postBlinds() {
	post := func(seat, amount int) {
		p := c.players.Player(seat)
		if p == nil || p.Status == Broke {
			return
		}
		posted := min(amount, p.Stack)
		p.Stack -= posted
		p.Bet += posted
		if p.Stack == 0 {
			p.Status = AllIn
		}
	}
	if sb := c.players.PositionSeat(SmallBlind); sb != -1 {
		post(sb, c.cfg.SmallBlind)
	} else if dealer := c.players.DealerSeat(); dealer != -1 && c.liveCount() == 2 {
		// Heads-up the dealer posts the small blind.
		post(dealer, c.cfg.SmallBlind)
	}
	if bb := c.players.PositionSeat(BigBlind); bb != -1 {
		post(bb, c.cfg.BigBlind)
	}
	c.betting.CurrentBet = c.cfg.BigBlind
}

func (c *Controller) deal() error {
	holeCards := 2
	if c.cfg.Variant == FiveCardDraw {
		holeCards = 5
	}
	for _, p := range c.players.Players() {
		if p.Status == Broke {
			continue
		}
		cards, err := c.shoe.DrawN(holeCards)
		if err != nil {
			return fmt.Errorf("dealing hole cards: %w", err)
		}
		p.Hole = cards
	}
	return nil
}

// firstToAct finds the opening seat: left of the big blind pre-flop, left of
// the dealer on every other street.
func (c *Controller) firstToAct() int {
	anchor := c.players.DealerSeat()
	if c.Phase() == PhasePreFlop {
		if bb := c.players.PositionSeat(BigBlind); bb != -1 {
			anchor = bb
		}
	}
	return c.nextOwed(anchor)
}

// nextOwed scans clockwise from the seat after from for a player who still
// owes action this street.
func (c *Controller) nextOwed(from int) int {
	n := c.players.Seats()
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if c.players.Player(seat).Status == In {
			return seat
		}
	}
	return -1
}

func (c *Controller) inRound(seat int) bool {
	p := c.players.Player(seat)
	return p != nil && p.InRound()
}

func (c *Controller) liveCount() int {
	count := 0
	for _, p := range c.players.Players() {
		if p.Status != Broke {
			count++
		}
	}
	return count
}

// Act applies the seat's action. Illegal actions are rejected without
// mutating anything; the caller re-prompts.
func (c *Controller) Act(seat int, action Action, amount int) error {
	if c.finished || !c.started {
		return ErrRoundOver
	}
	if c.exchanging {
		return fmt.Errorf("%w: seat %d must exchange cards first", ErrNotYourTurn, c.betting.Turn)
	}
	if seat != c.betting.Turn {
		return fmt.Errorf("%w: seat %d acted on seat %d's turn", ErrNotYourTurn, seat, c.betting.Turn)
	}

	switch action {
	case ActionFold:
		if err := c.players.Fold(seat); err != nil {
			return err
		}
		c.pots.RemoveFoldedPlayer(seat)
	case ActionCheck:
		if err := c.players.Check(seat, c.betting.CurrentBet); err != nil {
			return err
		}
	case ActionCall:
		if err := c.players.Call(seat, c.betting.CurrentBet); err != nil {
			return err
		}
	case ActionRaise:
		if err := c.players.Raise(seat, c.betting.CurrentBet, c.betting.MinRaise, amount); err != nil {
			return err
		}
		c.betting.MinRaise = amount - c.betting.CurrentBet
		c.betting.CurrentBet = amount
	case ActionAllIn:
		if err := c.players.AllIn(seat); err != nil {
			return err
		}
		if bet := c.players.Player(seat).Bet; bet > c.betting.CurrentBet {
			// An all-in above the table bet reopens the action like a raise.
			c.betting.MinRaise = bet - c.betting.CurrentBet
			c.betting.CurrentBet = bet
			c.players.reopenAction(seat)
		}
	default:
		return fmt.Errorf("game: unknown action %d", action)
	}

	c.betting.Opened = true
	c.logger.Debug("action",
		"round", c.roundID, "phase", c.Phase().String(), "seat", seat,
		"action", action.String(), "bet", c.betting.CurrentBet)

	return c.afterAction()
}

func (c *Controller) afterAction() error {
	if c.players.OnePlayerLeft() {
		return c.settleUncontested()
	}
	if c.players.AdvanceRound() {
		return c.endStreet()
	}
	c.betting.Turn = c.nextOwed(c.betting.Turn)
	if c.betting.Turn == -1 {
		return c.endStreet()
	}
	return nil
}

// endStreet folds the street's bets into the pots and opens the next phase.
// If betting has become moot, the remaining phases run without action until
// the showdown.
func (c *Controller) endStreet() error {
	if err := c.pots.AddToPot(c.players.Bets(), c.inRound); err != nil {
		return err
	}
	c.players.ClearBets()

	if err := c.checkConservation(); err != nil {
		return err
	}

	conclude := c.players.AdvanceToRoundConclusion()
	for {
		c.phaseIdx++
		phase := c.Phase()
		if phase == PhaseConclusion {
			return c.showdown()
		}

		if n := communityDeals[phase]; n > 0 {
			cards, err := c.shoe.DrawN(n)
			if err != nil {
				return fmt.Errorf("dealing %s: %w", phase, err)
			}
			c.community = append(c.community, cards...)
		}

		if conclude {
			c.logger.Debug("betting moot, dealing through", "round", c.roundID, "phase", phase.String())
			continue
		}

		c.openStreet(phase)
		if c.betting.Turn == -1 {
			conclude = true
			continue
		}
		return nil
	}
}

func (c *Controller) openStreet(phase Phase) {
	c.betting.ResetForStreet()
	for _, p := range c.players.Players() {
		if p.Status == Called {
			p.Status = In
		}
	}
	if phase == PhasePostDraw {
		c.openExchange()
		return
	}
	c.betting.Turn = c.firstToAct()
}

// openExchange pauses betting while each live seat swaps cards, in turn
// order from the dealer's left.
func (c *Controller) openExchange() {
	c.exchanging = true
	c.exchanged = make([]bool, c.players.Seats())
	c.betting.Turn = c.nextExchanger(c.players.DealerSeat())
	if c.betting.Turn == -1 {
		c.closeExchange()
	}
}

func (c *Controller) nextExchanger(from int) int {
	n := c.players.Seats()
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if c.players.Player(seat).CanAct() && !c.exchanged[seat] {
			return seat
		}
	}
	return -1
}

func (c *Controller) closeExchange() {
	c.exchanging = false
	c.betting.Turn = c.firstToAct()
}

// Exchange swaps up to three of the seat's cards for fresh ones from the
// shoe. Only legal during the draw variant's exchange window, on the seat's
// turn. Pass no indices to stand pat.
func (c *Controller) Exchange(seat int, discard []int) error {
	if c.finished || !c.started || !c.exchanging {
		return ErrNoExchange
	}
	if seat != c.betting.Turn {
		return fmt.Errorf("%w: seat %d exchanged on seat %d's turn", ErrNotYourTurn, seat, c.betting.Turn)
	}
	if len(discard) > maxExchange {
		return ErrExchangeLimit
	}

	p := c.players.Player(seat)
	seen := map[int]bool{}
	for _, idx := range discard {
		if idx < 0 || idx >= len(p.Hole) || seen[idx] {
			return fmt.Errorf("game: invalid discard index %d", idx)
		}
		seen[idx] = true
	}

	kept := make([]deck.Card, 0, len(p.Hole))
	for i, card := range p.Hole {
		if seen[i] {
			c.shoe.Discard(card)
		} else {
			kept = append(kept, card)
		}
	}
	drawn, err := c.shoe.DrawN(len(discard))
	if err != nil {
		return fmt.Errorf("drawing replacements: %w", err)
	}
	p.Hole = append(kept, drawn...)

	c.logger.Debug("exchange", "round", c.roundID, "seat", seat, "cards", len(discard))

	c.exchanged[seat] = true
	c.betting.Turn = c.nextExchanger(seat)
	if c.betting.Turn == -1 {
		c.closeExchange()
		if c.betting.Turn == -1 {
			return c.endStreet()
		}
	}
	return nil
}

// checkConservation verifies no chips appeared or vanished since the round
// started. A failure is a bug in call sequencing, not a player error.
func (c *Controller) checkConservation() error {
	inPlay := c.players.TotalChips() + c.pots.Total()
	if inPlay != c.startingTotal {
		err := fmt.Errorf("%w: %d chips in play, expected %d", ErrInvariant, inPlay, c.startingTotal)
		c.logger.Error("chip conservation failed", "round", c.roundID, "err", err)
		return err
	}
	return nil
}
