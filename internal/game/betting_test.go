package game

import "testing"

func hasAction(actions []Action, want Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

func TestLegalActionsUnopened(t *testing.T) {
	t.Parallel()

	b := NewBettingState(2)
	p := &Player{Stack: 100, Status: In}

	actions := b.LegalActions(p)
	for _, want := range []Action{ActionFold, ActionCheck, ActionRaise, ActionAllIn} {
		if !hasAction(actions, want) {
			t.Errorf("missing %s in %v", want, actions)
		}
	}
	if hasAction(actions, ActionCall) {
		t.Errorf("call offered with nothing to call: %v", actions)
	}
}

func TestLegalActionsFacingBet(t *testing.T) {
	t.Parallel()

	b := NewBettingState(2)
	b.CurrentBet = 10

	p := &Player{Stack: 100, Status: In}
	actions := b.LegalActions(p)
	for _, want := range []Action{ActionFold, ActionCall, ActionRaise, ActionAllIn} {
		if !hasAction(actions, want) {
			t.Errorf("missing %s in %v", want, actions)
		}
	}
	if hasAction(actions, ActionCheck) {
		t.Errorf("check offered facing a bet: %v", actions)
	}
}

// A stack that cannot cover the call gets only fold or all-in.
func TestLegalActionsShortStack(t *testing.T) {
	t.Parallel()

	b := NewBettingState(2)
	b.CurrentBet = 50

	p := &Player{Stack: 20, Status: In}
	actions := b.LegalActions(p)
	if len(actions) != 2 || !hasAction(actions, ActionFold) || !hasAction(actions, ActionAllIn) {
		t.Errorf("short stack actions = %v, want fold and all-in only", actions)
	}
}

func TestLegalActionsNonActors(t *testing.T) {
	t.Parallel()

	b := NewBettingState(2)
	if actions := b.LegalActions(nil); actions != nil {
		t.Errorf("nil player got actions %v", actions)
	}
	if actions := b.LegalActions(&Player{Status: Folded}); actions != nil {
		t.Errorf("folded player got actions %v", actions)
	}
	if actions := b.LegalActions(&Player{Status: AllIn}); actions != nil {
		t.Errorf("all-in player got actions %v", actions)
	}
}

func TestResetForStreet(t *testing.T) {
	t.Parallel()

	b := NewBettingState(4)
	b.CurrentBet = 20
	b.MinRaise = 16
	b.Opened = true

	b.ResetForStreet()
	if b.CurrentBet != 0 || b.MinRaise != 4 || b.Opened {
		t.Errorf("after reset: bet=%d minraise=%d opened=%v", b.CurrentBet, b.MinRaise, b.Opened)
	}
}
