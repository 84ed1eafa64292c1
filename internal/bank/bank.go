// Package bank holds the human player's session bankroll: the chips they
// walked in with, outside whatever is on the table. The settlement engine
// only touches it through buy-ins and cash-outs.
package bank

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds is returned when a bet exceeds the balance.
var ErrInsufficientFunds = errors.New("bank: insufficient funds")

// Bankroll tracks a single player's off-table chips.
type Bankroll struct {
	balance int
}

// NewBankroll creates a bankroll with an opening balance.
func NewBankroll(opening int) *Bankroll {
	if opening < 0 {
		opening = 0
	}
	return &Bankroll{balance: opening}
}

// Bet withdraws amount for a buy-in
func (b *Bankroll) Bet(amount int) error {
	if amount < 0 {
		return fmt.Errorf("bank: negative bet %d", amount)
	}
	if amount > b.balance {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, b.balance, amount)
	}
	b.balance -= amount
	return nil
}

// Payout deposits winnings
func (b *Bankroll) Payout(amount int) {
	if amount > 0 {
		b.balance += amount
	}
}

// Balance returns the current balance
func (b *Bankroll) Balance() int {
	return b.balance
}
