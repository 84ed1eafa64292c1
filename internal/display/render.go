// Package display renders table snapshots for the terminal. It reads core
// state through game.TableView and round results; the core never imports it.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/feltops/cardroom/internal/deck"
	"github.com/feltops/cardroom/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1A7A4C")).
			Padding(0, 1).
			Bold(true)

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E3B341")).
			Bold(true)

	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	blackCardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ECF0F1"))

	foldedStyle = lipgloss.NewStyle().Faint(true)
	turnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")).Bold(true)
	winnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E3B341")).Bold(true)
)

// Renderer formats table state and results as styled terminal text.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Card renders a single card with suit coloring
func (r *Renderer) Card(c deck.Card) string {
	if c.IsRed() {
		return redCardStyle.Render(c.String())
	}
	return blackCardStyle.Render(c.String())
}

// Cards renders a space-separated card list
func (r *Renderer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Table renders a full table snapshot
func (r *Renderer) Table(view game.TableView) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf(" %s · %s ", view.Variant, view.Phase)))
	b.WriteString("\n")

	if len(view.Community) > 0 {
		b.WriteString(fmt.Sprintf("board: %s\n", r.Cards(view.Community)))
	}

	for i, total := range view.PotTotals {
		label := "side pot"
		if i == len(view.PotTotals)-1 {
			label = "main pot"
		}
		b.WriteString(potStyle.Render(fmt.Sprintf("%s: %d", label, total)))
		b.WriteString("\n")
	}

	for _, seat := range view.Seats {
		line := fmt.Sprintf("[%d] %-12s stack=%-6d bet=%-5d %s", seat.Seat, seat.Name, seat.Stack, seat.Bet, seat.Status)
		if seat.Position != game.NoPosition {
			line += fmt.Sprintf(" (%s)", seat.Position)
		}
		if len(seat.Hole) > 0 {
			line += "  " + r.Cards(seat.Hole)
		}
		switch {
		case seat.Seat == view.Turn:
			line = turnStyle.Render("→ ") + line
		default:
			line = "  " + line
		}
		if seat.Status == game.Folded || seat.Status == game.Broke {
			line = foldedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// Result renders a settled round's awards
func (r *Renderer) Result(result *game.RoundResult, names []string) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	if result.Uncontested {
		b.WriteString("round ends without showdown\n")
	}
	for _, award := range result.Awards {
		if award.Amount == 0 {
			continue
		}
		winners := make([]string, len(award.Winners))
		for i, seat := range award.Winners {
			winners[i] = names[seat]
		}
		line := fmt.Sprintf("%s pot (%d) → %s", award.Kind, award.Amount, strings.Join(winners, ", "))
		if len(award.BestHand) > 0 {
			line += fmt.Sprintf(" with %s %s", award.Ranking, r.Cards(award.BestHand))
		}
		b.WriteString(winnerStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
