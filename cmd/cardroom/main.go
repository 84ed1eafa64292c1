package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/feltops/cardroom/internal/ai"
	"github.com/feltops/cardroom/internal/bank"
	"github.com/feltops/cardroom/internal/config"
	"github.com/feltops/cardroom/internal/deck"
	"github.com/feltops/cardroom/internal/display"
	"github.com/feltops/cardroom/internal/game"
	"github.com/feltops/cardroom/internal/session"
	"github.com/feltops/cardroom/internal/statistics"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#1A7A4C")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config  string `short:"c" help:"Path to HCL configuration file" default:"cardroom.hcl"`
	Rounds  int    `short:"n" help:"Rounds to play (overrides config)"`
	Seed    int64  `help:"Random seed (0 seeds from the clock)"`
	Variant string `help:"Game variant: holdem or five-card-draw"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}
	if cli.Rounds > 0 {
		cfg.Session.Rounds = cli.Rounds
	}
	if cli.Seed != 0 {
		cfg.Session.Seed = cli.Seed
	}
	if cli.Variant != "" {
		cfg.Table.Variant = cli.Variant
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	fmt.Print(titleStyle.Render(" ♠ ♥ Cardroom ♦ ♣ "))
	fmt.Println()
	fmt.Println()

	if err := run(cfg, logger); err != nil {
		log.Fatal("Session failed", "error", err)
	}
	ctx.Exit(0)
}

func run(cfg *config.Config, logger *log.Logger) error {
	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("Starting session", "variant", cfg.Table.Variant, "seats", cfg.Table.Seats, "seed", seed)

	variant := game.TexasHoldem
	if cfg.Table.Variant == "five-card-draw" {
		variant = game.FiveCardDraw
	}

	// Seat 0 is staked from the bankroll; the house seats play table chips.
	bankroll := bank.NewBankroll(cfg.Table.BuyIn)
	if err := bankroll.Bet(cfg.Table.BuyIn); err != nil {
		return fmt.Errorf("buying in: %w", err)
	}

	names := make([]string, cfg.Table.Seats)
	stacks := make([]int, cfg.Table.Seats)
	names[0] = "hero"
	stacks[0] = cfg.Table.BuyIn
	for i := 1; i < cfg.Table.Seats; i++ {
		names[i] = fmt.Sprintf("seat-%d", i)
		stacks[i] = cfg.Table.StartingChips
	}

	players, err := game.NewPlayerLedger(names, stacks)
	if err != nil {
		return err
	}

	shoe := deck.NewShoe(cfg.Table.Decks, rng)
	controller := game.NewController(game.Config{
		Variant:    variant,
		Ante:       cfg.Table.Ante,
		SmallBlind: cfg.Table.SmallBlind,
		BigBlind:   cfg.Table.BigBlind,
	}, players, shoe, logger)

	strategies := make(map[int]ai.Strategy, cfg.Table.Seats)
	strategies[0] = ai.NewCallingStrategy()
	for i := 1; i < cfg.Table.Seats; i++ {
		strategies[i] = ai.NewRandomStrategy(rand.New(rand.NewSource(seed + int64(i))))
	}

	pacing := time.Duration(cfg.Session.PacingMS) * time.Millisecond
	runner := session.NewRunner(controller, strategies, quartz.NewReal(), pacing, logger)

	stats := statistics.NewAccumulator(0)
	runner.Track(stats)

	renderer := display.NewRenderer()
	for i := 0; i < cfg.Session.Rounds; i++ {
		live := 0
		for _, p := range players.Players() {
			if p.Status != game.Broke {
				live++
			}
		}
		if live < 2 {
			logger.Info("Session over early", "rounds_played", i)
			break
		}

		result, err := runner.PlayRound()
		if err != nil {
			return err
		}
		fmt.Print(renderer.Result(result, names))
	}

	// Cash the hero's remaining stack back out.
	bankroll.Payout(players.Player(0).Stack)

	fmt.Println()
	fmt.Println(renderer.Table(controller.Snapshot(-1)))
	logger.Info("Session complete", "stats", stats.Summary(), "bankroll", bankroll.Balance())
	return nil
}
