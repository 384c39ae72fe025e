package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/dng3rk1d/texasholdem/internal/config"
	"github.com/dng3rk1d/texasholdem/internal/deck"
	"github.com/dng3rk1d/texasholdem/internal/game"
	"github.com/dng3rk1d/texasholdem/internal/pacer"
	"github.com/dng3rk1d/texasholdem/internal/randutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2F5D3D")).
			Padding(0, 1).
			Bold(true)

	streetStyle = lipgloss.NewStyle().Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	redCard     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type CLI struct {
	Config  string `short:"c" help:"Table configuration file (HCL)." default:"holdem.hcl"`
	Seed    int64  `help:"RNG seed for a reproducible session (0 uses the clock)."`
	Hands   int    `short:"n" help:"Number of hands to play (0 plays until interrupted)." default:"0"`
	Fast    bool   `help:"Skip pacing delays between AI actions."`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Println()

	if err := run(cli, logger); err != nil && err != context.Canceled {
		logger.Fatal("game ended with error", "error", err)
	}
	kctx.Exit(0)
}

func run(cli CLI, logger *log.Logger) error {
	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Debug("session", "seed", seed)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	table, err := game.NewGame(cfg, rng, logger)
	if err != nil {
		return err
	}

	humanSeat := -1
	for i, seat := range cfg.Seats {
		if seat.Strategy == game.TagHuman {
			humanSeat = i
		}
	}
	table.EventBus().Subscribe(&consoleRenderer{humanSeat: humanSeat, names: seatNames(cfg)})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pace := pacer.New(quartz.NewReal(), rng, 500*time.Millisecond, 1500*time.Millisecond)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return playSession(ctx, cli, table, pace, humanSeat)
	})
	return group.Wait()
}

func playSession(ctx context.Context, cli CLI, table *game.Game, pace *pacer.Pacer, humanSeat int) error {
	stdin := bufio.NewScanner(os.Stdin)

	for handNum := 1; ; handNum++ {
		var err error
		if handNum == 1 {
			err = table.StartHand()
		} else {
			err = table.NextHand()
		}
		if err != nil {
			return err
		}

		for !table.HandComplete() {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if table.AwaitingInput() {
				if err := promptHuman(table, humanSeat, stdin); err != nil {
					return err
				}
				continue
			}
			if !cli.Fast {
				if err := pace.Wait(ctx); err != nil {
					return err
				}
			}
			if _, err := table.Step(); err != nil {
				return err
			}
		}

		if cli.Hands > 0 && handNum >= cli.Hands {
			return nil
		}
		if humanSeat >= 0 {
			fmt.Print("\nPress enter for the next hand (q to quit): ")
			if !stdin.Scan() || strings.TrimSpace(stdin.Text()) == "q" {
				return nil
			}
		}
	}
}

// promptHuman shows the table from the human's perspective and dispatches
// exactly one command. Rejected commands re-prompt.
func promptHuman(table *game.Game, humanSeat int, stdin *bufio.Scanner) error {
	snap := table.Snapshot(humanSeat)
	me := snap.Players[humanSeat]

	fmt.Println()
	fmt.Printf("%s  board %s  pot %d\n",
		streetStyle.Render(strings.ToUpper(snap.Street.String())),
		renderCards(snap.Community), snap.Pot)
	toCall := snap.CurrentBet - me.StreetBet
	fmt.Printf("your cards %s  chips %d  to call %d\n",
		renderCards(me.HoleCards), me.Chips, toCall)
	fmt.Print("(c)all/check (f)old (b)et <amount> (a)ll-in: ")

	if !stdin.Scan() {
		return fmt.Errorf("input closed")
	}
	fields := strings.Fields(strings.ToLower(stdin.Text()))
	if len(fields) == 0 {
		return nil
	}

	var err error
	switch fields[0] {
	case "c", "call", "check":
		err = table.CallOrCheck()
	case "f", "fold":
		err = table.Fold()
	case "a", "allin", "all-in":
		err = table.AllIn()
	case "b", "bet", "r", "raise":
		if len(fields) < 2 {
			fmt.Println("usage: b <amount>")
			return nil
		}
		amount, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			fmt.Println("amount must be a number")
			return nil
		}
		err = table.Raise(amount)
	default:
		fmt.Println("unknown command")
		return nil
	}

	switch err {
	case nil:
		return nil
	case game.ErrRaiseCapReached:
		fmt.Println("maximum raises reached, choose call or fold")
		return nil
	default:
		if err == game.ErrNotYourTurn {
			return nil
		}
		return err
	}
}

func seatNames(cfg game.Config) []string {
	names := make([]string, len(cfg.Seats))
	for i, s := range cfg.Seats {
		names[i] = s.Name
	}
	return names
}

func renderCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "--"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.IsRed() {
			parts[i] = redCard.Render(c.String())
		} else {
			parts[i] = c.String()
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// consoleRenderer prints game events as a running commentary.
type consoleRenderer struct {
	humanSeat int
	names     []string
}

func (r *consoleRenderer) OnEvent(ev game.GameEvent) {
	switch e := ev.(type) {
	case game.HandStartEvent:
		fmt.Printf("\n%s\n", streetStyle.Render(fmt.Sprintf("--- Hand %d ---", e.HandNum)))
		fmt.Printf("%s posts SB %d, %s posts BB %d\n",
			r.name(e.SmallBlindSeat), e.SmallBlind, r.name(e.BigBlindSeat), e.BigBlind)
	case game.PlayerActionEvent:
		fmt.Printf("%s: %s (pot %d)\n", r.name(e.Seat), e.Label, e.PotAfter)
	case game.StreetChangeEvent:
		fmt.Printf("%s %s  pot %d\n",
			streetStyle.Render("*** "+strings.ToUpper(e.Street.String())+" ***"),
			renderCards(e.Community), e.Pot)
	case game.HandEndEvent:
		for seat, cards := range e.Revealed {
			fmt.Printf("%s shows %s\n", r.name(seat), renderCards(cards))
		}
		for _, pot := range e.Pots {
			names := make([]string, len(pot.Winners))
			for i, seat := range pot.Winners {
				names[i] = r.name(seat)
			}
			switch {
			case pot.ByFold:
				fmt.Println(winStyle.Render(
					fmt.Sprintf("%s wins %d chips", strings.Join(names, ", "), pot.Amount)))
			case len(pot.Winners) > 1:
				fmt.Println(winStyle.Render(
					fmt.Sprintf("Split pot! %s each win %d chips with a %s",
						strings.Join(names, ", "), pot.Share, pot.HandText)))
			default:
				fmt.Println(winStyle.Render(
					fmt.Sprintf("%s wins %d chips with a %s", names[0], pot.Amount, pot.HandText)))
			}
		}
	}
}

func (r *consoleRenderer) name(seat int) string {
	if seat >= 0 && seat < len(r.names) {
		return r.names[seat]
	}
	return fmt.Sprintf("seat %d", seat)
}
