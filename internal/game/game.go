package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dng3rk1d/texasholdem/internal/deck"
)

// SeatConfig configures one seat at table creation.
type SeatConfig struct {
	Name     string
	Strategy string // one of the strategy tags; "human" for the command seat
	Position int    // position score for the strategic AI, defaults to 1
	Chips    int    // starting stack override; Config.StartingChips if 0
}

// Config fixes the table parameters for a session.
type Config struct {
	SmallBlind    int
	BigBlind      int
	RaiseCap      int // raises allowed per street
	StartingChips int
	Seats         []SeatConfig
}

func (c Config) validate() error {
	if len(c.Seats) < 2 || len(c.Seats) > 10 {
		return fmt.Errorf("table needs 2 to 10 seats, got %d", len(c.Seats))
	}
	if c.SmallBlind <= 0 || c.BigBlind < c.SmallBlind {
		return fmt.Errorf("invalid blinds %d/%d", c.SmallBlind, c.BigBlind)
	}
	if c.RaiseCap < 0 {
		return fmt.Errorf("invalid raise cap %d", c.RaiseCap)
	}
	humans := 0
	for _, s := range c.Seats {
		if s.Strategy == TagHuman {
			humans++
		}
		if s.Chips == 0 && c.StartingChips <= 0 {
			return fmt.Errorf("seat %q has no starting stack", s.Name)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat, got %d", humans)
	}
	return nil
}

// Game orchestrates full hands: deal, four betting streets, settlement and
// next-hand rotation. It owns the canonical GameState; everything is
// single-threaded and only ever mutated by the active step.
type Game struct {
	cfg     Config
	players []*Player
	state   *GameState
	deck    *deck.Deck
	rng     *rand.Rand
	logger  *log.Logger
	bus     EventBus

	dealer   int
	handNum  int
	complete bool
	started  bool

	chipTotal int // conservation target for the session
	dropped   int // chips lost to indivisible pot splits
}

// NewGame creates a table from a fixed configuration. The RNG drives deck
// shuffles and AI jitter; a nil logger discards output.
func NewGame(cfg Config, rng *rand.Rand, logger *log.Logger) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid table config: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		bus:    NewEventBus(),
		state:  newGameState(0),
	}

	for i, sc := range cfg.Seats {
		strategy, err := NewStrategy(sc.Strategy)
		if err != nil {
			return nil, fmt.Errorf("seat %q: %w", sc.Name, err)
		}
		chips := sc.Chips
		if chips == 0 {
			chips = cfg.StartingChips
		}
		position := sc.Position
		if position == 0 {
			position = 1
		}
		g.players = append(g.players, &Player{
			Seat:          i,
			Name:          sc.Name,
			Chips:         chips,
			PositionScore: position,
			Strategy:      strategy,
		})
		g.chipTotal += chips
	}

	return g, nil
}

// EventBus returns the bus carrying this table's events.
func (g *Game) EventBus() EventBus { return g.bus }

// AwaitingInput reports whether the engine is suspended for a human command.
// While true the engine performs no further mutation until exactly one
// command arrives for the active seat.
func (g *Game) AwaitingInput() bool {
	return !g.complete && g.state.Active >= 0 && g.players[g.state.Active].IsHuman()
}

// HandComplete reports whether the current hand has been settled.
func (g *Game) HandComplete() bool { return g.complete }

// ActiveSeat returns the seat currently to act, or -1.
func (g *Game) ActiveSeat() int { return g.state.Active }

// HandNum returns the 1-based number of the current hand.
func (g *Game) HandNum() int { return g.handNum }

// StartHand begins a new hand: fresh shuffled deck, hole cards, blinds, and
// the opening must-act set. Play then advances through Step and the command
// interface.
func (g *Game) StartHand() error {
	if g.started && !g.complete {
		return ErrHandInProgress
	}
	g.started = true
	g.complete = false
	g.handNum++

	g.state = newGameState(g.dealer)
	g.deck = deck.New(g.rng)

	for _, p := range g.players {
		p.resetForHand()
		g.state.Contributions[p.Seat] = 0
		// Busted players sit out: they cannot post, act, or win.
		if p.Chips == 0 {
			p.Folded = true
		}
	}

	if err := g.dealHoleCards(); err != nil {
		return err
	}

	n := len(g.players)
	sbSeat := (g.dealer + 1) % n
	bbSeat := (g.dealer + 2) % n
	g.commit(g.players[sbSeat], g.cfg.SmallBlind)
	g.commit(g.players[bbSeat], g.cfg.BigBlind)
	g.state.CurrentBet = g.cfg.BigBlind

	// Preflop the big blind is the closing player and starts outside the
	// must-act set; action opens three seats past the dealer.
	g.state.resetToAct(g.players, func(p *Player) bool { return p.Seat != bbSeat })
	g.state.Active = g.nextToAct((g.dealer + 3) % n)

	g.logger.Debug("hand started",
		"hand", g.handNum, "dealer", g.dealer, "sb", sbSeat, "bb", bbSeat)
	g.bus.Publish(HandStartEvent{
		HandNum:        g.handNum,
		Dealer:         g.dealer,
		SmallBlindSeat: sbSeat,
		BigBlindSeat:   bbSeat,
		SmallBlind:     g.cfg.SmallBlind,
		BigBlind:       g.cfg.BigBlind,
		timestamp:      time.Now(),
	})

	if g.state.Active == -1 {
		return g.endStreet()
	}
	return nil
}

// NextHand rotates the dealer button and starts the following hand.
func (g *Game) NextHand() error {
	if !g.complete {
		return ErrHandInProgress
	}
	g.dealer = (g.dealer + 1) % len(g.players)
	return g.StartHand()
}

// Fold folds the active human seat.
func (g *Game) Fold() error {
	p, err := g.commandPlayer()
	if err != nil {
		return err
	}
	g.applyFold(p)
	return g.afterAction(p)
}

// CallOrCheck calls the outstanding bet, or checks when nothing is owed.
// A short stack is committed entirely and relabelled as an all-in.
func (g *Game) CallOrCheck() error {
	p, err := g.commandPlayer()
	if err != nil {
		return err
	}
	g.applyCallOrCheck(p)
	return g.afterAction(p)
}

// Raise covers the outstanding bet and raises by amount on top. Rejected
// when the street's raise cap has been reached; a stack too short for the
// full raise converts to an all-in.
func (g *Game) Raise(amount int) error {
	p, err := g.commandPlayer()
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("raise amount must be positive, got %d", amount)
	}
	if g.state.RaiseCount >= g.cfg.RaiseCap {
		return ErrRaiseCapReached
	}
	g.applyRaise(p, amount)
	return g.afterAction(p)
}

// AllIn commits the active human seat's entire stack.
func (g *Game) AllIn() error {
	p, err := g.commandPlayer()
	if err != nil {
		return err
	}
	g.applyAllIn(p)
	return g.afterAction(p)
}

// commandPlayer validates that a human command is currently accepted and
// returns the acting player. Violations are rejected without touching state:
// commands for an inactive seat, or a second command for the same turn,
// fail with ErrNotYourTurn.
func (g *Game) commandPlayer() (*Player, error) {
	if g.complete {
		return nil, ErrHandComplete
	}
	if !g.AwaitingInput() {
		return nil, ErrNotYourTurn
	}
	return g.players[g.state.Active], nil
}

// Step resolves at most one automated action. It returns false without
// mutating anything when the hand is complete or the engine is suspended
// for a human command. Pacing between steps is the caller's concern; the
// engine never depends on wall-clock delays.
func (g *Game) Step() (bool, error) {
	if g.complete || g.state.Active < 0 {
		return false, nil
	}
	p := g.players[g.state.Active]
	if p.IsHuman() {
		return false, nil
	}
	decision := p.Strategy.Decide(g.rng, g.viewFor(p))
	g.applyDecision(p, decision)
	return true, g.afterAction(p)
}

// Run advances automated steps until the hand completes or a human seat has
// to act.
func (g *Game) Run() error {
	for {
		progressed, err := g.Step()
		if err != nil || !progressed {
			return err
		}
	}
}

// viewFor builds the read-only view an AI strategy decides from.
func (g *Game) viewFor(p *Player) StrategyView {
	return StrategyView{
		HoleCards:     p.HoleCards,
		Community:     g.state.Community,
		Chips:         p.Chips,
		StreetBet:     p.StreetBet,
		CurrentBet:    g.state.CurrentBet,
		Pot:           g.state.Pot,
		Street:        g.state.Street,
		RaiseCount:    g.state.RaiseCount,
		RaiseCap:      g.cfg.RaiseCap,
		PositionScore: p.PositionScore,
	}
}

// applyDecision maps an AI decision onto the engine, downgrading anything
// illegal rather than erroring: AI policies never corrupt state.
func (g *Game) applyDecision(p *Player, d Decision) {
	switch d.Act {
	case Fold:
		g.applyFold(p)
	case Raise:
		if g.state.RaiseCount >= g.cfg.RaiseCap {
			g.applyCallOrCheck(p)
			return
		}
		g.applyRaise(p, max(1, d.RaiseBy))
	case AllIn:
		g.applyAllIn(p)
	default:
		g.applyCallOrCheck(p)
	}
}

// commit moves chips from the player into the pot, clamped to the stack.
// Returns the amount actually committed.
func (g *Game) commit(p *Player, amount int) int {
	actual := min(amount, p.Chips)
	p.Chips -= actual
	p.StreetBet += actual
	g.state.Contributions[p.Seat] += actual
	g.state.Pot = g.state.totalContributions()
	return actual
}

func (g *Game) applyFold(p *Player) {
	p.Folded = true
	p.LastAction = "Fold"
	g.state.clearToAct(p.Seat)
	g.publishAction(p, Fold, "Fold", 0)
}

func (g *Game) applyCallOrCheck(p *Player) {
	required := g.state.CurrentBet - p.StreetBet
	switch {
	case required <= 0:
		p.LastAction = "Check"
		g.state.clearToAct(p.Seat)
		g.publishAction(p, Check, "Check", 0)
	case p.Chips < required:
		// Involuntary all-in: the stack cannot cover the call.
		n := g.commit(p, p.Chips)
		p.LastAction = fmt.Sprintf("All-In %d", n)
		g.state.clearToAct(p.Seat)
		g.publishAction(p, AllIn, p.LastAction, n)
	default:
		g.commit(p, required)
		p.LastAction = "Call"
		g.state.clearToAct(p.Seat)
		g.publishAction(p, Call, "Call", required)
	}
}

func (g *Game) applyRaise(p *Player, by int) {
	required := g.state.CurrentBet - p.StreetBet
	if p.Chips <= required+by {
		// Not enough behind for the full raise: the whole action
		// becomes an all-in.
		g.applyAllIn(p)
		return
	}
	total := 0
	if required > 0 {
		total += g.commit(p, required)
	}
	extra := g.commit(p, by)
	total += extra
	g.state.CurrentBet += extra
	g.state.RaiseCount++
	p.LastAction = fmt.Sprintf("Raise %d", extra)

	// Everyone else must respond to the new level.
	g.state.resetToAct(g.players, func(q *Player) bool { return q.Seat != p.Seat })
	g.publishAction(p, Raise, p.LastAction, total)
}

func (g *Game) applyAllIn(p *Player) {
	n := g.commit(p, p.Chips)
	p.LastAction = fmt.Sprintf("All-In %d", n)
	if p.StreetBet > g.state.CurrentBet {
		// Exceeding the bet level reopens the action like a raise,
		// though it does not consume a slot under the raise cap.
		g.state.CurrentBet = p.StreetBet
		g.state.resetToAct(g.players, func(q *Player) bool { return q.Seat != p.Seat })
	} else {
		g.state.clearToAct(p.Seat)
	}
	g.publishAction(p, AllIn, p.LastAction, n)
}

func (g *Game) publishAction(p *Player, act Action, label string, amount int) {
	g.logger.Debug("action",
		"seat", p.Seat, "player", p.Name, "action", label,
		"amount", amount, "pot", g.state.Pot)
	g.bus.Publish(PlayerActionEvent{
		Seat:      p.Seat,
		Name:      p.Name,
		Act:       act,
		Label:     label,
		Amount:    amount,
		Street:    g.state.Street,
		PotAfter:  g.state.Pot,
		timestamp: time.Now(),
	})
}

// afterAction decides what follows an applied action: a fold-out win, the
// next seat to act, or the end of the street.
func (g *Game) afterAction(p *Player) error {
	if last := g.soleContender(); last != nil {
		return g.settleFoldWin(last)
	}
	next := g.nextToAct((p.Seat + 1) % len(g.players))
	if next == -1 {
		return g.endStreet()
	}
	g.state.Active = next
	return nil
}

// soleContender returns the only non-folded player, or nil if more remain.
func (g *Game) soleContender() *Player {
	var last *Player
	for _, p := range g.players {
		if p.Folded {
			continue
		}
		if last != nil {
			return nil
		}
		last = p
	}
	return last
}

// nextToAct walks clockwise from the given seat to the next seat still in
// the must-act set, skipping folded seats. Returns -1 when none remains.
func (g *Game) nextToAct(from int) int {
	n := len(g.players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if !g.players[seat].Folded && g.state.mustAct(seat) {
			return seat
		}
	}
	return -1
}

// endStreet deals the next community cards and opens the following betting
// street, or settles the hand when the river has been bet. When every
// remaining player is already all-in the streets run out back to back with
// no further action solicited.
func (g *Game) endStreet() error {
	switch g.state.Street {
	case Preflop:
		if err := g.dealCommunity(3); err != nil {
			return err
		}
		g.state.Street = Flop
	case Flop:
		if err := g.dealCommunity(1); err != nil {
			return err
		}
		g.state.Street = Turn
	case Turn:
		if err := g.dealCommunity(1); err != nil {
			return err
		}
		g.state.Street = River
	case River:
		return g.settleShowdown()
	default:
		return nil
	}

	g.state.CurrentBet = 0
	g.state.RaiseCount = 0
	for _, p := range g.players {
		p.StreetBet = 0
		p.LastAction = ""
	}
	g.state.resetToAct(g.players, nil)

	g.logger.Debug("street", "hand", g.handNum,
		"street", g.state.Street, "board", g.state.Community, "pot", g.state.Pot)
	g.bus.Publish(StreetChangeEvent{
		Street:    g.state.Street,
		Community: append([]deck.Card(nil), g.state.Community...),
		Pot:       g.state.Pot,
		timestamp: time.Now(),
	})

	next := g.nextToAct((g.state.Dealer + 1) % len(g.players))
	if next == -1 {
		return g.endStreet()
	}
	g.state.Active = next
	return nil
}

func (g *Game) dealHoleCards() error {
	for round := 0; round < 2; round++ {
		for _, p := range g.players {
			if p.Folded {
				continue
			}
			card, err := g.deck.Deal()
			if err != nil {
				return fmt.Errorf("dealing hole cards: %w", err)
			}
			p.HoleCards = append(p.HoleCards, card)
		}
	}
	return nil
}

func (g *Game) dealCommunity(n int) error {
	cards, err := g.deck.DealN(n)
	if err != nil {
		return fmt.Errorf("dealing community cards: %w", err)
	}
	g.state.Community = append(g.state.Community, cards...)
	return nil
}

// validateChips confirms chip conservation across the session: chips behind
// plus the live pot plus any split remainders must equal the initial total.
func (g *Game) validateChips() error {
	total := g.dropped
	for _, p := range g.players {
		total += p.Chips
	}
	if total != g.chipTotal {
		return fmt.Errorf("chip conservation violated: have %d, want %d", total, g.chipTotal)
	}
	return nil
}
