package game

import (
	"github.com/dng3rk1d/texasholdem/internal/deck"
)

// GameState is the canonical mutable state of one hand, owned exclusively by
// the Game. External callers only ever see read-only snapshots of it.
type GameState struct {
	Dealer     int
	Street     Street
	Community  []deck.Card
	Pot        int
	CurrentBet int

	// Contributions is the cumulative per-seat chip ledger for the hand,
	// including blinds and folded players' dead money.
	Contributions map[int]int

	// RaiseCount counts raises on the current street; capped by the table
	// configuration.
	RaiseCount int

	// ToAct is the set of seats still required to respond to the current
	// bet level. Rebuilt deterministically whenever the level rises.
	ToAct map[int]struct{}

	// Active is the seat whose turn it is, or -1 when no seat is acting.
	Active int
}

func newGameState(dealer int) *GameState {
	return &GameState{
		Dealer:        dealer,
		Street:        Preflop,
		Community:     make([]deck.Card, 0, 5),
		Contributions: make(map[int]int),
		ToAct:         make(map[int]struct{}),
		Active:        -1,
	}
}

// mustAct reports whether the seat still owes a response this street.
func (gs *GameState) mustAct(seat int) bool {
	_, ok := gs.ToAct[seat]
	return ok
}

// clearToAct removes a seat from the must-act set.
func (gs *GameState) clearToAct(seat int) {
	delete(gs.ToAct, seat)
}

// resetToAct rebuilds the must-act set from scratch. Seats are included when
// they have not folded, still have chips to decide with, and pass the filter.
func (gs *GameState) resetToAct(players []*Player, include func(*Player) bool) {
	gs.ToAct = make(map[int]struct{}, len(players))
	for _, p := range players {
		if p.Folded || p.Chips == 0 {
			continue
		}
		if include == nil || include(p) {
			gs.ToAct[p.Seat] = struct{}{}
		}
	}
}

// totalContributions sums the hand's ledger, folded seats included.
func (gs *GameState) totalContributions() int {
	total := 0
	for _, c := range gs.Contributions {
		total += c
	}
	return total
}
