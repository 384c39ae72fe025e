package game

import (
	"github.com/dng3rk1d/texasholdem/internal/deck"
)

// PlayerSnapshot is the externally visible state of one seat.
type PlayerSnapshot struct {
	Seat         int
	Name         string
	Chips        int
	StreetBet    int
	Contribution int
	Folded       bool
	LastAction   string
	Strategy     string // strategy tag, "human" for the command-driven seat

	// HoleCards is populated for the viewer's own seat, and for every
	// non-folded seat once the hand reaches showdown.
	HoleCards []deck.Card
}

// Snapshot is a read-only view of the table for presentation layers. It
// shares no mutable state with the engine.
type Snapshot struct {
	HandNum       int
	Street        Street
	Community     []deck.Card
	Pot           int
	CurrentBet    int
	RaiseCount    int
	Dealer        int
	ActiveSeat    int // -1 when no seat is acting
	AwaitingInput bool
	HandComplete  bool
	Players       []PlayerSnapshot
}

// Snapshot renders the game state as seen from viewerSeat. Pass a negative
// seat for an observer with no hole-card visibility.
func (g *Game) Snapshot(viewerSeat int) Snapshot {
	snap := Snapshot{
		HandNum:       g.handNum,
		Street:        g.state.Street,
		Community:     append([]deck.Card(nil), g.state.Community...),
		Pot:           g.state.Pot,
		CurrentBet:    g.state.CurrentBet,
		RaiseCount:    g.state.RaiseCount,
		Dealer:        g.state.Dealer,
		ActiveSeat:    g.state.Active,
		AwaitingInput: g.AwaitingInput(),
		HandComplete:  g.complete,
		Players:       make([]PlayerSnapshot, 0, len(g.players)),
	}

	for _, p := range g.players {
		ps := PlayerSnapshot{
			Seat:         p.Seat,
			Name:         p.Name,
			Chips:        p.Chips,
			StreetBet:    p.StreetBet,
			Contribution: g.state.Contributions[p.Seat],
			Folded:       p.Folded,
			LastAction:   p.LastAction,
			Strategy:     strategyTag(p),
		}
		if p.Seat == viewerSeat || (g.state.Street == Showdown && !p.Folded) {
			ps.HoleCards = append([]deck.Card(nil), p.HoleCards...)
		}
		snap.Players = append(snap.Players, ps)
	}
	return snap
}

func strategyTag(p *Player) string {
	if p.Strategy == nil {
		return TagHuman
	}
	return p.Strategy.Name()
}
