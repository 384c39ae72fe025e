package game

import (
	"github.com/dng3rk1d/texasholdem/internal/deck"
)

// Player represents a seat at the table. Players are created once per
// session; chips persist across hands while hole cards, fold status and
// per-street bookkeeping reset at the start of every hand.
type Player struct {
	Seat       int
	Name       string
	Chips      int
	HoleCards  []deck.Card
	Folded     bool
	StreetBet  int         // chips committed on the current street
	LastAction string      // display label, e.g. "Call", "Raise 50", "All-In 120"

	// PositionScore feeds the strategic AI's position factor. Fixed per
	// seat for the session.
	PositionScore int

	// Strategy is nil for the human seat; the engine suspends and waits
	// for a command instead of consulting a policy.
	Strategy Strategy
}

// IsHuman reports whether this seat is driven by external commands rather
// than an AI policy.
func (p *Player) IsHuman() bool {
	return p.Strategy == nil
}

// resetForHand clears per-hand state. Chips, seat, name, position and
// strategy persist.
func (p *Player) resetForHand() {
	p.HoleCards = nil
	p.Folded = false
	p.StreetBet = 0
	p.LastAction = ""
}
