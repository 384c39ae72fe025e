package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/dng3rk1d/texasholdem/internal/deck"
	"github.com/dng3rk1d/texasholdem/internal/evaluator"
)

// Decision is an AI policy's chosen action. RaiseBy is the amount to raise
// beyond the call, only meaningful when Act is Raise.
type Decision struct {
	Act     Action
	RaiseBy int
}

// StrategyView is the read-only state a policy decides from. Only the acting
// player's own hole cards are visible.
type StrategyView struct {
	HoleCards     []deck.Card
	Community     []deck.Card
	Chips         int
	StreetBet     int
	CurrentBet    int
	Pot           int
	Street        Street
	RaiseCount    int
	RaiseCap      int
	PositionScore int
}

// Strategy maps a view of the table to a decision. Strategies are selected
// once at seat creation from a closed set; the human seat has no strategy
// and is driven through the command interface instead.
type Strategy interface {
	Name() string
	Decide(rng *rand.Rand, view StrategyView) Decision
}

// Strategy tags accepted by NewStrategy.
const (
	TagHuman           = "human"
	TagStraightforward = "straightforward"
	TagRiskTaker       = "risk_taker"
	TagStrategic       = "strategic"
	TagChaos           = "chaos"
)

// NewStrategy builds a strategy from its configuration tag. The human tag
// yields a nil strategy: that seat suspends for external commands.
func NewStrategy(tag string) (Strategy, error) {
	switch tag {
	case TagHuman:
		return nil, nil
	case TagStraightforward:
		return &Straightforward{StrongThreshold: 6, MediumThreshold: 4}, nil
	case TagRiskTaker:
		return &RiskTaker{RaiseUnit: 50}, nil
	case TagStrategic:
		return &Strategic{RaiseThreshold: 6, CallThreshold: 3, RaiseUnit: 50}, nil
	case TagChaos:
		return &Chaos{RaiseUnit: 50}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", tag)
	}
}

// handStrength returns the hand's category (1..9), or 0 when fewer than five
// cards are visible (preflop).
func handStrength(hole, community []deck.Card) int {
	cards := make([]deck.Card, 0, 7)
	cards = append(cards, hole...)
	cards = append(cards, community...)
	if len(cards) < 5 {
		return 0
	}
	return int(evaluator.Evaluate(cards).Category())
}

// raiseAmount sizes a raise from normalised hand strength, pot size and
// stack size (weighted 0.4/0.3/0.3) scaled onto a base unit, with a little
// symmetric jitter. Never less than 1.
func raiseAmount(rng *rand.Rand, strength, pot, chips int) int {
	normHand := float64(strength) / 9.0
	normPot := min(1.0, float64(pot)/1000.0)
	normStack := min(1.0, float64(chips)/1000.0)

	mult := normHand*0.4 + normPot*0.3 + normStack*0.3
	amount := int(50.0 * (1.0 + mult))
	amount += rng.IntN(11) - 5
	return max(1, amount)
}

// Straightforward plays its cards face up: raise strong hands while the cap
// allows, call medium ones, and fold the rest apart from an occasional loose
// call.
type Straightforward struct {
	StrongThreshold int
	MediumThreshold int
}

func (s *Straightforward) Name() string { return TagStraightforward }

func (s *Straightforward) Decide(rng *rand.Rand, view StrategyView) Decision {
	strength := handStrength(view.HoleCards, view.Community)
	switch {
	case strength >= s.StrongThreshold:
		if view.Chips > view.CurrentBet && view.RaiseCount < view.RaiseCap {
			return Decision{Act: Raise, RaiseBy: raiseAmount(rng, strength, view.Pot, view.Chips)}
		}
		return Decision{Act: Call}
	case strength >= s.MediumThreshold || rng.Float64() > 0.8:
		return Decision{Act: Call}
	default:
		return Decision{Act: Fold}
	}
}

// RiskTaker never folds for free and pressures whenever its stack allows.
type RiskTaker struct {
	RaiseUnit int
}

func (s *RiskTaker) Name() string { return TagRiskTaker }

func (s *RiskTaker) Decide(rng *rand.Rand, view StrategyView) Decision {
	if view.CurrentBet == 0 {
		if view.Chips > 0 {
			return Decision{Act: Call}
		}
		return Decision{Act: Fold}
	}
	strength := handStrength(view.HoleCards, view.Community)
	switch {
	case view.Chips > view.CurrentBet+s.RaiseUnit && view.RaiseCount < view.RaiseCap:
		return Decision{Act: Raise, RaiseBy: raiseAmount(rng, strength, view.Pot, view.Chips)}
	case view.Chips > view.CurrentBet:
		return Decision{Act: Call}
	default:
		return Decision{Act: AllIn}
	}
}

// Strategic blends hand strength, a fixed per-seat position score and pot
// odds into a weighted score, then raises, calls or folds against two
// thresholds. When a raise is indicated but unaffordable it shoves instead.
type Strategic struct {
	RaiseThreshold float64
	CallThreshold  float64
	RaiseUnit      int
}

func (s *Strategic) Name() string { return TagStrategic }

func (s *Strategic) Decide(rng *rand.Rand, view StrategyView) Decision {
	strength := handStrength(view.HoleCards, view.Community)
	score := float64(strength)*0.6 + float64(view.PositionScore)*0.2 + potOdds(view)*0.2

	switch {
	case score > s.RaiseThreshold:
		if view.Chips > view.CurrentBet+s.RaiseUnit && view.RaiseCount < view.RaiseCap {
			return Decision{Act: Raise, RaiseBy: raiseAmount(rng, strength, view.Pot, view.Chips)}
		}
		return Decision{Act: AllIn}
	case score > s.CallThreshold:
		return Decision{Act: Call}
	default:
		return Decision{Act: Fold}
	}
}

// potOdds is the call price relative to the pot after calling.
func potOdds(view StrategyView) float64 {
	denom := view.Pot + view.CurrentBet
	if denom <= 0 {
		return 0
	}
	return float64(view.CurrentBet-view.StreetBet) / float64(denom)
}

// Chaos samples an action from a fixed distribution and downgrades illegal
// picks to the nearest legal action.
type Chaos struct {
	RaiseUnit int
}

func (s *Chaos) Name() string { return TagChaos }

func (s *Chaos) Decide(rng *rand.Rand, view StrategyView) Decision {
	// fold 0.2, call 0.3, raise 0.3, all-in 0.2
	var pick Action
	switch r := rng.Float64(); {
	case r < 0.2:
		pick = Fold
	case r < 0.5:
		pick = Call
	case r < 0.8:
		pick = Raise
	default:
		pick = AllIn
	}

	switch pick {
	case Raise:
		if view.RaiseCount >= view.RaiseCap || view.Chips <= view.CurrentBet+s.RaiseUnit {
			if view.Chips > view.CurrentBet {
				return Decision{Act: Call}
			}
			return Decision{Act: Fold}
		}
		strength := handStrength(view.HoleCards, view.Community)
		return Decision{Act: Raise, RaiseBy: raiseAmount(rng, strength, view.Pot, view.Chips)}
	case AllIn:
		if view.Chips < view.CurrentBet {
			return Decision{Act: Fold}
		}
		return Decision{Act: AllIn}
	default:
		return Decision{Act: pick}
	}
}
