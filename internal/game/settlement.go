package game

import (
	"time"

	"github.com/dng3rk1d/texasholdem/internal/deck"
	"github.com/dng3rk1d/texasholdem/internal/evaluator"
)

// settleFoldWin awards the whole pot to the last non-folded player without a
// showdown. Hole cards stay hidden.
func (g *Game) settleFoldWin(winner *Player) error {
	pot := g.state.Pot
	winner.Chips += pot
	g.state.Street = Showdown
	g.state.Active = -1
	g.complete = true

	g.logger.Info("hand won by fold",
		"hand", g.handNum, "winner", winner.Name, "pot", pot)
	g.bus.Publish(HandEndEvent{
		HandNum: g.handNum,
		Pots: []PotAwarded{{
			Amount:  pot,
			Winners: []int{winner.Seat},
			Share:   pot,
			ByFold:  true,
		}},
		Community: append([]deck.Card(nil), g.state.Community...),
		timestamp: time.Now(),
	})
	return g.validateChips()
}

// settleShowdown forms the side pots from the contribution ledger, finds
// each pot's best hand among its contenders, and splits ties evenly by
// integer division. Remainders from indivisible splits are dropped, not
// awarded; they are tracked so chip accounting still balances.
func (g *Game) settleShowdown() error {
	g.state.Street = Showdown
	g.state.Active = -1

	ranks := make(map[int]evaluator.HandRank)
	revealed := make(map[int][]deck.Card)
	for _, p := range g.players {
		if p.Folded {
			continue
		}
		cards := make([]deck.Card, 0, 7)
		cards = append(cards, p.HoleCards...)
		cards = append(cards, g.state.Community...)
		ranks[p.Seat] = evaluator.Evaluate(cards)
		revealed[p.Seat] = append([]deck.Card(nil), p.HoleCards...)
	}

	pots := BuildSidePots(g.players, g.state.Contributions)
	awarded := make([]PotAwarded, 0, len(pots))
	for _, pot := range pots {
		var best evaluator.HandRank
		var winners []int
		for _, seat := range pot.Eligible {
			rank, ok := ranks[seat]
			if !ok {
				continue
			}
			switch evaluator.Compare(rank, best) {
			case 1:
				best = rank
				winners = []int{seat}
			case 0:
				winners = append(winners, seat)
			}
		}
		if len(winners) == 0 {
			// Dead pot with no contenders; nothing to award.
			continue
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount - share*len(winners)
		g.dropped += remainder
		if remainder > 0 {
			g.logger.Warn("indivisible split, remainder dropped",
				"hand", g.handNum, "pot", pot.Amount, "winners", len(winners))
		}
		for _, seat := range winners {
			g.players[seat].Chips += share
		}

		g.logger.Info("pot awarded", "hand", g.handNum,
			"amount", pot.Amount, "winners", winners, "hand_text", best.String())
		awarded = append(awarded, PotAwarded{
			Amount:   pot.Amount,
			Winners:  winners,
			Share:    share,
			HandText: best.String(),
		})
	}

	g.complete = true
	g.bus.Publish(HandEndEvent{
		HandNum:   g.handNum,
		Pots:      awarded,
		Community: append([]deck.Card(nil), g.state.Community...),
		Revealed:  revealed,
		timestamp: time.Now(),
	})
	return g.validateChips()
}
