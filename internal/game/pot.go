package game

import "sort"

// SidePot is one tier of the pot. Eligible lists the seats that contributed
// at least this tier's level and had not folded when the hand was settled.
type SidePot struct {
	Amount   int
	Eligible []int
}

// BuildSidePots partitions the hand's contribution ledger into pot tiers,
// one per distinct contribution level among non-folded players.
//
// Every chip in the ledger lands in exactly one tier: each player's
// contribution, folded or not, is clipped into the tiers it spans, and any
// dead money above the top live level is swept into the last tier. The sum
// of all tier amounts therefore always equals the sum of all contributions.
//
// Returns no pots if no non-folded player has a positive contribution.
func BuildSidePots(players []*Player, contributions map[int]int) []SidePot {
	levels := make([]int, 0, len(players))
	seen := make(map[int]bool)
	for _, p := range players {
		c := contributions[p.Seat]
		if p.Folded || c <= 0 || seen[c] {
			continue
		}
		levels = append(levels, c)
		seen[c] = true
	}
	if len(levels) == 0 {
		return nil
	}
	sort.Ints(levels)

	pots := make([]SidePot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := SidePot{}
		for _, p := range players {
			c := contributions[p.Seat] - prev
			if c <= 0 {
				continue
			}
			if c > level-prev {
				c = level - prev
			}
			pot.Amount += c
			if !p.Folded && contributions[p.Seat] >= level {
				pot.Eligible = append(pot.Eligible, p.Seat)
			}
		}
		pots = append(pots, pot)
		prev = level
	}

	// Dead money from folded seats that contributed beyond the top live
	// level still belongs to the pot.
	for _, p := range players {
		if extra := contributions[p.Seat] - prev; extra > 0 {
			pots[len(pots)-1].Amount += extra
		}
	}

	return pots
}
