package game

import (
	"reflect"
	"testing"
)

func potTotal(pots []SidePot) int {
	total := 0
	for _, p := range pots {
		total += p.Amount
	}
	return total
}

func TestSidePotsSingleLevel(t *testing.T) {
	t.Parallel()

	players := []*Player{
		{Seat: 0},
		{Seat: 1},
		{Seat: 2},
	}
	contributions := map[int]int{0: 100, 1: 100, 2: 100}

	pots := BuildSidePots(players, contributions)
	if len(pots) != 1 {
		t.Fatalf("equal contributions should make 1 pot, got %d", len(pots))
	}
	if pots[0].Amount != 300 {
		t.Errorf("pot amount = %d, want 300", pots[0].Amount)
	}
	if !reflect.DeepEqual(pots[0].Eligible, []int{0, 1, 2}) {
		t.Errorf("eligible = %v, want all three seats", pots[0].Eligible)
	}
}

func TestSidePotsThreeWayAllIn(t *testing.T) {
	t.Parallel()

	// Stacks of 100, 300 and 500 all-in: a 300 main pot everyone can win,
	// a 400 side pot for the two bigger stacks, and 200 back to the cover.
	players := []*Player{
		{Seat: 0},
		{Seat: 1},
		{Seat: 2},
	}
	contributions := map[int]int{0: 100, 1: 300, 2: 500}

	pots := BuildSidePots(players, contributions)
	if len(pots) != 3 {
		t.Fatalf("expected 3 pots, got %d", len(pots))
	}

	wantAmounts := []int{300, 400, 200}
	wantEligible := [][]int{{0, 1, 2}, {1, 2}, {2}}
	for i, pot := range pots {
		if pot.Amount != wantAmounts[i] {
			t.Errorf("pot %d amount = %d, want %d", i, pot.Amount, wantAmounts[i])
		}
		if !reflect.DeepEqual(pot.Eligible, wantEligible[i]) {
			t.Errorf("pot %d eligible = %v, want %v", i, pot.Eligible, wantEligible[i])
		}
	}
	if potTotal(pots) != 900 {
		t.Errorf("pots hold %d chips, want 900", potTotal(pots))
	}
}

func TestSidePotsFoldedMoneyStaysIn(t *testing.T) {
	t.Parallel()

	// A folded player's chips are clipped into the tiers they span but the
	// seat is never eligible.
	players := []*Player{
		{Seat: 0},
		{Seat: 1, Folded: true},
		{Seat: 2},
	}
	contributions := map[int]int{0: 100, 1: 60, 2: 100}

	pots := BuildSidePots(players, contributions)
	if len(pots) != 1 {
		t.Fatalf("expected 1 pot, got %d", len(pots))
	}
	if pots[0].Amount != 260 {
		t.Errorf("pot amount = %d, want 260", pots[0].Amount)
	}
	if !reflect.DeepEqual(pots[0].Eligible, []int{0, 2}) {
		t.Errorf("eligible = %v, want the two live seats", pots[0].Eligible)
	}
}

func TestSidePotsFoldedAboveTopLiveLevel(t *testing.T) {
	t.Parallel()

	// Dead money beyond the largest live contribution is swept into the
	// final pot so no chip ever disappears.
	players := []*Player{
		{Seat: 0},
		{Seat: 1, Folded: true},
		{Seat: 2},
	}
	contributions := map[int]int{0: 50, 1: 200, 2: 120}

	pots := BuildSidePots(players, contributions)
	if len(pots) != 2 {
		t.Fatalf("expected 2 pots, got %d", len(pots))
	}
	// Tier to 50: 50+50+50 = 150. Tier to 120: 70 (seat 2) + 70 (seat 1)
	// = 140, plus seat 1's 80 above the top live level.
	if pots[0].Amount != 150 {
		t.Errorf("main pot = %d, want 150", pots[0].Amount)
	}
	if pots[1].Amount != 220 {
		t.Errorf("side pot = %d, want 220", pots[1].Amount)
	}
	if !reflect.DeepEqual(pots[1].Eligible, []int{2}) {
		t.Errorf("side pot eligible = %v, want just seat 2", pots[1].Eligible)
	}
	if got := potTotal(pots); got != 370 {
		t.Errorf("pots hold %d chips, want all 370 contributed", got)
	}
}

func TestSidePotsAllFolded(t *testing.T) {
	t.Parallel()

	players := []*Player{
		{Seat: 0, Folded: true},
		{Seat: 1, Folded: true},
	}
	if pots := BuildSidePots(players, map[int]int{0: 10, 1: 20}); pots != nil {
		t.Errorf("no live contributions should yield no pots, got %v", pots)
	}
}

func TestSidePotsZeroContributionsIgnored(t *testing.T) {
	t.Parallel()

	players := []*Player{
		{Seat: 0},
		{Seat: 1},
		{Seat: 2},
	}
	contributions := map[int]int{0: 0, 1: 40, 2: 40}

	pots := BuildSidePots(players, contributions)
	if len(pots) != 1 {
		t.Fatalf("expected 1 pot, got %d", len(pots))
	}
	if !reflect.DeepEqual(pots[0].Eligible, []int{1, 2}) {
		t.Errorf("seat with no chips in should not be eligible, got %v", pots[0].Eligible)
	}
}
