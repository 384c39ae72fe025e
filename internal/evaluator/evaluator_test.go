package evaluator

import (
	"testing"

	"github.com/dng3rk1d/texasholdem/internal/deck"
	"github.com/dng3rk1d/texasholdem/internal/randutil"
)

func cards(specs ...string) []deck.Card {
	out := make([]deck.Card, len(specs))
	for i, s := range specs {
		out[i] = deck.MustParseCard(s)
	}
	return out
}

func TestRankFiveCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand []string
		want Category
	}{
		{"high card", []string{"As", "Kd", "9h", "5c", "2s"}, HighCard},
		{"one pair", []string{"As", "Ad", "9h", "5c", "2s"}, OnePair},
		{"two pair", []string{"As", "Ad", "9h", "9c", "2s"}, TwoPair},
		{"three of a kind", []string{"As", "Ad", "Ah", "9c", "2s"}, ThreeOfAKind},
		{"straight", []string{"9s", "8d", "7h", "6c", "5s"}, Straight},
		{"wheel straight", []string{"As", "2d", "3h", "4c", "5s"}, Straight},
		{"flush", []string{"As", "Js", "9s", "5s", "2s"}, Flush},
		{"full house", []string{"As", "Ad", "Ah", "9c", "9s"}, FullHouse},
		{"four of a kind", []string{"As", "Ad", "Ah", "Ac", "2s"}, FourOfAKind},
		{"straight flush", []string{"9s", "8s", "7s", "6s", "5s"}, StraightFlush},
		{"steel wheel", []string{"As", "2s", "3s", "4s", "5s"}, StraightFlush},
		{"royal flush", []string{"As", "Ks", "Qs", "Js", "Ts"}, StraightFlush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RankFive(cards(tt.hand...)).Category(); got != tt.want {
				t.Errorf("category = %v, want %v", got, tt.want)
			}
		})
	}
}

// Every hand in the list must beat all hands before it.
func TestRankOrdering(t *testing.T) {
	t.Parallel()

	ladder := [][]string{
		{"7s", "5d", "4h", "3c", "2s"}, // 7-high
		{"As", "Kd", "9h", "5c", "2s"}, // ace-high
		{"2s", "2d", "4h", "5c", "7s"}, // pair of twos
		{"As", "Ad", "9h", "5c", "2s"}, // pair of aces
		{"As", "Ad", "9h", "9c", "2s"}, // aces up
		{"2s", "2d", "2h", "9c", "5s"}, // trip twos
		{"As", "2d", "3h", "4c", "5s"}, // wheel, lowest straight
		{"6s", "5d", "4h", "3c", "2s"}, // 6-high straight
		{"As", "Kd", "Qh", "Jc", "Ts"}, // broadway
		{"7s", "5s", "4s", "3s", "2s"}, // 7-high flush
		{"2s", "2d", "2h", "3c", "3s"}, // twos full of threes
		{"As", "Ad", "Ah", "Kc", "Ks"}, // aces full of kings
		{"2s", "2d", "2h", "2c", "3s"}, // quad twos
		{"As", "Ad", "Ah", "Ac", "Ks"}, // quad aces
		{"As", "2s", "3s", "4s", "5s"}, // steel wheel
		{"As", "Ks", "Qs", "Js", "Ts"}, // royal flush
	}

	prev := HandRank(0)
	for i, hand := range ladder {
		rank := RankFive(cards(hand...))
		if Compare(rank, prev) != 1 {
			t.Errorf("hand %d (%v, rank %v) should beat hand %d", i, hand, rank, i-1)
		}
		prev = rank
	}
}

func TestWheelIsFiveHigh(t *testing.T) {
	t.Parallel()

	wheel := RankFive(cards("As", "2d", "3h", "4c", "5s"))
	if wheel.Category() != Straight {
		t.Fatalf("wheel category = %v, want Straight", wheel.Category())
	}
	if wheel.Tiebreak(0) != int(deck.Five) {
		t.Errorf("wheel high card = %d, want %d", wheel.Tiebreak(0), int(deck.Five))
	}

	sixHigh := RankFive(cards("6s", "5d", "4h", "3c", "2s"))
	if Compare(sixHigh, wheel) != 1 {
		t.Error("six-high straight should beat the wheel")
	}
}

func TestFullHouseTripleDecides(t *testing.T) {
	t.Parallel()

	acesFull := RankFive(cards("As", "Ad", "Ah", "2c", "2s"))
	kingsFull := RankFive(cards("Ks", "Kd", "Kh", "Ac", "Ah"))
	if Compare(acesFull, kingsFull) != 1 {
		t.Error("aces full of twos should beat kings full of aces")
	}
}

func TestKickersBreakTies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
	}{
		{
			"pair kicker",
			[]string{"As", "Ad", "Kh", "5c", "2s"},
			[]string{"Ah", "Ac", "Qh", "5d", "2d"},
		},
		{
			"two pair kicker",
			[]string{"As", "Ad", "9h", "9c", "Ks"},
			[]string{"Ah", "Ac", "9s", "9d", "Qs"},
		},
		{
			"quads kicker",
			[]string{"As", "Ad", "Ah", "Ac", "Ks"},
			[]string{"As", "Ad", "Ah", "Ac", "Qs"},
		},
		{
			"flush second card",
			[]string{"As", "Ks", "9s", "5s", "2s"},
			[]string{"Ah", "Qh", "9h", "5h", "2h"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if Compare(RankFive(cards(tt.a...)), RankFive(cards(tt.b...))) != 1 {
				t.Errorf("%v should beat %v", tt.a, tt.b)
			}
		})
	}
}

func TestIdenticalRanksTie(t *testing.T) {
	t.Parallel()

	a := RankFive(cards("As", "Kd", "Qh", "Jc", "9s"))
	b := RankFive(cards("Ah", "Kc", "Qs", "Jd", "9h"))
	if Compare(a, b) != 0 {
		t.Error("same ranks in different suits should tie")
	}
}

func TestHandText(t *testing.T) {
	t.Parallel()

	if got := RankFive(cards("As", "Ks", "Qs", "Js", "Ts")).String(); got != "Royal Flush" {
		t.Errorf("ace-high straight flush reads %q, want Royal Flush", got)
	}
	if got := RankFive(cards("9s", "8s", "7s", "6s", "5s")).String(); got != "Straight Flush" {
		t.Errorf("nine-high straight flush reads %q", got)
	}
	if got := RankFive(cards("As", "Ad", "Ah", "9c", "9s")).String(); got != "Full House" {
		t.Errorf("full house reads %q", got)
	}
}

func TestEvaluateSevenPicksBestFive(t *testing.T) {
	t.Parallel()

	// Hole cards add nothing: the board's broadway straight plays.
	board := cards("As", "Kd", "Qh", "Jc", "Ts", "2d", "3c")
	rank := Evaluate(board)
	if rank.Category() != Straight || rank.Tiebreak(0) != int(deck.Ace) {
		t.Errorf("got %v (high %d), want ace-high straight", rank.Category(), rank.Tiebreak(0))
	}

	// Flush hidden across hole and board.
	flush := Evaluate(cards("Ah", "7h", "Kh", "2h", "9h", "Ks", "Kd"))
	if flush.Category() != Flush {
		t.Errorf("got %v, want Flush over trip kings", flush.Category())
	}
}

// Evaluate must agree with a brute-force scan of every five-card subset.
func TestEvaluateMatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := randutil.New(99)
	for trial := 0; trial < 200; trial++ {
		d := deck.New(rng)
		seven, err := d.DealN(7)
		if err != nil {
			t.Fatal(err)
		}

		var best HandRank
		idx := [5]int{}
		for idx[0] = 0; idx[0] < 7; idx[0]++ {
			for idx[1] = idx[0] + 1; idx[1] < 7; idx[1]++ {
				for idx[2] = idx[1] + 1; idx[2] < 7; idx[2]++ {
					for idx[3] = idx[2] + 1; idx[3] < 7; idx[3]++ {
						for idx[4] = idx[3] + 1; idx[4] < 7; idx[4]++ {
							hand := []deck.Card{
								seven[idx[0]], seven[idx[1]], seven[idx[2]],
								seven[idx[3]], seven[idx[4]],
							}
							if r := RankFive(hand); r > best {
								best = r
							}
						}
					}
				}
			}
		}

		if got := Evaluate(seven); got != best {
			t.Fatalf("trial %d: Evaluate = %v, brute force = %v (cards %v)",
				trial, got, best, seven)
		}
	}
}

func TestEvaluateCardCountBounds(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 4, 8} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Evaluate with %d cards should panic", n)
				}
			}()
			Evaluate(make([]deck.Card, n))
		}()
	}
}
