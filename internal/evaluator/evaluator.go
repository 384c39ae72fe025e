// Package evaluator ranks poker hands. A HandRank is a single uint32 whose
// integer order matches the lexicographic order of the (category, tiebreaks)
// tuple, so hands compare with plain < and ==.
package evaluator

import (
	"math/bits"
	"sort"

	"github.com/dng3rk1d/texasholdem/internal/deck"
)

// Category is the hand category, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank encodes a hand's strength. The category occupies bits 20-23 and
// up to five tiebreak ranks are packed below it as descending nibbles, so a
// straight flush stores only its high card while a high-card hand stores all
// five ranks.
type HandRank uint32

// pack builds a HandRank from a category and its tiebreak ranks, most
// significant first.
func pack(cat Category, tiebreaks ...int) HandRank {
	r := HandRank(cat) << 20
	shift := 16
	for _, t := range tiebreaks {
		r |= HandRank(t) << shift
		shift -= 4
	}
	return r
}

// Category returns the hand category.
func (hr HandRank) Category() Category {
	return Category(hr >> 20)
}

// Tiebreak returns the i-th tiebreak rank (0 is the most significant).
func (hr HandRank) Tiebreak(i int) int {
	return int(hr>>(16-4*i)) & 0xF
}

// String returns the display text for the hand. A straight flush topped by
// an Ace reads as "Royal Flush".
func (hr HandRank) String() string {
	cat := hr.Category()
	if cat == StraightFlush && hr.Tiebreak(0) == int(deck.Ace) {
		return "Royal Flush"
	}
	return cat.String()
}

// Compare returns 1 if a beats b, -1 if b beats a, and 0 on a true tie.
func Compare(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// RankFive ranks exactly five cards.
func RankFive(cards []deck.Card) HandRank {
	if len(cards) != 5 {
		panic("evaluator: RankFive requires exactly 5 cards")
	}

	values := make([]int, 5)
	counts := make(map[int]int, 5)
	flush := true
	for i, c := range cards {
		values[i] = c.Value()
		counts[c.Value()]++
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	unique := make([]int, 0, 5)
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			unique = append(unique, v)
		}
	}
	straight := straightHigh(unique)

	// Four of a kind
	if quad := highestWithCount(counts, 4); quad > 0 {
		kicker := highestExcept(values, quad)
		return pack(FourOfAKind, quad, kicker)
	}

	// Full house: the highest triple wins the tiebreak, then the pair
	if trips := highestWithCount(counts, 3); trips > 0 {
		if pair := highestPairExcept(counts, trips); pair > 0 {
			return pack(FullHouse, trips, pair)
		}
	}

	if flush {
		if straight > 0 {
			return pack(StraightFlush, straight)
		}
		return pack(Flush, values...)
	}

	if straight > 0 {
		return pack(Straight, straight)
	}

	if trips := highestWithCount(counts, 3); trips > 0 {
		kickers := kickersExcept(values, 2, trips)
		return pack(ThreeOfAKind, append([]int{trips}, kickers...)...)
	}

	pairs := pairValues(counts)
	if len(pairs) >= 2 {
		kicker := highestExcept(values, pairs[0], pairs[1])
		return pack(TwoPair, pairs[0], pairs[1], kicker)
	}
	if len(pairs) == 1 {
		kickers := kickersExcept(values, 3, pairs[0])
		return pack(OnePair, append([]int{pairs[0]}, kickers...)...)
	}

	return pack(HighCard, values...)
}

// Evaluate returns the best five-card rank from 5 to 7 cards, checking every
// five-card combination. With seven cards that is C(7,5) = 21 subsets; the
// best hand need not use both hole cards.
func Evaluate(cards []deck.Card) HandRank {
	n := len(cards)
	if n < 5 || n > 7 {
		panic("evaluator: Evaluate requires 5 to 7 cards")
	}
	if n == 5 {
		return RankFive(cards)
	}

	var best HandRank
	subset := make([]deck.Card, 5)
	for mask := 0; mask < 1<<n; mask++ {
		if bits.OnesCount(uint(mask)) != 5 {
			continue
		}
		k := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset[k] = cards[i]
				k++
			}
		}
		if r := RankFive(subset); r > best {
			best = r
		}
	}
	return best
}

// straightHigh scans descending distinct values for a run of five and
// returns the high card of the best run, or 0 if there is no straight.
// An Ace also counts as 1 so the wheel (A-2-3-4-5) ranks as a 5-high
// straight.
func straightHigh(unique []int) int {
	vals := unique
	if len(vals) > 0 && vals[0] == int(deck.Ace) {
		vals = append(append([]int{}, vals...), 1)
	}
	run := 1
	for i := 1; i < len(vals); i++ {
		if vals[i] == vals[i-1]-1 {
			run++
			if run == 5 {
				return vals[i] + 4
			}
		} else {
			run = 1
		}
	}
	return 0
}

// highestWithCount returns the highest value appearing exactly n times,
// or 0 if none does.
func highestWithCount(counts map[int]int, n int) int {
	best := 0
	for v, c := range counts {
		if c == n && v > best {
			best = v
		}
	}
	return best
}

// highestPairExcept returns the highest value with at least a pair,
// excluding the given triple value.
func highestPairExcept(counts map[int]int, except int) int {
	best := 0
	for v, c := range counts {
		if v != except && c >= 2 && v > best {
			best = v
		}
	}
	return best
}

// pairValues returns the values paired exactly twice, descending.
func pairValues(counts map[int]int) []int {
	var pairs []int
	for v, c := range counts {
		if c == 2 {
			pairs = append(pairs, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return pairs
}

// highestExcept returns the highest of values not among the excluded ones.
func highestExcept(values []int, except ...int) int {
	for _, v := range values {
		excluded := false
		for _, e := range except {
			if v == e {
				excluded = true
				break
			}
		}
		if !excluded {
			return v
		}
	}
	return 0
}

// kickersExcept returns the top n values, descending, skipping excluded ones.
func kickersExcept(values []int, n int, except ...int) []int {
	kickers := make([]int, 0, n)
	for _, v := range values {
		excluded := false
		for _, e := range except {
			if v == e {
				excluded = true
				break
			}
		}
		if !excluded {
			kickers = append(kickers, v)
			if len(kickers) == n {
				break
			}
		}
	}
	return kickers
}
