package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14) but count as low (1)
// when completing a wheel straight.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card. Cards are immutable values and are always
// copied, never shared.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Value returns the numeric value of the card for comparison
func (c Card) Value() int {
	return int(c.Rank)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two-character card string like "As" or "Td".
// The suit letter is one of s, h, d, c.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want rank and suit", s)
	}

	var rank Rank
	switch s[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(s[0] - '0')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank %q", s[0])
	}

	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit %q", s[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard is ParseCard that panics on error, for tests and fixtures.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}
