package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when a card is requested from an exhausted deck.
// With at most ten players a hand draws at most 25 cards, so seeing this
// error indicates an engine bug rather than a recoverable condition.
var ErrEmptyDeck = errors.New("deck: no cards remaining")

// Deck owns an ordered draw pile of the 52 distinct cards.
type Deck struct {
	cards []Card
}

// New builds a full 52-card deck shuffled with the provided RNG.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// NewStacked builds an unshuffled deck that deals the given cards in order,
// for deterministic tests. The remaining cards follow in suit/rank order.
func NewStacked(top ...Card) *Deck {
	seen := make(map[Card]bool, len(top))
	cards := make([]Card, 0, 52)
	cards = append(cards, top...)
	for _, c := range top {
		seen[c] = true
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			if !seen[c] {
				cards = append(cards, c)
			}
		}
	}
	return &Deck{cards: cards}
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Deal removes and returns the top card.
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// DealN deals n cards from the deck.
func (d *Deck) DealN(n int) ([]Card, error) {
	if len(d.cards) < n {
		return nil, ErrEmptyDeck
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}
