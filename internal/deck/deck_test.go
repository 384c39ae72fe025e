package deck

import (
	"errors"
	"testing"

	"github.com/dng3rk1d/texasholdem/internal/randutil"
)

func TestFullDeckIsUnique(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	if d.Remaining() != 52 {
		t.Fatalf("fresh deck should hold 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := d.Deal()
		if err != nil {
			t.Fatalf("deal %d: %v", i, err)
		}
		if seen[card] {
			t.Errorf("card %s dealt twice", card)
		}
		seen[card] = true
	}

	if _, err := d.Deal(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("dealing from empty deck should return ErrEmptyDeck, got %v", err)
	}
}

func TestDealNExhaustion(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(7))
	if _, err := d.DealN(50); err != nil {
		t.Fatalf("DealN(50): %v", err)
	}
	if _, err := d.DealN(3); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("DealN past the end should return ErrEmptyDeck, got %v", err)
	}
}

func TestShuffleDeterministicBySeed(t *testing.T) {
	t.Parallel()

	a := New(randutil.New(42))
	b := New(randutil.New(42))
	c := New(randutil.New(43))

	sameAsA := true
	sameAsC := true
	for i := 0; i < 52; i++ {
		ca, _ := a.Deal()
		cb, _ := b.Deal()
		cc, _ := c.Deal()
		if ca != cb {
			sameAsA = false
		}
		if ca != cc {
			sameAsC = false
		}
	}
	if !sameAsA {
		t.Error("same seed should produce the same shuffle")
	}
	if sameAsC {
		t.Error("different seeds should produce different shuffles")
	}
}

func TestStackedDeckOrder(t *testing.T) {
	t.Parallel()

	top := []Card{
		MustParseCard("As"),
		MustParseCard("Kd"),
		MustParseCard("2c"),
	}
	d := NewStacked(top...)
	for i, want := range top {
		got, err := d.Deal()
		if err != nil {
			t.Fatalf("deal %d: %v", i, err)
		}
		if got != want {
			t.Errorf("deal %d = %s, want %s", i, got, want)
		}
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Card
		wantErr bool
	}{
		{in: "As", want: NewCard(Ace, Spades)},
		{in: "ah", want: NewCard(Ace, Hearts)},
		{in: "Td", want: NewCard(Ten, Diamonds)},
		{in: "tC", want: NewCard(Ten, Clubs)},
		{in: "2c", want: NewCard(Two, Clubs)},
		{in: "10c", wantErr: true},
		{in: "Kx", wantErr: true},
		{in: "Zs", wantErr: true},
		{in: "", wantErr: true},
		{in: "Aces", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCard(%q) should fail, got %s", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCard(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCardDisplay(t *testing.T) {
	t.Parallel()

	if got := NewCard(Ace, Spades).String(); got != "A♠" {
		t.Errorf("ace of spades renders as %q", got)
	}
	if got := NewCard(Ten, Hearts).String(); got != "T♥" {
		t.Errorf("ten of hearts renders as %q", got)
	}
	if !NewCard(Two, Diamonds).IsRed() {
		t.Error("diamonds should be red")
	}
	if NewCard(Two, Clubs).IsRed() {
		t.Error("clubs should not be red")
	}
}
