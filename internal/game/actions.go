package game

// Street represents the betting phase of a hand. Streets advance linearly
// from Preflop to Showdown and never move backwards.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}
