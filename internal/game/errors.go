package game

import "errors"

// Rejected commands leave the game state untouched; callers may surface the
// error or treat the command as a no-op.
var (
	// ErrNotYourTurn is returned for a command issued for a seat that is
	// not the currently active human seat.
	ErrNotYourTurn = errors.New("game: not awaiting input for that seat")

	// ErrRaiseCapReached is returned when the street's raise limit has
	// been reached and a further raise is attempted.
	ErrRaiseCapReached = errors.New("game: raise cap reached for this street")

	// ErrHandComplete is returned for commands issued after the hand has
	// been settled.
	ErrHandComplete = errors.New("game: hand is complete")

	// ErrHandInProgress is returned when a new hand is started before the
	// current one has settled.
	ErrHandInProgress = errors.New("game: hand already in progress")
)
