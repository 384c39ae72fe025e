// Package pacer spaces out automated table actions so observers can follow
// the play. Pacing is purely presentational: the engine never waits on a
// clock, so callers decide whether and how much to delay between steps.
package pacer

import (
	"context"
	rand "math/rand/v2"
	"time"

	"github.com/coder/quartz"
)

// Pacer waits a jittered delay between automated actions.
type Pacer struct {
	clock quartz.Clock
	rng   *rand.Rand
	min   time.Duration
	max   time.Duration
}

// New creates a pacer sleeping between min and max per step. The clock is
// injectable so tests can use a mock instead of wall time.
func New(clock quartz.Clock, rng *rand.Rand, min, max time.Duration) *Pacer {
	if max < min {
		max = min
	}
	return &Pacer{clock: clock, rng: rng, min: min, max: max}
}

// Wait blocks for one pacing delay or until the context is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	d := p.min
	if p.max > p.min {
		d += time.Duration(p.rng.Int64N(int64(p.max - p.min)))
	}
	timer := p.clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
