package randutil

import rand "math/rand/v2"

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every source of randomness in the engine (deck shuffles, AI jitter) flows
// through a *rand.Rand built here, so a fixed seed replays an identical
// session.
func New(seed int64) *rand.Rand {
	s := splitmix(uint64(seed))
	return rand.New(rand.NewPCG(s, splitmix(s)))
}

// splitmix64 finaliser, used to derive the two PCG seed words.
func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
