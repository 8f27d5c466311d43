// Package procgen holds the deterministic building blocks shared by every
// generator: the seeded linear-congruential stream, weighted sampling, name
// composition and HSL colours.
package procgen

import "math"

const (
	lcgMultiplier int64 = 9301
	lcgIncrement  int64 = 49297
	lcgModulus    int64 = 233280
)

// Random is a linear-congruential stream producing values in [0,1).
//
// A Random is not safe for concurrent use. Generators never share one:
// each call builds its own stream from seed arithmetic.
type Random struct {
	seed  int64
	state int64
}

// New returns an independent stream for seed. Any int64 is accepted; the
// state is reduced into [0, 233280) up front so the per-step product can
// never overflow.
func New(seed int64) *Random {
	return &Random{seed: seed, state: mod(seed, lcgModulus)}
}

// Next advances the state by exactly one step and returns state/233280.
func (r *Random) Next() float64 {
	r.state = (r.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.state) / float64(lcgModulus)
}

// Seed returns the seed the stream was created from.
func (r *Random) Seed() int64 {
	return r.seed
}

// Intn returns floor(Next()*n). It returns 0 without advancing when n <= 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() * float64(n))
}

// Range returns lo + Next()*(hi-lo).
func (r *Random) Range(lo, hi float64) float64 {
	// The conversion stops the compiler fusing into an FMA on arm64, which
	// would change the last bits of the result between platforms.
	return lo + float64(r.Next()*(hi-lo))
}

// RoundTenth rounds v to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func mod(a, m int64) int64 {
	v := a % m
	if v < 0 {
		v += m
	}
	return v
}
