// Package prng implements the deterministic linear-congruential generator
// used everywhere repoglyph needs "randomness". Consumers never share a
// Source; each subsystem owns an independent instance seeded from its own
// derivation, so no implicit ordering dependency exists between them.
package prng

const (
	multiplier = 1103515245
	increment  = 12345
	modulus    = 1 << 31
)

// Source is a 31-bit linear-congruential generator.
type Source struct {
	state uint64
}

// New creates a Source. A zero or negative seed is coerced to max(1, abs(seed)).
func New(seed int64) *Source {
	if seed < 0 {
		seed = -seed
	}

	if seed == 0 {
		seed = 1
	}

	return &Source{state: uint64(seed) % modulus}
}

// Float64 advances the generator and returns a value in [0, 1).
func (s *Source) Float64() float64 {
	s.state = (multiplier*s.state + increment) % modulus

	return float64(s.state) / float64(modulus-1)
}

// IntN returns a deterministic integer in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}

	return v
}

// Range returns a deterministic value in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}
