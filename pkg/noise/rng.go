// Package noise provides a deterministic seeded PRNG and value-noise
// functions for procedural geometry generation. Every function here is a
// pure function of its seed and inputs: the same seed and call sequence
// produce identical output across runs and platforms.
package noise

// RNG is a mulberry32 pseudo-random generator. It is not safe for
// concurrent use; each sandbox evaluation owns its own RNG.
type RNG struct {
	state uint32
}

// NewRNG returns an RNG seeded with the given 32-bit seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Next advances the generator and returns the next raw 32-bit output.
func (r *RNG) Next() uint32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// Float64 returns the next output normalized to [0,1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()) / 4294967296.0
}

// hash32 mixes a 32-bit seed with integer lattice coordinates to produce a
// well-distributed 32-bit value. Used by the value-noise lattice functions
// below; it is not part of the RNG sequence itself, so noise sampling never
// perturbs an RNG's call sequence.
func hash32(seed uint32, x, y, z int32) uint32 {
	h := seed
	h ^= uint32(x) * 0x8DA6B343
	h ^= uint32(y) * 0xD8163841
	h ^= uint32(z) * 0xCB1AB31F
	h = (h ^ (h >> 15)) * (h | 1)
	h ^= h + (h^(h>>7))*(h|61)
	return h ^ (h >> 14)
}

// hashToUnit converts a lattice hash to a float32 in [-1,1].
func hashToUnit(h uint32) float32 {
	return float32(h)/float32(2147483648.0) - 1.0
}
