package riasec

import "unicode/utf16"

// Hash32 hashes s with a DJB2 variant (h = h*33 ^ c) over UTF-16 code
// units, wrapping at 32 bits.
func Hash32(s string) uint32 {
	h := uint32(5381)
	for _, c := range utf16.Encode([]rune(s)) {
		h = ((h << 5) + h) ^ uint32(c)
	}
	return h
}

// RNG is a mulberry32 generator. Each instance owns its state and must not
// be shared between unrelated shuffles.
type RNG struct {
	state uint32
}

// NewRNG returns a generator seeded with seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// NewRNGFor returns a generator seeded from Hash32(input).
func NewRNGFor(input string) *RNG {
	return NewRNG(Hash32(input))
}

// Uint32 advances the generator and returns the next 32-bit output.
func (r *RNG) Uint32() uint32 {
	r.state += 0x6d2b79f5
	a := r.state
	t := (a ^ (a >> 15)) * (1 | a)
	t = (t + (t^(t>>7))*(61|t)) ^ t
	return t ^ (t >> 14)
}

// Float64 returns the next value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint32()) / 4294967296
}

// Intn returns a value in [0, n) derived from Float64. n must be positive.
func (r *RNG) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// Shuffle permutes items in place with Fisher-Yates, walking from the last
// index down to 1.
func Shuffle[T any](items []T, rng *RNG) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
