package obfs

import "math/rand/v2"

// KeySource supplies random key indexes. IntN must return a value in [0, n).
//
// *rand.Rand from math/rand/v2 satisfies this interface.
type KeySource interface {
	IntN(n int) int
}

// NewRandomKeySource returns a PCG-backed source seeded from the runtime's
// random generator. The returned source is not safe for concurrent use.
func NewRandomKeySource() KeySource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededKeySource returns a deterministic PCG-backed source.
func NewSeededKeySource(seed uint64) KeySource {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// KeySequence replays fixed key letters in order, wrapping around at the end.
//
// Letters are mapped to 'a'-relative indexes; an empty sequence always yields 'a'.
type KeySequence struct {
	keys []byte
	pos  int
}

// NewKeySequence creates a KeySequence over the given key letters.
func NewKeySequence(keys ...byte) *KeySequence {
	return &KeySequence{keys: keys}
}

// IntN returns the next key letter as an index in [0, n).
func (s *KeySequence) IntN(n int) int {
	if len(s.keys) == 0 || n <= 0 {
		return 0
	}

	k := int(s.keys[s.pos%len(s.keys)]-'a') % n
	s.pos++

	return k
}
