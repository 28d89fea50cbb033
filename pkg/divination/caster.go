package divination

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
)

// Caster produces random figures with the three-coin method. It owns its
// random source; one Caster serves one invocation and needs no locking.
type Caster struct {
	rng *mathrand.Rand
}

// NewCaster returns a Caster backed by src, or by a freshly seeded PCG
// source when src is nil. Tests inject a fixed-seed source to make
// casting deterministic.
func NewCaster(src mathrand.Source) *Caster {
	if src == nil {
		var seed [16]byte
		_, _ = rand.Read(seed[:])
		src = mathrand.NewPCG(
			binary.LittleEndian.Uint64(seed[:8]),
			binary.LittleEndian.Uint64(seed[8:]),
		)
	}
	return &Caster{rng: mathrand.New(src)}
}

// Cast draws a complete figure, bottom line first.
func (c *Caster) Cast() Hexagram {
	var h Hexagram
	for i := range h {
		h[i] = c.castLine()
	}
	return h
}

// castLine tosses three fair coins, each contributing 2 (tails) or
// 3 (heads). The sums land on 6..9 with probabilities 1/8, 3/8, 3/8, 1/8.
func (c *Caster) castLine() Line {
	sum := 0
	for range 3 {
		if c.rng.IntN(2) == 1 {
			sum += 3
		} else {
			sum += 2
		}
	}
	line, err := LineFromCode(sum)
	if err != nil {
		// Three coins cannot sum outside 6..9.
		panic(err)
	}
	return line
}

// FromCodes builds a figure from six explicit line codes. It fails with
// *InvalidLineCodeError on the first code outside {6,7,8,9} and returns
// no partial figure.
func FromCodes(codes [6]int) (Hexagram, error) {
	var h Hexagram
	for i, code := range codes {
		line, err := LineFromCode(code)
		if err != nil {
			return Hexagram{}, err
		}
		h[i] = line
	}
	return h, nil
}
