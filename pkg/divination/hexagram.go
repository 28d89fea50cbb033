package divination

// Hexagram is a figure of six lines, indexed 0..5 from bottom to top.
// Index i corresponds to traditional line number i+1.
type Hexagram [6]Line

// Number encodes the figure as its canonical number in [1, 64]: each
// polarity is a bit (yang = 1) read least-significant-first from the
// bottom line, plus one.
//
// NOTE: this binary ordering is the tool's own convention, not the King
// Wen sequence. It must stay bit-for-bit stable; downstream notations
// (glyph lookups, transitions) are defined against it.
func (h Hexagram) Number() int {
	n := 0
	for i, line := range h {
		if line.Polarity == Yang {
			n |= 1 << i
		}
	}
	return n + 1
}

// FromNumber decodes a hexagram number into a figure of all young lines,
// polarity bits taken LSB-first from number-1.
func FromNumber(number int) (Hexagram, error) {
	if number < 1 || number > 64 {
		return Hexagram{}, &OutOfRangeError{Value: number}
	}
	bits := number - 1
	var h Hexagram
	for i := range h {
		polarity := Yin
		if bits>>i&1 == 1 {
			polarity = Yang
		}
		h[i] = Line{Age: Young, Polarity: polarity}
	}
	return h, nil
}

// Upper returns the polarities of the upper trigram (lines 4..6).
func (h Hexagram) Upper() [3]Polarity {
	return [3]Polarity{h[3].Polarity, h[4].Polarity, h[5].Polarity}
}

// Lower returns the polarities of the lower trigram (lines 1..3).
func (h Hexagram) Lower() [3]Polarity {
	return [3]Polarity{h[0].Polarity, h[1].Polarity, h[2].Polarity}
}

// ChangingPositions returns the 1-indexed positions of all old lines,
// ascending. Empty when the figure is static.
func (h Hexagram) ChangingPositions() []int {
	var positions []int
	for i, line := range h {
		if line.Changing() {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// HasChangingLines reports whether any line is old.
func (h Hexagram) HasChangingLines() bool {
	for _, line := range h {
		if line.Changing() {
			return true
		}
	}
	return false
}

// Transform applies the transformation rule to every line. With no
// changing lines the result equals the receiver; callers that care about
// the distinction should check HasChangingLines first.
func (h Hexagram) Transform() Hexagram {
	var out Hexagram
	for i, line := range h {
		out[i] = line.Transform()
	}
	return out
}

// Codes returns the traditional numeric codes of all six lines,
// bottom to top.
func (h Hexagram) Codes() [6]int {
	var codes [6]int
	for i, line := range h {
		codes[i] = line.Code()
	}
	return codes
}
