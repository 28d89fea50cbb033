package divination

// Age distinguishes stable lines from changing ones.
type Age int

const (
	// Young lines are stable: they survive a transform unchanged.
	Young Age = iota
	// Old lines are changing: a transform flips their polarity.
	Old
)

// Polarity is the binary state of a line.
type Polarity int

const (
	Yin Polarity = iota
	Yang
)

func (p Polarity) String() string {
	if p == Yang {
		return "Yang"
	}
	return "Yin"
}

// Line is one of the six stacked symbols forming a hexagram.
// It is an immutable value; methods return new values.
type Line struct {
	Age      Age
	Polarity Polarity
}

// LineFromCode builds a Line from its traditional numeric code.
//
// The three-coin method assigns: 6 = old yin, 7 = young yang,
// 8 = young yin, 9 = old yang.
func LineFromCode(code int) (Line, error) {
	switch code {
	case 6:
		return Line{Age: Old, Polarity: Yin}, nil
	case 7:
		return Line{Age: Young, Polarity: Yang}, nil
	case 8:
		return Line{Age: Young, Polarity: Yin}, nil
	case 9:
		return Line{Age: Old, Polarity: Yang}, nil
	default:
		return Line{}, &InvalidLineCodeError{Code: code}
	}
}

// Code returns the traditional numeric code (6, 7, 8 or 9).
func (l Line) Code() int {
	switch {
	case l.Age == Old && l.Polarity == Yin:
		return 6
	case l.Age == Young && l.Polarity == Yang:
		return 7
	case l.Age == Young && l.Polarity == Yin:
		return 8
	default: // Old Yang
		return 9
	}
}

// Changing reports whether the line is old.
func (l Line) Changing() bool {
	return l.Age == Old
}

// Transform returns the line after the figure transforms: an old line
// flips polarity and settles into a young one, a young line is unchanged.
func (l Line) Transform() Line {
	if l.Age != Old {
		return l
	}
	flipped := Yang
	if l.Polarity == Yang {
		flipped = Yin
	}
	return Line{Age: Young, Polarity: flipped}
}

// Symbol renders the line in traditional notation. Changing lines carry
// their marker (○ for old yang, × for old yin).
func (l Line) Symbol() string {
	switch {
	case l.Age == Young && l.Polarity == Yang:
		return "━━━━━━"
	case l.Age == Young && l.Polarity == Yin:
		return "━━  ━━"
	case l.Age == Old && l.Polarity == Yang:
		return "━━━━━━ ○"
	default: // Old Yin
		return "━━  ━━ ×"
	}
}
