// Package interpret resolves free-form text into a divination figure.
//
// Four notations are understood, tried in a fixed priority order:
// a source→target transition, a hexagram number, a single hexagram glyph,
// and six comma-separated line codes. The first notation whose structural
// preconditions hold wins; once a notation is committed, its own errors
// (range, invalid codes) surface instead of falling through.
package interpret

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yijing-go/yijing/pkg/divination"
)

// GlyphResolver maps a hexagram glyph to its number. The reference
// corpus implements it; tests substitute a fixture.
type GlyphResolver interface {
	// ResolveGlyph returns the hexagram number for a glyph, or false
	// when no record carries it.
	ResolveGlyph(r rune) (int, bool)
}

// Interpreter parses input text into figures. It holds no state beyond
// its glyph resolver and is safe for concurrent use.
type Interpreter struct {
	glyphs GlyphResolver
}

// New builds an Interpreter backed by the given glyph resolver.
func New(glyphs GlyphResolver) *Interpreter {
	return &Interpreter{glyphs: glyphs}
}

// Resolve parses a single trimmed input token into a figure. On
// exhaustion of all notations it fails with *UnrecognizedInputError
// carrying the original text.
func (it *Interpreter) Resolve(text string) (divination.Hexagram, error) {
	text = strings.TrimSpace(text)

	attempts := []func(string) (divination.Hexagram, bool, error){
		it.tryTransition,
		it.tryNumber,
		it.tryGlyph,
		it.tryLineCodes,
	}
	for _, attempt := range attempts {
		h, ok, err := attempt(text)
		if !ok {
			continue
		}
		return h, err
	}
	return divination.Hexagram{}, &divination.UnrecognizedInputError{Input: text}
}

// transition separators, in the order they are searched within the text.
// The split happens at the first occurrence of either.
var separators = []string{"→", "->"}

// tryTransition handles "source→target" notation. The separator alone
// does not commit: if neither a number pair nor a glyph pair resolves,
// the full original text falls through to the later notations.
func (it *Interpreter) tryTransition(text string) (divination.Hexagram, bool, error) {
	sep, pos := firstSeparator(text)
	if pos < 0 {
		return divination.Hexagram{}, false, nil
	}

	source := strings.TrimSpace(text[:pos])
	target := strings.TrimSpace(text[pos+len(sep):])

	if from, ok := parseNumber(source); ok {
		if to, ok := parseNumber(target); ok {
			h, err := Reconcile(from, to)
			return h, true, err
		}
	}

	if from, ok := it.resolveSingleGlyph(source); ok {
		if to, ok := it.resolveSingleGlyph(target); ok {
			h, err := Reconcile(from, to)
			return h, true, err
		}
	}

	return divination.Hexagram{}, false, nil
}

// tryNumber commits as soon as the text parses as an integer; the range
// check then surfaces *OutOfRangeError rather than falling through.
func (it *Interpreter) tryNumber(text string) (divination.Hexagram, bool, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return divination.Hexagram{}, false, nil
	}
	h, err := divination.FromNumber(n)
	return h, true, err
}

func (it *Interpreter) tryGlyph(text string) (divination.Hexagram, bool, error) {
	n, ok := it.resolveSingleGlyph(text)
	if !ok {
		return divination.Hexagram{}, false, nil
	}
	h, err := divination.FromNumber(n)
	return h, true, err
}

// tryLineCodes commits once the text splits on commas into exactly six
// integers; codes outside {6,7,8,9} then surface *InvalidLineCodeError.
func (it *Interpreter) tryLineCodes(text string) (divination.Hexagram, bool, error) {
	if !strings.Contains(text, ",") {
		return divination.Hexagram{}, false, nil
	}
	parts := strings.Split(text, ",")
	if len(parts) != 6 {
		return divination.Hexagram{}, false, nil
	}
	var codes [6]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return divination.Hexagram{}, false, nil
		}
		codes[i] = n
	}
	h, err := divination.FromCodes(codes)
	return h, true, err
}

func (it *Interpreter) resolveSingleGlyph(text string) (int, bool) {
	if it.glyphs == nil || utf8.RuneCountInString(text) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(text)
	n, ok := it.glyphs.ResolveGlyph(r)
	if !ok || n < 1 || n > 64 {
		return 0, false
	}
	return n, true
}

func firstSeparator(text string) (string, int) {
	best, bestPos := "", -1
	for _, sep := range separators {
		if pos := strings.Index(text, sep); pos >= 0 && (bestPos < 0 || pos < bestPos) {
			best, bestPos = sep, pos
		}
	}
	return best, bestPos
}

func parseNumber(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > 64 {
		return 0, false
	}
	return n, true
}
