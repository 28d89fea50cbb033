package interpret

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yijing-go/yijing/pkg/divination"
)

// glyphMap is a fixture resolver: maps a handful of glyphs to numbers.
type glyphMap map[rune]int

func (m glyphMap) ResolveGlyph(r rune) (int, bool) {
	n, ok := m[r]
	return n, ok
}

func newTestInterpreter() *Interpreter {
	return New(glyphMap{'䷀': 1, '䷁': 2, '䷊': 11})
}

func TestResolveNumber(t *testing.T) {
	it := newTestInterpreter()

	for _, id := range []int{1, 22, 64} {
		h, err := it.Resolve(strconv.Itoa(id))
		require.NoError(t, err)
		assert.Equal(t, id, h.Number())
		assert.False(t, h.HasChangingLines())
	}
}

func TestResolveNumberOutOfRange(t *testing.T) {
	it := newTestInterpreter()

	for _, input := range []string{"65", "0", "100"} {
		_, err := it.Resolve(input)
		var oor *divination.OutOfRangeError
		require.ErrorAs(t, err, &oor, "input %q", input)
	}
}

func TestResolveGlyph(t *testing.T) {
	it := newTestInterpreter()

	h, err := it.Resolve("䷀")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Number())

	h, err = it.Resolve("䷊")
	require.NoError(t, err)
	assert.Equal(t, 11, h.Number())
}

func TestResolveUnknownGlyphFails(t *testing.T) {
	it := newTestInterpreter()

	_, err := it.Resolve("䷿")
	var unrecognized *divination.UnrecognizedInputError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "䷿", unrecognized.Input)
}

func TestResolveLineCodes(t *testing.T) {
	it := newTestInterpreter()

	h, err := it.Resolve("7,8,9,6,7,8")
	require.NoError(t, err)
	assert.Equal(t, 22, h.Number())
	assert.Equal(t, []int{3, 4}, h.ChangingPositions())

	// Whitespace between parts is irrelevant.
	spaced, err := it.Resolve("7, 8 ,9,6,7,8")
	require.NoError(t, err)
	assert.Equal(t, h, spaced)
}

func TestResolveLineCodesInvalidCode(t *testing.T) {
	it := newTestInterpreter()

	_, err := it.Resolve("7,8,5,6,7,8")
	var invalid *divination.InvalidLineCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 5, invalid.Code)
}

func TestResolveLineCodesWrongCount(t *testing.T) {
	it := newTestInterpreter()

	_, err := it.Resolve("7,8,9")
	var unrecognized *divination.UnrecognizedInputError
	require.ErrorAs(t, err, &unrecognized)
}

func TestResolveTransitionNumbers(t *testing.T) {
	it := newTestInterpreter()

	for _, input := range []string{"1→2", "1->2", "1 → 2", "1 -> 2"} {
		h, err := it.Resolve(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, 1, h.Number(), "input %q", input)
		require.True(t, h.HasChangingLines(), "input %q", input)
		assert.Equal(t, 2, h.Transform().Number(), "input %q", input)
	}
}

func TestResolveTransitionSelf(t *testing.T) {
	it := newTestInterpreter()

	h, err := it.Resolve("1→1")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Number())
	assert.False(t, h.HasChangingLines())
	assert.Equal(t, h, h.Transform())
}

func TestResolveTransitionGlyphs(t *testing.T) {
	it := newTestInterpreter()

	h, err := it.Resolve("䷀→䷁")
	require.NoError(t, err)
	assert.Equal(t, 1, h.Number())
	assert.Equal(t, 2, h.Transform().Number())
}

// A separator whose sides do not resolve must not short-circuit: the
// full text continues down the notation chain and fails there.
func TestSeparatorWithoutValidSidesFallsThrough(t *testing.T) {
	it := newTestInterpreter()

	for _, input := range []string{"banana→apple", "0→2", "1→65", "→"} {
		_, err := it.Resolve(input)
		var unrecognized *divination.UnrecognizedInputError
		require.ErrorAs(t, err, &unrecognized, "input %q", input)
		assert.Equal(t, input, unrecognized.Input)
	}
}

func TestResolveGarbage(t *testing.T) {
	it := newTestInterpreter()

	_, err := it.Resolve("banana")
	var unrecognized *divination.UnrecognizedInputError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, "banana", unrecognized.Input)
}

func TestResolveTrimsInput(t *testing.T) {
	it := newTestInterpreter()

	h, err := it.Resolve("  22  ")
	require.NoError(t, err)
	assert.Equal(t, 22, h.Number())
}
