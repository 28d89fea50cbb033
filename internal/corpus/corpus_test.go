package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yijing-go/yijing/pkg/divination"
)

func TestLoadDecodesAllRecords(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	for n := 1; n <= 64; n++ {
		rec, err := s.Hexagram(n)
		require.NoError(t, err, "hexagram %d", n)
		assert.Equal(t, n, rec.Number)
		assert.NotEmpty(t, rec.Name)
		assert.NotEmpty(t, rec.Unicode)
		assert.NotEmpty(t, rec.Judgment.Text)
		assert.NotEmpty(t, rec.Image.Text)
		assert.Len(t, rec.Lines, 6, "hexagram %d", n)
	}
}

func TestHexagramRange(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	var oor *divination.OutOfRangeError
	_, err = s.Hexagram(0)
	require.ErrorAs(t, err, &oor)
	_, err = s.Hexagram(65)
	require.ErrorAs(t, err, &oor)
}

func TestResolveGlyph(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	// Record 1 carries the first glyph of the hexagram block.
	n, ok := s.ResolveGlyph('䷀')
	require.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = s.ResolveGlyph('䷿')
	require.True(t, ok)
	assert.Equal(t, 64, n)

	_, ok = s.ResolveGlyph('x')
	assert.False(t, ok)
}

func TestGlyphsAreUniqueAndRoundTrip(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	for n := 1; n <= 64; n++ {
		rec, err := s.Hexagram(n)
		require.NoError(t, err)
		got, ok := s.ResolveGlyph([]rune(rec.Unicode)[0])
		require.True(t, ok, "hexagram %d glyph %q", n, rec.Unicode)
		assert.Equal(t, n, got)
	}
}

func TestLineText(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	for pos := 1; pos <= 6; pos++ {
		lt, err := s.LineText(1, pos)
		require.NoError(t, err)
		require.NotNil(t, lt, "line %d", pos)
		assert.NotEmpty(t, lt.Text)
	}

	// Position with no text is not an error.
	lt, err := s.LineText(1, 7)
	require.NoError(t, err)
	assert.Nil(t, lt)
}

func TestTrigrams(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"Qian", "Dui", "Li", "Zhen", "Xun", "Kan", "Gen", "Kun"} {
		rec, err := s.Trigram(name)
		require.NoError(t, err, "trigram %s", name)
		assert.Equal(t, name, rec.Name)
		assert.Len(t, rec.Lines, 3)
	}

	_, err = s.Trigram("Nope")
	assert.Error(t, err)
}

func TestTrigramNamesOnHexagramsResolve(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	for n := 1; n <= 64; n++ {
		rec, err := s.Hexagram(n)
		require.NoError(t, err)
		_, err = s.Trigram(rec.UpperTrigram)
		assert.NoError(t, err, "hexagram %d upper %q", n, rec.UpperTrigram)
		_, err = s.Trigram(rec.LowerTrigram)
		assert.NoError(t, err, "hexagram %d lower %q", n, rec.LowerTrigram)
	}
}
