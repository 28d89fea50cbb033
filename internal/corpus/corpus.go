// Package corpus is the embedded reference store: the descriptive records
// for the 64 hexagrams and 8 trigrams, resolved by number, glyph or name.
//
// The records are data, not logic. Their content is not validated beyond
// what decoding requires.
package corpus

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/yijing-go/yijing/pkg/divination"
)

//go:embed data/hexagrams.yaml
var hexagramData []byte

//go:embed data/trigrams.yaml
var trigramData []byte

// Passage is a statement with its commentary (judgment or image).
type Passage struct {
	Text       string `mapstructure:"text"`
	Commentary string `mapstructure:"commentary"`
}

// LineText is the per-line interpretation of a changing line.
type LineText struct {
	Text     string `mapstructure:"text"`
	Comments string `mapstructure:"comments"`
}

// HexagramRecord is the full descriptive record for one hexagram.
type HexagramRecord struct {
	Number       int                 `mapstructure:"number"`
	Name         string              `mapstructure:"name"`
	Chinese      string              `mapstructure:"chinese"`
	Pinyin       string              `mapstructure:"pinyin"`
	Unicode      string              `mapstructure:"unicode"`
	Binary       string              `mapstructure:"binary"`
	Opposite     string              `mapstructure:"opposite"`
	UpperTrigram string              `mapstructure:"upper_trigram"`
	LowerTrigram string              `mapstructure:"lower_trigram"`
	Description  string              `mapstructure:"description"`
	Judgment     Passage             `mapstructure:"judgment"`
	Image        Passage             `mapstructure:"image"`
	Lines        map[string]LineText `mapstructure:"lines"`
}

// TrigramRecord describes one of the eight trigrams.
type TrigramRecord struct {
	Name      string `mapstructure:"name"`
	Chinese   string `mapstructure:"chinese"`
	Unicode   string `mapstructure:"unicode"`
	Symbolic  string `mapstructure:"symbolic"`
	Element   string `mapstructure:"element"`
	Attribute string `mapstructure:"attribute"`
	Lines     string `mapstructure:"lines"`
}

// Store holds the decoded reference data. It is immutable after Load and
// safe for concurrent reads.
type Store struct {
	hexagrams map[int]*HexagramRecord
	trigrams  map[string]*TrigramRecord
	// numbers in ascending order, for deterministic glyph scans
	numbers []int
}

// Load decodes the embedded dataset. The YAML is decoded generically
// first and then mapped into typed records, so unknown keys in the data
// are tolerated.
func Load() (*Store, error) {
	var rawHexagrams map[string]map[string]any
	if err := yaml.Unmarshal(hexagramData, &rawHexagrams); err != nil {
		return nil, fmt.Errorf("decode hexagram data: %w", err)
	}
	var rawTrigrams map[string]map[string]any
	if err := yaml.Unmarshal(trigramData, &rawTrigrams); err != nil {
		return nil, fmt.Errorf("decode trigram data: %w", err)
	}

	s := &Store{
		hexagrams: make(map[int]*HexagramRecord, len(rawHexagrams)),
		trigrams:  make(map[string]*TrigramRecord, len(rawTrigrams)),
	}

	for key, raw := range rawHexagrams {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("hexagram key %q: %w", key, err)
		}
		var rec HexagramRecord
		if err := mapstructure.Decode(raw, &rec); err != nil {
			return nil, fmt.Errorf("hexagram %d: %w", n, err)
		}
		s.hexagrams[n] = &rec
		s.numbers = append(s.numbers, n)
	}
	sort.Ints(s.numbers)

	for key, raw := range rawTrigrams {
		var rec TrigramRecord
		if err := mapstructure.Decode(raw, &rec); err != nil {
			return nil, fmt.Errorf("trigram %q: %w", key, err)
		}
		s.trigrams[key] = &rec
	}

	return s, nil
}

// Hexagram returns the record for a hexagram number. A number outside
// [1,64] is an input error; an in-range number with no record is a
// data-integrity failure.
func (s *Store) Hexagram(n int) (*HexagramRecord, error) {
	if n < 1 || n > 64 {
		return nil, &divination.OutOfRangeError{Value: n}
	}
	rec, ok := s.hexagrams[n]
	if !ok {
		return nil, &divination.LookupError{Number: n}
	}
	return rec, nil
}

// LineText returns the interpretation for line pos (1..6) of hexagram n,
// or nil when the record carries no text for that position.
func (s *Store) LineText(n, pos int) (*LineText, error) {
	rec, err := s.Hexagram(n)
	if err != nil {
		return nil, err
	}
	lt, ok := rec.Lines[strconv.Itoa(pos)]
	if !ok {
		return nil, nil
	}
	return &lt, nil
}

// Trigram returns the record for a trigram name.
func (s *Store) Trigram(name string) (*TrigramRecord, error) {
	rec, ok := s.trigrams[name]
	if !ok {
		return nil, fmt.Errorf("no reference record for trigram %q", name)
	}
	return rec, nil
}

// ResolveGlyph maps a hexagram glyph to its number by scanning the
// records' glyph field, in ascending number order.
func (s *Store) ResolveGlyph(r rune) (int, bool) {
	for _, n := range s.numbers {
		glyph, _ := utf8.DecodeRuneInString(s.hexagrams[n].Unicode)
		if glyph == r {
			return n, true
		}
	}
	return 0, false
}
