package tui

import (
	"fmt"
	"strings"

	"github.com/yijing-go/yijing/internal/corpus"
	"github.com/yijing-go/yijing/pkg/divination"
)

// Format selects an output rendering for a reading.
type Format string

const (
	FormatBrief      Format = "brief"
	FormatFull       Format = "full"
	FormatStructured Format = "structured"
	FormatCodes      Format = "codes"
	FormatStatusLine Format = "status-line"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatBrief, FormatFull, FormatStructured, FormatCodes, FormatStatusLine:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q: expected brief, full, structured, codes or status-line", s)
	}
}

// Brief renders the one-or-two-line summary: glyph, number and name of
// the primary figure, the transition when lines change, and the question
// when one was asked.
func Brief(store *corpus.Store, r *divination.Reading) (string, error) {
	var b strings.Builder
	if r.Question != "" {
		fmt.Fprintf(&b, "Q: %s\n", r.Question)
	}

	rec, err := store.Hexagram(r.Hexagram.Number())
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "%s %d %s", rec.Unicode, rec.Number, rec.Name)

	if moved := r.Transformed(); moved != nil {
		target, err := store.Hexagram(moved.Hexagram.Number())
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " → %s %d %s", target.Unicode, target.Number, target.Name)
		fmt.Fprintf(&b, " (lines: %v)", r.Hexagram.ChangingPositions())
	}
	return b.String(), nil
}

// Codes renders the six line codes bottom-to-top, in a form the
// interpreter accepts back as input.
func Codes(r *divination.Reading) string {
	codes := r.Hexagram.Codes()
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, ",")
}

// StatusLine renders the single-line form used in shell greetings.
func StatusLine(store *corpus.Store, r *divination.Reading) (string, error) {
	rec, err := store.Hexagram(r.Hexagram.Number())
	if err != nil {
		return "", err
	}

	moved := r.Transformed()
	if moved == nil {
		return fmt.Sprintf("%s %d %s", rec.Unicode, rec.Number, strings.ToUpper(rec.Name)), nil
	}

	target, err := store.Hexagram(moved.Hexagram.Number())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s→%s %d %s CHANGING INTO %d %s",
		rec.Unicode, target.Unicode,
		rec.Number, strings.ToUpper(rec.Name),
		target.Number, strings.ToUpper(target.Name)), nil
}

// FullMarkdown assembles the complete reading as a markdown document.
// The stacked figure itself is drawn separately (FigureArt); the caller
// decides whether to push the body through the glamour renderer.
func FullMarkdown(store *corpus.Store, r *divination.Reading) (string, error) {
	rec, err := store.Hexagram(r.Hexagram.Number())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s %d · %s\n\n", rec.Unicode, rec.Number, rec.Name)
	if r.Question != "" {
		fmt.Fprintf(&b, "> Q: %s\n\n", r.Question)
	}

	fmt.Fprintf(&b, "**Codes:** %s\n\n", Codes(r))
	writeTrigram(&b, store, "Upper trigram", rec.UpperTrigram, r.Hexagram.Upper())
	writeTrigram(&b, store, "Lower trigram", rec.LowerTrigram, r.Hexagram.Lower())
	fmt.Fprintf(&b, "\n**Chinese:** %s (%s)\n\n", rec.Chinese, rec.Pinyin)
	fmt.Fprintf(&b, "%s\n\n", rec.Description)

	fmt.Fprintf(&b, "## Judgment\n\n%s\n\n%s\n\n", rec.Judgment.Text, rec.Judgment.Commentary)
	fmt.Fprintf(&b, "## Image\n\n%s\n\n%s\n", rec.Image.Text, rec.Image.Commentary)

	if moved := r.Transformed(); moved != nil {
		b.WriteString("\n## Changing lines\n\n")
		for _, pos := range r.Hexagram.ChangingPositions() {
			lt, err := store.LineText(rec.Number, pos)
			if err != nil {
				return "", err
			}
			if lt == nil {
				continue
			}
			fmt.Fprintf(&b, "**Line %d:** %s\n\n%s\n\n", pos, lt.Text, lt.Comments)
		}

		target, err := store.Hexagram(moved.Hexagram.Number())
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "## Transforms to %s %d · %s\n\n", target.Unicode, target.Number, target.Name)
		fmt.Fprintf(&b, "**Chinese:** %s (%s)\n\n", target.Chinese, target.Pinyin)
		fmt.Fprintf(&b, "%s\n\n%s\n", target.Description, target.Judgment.Text)
	}

	return b.String(), nil
}

func writeTrigram(b *strings.Builder, store *corpus.Store, label, name string, polarities [3]divination.Polarity) {
	labels := make([]string, len(polarities))
	for i, p := range polarities {
		labels[i] = p.String()
	}
	suffix := ""
	if rec, err := store.Trigram(name); err == nil {
		suffix = fmt.Sprintf(" — %s %s (%s)", rec.Unicode, rec.Name, rec.Symbolic)
	}
	fmt.Fprintf(b, "**%s:** %s%s\n\n", label, strings.Join(labels, " "), suffix)
}
