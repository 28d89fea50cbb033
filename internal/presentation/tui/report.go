package tui

import (
	"encoding/json"

	"github.com/yijing-go/yijing/internal/corpus"
	"github.com/yijing-go/yijing/pkg/divination"
)

// Report is the structured (JSON) form of a reading.
type Report struct {
	Question                    string        `json:"question,omitempty"`
	LineCodes                   [6]int        `json:"line_codes"`
	PrimaryFigure               FigureReport  `json:"primary_figure"`
	ChangingLineInterpretations []LineReport  `json:"changing_line_interpretations"`
	TransformedFigure           *FigureReport `json:"transformed_figure,omitempty"`
	UpperSubfigure              [3]string     `json:"upper_subfigure"`
	LowerSubfigure              [3]string     `json:"lower_subfigure"`
}

// FigureReport is one hexagram's descriptive record in a Report.
type FigureReport struct {
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	Chinese     string  `json:"chinese"`
	Pinyin      string  `json:"pinyin"`
	Unicode     string  `json:"unicode"`
	Description string  `json:"description"`
	Judgment    Passage `json:"judgment"`
	Image       Passage `json:"image"`
}

// Passage mirrors a statement-plus-commentary pair.
type Passage struct {
	Text       string `json:"text"`
	Commentary string `json:"commentary"`
}

// LineReport is one changing line's interpretation.
type LineReport struct {
	Position   int    `json:"position"`
	Statement  string `json:"statement"`
	Commentary string `json:"commentary"`
}

// Structured renders the reading as indented JSON.
func Structured(store *corpus.Store, r *divination.Reading) (string, error) {
	report, err := BuildReport(store, r)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// BuildReport assembles the structured form without serializing it.
func BuildReport(store *corpus.Store, r *divination.Reading) (*Report, error) {
	rec, err := store.Hexagram(r.Hexagram.Number())
	if err != nil {
		return nil, err
	}

	report := &Report{
		Question:                    r.Question,
		LineCodes:                   r.Hexagram.Codes(),
		PrimaryFigure:               figureReport(rec),
		ChangingLineInterpretations: []LineReport{},
		UpperSubfigure:              polarityLabels(r.Hexagram.Upper()),
		LowerSubfigure:              polarityLabels(r.Hexagram.Lower()),
	}

	for _, pos := range r.Hexagram.ChangingPositions() {
		lt, err := store.LineText(rec.Number, pos)
		if err != nil {
			return nil, err
		}
		if lt == nil {
			continue
		}
		report.ChangingLineInterpretations = append(report.ChangingLineInterpretations, LineReport{
			Position:   pos,
			Statement:  lt.Text,
			Commentary: lt.Comments,
		})
	}

	if moved := r.Transformed(); moved != nil {
		target, err := store.Hexagram(moved.Hexagram.Number())
		if err != nil {
			return nil, err
		}
		fr := figureReport(target)
		report.TransformedFigure = &fr
	}

	return report, nil
}

func figureReport(rec *corpus.HexagramRecord) FigureReport {
	return FigureReport{
		Number:      rec.Number,
		Name:        rec.Name,
		Chinese:     rec.Chinese,
		Pinyin:      rec.Pinyin,
		Unicode:     rec.Unicode,
		Description: rec.Description,
		Judgment:    Passage{Text: rec.Judgment.Text, Commentary: rec.Judgment.Commentary},
		Image:       Passage{Text: rec.Image.Text, Commentary: rec.Image.Commentary},
	}
}

func polarityLabels(p [3]divination.Polarity) [3]string {
	var out [3]string
	for i, polarity := range p {
		out[i] = polarity.String()
	}
	return out
}
