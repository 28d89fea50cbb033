package divination

// Reading is a resolved figure plus the question it answers, if any.
// It is created once per invocation and carries no further lifecycle.
type Reading struct {
	Hexagram Hexagram
	Question string
}

// NewReading builds a reading for a figure. question may be empty.
func NewReading(h Hexagram, question string) *Reading {
	return &Reading{Hexagram: h, Question: question}
}

// Transformed returns the reading after all changing lines settle, or
// nil when the figure is static and a transform would be a no-op.
func (r *Reading) Transformed() *Reading {
	if !r.Hexagram.HasChangingLines() {
		return nil
	}
	return &Reading{Hexagram: r.Hexagram.Transform(), Question: r.Question}
}
