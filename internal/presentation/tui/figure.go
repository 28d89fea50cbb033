package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/yijing-go/yijing/pkg/divination"
)

// FigureArt draws the six lines of a figure top to bottom, numbering each
// line with its traditional position. Changing lines are highlighted when
// the terminal supports color.
func FigureArt(h divination.Hexagram) string {
	p := termenv.ColorProfile()
	stable := p.Color("#a78bfa")
	changing := p.Color("#fbbf24")

	var b strings.Builder
	for i := 5; i >= 0; i-- {
		line := h[i]
		color := stable
		if line.Changing() {
			color = changing
		}
		styled := termenv.String(line.Symbol()).Foreground(color)
		fmt.Fprintf(&b, "%d: %s\n", i+1, styled)
	}
	return b.String()
}
