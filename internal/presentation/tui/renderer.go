package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
		glamour.WithWordWrap(renderWidth()),
	)

	return func(markdown string) (string, error) {
		if err != nil || r == nil {
			return markdown, nil
		}
		return r.Render(markdown)
	}
}

// IsTerminal reports whether stdout is a terminal. Non-terminal output
// (pipes, command substitution in shell greetings) gets raw markdown
// instead of styled text.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func renderWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || width > 100 {
		return 100
	}
	return width
}
