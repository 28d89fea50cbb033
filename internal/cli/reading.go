// Package cli wires the oracle, the reference corpus and the renderers
// behind the command-line surface.
package cli

import (
	"fmt"
	"io"

	"github.com/yijing-go/yijing"
	"github.com/yijing-go/yijing/internal/corpus"
	"github.com/yijing-go/yijing/internal/logging"
	"github.com/yijing-go/yijing/internal/presentation/tui"
	"github.com/yijing-go/yijing/pkg/divination"
)

// Options carries the root command's flags and argument.
type Options struct {
	// Input is the optional reading notation; empty means cast randomly.
	Input string
	// Question is free text attached to the reading.
	Question string
	// Format is one of brief, full, structured, codes, status-line.
	Format string
	// Debug enables logging to stderr.
	Debug bool
}

// Run resolves the input into a reading and writes it to w in the
// selected format. Errors carry the offending input or value; the
// command converts them into a non-zero exit.
func Run(w io.Writer, opts Options) error {
	format, err := tui.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	oracle, err := yijing.New(yijing.WithLogger(logging.ForDebug(opts.Debug)))
	if err != nil {
		return fmt.Errorf("load reference data: %w", err)
	}

	reading, err := oracle.Reading(opts.Input, opts.Question)
	if err != nil {
		return err
	}

	return render(w, oracle.Corpus(), reading, format)
}

func render(w io.Writer, store *corpus.Store, r *divination.Reading, format tui.Format) error {
	switch format {
	case tui.FormatBrief:
		out, err := tui.Brief(store, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)

	case tui.FormatCodes:
		fmt.Fprintln(w, tui.Codes(r))

	case tui.FormatStatusLine:
		out, err := tui.StatusLine(store, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)

	case tui.FormatStructured:
		out, err := tui.Structured(store, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)

	case tui.FormatFull:
		body, err := tui.FullMarkdown(store, r)
		if err != nil {
			return err
		}
		fmt.Fprint(w, tui.FigureArt(r.Hexagram))
		if tui.IsTerminal() {
			rendered, err := tui.NewRenderer()(body)
			if err != nil {
				return err
			}
			body = rendered
		}
		fmt.Fprint(w, body)
	}
	return nil
}
