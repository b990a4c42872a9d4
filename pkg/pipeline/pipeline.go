// Package pipeline drives one input stream through the classifier, a
// renderer, the output sink and the optional JUnit report.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/dkoosis/xcfo/pkg/event"
	"github.com/dkoosis/xcfo/pkg/junit"
	"github.com/dkoosis/xcfo/pkg/parser"
	"github.com/dkoosis/xcfo/pkg/render"
)

// maxLineSize bounds one input line.
const maxLineSize = 1024 * 1024

// Sink receives rendered lines.
type Sink interface {
	Write(class event.OutputClass, s string) error
	Passthrough(s string) error
}

// Options configures a run.
type Options struct {
	Renderer render.Renderer
	Sink     Sink
	// Report is fed every reportable event when non-nil.
	Report *junit.Report
	// PreserveUnbeautified sends unclassified lines to Sink.Passthrough.
	PreserveUnbeautified bool
	Logger               zerolog.Logger
}

// Result summarises a run.
type Result struct {
	Lines        int
	Classified   int
	Unclassified int
	// Errors counts error-class events.
	Errors  int
	Summary *parser.TestSummary
}

// Failed reports whether the input showed errors or failed tests.
func (r Result) Failed() bool {
	return r.Errors > 0 || (r.Summary != nil && !r.Summary.Passed())
}

// scanSource serves renderer lookahead from the same scanner the loop
// reads, so pulled lines are consumed.
type scanSource struct {
	sc    *bufio.Scanner
	lines *int
}

func (s scanSource) NextLine() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	*s.lines++
	return clean(s.sc.Text()), true
}

// Run processes r until EOF, cancellation or a write error.
func Run(ctx context.Context, r io.Reader, opts Options) (Result, error) {
	var res Result
	log := opts.Logger.With().Str("component", "pipeline").Logger()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	src := scanSource{sc: sc, lines: &res.Lines}
	p := parser.New()

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("processing input: %w", err)
		}
		res.Lines++
		line := clean(sc.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		ev := p.Parse(line)
		if ev == nil {
			res.Unclassified++
			log.Trace().Str("line", line).Msg("unclassified")
			if opts.PreserveUnbeautified {
				if err := opts.Sink.Passthrough(line); err != nil {
					return res, err
				}
			}
			continue
		}
		res.Classified++
		if ev.OutputClass() == event.Error {
			res.Errors++
		}
		if opts.Report != nil {
			opts.Report.Add(ev)
		}

		out, ok := opts.Renderer.Render(ev, src)
		if !ok {
			continue
		}
		if err := opts.Sink.Write(ev.OutputClass(), out); err != nil {
			return res, err
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("reading input: %w", err)
	}

	res.Summary = p.Summary()
	if res.Summary != nil {
		if err := opts.Sink.Write(event.Result, render.Summary(opts.Renderer, *res.Summary)); err != nil {
			return res, err
		}
	}

	log.Debug().
		Int("lines", res.Lines).
		Int("classified", res.Classified).
		Int("unclassified", res.Unclassified).
		Int("errors", res.Errors).
		Msg("input consumed")
	return res, nil
}

func clean(line string) string {
	return strings.TrimRight(ansi.Strip(line), "\r")
}
