// Package parser classifies xcodebuild, swift build and test runner output
// one line at a time against an ordered catalog of line shapes.
package parser

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dkoosis/xcfo/pkg/event"
)

// TestSummary accumulates the "Executed N tests" totals of a run.
type TestSummary struct {
	Tests      int
	Failures   int
	Unexpected int
	Skipped    int
	Time       float64
}

// Passed reports whether the run had no failures.
func (s TestSummary) Passed() bool { return s.Failures == 0 }

func (s *TestSummary) add(e event.Executed) {
	s.Tests += e.Tests
	s.Failures += e.Failures
	s.Unexpected += e.Unexpected
	s.Skipped += e.Skipped
	s.Time += e.Time
}

// State is the parser's running state between lines.
type State struct {
	// Summary is nil until the first summary line is consumed.
	Summary *TestSummary
	// ExpectingSummary is set by the outermost suite's end marker and
	// cleared by the Executed line that follows it.
	ExpectingSummary bool
}

// Parser classifies lines. A Parser is not safe for concurrent use; create
// one per input stream.
type Parser struct {
	entries []Entry
	state   State
}

// New returns a parser over the full catalog.
func New() *Parser {
	return &Parser{entries: catalog}
}

// Parse classifies one line. It returns nil when no entry matches.
func (p *Parser) Parse(line string) event.Event {
	line = clean(line)
	if line == "" {
		return nil
	}
	for i := range p.entries {
		e := &p.entries[i]
		if e.NeedsSummary && !p.state.ExpectingSummary {
			continue
		}
		ev, ok := e.Match(line)
		if !ok {
			continue
		}
		p.observe(ev)
		return ev
	}
	return nil
}

// Matches returns the kind of every entry that accepts the line, ignoring
// parser state. A correct catalog yields at most one.
func (p *Parser) Matches(line string) []event.Kind {
	line = clean(line)
	var kinds []event.Kind
	for i := range p.entries {
		if _, ok := p.entries[i].Match(line); ok {
			kinds = append(kinds, p.entries[i].Kind)
		}
	}
	return kinds
}

// Summary returns a copy of the accumulated test summary, or nil when no
// summary line has been consumed.
func (p *Parser) Summary() *TestSummary {
	if p.state.Summary == nil {
		return nil
	}
	s := *p.state.Summary
	return &s
}

// State returns a snapshot of the running state.
func (p *Parser) State() State {
	return State{Summary: p.Summary(), ExpectingSummary: p.state.ExpectingSummary}
}

func (p *Parser) observe(ev event.Event) {
	switch e := ev.(type) {
	case event.TestSuiteAllTestsPassed, event.TestSuiteAllTestsFailed:
		p.state.ExpectingSummary = true
	case event.ExecutedWithoutSkipped:
		p.fold(e.Executed)
	case event.ExecutedWithSkipped:
		p.fold(e.Executed)
	}
}

func (p *Parser) fold(e event.Executed) {
	if p.state.Summary == nil {
		p.state.Summary = &TestSummary{}
	}
	p.state.Summary.add(e)
	p.state.ExpectingSummary = false
}

// clean strips escape sequences and the trailing carriage return of CRLF
// input.
func clean(line string) string {
	return strings.TrimRight(ansi.Strip(line), "\r")
}
