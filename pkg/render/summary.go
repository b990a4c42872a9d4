package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dkoosis/xcfo/pkg/parser"
)

var numbers = message.NewPrinter(language.English)

// Summary formats the closing totals of a test run. Only a coloured
// terminal paints the line; CI dialects get it plain.
func Summary(r Renderer, s parser.TestSummary) string {
	verdict := "Tests Passed"
	if !s.Passed() {
		verdict = "Tests Failed"
	}
	line := numbers.Sprintf("%s: %d failed, %d skipped, %d total (%.3f seconds)",
		verdict, s.Failures, s.Skipped, s.Tests, s.Time)

	t, ok := r.(*Terminal)
	if !ok {
		return line
	}
	if s.Passed() {
		return t.paint(t.theme.Success, line)
	}
	return t.paint(t.theme.Error, line)
}
