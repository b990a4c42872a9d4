package parser

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/dkoosis/xcfo/pkg/event"
)

// Entry is one line shape of the catalog.
type Entry struct {
	Kind event.Kind
	// Markers, when set, are literal prefixes of the whitespace-trimmed line.
	// At least one must be present before Pattern runs.
	Markers []string
	Pattern *regexp.Regexp
	// Excludes reject lines Pattern accepts but a more specific entry owns.
	Excludes []*regexp.Regexp
	// Build converts the submatches into an event. It returns false to
	// reject a structurally matching line.
	Build func(m []string) (event.Event, bool)
	// NeedsSummary entries only classify while a summary line is expected.
	NeedsSummary bool
}

// Match runs the entry against a line without regard to parser state.
func (e *Entry) Match(line string) (event.Event, bool) {
	if !e.hasMarker(line) {
		return nil, false
	}
	m := e.Pattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	for _, x := range e.Excludes {
		if x.MatchString(line) {
			return nil, false
		}
	}
	return e.Build(m)
}

func (e *Entry) hasMarker(line string) bool {
	if len(e.Markers) == 0 {
		return true
	}
	trimmed := strings.TrimLeft(line, " \t")
	for _, m := range e.Markers {
		if strings.HasPrefix(trimmed, m) {
			return true
		}
	}
	return false
}

func (e Entry) marked(markers ...string) Entry {
	e.Markers = markers
	return e
}

func (e Entry) excluding(patterns ...string) Entry {
	e.Excludes = make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		e.Excludes = append(e.Excludes, regexp.MustCompile(p))
	}
	return e
}

func (e Entry) gated() Entry {
	e.NeedsSummary = true
	return e
}

func entry(kind event.Kind, pattern string, build func(m []string) (event.Event, bool)) Entry {
	return Entry{Kind: kind, Pattern: regexp.MustCompile(pattern), Build: build}
}

// The catalog is compiled once. Order is significant: the first entry that
// accepts a line wins.
var catalog = buildCatalog()

func buildCatalog() []Entry {
	var entries []Entry
	entries = append(entries, buildEntries()...)
	entries = append(entries, packageEntries()...)
	entries = append(entries, xctestEntries()...)
	entries = append(entries, diagnosticEntries()...)
	entries = append(entries, swiftTestingEntries()...)
	return entries
}

// Catalog returns the ordered table of line shapes.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Shared pattern fragments.
const (
	// pathArg is one argument in which spaces are backslash-escaped.
	pathArg = `(?:\\ |[^ ])+`
	// inTarget covers both "(in target: T)" and
	// "(in target 'T' from project 'P')".
	inTarget  = `\(in target(?:: | ')([^')]+)'?(?: from project '[^']*'(?: at path '[^']*')?)?\)`
	optTarget = `(?:\s` + inTarget + `)?$`
	sourceExt = `(?:m|mm|c|cc|cpp|cxx|swift)`
)

func unescape(s string) string {
	return strings.ReplaceAll(s, `\ `, " ")
}

func fileRef(p string) event.FileRef {
	p = unescape(p)
	return event.FileRef{Path: p, Filename: path.Base(p)}
}

func target(s string) event.InTarget {
	return event.InTarget{Target: s}
}

// atoi and atof treat malformed numbers as zero.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// splitFiles splits a "A.swift,\ B.swift" batch list.
func splitFiles(s string) []string {
	parts := strings.Split(s, `,\ `)
	files := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = unescape(p); p != "" {
			files = append(files, p)
		}
	}
	return files
}

func testID(s string) (event.TestIdentifier, bool) {
	return event.ParseTestIdentifier(s)
}
