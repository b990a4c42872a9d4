package event

import "strconv"

// FileLocation is a path with an optional line and column.
// Line and Column are 0 when absent.
type FileLocation struct {
	Path   string
	Line   int
	Column int
}

// HasLine reports whether a line number was present.
func (l FileLocation) HasLine() bool { return l.Line > 0 }

// HasColumn reports whether a column number was present.
func (l FileLocation) HasColumn() bool { return l.Column > 0 }

// String re-assembles path[:line[:column]].
func (l FileLocation) String() string {
	s := l.Path
	if l.HasLine() {
		s += ":" + strconv.Itoa(l.Line)
		if l.HasColumn() {
			s += ":" + strconv.Itoa(l.Column)
		}
	}
	return s
}

// ParseFileLocation splits path[:line[:column]] from the right. A trailing
// ":<int>:<int>" is line and column, a single trailing ":<int>" is the line,
// anything else is a bare path.
func ParseFileLocation(s string) FileLocation {
	head, last, ok := cutNumber(s)
	if !ok {
		return FileLocation{Path: s}
	}
	if path, line, ok := cutNumber(head); ok {
		return FileLocation{Path: path, Line: line, Column: last}
	}
	return FileLocation{Path: head, Line: last}
}

// cutNumber splits "head:<digits>" into head and the number.
func cutNumber(s string) (string, int, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) || i == 0 || s[i-1] != ':' {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return s, 0, false
	}
	return s[:i-1], n, true
}
