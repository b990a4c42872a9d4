package event

import "strings"

// TestIdentifier is a test split into its qualifying suite and bare name.
// Suite is empty for free-standing tests.
type TestIdentifier struct {
	Suite string
	Name  string
}

// String renders the identifier the way the legacy runner prints it.
func (id TestIdentifier) String() string {
	if id.Suite == "" {
		return id.Name
	}
	return id.Suite + "." + id.Name
}

// ParseTestIdentifier accepts the three identifier shapes test runners
// print:
//
//	-[Module.Class method]   selector form, split at the first space
//	Module.Class.method      dotted form, split at the last dot
//	method()                 bare name, no suite
//
// Quoted display names are always bare. A selector without a space, or an
// empty identifier, is rejected.
func ParseTestIdentifier(s string) (TestIdentifier, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TestIdentifier{}, false
	}
	if strings.HasPrefix(s, "-[") || strings.HasPrefix(s, "+[") {
		if !strings.HasSuffix(s, "]") {
			return TestIdentifier{}, false
		}
		inner := s[2 : len(s)-1]
		i := strings.IndexByte(inner, ' ')
		if i <= 0 || i == len(inner)-1 {
			return TestIdentifier{}, false
		}
		return TestIdentifier{Suite: inner[:i], Name: inner[i+1:]}, true
	}
	if strings.HasPrefix(s, `"`) {
		return TestIdentifier{Name: s}, true
	}
	// Only dots ahead of an argument list qualify a name.
	head := s
	if p := strings.IndexByte(s, '('); p >= 0 {
		head = s[:p]
	}
	if i := strings.LastIndexAny(head, "./"); i > 0 && i < len(s)-1 {
		return TestIdentifier{Suite: s[:i], Name: s[i+1:]}, true
	}
	return TestIdentifier{Name: s}, true
}
