package event

// Architecture is a CPU architecture token from a compile or link line.
// Unknown tokens are kept verbatim so the line still classifies.
type Architecture struct {
	raw   string
	known bool
}

var knownArchitectures = map[string]bool{
	"arm64":    true,
	"arm64e":   true,
	"arm64_32": true,
	"armv7":    true,
	"armv7k":   true,
	"armv7s":   true,
	"i386":     true,
	"x86_64":   true,
	"x86_64h":  true,
}

// ParseArchitecture never fails. Known reports whether the token is one of
// the recognised architectures.
func ParseArchitecture(s string) Architecture {
	return Architecture{raw: s, known: knownArchitectures[s]}
}

// Known reports whether the architecture is in the closed enumeration.
func (a Architecture) Known() bool { return a.known }

func (a Architecture) String() string { return a.raw }
