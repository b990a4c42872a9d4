package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles renders with a fixed ANSI profile. Whether to colour is decided by
// the caller, not by probing the output stream.
var styles = newStyleRenderer()

func newStyleRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the glyph set for a theme.
type ThemeIcons struct {
	Error   string
	Warning string
	Pass    string
	Fail    string
	Skip    string
	Pending string
	Measure string
	Detail  string
}

// DefaultTheme returns the emoji theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Primary: styles.NewStyle().Foreground(lipgloss.Color("4")),
		Success: styles.NewStyle().Foreground(lipgloss.Color("2")),
		Warning: styles.NewStyle().Foreground(lipgloss.Color("3")),
		Error:   styles.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   styles.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    styles.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Error:   "❌",
			Warning: "⚠️",
			Pass:    "✔",
			Fail:    "✖",
			Skip:    "⊘",
			Pending: "◷",
			Measure: "◷",
			Detail:  "↳",
		},
	}
}

// OrcaTheme returns a muted palette with the emoji glyphs.
func OrcaTheme() Theme {
	th := DefaultTheme()
	th.Name = "orca"
	th.Primary = styles.NewStyle().Foreground(lipgloss.Color("75"))  // pale blue
	th.Success = styles.NewStyle().Foreground(lipgloss.Color("108")) // sage green
	th.Warning = styles.NewStyle().Foreground(lipgloss.Color("179")) // muted gold
	th.Error = styles.NewStyle().Foreground(lipgloss.Color("167"))   // muted red
	th.Muted = styles.NewStyle().Foreground(lipgloss.Color("245"))
	return th
}

// ASCIITheme keeps the default colors with plain ASCII glyphs, for logs that
// mangle emoji.
func ASCIITheme() Theme {
	th := DefaultTheme()
	th.Name = "ascii"
	th.Icons = ThemeIcons{
		Error:   "[x]",
		Warning: "[!]",
		Pass:    "+",
		Fail:    "x",
		Skip:    "-",
		Pending: "~",
		Measure: "~",
		Detail:  ">",
	}
	return th
}

// ThemeNames lists the names ThemeByName accepts.
func ThemeNames() []string { return []string{"default", "orca", "ascii"} }

// ThemeByName returns a theme by name. ok is false for unknown names, in
// which case the default theme is returned.
func ThemeByName(name string) (theme Theme, ok bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "orca":
		return OrcaTheme(), true
	case "ascii", "mono":
		return ASCIITheme(), true
	default:
		return DefaultTheme(), false
	}
}
