// Package render turns classified events back into text for a terminal or a
// CI log.
package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/xcfo/pkg/event"
)

// Renderer converts an event to output text. ok is false when the event
// should print nothing at all.
type Renderer interface {
	Render(e event.Event, lines LineSource) (out string, ok bool)
}

// LineSource hands the renderer the input lines that follow the event being
// rendered. Lines it returns are consumed and never classified.
type LineSource interface {
	NextLine() (string, bool)
}

// contextLineCount is how many lines a compiler diagnostic pulls: the
// offending source line and the cursor under it.
const contextLineCount = 2

// pull reads up to n lines from src, which may be nil.
func pull(src LineSource, n int) []string {
	if src == nil {
		return nil
	}
	out := make([]string, 0, n)
	for range n {
		line, ok := src.NextLine()
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out
}

// Renderer names accepted by ByName.
const (
	NameTerminal      = "terminal"
	NameGitHubActions = "github-actions"
	NameAzureDevOps   = "azure-devops-pipelines"
	NameTeamCity      = "teamcity"
)

// Names lists every renderer name.
func Names() []string {
	return []string{NameTerminal, NameGitHubActions, NameAzureDevOps, NameTeamCity}
}

// ByName builds the named renderer. Colour and theme only affect the
// terminal renderer and the plain fallback of the CI renderers.
func ByName(name string, colored bool, theme Theme) (Renderer, error) {
	switch strings.ToLower(name) {
	case NameTerminal:
		return NewTerminal(theme, colored), nil
	case NameGitHubActions:
		return NewGitHubActions(theme), nil
	case NameAzureDevOps:
		return NewAzureDevOps(theme), nil
	case NameTeamCity:
		return NewTeamCity(theme), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
}
