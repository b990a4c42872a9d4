package render

import (
	"strconv"
	"strings"

	"github.com/dkoosis/xcfo/pkg/event"
)

// GitHubActions renders diagnostics as GitHub Actions workflow commands.
type GitHubActions struct {
	annotationRenderer
}

// NewGitHubActions creates a GitHub Actions renderer. theme styles the
// plain lines between annotations.
func NewGitHubActions(theme Theme) *GitHubActions {
	return &GitHubActions{annotationRenderer: newAnnotationRenderer(githubDialect{}, theme)}
}

var (
	githubData     = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	githubProperty = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
)

type githubDialect struct{}

// makeOutputLog writes ::level file=F,line=L,col=C::message.
func (githubDialect) makeOutputLog(a annotation, loc *event.FileLocation, message string) string {
	var sb strings.Builder
	sb.WriteString("::")
	sb.WriteString(string(a))
	if loc != nil {
		sb.WriteString(" file=")
		sb.WriteString(githubProperty.Replace(loc.Path))
		if loc.HasLine() {
			sb.WriteString(",line=")
			sb.WriteString(strconv.Itoa(loc.Line))
		}
		if loc.HasColumn() {
			sb.WriteString(",col=")
			sb.WriteString(strconv.Itoa(loc.Column))
		}
	}
	sb.WriteString("::")
	sb.WriteString(githubData.Replace(message))
	return sb.String()
}
