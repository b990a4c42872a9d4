package render

import (
	"strings"

	"github.com/dkoosis/xcfo/pkg/event"
)

// TeamCity renders diagnostics as TeamCity service messages.
type TeamCity struct {
	annotationRenderer
}

// NewTeamCity creates a TeamCity renderer.
func NewTeamCity(theme Theme) *TeamCity {
	return &TeamCity{annotationRenderer: newAnnotationRenderer(teamCityDialect{}, theme)}
}

// teamCityEscape prefixes the service message metacharacters with '|'.
// Newlines become |n so a multi-line detail stays one argument.
var teamCityEscape = strings.NewReplacer(
	"|", "||",
	"'", "|'",
	"\n", "|n",
	"[", "|[",
	"]", "|]",
)

var teamCityStatus = map[annotation]string{
	annotationError:   "ERROR",
	annotationWarning: "WARNING",
	annotationNotice:  "INFO",
}

type teamCityDialect struct{}

// makeOutputLog puts the first message line in text and the rest, such as
// the source context of a compiler error, in errorDetails.
func (teamCityDialect) makeOutputLog(a annotation, loc *event.FileLocation, message string) string {
	text, details, _ := strings.Cut(message, "\n")
	if loc != nil {
		text = loc.String() + ": " + text
	}
	return "##teamcity[message text='" + teamCityEscape.Replace(text) +
		"' errorDetails='" + teamCityEscape.Replace(details) +
		"' status='" + teamCityStatus[a] + "']"
}
