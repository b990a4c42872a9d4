package render

import (
	"strconv"
	"strings"

	"github.com/dkoosis/xcfo/pkg/event"
)

// AzureDevOps renders diagnostics as Azure Pipelines logging commands.
type AzureDevOps struct {
	annotationRenderer
}

// NewAzureDevOps creates an Azure Pipelines renderer.
func NewAzureDevOps(theme Theme) *AzureDevOps {
	return &AzureDevOps{annotationRenderer: newAnnotationRenderer(azureDialect{}, theme)}
}

var azureEscape = strings.NewReplacer(
	"%", "%AZP25",
	";", "%3B",
	"\r", "%0D",
	"\n", "%0A",
	"]", "%5D",
)

type azureDialect struct{}

// makeOutputLog writes a task.logissue command. Azure has no notice
// severity, so notices stay plain text.
func (azureDialect) makeOutputLog(a annotation, loc *event.FileLocation, message string) string {
	if a == annotationNotice {
		if loc != nil {
			return loc.String() + ": note: " + message
		}
		return "note: " + message
	}
	var sb strings.Builder
	sb.WriteString("###vso[task.logissue type=")
	sb.WriteString(string(a))
	if loc != nil {
		sb.WriteString(";sourcepath=")
		sb.WriteString(azureEscape.Replace(loc.Path))
		if loc.HasLine() {
			sb.WriteString(";linenumber=")
			sb.WriteString(strconv.Itoa(loc.Line))
		}
		if loc.HasColumn() {
			sb.WriteString(";columnnumber=")
			sb.WriteString(strconv.Itoa(loc.Column))
		}
	}
	sb.WriteString("]")
	sb.WriteString(azureEscape.Replace(message))
	return sb.String()
}
