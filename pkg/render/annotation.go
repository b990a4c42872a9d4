package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dkoosis/xcfo/pkg/event"
)

// annotation is the severity of a CI log annotation.
type annotation string

const (
	annotationNotice  annotation = "notice"
	annotationWarning annotation = "warning"
	annotationError   annotation = "error"
)

// dialect is the syntax-specific part of an annotation renderer.
type dialect interface {
	// makeOutputLog formats one annotation. loc is nil when the message has
	// no file attached.
	makeOutputLog(a annotation, loc *event.FileLocation, message string) string
}

// annotationRenderer turns diagnostics into CI annotations and renders
// everything else as uncoloured terminal text.
type annotationRenderer struct {
	dialect dialect
	plain   *Terminal
}

func newAnnotationRenderer(d dialect, theme Theme) annotationRenderer {
	return annotationRenderer{dialect: d, plain: NewTerminal(theme, false)}
}

// Render formats one event.
//
//nolint:gocyclo,cyclop // one arm per diagnostic shape
func (r annotationRenderer) Render(e event.Event, lines LineSource) (string, bool) {
	switch e := e.(type) {
	case event.CompileWarning:
		return r.withContext(annotationWarning, e.Location, e.Reason, lines), true
	case event.CompileError:
		return r.withContext(annotationError, e.Location, e.Reason, lines), true
	case event.FileMissingError:
		return r.log(annotationError, event.FileLocation{Path: e.Path}, "No such file or directory"), true
	case event.ClangError:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.FatalError:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.ModuleIncludesError:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.LDError:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.LinkerDuplicateSymbols:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.LinkerUndefinedSymbols:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.NoCertificate:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.ProvisioningProfileRequired:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.XcodebuildError:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.GenericError:
		return r.log(annotationError, event.FileLocation{}, e.Reason), true
	case event.FailingTest:
		return r.log(annotationError, e.Location, e.ID.Name+", "+e.Reason), true
	case event.UIFailingTest:
		return r.log(annotationError, e.Location, e.Reason), true
	case event.RestartingTest:
		return r.log(annotationError, event.FileLocation{}, e.Message), true
	case event.ParallelTestCaseFailed:
		return r.log(annotationError, event.FileLocation{}, qualified(e.ID)+" failed on '"+e.Device+"'"), true
	case event.SwiftTestingIssue:
		return r.log(annotationError, e.Location, e.ID.Name+", "+e.Message), true
	case event.SwiftTestingIssueArgument:
		return r.log(annotationError, e.Location, e.ID.Name+" ("+e.Arguments+"), "+e.Message), true
	case event.LDWarning:
		return r.log(annotationWarning, event.FileLocation{}, e.Prefix+e.Reason), true
	case event.GenericWarning:
		return r.log(annotationWarning, event.FileLocation{}, e.Reason), true
	case event.DuplicateLocalizedStringKey:
		return r.log(annotationWarning, event.FileLocation{}, e.Message), true
	case event.WillNotBeCodeSigned:
		return r.log(annotationWarning, event.FileLocation{}, e.Message), true
	case event.Note:
		return r.log(annotationNotice, e.Location, e.Reason), true
	default:
		return r.plain.Render(e, lines)
	}
}

// withContext appends the source line and cursor that follow a compiler
// diagnostic.
func (r annotationRenderer) withContext(a annotation, loc event.FileLocation, reason string, lines LineSource) string {
	msg := reason
	if ctx := pull(lines, contextLineCount); len(ctx) > 0 {
		msg += "\n" + strings.Join(ctx, "\n")
	}
	return r.log(a, loc, msg)
}

func (r annotationRenderer) log(a annotation, loc event.FileLocation, message string) string {
	message = ansi.Strip(message)
	if loc.Path == "" {
		return r.dialect.makeOutputLog(a, nil, message)
	}
	return r.dialect.makeOutputLog(a, &loc, message)
}
