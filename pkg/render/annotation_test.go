package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/xcfo/pkg/event"
)

var (
	compileError = event.CompileError{
		Location: event.FileLocation{Path: "/src/File.swift", Line: 12, Column: 9},
		Reason:   "cannot find 'foo' in scope",
	}
	compileWarning = event.CompileWarning{
		Location: event.FileLocation{Path: "/src/File.swift", Line: 3, Column: 1},
		Reason:   "unused",
	}
	failingTest = event.FailingTest{
		Location: event.FileLocation{Path: "/src/T.swift", Line: 42},
		ID:       event.TestIdentifier{Suite: "M.C", Name: "testDivide"},
		Reason:   "XCTAssertEqual failed",
	}
	compileStep = event.Compile{
		Step:     "CompileC",
		FileRef:  event.FileRef{Path: "/src/Foo.m", Filename: "Foo.m"},
		InTarget: event.InTarget{Target: "App"},
	}
)

func render(t *testing.T, r Renderer, e event.Event, lines LineSource) string {
	t.Helper()
	out, ok := r.Render(e, lines)
	require.True(t, ok)
	return out
}

func TestGitHubActions_Render(t *testing.T) {
	t.Parallel()
	r := NewGitHubActions(ASCIITheme())

	assert.Equal(t,
		"::error file=/src/File.swift,line=12,col=9::cannot find 'foo' in scope%0Alet x = foo%0A        ^~~",
		render(t, r, compileError, source("let x = foo", "        ^~~")))
	assert.Equal(t, "::warning file=/src/File.swift,line=3,col=1::unused", render(t, r, compileWarning, nil))
	assert.Equal(t, "::error file=/src/T.swift,line=42::testDivide, XCTAssertEqual failed", render(t, r, failingTest, nil))
	assert.Equal(t, "::notice::Build preparation complete", render(t, r, event.Note{Reason: "Build preparation complete"}, nil))
	assert.Equal(t, "::error::100%25 done%0Anext", render(t, r, event.GenericError{Reason: "100% done\nnext"}, nil))
	assert.Equal(t, "::error file=/src/Gone.swift::No such file or directory",
		render(t, r, event.FileMissingError{Path: "/src/Gone.swift"}, nil))
}

func TestGitHubActions_FallsBackToPlainText_When_EventIsNotADiagnostic(t *testing.T) {
	t.Parallel()
	r := NewGitHubActions(ASCIITheme())
	assert.Equal(t, "[App] Compiling Foo.m", render(t, r, compileStep, nil))

	_, ok := r.Render(event.Cursor{Marker: "^"}, nil)
	assert.False(t, ok)
}

func TestGitHubActions_StripsEscapeSequencesFromMessages(t *testing.T) {
	t.Parallel()
	r := NewGitHubActions(ASCIITheme())
	assert.Equal(t, "::warning::plain", render(t, r, event.GenericWarning{Reason: "\x1b[33mplain\x1b[0m"}, nil))
}

func TestAzureDevOps_Render(t *testing.T) {
	t.Parallel()
	r := NewAzureDevOps(ASCIITheme())

	assert.Equal(t,
		"###vso[task.logissue type=error;sourcepath=/src/File.swift;linenumber=12;columnnumber=9]cannot find 'foo' in scope",
		render(t, r, compileError, nil))
	assert.Equal(t, "###vso[task.logissue type=error;sourcepath=/src/T.swift;linenumber=42]testDivide, XCTAssertEqual failed",
		render(t, r, failingTest, nil))
	assert.Equal(t, "###vso[task.logissue type=warning]a%3Bb%5D 5%AZP25", render(t, r, event.GenericWarning{Reason: "a;b] 5%"}, nil))
	assert.Equal(t, "###vso[task.logissue type=error]line one%0Aline two",
		render(t, r, event.GenericError{Reason: "line one\nline two"}, nil))
}

func TestAzureDevOps_RendersNoticeAsPlainText(t *testing.T) {
	t.Parallel()
	r := NewAzureDevOps(ASCIITheme())
	assert.Equal(t, "note: Build preparation complete", render(t, r, event.Note{Reason: "Build preparation complete"}, nil))
	assert.Equal(t, "/src/A.swift:3:7: note: did you mean 'bar'?", render(t, r, event.Note{
		Location: event.FileLocation{Path: "/src/A.swift", Line: 3, Column: 7},
		Reason:   "did you mean 'bar'?",
	}, nil))
}

func TestTeamCity_Render(t *testing.T) {
	t.Parallel()
	r := NewTeamCity(ASCIITheme())

	assert.Equal(t,
		"##teamcity[message text='/src/File.swift:12:9: cannot find |'foo|' in scope' errorDetails='let x = foo|n        ^~~' status='ERROR']",
		render(t, r, compileError, source("let x = foo", "        ^~~")))
	assert.Equal(t,
		"##teamcity[message text='/src/File.swift:3:1: unused' errorDetails='' status='WARNING']",
		render(t, r, compileWarning, nil))
	assert.Equal(t,
		"##teamcity[message text='note' errorDetails='' status='INFO']",
		render(t, r, event.Note{Reason: "note"}, nil))
}

func TestTeamCity_EscapesServiceMessageMetacharacters(t *testing.T) {
	t.Parallel()
	r := NewTeamCity(ASCIITheme())
	out := render(t, r, event.GenericError{Reason: "a|b 'c' [d]"}, nil)
	assert.Equal(t, "##teamcity[message text='a||b |'c|' |[d|]' errorDetails='' status='ERROR']", out)
}

func TestAnnotationRenderers_RenderPlainTextWithoutColor(t *testing.T) {
	t.Parallel()
	for _, r := range []Renderer{NewGitHubActions(DefaultTheme()), NewAzureDevOps(DefaultTheme()), NewTeamCity(DefaultTheme())} {
		out := render(t, r, event.PhaseSuccess{Phase: "BUILD"}, nil)
		assert.Equal(t, "Build Succeeded", out)
	}
}
