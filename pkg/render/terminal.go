package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/xcfo/pkg/event"
)

// testIndent prefixes test case lines so they nest under their suite.
const testIndent = "    "

// Terminal renders events as styled terminal output via lipgloss.
type Terminal struct {
	theme   Theme
	colored bool
}

// NewTerminal creates a terminal renderer. With colored false every style
// is skipped and only glyphs remain.
func NewTerminal(theme Theme, colored bool) *Terminal {
	return &Terminal{theme: theme, colored: colored}
}

// Theme returns the renderer's theme.
func (t *Terminal) Theme() Theme { return t.theme }

// Render formats one event.
//
//nolint:gocyclo,cyclop,funlen // one arm per line shape
func (t *Terminal) Render(e event.Event, lines LineSource) (string, bool) {
	switch e := e.(type) {
	case event.ShellCommand, event.CompileCommand, event.ProcessPCHCommand,
		event.WriteFile, event.WriteAuxiliaryFiles, event.CompilationResult,
		event.SwiftDriver, event.SwiftDriverCompilation, event.SwiftDriverCompilationRequirements,
		event.SwiftDriverJobDiscoveryCompiling, event.SwiftDriverJobDiscoveryEmittingModule,
		event.Cursor, event.TestCaseStarted, event.TestCaseFailed,
		event.TestSuiteAllTestsPassed, event.TestSuiteAllTestsFailed,
		event.ExecutedWithoutSkipped, event.ExecutedWithSkipped,
		event.SwiftTestingTestStarted, event.SwiftTestingPassingArgument:
		return "", false

	case event.Analyze:
		return t.step(e, "Analyzing", e.Filename), true
	case event.BuildTarget:
		return t.header("Build", e.TargetHeader), true
	case event.AggregateTarget:
		return t.header("Aggregate", e.TargetHeader), true
	case event.AnalyzeTarget:
		return t.header("Analyze", e.TargetHeader), true
	case event.CleanTarget:
		return t.header("Clean", e.TargetHeader), true
	case event.CheckDependencies:
		return t.paint(t.theme.Bold, "Check dependencies"), true
	case event.CleanRemove:
		return "Cleaning " + e.Directory, true
	case event.CodeSignFramework:
		return t.step(e, "Signing", e.Framework), true
	case event.CodeSign:
		return t.step(e, "Signing", e.Filename), true
	case event.Compile:
		return t.step(e, "Compiling", e.Filename), true
	case event.SwiftCompile:
		return t.step(e, "Compiling", e.Filename), true
	case event.SwiftCompiling:
		// Batch lines repeat files the single-file lines already report.
		if len(e.Files) != 1 {
			return "", false
		}
		return t.step(e, "Compiling", e.Files[0]), true
	case event.CompileXib:
		return t.step(e, "Compiling", e.Filename), true
	case event.CompileStoryboard:
		return t.step(e, "Compiling", e.Filename), true
	case event.CompileAssetCatalog:
		return t.step(e, "Compiling", e.Filename), true
	case event.CopyHeader:
		return t.step(e, "Copying", e.Filename), true
	case event.CopyPlist:
		return t.step(e, "Copying", e.Filename), true
	case event.CopyStrings:
		return t.step(e, "Copying", e.Filename), true
	case event.CpResource:
		return t.step(e, "Copying", e.Filename), true
	case event.CopyFiles:
		return t.step(e, "Copying", e.Filename), true
	case event.PBXCp:
		return t.step(e, "Copying", e.Filename), true
	case event.CreateUniversalBinary:
		return t.step(e, "Creating universal binary", e.Filename), true
	case event.DataModelCodegen:
		return t.step(e, "Generating code for", e.Filename), true
	case event.EmitSwiftModule:
		return t.step(e, "Emitting module", ""), true
	case event.SwiftEmitModule:
		return t.step(e, "Emitting module for", e.Module), true
	case event.ExtractAppIntentsMetadata:
		return t.step(e, "Extracting app intents metadata", ""), true
	case event.GenerateDSYM:
		return t.step(e, "Generating", e.DSYM), true
	case event.Libtool:
		return t.step(e, "Building library", e.Library), true
	case event.Linking:
		return t.step(e, "Linking", e.Binary), true
	case event.PhaseScriptExecution:
		return t.step(e, "Running script", e.Phase), true
	case event.PhaseSuccess:
		return t.phase(t.theme.Success, e.Phase, "Succeeded", e.Duration), true
	case event.PhaseFailure:
		return t.phase(t.theme.Error, e.Phase, "Failed", e.Duration), true
	case event.PrecompileModule:
		return "Precompiling " + e.Filename, true
	case event.Preprocess:
		return "Preprocessing " + e.Filename, true
	case event.ProcessPCH:
		return t.step(e, "Processing", e.Filename), true
	case event.ProcessInfoPlist:
		return t.step(e, "Processing", e.Filename), true
	case event.ProcessProductPackaging:
		return t.step(e, "Processing", e.Filename), true
	case event.RegisterExecutionPolicyException:
		return t.step(e, "Registering execution policy exception for", e.Filename), true
	case event.ScanDependencies:
		return t.step(e, "Scanning", e.Filename), true
	case event.Signing:
		return t.step(e, "Signing", e.Filename), true
	case event.SymLink:
		return t.step(e, "Symlinking", e.Filename), true
	case event.TIFFUtil:
		return "Processing " + e.Filename, true
	case event.Touch:
		return t.step(e, "Touching", e.Filename), true
	case event.Validate:
		return t.step(e, "Validating", e.Filename), true
	case event.ValidateEmbeddedBinary:
		return t.step(e, "Validating embedded binary", e.Filename), true
	case event.GenerateCoverageData:
		return "Generating code coverage data...", true
	case event.GeneratedCoverageReport:
		return "Generated code coverage report: " + e.Path, true

	case event.PackageFetching:
		return "Fetching " + e.URL, true
	case event.PackageUpdating:
		return "Updating " + e.URL, true
	case event.PackageCheckingOut:
		return "Checking out " + e.Package + " @ " + e.Version, true
	case event.PackageGraphResolvingStart:
		return t.paint(t.theme.Bold, "Resolving package graph"), true
	case event.PackageGraphResolvingEnded:
		return t.paint(t.theme.Bold, "Resolved source packages"), true
	case event.PackageGraphResolvedItem:
		return t.paint(t.theme.Primary, e.Name) + " - " + e.URL + " @ " + t.paint(t.theme.Muted, e.Version), true

	case event.CompileWarning:
		return t.diagnostic(t.theme.Icons.Warning, t.theme.Warning, e.Location, e.Reason, lines), true
	case event.CompileError:
		return t.diagnostic(t.theme.Icons.Error, t.theme.Error, e.Location, e.Reason, lines), true
	case event.ClangError:
		return t.errorLine(e.Reason), true
	case event.FatalError:
		return t.errorLine(e.Reason), true
	case event.FileMissingError:
		return t.errorLine(e.Path + ": No such file or directory"), true
	case event.ModuleIncludesError:
		return t.errorLine(e.Reason), true
	case event.LDError:
		return t.errorLine(e.Reason), true
	case event.LinkerDuplicateSymbols:
		return t.errorLine(e.Reason), true
	case event.LinkerDuplicateSymbolsLocation:
		return testIndent + t.paint(t.theme.Error, e.Path), true
	case event.LinkerUndefinedSymbols:
		return t.errorLine(e.Reason), true
	case event.LinkerUndefinedSymbolLocation:
		return testIndent + t.paint(t.theme.Error, e.Symbol+" in "+e.Object), true
	case event.SymbolReferencedFrom:
		return t.errorLine(strconv.Quote(e.Reference) + ", referenced from:"), true
	case event.NoCertificate:
		return t.errorLine(e.Reason), true
	case event.ProvisioningProfileRequired:
		return t.errorLine(e.Reason), true
	case event.XcodebuildError:
		return t.errorLine(e.Reason), true
	case event.GenericError:
		return t.errorLine(e.Reason), true
	case event.LDWarning:
		return t.warningLine(e.Prefix + e.Reason), true
	case event.GenericWarning:
		return t.warningLine(e.Reason), true
	case event.DuplicateLocalizedStringKey:
		return t.warningLine(e.Message), true
	case event.WillNotBeCodeSigned:
		return t.warningLine(e.Message), true
	case event.Note:
		prefix := "note:"
		if e.Location.Path != "" {
			prefix = e.Location.String() + ": note:"
		}
		return t.paint(t.theme.Primary, prefix) + " " + e.Reason, true

	case event.TestSuiteStarted:
		return t.paint(t.theme.Bold, "Test Suite "+e.Suite+" started"), true
	case event.ParallelTestSuiteStarted:
		return t.paint(t.theme.Bold, e.Suite) + " on '" + e.Device + "'", true
	case event.TestSuiteStart:
		return t.paint(t.theme.Bold, e.Suite), true
	case event.TestsRunCompletion:
		style := t.theme.Success
		if e.Result == "failed" {
			style = t.theme.Error
		}
		return t.paint(style, "Test Suite "+e.Suite+" "+e.Result), true
	case event.TestCasePassed:
		return t.testLine(t.theme.Icons.Pass, t.theme.Success, e.ID.Name, t.seconds(e.Time)), true
	case event.TestCasePending:
		return t.testLine(t.theme.Icons.Pending, t.theme.Warning, e.ID.Name, "[PENDING]"), true
	case event.TestCaseSkipped:
		return t.testLine(t.theme.Icons.Skip, t.theme.Warning, e.ID.Name, "("+e.Time+" seconds)"), true
	case event.TestCaseMeasured:
		return t.measured(e), true
	case event.FailingTest:
		return t.testFailure(e.ID.Name, e.Reason), true
	case event.UIFailingTest:
		return t.testFailure(e.Location.String(), e.Reason), true
	case event.RestartingTest:
		return testIndent + t.paint(t.theme.Error, t.theme.Icons.Fail+" "+e.Message), true
	case event.ParallelTestingStarted:
		return t.paint(t.theme.Bold, "Testing started on '"+e.Device+"'"), true
	case event.ParallelTestingPassed:
		return t.paint(t.theme.Success.Bold(true), "Testing passed on '"+e.Device+"'"), true
	case event.ParallelTestingFailed:
		return t.paint(t.theme.Error.Bold(true), "Testing failed on '"+e.Device+"'"), true
	case event.ParallelTestCasePassed:
		return t.testLine(t.theme.Icons.Pass, t.theme.Success, qualified(e.ID), t.onDevice(e.Device, t.seconds(e.Time))), true
	case event.ParallelTestCaseAppKitPassed:
		return t.testLine(t.theme.Icons.Pass, t.theme.Success, qualified(e.ID), t.onDevice(e.Device, t.seconds(e.Time))), true
	case event.ParallelTestCaseFailed:
		return t.testLine(t.theme.Icons.Fail, t.theme.Error, qualified(e.ID), t.onDevice(e.Device, "("+e.Time+" seconds)")), true
	case event.ParallelTestCaseSkipped:
		return t.testLine(t.theme.Icons.Skip, t.theme.Warning, qualified(e.ID), t.onDevice(e.Device, "("+e.Time+" seconds)")), true

	case event.SwiftTestingRunStarted:
		return t.paint(t.theme.Bold, "Test run started"), true
	case event.SwiftTestingRunCompletion:
		return t.paint(t.theme.Success.Bold(true),
			"Test run with "+plural(e.Tests, "test")+" passed after "+e.Time+" seconds"), true
	case event.SwiftTestingRunFailed:
		return t.paint(t.theme.Error.Bold(true),
			"Test run with "+plural(e.Tests, "test")+" failed after "+e.Time+" seconds with "+plural(e.Issues, "issue")), true
	case event.SwiftTestingSuiteStarted:
		return t.paint(t.theme.Bold, e.Suite), true
	case event.SwiftTestingSuitePassed:
		return t.paint(t.theme.Success, "Suite "+e.Suite+" passed after "+e.Time+" seconds"), true
	case event.SwiftTestingSuiteFailed:
		return t.paint(t.theme.Error, "Suite "+e.Suite+" failed after "+e.Time+" seconds with "+plural(e.Issues, "issue")), true
	case event.SwiftTestingTestPassed:
		return t.testLine(t.theme.Icons.Pass, t.theme.Success, e.ID.Name, t.seconds(e.Time)), true
	case event.SwiftTestingTestFailed:
		return t.testLine(t.theme.Icons.Fail, t.theme.Error, e.ID.Name, "("+e.Time+" seconds)"), true
	case event.SwiftTestingTestSkipped:
		return t.testLine(t.theme.Icons.Skip, t.theme.Warning, e.ID.Name, "skipped"), true
	case event.SwiftTestingTestSkippedReason:
		return t.testLine(t.theme.Icons.Skip, t.theme.Warning, e.ID.Name, "skipped: "+e.Reason), true
	case event.SwiftTestingIssue:
		return t.testFailure(e.ID.Name, e.Location.String()+": "+e.Message), true
	case event.SwiftTestingIssueArgument:
		return t.testFailure(e.ID.Name+" ("+e.Arguments+")", e.Location.String()+": "+e.Message), true
	case event.SwiftTestingIssueDetails:
		return testIndent + "  " + t.paint(t.theme.Muted, t.theme.Icons.Detail+" "+e.Detail), true

	default:
		return "", false
	}
}

func (t *Terminal) paint(s lipgloss.Style, text string) string {
	if !t.colored || text == "" {
		return text
	}
	return s.Render(text)
}

// step renders "[Target] Verb subject", leaving out an empty target.
func (t *Terminal) step(in event.Targeted, verb, subject string) string {
	var sb strings.Builder
	if name := in.TargetName(); name != "" {
		sb.WriteString(t.paint(t.theme.Bold, "["+name+"]"))
		sb.WriteByte(' ')
	}
	sb.WriteString(verb)
	if subject != "" {
		sb.WriteByte(' ')
		sb.WriteString(subject)
	}
	return sb.String()
}

func (t *Terminal) header(action string, h event.TargetHeader) string {
	return t.paint(t.theme.Bold, action+" target "+h.Target) +
		" of project " + h.Project + " with configuration " + h.Configuration
}

func (t *Terminal) phase(style lipgloss.Style, phase, outcome, duration string) string {
	s := cases.Title(language.English).String(strings.ToLower(phase)) + " " + outcome
	if duration != "" {
		s += " [" + duration + "]"
	}
	return t.paint(style.Bold(true), s)
}

// diagnostic renders a located compiler message followed by the source line
// and cursor the compiler prints under it.
func (t *Terminal) diagnostic(icon string, style lipgloss.Style, loc event.FileLocation, reason string, lines LineSource) string {
	head := t.paint(style, icon) + " " + t.paint(t.theme.Bold, loc.String()+":") + " " + t.paint(style, reason)
	ctx := pull(lines, contextLineCount)
	if len(ctx) == 0 {
		return head
	}
	if len(ctx) == contextLineCount {
		ctx[1] = t.paint(t.theme.Success, ctx[1])
	}
	width := uint(runewidth.StringWidth(icon) + 1) //nolint:gosec // width is small and positive
	return head + "\n" + indent.String(strings.Join(ctx, "\n"), width)
}

func (t *Terminal) errorLine(msg string) string {
	return t.paint(t.theme.Error, t.theme.Icons.Error+" "+msg)
}

func (t *Terminal) warningLine(msg string) string {
	return t.paint(t.theme.Warning, t.theme.Icons.Warning+" "+msg)
}

func (t *Terminal) testLine(icon string, style lipgloss.Style, name, suffix string) string {
	s := testIndent + t.paint(style, icon) + " " + name
	if suffix != "" {
		s += " " + suffix
	}
	return s
}

func (t *Terminal) testFailure(name, reason string) string {
	return testIndent + t.paint(t.theme.Error, t.theme.Icons.Fail+" "+name+", "+reason)
}

func (t *Terminal) seconds(s string) string {
	return "(" + t.ColoredTime(s) + " seconds)"
}

func (t *Terminal) onDevice(device, timing string) string {
	return "on '" + device + "' " + timing
}

func (t *Terminal) measured(e event.TestCaseMeasured) string {
	value := e.Time
	if e.Unit == "seconds" {
		value = t.ColoredTime(e.Time)
	}
	return t.testLine(t.theme.Icons.Measure, t.theme.Warning, e.ID.Name,
		"measured ("+value+" "+e.Unit+" ±"+t.ColoredDeviation(e.Deviation)+"%)")
}

// qualified renders "[Suite] name", or the bare name without a suite.
func qualified(id event.TestIdentifier) string {
	if id.Suite == "" {
		return id.Name
	}
	return "[" + id.Suite + "] " + id.Name
}

func plural(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
