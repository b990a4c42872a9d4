// Package event defines the typed results of classifying one line of
// xcodebuild, swift build or test runner output.
// Events are pure data; renderers decide presentation.
package event

// OutputClass groups events for verbosity filtering.
type OutputClass int

const (
	Undefined OutputClass = iota
	Task
	Warning
	Error
	Test
	TestCase
	Result
)

var classNames = [...]string{
	Undefined: "undefined",
	Task:      "task",
	Warning:   "warning",
	Error:     "error",
	Test:      "test",
	TestCase:  "testCase",
	Result:    "result",
}

func (c OutputClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "undefined"
	}
	return classNames[c]
}

// Event is the interface every classified line implements.
type Event interface {
	Kind() Kind
	OutputClass() OutputClass
	// Reportable reports whether the JUnit aggregator consumes the event.
	Reportable() bool
}

// The marker types below are embedded by variants to pick their output
// class. Reportable variants override Reportable.

type task struct{}

func (task) OutputClass() OutputClass { return Task }
func (task) Reportable() bool         { return false }

type warning struct{}

func (warning) OutputClass() OutputClass { return Warning }
func (warning) Reportable() bool         { return false }

type failure struct{}

func (failure) OutputClass() OutputClass { return Error }
func (failure) Reportable() bool         { return false }

type test struct{}

func (test) OutputClass() OutputClass { return Test }
func (test) Reportable() bool         { return false }

type testCase struct{}

func (testCase) OutputClass() OutputClass { return TestCase }
func (testCase) Reportable() bool         { return false }

type result struct{}

func (result) OutputClass() OutputClass { return Result }
func (result) Reportable() bool         { return false }

// InTarget is embedded by build steps that name the target they belong to.
type InTarget struct {
	Target string
}

// TargetName returns the build target, empty when the line carried none.
func (t InTarget) TargetName() string { return t.Target }

// Targeted is implemented by every event that embeds InTarget.
type Targeted interface {
	TargetName() string
}

// FileRef names a file by its full path and base name.
type FileRef struct {
	Path     string
	Filename string
}

// TargetHeader is the "=== BUILD TARGET ... ===" family of section headers.
type TargetHeader struct {
	Target        string
	Project       string
	Configuration string
}
