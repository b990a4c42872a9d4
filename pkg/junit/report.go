// Package junit rebuilds a suite/testcase tree from test lifecycle events
// and serializes it as JUnit XML.
package junit

import (
	"github.com/dkoosis/xcfo/pkg/event"
)

// DefaultSuite collects tests whose identifier names no suite, such as
// swift-testing free functions.
const DefaultSuite = "SwiftTesting"

// Status is the outcome of one test case.
type Status int

const (
	// StatusPending is a started test with no terminal event yet.
	StatusPending Status = iota
	StatusPassed
	StatusFailed
	StatusSkipped
)

// skippedTime is recorded for skips whose line carries no duration.
const skippedTime = "0"

// Report accumulates test cases. It is not safe for concurrent use.
type Report struct {
	suites map[string]*suiteState
	order  []string
}

type suiteState struct {
	name      string
	cases     map[string]*caseState
	caseOrder []string
}

type caseState struct {
	name    string
	time    string
	status  Status
	message string
}

// New returns an empty report.
func New() *Report {
	return &Report{suites: make(map[string]*suiteState)}
}

// Add folds one event into the report. Events that carry no test lifecycle
// information are ignored.
//
//nolint:gocyclo,cyclop // one arm per reportable shape
func (r *Report) Add(e event.Event) {
	if e == nil || !e.Reportable() {
		return
	}
	switch e := e.(type) {
	case event.TestCaseStarted:
		r.start(e.ID)
	case event.TestCasePassed:
		r.finish(e.ID, StatusPassed, e.Time, "")
	case event.TestCaseSkipped:
		r.finish(e.ID, StatusSkipped, e.Time, "")
	case event.TestCaseMeasured:
		r.finish(e.ID, StatusPassed, e.Time, "")
	case event.FailingTest:
		r.finish(e.ID, StatusFailed, "", e.Location.String()+": "+e.Reason)
	case event.RestartingTest:
		// The notice has no started/finished pair; it stands for the whole
		// record.
		r.finish(e.ID, StatusFailed, "", e.Message)
	case event.ParallelTestCasePassed:
		r.finish(e.ID, StatusPassed, e.Time, "")
	case event.ParallelTestCaseAppKitPassed:
		r.finish(e.ID, StatusPassed, e.Time, "")
	case event.ParallelTestCaseFailed:
		r.finish(e.ID, StatusFailed, "", "Test case failed on '"+e.Device+"'")
	case event.ParallelTestCaseSkipped:
		r.finish(e.ID, StatusSkipped, e.Time, "")
	case event.SwiftTestingTestStarted:
		r.start(e.ID)
	case event.SwiftTestingTestPassed:
		r.finish(e.ID, StatusPassed, e.Time, "")
	case event.SwiftTestingTestFailed:
		r.finish(e.ID, StatusFailed, "", "")
	case event.SwiftTestingTestSkipped:
		r.finish(e.ID, StatusSkipped, skippedTime, "")
	case event.SwiftTestingTestSkippedReason:
		r.finish(e.ID, StatusSkipped, skippedTime, "")
	case event.SwiftTestingIssue:
		r.finish(e.ID, StatusFailed, "", e.Location.String()+": "+e.Message)
	case event.SwiftTestingIssueArgument:
		r.finish(e.ID, StatusFailed, "", e.Location.String()+": "+e.Message+" ("+e.Arguments+")")
	}
}

// start creates or resets the record for id.
func (r *Report) start(id event.TestIdentifier) {
	c := r.getOrCreate(id)
	*c = caseState{name: c.name}
}

// finish sets the terminal state of id, creating the record when no start
// was seen. A later call for the same id overwrites the earlier one. An
// empty failure message keeps one recorded earlier, so a test's final
// "failed" line does not erase the issue that caused it.
func (r *Report) finish(id event.TestIdentifier, status Status, time, message string) {
	c := r.getOrCreate(id)
	if status == StatusFailed && message == "" && c.status == StatusFailed {
		message = c.message
	}
	c.status = status
	c.message = message
	c.time = time
	if status == StatusFailed {
		c.time = ""
	}
}

func (r *Report) getOrCreate(id event.TestIdentifier) *caseState {
	key := id.Suite
	if key == "" {
		key = DefaultSuite
	}
	s, ok := r.suites[key]
	if !ok {
		s = &suiteState{name: key, cases: make(map[string]*caseState)}
		r.suites[key] = s
		r.order = append(r.order, key)
	}
	c, ok := s.cases[id.Name]
	if !ok {
		c = &caseState{name: id.Name}
		s.cases[id.Name] = c
		s.caseOrder = append(s.caseOrder, id.Name)
	}
	return c
}

// Stats returns the total test and failure counts of the current state.
func (r *Report) Stats() (tests, failures int) {
	doc := r.Generate()
	return doc.Tests, doc.Failures
}

// Generate snapshots the report. Counts are recomputed from the cases on
// every call.
func (r *Report) Generate() *Document {
	doc := &Document{Suites: make([]Suite, 0, len(r.order))}
	for _, key := range r.order {
		s := r.suites[key]
		out := Suite{Name: s.name, Cases: make([]Case, 0, len(s.caseOrder))}
		for _, name := range s.caseOrder {
			c := s.cases[name]
			out.Cases = append(out.Cases, Case{
				Classname: s.name,
				Name:      c.name,
				Time:      c.time,
				Status:    c.status,
				Message:   c.message,
			})
			out.Tests++
			if c.status == StatusFailed {
				out.Failures++
			}
		}
		doc.Suites = append(doc.Suites, out)
		doc.Tests += out.Tests
		doc.Failures += out.Failures
	}
	return doc
}
