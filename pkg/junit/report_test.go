package junit

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/xcfo/pkg/event"
	"github.com/dkoosis/xcfo/pkg/parser"
)

func feed(t *testing.T, r *Report, lines ...string) {
	t.Helper()
	p := parser.New()
	for _, line := range lines {
		if ev := p.Parse(line); ev != nil {
			r.Add(ev)
		}
	}
}

func id(suite, name string) event.TestIdentifier {
	return event.TestIdentifier{Suite: suite, Name: name}
}

func TestGenerate_MatchesWorkedExample(t *testing.T) {
	t.Parallel()
	r := New()
	feed(t, r,
		"Test Suite 'All tests' started at 2024-01-01 12:00:00.000",
		"Test Case '-[M.C testA]' started.",
		"Test Case '-[M.C testA]' passed (0.002 seconds).",
		"Test Suite 'All tests' passed at 2024-01-01 12:00:00.002.",
		"Executed 1 test, with 0 failures (0 unexpected) in 0.002 (0.002) seconds",
	)

	want := `<testsuites tests="1" failures="0"><testsuite name="M.C" tests="1" failures="0">` +
		`<testcase classname="M.C" name="testA" time="0.002"/></testsuite></testsuites>`
	assert.Equal(t, want, string(r.Generate().XML()))
}

func TestGenerate_SerializesFailuresAndSkips(t *testing.T) {
	t.Parallel()
	r := New()
	feed(t, r,
		"Test Case '-[M.C testA]' started.",
		"/src/C.swift:9: error: -[M.C testA] : XCTAssertTrue failed",
		"Test Case '-[M.C testA]' failed (0.010 seconds).",
		"Test Case '-[M.C testB]' skipped (0.000 seconds).",
	)

	want := `<testsuites tests="2" failures="1"><testsuite name="M.C" tests="2" failures="1">` +
		`<testcase classname="M.C" name="testA"><failure message="/src/C.swift:9: XCTAssertTrue failed"/></testcase>` +
		`<testcase classname="M.C" name="testB" time="0.000"><skipped/></testcase>` +
		`</testsuite></testsuites>`
	assert.Equal(t, want, string(r.Generate().XML()))
}

func TestGenerate_KeepsCountsConsistent_When_EventsArrive(t *testing.T) {
	t.Parallel()
	events := []event.Event{
		event.TestCaseStarted{ID: id("A.X", "t1")},
		event.TestCasePassed{ID: id("A.X", "t1"), Time: "0.1"},
		event.SwiftTestingTestStarted{ID: id("", "free()")},
		event.FailingTest{ID: id("A.Y", "t2"), Reason: "boom"},
		event.TestCasePassed{ID: id("A.Y", "t2"), Time: "0.2"},
		event.SwiftTestingIssue{ID: id("", "free()"), Message: "nope"},
		event.ParallelTestCaseFailed{ID: id("A.X", "t3"), Device: "iPhone"},
	}
	r := New()
	for _, e := range events {
		r.Add(e)
		doc := r.Generate()
		var tests, failures int
		for _, s := range doc.Suites {
			caseFailures := 0
			for _, c := range s.Cases {
				if c.Status == StatusFailed {
					caseFailures++
				}
			}
			assert.Equal(t, len(s.Cases), s.Tests)
			assert.Equal(t, caseFailures, s.Failures)
			tests += s.Tests
			failures += s.Failures
		}
		assert.Equal(t, tests, doc.Tests)
		assert.Equal(t, failures, doc.Failures)
	}

	tests, failures := r.Stats()
	assert.Equal(t, 4, tests)
	assert.Equal(t, 2, failures)
}

func TestAdd_OverwritesRecord_When_TerminalEventRepeats(t *testing.T) {
	t.Parallel()
	r := New()
	r.Add(event.TestCasePassed{ID: id("M.C", "testA"), Time: "0.001"})
	r.Add(event.FailingTest{ID: id("M.C", "testA"), Location: event.FileLocation{Path: "C.swift", Line: 3}, Reason: "late"})

	doc := r.Generate()
	require.Len(t, doc.Suites, 1)
	require.Len(t, doc.Suites[0].Cases, 1)
	c := doc.Suites[0].Cases[0]
	assert.Equal(t, StatusFailed, c.Status)
	assert.Equal(t, "C.swift:3: late", c.Message)
	assert.Empty(t, c.Time, "failed records omit time")

	r.Add(event.TestCasePassed{ID: id("M.C", "testA"), Time: "0.004"})
	c = r.Generate().Suites[0].Cases[0]
	assert.Equal(t, StatusPassed, c.Status)
	assert.Equal(t, "0.004", c.Time)
	assert.Empty(t, c.Message)
}

func TestAdd_KeepsIssueMessage_When_TestFailedLineFollows(t *testing.T) {
	t.Parallel()
	r := New()
	feed(t, r,
		"◇ Test division() started.",
		"✘ Test division() recorded an issue at M.swift:20:9: Expectation failed",
		"✘ Test division() failed after 0.002 seconds with 1 issue.",
	)

	doc := r.Generate()
	require.Len(t, doc.Suites, 1)
	assert.Equal(t, DefaultSuite, doc.Suites[0].Name)
	c := doc.Suites[0].Cases[0]
	assert.Equal(t, "division()", c.Name)
	assert.Equal(t, StatusFailed, c.Status)
	assert.Equal(t, "M.swift:20:9: Expectation failed", c.Message)
}

func TestAdd_SynthesizesRecord_When_TestProcessRestarts(t *testing.T) {
	t.Parallel()
	r := New()
	notice := "Restarting after unexpected exit, crash, or test timeout in -[App.CrashTests testCrash]; summary will include totals from previous launches."
	feed(t, r, notice)

	doc := r.Generate()
	require.Len(t, doc.Suites, 1)
	assert.Equal(t, "App.CrashTests", doc.Suites[0].Name)
	c := doc.Suites[0].Cases[0]
	assert.Equal(t, "testCrash", c.Name)
	assert.Equal(t, StatusFailed, c.Status)
	assert.Equal(t, notice, c.Message)
}

func TestGenerate_RecordsZeroTime_When_SwiftTestingSkips(t *testing.T) {
	t.Parallel()
	r := New()
	feed(t, r,
		`➜ Test later() skipped.`,
		`➜ Test soon() skipped: "Not ready"`,
	)
	assert.Equal(t,
		`<testsuites tests="2" failures="0"><testsuite name="SwiftTesting" tests="2" failures="0">`+
			`<testcase classname="SwiftTesting" name="later()" time="0"><skipped/></testcase>`+
			`<testcase classname="SwiftTesting" name="soon()" time="0"><skipped/></testcase>`+
			`</testsuite></testsuites>`,
		string(r.Generate().XML()))
}

func TestGenerate_OmitsStatusAndTime_When_RecordOnlyStarted(t *testing.T) {
	t.Parallel()
	r := New()
	r.Add(event.TestCaseStarted{ID: id("M.C", "testHang")})
	assert.Equal(t,
		`<testsuites tests="1" failures="0"><testsuite name="M.C" tests="1" failures="0"><testcase classname="M.C" name="testHang"/></testsuite></testsuites>`,
		string(r.Generate().XML()))
}

func TestAdd_IgnoresNonReportableEvents(t *testing.T) {
	t.Parallel()
	r := New()
	r.Add(nil)
	r.Add(event.TestSuiteStart{Suite: "All tests"})
	r.Add(event.TestCaseFailed{ID: id("M.C", "t")})
	r.Add(event.CompileError{Reason: "x"})
	assert.Equal(t, `<testsuites tests="0" failures="0"></testsuites>`, string(r.Generate().XML()))
}

func TestXML_RoundTripsEscapedMessages(t *testing.T) {
	t.Parallel()
	msg := `expected "a" & <b> 'c'` + "\nsecond line"
	r := New()
	r.Add(event.SwiftTestingTestFailed{ID: id("S", "t")})
	r.Add(event.FailingTest{ID: id("S", "t"), Location: event.FileLocation{Path: "f"}, Reason: msg})

	var parsed struct {
		Suites []struct {
			Cases []struct {
				Name    string `xml:"name,attr"`
				Failure *struct {
					Message string `xml:"message,attr"`
				} `xml:"failure"`
			} `xml:"testcase"`
		} `xml:"testsuite"`
	}
	require.NoError(t, xml.Unmarshal(r.Generate().XML(), &parsed))
	require.Len(t, parsed.Suites, 1)
	require.Len(t, parsed.Suites[0].Cases, 1)
	require.NotNil(t, parsed.Suites[0].Cases[0].Failure)
	assert.Equal(t, "f: "+msg, parsed.Suites[0].Cases[0].Failure.Message)
}

func TestWriteTo_AddsDeclarationAndNewline(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n, err := New().Generate().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, strings.HasPrefix(buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`+"\n<testsuites"))
	assert.True(t, strings.HasSuffix(buf.String(), "</testsuites>\n"))
}
