package event

// swift-testing runner events. Times are kept as printed.

type SwiftTestingRunStarted struct{ test }

type SwiftTestingRunCompletion struct {
	result
	Tests int
	Time  string
}

type SwiftTestingRunFailed struct {
	result
	Tests  int
	Time   string
	Issues int
}

type SwiftTestingSuiteStarted struct {
	test
	Suite string
}

type SwiftTestingSuitePassed struct {
	test
	Suite string
	Time  string
}

type SwiftTestingSuiteFailed struct {
	failure
	Suite  string
	Time   string
	Issues int
}

type SwiftTestingTestStarted struct {
	testCase
	ID TestIdentifier
}

type SwiftTestingTestPassed struct {
	testCase
	ID   TestIdentifier
	Time string
}

type SwiftTestingTestFailed struct {
	failure
	ID     TestIdentifier
	Time   string
	Issues int
}

type SwiftTestingTestSkipped struct {
	testCase
	ID TestIdentifier
}

type SwiftTestingTestSkippedReason struct {
	testCase
	ID     TestIdentifier
	Reason string
}

// SwiftTestingIssue is an expectation failure recorded against a test.
type SwiftTestingIssue struct {
	failure
	ID       TestIdentifier
	Location FileLocation
	Message  string
}

// SwiftTestingIssueArgument is an issue recorded by one case of a
// parameterized test.
type SwiftTestingIssueArgument struct {
	failure
	ID        TestIdentifier
	Arguments string
	Location  FileLocation
	Message   string
}

// SwiftTestingPassingArgument announces the arguments handed to one case
// of a parameterized test.
type SwiftTestingPassingArgument struct {
	test
	Count     int
	Arguments string
	Test      string
}

// SwiftTestingIssueDetails is an indented detail line under an issue.
type SwiftTestingIssueDetails struct {
	failure
	Detail string
}

func (SwiftTestingRunStarted) Kind() Kind        { return KindSwiftTestingRunStarted }
func (SwiftTestingRunCompletion) Kind() Kind     { return KindSwiftTestingRunCompletion }
func (SwiftTestingRunFailed) Kind() Kind         { return KindSwiftTestingRunFailed }
func (SwiftTestingSuiteStarted) Kind() Kind      { return KindSwiftTestingSuiteStarted }
func (SwiftTestingSuitePassed) Kind() Kind       { return KindSwiftTestingSuitePassed }
func (SwiftTestingSuiteFailed) Kind() Kind       { return KindSwiftTestingSuiteFailed }
func (SwiftTestingTestStarted) Kind() Kind       { return KindSwiftTestingTestStarted }
func (SwiftTestingTestPassed) Kind() Kind        { return KindSwiftTestingTestPassed }
func (SwiftTestingTestFailed) Kind() Kind        { return KindSwiftTestingTestFailed }
func (SwiftTestingTestSkipped) Kind() Kind       { return KindSwiftTestingTestSkipped }
func (SwiftTestingTestSkippedReason) Kind() Kind { return KindSwiftTestingTestSkippedReason }
func (SwiftTestingIssue) Kind() Kind             { return KindSwiftTestingIssue }
func (SwiftTestingIssueArgument) Kind() Kind     { return KindSwiftTestingIssueArgument }
func (SwiftTestingPassingArgument) Kind() Kind   { return KindSwiftTestingPassingArgument }
func (SwiftTestingIssueDetails) Kind() Kind      { return KindSwiftTestingIssueDetails }

func (SwiftTestingTestStarted) Reportable() bool       { return true }
func (SwiftTestingTestPassed) Reportable() bool        { return true }
func (SwiftTestingTestFailed) Reportable() bool        { return true }
func (SwiftTestingTestSkipped) Reportable() bool       { return true }
func (SwiftTestingTestSkippedReason) Reportable() bool { return true }
func (SwiftTestingIssue) Reportable() bool             { return true }
func (SwiftTestingIssueArgument) Reportable() bool     { return true }
