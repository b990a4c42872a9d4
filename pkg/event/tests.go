package event

// XCTest runner events.

// TestSuiteStarted is the start of a test bundle ("Foo.xctest").
type TestSuiteStarted struct {
	test
	Suite string
	Time  string
}

type ParallelTestSuiteStarted struct {
	test
	Suite  string
	Device string
}

// TestSuiteStart is the start of a named suite such as "All tests" or a
// test class.
type TestSuiteStart struct {
	test
	Suite string
}

// TestsRunCompletion is the end of a test bundle.
type TestsRunCompletion struct {
	test
	Suite  string
	Result string
	Time   string
}

// TestSuiteAllTestsPassed and TestSuiteAllTestsFailed close the outermost
// suite. The Executed line that follows carries the run totals.
type TestSuiteAllTestsPassed struct {
	result
	Suite string
}

type TestSuiteAllTestsFailed struct {
	result
	Suite string
}

type TestCaseStarted struct {
	testCase
	ID TestIdentifier
}

type TestCasePending struct {
	testCase
	ID TestIdentifier
}

type TestCasePassed struct {
	testCase
	ID   TestIdentifier
	Time string
}

// TestCaseFailed is the "failed (t seconds)" closer. The failure itself
// arrives earlier as a FailingTest.
type TestCaseFailed struct {
	testCase
	ID   TestIdentifier
	Time string
}

type TestCaseSkipped struct {
	testCase
	ID   TestIdentifier
	Time string
}

type TestCaseMeasured struct {
	testCase
	ID        TestIdentifier
	UnitName  string
	Unit      string
	Time      string
	Deviation string
}

// FailingTest is an assertion failure attributed to a test.
type FailingTest struct {
	failure
	Location FileLocation
	ID       TestIdentifier
	Reason   string
}

type UIFailingTest struct {
	failure
	Location FileLocation
	Reason   string
}

// RestartingTest is the crash or timeout notice. It has no matching
// started or finished line.
type RestartingTest struct {
	failure
	ID      TestIdentifier
	Message string
}

// Executed holds the counts of an "Executed N tests" summary line.
type Executed struct {
	Tests      int
	Skipped    int
	Failures   int
	Unexpected int
	Time       float64
	TotalTime  float64
}

type ExecutedWithoutSkipped struct {
	result
	Executed
}

type ExecutedWithSkipped struct {
	result
	Executed
}

type ParallelTestingStarted struct {
	test
	Device string
}

type ParallelTestingPassed struct {
	result
	Device string
}

type ParallelTestingFailed struct {
	result
	Device string
}

type ParallelTestCasePassed struct {
	testCase
	ID     TestIdentifier
	Device string
	Time   string
}

// ParallelTestCaseAppKitPassed is the selector-form variant printed for
// macOS test hosts.
type ParallelTestCaseAppKitPassed struct {
	testCase
	ID     TestIdentifier
	Device string
	Time   string
}

type ParallelTestCaseFailed struct {
	failure
	ID     TestIdentifier
	Device string
	Time   string
}

type ParallelTestCaseSkipped struct {
	testCase
	ID     TestIdentifier
	Device string
	Time   string
}

func (TestSuiteStarted) Kind() Kind             { return KindTestSuiteStarted }
func (ParallelTestSuiteStarted) Kind() Kind     { return KindParallelTestSuiteStarted }
func (TestSuiteStart) Kind() Kind               { return KindTestSuiteStart }
func (TestsRunCompletion) Kind() Kind           { return KindTestsRunCompletion }
func (TestSuiteAllTestsPassed) Kind() Kind      { return KindTestSuiteAllTestsPassed }
func (TestSuiteAllTestsFailed) Kind() Kind      { return KindTestSuiteAllTestsFailed }
func (TestCaseStarted) Kind() Kind              { return KindTestCaseStarted }
func (TestCasePending) Kind() Kind              { return KindTestCasePending }
func (TestCasePassed) Kind() Kind               { return KindTestCasePassed }
func (TestCaseFailed) Kind() Kind               { return KindTestCaseFailed }
func (TestCaseSkipped) Kind() Kind              { return KindTestCaseSkipped }
func (TestCaseMeasured) Kind() Kind             { return KindTestCaseMeasured }
func (FailingTest) Kind() Kind                  { return KindFailingTest }
func (UIFailingTest) Kind() Kind                { return KindUIFailingTest }
func (RestartingTest) Kind() Kind               { return KindRestartingTest }
func (ExecutedWithoutSkipped) Kind() Kind       { return KindExecutedWithoutSkipped }
func (ExecutedWithSkipped) Kind() Kind          { return KindExecutedWithSkipped }
func (ParallelTestingStarted) Kind() Kind       { return KindParallelTestingStarted }
func (ParallelTestingPassed) Kind() Kind        { return KindParallelTestingPassed }
func (ParallelTestingFailed) Kind() Kind        { return KindParallelTestingFailed }
func (ParallelTestCasePassed) Kind() Kind       { return KindParallelTestCasePassed }
func (ParallelTestCaseAppKitPassed) Kind() Kind { return KindParallelTestCaseAppKitPassed }
func (ParallelTestCaseFailed) Kind() Kind       { return KindParallelTestCaseFailed }
func (ParallelTestCaseSkipped) Kind() Kind      { return KindParallelTestCaseSkipped }

func (TestCaseStarted) Reportable() bool              { return true }
func (TestCasePassed) Reportable() bool               { return true }
func (TestCaseSkipped) Reportable() bool              { return true }
func (TestCaseMeasured) Reportable() bool             { return true }
func (FailingTest) Reportable() bool                  { return true }
func (RestartingTest) Reportable() bool               { return true }
func (ParallelTestCasePassed) Reportable() bool       { return true }
func (ParallelTestCaseAppKitPassed) Reportable() bool { return true }
func (ParallelTestCaseFailed) Reportable() bool       { return true }
func (ParallelTestCaseSkipped) Reportable() bool      { return true }
