package parser

import (
	"github.com/dkoosis/xcfo/pkg/event"
)

const (
	bundleStartedPattern   = `^\s*Test Suite '(?:.*/)?(.*[ox]ctest.*)' started at (.*)$`
	parallelSuitePattern   = `^\s*Test Suite '(.+)' started on '(.+)'$`
	failingTestPattern     = `^\s*(.+:\d+):\serror:\s(?:[+-]\[(.+?)\s(.+?)\]|([\w.]+)\.(\w+))\s:(?:\s'.*'\s\[FAILED\],)?\s(.*)$`
	restartingTestPattern  = `^Restarting after unexpected exit, crash, or test timeout in (.+); summary will include totals from previous launches\.$`
	executedPattern        = `^\s*Executed\s(\d+)\stests?,\swith\s(\d+)\sfailures?\s\((\d+)\sunexpected\)\sin\s(\d+\.\d+)\s\((\d+\.\d+)\)\sseconds$`
	executedSkippedPattern = `^\s*Executed\s(\d+)\stests?,\swith\s(?:(\d+)\stests?\sskipped\sand\s(\d+)\sfailures?\s\((\d+)\sunexpected\)|(\d+)\sfailures?\s\((\d+)\sunexpected\),\s(\d+)\s(?:tests?\s)?skipped)\sin\s(\d+\.\d+)\s\((\d+\.\d+)\)\sseconds$`
)

// withID parses a test identifier and rejects the line when it is malformed.
func withID(s string, build func(id event.TestIdentifier) event.Event) (event.Event, bool) {
	id, ok := testID(s)
	if !ok {
		return nil, false
	}
	return build(id), true
}

func xctestEntries() []Entry {
	return []Entry{
		entry(event.KindTestSuiteStarted,
			bundleStartedPattern,
			func(m []string) (event.Event, bool) {
				return emit(event.TestSuiteStarted{Suite: m[1], Time: m[2]})
			}).marked("Test Suite '"),
		entry(event.KindParallelTestSuiteStarted,
			parallelSuitePattern,
			func(m []string) (event.Event, bool) {
				return emit(event.ParallelTestSuiteStarted{Suite: m[1], Device: m[2]})
			}).marked("Test Suite '"),
		entry(event.KindTestSuiteStart,
			`^\s*Test Suite '(.+?)' started`,
			func(m []string) (event.Event, bool) {
				return emit(event.TestSuiteStart{Suite: m[1]})
			}).marked("Test Suite '").excluding(bundleStartedPattern, parallelSuitePattern),
		entry(event.KindTestsRunCompletion,
			`^\s*Test Suite '(?:.*/)?(.*[ox]ctest.*)' (finished|passed|failed) at (.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.TestsRunCompletion{Suite: m[1], Result: m[2], Time: m[3]})
			}).marked("Test Suite '"),
		entry(event.KindTestSuiteAllTestsPassed,
			`^\s*Test Suite '(All tests|Selected tests)' passed at .*$`,
			func(m []string) (event.Event, bool) {
				return emit(event.TestSuiteAllTestsPassed{Suite: m[1]})
			}).marked("Test Suite '"),
		entry(event.KindTestSuiteAllTestsFailed,
			`^\s*Test Suite '(All tests|Selected tests)' failed at .*$`,
			func(m []string) (event.Event, bool) {
				return emit(event.TestSuiteAllTestsFailed{Suite: m[1]})
			}).marked("Test Suite '"),

		entry(event.KindTestCaseStarted,
			`^\s*Test Case '(.+)' started(?: at .*|\.)?$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.TestCaseStarted{ID: id}
				})
			}).marked("Test Case '"),
		entry(event.KindTestCasePending,
			`^\s*Test Case '(.+?)PENDING(\]?)' passed \((\d*\.\d+) seconds\)\.?$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1]+m[2], func(id event.TestIdentifier) event.Event {
					return event.TestCasePending{ID: id}
				})
			}).marked("Test Case '"),
		entry(event.KindTestCasePassed,
			`^\s*Test Case '(.+)' passed \((\d*\.\d+) seconds\)\.?$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.TestCasePassed{ID: id, Time: m[2]}
				})
			}).marked("Test Case '").excluding(`PENDING\]?' passed \(`),
		entry(event.KindTestCaseFailed,
			`^\s*Test Case '(.+)' failed \((\d*\.\d+) seconds\)\.?$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.TestCaseFailed{ID: id, Time: m[2]}
				})
			}).marked("Test Case '"),
		entry(event.KindTestCaseSkipped,
			`^\s*Test Case '(.+)' skipped \((\d*\.\d+) seconds\)\.?$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.TestCaseSkipped{ID: id, Time: m[2]}
				})
			}).marked("Test Case '"),
		entry(event.KindTestCaseMeasured,
			`^[^:]*:[^:]*:\sTest Case '(.+?)' measured \[([^,]*),\s([^\]]*)\] average: (\d*\.\d+), relative standard deviation: (\d*\.\d+)`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.TestCaseMeasured{ID: id, UnitName: m[2], Unit: m[3], Time: m[4], Deviation: m[5]}
				})
			}),
		entry(event.KindFailingTest,
			failingTestPattern,
			func(m []string) (event.Event, bool) {
				id := event.TestIdentifier{Suite: m[2], Name: m[3]}
				if m[2] == "" {
					id = event.TestIdentifier{Suite: m[4], Name: m[5]}
				}
				return emit(event.FailingTest{Location: event.ParseFileLocation(m[1]), ID: id, Reason: m[6]})
			}),
		entry(event.KindUIFailingTest,
			`^\s{4}t = \s+\d+\.\d+s\s+Assertion Failure: (.+:\d+): (.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.UIFailingTest{Location: event.ParseFileLocation(m[1]), Reason: m[2]})
			}),
		entry(event.KindRestartingTest,
			restartingTestPattern,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.RestartingTest{ID: id, Message: m[0]}
				})
			}).marked("Restarting after"),
		entry(event.KindExecutedWithoutSkipped,
			executedPattern,
			func(m []string) (event.Event, bool) {
				return emit(event.ExecutedWithoutSkipped{Executed: event.Executed{
					Tests:      atoi(m[1]),
					Failures:   atoi(m[2]),
					Unexpected: atoi(m[3]),
					Time:       atof(m[4]),
					TotalTime:  atof(m[5]),
				}})
			}).marked("Executed ").gated(),
		entry(event.KindExecutedWithSkipped,
			executedSkippedPattern,
			func(m []string) (event.Event, bool) {
				// "S tests skipped and F failures (U unexpected)" or
				// "F failures (U unexpected), S skipped".
				skipped, failures, unexpected := m[2], m[3], m[4]
				if skipped == "" {
					failures, unexpected, skipped = m[5], m[6], m[7]
				}
				return emit(event.ExecutedWithSkipped{Executed: event.Executed{
					Tests:      atoi(m[1]),
					Skipped:    atoi(skipped),
					Failures:   atoi(failures),
					Unexpected: atoi(unexpected),
					Time:       atof(m[8]),
					TotalTime:  atof(m[9]),
				}})
			}).marked("Executed ").gated(),

		entry(event.KindParallelTestingStarted,
			`^Testing started on '(.+)'$`,
			func(m []string) (event.Event, bool) {
				return emit(event.ParallelTestingStarted{Device: m[1]})
			}).marked("Testing started on"),
		entry(event.KindParallelTestingPassed,
			`^Testing passed on '(.+)'$`,
			func(m []string) (event.Event, bool) {
				return emit(event.ParallelTestingPassed{Device: m[1]})
			}).marked("Testing passed on"),
		entry(event.KindParallelTestingFailed,
			`^Testing failed on '(.+)'$`,
			func(m []string) (event.Event, bool) {
				return emit(event.ParallelTestingFailed{Device: m[1]})
			}).marked("Testing failed on"),
		entry(event.KindParallelTestCasePassed,
			`^\s*Test case '(.+)' passed on '(.+)' \((\d*\.\d+) seconds\)$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.ParallelTestCasePassed{ID: id, Device: m[2], Time: m[3]}
				})
			}).marked("Test case '").excluding(`^\s*Test case '[+-]\[`),
		entry(event.KindParallelTestCaseAppKitPassed,
			`^\s*Test case '([+-]\[.+\])' passed on '(.+)' \((\d*\.\d+) seconds\)$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.ParallelTestCaseAppKitPassed{ID: id, Device: m[2], Time: m[3]}
				})
			}).marked("Test case '"),
		entry(event.KindParallelTestCaseFailed,
			`^\s*Test case '(.+)' failed on '(.+)' \((\d*\.\d+) seconds\)$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.ParallelTestCaseFailed{ID: id, Device: m[2], Time: m[3]}
				})
			}).marked("Test case '"),
		entry(event.KindParallelTestCaseSkipped,
			`^\s*Test case '(.+)' skipped on '(.+)' \((\d*\.\d+) seconds\)$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.ParallelTestCaseSkipped{ID: id, Device: m[2], Time: m[3]}
				})
			}).marked("Test case '"),
	}
}
