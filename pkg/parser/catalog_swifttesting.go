package parser

import (
	"github.com/dkoosis/xcfo/pkg/event"
)

// swift-testing prefixes each line with an SF Symbols glyph from the
// private use area, or a plain Unicode fallback when symbols are disabled.
const (
	glyphStarted = "\U001007C8"
	glyphPassed  = "\U0010105B"
	glyphFailed  = "\U00100884"
	glyphSkipped = "\U0010065F"
	glyphDetails = "\U00100135"

	fallbackStarted = "◇"
	fallbackPassed  = "✔"
	fallbackFailed  = "✘"
	fallbackSkipped = "➜"
	fallbackDetails = "↳"
)

const (
	startedClass = `^[\x{1007C8}◇]\s+`
	passedClass  = `^[\x{10105B}✔]\s+`
	failedClass  = `^[\x{100884}✘]\s+`
	skippedClass = `^[\x{10065F}➜]\s+`
	detailsClass = `^[\x{100135}↳]\s+`

	runStartedPattern    = startedClass + `Test run started\.$`
	runCompletionPattern = passedClass + `Test run with (\d+) tests? passed after ([\d.]+) seconds\.$`
	runFailedPattern     = failedClass + `Test run with (\d+) tests? failed after ([\d.]+) seconds with (\d+) issues?\.$`
)

var (
	startedMarkers = []string{glyphStarted, fallbackStarted}
	passedMarkers  = []string{glyphPassed, fallbackPassed}
	failedMarkers  = []string{glyphFailed, fallbackFailed}
	skippedMarkers = []string{glyphSkipped, fallbackSkipped}
	detailsMarkers = []string{glyphDetails, fallbackDetails}
)

func swiftTestingEntries() []Entry {
	return []Entry{
		entry(event.KindSwiftTestingRunStarted,
			runStartedPattern,
			func([]string) (event.Event, bool) { return emit(event.SwiftTestingRunStarted{}) }).
			marked(startedMarkers...),
		entry(event.KindSwiftTestingRunCompletion,
			runCompletionPattern,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftTestingRunCompletion{Tests: atoi(m[1]), Time: m[2]})
			}).marked(passedMarkers...),
		entry(event.KindSwiftTestingRunFailed,
			runFailedPattern,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftTestingRunFailed{Tests: atoi(m[1]), Time: m[2], Issues: atoi(m[3])})
			}).marked(failedMarkers...),
		entry(event.KindSwiftTestingSuiteStarted,
			startedClass+`Suite (.+) started\.$`,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftTestingSuiteStarted{Suite: m[1]})
			}).marked(startedMarkers...),
		entry(event.KindSwiftTestingSuitePassed,
			passedClass+`Suite (.+) passed after ([\d.]+) seconds\.$`,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftTestingSuitePassed{Suite: m[1], Time: m[2]})
			}).marked(passedMarkers...),
		entry(event.KindSwiftTestingSuiteFailed,
			failedClass+`Suite (.+) failed after ([\d.]+) seconds with (\d+) issues?\.$`,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftTestingSuiteFailed{Suite: m[1], Time: m[2], Issues: atoi(m[3])})
			}).marked(failedMarkers...),
		entry(event.KindSwiftTestingTestStarted,
			startedClass+`Test (.+) started\.$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.SwiftTestingTestStarted{ID: id}
				})
			}).marked(startedMarkers...).excluding(runStartedPattern),
		entry(event.KindSwiftTestingTestPassed,
			passedClass+`Test (.+?)(?: with \d+ test cases?)? passed after ([\d.]+) seconds\.$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.SwiftTestingTestPassed{ID: id, Time: m[2]}
				})
			}).marked(passedMarkers...).excluding(runCompletionPattern),
		entry(event.KindSwiftTestingTestFailed,
			failedClass+`Test (.+?)(?: with \d+ test cases?)? failed after ([\d.]+) seconds(?: with (\d+) issues?)?\.$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.SwiftTestingTestFailed{ID: id, Time: m[2], Issues: atoi(m[3])}
				})
			}).marked(failedMarkers...).excluding(runFailedPattern),
		entry(event.KindSwiftTestingTestSkippedReason,
			skippedClass+`Test (.+) skipped: "(.*)"$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.SwiftTestingTestSkippedReason{ID: id, Reason: m[2]}
				})
			}).marked(skippedMarkers...),
		entry(event.KindSwiftTestingTestSkipped,
			skippedClass+`Test (.+) skipped\.$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.SwiftTestingTestSkipped{ID: id}
				})
			}).marked(skippedMarkers...),
		entry(event.KindSwiftTestingIssueArgument,
			failedClass+`Test (.+?) recorded an issue with (\d+) arguments? (.+) at (.+?:\d+:\d+): (.*)$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.SwiftTestingIssueArgument{
						ID:        id,
						Arguments: m[3],
						Location:  event.ParseFileLocation(m[4]),
						Message:   m[5],
					}
				})
			}).marked(failedMarkers...),
		entry(event.KindSwiftTestingIssue,
			failedClass+`Test (.+?) recorded an issue at (.+?:\d+:\d+): (.*)$`,
			func(m []string) (event.Event, bool) {
				return withID(m[1], func(id event.TestIdentifier) event.Event {
					return event.SwiftTestingIssue{ID: id, Location: event.ParseFileLocation(m[2]), Message: m[3]}
				})
			}).marked(failedMarkers...).excluding(` recorded an issue with \d+ arguments? `),
		entry(event.KindSwiftTestingPassingArgument,
			startedClass+`Passing (\d+) arguments? (.+) to (.+)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftTestingPassingArgument{Count: atoi(m[1]), Arguments: m[2], Test: m[3]})
			}).marked(startedMarkers...),
		entry(event.KindSwiftTestingIssueDetails,
			detailsClass+`(.+)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftTestingIssueDetails{Detail: m[1]})
			}).marked(detailsMarkers...),
	}
}
