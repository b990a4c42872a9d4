package render

import (
	"regexp"
	"strconv"
)

// Timing colour thresholds, in seconds and percent.
const (
	slowTestWarn      = 0.025
	slowTestError     = 0.100
	deviationWarn     = 1.0
	deviationErrorPct = 10.0
)

// decimal is the only number shape xcodebuild prints for timings.
var decimal = regexp.MustCompile(`^\d*\.?\d+$`)

// ColoredTime colours a test duration: under 25ms plain, under 100ms
// yellow, otherwise red. Unparsable input is returned unchanged.
func (t *Terminal) ColoredTime(seconds string) string {
	return t.threshold(seconds, slowTestWarn, slowTestError)
}

// ColoredDeviation colours a relative standard deviation in percent: under
// 1 plain, under 10 yellow, otherwise red.
func (t *Terminal) ColoredDeviation(percent string) string {
	return t.threshold(percent, deviationWarn, deviationErrorPct)
}

func (t *Terminal) threshold(s string, warn, fail float64) string {
	if !t.colored || !decimal.MatchString(s) {
		return s
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	switch {
	case v < warn:
		return s
	case v < fail:
		return t.theme.Warning.Render(s)
	default:
		return t.theme.Error.Render(s)
	}
}
