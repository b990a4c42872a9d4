package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xctestRun = `=== BUILD TARGET AppTests OF PROJECT App WITH CONFIGURATION Debug ===
CompileSwift normal arm64 /src/App/Model.swift (in target 'App' from project 'App')
/src/App/Model.swift:8:5: warning: variable 'x' was never used
    var x = 1
    ^
Test Suite 'All tests' started at 2024-01-01 12:00:00.000
Test Case '-[AppTests.ModelTests testA]' started.
Test Case '-[AppTests.ModelTests testA]' passed (0.002 seconds).
Test Case '-[AppTests.ModelTests testB]' started.
/src/AppTests/ModelTests.swift:20: error: -[AppTests.ModelTests testB] : XCTAssertEqual failed: ("1") is not equal to ("2")
Test Case '-[AppTests.ModelTests testB]' failed (0.004 seconds).
Test Suite 'All tests' failed at 2024-01-01 12:00:00.010.
Executed 2 tests, with 1 failure (0 unexpected) in 0.006 (0.010) seconds
** TEST FAILED **
`

type result struct {
	code   int
	stdout string
	stderr string
}

// invoke runs the command with an isolated environment and no TTY.
func invoke(t *testing.T, env map[string]string, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		lookup: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
		workDir: t.TempDir(),
		isTTY:   func(io.Writer) bool { return false },
	}
	code := a.run(args)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_FormatsForTerminal(t *testing.T) {
	t.Parallel()
	res := invoke(t, nil, xctestRun, "--theme", "ascii")

	require.Equal(t, exitOK, res.code, res.stderr)
	want := strings.Join([]string{
		"Build target AppTests of project App with configuration Debug",
		"[App] Compiling Model.swift",
		"[!] /src/App/Model.swift:8:5: variable 'x' was never used",
		"        var x = 1",
		"        ^",
		"All tests",
		"    + testA (0.002 seconds)",
		`    x testB, XCTAssertEqual failed: ("1") is not equal to ("2")`,
		"Test Failed",
		"Tests Failed: 1 failed, 0 skipped, 2 total (0.006 seconds)",
	}, "\n") + "\n"
	assert.Equal(t, want, res.stdout)
	assert.NotContains(t, res.stdout, "\x1b[", "no colour off a TTY")
}

func TestRun_OnlyPrintsDiagnostics_When_Quieter(t *testing.T) {
	t.Parallel()
	res := invoke(t, nil, xctestRun, "-qq", "--theme", "ascii")

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t,
		"[App] Compiling Model.swift\n"+
			`    x testB, XCTAssertEqual failed: ("1") is not equal to ("2")`+"\n"+
			"Test Failed\n"+
			"Tests Failed: 1 failed, 0 skipped, 2 total (0.006 seconds)\n",
		res.stdout)
}

func TestRun_UsesAnnotationDialect_When_RunningOnGitHubActions(t *testing.T) {
	t.Parallel()
	res := invoke(t, map[string]string{"GITHUB_ACTIONS": "true"}, xctestRun, "--quiet")

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "::warning file=/src/App/Model.swift,line=8,col=5::variable 'x' was never used%0A    var x = 1%0A    ^\n")
	assert.Contains(t, res.stdout, `::error file=/src/AppTests/ModelTests.swift,line=20::testB, XCTAssertEqual failed: ("1") is not equal to ("2")`)
	assert.Contains(t, res.stdout, "    ✔ testA (0.002 seconds)\n", "CI keeps test lines in quiet mode")
}

func TestRun_WritesJUnitReport(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "reports")
	res := invoke(t, nil, xctestRun, "--report", "junit", "--report-path", dir, "--junit-report-filename", "tests.xml")

	require.Equal(t, exitOK, res.code, res.stderr)
	data, err := os.ReadFile(filepath.Join(dir, "tests.xml"))
	require.NoError(t, err)
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
			`<testsuites tests="2" failures="1"><testsuite name="AppTests.ModelTests" tests="2" failures="1">`+
			`<testcase classname="AppTests.ModelTests" name="testA" time="0.002"/>`+
			`<testcase classname="AppTests.ModelTests" name="testB">`+
			`<failure message="/src/AppTests/ModelTests.swift:20: XCTAssertEqual failed: (&#34;1&#34;) is not equal to (&#34;2&#34;)"/>`+
			`</testcase></testsuite></testsuites>`+"\n",
		string(data))
	assert.Contains(t, res.stderr, "wrote junit report")
}

func TestRun_ExitsOne_When_ReportCannotBeWritten(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	res := invoke(t, nil, xctestRun, "--report", "junit", "--report-path", filepath.Join(blocker, "reports"))
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "writing report failed")
}

func TestRun_ExitsTwo_When_ConfigurationInvalid(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{
		{"--renderer", "jenkins"},
		{"--theme", "neon"},
		{"--report", "html"},
		{"--no-such-flag"},
	} {
		res := invoke(t, nil, "", args...)
		assert.Equal(t, exitConfig, res.code, args)
		assert.NotEmpty(t, res.stderr, args)
	}
}

func TestRun_DisableLoggingSilencesStderr(t *testing.T) {
	t.Parallel()
	res := invoke(t, nil, "", "--renderer", "jenkins", "--disable-logging")
	assert.Equal(t, exitConfig, res.code)
	assert.Empty(t, res.stderr)
}

func TestRun_PreservesUnrecognisedLines(t *testing.T) {
	t.Parallel()
	res := invoke(t, nil, "hello from a build script\n", "--preserve-unbeautified")
	require.Equal(t, exitOK, res.code)
	assert.Equal(t, "hello from a build script\n", res.stdout)

	res = invoke(t, nil, "hello from a build script\n")
	require.Equal(t, exitOK, res.code)
	assert.Empty(t, res.stdout)
}

func TestRun_VersionCommand(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "xcfo dev (commit unknown, built unknown)\n", stdout.String())
}

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"--quieter", "-q", "--report", "junit"}, normalizeArgs([]string{"-qq", "-q", "--report", "junit"}))
}
