package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/xcfo/pkg/event"
)

type line struct {
	class event.OutputClass
	text  string
}

var mixed = []line{
	{event.Task, "[App] Compiling A.swift"},
	{event.Task, "[App] Compiling B.swift"},
	{event.Warning, "warn B"},
	{event.Task, "[App] Linking App"},
	{event.Error, "err link"},
	{event.Test, "Test Suite M.C started"},
	{event.TestCase, "    + testA (0.002 seconds)"},
	{event.Undefined, "stray"},
	{event.Result, "Build Succeeded"},
}

func route(t *testing.T, mode Mode, ci bool) string {
	t.Helper()
	var buf bytes.Buffer
	r := NewRouter(&buf, mode, ci)
	for _, l := range mixed {
		require.NoError(t, r.Write(l.class, l.text))
	}
	return buf.String()
}

func TestRouter_Write_FiltersByMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		mode Mode
		ci   bool
		want string
	}{
		{"normal prints everything", Normal, false,
			"[App] Compiling A.swift\n[App] Compiling B.swift\nwarn B\n[App] Linking App\nerr link\n" +
				"Test Suite M.C started\n    + testA (0.002 seconds)\nstray\nBuild Succeeded\n"},
		{"quiet keeps diagnostics with their task header", Quiet, false,
			"[App] Compiling B.swift\nwarn B\n[App] Linking App\nerr link\nBuild Succeeded\n"},
		{"quiet in CI keeps test lines", Quiet, true,
			"[App] Compiling B.swift\nwarn B\n[App] Linking App\nerr link\n" +
				"Test Suite M.C started\n    + testA (0.002 seconds)\nBuild Succeeded\n"},
		{"quieter drops warnings", Quieter, false,
			"[App] Linking App\nerr link\nBuild Succeeded\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, route(t, tc.mode, tc.ci))
		})
	}
}

func TestRouter_Write_PrintsHeaderOnce_When_SeveralDiagnosticsFollow(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewRouter(&buf, Quiet, false)
	require.NoError(t, r.Write(event.Task, "[App] Compiling A.swift"))
	require.NoError(t, r.Write(event.Warning, "w1"))
	require.NoError(t, r.Write(event.Error, "e1"))
	assert.Equal(t, "[App] Compiling A.swift\nw1\ne1\n", buf.String())
}

func TestRouter_Passthrough(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, NewRouter(&buf, Normal, false).Passthrough("raw line"))
	assert.Equal(t, "raw line\n", buf.String())

	buf.Reset()
	require.NoError(t, NewRouter(&buf, Quiet, true).Passthrough("raw line"))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRouter_Write_WrapsWriterError(t *testing.T) {
	t.Parallel()
	err := NewRouter(failingWriter{}, Normal, false).Write(event.Result, "x")
	require.Error(t, err)
	assert.ErrorContains(t, err, "writing output: disk full")
}

func TestMode_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "quiet", Quiet.String())
	assert.Equal(t, "quieter", Quieter.String())
}
