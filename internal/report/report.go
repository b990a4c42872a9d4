// Package report writes generated reports to disk.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkoosis/xcfo/pkg/junit"
)

// Kind names a report type accepted by --report.
type Kind string

// JUnit is the only report kind.
const JUnit Kind = "junit"

// ParseKind validates a --report value.
func ParseKind(s string) (Kind, error) {
	if Kind(s) == JUnit {
		return JUnit, nil
	}
	return "", fmt.Errorf("unknown report kind %q (want %q)", s, JUnit)
}

// WriteJUnit creates dir when missing and writes doc to dir/filename. It
// returns the written path.
func WriteJUnit(dir, filename string, doc *junit.Document) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory %s: %w", dir, err)
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // reports are meant to be shared
		return "", fmt.Errorf("writing junit report %s: %w", path, err)
	}
	return path, nil
}
