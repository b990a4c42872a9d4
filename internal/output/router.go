// Package output decides which rendered lines reach the user.
package output

import (
	"fmt"
	"io"

	"github.com/dkoosis/xcfo/pkg/event"
)

// Mode is the verbosity level.
type Mode int

const (
	// Normal prints everything.
	Normal Mode = iota
	// Quiet prints warnings, errors and results. Task lines survive only as
	// the header of a diagnostic that follows them.
	Quiet
	// Quieter is Quiet without warnings.
	Quieter
)

func (m Mode) String() string {
	switch m {
	case Quiet:
		return "quiet"
	case Quieter:
		return "quieter"
	default:
		return "normal"
	}
}

// Router filters rendered lines by output class and writes the survivors.
// It is not safe for concurrent use.
type Router struct {
	w    io.Writer
	mode Mode
	ci   bool

	// header is the last task line dropped in Quiet/Quieter mode.
	header string
}

// NewRouter returns a router writing to w. With ci set, test and test case
// lines pass in every mode.
func NewRouter(w io.Writer, mode Mode, ci bool) *Router {
	return &Router{w: w, mode: mode, ci: ci}
}

// Mode returns the router's verbosity.
func (r *Router) Mode() Mode { return r.mode }

// Write routes one rendered line of the given class.
func (r *Router) Write(class event.OutputClass, s string) error {
	quiet := r.mode != Normal
	switch class {
	case event.Task:
		if quiet {
			r.header = s
			return nil
		}
	case event.Warning:
		if r.mode == Quieter {
			return nil
		}
		if err := r.flushHeader(); err != nil {
			return err
		}
	case event.Error:
		if err := r.flushHeader(); err != nil {
			return err
		}
	case event.Test, event.TestCase:
		if quiet && !r.ci {
			return nil
		}
	case event.Result:
	default:
		if quiet {
			return nil
		}
	}
	return r.writeLine(s)
}

// Passthrough writes a line no catalog entry recognised. It is filtered
// like an undefined-class line.
func (r *Router) Passthrough(s string) error {
	return r.Write(event.Undefined, s)
}

func (r *Router) flushHeader() error {
	if r.header == "" {
		return nil
	}
	h := r.header
	r.header = ""
	return r.writeLine(h)
}

func (r *Router) writeLine(s string) error {
	if _, err := io.WriteString(r.w, s+"\n"); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
