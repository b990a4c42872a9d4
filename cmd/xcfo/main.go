// xcfo formats xcodebuild, swift build and swift test output.
//
// Usage:
//
//	xcodebuild test -scheme App 2>&1 | xcfo
//	swift test 2>&1 | xcfo --quiet --report junit
//	xcodebuild build 2>&1 | xcfo --renderer github-actions
//
// Renderers:
//
//	terminal                 styled output (default outside CI)
//	github-actions           workflow command annotations
//	azure-devops-pipelines   ##vso logging commands
//	teamcity                 service messages
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/xcfo/internal/config"
	"github.com/dkoosis/xcfo/internal/detect"
	"github.com/dkoosis/xcfo/internal/output"
	"github.com/dkoosis/xcfo/internal/report"
	"github.com/dkoosis/xcfo/internal/version"
	"github.com/dkoosis/xcfo/pkg/junit"
	"github.com/dkoosis/xcfo/pkg/pipeline"
	"github.com/dkoosis/xcfo/pkg/render"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitConfig      = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	a := &app{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		lookup:  os.LookupEnv,
		workDir: wd,
		isTTY:   isTTYWriter,
	}
	return a.run(args)
}

// app holds everything a run reads from its process environment.
type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	lookup  detect.LookupFunc
	workDir string
	isTTY   func(io.Writer) bool
}

// exitError carries the exit status of an error the command already
// logged.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type options struct {
	flags          config.CliFlags
	verbose        bool
	disableLogging bool
}

func (a *app) run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := a.rootCommand()
	root.SetArgs(normalizeArgs(args))
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(a.stderr, "xcfo: %v\n", err)
	fmt.Fprintln(a.stderr, "Run 'xcfo --help' for usage.")
	return exitConfig
}

// normalizeArgs accepts the two-letter -qq spelling of --quieter, which
// pflag shorthands cannot express.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if arg == "-qq" {
			arg = "--quieter"
		}
		out[i] = arg
	}
	return out
}

func (a *app) rootCommand() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "xcfo",
		Short:         "Format xcodebuild and swift toolchain output",
		Long:          "xcfo reads xcodebuild, swift build and swift test output on stdin and prints it formatted for a terminal or a CI service.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd, o)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	f := root.Flags()
	f.StringVar(&o.flags.ConfigFile, "config", "", "config file (default: .xcfo.yaml, .xcfo.yml or .xcfo.toml)")
	f.BoolVarP(&o.flags.Quiet, "quiet", "q", false, "only print tasks that have warnings or errors")
	f.BoolVar(&o.flags.Quieter, "quieter", false, "only print tasks that have errors (also -qq)")
	f.BoolVar(&o.flags.CI, "is-ci", false, "print test results in quiet modes")
	f.StringVar(&o.flags.Renderer, "renderer", "", "output dialect: "+strings.Join(render.Names(), ", "))
	f.StringVar(&o.flags.Theme, "theme", "", "terminal theme: "+strings.Join(render.ThemeNames(), ", "))
	f.BoolVar(&o.flags.NoColor, "disable-colored-output", false, "disable colored output")
	f.BoolVar(&o.flags.PreserveUnbeautified, "preserve-unbeautified", false, "print lines xcfo does not recognise")
	f.StringArrayVar(&o.flags.Reports, "report", nil, "generate a report (junit); repeatable")
	f.StringVar(&o.flags.ReportPath, "report-path", "", "report directory (default "+config.DefaultReportPath+")")
	f.StringVar(&o.flags.JUnitReportFilename, "junit-report-filename", "", "JUnit file name (default "+config.DefaultJUnitFilename+")")
	f.BoolVar(&o.disableLogging, "disable-logging", false, "suppress diagnostics on stderr")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	})
	return root
}

func (a *app) execute(cmd *cobra.Command, o *options) error {
	f := cmd.Flags()
	o.flags.QuietSet = f.Changed("quiet")
	o.flags.QuieterSet = f.Changed("quieter")
	o.flags.CISet = f.Changed("is-ci")
	o.flags.NoColorSet = f.Changed("disable-colored-output")
	o.flags.PreserveUnbeautifiedSet = f.Changed("preserve-unbeautified")
	o.flags.ReportsSet = f.Changed("report")
	o.flags.Debug = o.verbose
	o.flags.DebugSet = f.Changed("verbose")

	log := a.logger(o)
	cfg, err := config.ResolveConfig(o.flags, config.Sources{WorkDir: a.workDir, Lookup: a.lookup, Logger: log})
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return &exitError{code: exitConfig, err: err}
	}
	if cfg.Debug && !o.disableLogging {
		log = log.Level(zerolog.DebugLevel)
	}

	colored := !cfg.NoColor && a.isTTY(a.stdout)
	r, err := render.ByName(cfg.Renderer, colored, cfg.Theme)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return &exitError{code: exitConfig, err: err}
	}

	var rep *junit.Report
	if cfg.WantsReport(report.JUnit) {
		rep = junit.New()
	}

	ctx := cmd.Context()
	// Closing stdin on cancel unblocks the scanner.
	if c, ok := a.stdin.(io.Closer); ok {
		stopClose := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stopClose()
	}
	res, err := pipeline.Run(ctx, a.stdin, pipeline.Options{
		Renderer:             r,
		Sink:                 output.NewRouter(a.stdout, cfg.Mode, cfg.CI),
		Report:               rep,
		PreserveUnbeautified: cfg.PreserveUnbeautified,
		Logger:               log,
	})
	if err != nil {
		if ctx.Err() != nil {
			log.Warn().Msg("interrupted")
			return &exitError{code: exitInterrupted, err: err}
		}
		log.Error().Err(err).Msg("processing input failed")
		return &exitError{code: exitFailure, err: err}
	}
	log.Debug().Bool("failed", res.Failed()).Int("errors", res.Errors).Msg("run finished")

	if rep == nil {
		return nil
	}
	path, err := report.WriteJUnit(cfg.ReportPath, cfg.JUnitReportFilename, rep.Generate())
	if err != nil {
		log.Error().Err(err).Msg("writing report failed")
		return &exitError{code: exitFailure, err: err}
	}
	tests, failures := rep.Stats()
	log.Info().Str("path", path).Int("tests", tests).Int("failures", failures).Msg("wrote junit report")
	return nil
}

// logger writes human-readable diagnostics to stderr, Info by default.
func (a *app) logger(o *options) zerolog.Logger {
	if o.disableLogging {
		return zerolog.Nop()
	}
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        a.stderr,
		NoColor:    !a.isTTY(a.stderr),
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
