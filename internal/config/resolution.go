package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoosis/xcfo/internal/detect"
	"github.com/dkoosis/xcfo/internal/output"
	"github.com/dkoosis/xcfo/internal/report"
	"github.com/dkoosis/xcfo/pkg/render"
)

// ErrInvalid marks a configuration value no renderer, theme or report
// kind accepts.
var ErrInvalid = errors.New("invalid configuration")

// Value sources recorded in ResolvedConfig.
const (
	SourceCLI      = "cli"
	SourceEnv      = "env"
	SourceFile     = "file"
	SourceDetected = "detected"
	SourceDefault  = "default"
)

// CliFlags holds command-line values. Empty strings are unset; the *Set
// fields record whether a bool or list flag was given.
type CliFlags struct {
	ConfigFile           string
	Renderer             string
	Theme                string
	Quiet                bool
	Quieter              bool
	CI                   bool
	NoColor              bool
	PreserveUnbeautified bool
	Reports              []string
	ReportPath           string
	JUnitReportFilename  string
	Debug                bool

	QuietSet                bool
	QuieterSet              bool
	CISet                   bool
	NoColorSet              bool
	PreserveUnbeautifiedSet bool
	ReportsSet              bool
	DebugSet                bool
}

// Sources are the non-flag inputs to resolution.
type Sources struct {
	WorkDir string
	// Lookup reads the environment; nil reads the process environment.
	Lookup detect.LookupFunc
	Logger zerolog.Logger
}

// ResolvedConfig is the effective configuration of one run.
type ResolvedConfig struct {
	Platform             detect.Platform
	Renderer             string
	Theme                render.Theme
	Mode                 output.Mode
	CI                   bool
	NoColor              bool
	PreserveUnbeautified bool
	Reports              []report.Kind
	ReportPath           string
	JUnitReportFilename  string
	Debug                bool

	ConfigPath     string
	RendererSource string
	ThemeSource    string
	CISource       string
	NoColorSource  string
}

// WantsReport reports whether kind was requested.
func (c *ResolvedConfig) WantsReport(kind report.Kind) bool {
	for _, k := range c.Reports {
		if k == kind {
			return true
		}
	}
	return false
}

// ResolveConfig applies, from highest to lowest priority: flags, XCFO_*
// and well-known environment variables, the config file, defaults.
//
//nolint:funlen // one block per key
func ResolveConfig(flags CliFlags, src Sources) (*ResolvedConfig, error) {
	lookup := src.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := envReader(lookup)

	path := flags.ConfigFile
	if path == "" {
		path = FindConfigFile(src.WorkDir, lookup)
	}
	file := LoadConfig(path, src.Logger)

	platform := detect.FromEnv(lookup)
	cfg := &ResolvedConfig{Platform: platform, ConfigPath: path}

	cfg.Renderer, cfg.RendererSource = pickString(flags.Renderer, env.str("XCFO_RENDERER"), file.Renderer)
	if cfg.Renderer == "" {
		cfg.Renderer, cfg.RendererSource = detect.DefaultRenderer(platform), SourceDetected
	}
	if !validRenderer(cfg.Renderer) {
		return nil, fmt.Errorf("%w: unknown renderer %q (want one of %s)",
			ErrInvalid, cfg.Renderer, strings.Join(render.Names(), ", "))
	}

	var themeName string
	themeName, cfg.ThemeSource = pickString(flags.Theme, env.str("XCFO_THEME"), file.Theme)
	if themeName == "" {
		themeName, cfg.ThemeSource = DefaultTheme, SourceDefault
	}
	theme, ok := render.ThemeByName(themeName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown theme %q (want one of %s)",
			ErrInvalid, themeName, strings.Join(render.ThemeNames(), ", "))
	}
	cfg.Theme = theme

	quiet, _ := pickBool(flags.QuietSet, flags.Quiet, env.boolean("XCFO_QUIET"), file.Quiet)
	quieter, _ := pickBool(flags.QuieterSet, flags.Quieter, env.boolean("XCFO_QUIETER"), file.Quieter)
	switch {
	case quieter:
		cfg.Mode = output.Quieter
	case quiet:
		cfg.Mode = output.Quiet
	}

	ciEnv := env.boolean("XCFO_CI")
	if ciEnv == nil && platform.IsCI() {
		ciEnv = ptr(true)
	}
	cfg.CI, cfg.CISource = pickBool(flags.CISet, flags.CI, ciEnv, file.CI)

	noColorEnv := env.boolean("XCFO_NO_COLOR")
	if noColorEnv == nil && env.str("NO_COLOR") != "" {
		noColorEnv = ptr(true)
	}
	cfg.NoColor, cfg.NoColorSource = pickBool(flags.NoColorSet, flags.NoColor, noColorEnv, file.NoColor)

	cfg.PreserveUnbeautified, _ = pickBool(flags.PreserveUnbeautifiedSet, flags.PreserveUnbeautified,
		env.boolean("XCFO_PRESERVE_UNBEAUTIFIED"), file.PreserveUnbeautified)

	debugEnv := env.boolean("XCFO_DEBUG")
	if debugEnv == nil && env.str("XCFO_DEBUG") != "" {
		debugEnv = ptr(true)
	}
	cfg.Debug, _ = pickBool(flags.DebugSet, flags.Debug, debugEnv, file.Debug)

	kinds := file.Report
	if v := env.str("XCFO_REPORT"); v != "" {
		kinds = strings.Split(v, ",")
	}
	if flags.ReportsSet {
		kinds = flags.Reports
	}
	reports, err := parseReports(kinds)
	if err != nil {
		return nil, err
	}
	cfg.Reports = reports

	cfg.ReportPath, _ = pickString(flags.ReportPath, env.str("XCFO_REPORT_PATH"), file.ReportPath)
	if cfg.ReportPath == "" {
		cfg.ReportPath = DefaultReportPath
	}
	cfg.JUnitReportFilename, _ = pickString(flags.JUnitReportFilename,
		env.str("XCFO_JUNIT_REPORT_FILENAME"), file.JUnitReportFilename)
	if cfg.JUnitReportFilename == "" {
		cfg.JUnitReportFilename = DefaultJUnitFilename
	}

	src.Logger.Debug().
		Str("renderer", cfg.Renderer).
		Str("renderer_source", cfg.RendererSource).
		Str("theme", cfg.Theme.Name).
		Str("mode", cfg.Mode.String()).
		Bool("ci", cfg.CI).
		Str("platform", platform.String()).
		Msg("resolved configuration")
	return cfg, nil
}

func validRenderer(name string) bool {
	for _, n := range render.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func parseReports(kinds []string) ([]report.Kind, error) {
	var out []report.Kind
	for _, s := range kinds {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k, err := report.ParseKind(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		dup := false
		for _, have := range out {
			dup = dup || have == k
		}
		if !dup {
			out = append(out, k)
		}
	}
	return out, nil
}

// pickString returns the first non-empty value of cli, env, file.
func pickString(cli, env, file string) (string, string) {
	switch {
	case cli != "":
		return cli, SourceCLI
	case env != "":
		return env, SourceEnv
	case file != "":
		return file, SourceFile
	default:
		return "", SourceDefault
	}
}

// pickBool returns the highest-priority value that is set, else false.
func pickBool(cliSet, cli bool, env, file *bool) (bool, string) {
	switch {
	case cliSet:
		return cli, SourceCLI
	case env != nil:
		return *env, SourceEnv
	case file != nil:
		return *file, SourceFile
	default:
		return false, SourceDefault
	}
}

func ptr[T any](v T) *T { return &v }

type envReader detect.LookupFunc

func (e envReader) str(key string) string {
	v, _ := e(key)
	return strings.TrimSpace(v)
}

// boolean returns nil when key is unset or not a boolean.
func (e envReader) boolean(key string) *bool {
	v := e.str(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}
