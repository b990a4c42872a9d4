// Package config resolves xcfo's settings.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--renderer, --theme, --quiet, --is-ci, ...)
//  2. Environment variables (XCFO_*, NO_COLOR, and the CI service's own
//     variables through package detect)
//  3. Config file (.xcfo.yaml, .xcfo.yml or .xcfo.toml in the working
//     directory, else in $XDG_CONFIG_HOME/xcfo or ~/.config/xcfo)
//  4. Defaults
//
// # Keys
//
//   - renderer: terminal, github-actions, azure-devops-pipelines, teamcity.
//     Defaults to the dialect of the detected CI service.
//   - theme: default, orca, ascii
//   - quiet, quieter: verbosity; quieter wins when both are set
//   - ci: keep test lines in quiet modes
//   - no_color: disable styling
//   - preserve_unbeautified: print lines no pattern recognises
//   - report: list of report kinds (junit)
//   - report_path, junit_report_filename: report destination
//   - debug: debug logging
//
// # Environment Variables
//
//   - XCFO_RENDERER, XCFO_THEME, XCFO_REPORT (comma separated),
//     XCFO_REPORT_PATH, XCFO_JUNIT_REPORT_FILENAME
//   - XCFO_QUIET, XCFO_QUIETER, XCFO_CI, XCFO_NO_COLOR,
//     XCFO_PRESERVE_UNBEAUTIFIED: booleans as strconv.ParseBool reads them
//   - NO_COLOR: any non-empty value disables colour
//   - XCFO_DEBUG: any non-empty value other than a false boolean enables
//     debug logging
//
// A config file that cannot be parsed is reported as a warning and ignored.
package config
