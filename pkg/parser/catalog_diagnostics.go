package parser

import (
	"strings"

	"github.com/dkoosis/xcfo/pkg/event"
)

const (
	// location is path[:line[:column]] ahead of a severity keyword.
	location            = `[^:\s][^:]*(?::\d+){0,2}`
	provisioningPattern = `requires a provisioning profile`
	// failingTestShape marks the assertion lines FailingTest owns.
	failingTestShape = `:\d+:\serror:\s(?:[+-]\[.+?\s.+?\]|[\w.]+\.\w+)\s:\s`
)

// sourceLocation accepts a diagnostic location only when it looks like a
// file. Tool prefixes such as "ld" or "xcodebuild" are rejected so their
// dedicated entries own those lines.
func sourceLocation(s string) (event.FileLocation, bool) {
	if strings.HasPrefix(s, "<") {
		return event.FileLocation{}, false
	}
	loc := event.ParseFileLocation(s)
	if !loc.HasLine() && !strings.ContainsAny(loc.Path, "/.") {
		return event.FileLocation{}, false
	}
	return loc, true
}

func diagnosticEntries() []Entry {
	return []Entry{
		entry(event.KindProvisioningProfileRequired,
			`^(.*`+provisioningPattern+`.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.ProvisioningProfileRequired{Reason: m[1]})
			}),
		entry(event.KindNoCertificate,
			`^((?:No certificate matching|No signing certificate) .*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.NoCertificate{Reason: m[1]})
			}).marked("No "),
		entry(event.KindFileMissingError,
			`^<unknown>:0: error: no such file or directory: '(.+)'$`,
			func(m []string) (event.Event, bool) {
				return emit(event.FileMissingError{Path: m[1]})
			}).marked("<unknown>"),
		entry(event.KindModuleIncludesError,
			`^<module-includes>:\d+:\d+:\s(?:fatal\s)?error:\s(.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.ModuleIncludesError{Reason: m[1]})
			}).marked("<module-includes>"),
		entry(event.KindCompileWarning,
			`^(`+location+`):\swarning:\s(.*)$`,
			func(m []string) (event.Event, bool) {
				loc, ok := sourceLocation(m[1])
				if !ok {
					return nil, false
				}
				return emit(event.CompileWarning{Location: loc, Reason: m[2]})
			}).excluding(provisioningPattern),
		entry(event.KindCompileError,
			`^(`+location+`):\s(fatal\s)?error:\s(.*)$`,
			func(m []string) (event.Event, bool) {
				loc, ok := sourceLocation(m[1])
				if !ok {
					return nil, false
				}
				return emit(event.CompileError{Location: loc, Reason: m[3], Fatal: m[2] != ""})
			}).excluding(provisioningPattern, failingTestShape),
		entry(event.KindClangError,
			`^(clang: error:.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.ClangError{Reason: m[1]})
			}).marked("clang: error:"),
		entry(event.KindFatalError,
			`^(fatal error:.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.FatalError{Reason: m[1]})
			}).marked("fatal error:"),
		entry(event.KindLDWarning,
			`^((?:clang: )?ld: warning: )(.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.LDWarning{Prefix: m[1], Reason: m[2]})
			}).marked("ld: warning:", "clang: ld: warning:"),
		entry(event.KindLDError,
			`^(ld: .*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.LDError{Reason: m[1]})
			}).marked("ld: ").excluding(`^ld: warning:`),
		entry(event.KindLinkerDuplicateSymbols,
			`^(duplicate symbols? .*?)(?: in)?:$`,
			func(m []string) (event.Event, bool) {
				return emit(event.LinkerDuplicateSymbols{Reason: m[1]})
			}).marked("duplicate symbol"),
		entry(event.KindLinkerDuplicateSymbolsLocation,
			objectPathPattern,
			func(m []string) (event.Event, bool) {
				return emit(event.LinkerDuplicateSymbolsLocation{Path: m[1]})
			}),
		entry(event.KindLinkerUndefinedSymbols,
			`^(Undefined symbols for architecture .+):$`,
			func(m []string) (event.Event, bool) {
				return emit(event.LinkerUndefinedSymbols{Reason: m[1]})
			}).marked("Undefined symbols"),
		entry(event.KindLinkerUndefinedSymbolLocation,
			`^\s+(.+) in (.+\.o\)?)$`,
			func(m []string) (event.Event, bool) {
				if strings.HasPrefix(m[1], "/") {
					return nil, false
				}
				return emit(event.LinkerUndefinedSymbolLocation{Symbol: m[1], Object: m[2]})
			}),
		entry(event.KindSymbolReferencedFrom,
			`^\s+"(.+)", referenced from:$`,
			func(m []string) (event.Event, bool) {
				return emit(event.SymbolReferencedFrom{Reference: m[1]})
			}),
		entry(event.KindXcodebuildError,
			`^xcodebuild: error: (.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.XcodebuildError{Reason: m[1]})
			}).marked("xcodebuild: error:"),
		entry(event.KindGenericError,
			`^error:\s(.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.GenericError{Reason: m[1]})
			}).marked("error:").excluding(provisioningPattern),
		entry(event.KindGenericWarning,
			`^warning:\s(.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.GenericWarning{Reason: m[1]})
			}).marked("warning:"),
		entry(event.KindNote,
			`^(?:(`+location+`):\s)?note:\s(.*)$`,
			func(m []string) (event.Event, bool) {
				var loc event.FileLocation
				if m[1] != "" {
					loc = event.ParseFileLocation(m[1])
				}
				return emit(event.Note{Location: loc, Reason: m[2]})
			}),
		entry(event.KindDuplicateLocalizedStringKey,
			`^.*--- WARNING: (Key ".*" used with multiple values\. Value ".*" kept\. Value ".*" ignored\.)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.DuplicateLocalizedStringKey{Message: m[1]})
			}),
		entry(event.KindWillNotBeCodeSigned,
			`^([^:]+ will not be code signed because .*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.WillNotBeCodeSigned{Message: m[1]})
			}),
		entry(event.KindCursor,
			`^([ ~]*\^[ ~]*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.Cursor{Marker: m[1]})
			}),
	}
}
