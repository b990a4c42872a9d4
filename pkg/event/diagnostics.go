package event

// Compiler, linker and signing diagnostics.

// CompileWarning is "path:line:col: warning: reason".
type CompileWarning struct {
	warning
	Location FileLocation
	Reason   string
}

// CompileError is "path:line:col: [fatal ]error: reason".
type CompileError struct {
	failure
	Location FileLocation
	Reason   string
	Fatal    bool
}

type ClangError struct {
	failure
	Reason string
}

type FatalError struct {
	failure
	Reason string
}

type FileMissingError struct {
	failure
	Path string
}

type ModuleIncludesError struct {
	failure
	Reason string
}

type LDError struct {
	failure
	Reason string
}

type LDWarning struct {
	warning
	Prefix string
	Reason string
}

type LinkerDuplicateSymbols struct {
	failure
	Reason string
}

// LinkerDuplicateSymbolsLocation is an object file listed under a
// duplicate symbol.
type LinkerDuplicateSymbolsLocation struct {
	failure
	Path string
}

type LinkerUndefinedSymbols struct {
	failure
	Reason string
}

type LinkerUndefinedSymbolLocation struct {
	failure
	Symbol string
	Object string
}

type SymbolReferencedFrom struct {
	failure
	Reference string
}

type NoCertificate struct {
	failure
	Reason string
}

type ProvisioningProfileRequired struct {
	failure
	Reason string
}

type XcodebuildError struct {
	failure
	Reason string
}

type GenericError struct {
	failure
	Reason string
}

type GenericWarning struct {
	warning
	Reason string
}

// Note is a "note:" line, with or without a leading location.
type Note struct {
	warning
	Location FileLocation
	Reason   string
}

type DuplicateLocalizedStringKey struct {
	warning
	Message string
}

type WillNotBeCodeSigned struct {
	warning
	Message string
}

// Cursor is a stray caret line ("   ^~~~") not consumed as diagnostic
// context.
type Cursor struct {
	task
	Marker string
}

func (CompileWarning) Kind() Kind                 { return KindCompileWarning }
func (CompileError) Kind() Kind                   { return KindCompileError }
func (ClangError) Kind() Kind                     { return KindClangError }
func (FatalError) Kind() Kind                     { return KindFatalError }
func (FileMissingError) Kind() Kind               { return KindFileMissingError }
func (ModuleIncludesError) Kind() Kind            { return KindModuleIncludesError }
func (LDError) Kind() Kind                        { return KindLDError }
func (LDWarning) Kind() Kind                      { return KindLDWarning }
func (LinkerDuplicateSymbols) Kind() Kind         { return KindLinkerDuplicateSymbols }
func (LinkerDuplicateSymbolsLocation) Kind() Kind { return KindLinkerDuplicateSymbolsLocation }
func (LinkerUndefinedSymbols) Kind() Kind         { return KindLinkerUndefinedSymbols }
func (LinkerUndefinedSymbolLocation) Kind() Kind  { return KindLinkerUndefinedSymbolLocation }
func (SymbolReferencedFrom) Kind() Kind           { return KindSymbolReferencedFrom }
func (NoCertificate) Kind() Kind                  { return KindNoCertificate }
func (ProvisioningProfileRequired) Kind() Kind    { return KindProvisioningProfileRequired }
func (XcodebuildError) Kind() Kind                { return KindXcodebuildError }
func (GenericError) Kind() Kind                   { return KindGenericError }
func (GenericWarning) Kind() Kind                 { return KindGenericWarning }
func (Note) Kind() Kind                           { return KindNote }
func (DuplicateLocalizedStringKey) Kind() Kind    { return KindDuplicateLocalizedStringKey }
func (WillNotBeCodeSigned) Kind() Kind            { return KindWillNotBeCodeSigned }
func (Cursor) Kind() Kind                         { return KindCursor }
