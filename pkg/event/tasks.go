package event

// Build step events. All carry OutputClass Task unless noted.

type Analyze struct {
	task
	FileRef
	InTarget
}

type BuildTarget struct {
	task
	TargetHeader
}

type AggregateTarget struct {
	task
	TargetHeader
}

type AnalyzeTarget struct {
	task
	TargetHeader
}

type CleanTarget struct {
	task
	TargetHeader
}

type CheckDependencies struct{ task }

// ShellCommand is an indented command echo such as "    cd /path".
type ShellCommand struct {
	task
	Command   string
	Arguments string
}

type CleanRemove struct {
	task
	Directory string
}

type CodeSignFramework struct {
	task
	Framework string
	InTarget
}

type CodeSign struct {
	task
	FileRef
	InTarget
}

// Compile covers CompileC, CompileSwift and the other Compile<Lang> steps.
type Compile struct {
	task
	Step string
	FileRef
	InTarget
}

// SwiftCompile is a single-file compile step.
type SwiftCompile struct {
	task
	Variant      string
	Architecture Architecture
	FileRef
	InTarget
}

// SwiftCompiling is the batch announcement listing every file of a
// compile job ("Compiling\ A.swift,\ B.swift").
type SwiftCompiling struct {
	task
	Variant      string
	Architecture Architecture
	Files        []string
	InTarget
}

// CompileCommand is the echoed clang invocation of a compile step.
type CompileCommand struct {
	task
	Command  string
	FilePath string
}

type CompileXib struct {
	task
	FileRef
	InTarget
}

type CompileStoryboard struct {
	task
	FileRef
	InTarget
}

type CompileAssetCatalog struct {
	task
	FileRef
	InTarget
}

type CopyHeader struct {
	task
	Source      string
	Destination string
	FileRef
	InTarget
}

type CopyPlist struct {
	task
	Source      string
	Destination string
	FileRef
	InTarget
}

type CopyStrings struct {
	task
	FileRef
	InTarget
}

type CpResource struct {
	task
	FileRef
	InTarget
}

type CopyFiles struct {
	task
	Destination string
	FileRef
	InTarget
}

type CreateUniversalBinary struct {
	task
	FileRef
	InTarget
}

type DataModelCodegen struct {
	task
	FileRef
	InTarget
}

type EmitSwiftModule struct {
	task
	Variant      string
	Architecture Architecture
	InTarget
}

type SwiftEmitModule struct {
	task
	Variant      string
	Architecture Architecture
	Module       string
	InTarget
}

type ExtractAppIntentsMetadata struct {
	task
	InTarget
}

type GenerateDSYM struct {
	task
	DSYM string
	InTarget
}

type Libtool struct {
	task
	Library string
	InTarget
}

type Linking struct {
	task
	Binary       string
	Variant      string
	Architecture Architecture
	InTarget
}

type PhaseScriptExecution struct {
	task
	Phase string
	InTarget
}

// PhaseSuccess is "** BUILD SUCCEEDED **" and its siblings.
type PhaseSuccess struct {
	result
	Phase    string
	Duration string
}

// PhaseFailure is "** BUILD FAILED **" and its siblings.
type PhaseFailure struct {
	result
	Phase    string
	Duration string
}

type PrecompileModule struct {
	task
	FileRef
}

type Preprocess struct {
	task
	FileRef
}

type ProcessPCH struct {
	task
	Filename string
	InTarget
}

type ProcessPCHCommand struct {
	task
	FilePath string
}

type PBXCp struct {
	task
	Filename string
	InTarget
}

type ProcessInfoPlist struct {
	task
	FileRef
	InTarget
}

type ProcessProductPackaging struct {
	task
	FileRef
	InTarget
}

type RegisterExecutionPolicyException struct {
	task
	FileRef
	InTarget
}

type ScanDependencies struct {
	task
	FileRef
	InTarget
}

type Signing struct {
	task
	FileRef
	InTarget
}

type SymLink struct {
	task
	FileRef
	InTarget
}

type TIFFUtil struct {
	task
	FileRef
}

type Touch struct {
	task
	FileRef
	InTarget
}

type Validate struct {
	task
	FileRef
	InTarget
}

type ValidateEmbeddedBinary struct {
	task
	FileRef
	InTarget
}

type WriteFile struct {
	task
	Path string
}

type WriteAuxiliaryFiles struct{ task }

type SwiftDriver struct {
	task
	Module string
	InTarget
}

type SwiftDriverCompilation struct {
	task
	Module string
	InTarget
}

type SwiftDriverCompilationRequirements struct {
	task
	Module string
	InTarget
}

type SwiftDriverJobDiscoveryCompiling struct {
	task
	Files []string
	InTarget
}

type SwiftDriverJobDiscoveryEmittingModule struct {
	task
	Module string
	InTarget
}

// CompilationResult is the actool results banner.
type CompilationResult struct{ task }

type GenerateCoverageData struct{ task }

type GeneratedCoverageReport struct {
	task
	Path string
}

type TestingStarted struct{ test }

func (Analyze) Kind() Kind                               { return KindAnalyze }
func (BuildTarget) Kind() Kind                           { return KindBuildTarget }
func (AggregateTarget) Kind() Kind                       { return KindAggregateTarget }
func (AnalyzeTarget) Kind() Kind                         { return KindAnalyzeTarget }
func (CleanTarget) Kind() Kind                           { return KindCleanTarget }
func (CheckDependencies) Kind() Kind                     { return KindCheckDependencies }
func (ShellCommand) Kind() Kind                          { return KindShellCommand }
func (CleanRemove) Kind() Kind                           { return KindCleanRemove }
func (CodeSignFramework) Kind() Kind                     { return KindCodeSignFramework }
func (CodeSign) Kind() Kind                              { return KindCodeSign }
func (Compile) Kind() Kind                               { return KindCompile }
func (SwiftCompile) Kind() Kind                          { return KindSwiftCompile }
func (SwiftCompiling) Kind() Kind                        { return KindSwiftCompiling }
func (CompileCommand) Kind() Kind                        { return KindCompileCommand }
func (CompileXib) Kind() Kind                            { return KindCompileXib }
func (CompileStoryboard) Kind() Kind                     { return KindCompileStoryboard }
func (CompileAssetCatalog) Kind() Kind                   { return KindCompileAssetCatalog }
func (CopyHeader) Kind() Kind                            { return KindCopyHeader }
func (CopyPlist) Kind() Kind                             { return KindCopyPlist }
func (CopyStrings) Kind() Kind                           { return KindCopyStrings }
func (CpResource) Kind() Kind                            { return KindCpResource }
func (CopyFiles) Kind() Kind                             { return KindCopyFiles }
func (CreateUniversalBinary) Kind() Kind                 { return KindCreateUniversalBinary }
func (DataModelCodegen) Kind() Kind                      { return KindDataModelCodegen }
func (EmitSwiftModule) Kind() Kind                       { return KindEmitSwiftModule }
func (SwiftEmitModule) Kind() Kind                       { return KindSwiftEmitModule }
func (ExtractAppIntentsMetadata) Kind() Kind             { return KindExtractAppIntentsMetadata }
func (GenerateDSYM) Kind() Kind                          { return KindGenerateDSYM }
func (Libtool) Kind() Kind                               { return KindLibtool }
func (Linking) Kind() Kind                               { return KindLinking }
func (PhaseScriptExecution) Kind() Kind                  { return KindPhaseScriptExecution }
func (PhaseSuccess) Kind() Kind                          { return KindPhaseSuccess }
func (PhaseFailure) Kind() Kind                          { return KindPhaseFailure }
func (PrecompileModule) Kind() Kind                      { return KindPrecompileModule }
func (Preprocess) Kind() Kind                            { return KindPreprocess }
func (ProcessPCH) Kind() Kind                            { return KindProcessPCH }
func (ProcessPCHCommand) Kind() Kind                     { return KindProcessPCHCommand }
func (PBXCp) Kind() Kind                                 { return KindPBXCp }
func (ProcessInfoPlist) Kind() Kind                      { return KindProcessInfoPlist }
func (ProcessProductPackaging) Kind() Kind               { return KindProcessProductPackaging }
func (RegisterExecutionPolicyException) Kind() Kind      { return KindRegisterExecutionPolicyException }
func (ScanDependencies) Kind() Kind                      { return KindScanDependencies }
func (Signing) Kind() Kind                               { return KindSigning }
func (SymLink) Kind() Kind                               { return KindSymLink }
func (TIFFUtil) Kind() Kind                              { return KindTIFFUtil }
func (Touch) Kind() Kind                                 { return KindTouch }
func (Validate) Kind() Kind                              { return KindValidate }
func (ValidateEmbeddedBinary) Kind() Kind                { return KindValidateEmbeddedBinary }
func (WriteFile) Kind() Kind                             { return KindWriteFile }
func (WriteAuxiliaryFiles) Kind() Kind                   { return KindWriteAuxiliaryFiles }
func (SwiftDriver) Kind() Kind                           { return KindSwiftDriver }
func (SwiftDriverCompilation) Kind() Kind                { return KindSwiftDriverCompilation }
func (SwiftDriverCompilationRequirements) Kind() Kind    { return KindSwiftDriverCompilationRequirements }
func (SwiftDriverJobDiscoveryCompiling) Kind() Kind      { return KindSwiftDriverJobDiscoveryCompiling }
func (SwiftDriverJobDiscoveryEmittingModule) Kind() Kind { return KindSwiftDriverJobDiscoveryEmittingModule }
func (CompilationResult) Kind() Kind                     { return KindCompilationResult }
func (GenerateCoverageData) Kind() Kind                  { return KindGenerateCoverageData }
func (GeneratedCoverageReport) Kind() Kind               { return KindGeneratedCoverageReport }
func (TestingStarted) Kind() Kind                        { return KindTestingStarted }
