package event

// Kind identifies an event variant. There is one Kind per catalog entry.
type Kind int

const (
	KindUnknown Kind = iota
	KindAnalyze
	KindBuildTarget
	KindAggregateTarget
	KindAnalyzeTarget
	KindCleanTarget
	KindCheckDependencies
	KindShellCommand
	KindCleanRemove
	KindCodeSignFramework
	KindCodeSign
	KindCompile
	KindSwiftCompile
	KindSwiftCompiling
	KindCompileCommand
	KindCompileXib
	KindCompileStoryboard
	KindCompileAssetCatalog
	KindCopyHeader
	KindCopyPlist
	KindCopyStrings
	KindCpResource
	KindCopyFiles
	KindCreateUniversalBinary
	KindDataModelCodegen
	KindEmitSwiftModule
	KindSwiftEmitModule
	KindExtractAppIntentsMetadata
	KindGenerateDSYM
	KindLibtool
	KindLinking
	KindPhaseScriptExecution
	KindPhaseSuccess
	KindPhaseFailure
	KindPrecompileModule
	KindPreprocess
	KindProcessPCH
	KindProcessPCHCommand
	KindPBXCp
	KindProcessInfoPlist
	KindProcessProductPackaging
	KindRegisterExecutionPolicyException
	KindScanDependencies
	KindSigning
	KindSymLink
	KindTIFFUtil
	KindTouch
	KindValidate
	KindValidateEmbeddedBinary
	KindWriteFile
	KindWriteAuxiliaryFiles
	KindSwiftDriver
	KindSwiftDriverCompilation
	KindSwiftDriverCompilationRequirements
	KindSwiftDriverJobDiscoveryCompiling
	KindSwiftDriverJobDiscoveryEmittingModule
	KindCompilationResult
	KindGenerateCoverageData
	KindGeneratedCoverageReport
	KindTestingStarted
	KindPackageFetching
	KindPackageUpdating
	KindPackageCheckingOut
	KindPackageGraphResolvingStart
	KindPackageGraphResolvingEnded
	KindPackageGraphResolvedItem
	KindCompileWarning
	KindCompileError
	KindClangError
	KindFatalError
	KindFileMissingError
	KindModuleIncludesError
	KindLDError
	KindLDWarning
	KindLinkerDuplicateSymbols
	KindLinkerDuplicateSymbolsLocation
	KindLinkerUndefinedSymbols
	KindLinkerUndefinedSymbolLocation
	KindSymbolReferencedFrom
	KindNoCertificate
	KindProvisioningProfileRequired
	KindXcodebuildError
	KindGenericError
	KindGenericWarning
	KindNote
	KindDuplicateLocalizedStringKey
	KindWillNotBeCodeSigned
	KindCursor
	KindTestSuiteStarted
	KindParallelTestSuiteStarted
	KindTestSuiteStart
	KindTestsRunCompletion
	KindTestSuiteAllTestsPassed
	KindTestSuiteAllTestsFailed
	KindTestCaseStarted
	KindTestCasePending
	KindTestCasePassed
	KindTestCaseFailed
	KindTestCaseSkipped
	KindTestCaseMeasured
	KindFailingTest
	KindUIFailingTest
	KindRestartingTest
	KindExecutedWithoutSkipped
	KindExecutedWithSkipped
	KindParallelTestingStarted
	KindParallelTestingPassed
	KindParallelTestingFailed
	KindParallelTestCasePassed
	KindParallelTestCaseAppKitPassed
	KindParallelTestCaseFailed
	KindParallelTestCaseSkipped
	KindSwiftTestingRunStarted
	KindSwiftTestingRunCompletion
	KindSwiftTestingRunFailed
	KindSwiftTestingSuiteStarted
	KindSwiftTestingSuitePassed
	KindSwiftTestingSuiteFailed
	KindSwiftTestingTestStarted
	KindSwiftTestingTestPassed
	KindSwiftTestingTestFailed
	KindSwiftTestingTestSkipped
	KindSwiftTestingTestSkippedReason
	KindSwiftTestingIssueArgument
	KindSwiftTestingIssue
	KindSwiftTestingPassingArgument
	KindSwiftTestingIssueDetails
)

var kindNames = map[Kind]string{
	KindUnknown:                               "Unknown",
	KindAnalyze:                               "Analyze",
	KindBuildTarget:                           "BuildTarget",
	KindAggregateTarget:                       "AggregateTarget",
	KindAnalyzeTarget:                         "AnalyzeTarget",
	KindCleanTarget:                           "CleanTarget",
	KindCheckDependencies:                     "CheckDependencies",
	KindShellCommand:                          "ShellCommand",
	KindCleanRemove:                           "CleanRemove",
	KindCodeSignFramework:                     "CodeSignFramework",
	KindCodeSign:                              "CodeSign",
	KindCompile:                               "Compile",
	KindSwiftCompile:                          "SwiftCompile",
	KindSwiftCompiling:                        "SwiftCompiling",
	KindCompileCommand:                        "CompileCommand",
	KindCompileXib:                            "CompileXib",
	KindCompileStoryboard:                     "CompileStoryboard",
	KindCompileAssetCatalog:                   "CompileAssetCatalog",
	KindCopyHeader:                            "CopyHeader",
	KindCopyPlist:                             "CopyPlist",
	KindCopyStrings:                           "CopyStrings",
	KindCpResource:                            "CpResource",
	KindCopyFiles:                             "CopyFiles",
	KindCreateUniversalBinary:                 "CreateUniversalBinary",
	KindDataModelCodegen:                      "DataModelCodegen",
	KindEmitSwiftModule:                       "EmitSwiftModule",
	KindSwiftEmitModule:                       "SwiftEmitModule",
	KindExtractAppIntentsMetadata:             "ExtractAppIntentsMetadata",
	KindGenerateDSYM:                          "GenerateDSYM",
	KindLibtool:                               "Libtool",
	KindLinking:                               "Linking",
	KindPhaseScriptExecution:                  "PhaseScriptExecution",
	KindPhaseSuccess:                          "PhaseSuccess",
	KindPhaseFailure:                          "PhaseFailure",
	KindPrecompileModule:                      "PrecompileModule",
	KindPreprocess:                            "Preprocess",
	KindProcessPCH:                            "ProcessPCH",
	KindProcessPCHCommand:                     "ProcessPCHCommand",
	KindPBXCp:                                 "PBXCp",
	KindProcessInfoPlist:                      "ProcessInfoPlist",
	KindProcessProductPackaging:               "ProcessProductPackaging",
	KindRegisterExecutionPolicyException:      "RegisterExecutionPolicyException",
	KindScanDependencies:                      "ScanDependencies",
	KindSigning:                               "Signing",
	KindSymLink:                               "SymLink",
	KindTIFFUtil:                              "TIFFUtil",
	KindTouch:                                 "Touch",
	KindValidate:                              "Validate",
	KindValidateEmbeddedBinary:                "ValidateEmbeddedBinary",
	KindWriteFile:                             "WriteFile",
	KindWriteAuxiliaryFiles:                   "WriteAuxiliaryFiles",
	KindSwiftDriver:                           "SwiftDriver",
	KindSwiftDriverCompilation:                "SwiftDriverCompilation",
	KindSwiftDriverCompilationRequirements:    "SwiftDriverCompilationRequirements",
	KindSwiftDriverJobDiscoveryCompiling:      "SwiftDriverJobDiscoveryCompiling",
	KindSwiftDriverJobDiscoveryEmittingModule: "SwiftDriverJobDiscoveryEmittingModule",
	KindCompilationResult:                     "CompilationResult",
	KindGenerateCoverageData:                  "GenerateCoverageData",
	KindGeneratedCoverageReport:               "GeneratedCoverageReport",
	KindTestingStarted:                        "TestingStarted",
	KindPackageFetching:                       "PackageFetching",
	KindPackageUpdating:                       "PackageUpdating",
	KindPackageCheckingOut:                    "PackageCheckingOut",
	KindPackageGraphResolvingStart:            "PackageGraphResolvingStart",
	KindPackageGraphResolvingEnded:            "PackageGraphResolvingEnded",
	KindPackageGraphResolvedItem:              "PackageGraphResolvedItem",
	KindCompileWarning:                        "CompileWarning",
	KindCompileError:                          "CompileError",
	KindClangError:                            "ClangError",
	KindFatalError:                            "FatalError",
	KindFileMissingError:                      "FileMissingError",
	KindModuleIncludesError:                   "ModuleIncludesError",
	KindLDError:                               "LDError",
	KindLDWarning:                             "LDWarning",
	KindLinkerDuplicateSymbols:                "LinkerDuplicateSymbols",
	KindLinkerDuplicateSymbolsLocation:        "LinkerDuplicateSymbolsLocation",
	KindLinkerUndefinedSymbols:                "LinkerUndefinedSymbols",
	KindLinkerUndefinedSymbolLocation:         "LinkerUndefinedSymbolLocation",
	KindSymbolReferencedFrom:                  "SymbolReferencedFrom",
	KindNoCertificate:                         "NoCertificate",
	KindProvisioningProfileRequired:           "ProvisioningProfileRequired",
	KindXcodebuildError:                       "XcodebuildError",
	KindGenericError:                          "GenericError",
	KindGenericWarning:                        "GenericWarning",
	KindNote:                                  "Note",
	KindDuplicateLocalizedStringKey:           "DuplicateLocalizedStringKey",
	KindWillNotBeCodeSigned:                   "WillNotBeCodeSigned",
	KindCursor:                                "Cursor",
	KindTestSuiteStarted:                      "TestSuiteStarted",
	KindParallelTestSuiteStarted:              "ParallelTestSuiteStarted",
	KindTestSuiteStart:                        "TestSuiteStart",
	KindTestsRunCompletion:                    "TestsRunCompletion",
	KindTestSuiteAllTestsPassed:               "TestSuiteAllTestsPassed",
	KindTestSuiteAllTestsFailed:               "TestSuiteAllTestsFailed",
	KindTestCaseStarted:                       "TestCaseStarted",
	KindTestCasePending:                       "TestCasePending",
	KindTestCasePassed:                        "TestCasePassed",
	KindTestCaseFailed:                        "TestCaseFailed",
	KindTestCaseSkipped:                       "TestCaseSkipped",
	KindTestCaseMeasured:                      "TestCaseMeasured",
	KindFailingTest:                           "FailingTest",
	KindUIFailingTest:                         "UIFailingTest",
	KindRestartingTest:                        "RestartingTest",
	KindExecutedWithoutSkipped:                "ExecutedWithoutSkipped",
	KindExecutedWithSkipped:                   "ExecutedWithSkipped",
	KindParallelTestingStarted:                "ParallelTestingStarted",
	KindParallelTestingPassed:                 "ParallelTestingPassed",
	KindParallelTestingFailed:                 "ParallelTestingFailed",
	KindParallelTestCasePassed:                "ParallelTestCasePassed",
	KindParallelTestCaseAppKitPassed:          "ParallelTestCaseAppKitPassed",
	KindParallelTestCaseFailed:                "ParallelTestCaseFailed",
	KindParallelTestCaseSkipped:               "ParallelTestCaseSkipped",
	KindSwiftTestingRunStarted:                "SwiftTestingRunStarted",
	KindSwiftTestingRunCompletion:             "SwiftTestingRunCompletion",
	KindSwiftTestingRunFailed:                 "SwiftTestingRunFailed",
	KindSwiftTestingSuiteStarted:              "SwiftTestingSuiteStarted",
	KindSwiftTestingSuitePassed:               "SwiftTestingSuitePassed",
	KindSwiftTestingSuiteFailed:               "SwiftTestingSuiteFailed",
	KindSwiftTestingTestStarted:               "SwiftTestingTestStarted",
	KindSwiftTestingTestPassed:                "SwiftTestingTestPassed",
	KindSwiftTestingTestFailed:                "SwiftTestingTestFailed",
	KindSwiftTestingTestSkipped:               "SwiftTestingTestSkipped",
	KindSwiftTestingTestSkippedReason:         "SwiftTestingTestSkippedReason",
	KindSwiftTestingIssueArgument:             "SwiftTestingIssueArgument",
	KindSwiftTestingIssue:                     "SwiftTestingIssue",
	KindSwiftTestingPassingArgument:           "SwiftTestingPassingArgument",
	KindSwiftTestingIssueDetails:              "SwiftTestingIssueDetails",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindUnknown + 1; ; k++ {
		if _, ok := kindNames[k]; !ok {
			return kinds
		}
		kinds = append(kinds, k)
	}
}
