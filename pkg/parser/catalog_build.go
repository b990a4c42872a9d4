package parser

import (
	"path"

	"github.com/dkoosis/xcfo/pkg/event"
)

const (
	// rest skips trailing arguments up to an optional target clause.
	rest      = `(?:\s.*?)??` + optTarget
	pathChars = `(?:\\ |[^ ])*`

	compileCommandPattern = `^\s+(` + pathChars + `clang(?:\+\+)?)\s(?:.*\s)?-c\s(` + pathArg + `\.(?:m|mm|c|cc|cpp|cxx))\s.*\.o$`
	pchCommandPattern     = `^\s+` + pathChars + `clang(?:\+\+)?\s(?:.*\s)?-c\s(` + pathArg + `\.pch)\s.*-o\s.*$`

	// objectPathPattern is a lone indented object file, optionally an
	// archive member such as /x/libFoo.a(Bar.o).
	objectPathPattern = `^\s+(/` + pathArg + `\.o\)?)$`
)

func emit(e event.Event) (event.Event, bool) { return e, true }

func buildEntries() []Entry {
	return []Entry{
		entry(event.KindAnalyze,
			`^Analyze(?:Shallow)?\s(`+pathArg+`\.`+sourceExt+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.Analyze{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("Analyze"),
		entry(event.KindBuildTarget,
			`^=== BUILD TARGET\s(.+)\sOF PROJECT\s(.+)\sWITH.*CONFIGURATION\s(.+)\s===$`,
			func(m []string) (event.Event, bool) {
				return emit(event.BuildTarget{TargetHeader: header(m)})
			}).marked("=== BUILD TARGET"),
		entry(event.KindAggregateTarget,
			`^=== BUILD AGGREGATE TARGET\s(.+)\sOF PROJECT\s(.+)\sWITH.*CONFIGURATION\s(.+)\s===$`,
			func(m []string) (event.Event, bool) {
				return emit(event.AggregateTarget{TargetHeader: header(m)})
			}).marked("=== BUILD AGGREGATE TARGET"),
		entry(event.KindAnalyzeTarget,
			`^=== ANALYZE TARGET\s(.+)\sOF PROJECT\s(.+)\sWITH.*CONFIGURATION\s(.+)\s===$`,
			func(m []string) (event.Event, bool) {
				return emit(event.AnalyzeTarget{TargetHeader: header(m)})
			}).marked("=== ANALYZE TARGET"),
		entry(event.KindCleanTarget,
			`^=== CLEAN TARGET\s(.+)\sOF PROJECT\s(.+)\sWITH CONFIGURATION\s(.+)\s===$`,
			func(m []string) (event.Event, bool) {
				return emit(event.CleanTarget{TargetHeader: header(m)})
			}).marked("=== CLEAN TARGET"),
		entry(event.KindCheckDependencies,
			`^Check dependencies$`,
			func([]string) (event.Event, bool) { return emit(event.CheckDependencies{}) }),

		// Compiler invocations are echoed as indented shell lines, so both
		// command shapes precede the generic shell command.
		entry(event.KindCompileCommand,
			compileCommandPattern,
			func(m []string) (event.Event, bool) {
				return emit(event.CompileCommand{Command: unescape(m[1]), FilePath: unescape(m[2])})
			}),
		entry(event.KindProcessPCHCommand,
			pchCommandPattern,
			func(m []string) (event.Event, bool) {
				return emit(event.ProcessPCHCommand{FilePath: unescape(m[1])})
			}),
		entry(event.KindShellCommand,
			`^ {4}(cd|setenv|export|builtin-[\w-]+|/`+pathChars+`)\s(.*)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.ShellCommand{Command: unescape(m[1]), Arguments: m[2]})
			}).excluding(compileCommandPattern, pchCommandPattern, objectPathPattern),

		entry(event.KindCleanRemove,
			`^Clean\.Remove clean (.+)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.CleanRemove{Directory: unescape(m[1])})
			}).marked("Clean.Remove"),
		entry(event.KindCodeSignFramework,
			`^CodeSign\s(`+pathArg+`\.framework)/Versions/A`+optTarget,
			func(m []string) (event.Event, bool) {
				return emit(event.CodeSignFramework{Framework: path.Base(unescape(m[1])), InTarget: target(m[2])})
			}).marked("CodeSign "),
		entry(event.KindCodeSign,
			`^CodeSign\s(`+pathArg+`)`+optTarget,
			func(m []string) (event.Event, bool) {
				return emit(event.CodeSign{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("CodeSign ").excluding(`\.framework/Versions/A`),
		entry(event.KindCompile,
			`^(Compile\w*)\s.+?\s(`+pathArg+`/`+pathArg+`\.`+sourceExt+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.Compile{Step: m[1], FileRef: fileRef(m[2]), InTarget: target(m[3])})
			}).marked("Compile"),
		entry(event.KindSwiftCompile,
			`^SwiftCompile\s(\S+)\s(\S+)\s(`+pathArg+`/`+pathArg+`\.swift)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftCompile{
					Variant:      m[1],
					Architecture: event.ParseArchitecture(m[2]),
					FileRef:      fileRef(m[3]),
					InTarget:     target(m[4]),
				})
			}).marked("SwiftCompile "),
		entry(event.KindSwiftCompiling,
			`^SwiftCompile\s(\S+)\s(\S+)\sCompiling\\ (`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				files := splitFiles(m[3])
				if len(files) == 0 {
					return nil, false
				}
				return emit(event.SwiftCompiling{
					Variant:      m[1],
					Architecture: event.ParseArchitecture(m[2]),
					Files:        files,
					InTarget:     target(m[4]),
				})
			}).marked("SwiftCompile "),
		entry(event.KindCompileXib,
			`^CompileXIB\s(`+pathArg+`\.xib)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CompileXib{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("CompileXIB"),
		entry(event.KindCompileStoryboard,
			`^CompileStoryboard\s(`+pathArg+`\.storyboard)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CompileStoryboard{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("CompileStoryboard"),
		entry(event.KindCompileAssetCatalog,
			`^CompileAssetCatalog\s`+pathArg+`\s(`+pathArg+`\.xcassets)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CompileAssetCatalog{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("CompileAssetCatalog "),
		entry(event.KindCopyHeader,
			`^CpHeader\s(`+pathArg+`\.h)\s(`+pathArg+`\.h)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CopyHeader{
					Source:      unescape(m[1]),
					Destination: unescape(m[2]),
					FileRef:     fileRef(m[1]),
					InTarget:    target(m[3]),
				})
			}).marked("CpHeader"),
		entry(event.KindCopyPlist,
			`^CopyPlistFile\s(`+pathArg+`\.plist)\s(`+pathArg+`\.plist)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CopyPlist{
					Source:      unescape(m[1]),
					Destination: unescape(m[2]),
					FileRef:     fileRef(m[1]),
					InTarget:    target(m[3]),
				})
			}).marked("CopyPlistFile"),
		entry(event.KindCopyStrings,
			`^CopyStringsFile\s(`+pathArg+`\.strings)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CopyStrings{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("CopyStringsFile"),
		entry(event.KindCpResource,
			`^CpResource\s(`+pathArg+`)\s`+pathArg+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CpResource{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("CpResource"),
		entry(event.KindCopyFiles,
			`^Copy\s(`+pathArg+`)\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CopyFiles{
					Destination: unescape(m[1]),
					FileRef:     fileRef(m[2]),
					InTarget:    target(m[3]),
				})
			}).marked("Copy "),
		entry(event.KindCreateUniversalBinary,
			`^CreateUniversalBinary\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.CreateUniversalBinary{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("CreateUniversalBinary"),
		entry(event.KindDataModelCodegen,
			`^DataModelCodegen\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.DataModelCodegen{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("DataModelCodegen"),
		entry(event.KindEmitSwiftModule,
			`^EmitSwiftModule\s(\S+)\s([^\s(]\S*)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.EmitSwiftModule{
					Variant:      m[1],
					Architecture: event.ParseArchitecture(m[2]),
					InTarget:     target(m[3]),
				})
			}).marked("EmitSwiftModule"),
		entry(event.KindSwiftEmitModule,
			`^SwiftEmitModule\s(\S+)\s(\S+)\sEmitting\\ module\\ for\\ (`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftEmitModule{
					Variant:      m[1],
					Architecture: event.ParseArchitecture(m[2]),
					Module:       unescape(m[3]),
					InTarget:     target(m[4]),
				})
			}).marked("SwiftEmitModule"),
		entry(event.KindExtractAppIntentsMetadata,
			`^ExtractAppIntentsMetadata`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.ExtractAppIntentsMetadata{InTarget: target(m[1])})
			}).marked("ExtractAppIntentsMetadata"),
		entry(event.KindGenerateDSYM,
			`^GenerateDSYMFile\s(`+pathArg+`\.dSYM)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.GenerateDSYM{DSYM: path.Base(unescape(m[1])), InTarget: target(m[2])})
			}).marked("GenerateDSYMFile"),
		entry(event.KindLibtool,
			`^Libtool\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.Libtool{Library: path.Base(unescape(m[1])), InTarget: target(m[2])})
			}).marked("Libtool"),
		entry(event.KindLinking,
			`^Ld\s(`+pathArg+`)\s([^\s(]\S*)(?:\s([^\s(]\S*))?`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.Linking{
					Binary:       path.Base(unescape(m[1])),
					Variant:      m[2],
					Architecture: event.ParseArchitecture(m[3]),
					InTarget:     target(m[4]),
				})
			}).marked("Ld "),
		entry(event.KindPhaseScriptExecution,
			`^PhaseScriptExecution\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.PhaseScriptExecution{Phase: unescape(m[1]), InTarget: target(m[2])})
			}).marked("PhaseScriptExecution"),
		entry(event.KindPhaseSuccess,
			`^\*\* (.+) SUCCEEDED \*\*(?: \[(.+)\])?$`,
			func(m []string) (event.Event, bool) {
				return emit(event.PhaseSuccess{Phase: m[1], Duration: m[2]})
			}).marked("** "),
		entry(event.KindPhaseFailure,
			`^\*\* (.+) FAILED \*\*(?: \[(.+)\])?$`,
			func(m []string) (event.Event, bool) {
				return emit(event.PhaseFailure{Phase: m[1], Duration: m[2]})
			}).marked("** "),
		entry(event.KindPrecompileModule,
			`^PrecompileModule\s(`+pathArg+`\.modulemap)(?:\s.*)?$`,
			func(m []string) (event.Event, bool) {
				return emit(event.PrecompileModule{FileRef: fileRef(m[1])})
			}).marked("PrecompileModule"),
		entry(event.KindPreprocess,
			`^Preprocess\s`+pathArg+`\s(`+pathArg+`)(?:\s.*)?$`,
			func(m []string) (event.Event, bool) {
				return emit(event.Preprocess{FileRef: fileRef(m[1])})
			}).marked("Preprocess "),
		entry(event.KindProcessPCH,
			`^ProcessPCH(?:\+\+)?\s`+pathArg+`\s(`+pathArg+`\.pch)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.ProcessPCH{Filename: path.Base(unescape(m[1])), InTarget: target(m[2])})
			}).marked("ProcessPCH"),
		entry(event.KindPBXCp,
			`^PBXCp\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.PBXCp{Filename: path.Base(unescape(m[1])), InTarget: target(m[2])})
			}).marked("PBXCp"),
		entry(event.KindProcessInfoPlist,
			`^ProcessInfoPlistFile\s`+pathArg+`\s(`+pathArg+`\.plist)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.ProcessInfoPlist{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("ProcessInfoPlistFile"),
		entry(event.KindProcessProductPackaging,
			`^ProcessProductPackaging(?:DER)?\s`+pathChars+`\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.ProcessProductPackaging{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("ProcessProductPackaging"),
		entry(event.KindRegisterExecutionPolicyException,
			`^RegisterExecutionPolicyException\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.RegisterExecutionPolicyException{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("RegisterExecutionPolicyException"),
		entry(event.KindScanDependencies,
			`^ScanDependencies\s`+pathArg+`\s(`+pathArg+`\.`+sourceExt+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.ScanDependencies{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("ScanDependencies"),
		entry(event.KindSigning,
			`^Signing\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.Signing{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("Signing "),
		entry(event.KindSymLink,
			`^SymLink\s(`+pathArg+`)\s`+pathArg+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SymLink{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("SymLink"),
		entry(event.KindTIFFUtil,
			`^TiffUtil\s(`+pathArg+`)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.TIFFUtil{FileRef: fileRef(m[1])})
			}).marked("TiffUtil"),
		entry(event.KindTouch,
			`^Touch\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.Touch{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("Touch "),
		entry(event.KindValidate,
			`^Validate\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.Validate{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("Validate "),
		entry(event.KindValidateEmbeddedBinary,
			`^ValidateEmbeddedBinary\s(`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.ValidateEmbeddedBinary{FileRef: fileRef(m[1]), InTarget: target(m[2])})
			}).marked("ValidateEmbeddedBinary"),
		entry(event.KindWriteFile,
			`^WriteFile\s(`+pathArg+`)(?:\s.*)?$`,
			func(m []string) (event.Event, bool) {
				return emit(event.WriteFile{Path: unescape(m[1])})
			}).marked("WriteFile"),
		entry(event.KindWriteAuxiliaryFiles,
			`^Write auxiliary files$`,
			func([]string) (event.Event, bool) { return emit(event.WriteAuxiliaryFiles{}) }),
		entry(event.KindSwiftDriver,
			`^SwiftDriver\s(\S+)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftDriver{Module: m[1], InTarget: target(m[2])})
			}).marked("SwiftDriver "),
		entry(event.KindSwiftDriverCompilation,
			`^SwiftDriver\\ Compilation\s(\S+)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftDriverCompilation{Module: m[1], InTarget: target(m[2])})
			}).marked(`SwiftDriver\ Compilation `),
		entry(event.KindSwiftDriverCompilationRequirements,
			`^SwiftDriver\\ Compilation\\ Requirements\s(\S+)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftDriverCompilationRequirements{Module: m[1], InTarget: target(m[2])})
			}).marked(`SwiftDriver\ Compilation\ Requirements`),
		entry(event.KindSwiftDriverJobDiscoveryCompiling,
			`^SwiftDriverJobDiscovery\s\S+\s\S+\sCompiling\\ (`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftDriverJobDiscoveryCompiling{Files: splitFiles(m[1]), InTarget: target(m[2])})
			}).marked("SwiftDriverJobDiscovery"),
		entry(event.KindSwiftDriverJobDiscoveryEmittingModule,
			`^SwiftDriverJobDiscovery\s\S+\s\S+\sEmitting\\ module\\ for\\ (`+pathArg+`)`+rest,
			func(m []string) (event.Event, bool) {
				return emit(event.SwiftDriverJobDiscoveryEmittingModule{Module: unescape(m[1]), InTarget: target(m[2])})
			}).marked("SwiftDriverJobDiscovery"),
		entry(event.KindCompilationResult,
			`^/\* com\.apple\.actool\.compilation-results \*/$`,
			func([]string) (event.Event, bool) { return emit(event.CompilationResult{}) }),
		entry(event.KindGenerateCoverageData,
			`^Generating coverage data\.*$`,
			func([]string) (event.Event, bool) { return emit(event.GenerateCoverageData{}) }),
		entry(event.KindGeneratedCoverageReport,
			`^Generated coverage report: (.+)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.GeneratedCoverageReport{Path: m[1]})
			}),
		entry(event.KindTestingStarted,
			`^Testing started$`,
			func([]string) (event.Event, bool) { return emit(event.TestingStarted{}) }),
	}
}

func header(m []string) event.TargetHeader {
	return event.TargetHeader{Target: m[1], Project: m[2], Configuration: m[3]}
}

func packageEntries() []Entry {
	return []Entry{
		entry(event.KindPackageFetching,
			`^Fetching from (\S+?)(?: \(cached\))?$`,
			func(m []string) (event.Event, bool) { return emit(event.PackageFetching{URL: m[1]}) }).
			marked("Fetching from "),
		entry(event.KindPackageUpdating,
			`^Updating from (\S+)$`,
			func(m []string) (event.Event, bool) { return emit(event.PackageUpdating{URL: m[1]}) }).
			marked("Updating from "),
		entry(event.KindPackageCheckingOut,
			`^Checking out (\S+) of package (\S+)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.PackageCheckingOut{Version: m[1], Package: m[2]})
			}).marked("Checking out "),
		entry(event.KindPackageGraphResolvingStart,
			`^\s*Resolve Package Graph\s*$`,
			func([]string) (event.Event, bool) { return emit(event.PackageGraphResolvingStart{}) }),
		entry(event.KindPackageGraphResolvingEnded,
			`^Resolved source packages:$`,
			func([]string) (event.Event, bool) { return emit(event.PackageGraphResolvingEnded{}) }),
		entry(event.KindPackageGraphResolvedItem,
			`^\s*([^\s:]+):\s(\S+)\s@\s(\S+)$`,
			func(m []string) (event.Event, bool) {
				return emit(event.PackageGraphResolvedItem{Name: m[1], URL: m[2], Version: m[3]})
			}),
	}
}
