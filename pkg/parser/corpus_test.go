package parser

import "github.com/dkoosis/xcfo/pkg/event"

// corpus holds one representative line per catalog entry.
var corpus = []struct {
	kind event.Kind
	line string
}{
	{event.KindAnalyze, `AnalyzeShallow /Users/dev/App/Foo.m normal x86_64 (in target: App)`},
	{event.KindBuildTarget, `=== BUILD TARGET App OF PROJECT App WITH THE DEFAULT CONFIGURATION (Debug) ===`},
	{event.KindAggregateTarget, `=== BUILD AGGREGATE TARGET Frameworks OF PROJECT Pods WITH CONFIGURATION Debug ===`},
	{event.KindAnalyzeTarget, `=== ANALYZE TARGET App OF PROJECT App WITH CONFIGURATION Debug ===`},
	{event.KindCleanTarget, `=== CLEAN TARGET App OF PROJECT App WITH CONFIGURATION Debug ===`},
	{event.KindCheckDependencies, `Check dependencies`},
	{event.KindShellCommand, `    cd /Users/dev/App`},
	{event.KindCleanRemove, `Clean.Remove clean /Users/dev/build/App.build`},
	{event.KindCodeSignFramework, `CodeSign /Users/dev/build/App.app/Frameworks/Alamofire.framework/Versions/A (in target 'App' from project 'App')`},
	{event.KindCodeSign, `CodeSign /Users/dev/build/App.app (in target 'App' from project 'App')`},
	{event.KindCompile, `CompileC /Users/dev/build/Foo.o /Users/dev/App/Foo.m normal arm64 objective-c com.apple.compilers.llvm.clang.1_0.compiler (in target 'App' from project 'App')`},
	{event.KindSwiftCompile, `SwiftCompile normal arm64 /Users/dev/App/File.swift (in target 'Target' from project 'Project')`},
	{event.KindSwiftCompiling, `SwiftCompile normal arm64 Compiling\ A.swift,\ B.swift /Users/dev/App/A.swift /Users/dev/App/B.swift (in target 'Target' from project 'Project')`},
	{event.KindCompileCommand, `    /Applications/Xcode.app/Contents/Developer/Toolchains/XcodeDefault.xctoolchain/usr/bin/clang -x objective-c -c /Users/dev/App/main.m -o /Users/dev/build/main.o`},
	{event.KindCompileXib, `CompileXIB /Users/dev/App/Base.lproj/Main.xib (in target 'App' from project 'App')`},
	{event.KindCompileStoryboard, `CompileStoryboard /Users/dev/App/Base.lproj/Main.storyboard (in target 'App' from project 'App')`},
	{event.KindCompileAssetCatalog, `CompileAssetCatalog /Users/dev/build/App.app /Users/dev/App/Assets.xcassets (in target 'App' from project 'App')`},
	{event.KindCopyHeader, `CpHeader /Users/dev/Lib/Lib.h /Users/dev/build/include/Lib.h (in target 'Lib' from project 'Lib')`},
	{event.KindCopyPlist, `CopyPlistFile /Users/dev/build/App.app/Info.plist /Users/dev/App/Info.plist (in target 'App' from project 'App')`},
	{event.KindCopyStrings, `CopyStringsFile /Users/dev/build/App.app/en.lproj/Localizable.strings /Users/dev/App/en.lproj/Localizable.strings (in target 'App' from project 'App')`},
	{event.KindCpResource, `CpResource /Users/dev/App/icon.png /Users/dev/build/App.app/icon.png (in target 'App' from project 'App')`},
	{event.KindCopyFiles, `Copy /Users/dev/build/Foo.swiftmodule /Users/dev/build/Intermediates/Foo.swiftmodule (in target 'Foo' from project 'Foo')`},
	{event.KindCreateUniversalBinary, `CreateUniversalBinary /Users/dev/build/App normal arm64\ x86_64 (in target 'App' from project 'App')`},
	{event.KindDataModelCodegen, `DataModelCodegen /Users/dev/App/Model.xcdatamodeld (in target 'App' from project 'App')`},
	{event.KindEmitSwiftModule, `EmitSwiftModule normal arm64 (in target 'App' from project 'App')`},
	{event.KindSwiftEmitModule, `SwiftEmitModule normal arm64 Emitting\ module\ for\ App (in target 'App' from project 'App')`},
	{event.KindExtractAppIntentsMetadata, `ExtractAppIntentsMetadata (in target 'App' from project 'App')`},
	{event.KindGenerateDSYM, `GenerateDSYMFile /Users/dev/build/App.app.dSYM /Users/dev/build/App.app/App (in target 'App' from project 'App')`},
	{event.KindLibtool, `Libtool /Users/dev/build/libStatic.a normal (in target 'Static' from project 'Static')`},
	{event.KindLinking, `Ld /Users/dev/build/App.app/App normal arm64 (in target 'App' from project 'App')`},
	{event.KindPhaseScriptExecution, `PhaseScriptExecution Run\ Script /Users/dev/build/Script-123.sh (in target 'App' from project 'App')`},
	{event.KindPhaseSuccess, `** BUILD SUCCEEDED ** [4.123 sec]`},
	{event.KindPhaseFailure, `** TEST FAILED **`},
	{event.KindPrecompileModule, `PrecompileModule /Users/dev/build/ModuleCache/Foo.modulemap`},
	{event.KindPreprocess, `Preprocess /Users/dev/build/Foo.i /Users/dev/App/Foo.m normal arm64 objective-c com.apple.compilers.llvm.clang.1_0.compiler (in target 'App' from project 'App')`},
	{event.KindProcessPCH, `ProcessPCH /Users/dev/build/Prefix.pch.gch /Users/dev/App/Prefix.pch normal arm64 objective-c com.apple.compilers.llvm.clang.1_0.compiler (in target 'App' from project 'App')`},
	{event.KindProcessPCHCommand, `    /usr/bin/clang -x objective-c-header -c /Users/dev/App/Prefix.pch -o /tmp/Prefix.pch.gch`},
	{event.KindPBXCp, `PBXCp /Users/dev/App/Settings.bundle /Users/dev/build/App.app/Settings.bundle (in target 'App' from project 'App')`},
	{event.KindProcessInfoPlist, `ProcessInfoPlistFile /Users/dev/build/App.app/Info.plist /Users/dev/App/Info.plist (in target 'App' from project 'App')`},
	{event.KindProcessProductPackaging, `ProcessProductPackaging "" /Users/dev/build/App.app-Simulated.xcent (in target 'App' from project 'App')`},
	{event.KindRegisterExecutionPolicyException, `RegisterExecutionPolicyException /Users/dev/build/App.app (in target 'App' from project 'App')`},
	{event.KindScanDependencies, `ScanDependencies /Users/dev/build/Foo.o /Users/dev/App/Foo.m normal arm64 objective-c com.apple.compilers.llvm.clang.1_0.compiler (in target 'App' from project 'App')`},
	{event.KindSigning, `Signing /Users/dev/build/App.app (in target 'App' from project 'App')`},
	{event.KindSymLink, `SymLink /Users/dev/build/Foo.framework/Foo Versions/Current/Foo (in target 'Foo' from project 'Foo')`},
	{event.KindTIFFUtil, `TiffUtil /Users/dev/build/icon.tiff`},
	{event.KindTouch, `Touch /Users/dev/build/App.app (in target 'App' from project 'App')`},
	{event.KindValidate, `Validate /Users/dev/build/App.app (in target 'App' from project 'App')`},
	{event.KindValidateEmbeddedBinary, `ValidateEmbeddedBinary /Users/dev/build/App.app/PlugIns/Widget.appex (in target 'App' from project 'App')`},
	{event.KindWriteFile, `WriteFile /Users/dev/build/App.hmap`},
	{event.KindWriteAuxiliaryFiles, `Write auxiliary files`},
	{event.KindSwiftDriver, `SwiftDriver App normal arm64 com.apple.xcode.tools.swift.compiler (in target 'App' from project 'App')`},
	{event.KindSwiftDriverCompilation, `SwiftDriver\ Compilation App normal arm64 com.apple.xcode.tools.swift.compiler (in target 'App' from project 'App')`},
	{event.KindSwiftDriverCompilationRequirements, `SwiftDriver\ Compilation\ Requirements App normal arm64 com.apple.xcode.tools.swift.compiler (in target 'App' from project 'App')`},
	{event.KindSwiftDriverJobDiscoveryCompiling, `SwiftDriverJobDiscovery normal arm64 Compiling\ A.swift,\ B.swift (in target 'App' from project 'App')`},
	{event.KindSwiftDriverJobDiscoveryEmittingModule, `SwiftDriverJobDiscovery normal arm64 Emitting\ module\ for\ App (in target 'App' from project 'App')`},
	{event.KindCompilationResult, `/* com.apple.actool.compilation-results */`},
	{event.KindGenerateCoverageData, `Generating coverage data...`},
	{event.KindGeneratedCoverageReport, `Generated coverage report: /Users/dev/build/Logs/Test/Run.xcresult/action.xccovreport`},
	{event.KindTestingStarted, `Testing started`},

	{event.KindPackageFetching, `Fetching from https://github.com/apple/swift-argument-parser (cached)`},
	{event.KindPackageUpdating, `Updating from https://github.com/apple/swift-nio`},
	{event.KindPackageCheckingOut, `Checking out 1.2.0 of package swift-argument-parser`},
	{event.KindPackageGraphResolvingStart, `Resolve Package Graph`},
	{event.KindPackageGraphResolvingEnded, `Resolved source packages:`},
	{event.KindPackageGraphResolvedItem, `  swift-argument-parser: https://github.com/apple/swift-argument-parser @ 1.2.0`},

	{event.KindProvisioningProfileRequired, `error: "App" requires a provisioning profile. Select a provisioning profile in the Signing & Capabilities editor. (in target 'App' from project 'App')`},
	{event.KindNoCertificate, `No certificate matching 'iPhone Distribution: Acme' for team 'ABC123'`},
	{event.KindFileMissingError, `<unknown>:0: error: no such file or directory: '/Users/dev/App/Missing.swift'`},
	{event.KindModuleIncludesError, `<module-includes>:1:9: error: include of non-modular header inside framework module 'Foo'`},
	{event.KindCompileWarning, `/Users/dev/App/File.swift:10:5: warning: variable 'x' was never used`},
	{event.KindCompileError, `/Users/dev/App/File.swift:12:9: error: cannot find 'foo' in scope`},
	{event.KindClangError, `clang: error: linker command failed with exit code 1 (use -v to see invocation)`},
	{event.KindFatalError, `fatal error: 'Foo/Foo.h' file not found`},
	{event.KindLDWarning, `ld: warning: directory not found for option '-L/Users/dev/Lib'`},
	{event.KindLDError, `ld: library not found for -lPods-App`},
	{event.KindLinkerDuplicateSymbols, `duplicate symbol '_OBJC_CLASS_$_Foo' in:`},
	{event.KindLinkerDuplicateSymbolsLocation, `    /Users/dev/build/Foo.o`},
	{event.KindLinkerUndefinedSymbols, `Undefined symbols for architecture arm64:`},
	{event.KindLinkerUndefinedSymbolLocation, `      objc-class-ref in AppDelegate.o`},
	{event.KindSymbolReferencedFrom, `  "_OBJC_CLASS_$_CABasicAnimation", referenced from:`},
	{event.KindXcodebuildError, `xcodebuild: error: Unable to find a destination matching the provided destination specifier:`},
	{event.KindGenericError, `error: Build input file cannot be found: '/Users/dev/App/Foo.swift'`},
	{event.KindGenericWarning, `warning: Run script build phase 'Lint' will be run during every build`},
	{event.KindNote, `note: Build preparation complete`},
	{event.KindDuplicateLocalizedStringKey, `2024-01-01 12:00:00.000 ibtoold[123:456] --- WARNING: Key "greeting" used with multiple values. Value "Hi" kept. Value "Hello" ignored.`},
	{event.KindWillNotBeCodeSigned, `Widget will not be code signed because its settings don't specify a development team.`},
	{event.KindCursor, `        ^~~~~`},

	{event.KindTestSuiteStarted, `Test Suite 'AppTests.xctest' started at 2024-01-01 12:00:00.000`},
	{event.KindParallelTestSuiteStarted, `Test Suite 'AppTests' started on 'Clone 1 of iPhone 15 - App (12345)'`},
	{event.KindTestSuiteStart, `Test Suite 'All tests' started at 2024-01-01 12:00:00.000`},
	{event.KindTestsRunCompletion, `Test Suite 'AppTests.xctest' passed at 2024-01-01 12:00:01.000.`},
	{event.KindTestSuiteAllTestsPassed, `Test Suite 'All tests' passed at 2024-01-01 12:00:01.000.`},
	{event.KindTestSuiteAllTestsFailed, `Test Suite 'Selected tests' failed at 2024-01-01 12:00:01.000.`},
	{event.KindTestCaseStarted, `Test Case '-[AppTests.MathTests testAdd]' started.`},
	{event.KindTestCasePending, `Test Case '-[AppTests.MathTests testSubtractPENDING]' passed (0.001 seconds).`},
	{event.KindTestCasePassed, `Test Case '-[AppTests.MathTests testAdd]' passed (0.002 seconds).`},
	{event.KindTestCaseFailed, `Test Case '-[AppTests.MathTests testDivide]' failed (0.010 seconds).`},
	{event.KindTestCaseSkipped, `Test Case '-[AppTests.MathTests testSkip]' skipped (0.000 seconds).`},
	{event.KindTestCaseMeasured, `/Users/dev/AppTests/PerfTests.swift:12: Test Case '-[AppTests.PerfTests testSort]' measured [Time, seconds] average: 0.013, relative standard deviation: 5.123%, values: [0.012, 0.013]`},
	{event.KindFailingTest, `/Users/dev/AppTests/MathTests.swift:42: error: -[AppTests.MathTests testDivide] : XCTAssertEqual failed: ("1") is not equal to ("2")`},
	{event.KindUIFailingTest, `    t =     0.52s Assertion Failure: LoginUITests.swift:23: Button not found`},
	{event.KindRestartingTest, `Restarting after unexpected exit, crash, or test timeout in -[AppTests.CrashTests testCrash]; summary will include totals from previous launches.`},
	{event.KindExecutedWithoutSkipped, "\t Executed 1 test, with 0 failures (0 unexpected) in 0.002 (0.002) seconds"},
	{event.KindExecutedWithSkipped, "\t Executed 3 tests, with 1 test skipped and 0 failures (0 unexpected) in 0.010 (0.012) seconds"},
	{event.KindParallelTestingStarted, `Testing started on 'iPhone 15'`},
	{event.KindParallelTestingPassed, `Testing passed on 'iPhone 15'`},
	{event.KindParallelTestingFailed, `Testing failed on 'iPhone 15'`},
	{event.KindParallelTestCasePassed, `Test case 'MathTests.testAdd()' passed on 'Clone 1 of iPhone 15 - App (12345)' (0.002 seconds)`},
	{event.KindParallelTestCaseAppKitPassed, `Test case '-[AppTests.MathTests testAdd]' passed on 'My Mac - App (12345)' (0.002 seconds)`},
	{event.KindParallelTestCaseFailed, `Test case 'MathTests.testDivide()' failed on 'Clone 1 of iPhone 15 - App (12345)' (0.010 seconds)`},
	{event.KindParallelTestCaseSkipped, `Test case 'MathTests.testSkip()' skipped on 'Clone 1 of iPhone 15 - App (12345)' (0.000 seconds)`},

	{event.KindSwiftTestingRunStarted, `◇ Test run started.`},
	{event.KindSwiftTestingRunCompletion, `✔ Test run with 3 tests passed after 0.005 seconds.`},
	{event.KindSwiftTestingRunFailed, `✘ Test run with 3 tests failed after 0.005 seconds with 1 issue.`},
	{event.KindSwiftTestingSuiteStarted, `◇ Suite MathTests started.`},
	{event.KindSwiftTestingSuitePassed, `✔ Suite MathTests passed after 0.003 seconds.`},
	{event.KindSwiftTestingSuiteFailed, `✘ Suite MathTests failed after 0.003 seconds with 1 issue.`},
	{event.KindSwiftTestingTestStarted, `◇ Test addition() started.`},
	{event.KindSwiftTestingTestPassed, `✔ Test addition() passed after 0.001 seconds.`},
	{event.KindSwiftTestingTestFailed, `✘ Test division() failed after 0.002 seconds with 1 issue.`},
	{event.KindSwiftTestingTestSkipped, `➜ Test later() skipped.`},
	{event.KindSwiftTestingTestSkippedReason, `➜ Test later() skipped: "Not ready"`},
	{event.KindSwiftTestingIssueArgument, `✘ Test parse(input:) recorded an issue with 1 argument input → "x" at ParserTests.swift:14:5: Expectation failed: (result → nil) != nil`},
	{event.KindSwiftTestingIssue, `✘ Test division() recorded an issue at MathTests.swift:20:9: Expectation failed: (6 / 3 → 2) == 3`},
	{event.KindSwiftTestingPassingArgument, `◇ Passing 1 argument input → "x" to parse(input:)`},
	{event.KindSwiftTestingIssueDetails, `↳ The divisor was zero`},
}

// extraLines are further real-world shapes that must stay unambiguous.
var extraLines = []string{
	"\U001007C8 Test addition() started.",
	"\U0010105B Test addition() passed after 0.001 seconds.",
	"\U00100884 Test division() recorded an issue at MathTests.swift:20:9: Expectation failed",
	"\U0010065F Test later() skipped.",
	"\U00100135 The divisor was zero",
	`✔ Test sum(values:) with 3 test cases passed after 0.004 seconds.`,
	`/Users/dev/App/File.swift:3:7: note: did you mean 'bar'?`,
	`/Users/dev/App/App.xcodeproj: warning: The iOS Simulator deployment target is set to 9.0`,
	`/Users/dev/App/File.m:4:10: fatal error: 'Missing.h' file not found`,
	`Test Case 'AppTests.MathTests.testAdd' started at 2024-01-01 12:00:00.000`,
	`Test Case 'AppTests.MathTests.testAdd' passed (0.001 seconds)`,
	`/src/Tests/MathTests.swift:9: error: AppTests.MathTests.testDivide : XCTAssertEqual failed`,
	`CompileSwift normal arm64 /Users/dev/App/File.swift (in target 'App' from project 'App')`,
	`Ld /Users/dev/build/App normal (in target 'App' from project 'App')`,
	`** BUILD FAILED **`,
	`    export LANG\=en_US.US-ASCII`,
	`    builtin-copy -exclude .DS_Store /Users/dev/a /Users/dev/b`,
	`clang: ld: warning: ignoring duplicate libraries: '-lc++'`,
	`Build settings from command line:`,
	`Command line invocation:`,
	`    /usr/bin/touch -c /Users/dev/build/App.app`,
	`    clang -c main.m -o main.o`,
	`    /usr/bin/clang -c /a/b.m -o /a/b.o`,
	`    /usr/bin/ld /a/b.o`,
	"Executed 3 tests, with 1 failure (0 unexpected), 1 skipped in 0.010 (0.012) seconds",
	"Executed 5 tests, with 2 failures (1 unexpected), 2 tests skipped in 1.000 (1.100) seconds",
	`    /Users/dev/build/libFoo.a(Bar.o)`,
}
