// Package cli resolves a compiler invocation: command line arguments,
// environment variables and distribution defaults become one immutable
// Options value that the compilation phases are configured from.
package cli

import (
	"io"

	"golang.org/x/exp/slices"

	"github.com/Redrield/emojicode/diag"
)

// Options represents the command line options the compiler was started
// with, after all resolution took place. Instances come from Parse and
// never change afterwards.
type Options struct {
	mainFile        string
	mainPackageName string
	packageSet      bool
	targetTriple    string
	linker          string
	archiver        string
	outPath         string
	interfaceFile   string
	reportPath      string
	searchPaths     []string

	report     bool
	jsonOutput bool
	format     bool
	forceColor bool
	optimize   bool
	emitLLVM   bool
	pack       bool

	stdout io.Writer
	stderr io.Writer
}

// MainFile returns the path of the main document of the package under
// compilation, as given on the command line.
func (o *Options) MainFile() string { return o.mainFile }

// MainPackageName returns the name of the package under compilation. It is
// empty for a standalone program.
func (o *Options) MainPackageName() string { return o.mainPackageName }

// Standalone reports whether a standalone program is compiled rather than a
// library package. A package name on the command line makes the compilation
// a library one.
func (o *Options) Standalone() bool { return !o.packageSet }

// Target returns the LLVM triple to compile for, or "" for the host.
func (o *Options) Target() string { return o.targetTriple }

// OutPath returns the path of the final artifact: the executable when
// compiling a standalone program, the static library when packing one.
func (o *Options) OutPath() string { return o.outPath }

// InterfaceFile returns the path the package interface is written to, or ""
// when no interface should be emitted.
func (o *Options) InterfaceFile() string { return o.interfaceFile }

// ReportPath returns the path of the documentation report, or "" when no
// report was requested.
func (o *Options) ReportPath() string { return o.reportPath }

// PackageSearchPaths returns the directories searched for packages, in
// precedence order.
func (o *Options) PackageSearchPaths() []string { return slices.Clone(o.searchPaths) }

// ShouldReport reports whether a documentation report was requested.
func (o *Options) ShouldReport() bool { return o.report }

// Prettyprint reports whether the main purpose of the invocation is to
// format the source.
func (o *Options) Prettyprint() bool { return o.format }

// Optimize reports whether optimizations were requested.
func (o *Options) Optimize() bool { return o.optimize }

// Pack reports whether the object file should be linked or archived into a
// final artifact. Producing an object file or IR directly disables packing.
func (o *Options) Pack() bool { return o.pack }

// Linker returns the program used to link the final binary.
func (o *Options) Linker() string { return o.linker }

// Ar returns the program used to archive a library package.
func (o *Options) Ar() string { return o.archiver }

// CompilerDelegate returns the delegate matching the options: a JSON
// message stream on standard output when --json was given, otherwise
// human-readable messages on standard error.
func (o *Options) CompilerDelegate() diag.Delegate {
	if o.jsonOutput {
		return diag.NewJSON(o.stdout)
	}
	return diag.NewHRF(o.stderr, o.forceColor)
}
