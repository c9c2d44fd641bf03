package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/Redrield/emojicode/dist"
)

// Parse builds the Options for one compiler run from the raw command line
// arguments (without the program name) and the captured environment. The
// help menu, usage text and messages about the invocation itself are
// written to stdout and stderr. When such a message was the point of the
// invocation, or the command line was unusable, the returned error is a
// *Cancellation and no Options exist.
func Parse(args []string, env Environ, stdout, stderr io.Writer) (*Options, error) {
	var flags struct {
		packageName   string
		out           string
		interfacePath string
		target        string
		linker        string
		report        bool
		object        bool
		json          bool
		format        bool
		color         bool
		optimize      bool
		emitLLVM      bool
		searchPaths   []string
		help          bool
	}

	var mainFile string

	cmd := &cobra.Command{
		Use:   "emojicodec file",
		Short: "The Emojicode compiler.",
		Long: fmt.Sprintf("Emojicode Compiler %s. Visit https://www.emojicode.org for help.",
			dist.Default().Version),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &Cancellation{Reason: ValidationError, Message: "the file to compile is required"}
			}
			if len(args) > 1 {
				return &Cancellation{Reason: ParseError, Message: fmt.Sprintf("unexpected argument %q", args[1])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mainFile = args[0]
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	f := cmd.Flags()
	f.BoolVarP(&flags.help, "help", "h", false, "Display this help menu")
	f.StringVarP(&flags.packageName, "package", "p", "", "The name of the package")
	f.StringVarP(&flags.out, "out", "o", "", "Set output path for binary or assembly")
	f.StringVarP(&flags.interfacePath, "interface", "i", "", "Output interface to given path")
	f.StringVar(&flags.target, "target", "", "LLVM triple of the compilation target")
	f.StringVar(&flags.linker, "linker", "", "The linker to use to link the produced object files")
	f.BoolVarP(&flags.report, "report", "r", false, "Generate a JSON report about the package")
	f.BoolVarP(&flags.object, "object", "c", false, "Produce object file, do not link")
	f.BoolVar(&flags.json, "json", false, "Show compiler messages as JSON")
	f.BoolVar(&flags.format, "format", false, "Format source code")
	f.BoolVar(&flags.color, "color", false, "Always show compiler messages in color")
	f.BoolVarP(&flags.optimize, "optimize", "O", false, "Compile with optimizations")
	f.BoolVar(&flags.emitLLVM, "emit-llvm", false, "Print the IR to the standard output")
	f.StringArrayVarP(&flags.searchPaths, "search-path", "S", nil, "Adds the path to the package search path (after './packages')")

	if err := cmd.Execute(); err != nil {
		var cancel *Cancellation
		if errors.As(err, &cancel) {
			printCliMessage(stdout, cancel.Message)
			if cancel.Reason == ParseError {
				fmt.Fprint(stderr, cmd.UsageString())
			}
			return nil, cancel
		}

		// Anything else came out of flag parsing: unknown flags, missing
		// values and the like.
		printCliMessage(stdout, err.Error())
		fmt.Fprint(stderr, cmd.UsageString())
		return nil, &Cancellation{Reason: ParseError, Message: err.Error()}
	}
	if flags.help {
		// Cobra has already printed the help menu to stdout.
		return nil, &Cancellation{Reason: HelpRequested}
	}

	opts := &Options{
		stdout: stdout,
		stderr: stderr,
		pack:   true,
	}

	opts.searchPaths = resolveSearchPaths(flags.searchPaths, env)

	opts.targetTriple = flags.target
	opts.report = flags.report
	opts.mainFile = mainFile
	opts.jsonOutput = flags.json
	opts.format = flags.format
	opts.forceColor = flags.color
	opts.optimize = flags.optimize
	opts.emitLLVM = flags.emitLLVM

	if cmd.Flags().Changed("package") {
		opts.mainPackageName = flags.packageName
		opts.packageSet = true
	}
	if flags.object || flags.emitLLVM {
		opts.pack = false
	}
	opts.outPath = flags.out
	opts.interfaceFile = flags.interfacePath

	opts.linker = resolveLinker(env, flags.linker)
	opts.archiver = resolveArchiver(env)
	glog.V(2).Infof("resolved linker %q and archiver %q", opts.linker, opts.archiver)

	opts.configureOutPath()
	return opts, nil
}

// printCliMessage prints a message about the use of the command line
// interface itself.
func printCliMessage(w io.Writer, message string) {
	fmt.Fprintf(w, "👉  %s\n", message)
}
