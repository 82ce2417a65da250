package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pdfmerge/pdfmerge"
	"github.com/pdfmerge/pdfmerge/internal/cliutil"
	"github.com/pdfmerge/pdfmerge/internal/config"
	"github.com/pdfmerge/pdfmerge/internal/mcpserver"
	"github.com/pdfmerge/pdfmerge/internal/prompt"
	"github.com/pdfmerge/pdfmerge/merger"
	"github.com/pdfmerge/pdfmerge/pdferrors"
	"github.com/pdfmerge/pdfmerge/report"
	"github.com/pdfmerge/pdfmerge/sorter"
	"github.com/pdfmerge/pdfmerge/source"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Dir      string
	Pattern  string
	FromList string
	Sort     string
	Output   string
	Yes      bool
	Verbose  bool
	Strict   bool
	NoColor  bool
	Config   string
	Version  bool
	ServeMCP bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("pdfmerge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Dir, "d", "", "directory containing the PDFs (default: current directory)")
	fs.StringVar(&flags.Dir, "dir", "", "directory containing the PDFs (default: current directory)")
	fs.StringVar(&flags.Pattern, "p", source.DefaultPattern, "glob pattern matched in the directory")
	fs.StringVar(&flags.Pattern, "pattern", source.DefaultPattern, "glob pattern matched in the directory")
	fs.StringVar(&flags.FromList, "L", "", "text file listing the PDFs to merge, one per line")
	fs.StringVar(&flags.FromList, "from-list", "", "text file listing the PDFs to merge, one per line")
	fs.StringVar(&flags.Sort, "s", "", "sort by name, date or size; prefix with ^ for descending")
	fs.StringVar(&flags.Sort, "sort", "", "sort by name, date or size; prefix with ^ for descending")
	fs.StringVar(&flags.Output, "o", merger.DefaultOutput, "output file path")
	fs.StringVar(&flags.Output, "output", merger.DefaultOutput, "output file path")
	fs.BoolVar(&flags.Yes, "y", false, "merge without asking for confirmation")
	fs.BoolVar(&flags.Yes, "yes", false, "merge without asking for confirmation")
	fs.BoolVar(&flags.Verbose, "v", false, "log diagnostics to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log diagnostics to stderr")
	fs.BoolVar(&flags.Strict, "strict", false, "reject PDFs with minor spec violations")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&flags.Config, "config", "", "YAML file with default flag values")
	fs.BoolVar(&flags.Version, "version", false, "print version information and exit")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as an MCP server over stdio")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: pdfmerge [flags] [file ...]\n\n")
		cliutil.Writef(output, "Merge PDF files into a single document.\n\n")
		cliutil.Writef(output, "Inputs are taken from the file arguments if given, else from --from-list,\n")
		cliutil.Writef(output, "else from the files in --dir matching --pattern.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  pdfmerge\n")
		cliutil.Writef(output, "  pdfmerge -d scans -p 'page-*.pdf' -s name -o scans.pdf\n")
		cliutil.Writef(output, "  pdfmerge --from-list chapters.txt -y\n")
		cliutil.Writef(output, "  pdfmerge -s ^date cover.pdf body.pdf appendix.pdf\n")
		cliutil.Writef(output, "\nExit codes: 0 success, 1 aborted or failed, 2 usage error.\n")
	}

	return fs, flags
}

// Env holds the process resources RunMerge uses.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getwd returns the default base directory.
	Getwd func() (string, error)
	// NewAppender creates the PDF engine (nil uses pdfcpu).
	NewAppender merger.AppenderFactory
	// ServeMCP runs the MCP server for --serve-mcp.
	ServeMCP func(ctx context.Context) error
	// Color forces colored output on or off; ColorAuto detects a terminal.
	Color report.ColorMode
}

// DefaultEnv returns an Env bound to the current process.
func DefaultEnv() Env {
	return Env{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getwd:       os.Getwd,
		NewAppender: merger.NewPDFCPU,
		ServeMCP:    mcpserver.Run,
		Color:       report.ColorAuto,
	}
}

// HandleMerge runs the merge command with the process environment.
func HandleMerge(ctx context.Context, args []string) error {
	return RunMerge(ctx, args, DefaultEnv())
}

// RunMerge parses args and runs the merge pipeline: resolve the inputs,
// sort them, confirm, then merge.
func RunMerge(ctx context.Context, args []string, env Env) error {
	fs, flags := SetupMergeFlags()
	fs.SetOutput(env.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", pdferrors.ErrUsage, err)
	}

	if flags.Version {
		cliutil.Writef(env.Stdout, "%s\n", pdfmerge.BuildInfo())
		return nil
	}

	if flags.Config != "" {
		file, err := config.Load(flags.Config)
		if err != nil {
			return err
		}
		if err := config.Apply(fs, file); err != nil {
			return err
		}
	}

	logger := newLogger(env.Stderr, flags.Verbose)

	if flags.ServeMCP {
		logger.Info("serving MCP over stdio")
		return env.ServeMCP(ctx)
	}

	colorMode := env.Color
	if flags.NoColor {
		colorMode = report.ColorNever
	}
	console := report.NewConsole(env.Stdout, colorMode)

	dir := flags.Dir
	if dir == "" {
		wd, err := env.Getwd()
		if err != nil {
			return fmt.Errorf("determining working directory: %w", err)
		}
		dir = wd
	}

	srcCfg := source.Config{
		Files:    fs.Args(),
		Dir:      dir,
		Manifest: flags.FromList,
		Pattern:  flags.Pattern,
	}
	if err := source.Validate(srcCfg); err != nil {
		return err
	}
	spec, err := sorter.ParseSpec(flags.Sort)
	if err != nil {
		return err
	}

	res, err := source.Resolve(srcCfg)
	if err != nil {
		return err
	}
	logger.Debug("resolved inputs", "source", string(res.Kind), "dir", dir, "pattern", flags.Pattern, "count", len(res.Paths))

	paths, err := sorter.Sort(res.Paths, spec, console)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		console.Report(report.Failure, "No PDFs found.")
		return nil
	}

	if err := ValidateOutputPath(flags.Output, paths, console); err != nil {
		return err
	}

	term := prompt.NewTerminal(env.Stdin, env.Stdout)
	term.Style = func(s string) string { return console.Sprint(report.Notice, s) }
	if err := prompt.Gate(ctx, paths, console, term, flags.Yes); err != nil {
		return err
	}

	mc := merger.DefaultConfig()
	mc.StrictValidation = flags.Strict
	mc.Reporter = console
	mc.Logger = logger
	if env.NewAppender != nil {
		mc.NewAppender = env.NewAppender
	}

	result, err := merger.New(mc).Merge(paths, flags.Output)
	if err != nil {
		return err
	}
	if result.Written() {
		console.Report(report.Plain, result.Summary())
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) merger.Logger {
	if !verbose {
		return merger.NopLogger{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return merger.NewSlogAdapter(slog.New(handler))
}
