package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/edit"
)

// PatchFlags contains flags for the patch command
type PatchFlags struct {
	Script  string
	Strict  bool
	DryRun  bool
	Verbose bool
	Format  string
	Output  string
	Quiet   bool
}

// SetupPatchFlags creates and configures a FlagSet for the patch command.
// Returns the FlagSet and a PatchFlags struct with bound flag variables.
func SetupPatchFlags() (*flag.FlagSet, *PatchFlags) {
	fs := flag.NewFlagSet("patch", flag.ContinueOnError)
	flags := &PatchFlags{}

	fs.StringVar(&flags.Script, "s", "", "edit script file, or '-' for stdin (required)")
	fs.StringVar(&flags.Script, "script", "", "edit script file, or '-' for stdin (required)")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on missing targets and kind conflicts instead of skipping")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "preview changes without applying")
	fs.BoolVar(&flags.DryRun, "n", false, "preview changes without applying")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log each entry as it is applied")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: source format)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools patch [flags] <file|->\n\n")
		Writef(output, "Apply an edit script to a document and output the result.\n")
		Writef(output, "Scripts are YAML or JSON files listing assoc, merge, and delete\n")
		Writef(output, "entries; entries apply in order, each seeing the document\n")
		Writef(output, "produced by its predecessors.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nScript Format:\n")
		Writef(output, "  entries:\n")
		Writef(output, "    - action: assoc\n")
		Writef(output, "      path: spec.replicas\n")
		Writef(output, "      value: 5\n")
		Writef(output, "    - action: delete\n")
		Writef(output, "      path: metadata.labels.debug\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  lenstools patch -s scale-up.yaml deployment.yaml\n")
		Writef(output, "  lenstools patch -s scale-up.yaml --strict deployment.yaml\n")
		Writef(output, "  lenstools patch -s scale-up.yaml --dry-run deployment.yaml\n")
		Writef(output, "  lenstools patch -s scale-up.yaml -o deployment.yaml deployment.yaml\n")
		Writef(output, "  lenstools diff v1.yaml v2.yaml -o changes.yaml && lenstools patch -s changes.yaml v1.yaml\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0  script applied (skipped entries are warnings unless --strict)\n")
		Writef(output, "  1  invalid script, unreadable input, or --strict failure\n")
	}

	return fs, flags
}

// HandlePatch executes the patch command
func HandlePatch(args []string) error {
	fs, flags := SetupPatchFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("patch command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if flags.Script == "" {
		fs.Usage()
		return fmt.Errorf("script is required (use -s or --script)")
	}
	if specPath == StdinFilePath && flags.Script == StdinFilePath {
		return fmt.Errorf("document and script cannot both be read from stdin")
	}

	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	script, err := loadScript(flags.Script)
	if err != nil {
		return err
	}

	doc, srcFormat, err := LoadDocument(specPath)
	if err != nil {
		return err
	}

	applier := &edit.Applier{StrictTargets: flags.Strict}
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		applier.Logger = document.NewSlogAdapter(slog.New(handler))
	}

	if flags.DryRun {
		return handlePatchDryRun(applier, doc, script, specPath, flags)
	}

	result, err := applier.Apply(doc, script)
	if err != nil {
		return fmt.Errorf("applying script: %w", err)
	}

	outFormat := srcFormat
	if flags.Format != "" {
		outFormat = document.SourceFormat(flags.Format)
	}

	if !flags.Quiet {
		OutputCommandHeader("Document Patch", specPath)
		Writef(os.Stderr, "Script: %s\n", FormatSpecPath(flags.Script))
		Writef(os.Stderr, "Applied: %d entries, skipped: %d\n", result.Applied, result.Skipped)
		for _, change := range result.Changes {
			Writef(os.Stderr, "  [%d] %s %s\n", change.EntryIndex, change.Action, change.Path)
		}
		for _, warning := range result.Warnings {
			Writef(os.Stderr, "Warning: %s\n", warning)
		}
		Writef(os.Stderr, "\n")
	}

	if err := OutputDocument(result.Document, outFormat, flags.Output); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}

// handlePatchDryRun previews the script and reports what it would do
// without writing a document.
func handlePatchDryRun(applier *edit.Applier, doc *document.Value, script *edit.Script, specPath string, flags *PatchFlags) error {
	result, err := applier.DryRun(doc, script)
	if err != nil {
		return fmt.Errorf("previewing script: %w", err)
	}

	if flags.Quiet {
		return nil
	}

	OutputCommandHeader("Document Patch Dry Run", specPath)
	Writef(os.Stderr, "Script: %s\n", FormatSpecPath(flags.Script))
	Writef(os.Stderr, "Would apply: %d entries, would skip: %d\n", result.WouldApply, result.WouldSkip)
	for _, change := range result.Changes {
		Writef(os.Stderr, "  [%d] %s %s\n", change.EntryIndex, change.Action, change.Path)
	}
	for _, warning := range result.Warnings {
		Writef(os.Stderr, "Warning: %s\n", warning)
	}
	if result.HasChanges() {
		Writef(os.Stderr, "\nNo changes were made (dry-run mode)\n")
	} else {
		Writef(os.Stderr, "\nNo changes would be made\n")
	}
	return nil
}

// loadScript reads an edit script from a file or stdin.
func loadScript(scriptPath string) (*edit.Script, error) {
	if scriptPath == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading script from stdin: %w", err)
		}
		script, err := edit.ParseScript(data)
		if err != nil {
			return nil, fmt.Errorf("parsing script: %w", err)
		}
		return script, nil
	}
	script, err := edit.ParseScriptFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("loading script: %w", err)
	}
	return script, nil
}
