package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/edit"
	"github.com/erraggy/lenstools/internal/fileutil"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	Format string
	Output string
	Quiet  bool
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output changes, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output changes, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools diff [flags] <base> <revision>\n\n")
		Writef(output, "Compare two documents and report the changes that turn the base\n")
		Writef(output, "into the revision. With --format json or yaml the output is an\n")
		Writef(output, "edit script that lenstools patch can replay against the base.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  lenstools diff deployment-v1.yaml deployment-v2.yaml\n")
		Writef(output, "  lenstools diff --format yaml -o changes.yaml v1.yaml v2.yaml\n")
		Writef(output, "  cat revised.yaml | lenstools diff deployment.yaml -\n")
		Writef(output, "\nExit Status:\n")
		Writef(output, "  0    No differences found\n")
		Writef(output, "  1    Differences found\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths")
	}

	basePath := fs.Arg(0)
	revisionPath := fs.Arg(1)
	if basePath == StdinFilePath && revisionPath == StdinFilePath {
		return fmt.Errorf("base and revision cannot both be read from stdin")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{basePath, revisionPath}); err != nil {
			return err
		}
	}

	base, _, err := LoadDocument(basePath)
	if err != nil {
		return fmt.Errorf("loading base: %w", err)
	}
	revision, _, err := LoadDocument(revisionPath)
	if err != nil {
		return fmt.Errorf("loading revision: %w", err)
	}

	script := edit.Diff(base, revision)

	if !flags.Quiet {
		OutputCommandHeader("Document Diff", basePath)
		Writef(os.Stderr, "Revision: %s\n\n", FormatSpecPath(revisionPath))
	}

	if script.Len() == 0 {
		if !flags.Quiet {
			Writef(os.Stderr, "✓ No differences found\n")
		}
		return nil
	}

	var rendered []byte
	if flags.Format == FormatText {
		rendered = renderDiffText(script, base)
	} else {
		rendered, err = script.Marshal(document.SourceFormat(flags.Format))
		if err != nil {
			return fmt.Errorf("encoding script: %w", err)
		}
	}

	if flags.Output != "" {
		if err := RejectSymlinkOutput(flags.Output); err != nil {
			return err
		}
		if err := os.WriteFile(flags.Output, rendered, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
	} else {
		if _, err := os.Stdout.Write(rendered); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	os.Exit(1)
	return nil
}

// renderDiffText renders a diff script as human-readable change lines.
// Assoc entries show the base value alongside the revised one.
func renderDiffText(script *edit.Script, base *document.Value) []byte {
	out := fmt.Appendf(nil, "Changes (%d):\n", script.Len())
	for _, entry := range script.Entries {
		switch entry.Action {
		case edit.ActionDelete:
			out = fmt.Appendf(out, "  [delete] %s\n", entry.Path)
		default:
			before, _ := document.Resolve(base, entry.Path)
			out = fmt.Appendf(out, "  [%s] %s: %s -> %s\n",
				entry.Action, entry.Path, diffValueText(before), diffValueText(entry.Value))
		}
	}
	return out
}

func diffValueText(v *document.Value) string {
	if v.IsAbsent() {
		return "<absent>"
	}
	return v.String()
}
