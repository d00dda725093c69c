package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/internal/fileutil"
	"github.com/erraggy/lenstools/lens"
	"github.com/erraggy/lenstools/path"
)

// ViewFlags contains flags for the view command
type ViewFlags struct {
	Path   string
	Format string
	Output string
	Quiet  bool
}

// SetupViewFlags creates and configures a FlagSet for the view command.
// Returns the FlagSet and a ViewFlags struct with bound flag variables.
func SetupViewFlags() (*flag.FlagSet, *ViewFlags) {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	flags := &ViewFlags{}

	fs.StringVar(&flags.Path, "p", "", "path to focus (default: whole document)")
	fs.StringVar(&flags.Path, "path", "", "path to focus (default: whole document)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the value, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the value, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools view [flags] <file|->\n\n")
		Writef(output, "Read the value at a path in a YAML or JSON document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nPath Syntax:\n")
		Writef(output, "  Dotted keys with bracketed indexes: spec.containers[0].image\n")
		Writef(output, "  Keys needing punctuation use bracket quoting: metadata.labels[\"app.kubernetes.io/name\"]\n")
		Writef(output, "  The empty path focuses the whole document.\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  lenstools view -p spec.replicas deployment.yaml\n")
		Writef(output, "  lenstools view -p spec.containers[0] --format json deployment.yaml\n")
		Writef(output, "  cat deployment.yaml | lenstools view -q -p metadata.name -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Value found\n")
		Writef(output, "  1    No value at the path, or the document could not be read\n")
	}

	return fs, flags
}

// HandleView executes the view command
func HandleView(args []string) error {
	fs, flags := SetupViewFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("view command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := path.Parse(flags.Path)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}

	doc, _, err := LoadDocument(specPath)
	if err != nil {
		return err
	}

	focused := lens.FromPath(p).View(doc)
	if focused.IsAbsent() {
		return fmt.Errorf("no value at path %q in %s", flags.Path, FormatSpecPath(specPath))
	}

	if !flags.Quiet {
		OutputCommandHeader("Document Value Viewer", specPath)
		Writef(os.Stderr, "Path: %s\n", displayPath(flags.Path))
		Writef(os.Stderr, "Kind: %s\n\n", focused.Kind())
	}

	data, err := renderValue(focused, flags.Format)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := RejectSymlinkOutput(flags.Output); err != nil {
			return err
		}
		if err := os.WriteFile(flags.Output, data, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
		return nil
	}

	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing value to stdout: %w", err)
	}
	return nil
}

// renderValue encodes a focused value for output. Text format prints
// scalars bare for easy piping and falls back to YAML for containers.
func renderValue(v *document.Value, format string) ([]byte, error) {
	switch format {
	case FormatText:
		if v.IsNull() {
			return []byte("null\n"), nil
		}
		if v.IsScalar() {
			return fmt.Appendf(nil, "%v\n", v.ToNative()), nil
		}
		return document.Encode(v, document.FormatYAML)
	case FormatJSON:
		return document.EncodeIndent(v, document.FormatJSON)
	case FormatYAML:
		return document.EncodeIndent(v, document.FormatYAML)
	}
	return nil, fmt.Errorf("invalid format for value output: %s", format)
}

// displayPath renders a path expression for diagnostics, making the
// empty root path visible.
func displayPath(expr string) string {
	if expr == "" {
		return "(root)"
	}
	return expr
}
