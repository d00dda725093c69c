package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/internal/transforms"
	"github.com/erraggy/lenstools/lens"
	"github.com/erraggy/lenstools/path"
)

// OverFlags contains flags for the over command
type OverFlags struct {
	Path      string
	Transform string
	Format    string
	Output    string
	Quiet     bool
}

// SetupOverFlags creates and configures a FlagSet for the over command.
// Returns the FlagSet and an OverFlags struct with bound flag variables.
func SetupOverFlags() (*flag.FlagSet, *OverFlags) {
	fs := flag.NewFlagSet("over", flag.ContinueOnError)
	flags := &OverFlags{}

	fs.StringVar(&flags.Path, "p", "", "path to transform (default: the whole document)")
	fs.StringVar(&flags.Path, "path", "", "path to transform (default: the whole document)")
	fs.StringVar(&flags.Transform, "t", "", "named transform to apply (required)")
	fs.StringVar(&flags.Transform, "transform", "", "named transform to apply (required)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: source format)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools over [flags] <file|->\n\n")
		Writef(output, "Apply a named transform to the value at a path and output the\n")
		Writef(output, "updated document. Transforms only rewrite values of a matching\n")
		Writef(output, "kind; everything else, including a missing value, passes through\n")
		Writef(output, "unchanged.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nTransforms:\n")
		Writef(output, "  %s\n", strings.Join(transforms.Names(), ", "))
		Writef(output, "\nExamples:\n")
		Writef(output, "  lenstools over -p metadata.name -t upper deployment.yaml\n")
		Writef(output, "  lenstools over -p spec.replicas -t increment deployment.yaml\n")
		Writef(output, "  lenstools over -p spec.replicas -t increment -o deployment.yaml deployment.yaml\n")
		Writef(output, "  cat deployment.yaml | lenstools over -q -p metadata.name -t trim -\n")
	}

	return fs, flags
}

// HandleOver executes the over command
func HandleOver(args []string) error {
	fs, flags := SetupOverFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("over command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if flags.Transform == "" {
		fs.Usage()
		return fmt.Errorf("transform is required (use -t or --transform)")
	}

	fn, ok := transforms.Lookup(flags.Transform)
	if !ok {
		return fmt.Errorf("unknown transform %q (available: %s)",
			flags.Transform, strings.Join(transforms.Names(), ", "))
	}

	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	p, err := path.Parse(flags.Path)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}

	doc, srcFormat, err := LoadDocument(specPath)
	if err != nil {
		return err
	}

	updated := lens.FromPath(p).Over(fn, doc)

	outFormat := srcFormat
	if flags.Format != "" {
		outFormat = document.SourceFormat(flags.Format)
	}

	if !flags.Quiet {
		OutputCommandHeader("Document Lens Over", specPath)
		Writef(os.Stderr, "Path: %s\n", displayPath(flags.Path))
		Writef(os.Stderr, "Transform: %s\n", strings.ToLower(flags.Transform))
		if updated.Equal(doc) {
			Writef(os.Stderr, "No change: transform did not apply at this path\n")
		}
		Writef(os.Stderr, "\n")
	}

	if err := OutputDocument(updated, outFormat, flags.Output); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}
