package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/lens"
	"github.com/erraggy/lenstools/path"
)

// SetFlags contains flags for the set command
type SetFlags struct {
	Path   string
	Value  string
	Format string
	Output string
	Quiet  bool
}

// SetupSetFlags creates and configures a FlagSet for the set command.
// Returns the FlagSet and a SetFlags struct with bound flag variables.
func SetupSetFlags() (*flag.FlagSet, *SetFlags) {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	flags := &SetFlags{}

	fs.StringVar(&flags.Path, "p", "", "path to store at (default: replace the whole document)")
	fs.StringVar(&flags.Path, "path", "", "path to store at (default: replace the whole document)")
	fs.StringVar(&flags.Value, "v", "", "value to store, parsed as YAML/JSON (required)")
	fs.StringVar(&flags.Value, "value", "", "value to store, parsed as YAML/JSON (required)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: source format)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools set [flags] <file|->\n\n")
		Writef(output, "Store a value at a path and output the updated document.\n")
		Writef(output, "The input document is never modified; missing intermediate\n")
		Writef(output, "containers are created on the way down.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nValues:\n")
		Writef(output, "  The value literal is parsed as YAML/JSON, so 5 stores an integer,\n")
		Writef(output, "  true a boolean, null an explicit null, '{a: 1}' a mapping, and\n")
		Writef(output, "  anything else a string.\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  lenstools set -p spec.replicas -v 5 deployment.yaml\n")
		Writef(output, "  lenstools set -p metadata.labels.tier -v backend deployment.yaml\n")
		Writef(output, "  lenstools set -p spec.ports -v '[80, 443]' deployment.yaml\n")
		Writef(output, "  lenstools set -p spec.replicas -v 5 -o deployment.yaml deployment.yaml  # in place\n")
		Writef(output, "  cat deployment.yaml | lenstools set -q -p spec.replicas -v 5 -\n")
	}

	return fs, flags
}

// HandleSet executes the set command
func HandleSet(args []string) error {
	fs, flags := SetupSetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("set command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	// A bare default cannot stand in for the flag: -v "" legitimately
	// stores null, so presence is what matters.
	valueProvided := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "v" || f.Name == "value" {
			valueProvided = true
		}
	})
	if !valueProvided {
		fs.Usage()
		return fmt.Errorf("value is required (use -v or --value)")
	}

	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	p, err := path.Parse(flags.Path)
	if err != nil {
		return fmt.Errorf("parsing path: %w", err)
	}

	value, err := parseValueLiteral(flags.Value)
	if err != nil {
		return err
	}

	doc, srcFormat, err := LoadDocument(specPath)
	if err != nil {
		return err
	}

	updated := lens.FromPath(p).Set(value, doc)

	outFormat := srcFormat
	if flags.Format != "" {
		outFormat = document.SourceFormat(flags.Format)
	}

	if !flags.Quiet {
		OutputCommandHeader("Document Lens Set", specPath)
		Writef(os.Stderr, "Path: %s\n", displayPath(flags.Path))
		Writef(os.Stderr, "Stored: %s\n\n", value.Kind())
	}

	if err := OutputDocument(updated, outFormat, flags.Output); err != nil {
		return err
	}
	if flags.Output != "" && !flags.Quiet {
		Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}

// parseValueLiteral decodes a command-line value literal into a
// document value. Bare scalars, quoted strings, and inline containers
// all work because the literal goes through the document codec.
func parseValueLiteral(literal string) (*document.Value, error) {
	value, _, err := document.DecodeAny([]byte(literal))
	if err != nil {
		return nil, fmt.Errorf("parsing value: %w", err)
	}
	return value, nil
}
