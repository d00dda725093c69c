package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
	"github.com/erraggy/lenstools/walker"
)

// PathsFlags contains flags for the paths command
type PathsFlags struct {
	Prefix   string
	MaxDepth int
	Leaves   bool
	Values   bool
	Format   string
	Quiet    bool
}

// pathListing is one enumerated path in structured output.
type pathListing struct {
	Path  string `json:"path"            yaml:"path"`
	Kind  string `json:"kind"            yaml:"kind"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// SetupPathsFlags creates and configures a FlagSet for the paths command.
// Returns the FlagSet and a PathsFlags struct with bound flag variables.
func SetupPathsFlags() (*flag.FlagSet, *PathsFlags) {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	flags := &PathsFlags{}

	fs.StringVar(&flags.Prefix, "p", "", "only list paths under this path expression")
	fs.StringVar(&flags.Prefix, "prefix", "", "only list paths under this path expression")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "override the traversal depth limit (default 100)")
	fs.BoolVar(&flags.Leaves, "leaves", false, "list only scalar leaves, skipping containers")
	fs.BoolVar(&flags.Values, "values", false, "include the value at each path")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output paths, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output paths, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools paths [flags] <file|->\n\n")
		Writef(output, "Enumerate the paths in a document in deterministic order:\n")
		Writef(output, "mapping keys sorted, sequence elements by index. The printed\n")
		Writef(output, "paths are valid inputs to view, set, and over.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  lenstools paths deployment.yaml\n")
		Writef(output, "  lenstools paths --leaves --values deployment.yaml\n")
		Writef(output, "  lenstools paths -p spec.template deployment.yaml\n")
		Writef(output, "  lenstools paths -q --leaves deployment.yaml | wc -l\n")
	}

	return fs, flags
}

// HandlePaths executes the paths command
func HandlePaths(args []string) error {
	fs, flags := SetupPathsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("paths command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	prefix, err := path.Parse(flags.Prefix)
	if err != nil {
		return fmt.Errorf("parsing prefix: %w", err)
	}

	doc, _, err := LoadDocument(specPath)
	if err != nil {
		return err
	}

	total := 0
	var listings []pathListing
	handler := func(v *document.Value, p path.Path) walker.Action {
		total++
		if !p.HasPrefix(prefix) {
			return walker.Continue
		}
		listing := pathListing{Path: p.String(), Kind: v.Kind().String()}
		if flags.Values {
			listing.Value = v.ToNative()
		}
		listings = append(listings, listing)
		return walker.Continue
	}

	var opts []walker.Option
	if flags.Leaves {
		opts = append(opts, walker.WithLeafHandler(handler))
	} else {
		opts = append(opts, walker.WithValueHandler(handler))
	}
	if flags.MaxDepth > 0 {
		opts = append(opts, walker.WithMaxDepth(flags.MaxDepth))
	}

	if err := walker.Walk(doc, opts...); err != nil {
		return fmt.Errorf("walking document: %w", err)
	}

	if !flags.Quiet {
		OutputCommandHeader("Document Paths", specPath)
		Writef(os.Stderr, "Matched: %d of %d nodes\n\n", len(listings), total)
	}

	if flags.Format != FormatText {
		return OutputStructured(listings, flags.Format)
	}

	for _, listing := range listings {
		line := listing.Path
		if line == "" {
			line = "(root)"
		}
		if flags.Values {
			fmt.Printf("%s = %s\n", line, compactNative(listing.Value))
		} else {
			fmt.Println(line)
		}
	}
	return nil
}

// compactNative renders a native value on a single line for the text
// listing. Containers reuse the document text form.
func compactNative(v any) string {
	return document.FromNative(v).String()
}
