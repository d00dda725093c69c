package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/lenstools/generator"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output   string
	Package  string
	Prefix   string
	MaxDepth int
	Quiet    bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate
// command. Returns the FlagSet and a GenerateFlags struct with bound
// flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path for the generated Go source (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path for the generated Go source (default: stdout)")
	fs.StringVar(&flags.Package, "package", "", "package name for the generated file (default: lenses)")
	fs.StringVar(&flags.Prefix, "prefix", "", "identifier prefix for generated names")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "only generate lenses for leaves above this depth")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the source, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the source, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools generate [flags] <file|->\n\n")
		Writef(output, "Generate a Go source file with a named lens for every scalar\n")
		Writef(output, "leaf in a sample document. Each leaf gets a var bound to its\n")
		Writef(output, "path and a const holding the path text, so code that reads and\n")
		Writef(output, "rewrites documents of the same shape stays typo-proof.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  lenstools generate deployment.yaml\n")
		Writef(output, "  lenstools generate --package deploylens -o internal/deploylens/lenses.go deployment.yaml\n")
		Writef(output, "  lenstools generate --prefix Deploy -o lenses.go deployment.yaml\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Identifiers derive from paths: spec.containers[0].image becomes SpecContainers0Image\n")
		Writef(output, "  - Colliding identifiers get a numeric suffix; Go keywords get a trailing underscore\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)

	doc, _, err := LoadDocument(specPath)
	if err != nil {
		return err
	}

	var opts []generator.Option
	if flags.Package != "" {
		opts = append(opts, generator.WithPackageName(flags.Package))
	}
	if flags.Prefix != "" {
		opts = append(opts, generator.WithVarPrefix(flags.Prefix))
	}
	if flags.MaxDepth > 0 {
		opts = append(opts, generator.WithMaxDepth(flags.MaxDepth))
	}

	result, err := generator.Generate(doc, opts...)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		OutputCommandHeader("Lens Binding Generator", specPath)
		Writef(os.Stderr, "Package: %s\n", result.PackageName)
		Writef(os.Stderr, "Generated %d lenses in %v\n\n", result.LensCount, result.GenerateTime)
	}

	if flags.Output == "" {
		if _, err := os.Stdout.Write(result.Source); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if err := ValidateOutputPath(flags.Output, []string{specPath}); err != nil {
		return err
	}
	if err := RejectSymlinkOutput(flags.Output); err != nil {
		return err
	}
	if err := result.WriteFile(flags.Output); err != nil {
		return err
	}
	if !flags.Quiet {
		Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}
