package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/tools/imports"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/internal/fileutil"
	"github.com/erraggy/lenstools/walker"
)

// generatedFileName is the suggested name for generated output. It is
// also passed to the formatter, which uses it for error positions.
const generatedFileName = "lenses.go"

const (
	lensImportPath = "github.com/erraggy/lenstools/lens"
	pathImportPath = "github.com/erraggy/lenstools/path"
)

// Result contains the outcome of a generate operation.
type Result struct {
	// FileName is the suggested name for the generated file.
	FileName string
	// Source is the formatted Go source code.
	Source []byte
	// PackageName is the Go package name used in generation.
	PackageName string
	// LensCount is the number of lens bindings emitted.
	LensCount int
	// GenerateTime is the time taken to generate and format.
	GenerateTime time.Duration
}

// WriteFile writes the generated source to the specified path,
// creating parent directories as needed.
func (r *Result) WriteFile(outPath string) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("generator: creating directory: %w", err)
	}
	if err := os.WriteFile(outPath, r.Source, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("generator: writing file: %w", err)
	}
	return nil
}

// Option is a function that configures a generate operation.
type Option func(*config) error

type config struct {
	packageName string
	varPrefix   string
	maxDepth    int
}

// WithPackageName sets the package name for generated code.
// Default is "lenses".
func WithPackageName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return fmt.Errorf("package name cannot be empty")
		}
		if !isValidPackageName(name) {
			return fmt.Errorf("invalid package name %q", name)
		}
		cfg.packageName = name
		return nil
	}
}

// WithVarPrefix prepends prefix to every generated identifier. Useful
// when several generated files share a package.
func WithVarPrefix(prefix string) Option {
	return func(cfg *config) error {
		if !isValidIdentPrefix(prefix) {
			return fmt.Errorf("invalid identifier prefix %q", prefix)
		}
		cfg.varPrefix = prefix
		return nil
	}
}

// WithMaxDepth limits how deep leaf collection descends. The document
// root is at depth zero. Leaves below the limit produce no bindings.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		packageName: "lenses",
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// binding is one generated constant/variable pair.
type binding struct {
	VarName   string
	ConstName string
	Path      string
}

// Generate emits Go source declaring a named lens and its path
// constant for every leaf path of doc. The returned source is
// formatted and ready to write.
func Generate(doc *document.Value, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}
	if doc.IsAbsent() {
		return nil, fmt.Errorf("generator: cannot generate from an absent document")
	}

	start := time.Now()

	var walkOpts []walker.Option
	if cfg.maxDepth > 0 {
		walkOpts = append(walkOpts, walker.WithMaxDepth(cfg.maxDepth))
	}
	leaves, err := walker.CollectLeaves(doc, walkOpts...)
	if err != nil {
		return nil, fmt.Errorf("generator: collecting leaf paths: %w", err)
	}

	bindings := bindLeaves(leaves.All, cfg.varPrefix)

	var buf bytes.Buffer
	writeHeader(&buf, cfg.packageName)
	for _, b := range bindings {
		writeBinding(&buf, b)
	}

	src, err := imports.Process(generatedFileName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generator: formatting generated source: %w", err)
	}

	return &Result{
		FileName:     generatedFileName,
		Source:       src,
		PackageName:  cfg.packageName,
		LensCount:    len(bindings),
		GenerateTime: time.Since(start),
	}, nil
}

// bindLeaves derives a unique identifier for every leaf. Collisions
// get a numeric suffix in leaf traversal order, and the Path-suffixed
// constant namespace is reserved alongside the variable namespace so
// the two cannot shadow each other.
func bindLeaves(leaves []*walker.LeafInfo, prefix string) []binding {
	used := make(map[string]bool, len(leaves)*2)
	out := make([]binding, 0, len(leaves))

	for _, leaf := range leaves {
		base := prefix + identFromPath(leaf.Path)
		name := base
		if used[name] || used[name+"Path"] {
			for i := 2; ; i++ {
				candidate := fmt.Sprintf("%s%d", base, i)
				if !used[candidate] && !used[candidate+"Path"] {
					name = candidate
					break
				}
			}
		}
		used[name] = true
		used[name+"Path"] = true

		out = append(out, binding{
			VarName:   name,
			ConstName: name + "Path",
			Path:      leaf.Path.String(),
		})
	}
	return out
}

func writeHeader(buf *bytes.Buffer, packageName string) {
	buf.WriteString("// Code generated by lenstools. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", packageName)
	buf.WriteString("import (\n")
	fmt.Fprintf(buf, "\t%q\n", lensImportPath)
	fmt.Fprintf(buf, "\t%q\n", pathImportPath)
	buf.WriteString(")\n\n")
}

func writeBinding(buf *bytes.Buffer, b binding) {
	if b.Path == "" {
		fmt.Fprintf(buf, "// %s is the root path.\n", b.ConstName)
		fmt.Fprintf(buf, "const %s = %q\n\n", b.ConstName, b.Path)
		fmt.Fprintf(buf, "// %s focuses the document root.\n", b.VarName)
	} else {
		fmt.Fprintf(buf, "// %s is the path %q.\n", b.ConstName, b.Path)
		fmt.Fprintf(buf, "const %s = %q\n\n", b.ConstName, b.Path)
		fmt.Fprintf(buf, "// %s focuses %q.\n", b.VarName, b.Path)
	}
	fmt.Fprintf(buf, "var %s = lens.FromPath(path.MustParse(%s))\n\n", b.VarName, b.ConstName)
}
