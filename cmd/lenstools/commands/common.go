// Package commands provides CLI command handlers for lenstools.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/lenstools"
	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/internal/fileutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateDocumentFormat validates a document encoding format flag.
// The empty string means "keep the source format" and is valid.
func ValidateDocumentFormat(format string) error {
	if format != "" && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = jsonAPI.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// LoadDocument reads and decodes a document from a file path or stdin
// ("-"). The returned format is the detected source format.
func LoadDocument(specPath string) (*document.Value, document.SourceFormat, error) {
	if specPath == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, document.FormatUnknown, fmt.Errorf("reading stdin: %w", err)
		}
		return document.DecodeAny(data)
	}
	return document.LoadFile(specPath)
}

// OutputDocument encodes doc in format and writes it to outPath, or to
// stdout when outPath is empty.
func OutputDocument(doc *document.Value, format document.SourceFormat, outPath string) error {
	data, err := document.EncodeIndent(doc, format)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if outPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
		return nil
	}

	if err := RejectSymlinkOutput(outPath); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	// Get absolute path of output file
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet, safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputCommandHeader writes the standard command banner to stderr:
// an underlined title, the lenstools version, and the document path.
func OutputCommandHeader(title, specPath string) {
	Writef(os.Stderr, "%s\n", title)
	Writef(os.Stderr, "%s\n\n", strings.Repeat("=", len(title)))
	Writef(os.Stderr, "lenstools version: %s\n", lenstools.Version())
	Writef(os.Stderr, "Document: %s\n", FormatSpecPath(specPath))
}
