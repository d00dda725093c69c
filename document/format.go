package document

import (
	"bytes"
	"path/filepath"
)

// SourceFormat represents the serialization format of a document.
type SourceFormat string

const (
	// FormatYAML indicates YAML serialization.
	FormatYAML SourceFormat = "yaml"
	// FormatJSON indicates JSON serialization.
	FormatJSON SourceFormat = "json"
	// FormatUnknown indicates the format could not be determined.
	FormatUnknown SourceFormat = "unknown"
)

// IsValid reports whether the format is one Decode and Encode accept.
func (f SourceFormat) IsValid() bool {
	return f == FormatYAML || f == FormatJSON
}

// DetectFormatFromPath guesses the format from a file extension.
func DetectFormatFromPath(path string) SourceFormat {
	ext := filepath.Ext(path)
	switch ext {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// DetectFormat guesses the format from the content bytes. JSON
// documents start with '{' or '[' after leading whitespace; anything
// else is assumed to be YAML. Empty content is unknown.
func DetectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")

	if len(trimmed) == 0 {
		return FormatUnknown
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}

	// YAML is a superset of the remaining cases, including bare
	// scalars and top level sequences using dash syntax.
	return FormatYAML
}
