package document

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/lenstools/lenserrors"
)

// jsonAPI keeps numbers intact through decoding and emits
// deterministic output by sorting mapping keys.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Decode deserializes a document from the given format. Integers are
// stored as int64, or uint64 beyond the int64 range; decimal numbers
// become float64. Empty YAML input decodes to the null document.
func Decode(data []byte, format SourceFormat) (*Value, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, &lenserrors.ConfigError{
			Option:  "format",
			Value:   string(format),
			Message: "expected yaml or json",
		}
	}
}

// DecodeAny sniffs the format from the content and decodes it. Content
// that does not look like JSON is treated as YAML.
func DecodeAny(data []byte) (*Value, SourceFormat, error) {
	format := DetectFormat(data)
	if format == FormatUnknown {
		format = FormatYAML
	}
	doc, err := Decode(data, format)
	return doc, format, err
}

func decodeJSON(data []byte) (*Value, error) {
	var raw any
	if err := jsonAPI.Unmarshal(data, &raw); err != nil {
		return nil, &lenserrors.DecodeError{
			Format: string(FormatJSON),
			Cause:  err,
		}
	}
	return FromNative(raw), nil
}

func decodeYAML(data []byte) (*Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &lenserrors.DecodeError{
			Format: string(FormatYAML),
			Cause:  err,
		}
	}
	return FromNative(raw), nil
}

// Encode serializes a document to the given format. JSON output is
// compact with sorted keys; YAML output uses the default block style.
// Encoding the absent marker is an error.
func Encode(doc *Value, format SourceFormat) ([]byte, error) {
	native, err := encodable(doc)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return jsonAPI.Marshal(native)
	case FormatYAML:
		return yaml.Marshal(native)
	default:
		return nil, &lenserrors.ConfigError{
			Option:  "format",
			Value:   string(format),
			Message: "expected yaml or json",
		}
	}
}

// EncodeIndent is like Encode but produces two space indented JSON.
// YAML output is unchanged, as it is already indented.
func EncodeIndent(doc *Value, format SourceFormat) ([]byte, error) {
	if format != FormatJSON {
		return Encode(doc, format)
	}
	native, err := encodable(doc)
	if err != nil {
		return nil, err
	}
	return jsonAPI.MarshalIndent(native, "", "  ")
}

func encodable(doc *Value) (any, error) {
	if doc == nil {
		return nil, nil
	}
	if doc.IsAbsent() {
		return nil, fmt.Errorf("document: cannot encode absent value")
	}
	return doc.ToNative(), nil
}

// LoadFile reads and decodes a document from a file. The format is
// taken from the file extension when recognized, otherwise sniffed
// from the content.
func LoadFile(filePath string) (*Value, SourceFormat, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("document: reading %s: %w", filePath, err)
	}

	format := DetectFormatFromPath(filePath)
	if format == FormatUnknown {
		format = DetectFormat(data)
	}
	if format == FormatUnknown {
		format = FormatYAML
	}

	doc, err := Decode(data, format)
	if err != nil {
		var decErr *lenserrors.DecodeError
		if errors.As(err, &decErr) {
			decErr.Path = filePath
			return nil, format, decErr
		}
		return nil, format, err
	}
	return doc, format, nil
}
