package edit

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	yaml "go.yaml.in/yaml/v4"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/lenserrors"
	"github.com/erraggy/lenstools/path"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// scriptDoc is the wire form of a Script.
type scriptDoc struct {
	Entries []entryDoc `json:"entries" yaml:"entries"`
}

// entryDoc is the wire form of an Entry. A missing value decodes to
// null for assoc and merge entries.
type entryDoc struct {
	Action string `json:"action" yaml:"action"`
	Path   string `json:"path" yaml:"path"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// ParseScript deserializes a script from its YAML or JSON wire form,
// sniffing the format from the content:
//
//	entries:
//	  - action: assoc
//	    path: nest.two
//	    value: 22
//	  - action: delete
//	    path: one
//
// Unknown actions and malformed paths are errors; a malformed path is
// reported as a lenserrors.PathSyntaxError.
func ParseScript(data []byte) (*Script, error) {
	format := document.DetectFormat(data)
	if format == document.FormatUnknown {
		format = document.FormatYAML
	}

	var raw scriptDoc
	var err error
	switch format {
	case document.FormatJSON:
		err = jsonAPI.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &lenserrors.DecodeError{
			Format:  string(format),
			Message: "malformed edit script",
			Cause:   err,
		}
	}

	entries := make([]Entry, 0, len(raw.Entries))
	for i, re := range raw.Entries {
		action, err := ParseAction(re.Action)
		if err != nil {
			return nil, fmt.Errorf("edit: entry[%d]: %w", i, err)
		}
		p, err := path.Parse(re.Path)
		if err != nil {
			return nil, fmt.Errorf("edit: entry[%d]: %w", i, err)
		}
		entry := Entry{Action: action, Path: p}
		if re.Value != nil {
			entry.Value = document.FromNative(re.Value)
		} else if action != ActionDelete {
			entry.Value = document.Null()
		}
		entries = append(entries, entry)
	}
	return NewScript(entries...), nil
}

// ParseScriptFile reads and deserializes a script from a file.
func ParseScriptFile(filePath string) (*Script, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("edit: reading %s: %w", filePath, err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("edit: parsing %s: %w", filePath, err)
	}
	return script, nil
}

// Marshal serializes the script to its wire form in the given format.
func (s *Script) Marshal(format document.SourceFormat) ([]byte, error) {
	raw := scriptDoc{Entries: make([]entryDoc, 0, s.Len())}
	for _, e := range s.Entries {
		re := entryDoc{
			Action: e.Action.String(),
			Path:   e.Path.String(),
		}
		if e.Value != nil && !e.Value.IsNull() {
			re.Value = e.Value.ToNative()
		}
		raw.Entries = append(raw.Entries, re)
	}

	switch format {
	case document.FormatJSON:
		return jsonAPI.Marshal(raw)
	case document.FormatYAML:
		return yaml.Marshal(raw)
	default:
		return nil, &lenserrors.ConfigError{
			Option:  "format",
			Value:   string(format),
			Message: "expected yaml or json",
		}
	}
}
