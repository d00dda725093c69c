package mcpserver

import (
	"context"

	"github.com/erraggy/lenstools/lens"
	"github.com/erraggy/lenstools/path"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type viewInput struct {
	Doc  docInput `json:"doc"            jsonschema:"The document to read from"`
	Path string   `json:"path,omitempty" jsonschema:"Path expression to focus\\, e.g. spec.replicas or items[0].name. Empty focuses the whole document."`
}

type viewOutput struct {
	Found bool   `json:"found"`
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

func handleView(_ context.Context, _ *mcp.CallToolRequest, input viewInput) (*mcp.CallToolResult, viewOutput, error) {
	resolved, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), viewOutput{}, nil
	}

	p, err := path.Parse(input.Path)
	if err != nil {
		return errResult(err), viewOutput{}, nil
	}

	focused := lens.FromPath(p).View(resolved.doc)

	output := viewOutput{
		Found: !focused.IsAbsent(),
		Kind:  focused.Kind().String(),
	}
	if output.Found {
		output.Value = focused.ToNative()
	}
	return nil, output, nil
}
