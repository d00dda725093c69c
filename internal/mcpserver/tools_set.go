package mcpserver

import (
	"context"

	"github.com/erraggy/lenstools/lens"
	"github.com/erraggy/lenstools/path"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type setInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The document to update"`
	Path   string   `json:"path,omitempty"   jsonschema:"Path expression for the value to set. Empty replaces the whole document."`
	Value  any      `json:"value"            jsonschema:"The value to store. Omitting it stores null."`
	Output string   `json:"output,omitempty" jsonschema:"File path to write the updated document. If omitted the document is returned inline."`
}

type setOutput struct {
	Document  string `json:"document,omitempty"`
	Format    string `json:"format"`
	WrittenTo string `json:"written_to,omitempty"`
}

func handleSet(_ context.Context, _ *mcp.CallToolRequest, input setInput) (*mcp.CallToolResult, setOutput, error) {
	resolved, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), setOutput{}, nil
	}

	p, err := path.Parse(input.Path)
	if err != nil {
		return errResult(err), setOutput{}, nil
	}

	updated := lens.FromPath(p).Set(input.Value, resolved.doc)

	inline, format, writtenTo, err := documentResult(updated, resolved.format, input.Output)
	if err != nil {
		return errResult(err), setOutput{}, nil
	}
	return nil, setOutput{Document: inline, Format: format, WrittenTo: writtenTo}, nil
}
