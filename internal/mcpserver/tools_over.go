package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/lenstools/internal/transforms"
	"github.com/erraggy/lenstools/lens"
	"github.com/erraggy/lenstools/path"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type overInput struct {
	Doc       docInput `json:"doc"              jsonschema:"The document to update"`
	Path      string   `json:"path,omitempty"   jsonschema:"Path expression for the value to transform. Empty transforms the whole document."`
	Transform string   `json:"transform"        jsonschema:"Name of the transform to apply: upper\\, lower\\, title\\, trim\\, negate\\, increment\\, decrement\\, not\\, or stringify"`
	Output    string   `json:"output,omitempty" jsonschema:"File path to write the updated document. If omitted the document is returned inline."`
}

type overOutput struct {
	Changed   bool   `json:"changed"`
	Document  string `json:"document,omitempty"`
	Format    string `json:"format"`
	WrittenTo string `json:"written_to,omitempty"`
}

func handleOver(_ context.Context, _ *mcp.CallToolRequest, input overInput) (*mcp.CallToolResult, overOutput, error) {
	fn, ok := transforms.Lookup(input.Transform)
	if !ok {
		return errResult(fmt.Errorf("unknown transform %q; available: %s",
			input.Transform, strings.Join(transforms.Names(), ", "))), overOutput{}, nil
	}

	resolved, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), overOutput{}, nil
	}

	p, err := path.Parse(input.Path)
	if err != nil {
		return errResult(err), overOutput{}, nil
	}

	updated := lens.FromPath(p).Over(fn, resolved.doc)

	inline, format, writtenTo, err := documentResult(updated, resolved.format, input.Output)
	if err != nil {
		return errResult(err), overOutput{}, nil
	}
	return nil, overOutput{
		Changed:   !updated.Equal(resolved.doc),
		Document:  inline,
		Format:    format,
		WrittenTo: writtenTo,
	}, nil
}
