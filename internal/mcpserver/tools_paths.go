package mcpserver

import (
	"context"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/path"
	"github.com/erraggy/lenstools/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type pathsInput struct {
	Doc           docInput `json:"doc"                      jsonschema:"The document to enumerate"`
	Prefix        string   `json:"prefix,omitempty"         jsonschema:"Only list paths under this path expression"`
	MaxDepth      int      `json:"max_depth,omitempty"      jsonschema:"Do not descend below this nesting depth (0 means unlimited)"`
	LeavesOnly    bool     `json:"leaves_only,omitempty"    jsonschema:"List only scalar leaves\\, skipping mapping and sequence containers"`
	IncludeValues bool     `json:"include_values,omitempty" jsonschema:"Include the value at each path in the output"`
	GroupBy       string   `json:"group_by,omitempty"       jsonschema:"Return a distribution instead of individual paths. Valid value: kind"`
	Offset        int      `json:"offset,omitempty"         jsonschema:"Skip the first N paths (for pagination)"`
	Limit         int      `json:"limit,omitempty"          jsonschema:"Maximum number of paths to return (default 100)"`
}

type pathEntry struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

type pathsOutput struct {
	Total    int          `json:"total"`
	Matched  int          `json:"matched"`
	Returned int          `json:"returned"`
	Paths    []pathEntry  `json:"paths,omitempty"`
	Groups   []groupCount `json:"groups,omitempty"`
}

func handlePaths(_ context.Context, _ *mcp.CallToolRequest, input pathsInput) (*mcp.CallToolResult, pathsOutput, error) {
	if err := validateGroupBy(input.GroupBy, input.IncludeValues, []string{"kind"}); err != nil {
		return errResult(err), pathsOutput{}, nil
	}

	resolved, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), pathsOutput{}, nil
	}

	prefix, err := path.Parse(input.Prefix)
	if err != nil {
		return errResult(err), pathsOutput{}, nil
	}

	output := pathsOutput{}
	var entries []pathEntry
	handler := func(v *document.Value, p path.Path) walker.Action {
		output.Total++
		if !p.HasPrefix(prefix) {
			return walker.Continue
		}
		entry := pathEntry{Path: p.String(), Kind: v.Kind().String()}
		if input.IncludeValues {
			entry.Value = v.ToNative()
		}
		entries = append(entries, entry)
		return walker.Continue
	}

	var opts []walker.Option
	if input.LeavesOnly {
		opts = append(opts, walker.WithLeafHandler(handler))
	} else {
		opts = append(opts, walker.WithValueHandler(handler))
	}
	if input.MaxDepth > 0 {
		opts = append(opts, walker.WithMaxDepth(input.MaxDepth))
	}

	if err := walker.Walk(resolved.doc, opts...); err != nil {
		return errResult(err), pathsOutput{}, nil
	}

	output.Matched = len(entries)

	if input.GroupBy != "" {
		output.Groups = groupAndSort(entries, func(e pathEntry) []string {
			return []string{e.Kind}
		})
		return nil, output, nil
	}

	output.Paths = paginate(entries, input.Offset, input.Limit)
	output.Returned = len(output.Paths)
	return nil, output, nil
}
