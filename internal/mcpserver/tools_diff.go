package mcpserver

import (
	"context"
	"strconv"
	"strings"

	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/edit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type diffInput struct {
	Base     docInput `json:"base"             jsonschema:"The base/original document"`
	Revision docInput `json:"revision"         jsonschema:"The revised document to compare against the base"`
	Offset   int      `json:"offset,omitempty" jsonschema:"Skip the first N changes (for pagination)"`
	Limit    int      `json:"limit,omitempty"  jsonschema:"Maximum number of changes to return (default 100)"`
}

type diffChange struct {
	Action string `json:"action"`
	Path   string `json:"path"`
	Value  any    `json:"value,omitempty"`
}

type diffOutput struct {
	TotalChanges int          `json:"total_changes"`
	AssocCount   int          `json:"assoc_count"`
	DeleteCount  int          `json:"delete_count"`
	Returned     int          `json:"returned"`
	Changes      []diffChange `json:"changes,omitempty"`
	Script       string       `json:"script"`
	Summary      string       `json:"summary"`
}

func handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	baseResolved, err := input.Base.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	revisionResolved, err := input.Revision.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	script := edit.Diff(baseResolved.doc, revisionResolved.doc)

	output := diffOutput{
		TotalChanges: script.Len(),
		Changes:      makeSlice[diffChange](script.Len()),
	}

	for _, entry := range script.Entries {
		change := diffChange{
			Action: entry.Action.String(),
			Path:   entry.Path.String(),
		}
		if entry.Value != nil {
			change.Value = entry.Value.ToNative()
		}
		output.Changes = append(output.Changes, change)

		switch entry.Action {
		case edit.ActionDelete:
			output.DeleteCount++
		default:
			output.AssocCount++
		}
	}

	scriptText, err := script.Marshal(document.FormatJSON)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}
	output.Script = string(scriptText)

	output.Changes = paginate(output.Changes, input.Offset, input.Limit)
	output.Returned = len(output.Changes)
	output.Summary = buildDiffSummary(output)

	return nil, output, nil
}

func buildDiffSummary(output diffOutput) string {
	if output.TotalChanges == 0 {
		return "No changes detected."
	}

	summary := formatCount(output.TotalChanges, "change") + " found"

	var parts []string
	if output.AssocCount > 0 {
		parts = append(parts, strconv.Itoa(output.AssocCount)+" set")
	}
	if output.DeleteCount > 0 {
		parts = append(parts, strconv.Itoa(output.DeleteCount)+" deleted")
	}
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}
	return summary + "."
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
