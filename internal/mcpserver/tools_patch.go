package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/lenstools/edit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type patchInput struct {
	Doc        docInput `json:"doc"                   jsonschema:"The document to patch"`
	Script     string   `json:"script,omitempty"      jsonschema:"Inline edit script content (JSON or YAML)"`
	ScriptFile string   `json:"script_file,omitempty" jsonschema:"Path to an edit script file on disk"`
	Strict     bool     `json:"strict,omitempty"      jsonschema:"Fail on missing delete/merge targets instead of skipping with a warning"`
	DryRun     bool     `json:"dry_run,omitempty"     jsonschema:"Preview changes without applying"`
	Output     string   `json:"output,omitempty"      jsonschema:"File path to write the patched document. If omitted the document is returned inline."`
}

type patchChange struct {
	Entry  int    `json:"entry"`
	Action string `json:"action"`
	Path   string `json:"path"`
}

type patchOutput struct {
	Applied   int           `json:"applied"`
	Skipped   int           `json:"skipped"`
	DryRun    bool          `json:"dry_run,omitempty"`
	Changes   []patchChange `json:"changes,omitempty"`
	Warnings  []string      `json:"warnings,omitempty"`
	Document  string        `json:"document,omitempty"`
	Format    string        `json:"format"`
	WrittenTo string        `json:"written_to,omitempty"`
}

func handlePatch(_ context.Context, _ *mcp.CallToolRequest, input patchInput) (*mcp.CallToolResult, patchOutput, error) {
	script, err := loadScript(input)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	resolved, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	applier := &edit.Applier{StrictTargets: input.Strict || cfg.PatchStrict}

	if input.DryRun {
		return handlePatchDryRun(applier, resolved, script)
	}

	result, err := applier.Apply(resolved.doc, script)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	output := patchOutput{
		Applied:  result.Applied,
		Skipped:  result.Skipped,
		Warnings: result.Warnings,
		Changes:  makeSlice[patchChange](len(result.Changes)),
	}
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, patchChange{
			Entry:  c.EntryIndex,
			Action: c.Action.String(),
			Path:   c.Path,
		})
	}

	inline, format, writtenTo, err := documentResult(result.Document, resolved.format, input.Output)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}
	output.Document = inline
	output.Format = format
	output.WrittenTo = writtenTo
	return nil, output, nil
}

// handlePatchDryRun previews the script without producing a patched
// document. Entries that strict application would reject appear as
// would_fail warnings rather than aborting the preview.
func handlePatchDryRun(applier *edit.Applier, resolved *resolvedDoc, script *edit.Script) (*mcp.CallToolResult, patchOutput, error) {
	result, err := applier.DryRun(resolved.doc, script)
	if err != nil {
		return errResult(err), patchOutput{}, nil
	}

	output := patchOutput{
		Applied:  result.WouldApply,
		Skipped:  result.WouldSkip,
		DryRun:   true,
		Warnings: result.Warnings,
		Format:   string(resolved.format),
		Changes:  makeSlice[patchChange](len(result.Changes)),
	}
	for _, c := range result.Changes {
		output.Changes = append(output.Changes, patchChange{
			Entry:  c.EntryIndex,
			Action: c.Action.String(),
			Path:   c.Path,
		})
	}
	return nil, output, nil
}

// loadScript reads the edit script from whichever of the two script
// inputs was provided, requiring exactly one.
func loadScript(input patchInput) (*edit.Script, error) {
	switch {
	case input.Script != "" && input.ScriptFile != "":
		return nil, fmt.Errorf("exactly one of script or script_file must be provided (got both)")
	case input.Script != "":
		return edit.ParseScript([]byte(input.Script))
	case input.ScriptFile != "":
		return edit.ParseScriptFile(input.ScriptFile)
	default:
		return nil, fmt.Errorf("exactly one of script or script_file must be provided")
	}
}
