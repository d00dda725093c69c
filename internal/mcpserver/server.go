// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes lenstools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/lenstools"
	"github.com/erraggy/lenstools/document"
	"github.com/erraggy/lenstools/internal/fileutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `lenstools MCP server — reads, updates, transforms, patches, diffs, and enumerates paths of JSON and YAML documents.

Documents are immutable: every update tool returns a new document and leaves the input untouched. Paths use dotted expressions such as spec.template.spec.containers[0].image; keys containing dots or special characters use bracket quoting, e.g. metadata.annotations["app.kubernetes.io/name"].

Configuration: All defaults are configurable via LENSTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- LENSTOOLS_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- LENSTOOLS_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched documents
- LENSTOOLS_CACHE_ENABLED (default: true) — disable document caching entirely
- LENSTOOLS_LIST_LIMIT (default: 100) — default result limit for paths and diff listings
- LENSTOOLS_PATCH_STRICT (default: false) — treat missing patch targets as errors by default
- LENSTOOLS_MAX_INLINE_SIZE (default: 10MiB) — size cap for inline and URL-fetched documents

Caching: Decoded documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "lenstools", Version: lenstools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "view",
		Description: "Read the value at a path in a JSON or YAML document. Returns the focused value, its kind, and whether the path exists. An empty path focuses the whole document. Paths use dotted syntax with [n] for sequence indices, e.g. spec.containers[0].image.",
	}, handleView)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set",
		Description: "Set the value at a path in a JSON or YAML document and return the updated document. Missing intermediate containers are created from the path shape (keys make mappings, indices make sequences). The input document is never modified. Use output to write the result to a file instead of returning it inline.",
	}, handleSet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "over",
		Description: "Apply a named transform to the value at a path and return the updated document. Available transforms: upper, lower, title, trim (strings), negate, increment, decrement (numbers), not (booleans), stringify (any value). Transforms leave values of other kinds unchanged. Use output to write the result to a file.",
	}, handleOver)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "patch",
		Description: "Apply an edit script to a JSON or YAML document. Scripts are JSON or YAML with an entries array of {action, path, value} where action is assoc (set), delete, or merge. Entries apply in order against the result of earlier entries. Use strict=true to fail on missing delete/merge targets instead of skipping with a warning. Use dry_run=true to preview changes before applying. Strict default is configurable via LENSTOOLS_PATCH_STRICT.",
	}, handlePatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two JSON or YAML documents and return an edit script that transforms the base into the revision. Changes are minimal path-level assoc and delete entries; applying the returned script to the base reproduces the revision. Use offset/limit to paginate through the change list. The script field always carries the complete script.",
	}, handleDiff)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "paths",
		Description: "Enumerate the paths of a JSON or YAML document in deterministic order (mapping keys sorted, sequence elements by index). By default lists every node including containers; use leaves_only=true for scalar leaves. Filter with prefix (a path expression) and bound traversal with max_depth. Use group_by=kind for a kind distribution instead of individual paths. Use offset/limit to paginate. Default limit is configurable via LENSTOOLS_LIST_LIMIT.",
	}, handlePaths)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// encodeDocument renders a document in the given serialization format,
// falling back to YAML when the format is unknown. JSON output is
// indented for readability.
func encodeDocument(doc *document.Value, format document.SourceFormat) (string, string, error) {
	if !format.IsValid() {
		format = document.FormatYAML
	}
	data, err := document.EncodeIndent(doc, format)
	if err != nil {
		return "", "", err
	}
	return string(data), string(format), nil
}

// documentResult encodes an updated document for tool output. When
// outputPath is set the encoded document is written there instead of
// being returned inline.
func documentResult(doc *document.Value, format document.SourceFormat, outputPath string) (inline, formatStr, writtenTo string, err error) {
	encoded, formatStr, err := encodeDocument(doc, format)
	if err != nil {
		return "", "", "", err
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(encoded), fileutil.ReadableByAll); err != nil {
			return "", "", "", fmt.Errorf("failed to write output file: %w", err)
		}
		return "", formatStr, outputPath, nil
	}
	return encoded, formatStr, "", nil
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value and is not combined
// with include_values.
func validateGroupBy(groupBy string, includeValues bool, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	if includeValues {
		return fmt.Errorf("cannot use both group_by and include_values")
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}
