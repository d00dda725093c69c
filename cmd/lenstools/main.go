package main

import (
	"fmt"
	"os"

	"github.com/erraggy/lenstools"
	"github.com/erraggy/lenstools/cmd/lenstools/commands"
)

// commandNames lists every subcommand in usage order. It doubles as
// the candidate list for typo suggestions.
var commandNames = []string{
	"view", "set", "over", "patch", "diff", "paths", "generate", "mcp",
	"version", "help",
}

var commandHandlers = map[string]func([]string) error{
	"view":     commands.HandleView,
	"set":      commands.HandleSet,
	"over":     commands.HandleOver,
	"patch":    commands.HandlePatch,
	"diff":     commands.HandleDiff,
	"paths":    commands.HandlePaths,
	"generate": commands.HandleGenerate,
	"mcp":      commands.HandleMcp,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("lenstools v%s\n", lenstools.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := commandHandlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input within
// edit distance 2, or "" when nothing is close enough. Ties go to the
// earlier command in usage order.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, candidate := range commandNames {
		if d := editDistance(input, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b using
// two rolling rows.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`lenstools - Structural Document Tools

Usage:
  lenstools <command> [options]

Commands:
  view        Read the value at a path in a document
  set         Store a value at a path and print the updated document
  over        Apply a named transform to the value at a path
  patch       Apply an edit script to a document
  diff        Compare two documents and emit a replayable edit script
  paths       List the paths present in a document
  generate    Generate Go lens bindings from a sample document
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  lenstools view -p spec.replicas deployment.yaml
  lenstools set -p spec.replicas -v 5 deployment.yaml
  lenstools over -p metadata.name -t upper deployment.yaml
  lenstools diff base.yaml revised.yaml
  lenstools patch -s changes.yaml deployment.yaml
  lenstools paths --leaves --values deployment.yaml
  lenstools generate --package deploylens -o lenses.go deployment.yaml

Run 'lenstools <command> --help' for more information on a command.`)
}
