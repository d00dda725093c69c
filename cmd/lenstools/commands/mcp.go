package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/lenstools/internal/mcpserver"
)

// SetupMcpFlags creates and configures a FlagSet for the mcp command.
func SetupMcpFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: lenstools mcp\n\n")
		Writef(output, "Run the lenstools MCP server over stdio. The server exposes the\n")
		Writef(output, "view, set, over, patch, diff, and paths tools to MCP clients and\n")
		Writef(output, "blocks until the client disconnects or the process is signalled.\n\n")
		Writef(output, "Configuration is read from LENSTOOLS_* environment variables;\n")
		Writef(output, "see the server instructions reported to the client for the list.\n\n")
		Writef(output, "Example client config:\n")
		Writef(output, "  {\"mcpServers\": {\"lenstools\": {\"command\": \"lenstools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMcp executes the mcp command
func HandleMcp(args []string) error {
	fs := SetupMcpFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
