package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sduikit/sduitools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: sduitools mcp\n\n")
		Writef(fs.Output(), "Run an MCP server over stdio exposing resolve and compat as tools.\n\n")
		Writef(fs.Output(), "The server reads from stdin and writes to stdout; point your MCP\n")
		Writef(fs.Output(), "client at the sduitools binary with the mcp argument.\n\n")
		Writef(fs.Output(), "Defaults are configurable via SDUITOOLS_* environment variables;\n")
		Writef(fs.Output(), "see the server instructions for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
