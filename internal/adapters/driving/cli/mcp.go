package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can list
drives, enable or disable keep-alive and change the interval.

Drives listed in the config file are kept awake while the server runs.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  drivecaffeine mcp serve

  # HTTP mode
  drivecaffeine mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "drivecaffeine": {
        "command": "/path/to/drivecaffeine",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return keepAliveWhile(ctx, func(ctx context.Context) error {
		if port > 0 {
			addr := fmt.Sprintf(":%d", port)
			fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
			return server.RunHTTP(ctx, addr)
		}
		return server.Run(ctx)
	})
}

// newMCPServer builds the server over the wired services. Changes made
// through it are saved as startup preferences.
func newMCPServer() (*mcp.Server, error) {
	return mcp.NewServer(&mcp.Ports{
		Registry: registry,
		Drives:   driveService,
		History:  historyService,
		Settings: settingsService,
	})
}
