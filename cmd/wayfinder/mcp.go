package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/wayfinder/pkg/adapters/mcp"
	"github.com/aretw0/wayfinder/pkg/regions"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the region index and highlight styles as MCP tools so agents can look up regions
and ask how a state is displayed.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup(cmd)
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		index := regions.NewLoader(regions.WithLogger(logger)).Load(cmd.Context(), cfg.IndexSource())
		srv := mcp.NewServer(index, mcp.WithLogger(logger))

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting Wayfinder MCP Server (Stdio)", "regions", index.Len())
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("Starting Wayfinder MCP Server (SSE)", "port", port, "regions", index.Len())

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
