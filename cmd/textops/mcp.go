package main

import (
	"context"
	"fmt"

	"github.com/aretw0/textops/internal/cli"
	"github.com/aretw0/textops/internal/config"
	"github.com/aretw0/textops/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts textops as an MCP server. Every operation becomes a tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, path, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		transport := rt.Config.MCP.Transport
		if cmd.Flags().Changed("transport") {
			transport, _ = cmd.Flags().GetString("transport")
		}
		port := rt.Config.MCP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		watcher, err := cli.WatchConfig(rt, path)
		if err != nil {
			return err
		}
		if watcher != nil {
			defer watcher.Close()
		}

		srv := mcp.NewServer(rt.Plugin, mcp.WithLogger(rt.Logger))

		switch transport {
		case config.TransportStdio:
			// Stdout carries JSON-RPC; logs already go to stderr.
			rt.Logger.Info("starting MCP server (stdio)")
			return srv.ServeStdio()
		case config.TransportSSE:
			sigCtx := cli.NewSignalContext(context.Background())
			defer sigCtx.Cancel()

			rt.Logger.Info("starting MCP server (SSE)", "port", port)
			if err := srv.ServeSSE(sigCtx, port); err != nil {
				return err
			}
			rt.Logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport %q (supported: stdio, sse)", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", config.TransportStdio, "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
