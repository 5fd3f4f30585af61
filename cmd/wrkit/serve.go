// Package main provides the entry point for the wrkit CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	wrkitmcp "github.com/YoshiISHIGAMI/weekly-report-kit/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run wrkit as a Model Context Protocol (MCP) server over stdio.

This exposes the extraction pipeline as MCP tools that any MCP-capable
agent environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "wrkit": {
        "command": "wrkit",
        "args": ["serve"]
      }
    }
  }

Available tools: ideas, meals, bundle, scan`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := wrkitmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
