// Package mcp provides a Model Context Protocol server for wrkit.
// It exposes the journal extraction pipeline as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all wrkit tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "wrkit",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools. Every
// wrkit tool renders markdown in memory instead of touching the
// filesystem, so they are all read-only.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all wrkit tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "ideas",
		Description: "Extract the ideas sections from a journal export and render them " +
			"as a date-ordered markdown digest. Supports since/until/week date filters.",
		Annotations: readOnlyAnnotations(),
	}, handleIdeas())

	mcp.AddTool(server, &mcp.Tool{
		Name: "meals",
		Description: "Extract the meal blocks nested inside the habit log sections and " +
			"render them as a date-ordered markdown digest.",
		Annotations: readOnlyAnnotations(),
	}, handleMeals())

	mcp.AddTool(server, &mcp.Tool{
		Name: "bundle",
		Description: "Recombine all recognized sections per day into a single markdown " +
			"bundle, one dated chapter per journal entry.",
		Annotations: readOnlyAnnotations(),
	}, handleBundle())

	mcp.AddTool(server, &mcp.Tool{
		Name: "scan",
		Description: "Inventory a journal export: list discovered documents, their " +
			"resolved dates, and per-section block counts without rendering anything.",
		Annotations: readOnlyAnnotations(),
	}, handleScan())
}
