package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewWflintMCPServer creates a new MCP server with all wflint tools and
// resources registered. workflowDir is the directory of workflow files
// to lint.
func NewWflintMCPServer(workflowDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"wflint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workflowDir)
	registerResources(s, workflowDir)

	return s
}
