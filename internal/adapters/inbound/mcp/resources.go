package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wflint/wflint/internal/domain"
)

// registerResources registers all wflint MCP resources on the given server.
func registerResources(s *server.MCPServer, workflowDir string) {
	// wflint://report - full lint report for the configured directory
	s.AddResource(
		mcplib.NewResource(
			"wflint://report",
			"Lint Report",
			mcplib.WithResourceDescription("Current lint report for the workflow directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(workflowDir),
	)
}

func handleReportResource(workflowDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg := domain.DefaultConfig()
		cfg.WorkflowDir = workflowDir

		report, err := newService().Run(cfg)
		if err != nil {
			return nil, fmt.Errorf("lint failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
