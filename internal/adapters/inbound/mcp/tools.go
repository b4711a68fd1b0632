package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wflint/wflint/internal/adapters/outbound/gitinfo"
	"github.com/wflint/wflint/internal/adapters/outbound/scanner"
	"github.com/wflint/wflint/internal/adapters/outbound/yamlcheck"
	"github.com/wflint/wflint/internal/application"
	"github.com/wflint/wflint/internal/domain"
)

// registerTools registers all wflint MCP tools on the given server.
func registerTools(s *server.MCPServer, workflowDir string) {
	// 1. wflint_lint
	s.AddTool(
		mcplib.NewTool("wflint_lint",
			mcplib.WithDescription("Lint every workflow file in the directory and return the full run report as JSON"),
			mcplib.WithString("path",
				mcplib.Description("Workflow directory to lint (defaults to the server's configured directory)"),
			),
		),
		handleLint(workflowDir),
	)

	// 2. wflint_lint_file
	s.AddTool(
		mcplib.NewTool("wflint_lint_file",
			mcplib.WithDescription("Lint a single workflow file and return its file report as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("File name relative to the workflow directory"),
			),
		),
		handleLintFile(workflowDir),
	)
}

func newService() *application.LintService {
	return application.NewLintService(scanner.New(), yamlcheck.New(), gitinfo.New())
}

func handleLint(workflowDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir, _ := request.GetArguments()["path"].(string)
		if dir == "" {
			dir = workflowDir
		}

		cfg := domain.DefaultConfig()
		cfg.WorkflowDir = dir

		report, err := newService().Run(cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleLintFile(workflowDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		path := filepath.Join(workflowDir, file)
		fr := newService().LintFile(path, filepath.Base(file))
		return jsonResult(fr)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
