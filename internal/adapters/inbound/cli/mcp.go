package cli

import (
	mcpadapter "github.com/wflint/wflint/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/wflint/wflint/internal/domain"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the wflint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start wflint MCP server (stdio)",
		Long:  "Start the wflint MCP server using stdio transport. This allows AI coding assistants to lint workflow directories and individual files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = domain.DefaultWorkflowDir
			}
			s := mcpadapter.NewWflintMCPServer(path)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Workflow directory (defaults to the configured workflow_dir)")

	return cmd
}
