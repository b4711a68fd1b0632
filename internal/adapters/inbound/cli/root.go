package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "wflint",
		Short: "Lint GitHub Actions workflow files",
		Long:  "wflint scans a directory of workflow YAML files and reports syntax errors plus heuristic style and security warnings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, path, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Workflow directory (defaults to configured workflow_dir)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
