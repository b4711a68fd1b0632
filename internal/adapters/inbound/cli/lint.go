package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	configAdapter "github.com/wflint/wflint/internal/adapters/outbound/config"
	"github.com/wflint/wflint/internal/adapters/outbound/gitinfo"
	"github.com/wflint/wflint/internal/adapters/outbound/scanner"
	"github.com/wflint/wflint/internal/adapters/outbound/tui"
	"github.com/wflint/wflint/internal/adapters/outbound/yamlcheck"
	"github.com/wflint/wflint/internal/application"
	"github.com/wflint/wflint/internal/domain"
)

// runLint is the root command's behavior: lint the workflow directory and
// exit non-zero when any error was found. Warnings never affect the exit
// code; the corrective message is part of the rendered report, so the
// returned sentinel error is silenced by the root command.
func runLint(cmd *cobra.Command, path string, jsonOutput bool) error {
	cfg, err := configAdapter.New().Load(".")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if path != "" {
		cfg.WorkflowDir = path
	}

	svc := application.NewLintService(scanner.New(), yamlcheck.New(), gitinfo.New())

	report, err := svc.Run(cfg)
	if err != nil {
		if errors.Is(err, domain.ErrDirectoryNotFound) {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDirectoryNotFound(cfg.WorkflowDir))
			return err
		}
		return fmt.Errorf("lint failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}

	if report.HasErrors() {
		return fmt.Errorf("%d error(s) found in %s", report.TotalErrors, cfg.WorkflowDir)
	}
	return nil
}
