package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wflint/wflint/internal/adapters/outbound/tui"
	"github.com/wflint/wflint/internal/domain"
)

func sampleReport() *domain.RunReport {
	r := &domain.RunReport{Dir: "github-workflows-backup"}
	r.Add(domain.FileReport{
		Name:      "a.yml",
		YAMLValid: true,
		Warnings: []domain.Finding{
			{Severity: domain.SeverityWarning, Rule: "missing-permissions", Message: "Consider adding explicit permissions for security"},
			{Severity: domain.SeverityWarning, Rule: "unpinned-version", Message: "Consider using latest versions or pinning to specific commits for security"},
		},
	})
	r.Add(domain.FileReport{
		Name:      "b.yml",
		YAMLError: "yaml: line 2: did not find expected node content",
	})
	return r
}

func TestRenderReport_Structure(t *testing.T) {
	output := tui.RenderReport(sampleReport())

	assert.Contains(t, output, "Validating GitHub Actions workflow files")
	assert.Contains(t, output, strings.Repeat("=", 60))
	assert.Contains(t, output, "Checking a.yml...")
	assert.Contains(t, output, "Valid YAML syntax")
	assert.Contains(t, output, "Warnings:")
	assert.Contains(t, output, "    - Consider adding explicit permissions for security")
	assert.Contains(t, output, "Checking b.yml...")
	assert.Contains(t, output, "YAML Error: yaml: line 2")
}

func TestRenderReport_Summary(t *testing.T) {
	output := tui.RenderReport(sampleReport())

	assert.Contains(t, output, "Validation Summary:")
	assert.Contains(t, output, "  - Total Errors: 1")
	assert.Contains(t, output, "  - Total Warnings: 2")
	assert.Contains(t, output, "Please fix the errors before using the workflows.")
	assert.NotContains(t, output, "All workflow files are valid!")
}

func TestRenderReport_AllValid(t *testing.T) {
	r := &domain.RunReport{Dir: "workflows"}
	r.Add(domain.FileReport{Name: "ci.yml", YAMLValid: true})

	output := tui.RenderReport(r)

	assert.Contains(t, output, "No issues found")
	assert.Contains(t, output, "  - Total Errors: 0")
	assert.Contains(t, output, "All workflow files are valid!")
	assert.NotContains(t, output, "Please fix the errors")
}

func TestRenderReport_ErrorBlock(t *testing.T) {
	r := &domain.RunReport{Dir: "workflows"}
	r.Add(domain.FileReport{
		Name:      "deploy.yml",
		YAMLValid: true,
		Errors: []domain.Finding{
			{Severity: domain.SeverityError, Message: "Incorrect secrets usage in 'if' conditions. Use env variables instead."},
			{Severity: domain.SeverityError, Message: "  Found: if: ${{ secrets.DEPLOY_TOKEN }}"},
		},
	})

	output := tui.RenderReport(r)

	assert.Contains(t, output, "Errors found:")
	assert.Contains(t, output, "    - Incorrect secrets usage")
	assert.Contains(t, output, "    -   Found: if: ${{ secrets.DEPLOY_TOKEN }}")
}

func TestRenderReport_GitAnnotation(t *testing.T) {
	r := sampleReport()
	r.CommitHash = "8f4b7f84864484a7bf31766abe9204da3cbe65b3"
	r.Branch = "main"

	output := tui.RenderReport(r)

	assert.Contains(t, output, "main @ 8f4b7f8")
}

func TestRenderReport_ReadError(t *testing.T) {
	r := &domain.RunReport{Dir: "workflows"}
	r.Add(domain.FileReport{Name: "gone.yml", ReadError: "open gone.yml: no such file or directory"})

	output := tui.RenderReport(r)

	assert.Contains(t, output, "Read Error: open gone.yml")
	assert.Contains(t, output, "  - Total Errors: 1")
}

func TestRenderDirectoryNotFound(t *testing.T) {
	output := tui.RenderDirectoryNotFound("github-workflows-backup")

	assert.Contains(t, output, "Directory github-workflows-backup not found!")
}
