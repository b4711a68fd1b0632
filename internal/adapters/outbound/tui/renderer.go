package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wflint/wflint/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)

	banner = strings.Repeat("=", 60)
)

// RenderReport renders a full run report: banner, one block per file,
// closing banner, and the summary with both totals.
func RenderReport(r *domain.RunReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("🔍 Validating GitHub Actions workflow files...") + "\n")
	b.WriteString(banner + "\n")

	if r.CommitHash != "" {
		hash := r.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		ref := hash
		if r.Branch != "" {
			ref = r.Branch + " @ " + hash
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("   %s (%s)", r.Dir, ref)) + "\n")
	}

	for _, f := range r.Files {
		renderFile(&b, f)
	}

	b.WriteString("\n" + banner + "\n")
	b.WriteString("📊 Validation Summary:\n")
	fmt.Fprintf(&b, "  - Total Errors: %d\n", r.TotalErrors)
	fmt.Fprintf(&b, "  - Total Warnings: %d\n", r.TotalWarnings)

	if r.HasErrors() {
		b.WriteString(failStyle.Render("❌ Please fix the errors before using the workflows.") + "\n")
	} else {
		b.WriteString(passStyle.Render("🎉 All workflow files are valid!") + "\n")
	}

	return b.String()
}

func renderFile(b *strings.Builder, f domain.FileReport) {
	fmt.Fprintf(b, "\n📄 Checking %s...\n", f.Name)

	if f.ReadError != "" {
		b.WriteString(failStyle.Render(fmt.Sprintf("  ❌ Read Error: %s", f.ReadError)) + "\n")
		return
	}
	if !f.YAMLValid {
		b.WriteString(failStyle.Render(fmt.Sprintf("  ❌ YAML Error: %s", f.YAMLError)) + "\n")
		return
	}
	b.WriteString(passStyle.Render("  ✅ Valid YAML syntax") + "\n")

	if len(f.Errors) > 0 {
		b.WriteString(failStyle.Render("  ❌ Errors found:") + "\n")
		for _, e := range f.Errors {
			fmt.Fprintf(b, "    - %s\n", e.Message)
		}
	}

	if len(f.Warnings) > 0 {
		b.WriteString(warnStyle.Render("  ⚠️  Warnings:") + "\n")
		for _, w := range f.Warnings {
			fmt.Fprintf(b, "    - %s\n", w.Message)
		}
	}

	if len(f.Errors) == 0 && len(f.Warnings) == 0 {
		b.WriteString(passStyle.Render("  ✅ No issues found") + "\n")
	}
}

// RenderDirectoryNotFound is the single fatal-path message: printed once,
// no per-file report follows.
func RenderDirectoryNotFound(dir string) string {
	return failStyle.Render(fmt.Sprintf("❌ Directory %s not found!", dir)) + "\n"
}
