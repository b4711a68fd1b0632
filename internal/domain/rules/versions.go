package rules

import (
	"regexp"

	"github.com/wflint/wflint/internal/domain"
)

var majorVersionPattern = regexp.MustCompile(`uses:\s*actions/[^@]+@v\d+`)

var versionsRuleID = ID("UnpinnedVersion")

// UnpinnedVersions warns once per file when any first-party action is
// referenced by a mutable major-version tag instead of a commit hash.
// Unlike the secrets rule this emits a single advisory, not one per match.
func UnpinnedVersions(content string) []domain.Finding {
	if !majorVersionPattern.MatchString(content) {
		return nil
	}
	return []domain.Finding{{
		Severity: domain.SeverityWarning,
		Rule:     versionsRuleID,
		Message:  "Consider using latest versions or pinning to specific commits for security",
	}}
}
