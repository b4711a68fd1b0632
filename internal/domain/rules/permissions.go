package rules

import (
	"strings"

	"github.com/wflint/wflint/internal/domain"
)

var permissionsRuleID = ID("MissingPermissions")

// MissingPermissions warns when a workflow checks out code with a pinned
// checkout action but declares no permissions: block anywhere in the file.
func MissingPermissions(content string) []domain.Finding {
	if !strings.Contains(content, "actions/checkout@v") {
		return nil
	}
	if strings.Contains(content, "permissions:") {
		return nil
	}
	return []domain.Finding{{
		Severity: domain.SeverityWarning,
		Rule:     permissionsRuleID,
		Message:  "Consider adding explicit permissions for security",
	}}
}
