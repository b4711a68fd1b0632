package rules

import (
	"fmt"
	"regexp"

	"github.com/wflint/wflint/internal/domain"
)

var (
	secretsInIfPattern = regexp.MustCompile(`if:\s*\$\{\{\s*secrets\.[A-Z_]+\s*\}\}`)
	envDefPattern      = regexp.MustCompile(`env:\s*\n\s*([A-Z_]+):`)
)

var secretsRuleID = ID("SecretsInConditional")

// SecretsInConditional flags secrets referenced directly inside if:
// conditions. Produces one summary error plus one error per literal match.
func SecretsInConditional(content string) []domain.Finding {
	matches := secretsInIfPattern.FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}

	findings := []domain.Finding{{
		Severity: domain.SeverityError,
		Rule:     secretsRuleID,
		Message:  "Incorrect secrets usage in 'if' conditions. Use env variables instead.",
	}}
	for _, m := range matches {
		findings = append(findings, domain.Finding{
			Severity: domain.SeverityError,
			Rule:     secretsRuleID,
			Message:  fmt.Sprintf("  Found: %s", m),
		})
	}
	return findings
}

// EnvDefinitions extracts the names of environment variables defined in
// env: blocks. The extraction never produces a finding; it is kept as
// file metadata for the JSON and MCP outputs.
func EnvDefinitions(content string) []string {
	var names []string
	for _, m := range envDefPattern.FindAllStringSubmatch(content, -1) {
		names = append(names, m[1])
	}
	return names
}
