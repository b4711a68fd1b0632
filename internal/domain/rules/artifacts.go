package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wflint/wflint/internal/domain"
)

var artifactNamePattern = regexp.MustCompile(`name:\s*([^\n]+)`)

// invalidNameChars are characters that break artifact handling; a space
// counts as invalid too.
const invalidNameChars = ` /\:*?"<>|`

var artifactRuleID = ID("ArtifactName")

// ArtifactNames warns for every name: value containing a space or a
// filesystem-hostile character. The literal value is embedded in the
// warning so the offending name is visible in the report.
func ArtifactNames(content string) []domain.Finding {
	var findings []domain.Finding
	for _, m := range artifactNamePattern.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if strings.ContainsAny(name, invalidNameChars) {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Rule:     artifactRuleID,
				Message:  fmt.Sprintf("Artifact name may contain invalid characters: %s", name),
			})
		}
	}
	return findings
}
