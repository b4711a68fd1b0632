// Package rules implements the workflow lint rules. Every rule is a pure
// function over the raw file text: rules are independent and commutative,
// none reads another's output, so evaluation order does not matter.
//
// The rules are deliberately regex-based heuristics, not semantic YAML
// traversal. Overlapping matches and the occasional false positive against
// true GitHub Actions semantics are part of the contract.
package rules

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/wflint/wflint/internal/domain"
)

// Evaluate runs every rule over the raw file content and returns the
// combined findings plus the extracted file metadata.
func Evaluate(content string) ([]domain.Finding, domain.FileMetadata) {
	var findings []domain.Finding
	findings = append(findings, SecretsInConditional(content)...)
	findings = append(findings, ArtifactNames(content)...)
	findings = append(findings, MissingPermissions(content)...)
	findings = append(findings, UnpinnedVersions(content)...)

	meta := domain.FileMetadata{
		EnvVars:  EnvDefinitions(content),
		JobNeeds: JobNeeds(content),
	}
	return findings, meta
}

// ID converts a rule's CamelCase name into its stable kebab-case
// identifier, e.g. "SecretsInConditional" -> "secrets-in-conditional".
func ID(name string) string {
	words := camelcase.Split(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}
