package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wflint/wflint/internal/domain"
	"github.com/wflint/wflint/internal/domain/rules"
)

func TestArtifactNames_SpaceFlagged(t *testing.T) {
	findings := rules.ArtifactNames("name: my artifact\n")

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Equal(t, "Artifact name may contain invalid characters: my artifact", findings[0].Message)
	assert.Equal(t, "artifact-name", findings[0].Rule)
}

func TestArtifactNames_ValidName(t *testing.T) {
	assert.Empty(t, rules.ArtifactNames("name: my-artifact\n"))
}

func TestArtifactNames_SpecialChars(t *testing.T) {
	for _, name := range []string{"a/b", `a\b`, "a:b", "a*b", "a?b", `a"b`, "a<b", "a>b", "a|b"} {
		findings := rules.ArtifactNames("name: " + name + "\n")
		require.Len(t, findings, 1, "name %q should be flagged", name)
		assert.Contains(t, findings[0].Message, name)
	}
}

func TestArtifactNames_OneWarningPerOffendingLine(t *testing.T) {
	content := "name: good-name\nname: bad name\nname: also bad\n"

	findings := rules.ArtifactNames(content)

	assert.Len(t, findings, 2)
}
