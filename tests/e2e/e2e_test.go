package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wflint/wflint/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "wflint-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "wflint")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/wflint")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_MixedDirectory(t *testing.T) {
	out, code := run(t, "--path", fixturePath("workflows"))

	assert.Equal(t, 1, code, "yaml error in b.yml must fail the run")
	assert.Contains(t, out, "Checking a.yml...")
	assert.Contains(t, out, "Checking b.yml...")
	assert.Contains(t, out, "YAML Error:")
	assert.Contains(t, out, "  - Total Errors: 1")
	assert.Contains(t, out, "  - Total Warnings: 2")
	assert.Contains(t, out, "Please fix the errors before using the workflows.")
}

func TestE2E_CleanDirectory(t *testing.T) {
	out, code := run(t, "--path", fixturePath("clean"))

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "No issues found")
	assert.Contains(t, out, "All workflow files are valid!")
}

func TestE2E_SecretsDirectory(t *testing.T) {
	out, code := run(t, "--path", fixturePath("secrets"))

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Incorrect secrets usage in 'if' conditions.")
	assert.Contains(t, out, "Found: if: ${{ secrets.DEPLOY_TOKEN }}")
}

func TestE2E_MissingDirectory(t *testing.T) {
	out, code := run(t, "--path", fixturePath("does-not-exist"))

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "not found!")
	assert.NotContains(t, out, "Checking")
}

func TestE2E_Idempotent(t *testing.T) {
	first, _ := run(t, "--path", fixturePath("workflows"))
	second, _ := run(t, "--path", fixturePath("workflows"))

	assert.Equal(t, first, second, "unchanged directory must produce byte-identical output")
}

func TestE2E_JSON(t *testing.T) {
	out, code := run(t, "--path", fixturePath("workflows"), "--json")

	assert.Equal(t, 1, code)

	var report domain.RunReport
	err := json.Unmarshal([]byte(out), &report)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalErrors)
	assert.Equal(t, 2, report.TotalWarnings)
	require.Len(t, report.Files, 2)
	assert.Equal(t, "a.yml", report.Files[0].Name)
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "wflint")
}
