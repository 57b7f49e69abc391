package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tplkit/tplkit/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "tplkit-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "tplkit")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/tplkit")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func catalogPath() string {
	abs, _ := filepath.Abs("../../testdata/catalog/integrations.json")
	return abs
}

func run(t *testing.T, env []string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Env Tests ---

func TestE2E_EnvMissingRequired(t *testing.T) {
	out, code := run(t, []string{"NETLIFY_SITE_ID="}, "env", "--path", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "NETLIFY_SITE_ID")
	assert.NotContains(t, out, "Error:", "a rendered report is not printed twice")
}

func TestE2E_EnvAllSet(t *testing.T) {
	out, code := run(t, []string{"NETLIFY_SITE_ID=site"}, "env", "--path", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "All required environment variables are set!")
}

// --- Integration Tests ---

func TestE2E_IntegrationMissingVariable(t *testing.T) {
	out, code := run(t, []string{"SENTRY_AUTH_TOKEN="}, "integration", "sentry", "--catalog", catalogPath())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "SENTRY_AUTH_TOKEN")
}

func TestE2E_IntegrationNotFound(t *testing.T) {
	out, code := run(t, nil, "integration", "nope", "--catalog", catalogPath())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "not found")
}

func TestE2E_IntegrationNoArgument(t *testing.T) {
	out, code := run(t, nil, "integration")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "tplkit integration sentry")
}

// --- Search Tests ---

func TestE2E_SearchAlwaysExitsZero(t *testing.T) {
	_, code := run(t, nil, "search", "zzz-no-such-thing", "--catalog", catalogPath())
	assert.Equal(t, 0, code)

	_, code = run(t, nil, "search", "exa", "--catalog", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 0, code)
}

func TestE2E_SearchJSON(t *testing.T) {
	cmd := exec.Command(binaryPath, "search", "exa", "--catalog", catalogPath(), "--json")
	out, err := cmd.Output()
	require.NoError(t, err)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal(out, &result))
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "exa-search", result.Matches[0].Record.ID)
}

// --- Checklist Tests ---

func TestE2E_ChecklistTemplatePassesOutsideGit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")
	require.NoError(t, os.CopyFS(dir, os.DirFS("../../testdata/template")))

	out, code := run(t, nil, "checklist", "--path", dir)
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Summary: 39/39 passed, 0 failed")
	assert.Contains(t, out, "All checks passed!")
}

func TestE2E_ChecklistEmptyProjectFails(t *testing.T) {
	out, code := run(t, nil, "checklist", "--path", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Some checks failed!")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, nil, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "tplkit")
}
