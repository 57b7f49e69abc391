package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tplkit/tplkit/internal/domain"
)

const fixtureCatalog = "../../../../testdata/catalog/integrations.json"

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		ProjectPath: t.TempDir(),
		CatalogPath: fixtureCatalog,
		Logger:      zap.NewNop(),
	}
}

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) (*mcplib.CallToolResult, string) {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")
	return res, text.Text
}

func TestSearchTool_Matches(t *testing.T) {
	res, text := callTool(t, handleSearch(testOptions(t)), map[string]any{"query": "exa"})
	assert.False(t, res.IsError)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(text), &result))
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "exa-search", result.Matches[0].Record.ID)
	assert.Equal(t, domain.CategoryMCPServer, result.Matches[0].Category)
}

func TestSearchTool_EmptyQueryListsCatalog(t *testing.T) {
	_, text := callTool(t, handleSearch(testOptions(t)), map[string]any{})

	var listing domain.CatalogListing
	require.NoError(t, json.Unmarshal([]byte(text), &listing))
	require.NotNil(t, listing.Catalog)
	assert.Equal(t, 7, listing.Catalog.Len())
}

func TestGetIntegrationTool_NotFound(t *testing.T) {
	res, text := callTool(t, handleGetIntegration(testOptions(t)), map[string]any{"id": "nope"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, `"nope" not found`)
	assert.Contains(t, text, "- sentry (MCP Server)")
}

func TestGetIntegrationTool_MissingID(t *testing.T) {
	res, text := callTool(t, handleGetIntegration(testOptions(t)), map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "id")
}

func TestCheckIntegrationEnvTool(t *testing.T) {
	t.Setenv("SENTRY_AUTH_TOKEN", "")

	res, text := callTool(t, handleCheckIntegrationEnv(testOptions(t)), map[string]any{"id": "Sentry"})
	assert.False(t, res.IsError)

	var report domain.IntegrationEnvReport
	require.NoError(t, json.Unmarshal([]byte(text), &report))
	assert.Equal(t, domain.StatusMissingVariables, report.Status)
	require.Len(t, report.Env.MissingRequired, 1)
	assert.Equal(t, "SENTRY_AUTH_TOKEN", report.Env.MissingRequired[0].Name)
}

func TestCheckEnvTool_UsesConfiguredVariables(t *testing.T) {
	t.Setenv("TPLKIT_TEST_VAR", "set")
	opts := testOptions(t)
	opts.Config = domain.ProjectConfig{EnvVars: []domain.EnvVarRequirement{
		{Name: "TPLKIT_TEST_VAR", Required: true},
	}}

	_, text := callTool(t, handleCheckEnv(opts), nil)

	var report domain.EnvReport
	require.NoError(t, json.Unmarshal([]byte(text), &report))
	assert.True(t, report.OK())
	assert.Len(t, report.Set, 1)
}

func TestRunChecklistTool_EmptyProjectFails(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.ProjectPath, "CLAUDE.md"), []byte("# x\n"), 0o644))

	_, text := callTool(t, handleRunChecklist(opts), nil)

	var report domain.ChecklistReport
	require.NoError(t, json.Unmarshal([]byte(text), &report))
	assert.False(t, report.OK())
	assert.Equal(t, len(report.Results), report.Summary.Total)
	assert.Positive(t, report.Summary.Passed)
}

func TestCatalogResource(t *testing.T) {
	contents, err := handleCatalogResource(testOptions(t))(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, catalogURI, text.URI)

	var c domain.Catalog
	require.NoError(t, json.Unmarshal([]byte(text.Text), &c))
	assert.Len(t, c.MCPServers, 4)
}
