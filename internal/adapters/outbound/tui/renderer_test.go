package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tplkit/tplkit/internal/adapters/outbound/tui"
	"github.com/tplkit/tplkit/internal/domain"
)

func sampleEnvReport() *domain.EnvReport {
	return &domain.EnvReport{
		Set: []string{"GITHUB_TOKEN"},
		MissingRequired: []domain.EnvVarRequirement{
			{Name: "NETLIFY_SITE_ID", Required: true, Description: "Netlify site ID", HowToGet: "Site Settings → General"},
		},
		MissingOptional: []domain.EnvVarRequirement{
			{Name: "NOTION_TOKEN", Description: "Notion integration token"},
		},
	}
}

func TestRenderEnvReport_Missing(t *testing.T) {
	output := tui.RenderEnvReport(sampleEnvReport())
	assert.Contains(t, output, "GITHUB_TOKEN")
	assert.Contains(t, output, "NETLIFY_SITE_ID")
	assert.Contains(t, output, "How to get:")
	assert.Contains(t, output, "Site Settings → General")
	assert.Contains(t, output, "NOTION_TOKEN")
	assert.Contains(t, output, "Setup incomplete")
	assert.NotContains(t, output, "All required environment variables are set")
}

func TestRenderEnvReport_AllSet(t *testing.T) {
	output := tui.RenderEnvReport(&domain.EnvReport{Set: []string{"NETLIFY_SITE_ID"}})
	assert.Contains(t, output, "All required environment variables are set!")
	assert.NotContains(t, output, "Missing required")
}

func sentryReport(missing bool) *domain.IntegrationEnvReport {
	token := domain.EnvVarRequirement{
		Name: "SENTRY_AUTH_TOKEN", Required: true,
		Description: "Sentry authentication token", HowToGet: "Sentry → Settings → Auth Tokens",
	}
	r := &domain.IntegrationEnvReport{
		Status:        domain.StatusOK,
		Integration:   domain.IntegrationRecord{ID: "sentry", Name: "Sentry", WebCompatible: true, EnvVars: []domain.EnvVarRequirement{token}},
		Category:      domain.CategoryMCPServer,
		WebCompatible: true,
		Env:           domain.EnvReport{Set: []string{"SENTRY_AUTH_TOKEN"}},
	}
	if missing {
		r.Status = domain.StatusMissingVariables
		r.Env = domain.EnvReport{MissingRequired: []domain.EnvVarRequirement{token}}
	}
	return r
}

func TestRenderIntegrationEnvReport_Missing(t *testing.T) {
	output := tui.RenderIntegrationEnvReport(sentryReport(true))
	assert.Contains(t, output, "Checking: Sentry")
	assert.Contains(t, output, "Web compatible: Yes")
	assert.Contains(t, output, "SENTRY_AUTH_TOKEN")
	assert.Contains(t, output, "Missing")
	assert.Contains(t, output, "MISSING REQUIRED VARIABLES")
	assert.Contains(t, output, "Sentry → Settings → Auth Tokens")
}

func TestRenderIntegrationEnvReport_AllSet(t *testing.T) {
	output := tui.RenderIntegrationEnvReport(sentryReport(false))
	assert.Contains(t, output, "All requirements met for Sentry")
	assert.NotContains(t, output, "MISSING REQUIRED VARIABLES")
}

func TestRenderIntegrationEnvReport_LocalOnlyAndOAuth(t *testing.T) {
	output := tui.RenderIntegrationEnvReport(&domain.IntegrationEnvReport{
		Integration: domain.IntegrationRecord{
			ID: "gh", Name: "GitHub", LocalOnly: true, WebCompatible: true,
			AuthType: "oauth", OAuthInstructions: "Run /mcp to sign in.",
		},
		Category: domain.CategoryMCPServer,
	})
	assert.Contains(t, output, "NOT compatible")
	assert.Contains(t, output, "Authentication:")
	assert.Contains(t, output, "OAUTH")
	assert.Contains(t, output, "Run /mcp to sign in.")
	assert.Contains(t, output, "No environment variables required.")
}

func TestRenderNotFound_ListsCatalog(t *testing.T) {
	c := &domain.Catalog{
		MCPServers: []domain.IntegrationRecord{{ID: "sentry", Name: "Sentry"}},
		Skills:     []domain.IntegrationRecord{{ID: "pdf", Name: "PDF"}},
	}
	output := tui.RenderNotFound("nope", c)
	assert.Contains(t, output, `"nope"`)
	assert.Contains(t, output, "not found")
	assert.Contains(t, output, "MCP Servers")
	assert.Contains(t, output, "- sentry: Sentry")
	assert.Contains(t, output, "- pdf: PDF")
	assert.Contains(t, output, "Plugins")
}
