// Package envcheck classifies environment variable requirements against
// the current environment.
package envcheck

import (
	"github.com/tplkit/tplkit/internal/domain"
)

// DefaultRequirements returns the variables the template expects when no
// project configuration overrides them.
func DefaultRequirements() []domain.EnvVarRequirement {
	return []domain.EnvVarRequirement{
		{
			Name:        "NETLIFY_SITE_ID",
			Required:    true,
			Description: "Netlify site ID for preview deployments",
			HowToGet:    "Netlify Dashboard → Site Settings → General → Site ID",
		},
		{
			Name:        "GITHUB_TOKEN",
			Description: "GitHub personal access token for API access",
			HowToGet:    "GitHub → Settings → Developer Settings → Personal Access Tokens",
		},
		{
			Name:        "SENTRY_AUTH_TOKEN",
			Description: "Sentry authentication token for error monitoring",
			HowToGet:    "Sentry → Settings → Auth Tokens → Create New Token",
		},
		{
			Name:        "NOTION_TOKEN",
			Description: "Notion integration token for documentation",
			HowToGet:    "Notion → Settings → Integrations → Create Integration",
		},
	}
}

// ForIntegration returns the integration's declared variables, all marked
// required.
func ForIntegration(r domain.IntegrationRecord) []domain.EnvVarRequirement {
	reqs := make([]domain.EnvVarRequirement, len(r.EnvVars))
	for i, v := range r.EnvVars {
		v.Required = true
		reqs[i] = v
	}
	return reqs
}

// Classify sorts each requirement into set, missing-required or
// missing-optional. An empty value counts as unset.
func Classify(reqs []domain.EnvVarRequirement, env domain.EnvLookup) domain.EnvReport {
	report := domain.EnvReport{
		Set:             []string{},
		MissingRequired: []domain.EnvVarRequirement{},
		MissingOptional: []domain.EnvVarRequirement{},
	}

	for _, req := range reqs {
		if v, ok := env.Lookup(req.Name); ok && v != "" {
			report.Set = append(report.Set, req.Name)
			continue
		}
		if req.Required {
			report.MissingRequired = append(report.MissingRequired, req)
		} else {
			report.MissingOptional = append(report.MissingOptional, req)
		}
	}

	return report
}

// MapEnv is an EnvLookup backed by a map.
type MapEnv map[string]string

// Lookup implements domain.EnvLookup.
func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
