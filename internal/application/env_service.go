package application

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tplkit/tplkit/internal/domain"
	"github.com/tplkit/tplkit/internal/domain/envcheck"
	"github.com/tplkit/tplkit/internal/domain/lookup"
)

// EnvService checks environment variables, either from a fixed list or from
// the requirements an integration declares in the catalog.
type EnvService struct {
	catalogs domain.CatalogLoader
	env      domain.EnvLookup
	logger   *zap.Logger
}

func NewEnvService(catalogs domain.CatalogLoader, env domain.EnvLookup, logger *zap.Logger) *EnvService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnvService{catalogs: catalogs, env: env, logger: logger}
}

// CheckFixed classifies reqs. A nil or empty list falls back to the
// default template variables.
func (s *EnvService) CheckFixed(reqs []domain.EnvVarRequirement) *domain.EnvReport {
	if len(reqs) == 0 {
		reqs = envcheck.DefaultRequirements()
	}
	report := envcheck.Classify(reqs, s.env)
	s.logger.Debug("fixed env check",
		zap.Int("checked", len(reqs)),
		zap.Strings("missing_required", report.MissingNames()),
	)
	return &report
}

// CheckIntegration resolves id against the catalog at catalogPath and
// checks the variables the integration declares.
//
// A missing catalog or unknown id is returned as an error. Missing variables
// are reported through the returned report's Status, not as an error.
func (s *EnvService) CheckIntegration(catalogPath, id string) (*domain.IntegrationEnvReport, error) {
	c, err := s.catalogs.Load(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	record, category, ok := lookup.FindByID(c, id)
	if !ok {
		s.logger.Debug("integration not found", zap.String("query", id), zap.Int("catalog_size", c.Len()))
		return nil, &domain.NotFoundError{Query: id, Catalog: c}
	}

	env := envcheck.Classify(envcheck.ForIntegration(record), s.env)
	report := &domain.IntegrationEnvReport{
		Status:        domain.StatusOK,
		Integration:   record,
		Category:      category,
		WebCompatible: lookup.IsWebCompatible(record),
		Env:           env,
		Warnings:      integrationWarnings(record),
	}
	if !env.OK() {
		report.Status = domain.StatusMissingVariables
	}

	s.logger.Debug("integration env check",
		zap.String("integration", record.ID),
		zap.String("category", string(category)),
		zap.String("status", report.Status),
	)
	return report, nil
}

// integrationWarnings lists the non-environment notes for a record.
func integrationWarnings(r domain.IntegrationRecord) []string {
	var warnings []string
	if !lookup.IsWebCompatible(r) {
		warnings = append(warnings, fmt.Sprintf(
			"%s is not compatible with web sessions: it requires a local CLI (stdio transport)", r.Name))
	}
	if r.AuthType != "" {
		warnings = append(warnings, "authentication: "+strings.ToUpper(r.AuthType))
		if r.AuthType == "oauth" && r.OAuthInstructions != "" {
			warnings = append(warnings, r.OAuthInstructions)
		}
	}
	return warnings
}
