package domain

import "fmt"

// DefaultCatalogPath is the catalog location relative to the project root.
const DefaultCatalogPath = "scripts/data/integrations.json"

// Checklist category names, in registration order.
const (
	CheckFileStructure    = "File Structure"
	CheckPackageManager   = "Package Manager"
	CheckSessionStartHook = "SessionStart Hook"
	CheckMCPConfiguration = "MCP Configuration"
	CheckClaims           = "Claims"
	CheckCustomCommands   = "Custom Commands"
	CheckVerifyScript     = "Verify Script"
	CheckEnvironment      = "Environment"
	CheckDeployConfig     = "Deploy Config"
	CheckGit              = "Git"
)

// ValidCheckCategories enumerates every checklist category.
var ValidCheckCategories = []string{
	CheckFileStructure,
	CheckPackageManager,
	CheckSessionStartHook,
	CheckMCPConfiguration,
	CheckClaims,
	CheckCustomCommands,
	CheckVerifyScript,
	CheckEnvironment,
	CheckDeployConfig,
	CheckGit,
}

// OptInCheckCategories run only when named in include_categories. They
// inspect repository state rather than the template's files.
var OptInCheckCategories = []string{
	CheckGit,
}

// ProjectConfig holds project-level configuration loaded from .tplkit.yaml.
type ProjectConfig struct {
	CatalogPath       string              `yaml:"catalog_path"       json:"catalog_path,omitempty"`
	EnvVars           []EnvVarRequirement `yaml:"env_vars"           json:"env_vars,omitempty"`
	SkipCategories    []string            `yaml:"skip_categories"    json:"skip_categories,omitempty"`
	IncludeCategories []string            `yaml:"include_categories" json:"include_categories,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// CatalogPathOrDefault returns the configured catalog path or the default.
func (c ProjectConfig) CatalogPathOrDefault() string {
	if c.CatalogPath != "" {
		return c.CatalogPath
	}
	return DefaultCatalogPath
}

// IsSkippedCategory reports whether the named checklist category is excluded.
func (c ProjectConfig) IsSkippedCategory(name string) bool {
	return contains(c.SkipCategories, name)
}

// IsEnabledCategory reports whether the named checklist category runs.
// Skipping wins over including.
func (c ProjectConfig) IsEnabledCategory(name string) bool {
	if c.IsSkippedCategory(name) {
		return false
	}
	if contains(OptInCheckCategories, name) {
		return contains(c.IncludeCategories, name)
	}
	return true
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. env var names must be non-empty and unique
	seen := make(map[string]bool, len(c.EnvVars))
	for i, v := range c.EnvVars {
		if v.Name == "" {
			return fmt.Errorf("env_vars[%d].name must not be empty", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate env var %q in env_vars", v.Name)
		}
		seen[v.Name] = true
	}

	// 2. skip_categories and include_categories must name known checklist categories
	for _, cat := range c.SkipCategories {
		if !contains(ValidCheckCategories, cat) {
			return fmt.Errorf("unknown checklist category %q in skip_categories", cat)
		}
	}
	for _, cat := range c.IncludeCategories {
		if !contains(ValidCheckCategories, cat) {
			return fmt.Errorf("unknown checklist category %q in include_categories", cat)
		}
	}

	return nil
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
