package domain

// Category identifies which catalog list an integration came from.
type Category string

const (
	CategoryMCPServer Category = "mcpServer"
	CategorySkill     Category = "skill"
	CategoryPlugin    Category = "plugin"
)

// Label returns the display name used in reports.
func (c Category) Label() string {
	switch c {
	case CategoryMCPServer:
		return "MCP Server"
	case CategorySkill:
		return "Skill"
	case CategoryPlugin:
		return "Plugin"
	default:
		return string(c)
	}
}

// EnvVarRequirement describes one environment variable an integration needs.
type EnvVarRequirement struct {
	Name        string `json:"name"                 yaml:"name"`
	Required    bool   `json:"required"             yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description"`
	HowToGet    string `json:"howToGet,omitempty"    yaml:"how_to_get"`
}

// IntegrationRecord is one catalog entry. Records are read-only after load.
type IntegrationRecord struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Type              string              `json:"type,omitempty"`
	Source            string              `json:"source,omitempty"`
	WebCompatible     bool                `json:"webCompatible"`
	LocalOnly         bool                `json:"localOnly,omitempty"`
	AuthType          string              `json:"authType,omitempty"`
	OAuthInstructions string              `json:"oauthInstructions,omitempty"`
	EnvVars           []EnvVarRequirement `json:"envVars,omitempty"`
}

// Catalog is the parsed integrations document.
type Catalog struct {
	MCPServers []IntegrationRecord `json:"mcpServers"`
	Skills     []IntegrationRecord `json:"skills"`
	Plugins    []IntegrationRecord `json:"plugins"`
}

// CatalogSection pairs a category with its records.
type CatalogSection struct {
	Category Category
	Records  []IntegrationRecord
}

// Sections returns the catalog lists in their fixed order:
// MCP servers, skills, plugins.
func (c *Catalog) Sections() []CatalogSection {
	if c == nil {
		return nil
	}
	return []CatalogSection{
		{Category: CategoryMCPServer, Records: c.MCPServers},
		{Category: CategorySkill, Records: c.Skills},
		{Category: CategoryPlugin, Records: c.Plugins},
	}
}

// Len returns the total number of records across all categories.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.MCPServers) + len(c.Skills) + len(c.Plugins)
}

// EmptyCatalog returns a catalog with no records.
func EmptyCatalog() *Catalog {
	return &Catalog{
		MCPServers: []IntegrationRecord{},
		Skills:     []IntegrationRecord{},
		Plugins:    []IntegrationRecord{},
	}
}

// Match is a search hit tagged with the category it was found in.
type Match struct {
	Record   IntegrationRecord `json:"record"`
	Category Category          `json:"category"`
}
