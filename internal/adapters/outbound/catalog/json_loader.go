package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tplkit/tplkit/internal/domain"
)

// JSONLoader implements domain.CatalogLoader by reading a JSON document with
// top-level mcpServers, skills and plugins arrays.
type JSONLoader struct{}

// New creates a JSONLoader.
func New() *JSONLoader { return &JSONLoader{} }

// Load reads and parses the catalog at path. A missing file yields an error
// wrapping domain.ErrCatalogNotFound; malformed JSON yields a
// *domain.CatalogParseError. Absent keys decode to empty lists.
func (l *JSONLoader) Load(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	c := domain.EmptyCatalog()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, &domain.CatalogParseError{Path: path, Err: err}
	}
	normalize(c)
	return c, nil
}

// normalize replaces explicit nulls with empty lists.
func normalize(c *domain.Catalog) {
	if c.MCPServers == nil {
		c.MCPServers = []domain.IntegrationRecord{}
	}
	if c.Skills == nil {
		c.Skills = []domain.IntegrationRecord{}
	}
	if c.Plugins == nil {
		c.Plugins = []domain.IntegrationRecord{}
	}
}
