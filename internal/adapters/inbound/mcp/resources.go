package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tplkit/tplkit/internal/adapters/outbound/catalog"
	"github.com/tplkit/tplkit/internal/application"
)

const catalogURI = "tplkit://catalog"

// registerResources registers all tplkit MCP resources on the given server.
func registerResources(s *server.MCPServer, opts Options) {
	s.AddResource(
		mcplib.NewResource(
			catalogURI,
			"Integration Catalog",
			mcplib.WithResourceDescription("Every MCP server, skill and plugin the template knows about"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(opts),
	)
}

func handleCatalogResource(opts Options) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := application.NewSearchService(catalog.New(), opts.Logger)
		listing, err := svc.List(opts.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}

		data, err := json.MarshalIndent(listing.Catalog, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
