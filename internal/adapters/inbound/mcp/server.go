package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/tplkit/tplkit/internal/domain"
)

// Options configures the MCP server.
type Options struct {
	// ProjectPath is the root of the template project the checklist runs against.
	ProjectPath string
	// CatalogPath is the integration catalog file.
	CatalogPath string
	Config      domain.ProjectConfig
	Logger      *zap.Logger
}

// NewServer creates an MCP server with every tplkit tool and resource
// registered.
func NewServer(opts Options) *server.MCPServer {
	if opts.ProjectPath == "" {
		opts.ProjectPath = "."
	}
	if opts.CatalogPath == "" {
		opts.CatalogPath = opts.Config.CatalogPathOrDefault()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		"tplkit",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, opts)
	registerResources(s, opts)

	return s
}
