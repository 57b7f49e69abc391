package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tplkit/tplkit/internal/adapters/outbound/catalog"
	"github.com/tplkit/tplkit/internal/adapters/outbound/environ"
	"github.com/tplkit/tplkit/internal/adapters/outbound/gitinfo"
	"github.com/tplkit/tplkit/internal/adapters/outbound/projectfs"
	"github.com/tplkit/tplkit/internal/application"
	"github.com/tplkit/tplkit/internal/domain"
)

// registerTools registers all tplkit MCP tools on the given server.
func registerTools(s *server.MCPServer, opts Options) {
	// 1. tplkit_search_integrations
	s.AddTool(
		mcplib.NewTool("tplkit_search_integrations",
			mcplib.WithDescription("Search the integration catalog by id, name or description. An empty query lists every integration."),
			mcplib.WithString("query",
				mcplib.Description("Case-insensitive search text"),
			),
		),
		handleSearch(opts),
	)

	// 2. tplkit_get_integration
	s.AddTool(
		mcplib.NewTool("tplkit_get_integration",
			mcplib.WithDescription("Returns one integration record and its category"),
			mcplib.WithString("id",
				mcplib.Required(),
				mcplib.Description("Integration id or display name"),
			),
		),
		handleGetIntegration(opts),
	)

	// 3. tplkit_check_integration_env
	s.AddTool(
		mcplib.NewTool("tplkit_check_integration_env",
			mcplib.WithDescription("Checks the environment variables one integration needs and reports web compatibility"),
			mcplib.WithString("id",
				mcplib.Required(),
				mcplib.Description("Integration id or display name"),
			),
		),
		handleCheckIntegrationEnv(opts),
	)

	// 4. tplkit_check_env
	s.AddTool(
		mcplib.NewTool("tplkit_check_env",
			mcplib.WithDescription("Checks the template's fixed list of environment variables"),
		),
		handleCheckEnv(opts),
	)

	// 5. tplkit_run_checklist
	s.AddTool(
		mcplib.NewTool("tplkit_run_checklist",
			mcplib.WithDescription("Runs the scaffolding checklist against the project and returns every result"),
		),
		handleRunChecklist(opts),
	)
}

func handleSearch(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		query := request.GetString("query", "")
		svc := application.NewSearchService(catalog.New(), opts.Logger)

		if query == "" {
			listing, err := svc.List(opts.CatalogPath)
			if err != nil {
				return errorResult(fmt.Sprintf("listing catalog: %v", err)), nil
			}
			return jsonResult(listing)
		}

		result, err := svc.Search(opts.CatalogPath, query)
		if err != nil {
			return errorResult(fmt.Sprintf("search failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleGetIntegration(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult("missing required parameter: id"), nil
		}

		svc := application.NewSearchService(catalog.New(), opts.Logger)
		match, err := svc.Get(opts.CatalogPath, id)
		if err != nil {
			return errorResult(lookupError(err)), nil
		}
		return jsonResult(match)
	}
}

func handleCheckIntegrationEnv(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult("missing required parameter: id"), nil
		}

		svc := application.NewEnvService(catalog.New(), environ.New(), opts.Logger)
		report, err := svc.CheckIntegration(opts.CatalogPath, id)
		if err != nil {
			return errorResult(lookupError(err)), nil
		}
		return jsonResult(report)
	}
}

func handleCheckEnv(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewEnvService(catalog.New(), environ.New(), opts.Logger)
		return jsonResult(svc.CheckFixed(opts.Config.EnvVars))
	}
}

func handleRunChecklist(opts Options) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		absPath, err := filepath.Abs(opts.ProjectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving path: %v", err)), nil
		}
		svc := application.NewChecklistService(gitinfo.New(), opts.Logger)
		return jsonResult(svc.Run(absPath, projectfs.New(absPath), opts.Config))
	}
}

// lookupError turns a catalog lookup error into a message that lists the
// available ids when the integration is unknown.
func lookupError(err error) string {
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		return err.Error()
	}
	msg := fmt.Sprintf("integration %q not found. Available:", notFound.Query)
	for _, sec := range notFound.Catalog.Sections() {
		for _, r := range sec.Records {
			msg += fmt.Sprintf("\n- %s (%s)", r.ID, sec.Category.Label())
		}
	}
	return msg
}

// jsonResult marshals v as indented JSON and wraps it in a CallToolResult.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
