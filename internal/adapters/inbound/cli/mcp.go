package cli

import (
	mcpadapter "github.com/tplkit/tplkit/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tplkit MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start tplkit MCP server (stdio)",
		Long:  "Start the tplkit MCP server using stdio transport. This lets AI coding assistants search the integration catalog, check environment variables and run the checklist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			s := mcpadapter.NewServer(mcpadapter.Options{
				ProjectPath: opts.projectPath,
				CatalogPath: opts.resolveCatalog(cfg),
				Config:      cfg,
				Logger:      opts.log(),
			})
			return server.ServeStdio(s)
		},
	}
}
