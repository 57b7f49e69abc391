package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tplkit/tplkit/internal/adapters/outbound/catalog"
	"github.com/tplkit/tplkit/internal/adapters/outbound/tui"
	"github.com/tplkit/tplkit/internal/application"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var (
		list       bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the integration catalog",
		Long:  "Search integrations by id, name or description. With no query, an empty query or --list, list the whole catalog. Always exits 0 when the catalog is readable.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			catalogPath := opts.resolveCatalog(cfg)
			svc := application.NewSearchService(catalog.New(), opts.log())

			if list || len(args) == 0 || args[0] == "" {
				listing, err := svc.List(catalogPath)
				if err != nil {
					return err
				}
				if listing.CatalogMissing {
					warnMissingCatalog(cmd, catalogPath)
				}
				if jsonOutput {
					return renderJSON(cmd, listing)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCatalogList(listing.Catalog))
				return nil
			}

			result, err := svc.Search(catalogPath, args[0])
			if err != nil {
				return err
			}
			if result.CatalogMissing {
				warnMissingCatalog(cmd, catalogPath)
			}
			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSearchResults(result))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List every integration")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func warnMissingCatalog(cmd *cobra.Command, path string) {
	fmt.Fprintf(cmd.ErrOrStderr(), "integration catalog not found at %s, using empty data\n", path)
}
