package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tplkit/tplkit/internal/adapters/outbound/catalog"
	"github.com/tplkit/tplkit/internal/adapters/outbound/environ"
	"github.com/tplkit/tplkit/internal/adapters/outbound/tui"
	"github.com/tplkit/tplkit/internal/application"
	"github.com/tplkit/tplkit/internal/domain"
)

// notFoundOutput is the JSON shape for an unknown integration.
type notFoundOutput struct {
	Status    string          `json:"status"`
	Query     string          `json:"query"`
	Available *domain.Catalog `json:"available"`
}

func newIntegrationCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "integration <integration-id>",
		Short:   "Check the environment variables one integration needs",
		Long:    "Look up an integration by id or name and check the environment variables it declares. Exits 1 if it is not found or a variable is unset.",
		Example: "  tplkit integration sentry",
		Args:    exactArgsWithUsage(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewEnvService(catalog.New(), environ.New(), opts.log())
			report, err := svc.CheckIntegration(opts.resolveCatalog(cfg), args[0])

			var notFound *domain.NotFoundError
			switch {
			case errors.As(err, &notFound):
				if jsonOutput {
					if err := renderJSON(cmd, notFoundOutput{
						Status:    domain.StatusNotFound,
						Query:     notFound.Query,
						Available: notFound.Catalog,
					}); err != nil {
						return err
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderNotFound(notFound.Query, notFound.Catalog))
				}
				return reported(err)
			case err != nil:
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderIntegrationEnvReport(report))
			}

			if report.Status == domain.StatusMissingVariables {
				return reported(&domain.MissingVariablesError{Names: report.Env.MissingNames()})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// exactArgsWithUsage is cobra.ExactArgs with the usage line and example
// appended, since the root command silences usage output.
func exactArgsWithUsage(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			msg := fmt.Sprintf("%v\n\nUsage:\n  %s", err, cmd.UseLine())
			if cmd.Example != "" {
				msg += "\n\nExample:\n" + cmd.Example
			}
			return errors.New(msg)
		}
		return nil
	}
}
