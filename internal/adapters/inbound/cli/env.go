package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tplkit/tplkit/internal/adapters/outbound/catalog"
	"github.com/tplkit/tplkit/internal/adapters/outbound/environ"
	"github.com/tplkit/tplkit/internal/adapters/outbound/tui"
	"github.com/tplkit/tplkit/internal/application"
	"github.com/tplkit/tplkit/internal/domain"
)

func newEnvCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Check the template's environment variables",
		Long:  "Check the environment variables the template needs. Exits 1 if any required variable is unset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			svc := application.NewEnvService(catalog.New(), environ.New(), opts.log())
			report := svc.CheckFixed(cfg.EnvVars)

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderEnvReport(report))
			}

			if !report.OK() {
				return reported(&domain.MissingVariablesError{Names: report.MissingNames()})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
