package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tplkit/tplkit/internal/adapters/outbound/gitinfo"
	"github.com/tplkit/tplkit/internal/adapters/outbound/projectfs"
	"github.com/tplkit/tplkit/internal/adapters/outbound/tui"
	"github.com/tplkit/tplkit/internal/application"
)

func newChecklistCmd(opts *rootOptions) *cobra.Command {
	var (
		jsonOutput bool
		skip       []string
		include    []string
	)

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Run the template scaffolding checklist",
		Long: "Check that the template's files, hooks, MCP configuration and claims are in place. Exits 1 if any check fails.\n\n" +
			"The Git category inspects repository state and runs only with --include Git or include_categories in .tplkit.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if len(skip) > 0 || len(include) > 0 {
				cfg.SkipCategories = append(cfg.SkipCategories, skip...)
				cfg.IncludeCategories = append(cfg.IncludeCategories, include...)
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid --skip or --include: %w", err)
				}
			}

			absPath, err := filepath.Abs(opts.projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewChecklistService(gitinfo.New(), opts.log())
			report := svc.Run(absPath, projectfs.New(absPath), cfg)

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderChecklistReport(report))
			}

			if !report.OK() {
				return reported(fmt.Errorf("%d of %d checks failed", report.Summary.Failed, report.Summary.Total))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Checklist categories to skip (repeatable)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Opt-in checklist categories to run, e.g. Git (repeatable)")
	return cmd
}
