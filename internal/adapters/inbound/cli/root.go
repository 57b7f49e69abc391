package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tplkit/tplkit/internal/adapters/outbound/config"
	"github.com/tplkit/tplkit/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrReported marks a failure whose report has already been written to the
// command output. Execute does not print it again.
var ErrReported = errors.New("failure already reported")

type reportedError struct{ err error }

func (e *reportedError) Error() string        { return e.err.Error() }
func (e *reportedError) Unwrap() error        { return e.err }
func (e *reportedError) Is(target error) bool { return target == ErrReported }

func reported(err error) error { return &reportedError{err: err} }

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	projectPath string
	catalogPath string
	verbose     bool
	logger      *zap.Logger
}

func (o *rootOptions) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// loadConfig reads .tplkit.yaml from the project path.
func (o *rootOptions) loadConfig() (domain.ProjectConfig, error) {
	cfg, err := config.New().Load(o.projectPath)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveCatalog picks the catalog path: --catalog wins over the config
// file, relative config paths are taken from the project root.
func (o *rootOptions) resolveCatalog(cfg domain.ProjectConfig) string {
	if o.catalogPath != "" {
		return o.catalogPath
	}
	p := cfg.CatalogPathOrDefault()
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.projectPath, p)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tplkit",
		Short: "Project template utilities",
		Long: "tplkit checks environment variables, looks up integrations in the template's catalog, " +
			"and runs the scaffolding checklist.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log().Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.projectPath, "path", ".", "Project root")
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Integration catalog file (default: <path>/"+domain.DefaultCatalogPath+")")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Write debug logs to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEnvCmd(opts))
	cmd.AddCommand(newIntegrationCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newChecklistCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command. Errors that were not already part of a
// rendered report are printed to stderr.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrReported) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
