// Package commands holds the cricanalytics CLI.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/okian/cricanalytics/internal/adapters/matchfile"
	service "github.com/okian/cricanalytics/internal/app"
	"github.com/okian/cricanalytics/internal/config"
	"github.com/okian/cricanalytics/internal/domain/analysis"
	"github.com/okian/cricanalytics/pkg/logger"
)

// Build information, set with -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	dir        string
	logLevel   string
	noColor    bool

	cfg *config.Config
	svc *service.Service
}

// NewRootCommand builds the command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "cricanalytics",
		Short: "Batting impact and consistency from ball-by-ball match files",
		Long: `cricanalytics loads a folder of YAML match files and reports
batting statistics, per-match contribution and consistency.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $CRICANALYTICS_CONFIG)")
	root.PersistentFlags().StringVarP(&a.dir, "dir", "d", "", "match file directory (overrides data_dir)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides log_level)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newServeCommand(a),
		newStatsCommand(a),
		newImpactCommand(a),
		newCompareCommand(a),
		newExportCommand(a),
		newGenerateCommand(a),
		newVersionCommand(a),
	)
	return root
}

// prepare loads configuration (defaults -> file -> env -> flags), then
// sets up logging and the analysis service.
func (a *app) prepare(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.noColor {
		color.NoColor = true //nolint:reassign // library switch
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFrom(ctx, a.configPath)
	} else {
		cfg, err = config.Load(ctx)
	}
	if err != nil {
		return err
	}
	if a.dir != "" {
		cfg.DataDir = a.dir
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	if err := logger.Init(logger.WithWriter(a.errOut), logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	loader := matchfile.NewLoader(
		matchfile.WithExtensions(cfg.Extensions...),
		matchfile.WithLogger(logger.Named("matchfile")),
	)
	a.cfg = cfg
	a.svc = service.New(
		service.WithLoader(loader),
		service.WithDataDir(cfg.DataDir),
		service.WithLogger(logger.Named("service")),
	)
	return nil
}

// analyze runs the pipeline over the configured directory and prints the
// per-file warnings.
func (a *app) analyze(ctx context.Context) *analysis.Report {
	report := a.svc.Analyze(ctx, "")
	warn := color.New(color.FgYellow)
	for _, w := range report.Warnings {
		_, _ = warn.Fprintf(a.errOut, "warning: could not load %s\n", w.Error())
	}
	return report
}

// notice prints an informational message for a state that is not an error.
func (a *app) notice(msg string) {
	_, _ = color.New(color.FgCyan).Fprintln(a.out, msg)
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "cricanalytics %s (commit: %s)\n", Version, Commit)
		},
	}
}
