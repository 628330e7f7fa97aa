package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	servicesync "github.com/goliatone/go-servicesync"
	"github.com/goliatone/go-servicesync/pkg/config"
	"github.com/goliatone/go-servicesync/pkg/orchestrator"
	"github.com/goliatone/go-servicesync/pkg/prompt"
	"github.com/goliatone/go-servicesync/pkg/splice"
	"github.com/goliatone/go-servicesync/pkg/workbook"
)

const usageLine = "Usage: sync-services <spreadsheet.xlsx> [--bump patch|minor]"

type options struct {
	bump       string
	target     string
	configPath string
	templates  string
	noBump     bool
	dryRun     bool
	check      bool
	confirm    bool
	verbose    bool
}

// usageError marks argument errors that should print the usage line.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sync-services <spreadsheet.xlsx>",
		Short: "Sync SERVICE_TRIGGERS and PRICING_GUIDE from the services workbook",
		Long: `Reads the "Services Master" and "Trigger Patterns" sheets of the workbook,
regenerates the SERVICE_TRIGGERS constant and the PRICING_GUIDE template
string, replaces them between their SYNC markers in the target file and bumps
APP_VERSION.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError{err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts, args[0], stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.bump, "bump", string(splice.BumpPatch), "version bump policy: patch or minor")
	flags.StringVar(&opts.target, "target", config.DefaultTarget, "file holding the SYNC marker pairs")
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default ./"+config.DefaultFile+" when present)")
	flags.StringVar(&opts.templates, "templates", "", "directory with block template overrides")
	flags.BoolVar(&opts.noBump, "no-bump", false, "leave APP_VERSION untouched")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the generated blocks without writing the target")
	flags.BoolVar(&opts.check, "check", false, "fail when the generated blocks are out of date; never writes")
	flags.BoolVar(&opts.confirm, "confirm", false, "ask before writing the target")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// execute runs the command and maps failures to an exit code. Errors are
// printed to stdout as "ERROR: <message>".
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(stdout, usageLine)
			return 1
		}
		fmt.Fprintf(stdout, "ERROR: %s\n", err)
		return 1
	}
	return 0
}

func runSync(cmd *cobra.Command, opts *options, spreadsheet string, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("target") || cfg.Target == "" {
		cfg.Target = opts.target
	}
	if cmd.Flags().Changed("bump") {
		cfg.Bump = opts.bump
	}
	if cmd.Flags().Changed("templates") {
		cfg.TemplatesDir = opts.templates
	}

	policy, ok := splice.ParseBumpPolicy(cfg.Bump)
	if !ok {
		logger.Warn("unknown bump policy, using patch", zap.String("bump", cfg.Bump))
	}

	loader := servicesync.NewLoader(
		workbook.WithServicesSheet(cfg.Sheets.Services),
		workbook.WithTriggersSheet(cfg.Sheets.Triggers),
	)
	orchOpts := []orchestrator.Option{
		orchestrator.WithLoader(loader),
		orchestrator.WithLogger(logger),
		orchestrator.WithVersionIdentifier(cfg.VersionIdentifier),
		orchestrator.WithTemplatesDir(cfg.TemplatesDir),
	}
	if opts.confirm && !opts.dryRun && !opts.check {
		orchOpts = append(orchOpts, orchestrator.WithConfirmer(prompt.NewSurvey()))
	}

	rep := newReport(stdout)
	rep.reading(spreadsheet)

	result, err := servicesync.NewOrchestrator(orchOpts...).Sync(cmd.Context(), orchestrator.Request{
		Source:   workbook.SourceFromFile(spreadsheet),
		Target:   cfg.Target,
		Bump:     policy,
		SkipBump: opts.noBump,
		DryRun:   opts.dryRun,
		Check:    opts.check,
	})
	if err != nil {
		return describeError(err, spreadsheet, cfg.Target)
	}

	switch {
	case opts.check:
		rep.checked(result, cfg.Target)
	case opts.dryRun:
		rep.dryRun(result, cfg.Target)
	default:
		rep.synced(result, cfg.Target)
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path, true)
	}
	return config.Load(config.DefaultFile, false)
}

// describeError rewrites sentinel failures into the messages operators
// already know from the report.
func describeError(err error, spreadsheet, target string) error {
	switch {
	case errors.Is(err, orchestrator.ErrSpreadsheetNotFound):
		return fmt.Errorf("Spreadsheet not found: %s", spreadsheet)
	case errors.Is(err, orchestrator.ErrTargetNotFound):
		return fmt.Errorf("%s not found: %s", filepath.Base(target), target)
	case errors.Is(err, orchestrator.ErrOutOfDate):
		return fmt.Errorf("Generated blocks in %s are out of date, run sync-services", target)
	default:
		return err
	}
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
