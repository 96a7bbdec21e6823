package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"plugincheck/internal/audit"
	"plugincheck/internal/config"
	"plugincheck/internal/metrics"
	"plugincheck/internal/render"
	"plugincheck/internal/report"
	"plugincheck/internal/validate"
)

type ExitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }
func (e *exitError) ExitCode() int { return e.code }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		var ex ExitCoder
		if errors.As(err, &ex) {
			os.Exit(ex.ExitCode())
		}
		os.Exit(1)
	}
}

type runOptions struct {
	configPath  string
	jsonOutput  bool
	color       string
	reportFile  string
	metricsFile string
	auditLog    string
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:           "plugincheck [root]",
		Short:         "Validate a plugin marketplace repository",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runValidate(cmd, root, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default <root>/"+config.FileName+")")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	cmd.Flags().StringVar(&opts.color, "color", "", "color mode: auto|always|never")
	cmd.Flags().StringVar(&opts.reportFile, "report-file", "", "also write the JSON report to this path")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write a Prometheus textfile to this path")
	cmd.Flags().StringVar(&opts.auditLog, "audit-log", "", "append JSON-lines run events to this path")

	cmd.AddCommand(newVersionCmd(&opts.jsonOutput))
	cmd.AddCommand(newConfigCmd(&opts.jsonOutput))

	return cmd
}

// loadConfig layers the config file, PLUGINCHECK_* variables and flags,
// later sources winning.
func loadConfig(cmd *cobra.Command, root string, opts *runOptions) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath(root)
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, err
	}
	if cfg, err = config.ApplyEnv(cfg); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if opts.jsonOutput {
		cfg.Output.Format = config.FormatJSON
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
	if flags.Changed("report-file") {
		cfg.Report.JSONFile = opts.reportFile
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = opts.metricsFile
	}
	if flags.Changed("audit-log") {
		cfg.Audit.Path = opts.auditLog
	}
	cfg = config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	if err := config.CheckMinVersion(cfg, config.Version); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runValidate(cmd *cobra.Command, root string, opts *runOptions) error {
	cfg, err := loadConfig(cmd, root, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	jsonMode := cfg.Output.Format == config.FormatJSON
	colored := !jsonMode && render.ColorEnabled(cfg.Output.Color)

	var printer report.Printer
	if !jsonMode {
		printer = render.NewProgress(out, colored)
	}
	r := report.New(printer)

	var logger *audit.Logger
	if cfg.Audit.Path != "" {
		p, err := config.ExpandPath(cfg.Audit.Path)
		if err != nil {
			return err
		}
		logger = audit.New(p)
	}
	if err := logger.RunStarted(root); err != nil {
		return fmt.Errorf("AUDIT_WRITE: %w", err)
	}

	res := validate.New(root, cfg.Layout, r).Run()

	if err := logger.RunFinished(r, res); err != nil {
		return fmt.Errorf("AUDIT_WRITE: %w", err)
	}

	doc := render.BuildDocument(root, r, res)
	doc.RunID = logger.RunID()
	if jsonMode {
		if err := print(out, true, doc, ""); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out)
		render.Summary(out, r, colored)
		render.Verdict(out, r, len(res.Plugins), colored)
	}

	if cfg.Report.JSONFile != "" {
		p, err := outputPath(cfg.Report.JSONFile)
		if err != nil {
			return err
		}
		if err := render.WriteDocument(p, doc); err != nil {
			return fmt.Errorf("REPORT_WRITE: %w", err)
		}
	}
	if cfg.Metrics.Textfile != "" {
		p, err := outputPath(cfg.Metrics.Textfile)
		if err != nil {
			return err
		}
		if err := metrics.WriteTextfile(p, r, res); err != nil {
			return err
		}
	}

	if !r.Passed() {
		return &exitError{code: 1}
	}
	return nil
}

func outputPath(p string) (string, error) {
	p, err := config.ExpandPath(p)
	if err != nil {
		return "", err
	}
	return filepath.Clean(p), nil
}

func print(w io.Writer, jsonOutput bool, payload any, message string) error {
	if jsonOutput {
		blob, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(blob))
		return nil
	}
	if message != "" {
		fmt.Fprintln(w, message)
	}
	return nil
}
