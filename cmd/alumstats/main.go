package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"alumstats/adapters/excel"
	"alumstats/app"
	"alumstats/internal"
	"alumstats/internal/config"
	"alumstats/internal/errors"
	"alumstats/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(config.Load())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "alumstats: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	formats := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		formats = append(formats, string(f))
	}

	cmd := &cobra.Command{
		Use:   "alumstats",
		Short: "Percentage breakdowns from the longitudinal alumni survey export",
		Long: `Read a semicolon-delimited export of the longitudinal alumni survey and
print percentage breakdowns by demographics, career outcomes, FOSS retention
and mentorship.

Example: alumstats --csv survey.csv --successes 1 --format markdown`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := internal.NewLoggerTo(cfg.LogLevel(), cmd.ErrOrStderr())
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Input.Path, "csv", cfg.Input.Path, "Path to the survey export (.csv, or .xlsx)")
	flags.StringVar(&cfg.Report.Successes, "successes", cfg.Report.Successes, "Print success stories: 0 or 1")
	flags.StringVar(&cfg.Report.Format, "format", cfg.Report.Format, "Output format: "+strings.Join(formats, ", "))
	flags.StringVar(&cfg.Report.Out, "out", cfg.Report.Out, "Write the report to this file instead of stdout")
	flags.StringVar(&cfg.Report.ZeroTotal, "zero-total", cfg.Report.ZeroTotal, "Percentages of an empty total: error or zero")
	flags.StringVar(&cfg.Report.MissingColumns, "missing-columns", cfg.Report.MissingColumns, "Absent expected columns: fatal or unselected")
	flags.Float64Var(&cfg.Report.Confidence, "confidence", cfg.Report.Confidence, "Add Wilson intervals at this level, e.g. 0.95 (0 disables)")
	flags.StringVar(&cfg.Input.Delimiter, "delimiter", cfg.Input.Delimiter, "CSV field separator")
	flags.StringVar(&cfg.Input.Sheet, "sheet", cfg.Input.Sheet, "Worksheet to read from an .xlsx export")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "ERROR, WARN, INFO, DEBUG or TRACE")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *internal.Logger) error {
	renderer, err := report.NewRenderer(report.Format(cfg.Report.Format))
	if err != nil {
		return err
	}

	reader := excel.NewDataReader(excel.ExcelConfig{
		FilePath:  cfg.Input.Path,
		Delimiter: cfg.DelimiterRune(),
		Sheet:     cfg.Input.Sheet,
	}, logger)
	service := app.NewReportService(reader, logger)

	rep, err := service.Generate(ctx, app.ReportRequest{
		Source:         filepath.Base(cfg.Input.Path),
		Successes:      cfg.SuccessesEnabled(),
		Options:        cfg.ReportOptions(),
		MissingColumns: cfg.MissingColumnPolicy(),
	})
	if err != nil {
		return err
	}

	if cfg.Report.Out == "" {
		return renderer.Render(stdout, rep)
	}
	return writeReport(cfg.Report.Out, renderer, rep, logger)
}

func writeReport(path string, renderer report.Renderer, rep *report.Report, logger *internal.Logger) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.FileError(path, err)
	}
	if err := renderer.Render(file, rep); err != nil {
		file.Close()
		return errors.Wrapf(err, "render report to %s", path)
	}
	if err := file.Close(); err != nil {
		return errors.FileError(path, err)
	}
	logger.Info("report written to %s", path)
	return nil
}
