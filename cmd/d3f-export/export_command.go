package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourmjk/d3f-metadata-exporter/internal/export"
	"github.com/yourmjk/d3f-metadata-exporter/internal/metadata"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var summaryFlag bool
	var workersFlag int
	var lockFlag bool

	cmd := &cobra.Command{
		Use:   "export <input.json> <webDir|tagDir> <baseDir>",
		Short: "Write one directory per catalog entry below baseDir",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}

			outputType, err := export.ParseOutputType(args[1])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("workers") {
				settings.Workers = workersFlag
			}
			if cmd.Flags().Changed("lock") {
				settings.LockBaseDir = lockFlag
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			doc, err := metadata.NewParser().ParseFile(args[0])
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			logger := ctx.newLogger(stdout, cmd.ErrOrStderr())
			defer logger.Sync()

			exporter := export.NewExporter(settings, logger, func(event export.ProgressEvent) {
				logProgress(logger, event)
			})

			report, err := exporter.Export(cmd.Context(), doc, args[2], outputType)
			if err != nil {
				return err
			}

			if summaryFlag || isTerminal(stdout) {
				printSummary(stdout, report)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print a summary table even when stdout is not a terminal")
	cmd.Flags().IntVarP(&workersFlag, "workers", "w", 1, "Number of entries exported concurrently")
	cmd.Flags().BoolVar(&lockFlag, "lock", false, "Hold an advisory lock on baseDir while exporting")
	return cmd
}

func logProgress(logger *zap.Logger, event export.ProgressEvent) {
	switch event.Level {
	case export.LevelInfo:
		logger.Info(event.Message)
	case export.LevelWarning:
		logger.Warn(event.Message)
	case export.LevelError:
		logger.Error(event.Message)
	default:
		logger.Debug(event.Message)
	}
}
