package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"compute-sales/internal/config"
	"compute-sales/internal/document"
	"compute-sales/internal/report"
	"compute-sales/internal/sales"
	"compute-sales/internal/service"

	"github.com/google/uuid"
)

const usage = "Usage: computesales <priceCatalogue.json> <salesRecord.json>"

// errUsage reports a wrong invocation; the usage text is already printed.
var errUsage = errors.New("invalid arguments")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) != 2 {
		fmt.Fprintln(stdout, usage)
		return errUsage
	}
	cataloguePath, salesPath := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, stderr).With().
		Str("run_id", uuid.NewString()).
		Logger()
	logger.Info().
		Str("catalogue", cataloguePath).
		Str("sales", salesPath).
		Msg("starting sales computation")

	// Local file system, optionally preferring S3
	var s3Loader document.Loader
	if cfg.S3.Enabled {
		l, err := document.NewS3Loader(ctx, document.S3Options{
			Bucket:   cfg.S3.Bucket,
			Region:   cfg.S3.Region,
			Endpoint: cfg.S3.Endpoint,
		}, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	}
	loader := document.NewFallbackLoader(s3Loader, document.NewFileLoader(logger), cfg.S3.Prefix, cfg.S3.Enabled, logger)

	salesService := service.NewSalesService(loader, sales.NewAggregator(logger), logger)

	result, err := salesService.Compute(ctx, cataloguePath, salesPath)
	if err != nil {
		return err
	}

	writer := report.NewWriter(stdout, report.ResultFile, logger)
	if err := writer.Write(*result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info().
		Int("errors", len(result.Errors)).
		Msg("sales computation completed")

	return nil
}
