package service

import (
	"context"
	"fmt"
	"time"

	"compute-sales/internal/document"
	"compute-sales/internal/model"
	"compute-sales/internal/sales"

	"github.com/rs/zerolog"
)

// salesService implements SalesService.
type salesService struct {
	loader     document.Loader
	aggregator *sales.Aggregator
	logger     zerolog.Logger
}

// NewSalesService creates a new sales service.
func NewSalesService(loader document.Loader, aggregator *sales.Aggregator, logger zerolog.Logger) SalesService {
	return &salesService{
		loader:     loader,
		aggregator: aggregator,
		logger:     logger.With().Str("service", "sales").Logger(),
	}
}

// Compute loads both documents, failing on the first load error, and folds
// them into a report.
func (s *salesService) Compute(ctx context.Context, cataloguePath, salesPath string) (*model.Report, error) {
	start := time.Now()

	var catalogue []model.PriceRecord
	if err := s.loader.Load(ctx, cataloguePath, &catalogue); err != nil {
		s.logger.Error().Err(err).Str("file", cataloguePath).Msg("failed to load price catalogue")
		return nil, fmt.Errorf("failed to load price catalogue: %w", err)
	}

	var record model.SalesRecord
	if err := s.loader.Load(ctx, salesPath, &record); err != nil {
		s.logger.Error().Err(err).Str("file", salesPath).Msg("failed to load sales record")
		return nil, fmt.Errorf("failed to load sales record: %w", err)
	}

	result := s.aggregator.Aggregate(catalogue, record)
	elapsed := time.Since(start)

	s.logger.Info().
		Int("catalogue_records", len(catalogue)).
		Int("sale_entries", len(record)).
		Int("errors", len(result.Errors)).
		Dur("elapsed", elapsed).
		Msg("sales computed")

	return &model.Report{
		TotalCost: result.TotalCost,
		Errors:    result.Errors,
		Elapsed:   elapsed,
	}, nil
}
