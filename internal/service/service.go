package service

import (
	"context"

	"compute-sales/internal/model"
)

// SalesService computes sales totals from input documents.
type SalesService interface {
	// Compute loads the price catalogue and sales record and aggregates them.
	// The report's elapsed time covers loading and aggregation only.
	Compute(ctx context.Context, cataloguePath, salesPath string) (*model.Report, error)
}
