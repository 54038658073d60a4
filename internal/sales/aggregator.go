package sales

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"compute-sales/internal/model"

	"github.com/rs/zerolog"
)

// Aggregator folds a sales record against a price catalogue.
type Aggregator struct {
	logger zerolog.Logger
}

// NewAggregator creates a new sales aggregator.
func NewAggregator(logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger.With().Str("component", "sales-aggregator").Logger(),
	}
}

// Aggregate computes the total cost of record in one pass. Entries that
// cannot be priced contribute nothing and produce exactly one error message
// each, in input order. It never fails.
func (a *Aggregator) Aggregate(catalogue []model.PriceRecord, record model.SalesRecord) model.AggregationResult {
	lookup, skipped := NewPriceLookup(catalogue)
	for _, note := range skipped {
		a.logger.Warn().Msg(note)
	}

	result := model.AggregationResult{Errors: []string{}}

	for i, raw := range record {
		cost, err := priceEntry(lookup, i+1, raw)
		if err != nil {
			a.logger.Debug().
				Int("entry", i+1).
				Str("code", err.Code).
				Msg(err.Message)
			result.Errors = append(result.Errors, "Warning: "+err.Message)
			continue
		}
		total := result.TotalCost + cost
		if math.IsInf(total, 0) || math.IsNaN(total) {
			a.logger.Debug().
				Int("entry", i+1).
				Float64("cost", cost).
				Msg("entry would overflow the total")
			result.Errors = append(result.Errors,
				fmt.Sprintf("Warning: Sale entry #%d overflows the total cost.", i+1))
			continue
		}
		result.TotalCost = total
	}

	a.logger.Info().
		Int("catalogue_size", len(lookup)).
		Int("entries", len(record)).
		Int("errors", len(result.Errors)).
		Float64("total_cost", result.TotalCost).
		Msg("sales record aggregated")

	return result
}

// priceEntry returns price*quantity for one sale entry, numbered from 1.
func priceEntry(lookup PriceLookup, number int, raw json.RawMessage) (float64, *model.DomainError) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, model.NewDomainError(model.ErrCodeMalformedEntry,
			fmt.Sprintf("Sale entry #%d is malformed.", number))
	}

	var entry model.SaleEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return 0, model.NewDomainError(model.ErrCodeMalformedEntry,
			fmt.Sprintf("Sale entry #%d is malformed.", number))
	}

	product, ok := entry.Reference()
	if !ok {
		return 0, model.NewDomainError(model.ErrCodeMissingProduct,
			fmt.Sprintf("Sale entry #%d has no product reference.", number))
	}

	quantity, err := ParseQuantity(entry.Quantity)
	if err != nil {
		return 0, model.NewDomainError(model.ErrCodeInvalidQuantity,
			fmt.Sprintf("Invalid quantity '%s' for product '%s'.", describe(entry.Quantity), product))
	}

	price, ok := lookup.Price(product)
	if !ok {
		return 0, model.NewDomainError(model.ErrCodeProductNotFound,
			fmt.Sprintf("Product '%s' not found in price catalogue.", product))
	}

	cost := price * quantity
	if math.IsInf(cost, 0) || math.IsNaN(cost) {
		return 0, model.NewDomainError(model.ErrCodeCostOutOfRange,
			fmt.Sprintf("Cost of product '%s' is out of range.", product))
	}

	return cost, nil
}

// describe renders a raw quantity the way it appeared in the input.
func describe(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Sprint(raw)
	}
	return string(data)
}
