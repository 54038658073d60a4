package sales

import (
	"fmt"
	"strings"

	"compute-sales/internal/model"
)

// PriceLookup maps a product title to its unit price.
type PriceLookup map[string]float64

// NewPriceLookup normalizes catalogue records into a PriceLookup.
// Duplicate titles keep the last price seen. Records with a blank title are
// skipped; a note describing each skipped record is returned for logging.
func NewPriceLookup(records []model.PriceRecord) (PriceLookup, []string) {
	lookup := make(PriceLookup, len(records))
	var skipped []string

	for i, record := range records {
		if strings.TrimSpace(record.Title) == "" {
			skipped = append(skipped, fmt.Sprintf("catalogue record #%d has no title", i+1))
			continue
		}
		lookup[record.Title] = record.Price
	}

	return lookup, skipped
}

// Price returns the unit price for a product.
func (l PriceLookup) Price(product string) (float64, bool) {
	price, ok := l[product]
	return price, ok
}
