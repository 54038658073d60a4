package model

import "encoding/json"

// SalesRecord is the ordered list of raw sale entries from the sales file.
// Entries stay undecoded so a single malformed entry does not reject the
// whole document.
type SalesRecord []json.RawMessage

// SaleEntry is the decoded form of one sale entry.
// Product matches "Product" case-insensitively; ProductID is the
// "product_id" alias used by some exports.
type SaleEntry struct {
	Product   *string `json:"Product"`
	ProductID *string `json:"product_id"`
	Quantity  any     `json:"Quantity"`
}

// Reference returns the product reference of the entry, preferring Product
// over ProductID. The boolean is false when neither is set.
func (e SaleEntry) Reference() (string, bool) {
	if e.Product != nil && *e.Product != "" {
		return *e.Product, true
	}
	if e.ProductID != nil && *e.ProductID != "" {
		return *e.ProductID, true
	}
	return "", false
}
