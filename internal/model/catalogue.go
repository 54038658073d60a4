package model

// PriceRecord is one product entry of the price catalogue file.
type PriceRecord struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}
