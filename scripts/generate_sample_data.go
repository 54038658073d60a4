package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type priceRecord struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// generateSampleData creates a sample price catalogue and sales record.
// Expected total: 3*19.99 + 2*4.50 + 10*0.25 = 71.47
// Expected warnings: "Gadget" (not in catalogue), "Doohickey" (quantity "many")
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalogue := []priceRecord{
		{Title: "Widget", Price: 19.99},
		{Title: "Gizmo", Price: 4.50},
		{Title: "Sprocket", Price: 0.25},
		{Title: "Doohickey", Price: 7.00},
	}

	sales := []map[string]any{
		{"Product": "Widget", "Quantity": 3},
		{"Product": "Gizmo", "Quantity": "2"},
		{"Product": "Gadget", "Quantity": 1}, // not in catalogue
		{"product_id": "Sprocket", "quantity": 10},
		{"Product": "Doohickey", "Quantity": "many"}, // not numeric
		{"Product": "Widget"},                        // counts as zero
	}

	documents := map[string]any{
		"priceCatalogue.json": catalogue,
		"salesRecord.json":    sales,
	}

	for filename, doc := range documents {
		filePath := filepath.Join(dataDir, filename)

		if err := writeJSON(filePath, doc); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s\n", filePath)
	}

	fmt.Println("\nSample data created successfully!")
	fmt.Println("\nRun: go run ./cmd/computesales data/priceCatalogue.json data/salesRecord.json")
	fmt.Println("Expected total: $71.47 with 2 warnings")
}

func writeJSON(filePath string, v any) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	return nil
}
