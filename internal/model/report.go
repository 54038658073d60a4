package model

import "time"

// AggregationResult is the outcome of folding a sales record against the
// price catalogue.
type AggregationResult struct {
	TotalCost float64
	Errors    []string
}

// Report is the value rendered to the console and to the result file.
type Report struct {
	TotalCost float64
	Errors    []string
	Elapsed   time.Duration
}
