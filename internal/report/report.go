// Package report renders the sales report and writes it to the console and
// to the result file.
package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"compute-sales/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ResultFile is the name of the report file written to the working directory.
const ResultFile = "SalesResults.txt"

// Render writes the report in its text layout to w.
func Render(w io.Writer, r model.Report) error {
	var b strings.Builder

	b.WriteString("Sales Results\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	fmt.Fprintf(&b, "Total Sales Cost: $%s\n", formatMoney(r.TotalCost))
	b.WriteString("\n")
	if len(r.Errors) > 0 {
		b.WriteString("Errors:\n")
		for _, e := range r.Errors {
			b.WriteString(e + "\n")
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Execution Time: %.4f seconds\n", r.Elapsed.Seconds())

	_, err := io.WriteString(w, b.String())
	return err
}

// formatMoney renders an amount with two decimals. Non-finite amounts have
// no decimal form and are printed as +Inf, -Inf or NaN.
func formatMoney(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// Writer sends one rendering of a report to the console and to a file.
type Writer struct {
	console io.Writer
	path    string
	logger  zerolog.Logger
}

// NewWriter creates a report writer for the given console and file path.
func NewWriter(console io.Writer, path string, logger zerolog.Logger) *Writer {
	return &Writer{
		console: console,
		path:    path,
		logger:  logger.With().Str("component", "report-writer").Logger(),
	}
}

// Write renders r once and writes the same bytes to the console and to the
// result file, replacing any previous file contents.
func (w *Writer) Write(r model.Report) error {
	var buf bytes.Buffer
	if err := Render(&buf, r); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if _, err := w.console.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report to console: %w", err)
	}

	if err := writeFile(w.path, buf.Bytes()); err != nil {
		w.logger.Error().Err(err).Str("file", w.path).Msg("failed to write result file")
		return err
	}

	w.logger.Info().
		Str("file", w.path).
		Int("bytes", buf.Len()).
		Msg("result file written")

	return nil
}

func writeFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create result file %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close result file %s: %w", path, err)
	}

	return nil
}
