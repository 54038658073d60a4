package sales

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ErrInvalidQuantity is returned when a quantity cannot be read as a number.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ParseQuantity coerces a decoded JSON quantity into a float64.
// A nil value (absent or null) is zero. Numbers and numeric strings are
// accepted; everything else, including NaN and infinities, is rejected.
func ParseQuantity(raw any) (float64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case bool, map[string]any, []any:
		return 0, fmt.Errorf("%w: %v", ErrInvalidQuantity, raw)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("%w: empty string", ErrInvalidQuantity)
		}
		raw = trimmed
	}

	quantity, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidQuantity, raw)
	}

	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidQuantity, raw)
	}

	return quantity, nil
}
