package model

// Error codes for per-entry sale problems.
const (
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeMissingProduct  = "MISSING_PRODUCT"
	ErrCodeMalformedEntry  = "MALFORMED_ENTRY"
	ErrCodeCostOutOfRange  = "COST_OUT_OF_RANGE"
)

// DomainError is a non-fatal problem with a single sale entry.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}
