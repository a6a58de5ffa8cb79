package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeEmptyField        = "EMPTY_FIELD"
	ErrCodeUnknownCategory   = "UNKNOWN_CATEGORY"
	ErrCodeReservedCategory  = "RESERVED_CATEGORY"
	ErrCodeCategoryMismatch  = "CATEGORY_MISMATCH"
	ErrCodeItemNotFound      = "ITEM_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeOrderCompleted    = "ORDER_COMPLETED"
	ErrCodeOrderIncomplete   = "ORDER_INCOMPLETE"
	ErrCodeSectionOutOfRange = "SECTION_OUT_OF_RANGE"
	ErrCodeNoSections        = "NO_SECTIONS"
	ErrCodeNotSubscribed     = "NOT_SUBSCRIBED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
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

// Common domain errors
var (
	ErrEmptyField        = NewDomainError(ErrCodeEmptyField, "Name, business, category and description are required")
	ErrUnknownCategory   = NewDomainError(ErrCodeUnknownCategory, "Unknown category")
	ErrReservedCategory  = NewDomainError(ErrCodeReservedCategory, "Surprise is reserved for order sections")
	ErrCategoryMismatch  = NewDomainError(ErrCodeCategoryMismatch, "Item category does not match the requested section category")
	ErrItemNotFound      = NewDomainError(ErrCodeItemNotFound, "Item not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrOrderCompleted    = NewDomainError(ErrCodeOrderCompleted, "Order is already completed")
	ErrOrderIncomplete   = NewDomainError(ErrCodeOrderIncomplete, "Every section needs an assigned item before completion")
	ErrSectionOutOfRange = NewDomainError(ErrCodeSectionOutOfRange, "Section index is out of range")
	ErrNoSections        = NewDomainError(ErrCodeNoSections, "An order needs at least one section")
	ErrNotSubscribed     = NewDomainError(ErrCodeNotSubscribed, "Shopper is not subscribed yet")
)
