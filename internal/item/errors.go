package item

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrEmptyQuery       = errors.New("search query is required")
	ErrStoreUnavailable = errors.New("item store unavailable")
	ErrValidation       = errors.New("invalid item")
	ErrNameRequired     = errors.New("Name is required and must be a non-empty string.")
	ErrQuantityInvalid  = errors.New("Quantity is required and must be a non-negative number.")
	ErrPriceInvalid     = errors.New("Price is required and must be a non-negative number.")
	ErrCategoryInvalid  = errors.New("Category must be a string.")
	ErrNameEmpty        = errors.New("Name must be a non-empty string.")
	ErrQuantityNegative = errors.New("Quantity must be a non-negative number.")
	ErrPriceNegative    = errors.New("Price must be a non-negative number.")
)

// ValidationError reports which field rule rejected a payload.
// errors.Is matches both ErrValidation and the specific rule.
type ValidationError struct {
	Field string
	Rule  error
}

func (e *ValidationError) Error() string {
	return e.Rule.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Rule
}

func invalid(field string, rule error) error {
	return &ValidationError{Field: field, Rule: rule}
}
