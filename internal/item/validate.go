package item

import (
	"encoding/json"
	"math"
	"strings"
)

// ValidateFull checks a normalized create/replace payload. Rules run in a fixed
// order and the first failure is returned.
func ValidateFull(in map[string]any) error {
	if name, ok := in[FieldName].(string); !ok || strings.TrimSpace(name) == "" {
		return invalid(FieldName, ErrNameRequired)
	}
	if q, ok := Number(in[FieldQuantity]); !ok || q < 0 {
		return invalid(FieldQuantity, ErrQuantityInvalid)
	}
	if p, ok := Number(in[FieldPrice]); !ok || p < 0 {
		return invalid(FieldPrice, ErrPriceInvalid)
	}
	return validateCategory(in)
}

// ValidatePartial applies the same rules as ValidateFull to the keys that are present.
func ValidatePartial(in map[string]any) error {
	if v, ok := in[FieldName]; ok {
		if name, ok := v.(string); !ok || strings.TrimSpace(name) == "" {
			return invalid(FieldName, ErrNameEmpty)
		}
	}
	if v, ok := in[FieldQuantity]; ok {
		if q, ok := Number(v); !ok || q < 0 {
			return invalid(FieldQuantity, ErrQuantityNegative)
		}
	}
	if v, ok := in[FieldPrice]; ok {
		if p, ok := Number(v); !ok || p < 0 {
			return invalid(FieldPrice, ErrPriceNegative)
		}
	}
	return validateCategory(in)
}

// null category is treated as absent
func validateCategory(in map[string]any) error {
	v, ok := in[FieldCategory]
	if !ok || v == nil {
		return nil
	}
	if _, ok := v.(string); !ok {
		return invalid(FieldCategory, ErrCategoryInvalid)
	}
	return nil
}

// Number converts a decoded JSON value to float64. Strings, bools, nil, NaN and
// infinities are not numbers.
func Number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CategoryOrDefault returns the trimmed category, or DefaultCategory when blank.
func CategoryOrDefault(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return DefaultCategory
}

// Check enforces the record invariants every stored item must satisfy.
func (i Item) Check() error {
	if strings.TrimSpace(i.Name) == "" {
		return invalid(FieldName, ErrNameRequired)
	}
	if i.Quantity < 0 || math.IsNaN(i.Quantity) || math.IsInf(i.Quantity, 0) {
		return invalid(FieldQuantity, ErrQuantityInvalid)
	}
	if i.Price < 0 || math.IsNaN(i.Price) || math.IsInf(i.Price, 0) {
		return invalid(FieldPrice, ErrPriceInvalid)
	}
	return nil
}
