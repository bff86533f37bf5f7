package item

const (
	FieldName     = "name"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
	FieldCategory = "category"

	legacyFieldQuantity = "qty"
)

// Normalize returns a copy of raw with legacy field names mapped onto canonical ones.
// "qty" becomes "quantity" and overrides any "quantity" sent alongside it.
// raw is never modified.
func Normalize(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == legacyFieldQuantity {
			continue
		}
		out[k] = v
	}
	if v, ok := raw[legacyFieldQuantity]; ok {
		out[FieldQuantity] = v
	}
	return out
}
