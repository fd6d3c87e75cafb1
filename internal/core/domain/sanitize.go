package domain

import (
	"encoding/json"
	"fmt"
)

// SanitizePayload prepares a value for transmission to the store. The store's
// write contract requires every optional field to be an explicit null, never
// absent, so the value is marshaled without omission and then normalized by a
// recursive pass that turns any hole into a null.
func SanitizePayload(v interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("sanitize payload: %w", err)
	}
	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("sanitize payload: %w", err)
	}
	out, err := json.Marshal(normalizeValue(decoded))
	if err != nil {
		return nil, fmt.Errorf("sanitize payload: %w", err)
	}
	return out, nil
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if inner == nil {
				val[k] = nil
				continue
			}
			val[k] = normalizeValue(inner)
		}
		return val
	case []interface{}:
		// nil collections never reach here: Collection substitutes empty
		// slices before the marshal, and a JSON null decodes as nil interface{}
		for i, inner := range val {
			val[i] = normalizeValue(inner)
		}
		return val
	default:
		return val
	}
}
