package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSanitizePayloadKeepsExplicitNulls(t *testing.T) {
	people := []Person{
		{FirstName: "MARIO", LastName: "ROSSI", TaxID: "RSSMRA80A01H501U"},
	}

	raw, err := SanitizePayload(people)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode sanitized payload: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d entries, want 1", len(decoded))
	}

	// Unset optionals must be present as nulls, never absent.
	for _, key := range []string{"email", "birth_date", "license_year"} {
		value, ok := decoded[0][key]
		if !ok {
			t.Errorf("key %q missing from sanitized payload", key)
			continue
		}
		if value != nil {
			t.Errorf("key %q = %v, want null", key, value)
		}
	}
}

func TestSanitizePayloadNestedDocument(t *testing.T) {
	policies := []InsurancePolicy{
		{
			ID:           "1",
			Company:      "GENERALI",
			PolicyNumber: "POL-1",
			Start:        NewDate(2024, time.January, 1),
			End:          NewDate(2024, time.December, 31),
		},
	}

	raw, err := SanitizePayload(policies)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode sanitized payload: %v", err)
	}

	doc, ok := decoded[0]["document"]
	if !ok {
		t.Fatal("document key missing")
	}
	if doc != nil {
		t.Errorf("document = %v, want null", doc)
	}
}

func TestSanitizePayloadEmptySlice(t *testing.T) {
	raw, err := SanitizePayload([]Person{})
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("got %s, want []", raw)
	}
}
