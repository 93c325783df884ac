package entities

import (
	"encoding/json"
	"strings"
)

// VariantSelection is one option the customer picked for a line item
// (e.g. group "Size", choice "Large").
type VariantSelection struct {
	GroupName string `json:"groupName,omitempty"`
	Name      string `json:"name"`
}

// LineItemNotes is the normalized form of a line item's notes column.
type LineItemNotes struct {
	Note     string             `json:"note"`
	Variants []VariantSelection `json:"variants"`
}

// ParseLineItemNotes decodes the notes column of a line item.
//
// Newer rows store a JSON object {note, variants[]}. Legacy rows carry the
// note as plain text; those fail to decode and the raw string becomes the
// note. That is expected data, not an error, so this function never fails.
func ParseLineItemNotes(raw string) LineItemNotes {
	empty := LineItemNotes{Variants: []VariantSelection{}}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return empty
	}
	if !strings.HasPrefix(trimmed, "{") {
		return LineItemNotes{Note: raw, Variants: []VariantSelection{}}
	}

	var parsed LineItemNotes
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return LineItemNotes{Note: raw, Variants: []VariantSelection{}}
	}
	if parsed.Variants == nil {
		parsed.Variants = []VariantSelection{}
	}
	return parsed
}
