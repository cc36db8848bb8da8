package rule

import (
	"encoding/json"
	"fmt"
)

// EncodeJSON serializes rules as an indented JSON array of tagged objects,
// with fields present only for their variant.
func EncodeJSON(rules []Rule) ([]byte, error) {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		normalized[i] = Normalize(r)
	}
	data, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding rules: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a JSON rule list produced by EncodeJSON. Unknown rule
// variants are rejected; priorities are clamped to the valid range.
func DecodeJSON(data []byte) ([]Rule, error) {
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}
	for i, r := range rules {
		if !r.Kind.Valid() {
			return nil, fmt.Errorf("rule %d: unknown type %q", i, string(r.Kind))
		}
		rules[i] = Normalize(r)
	}
	return rules, nil
}

// NextID returns a fresh monotonic id for a rule list, one past the
// largest committed id.
func NextID(rules []Rule) int64 {
	var maxID int64 = -1
	for _, r := range rules {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}
