package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/avarialab/avaria/internal/domain/analysis"
)

// ParseReport validates the reasoning model's raw JSON against the output
// contract. The payload is treated as untyped until it passes every check:
// a missing or non-array damageItems and an out-of-enum severity are
// rejected, never coerced. An empty array is valid here; the assembler
// decides what an empty report means.
func ParseReport(raw []byte) (Report, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Report{}, fmt.Errorf("%w: response is not a JSON object: %v", analysis.ErrInvalidModelOutput, err)
	}

	itemsRaw, ok := envelope["damageItems"]
	if !ok {
		return Report{}, fmt.Errorf("%w: missing damageItems", analysis.ErrInvalidModelOutput)
	}
	if trimmed := bytes.TrimSpace(itemsRaw); len(trimmed) == 0 || trimmed[0] != '[' {
		return Report{}, fmt.Errorf("%w: damageItems is not an array", analysis.ErrInvalidModelOutput)
	}

	var items []analysis.DamageItem
	if err := json.Unmarshal(itemsRaw, &items); err != nil {
		return Report{}, fmt.Errorf("%w: bad damageItems: %v", analysis.ErrInvalidModelOutput, err)
	}
	for i, it := range items {
		if !it.Severity.Valid() {
			return Report{}, fmt.Errorf("%w: damageItems[%d] has severity %q", analysis.ErrInvalidModelOutput, i, it.Severity)
		}
	}

	var summary string
	if s, ok := envelope["summary"]; ok {
		// summary of the wrong type is tolerated as empty; the assembler
		// substitutes a default
		_ = json.Unmarshal(s, &summary)
	}

	return Report{Summary: summary, DamageItems: items}, nil
}
