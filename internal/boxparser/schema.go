package boxparser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// payloadSchema constrains the helper's stdout payload: a JSON array of record
// objects keyed by epic. Ages arrive as strings because the layout model reads them
// off the page verbatim.
var payloadSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"epic"},
		"properties": map[string]any{
			"epic":         map[string]any{"type": "string"},
			"name":         map[string]any{"type": "string"},
			"relativeName": map[string]any{"type": "string"},
			"relationType": map[string]any{"type": "string"},
			"age":          map[string]any{"type": []any{"string", "null"}},
			"gender":       map[string]any{"type": "string"},
			"houseNumber":  map[string]any{"type": "string"},
			"village":      map[string]any{"type": "string"},
			"area":         map[string]any{"type": "string"},
			"originalText": map[string]any{"type": "string"},
		},
	},
}

func validatePayload(data []byte) error {
	b, err := json.Marshal(payloadSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
