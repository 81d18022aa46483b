package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildQASchema returns the JSON Schema (draft 2020-12 subset) that generated
// question-answer payloads must satisfy. It is sent to the model as a
// structured-output constraint and used locally to validate the response.
func BuildQASchema(maxQuestions int) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"qa_pairs": map[string]any{
				"type":     "array",
				"maxItems": maxQuestions,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"question":   map[string]any{"type": "string", "minLength": 1},
						"answer":     map[string]any{"type": "string", "minLength": 1},
						"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					},
					"required": []string{"question", "answer"},
				},
			},
		},
		"required": []string{"qa_pairs"},
	}
}

// ValidateJSONAgainstSchema validates data against schemaMap.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
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
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
