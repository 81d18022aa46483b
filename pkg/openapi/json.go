package openapi

import (
	"encoding/json"
	"os"
)

// MarshalJSON renders the specification as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// WriteJSON renders the specification and writes it to path.
func WriteJSON(spec *Spec, path string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
