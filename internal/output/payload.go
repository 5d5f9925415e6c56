package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadPayload parses a free-form request body given inline as JSON or as a JSON/YAML file.
// It returns nil when neither is given.
func ReadPayload(inline, file string) (map[string]any, error) {
	if inline != "" && file != "" {
		return nil, fmt.Errorf("use either inline data or a file, not both")
	}

	var payload map[string]any
	switch {
	case inline != "":
		if err := json.Unmarshal([]byte(inline), &payload); err != nil {
			return nil, fmt.Errorf("parsing inline json payload: %w", err)
		}
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading payload file: %w", err)
		}
		switch strings.ToLower(filepath.Ext(file)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(raw, &payload)
		default:
			err = json.Unmarshal(raw, &payload)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing payload file %s: %w", file, err)
		}
	}
	return payload, nil
}

// ReadValue parses an arbitrary inline JSON value, e.g. a products map or a listings array.
func ReadValue(inline string) (any, error) {
	if inline == "" {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal([]byte(inline), &value); err != nil {
		return nil, fmt.Errorf("parsing json value: %w", err)
	}
	return value, nil
}
