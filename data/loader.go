package data

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// ReadText returns the contents of an embedded text file.
func ReadText(filename string) (string, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	return string(content), nil
}
