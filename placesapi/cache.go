package placesapi

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	DefaultKeyFile   = "key.txt"
	DefaultDebugFile = "places-debug.json"
)

var ErrEmptyKey = errors.New("api key file is empty")

// LoadKey reads the whole key file and trims surrounding whitespace.
func LoadKey(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}
	key := strings.TrimSpace(string(content))
	if key == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmptyKey)
	}
	return key, nil
}

// writeDebugFile overwrites path with the last raw response.
func writeDebugFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write debug file: %w", err)
	}
	return nil
}

// LoadCached parses a response previously saved to the debug file.
func LoadCached(path string) ([]Place, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cached response: %w", err)
	}
	return parsePlaces(content)
}
