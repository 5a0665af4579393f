package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported data file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// IsDataFile reports whether path has an extension LoadDataFile understands
func IsDataFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON, ExtYAML, ExtYML:
		return true
	}
	return false
}

// LoadDataFile reads a JSON or YAML file, chosen by extension, into target.
func LoadDataFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON:
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
		}
	case ExtYAML, ExtYML:
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("failed to unmarshal YAML from %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported data file extension: %s", path)
	}
	return nil
}

// ListDataFiles returns the JSON and YAML files directly inside dir, sorted by name.
// A path to a single file is returned as-is.
func ListDataFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return []string{dir}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsDataFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
