package schema

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// indexKey is the mapping key holding the item list when an index file is
// written as an object rather than a bare list.
const indexKey = "registry"

// LoadIndex reads a registry index file and returns its item list as raw,
// unvalidated data. The file may be YAML or JSON, and may hold either a bare
// list of items or a mapping with a "registry" key.
func LoadIndex(path string) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseIndex(data, path)
}

// ParseIndex is LoadIndex for bytes already in memory. name is only used in
// error messages.
func ParseIndex(data []byte, name string) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing registry index %s: %w", name, err)
	}

	raw = normalizeYAML(raw)
	if m, ok := raw.(map[string]any); ok {
		list, ok := m[indexKey]
		if !ok {
			return nil, fmt.Errorf("registry index %s: mapping has no %q key", name, indexKey)
		}
		return list, nil
	}
	return raw, nil
}

// LoadRegistry reads and validates a registry index file.
func (v *Validator) LoadRegistry(path string) (Registry, error) {
	raw, err := LoadIndex(path)
	if err != nil {
		return nil, err
	}
	reg, err := v.ParseRegistry(raw)
	if err != nil {
		return nil, fmt.Errorf("registry index %s: %w", path, err)
	}
	return reg, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
