package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var errNotMapping = errors.New("top level is not a mapping")

// entry is one top-level key of a values file and the line it starts on.
type entry struct {
	Key   string
	Line  int
	Value any
}

// loadValues decodes the top-level mapping of a YAML file in document order.
func loadValues(path string) ([]entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: %w", path, errNotMapping)
	}
	entries := make([]entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		var value any
		if err := v.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode %s (line %d): %w", k.Value, k.Line, err)
		}
		entries = append(entries, entry{Key: k.Value, Line: k.Line, Value: value})
	}
	return entries, nil
}
