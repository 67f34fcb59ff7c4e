package schema

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Selection lists the fields a person chose as translatable.
type Selection struct {
	// Schema is the name of the schema the selection was made against.
	Schema string `yaml:"schema,omitempty"`
	// Translatable holds field keys such as "/config/item/@text".
	Translatable []string `yaml:"translatable"`
}

// ParseSelection parses YAML data into a Selection.
func ParseSelection(data []byte) (*Selection, error) {
	var sel Selection

	if err := yaml.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("failed to parse selection YAML: %w", err)
	}

	return &sel, nil
}

// LoadSelectionFile loads and parses a selection file.
func LoadSelectionFile(fsys afero.Fs, path string) (*Selection, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection file %s: %w", path, err)
	}

	return ParseSelection(data)
}

// WriteSelectionFile writes sel as YAML to path.
func WriteSelectionFile(fsys afero.Fs, sel *Selection, path string) error {
	data, err := yaml.Marshal(sel)
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write selection file %s: %w", path, err)
	}

	return nil
}

// Apply marks every selected field TranslatableString. Keys that do not name
// an attribute known to the schema are returned and left alone.
func (s *Schema) Apply(sel *Selection) []string {
	if sel == nil {
		return nil
	}

	var unknown []string

	for _, key := range sel.Translatable {
		path, attr, ok := SplitFieldKey(key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}

		id, ok := s.Lookup(path)
		if !ok || id == s.Root() {
			unknown = append(unknown, key)
			continue
		}

		if _, ok := s.Kind(id, attr); !ok {
			unknown = append(unknown, key)
			continue
		}

		s.SetKind(id, attr, TranslatableString)
	}

	return unknown
}

// Selection returns the schema's translatable fields as a Selection.
func (s *Schema) Selection() *Selection {
	sel := &Selection{Schema: s.Name, Translatable: []string{}}
	for _, f := range s.Translatable() {
		sel.Translatable = append(sel.Translatable, f.Key())
	}

	return sel
}
