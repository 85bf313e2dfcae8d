package dfa

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements the yaml.Marshaler interface.
func (d *DFA) MarshalYAML() (any, error) {
	return d.Definition(), nil
}

// ParseYAML decodes a Definition from YAML and builds the automaton.
// Unknown keys are rejected.
func ParseYAML(data []byte) (*DFA, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to unmarshal dfa definition: empty document")
		}

		return nil, fmt.Errorf("failed to unmarshal dfa definition: %w", err)
	}

	return def.Build()
}

// LoadFile reads a definition from path and builds the automaton. The format
// is chosen by extension: .json, .yaml or .yml.
func LoadFile(path string) (*DFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dfa definition: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("read dfa definition %s: unsupported extension %q", path, ext)
	}
}
