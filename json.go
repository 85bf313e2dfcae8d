package dfa

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the json.Marshaler interface. The automaton is
// encoded as its canonical Definition.
func (d *DFA) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Definition())
}

// ParseJSON decodes a Definition from JSON and builds the automaton.
// Unknown keys are rejected.
func ParseJSON(data []byte) (*DFA, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dfa definition: %w", err)
	}

	return def.Build()
}
