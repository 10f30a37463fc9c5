package vec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes v as a JSON array of Len() elements.
//
// JSON has no representation for NaN or ±Inf, so a vector holding one fails
// with a *json.UnsupportedValueError. YAML encodes them as .nan and .inf and
// round-trips them.
func (v Vec[T]) MarshalJSON() ([]byte, error) {
	if v.data == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.data)
}

// UnmarshalJSON decodes a JSON array into v.
//
// Elements are consumed one at a time into the Len() slots of v. The array
// must hold exactly Len() elements: a shorter or longer array is rejected with
// a *LengthError. A JSON null counts as an empty array. On error v is left
// unchanged.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("vec: %w", err)
	}
	if tok == nil {
		if len(v.data) != 0 {
			return &LengthError{Expected: len(v.data), Got: 0}
		}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("vec: expected array, got %v", tok)
	}

	out := make([]T, len(v.data))
	got := 0
	for dec.More() {
		if got < len(out) {
			if err := dec.Decode(&out[got]); err != nil {
				return fmt.Errorf("vec: element %d: %w", got, err)
			}
		} else {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return fmt.Errorf("vec: element %d: %w", got, err)
			}
		}
		got++
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("vec: %w", err)
	}

	if got != len(out) {
		return &LengthError{Expected: len(out), Got: got}
	}
	copy(v.data, out)
	return nil
}

// MarshalYAML encodes v as a YAML sequence.
func (v Vec[T]) MarshalYAML() (interface{}, error) {
	if v.data == nil {
		return []T{}, nil
	}
	return v.data, nil
}

// UnmarshalYAML decodes a YAML sequence of exactly Len() elements into v.
//
// On error v is left unchanged.
func (v *Vec[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("vec: line %d: expected sequence", node.Line)
	}
	if len(node.Content) != len(v.data) {
		return &LengthError{Expected: len(v.data), Got: len(node.Content)}
	}

	out := make([]T, len(v.data))
	for i, elem := range node.Content {
		if err := elem.Decode(&out[i]); err != nil {
			return fmt.Errorf("vec: element %d: %w", i, err)
		}
	}
	copy(v.data, out)
	return nil
}
