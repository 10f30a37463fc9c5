package activation

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wire is the encoded form of a Func. Factor is only present for the
// parameterized variants.
type wire struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Factor *float64 `json:"factor,omitempty" yaml:"factor,omitempty"`
}

func (f Func) toWire() wire {
	w := wire{Kind: f.kind.String()}
	if f.Parameterized() {
		factor := f.factor
		w.Factor = &factor
	}
	return w
}

func (w wire) toFunc() (Func, error) {
	kind, err := ParseKind(w.Kind)
	if err != nil {
		return Func{}, err
	}
	if w.Factor == nil {
		return Default(kind), nil
	}
	if !kind.Parameterized() {
		return Func{}, fmt.Errorf("activation %s takes no factor", kind)
	}
	return Func{kind: kind, factor: *w.Factor}, nil
}

// MarshalJSON encodes f as {"kind": "...", "factor": ...}.
func (f Func) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.toWire())
}

// UnmarshalJSON decodes an activation object. A parameterized kind without a
// factor decodes to its default instance.
func (f *Func) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("activation: %w", err)
	}
	decoded, err := w.toFunc()
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

// MarshalYAML encodes f as a mapping with kind and optional factor.
func (f Func) MarshalYAML() (interface{}, error) {
	return f.toWire(), nil
}

// UnmarshalYAML decodes an activation mapping.
func (f *Func) UnmarshalYAML(node *yaml.Node) error {
	var w wire
	if err := node.Decode(&w); err != nil {
		return fmt.Errorf("activation: %w", err)
	}
	decoded, err := w.toFunc()
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}
