package network

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/born-ml/synapse/internal/activation"
	"github.com/born-ml/synapse/internal/vec"
	"gopkg.in/yaml.v3"
)

// Every network kind encodes as an ordered structure of its parameters and
// constituents, and decodes into an already constructed receiver whose shape
// supplies the expected lengths:
//
//	p := network.NewPerceptron(vec.Zeros[float64](2), 0, activation.Linear())
//	err := json.Unmarshal(data, p) // rejects anything but 2 weights
//
// Decoding is staged: the whole document is decoded and validated first, and
// only then committed to the receiver, so a failed decode leaves it unchanged.

// source is an encoded value that can be walked the same way for JSON and YAML.
type source interface {
	// field returns the member name of an object. Missing or null members are
	// reported as ErrMissingParam.
	field(name string) (source, error)

	// items returns the elements of an array.
	items() ([]source, error)

	// decode decodes the whole value into target.
	decode(target any) error

	// decodeForeign decodes into a network that has no staged decoder.
	decodeForeign(n Network) error
}

// stager is implemented by every network kind of this package.
type stager interface {
	// stage decodes and validates src and returns a function that commits the
	// decoded parameters to the receiver.
	stage(src source) (commit func(), err error)
}

func load(s stager, src source) error {
	commit, err := s.stage(src)
	if err != nil {
		return err
	}
	commit()
	return nil
}

func stageNetwork(src source, n Network) (func(), error) {
	if s, ok := n.(stager); ok {
		return s.stage(src)
	}
	if err := src.decodeForeign(n); err != nil {
		return nil, err
	}
	return func() {}, nil
}

func stageField(src source, name string, n Network) (func(), error) {
	f, err := src.field(name)
	if err != nil {
		return nil, err
	}
	commit, err := stageNetwork(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return commit, nil
}

func decodeField(src source, name string, target any) error {
	f, err := src.field(name)
	if err != nil {
		return err
	}
	if err := f.decode(target); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// fieldItems returns the elements of the array member name, which must have
// exactly n elements.
func fieldItems(src source, name string, n int) ([]source, error) {
	f, err := src.field(name)
	if err != nil {
		return nil, err
	}
	items, err := f.items()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(items) != n {
		return nil, fmt.Errorf("%s: %w", name, &vec.LengthError{Expected: n, Got: len(items)})
	}
	return items, nil
}

type jsonSource struct {
	raw json.RawMessage
}

func (s jsonSource) field(name string) (source, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(s.raw, &obj); err != nil {
		return nil, fmt.Errorf("expected object: %w", err)
	}
	raw, ok := obj[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingParam)
	}
	return jsonSource{raw: raw}, nil
}

func (s jsonSource) items() ([]source, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(s.raw, &raws); err != nil {
		return nil, fmt.Errorf("expected array: %w", err)
	}
	out := make([]source, len(raws))
	for i, raw := range raws {
		out[i] = jsonSource{raw: raw}
	}
	return out, nil
}

func (s jsonSource) decode(target any) error {
	return json.Unmarshal(s.raw, target)
}

func (s jsonSource) decodeForeign(n Network) error {
	u, ok := n.(json.Unmarshaler)
	if !ok {
		return fmt.Errorf("%T: %w", n, ErrNotSerializable)
	}
	return u.UnmarshalJSON(s.raw)
}

type yamlSource struct {
	node *yaml.Node
}

func (s yamlSource) field(name string) (source, error) {
	node := s.node
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != name {
			continue
		}
		value := node.Content[i+1]
		if value.ShortTag() == "!!null" {
			break
		}
		return yamlSource{node: value}, nil
	}
	return nil, fmt.Errorf("%s: %w", name, ErrMissingParam)
}

func (s yamlSource) items() ([]source, error) {
	if s.node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected sequence", s.node.Line)
	}
	out := make([]source, len(s.node.Content))
	for i, n := range s.node.Content {
		out[i] = yamlSource{node: n}
	}
	return out, nil
}

func (s yamlSource) decode(target any) error {
	return s.node.Decode(target)
}

func (s yamlSource) decodeForeign(n Network) error {
	u, ok := n.(yaml.Unmarshaler)
	if !ok {
		return fmt.Errorf("%T: %w", n, ErrNotSerializable)
	}
	return u.UnmarshalYAML(s.node)
}

// Perceptron

type perceptronWire struct {
	Weights    vec.Vec[float64] `json:"weights" yaml:"weights"`
	Bias       float64          `json:"bias" yaml:"bias"`
	Activation activation.Func  `json:"activation" yaml:"activation"`
}

func (p *Perceptron) stage(src source) (func(), error) {
	weights := vec.Zeros[float64](p.weights.Len())
	var bias float64
	var act activation.Func
	if err := decodeField(src, "weights", &weights); err != nil {
		return nil, fmt.Errorf("perceptron: %w", err)
	}
	if err := decodeField(src, "bias", &bias); err != nil {
		return nil, fmt.Errorf("perceptron: %w", err)
	}
	if err := decodeField(src, "activation", &act); err != nil {
		return nil, fmt.Errorf("perceptron: %w", err)
	}
	return func() {
		p.weights, p.bias, p.act = weights, bias, act
	}, nil
}

// MarshalJSON encodes {"weights": [...], "bias": b, "activation": {...}}.
func (p *Perceptron) MarshalJSON() ([]byte, error) {
	return json.Marshal(perceptronWire{Weights: p.weights, Bias: p.bias, Activation: p.act})
}

// UnmarshalJSON decodes into p, requiring exactly InputSize() weights.
func (p *Perceptron) UnmarshalJSON(data []byte) error {
	return load(p, jsonSource{raw: data})
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (p *Perceptron) MarshalYAML() (interface{}, error) {
	return perceptronWire{Weights: p.weights, Bias: p.bias, Activation: p.act}, nil
}

// UnmarshalYAML decodes into p, requiring exactly InputSize() weights.
func (p *Perceptron) UnmarshalYAML(node *yaml.Node) error {
	return load(p, yamlSource{node: node})
}

// Neuron and Layer

type neuronWire struct {
	Weights vec.Vec[float64] `json:"weights" yaml:"weights"`
	Bias    float64          `json:"bias" yaml:"bias"`
}

type layerWire struct {
	Neurons []Neuron `json:"neurons" yaml:"neurons"`
}

// MarshalJSON encodes {"weights": [...], "bias": b}.
func (n Neuron) MarshalJSON() ([]byte, error) {
	return json.Marshal(neuronWire{Weights: n.weights, Bias: n.bias})
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (n Neuron) MarshalYAML() (interface{}, error) {
	return neuronWire{Weights: n.weights, Bias: n.bias}, nil
}

// MarshalJSON encodes {"neurons": [...]}.
func (l Layer) MarshalJSON() ([]byte, error) {
	return json.Marshal(layerWire{Neurons: l.neurons})
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (l Layer) MarshalYAML() (interface{}, error) {
	return layerWire{Neurons: l.neurons}, nil
}

func (l Layer) stage(src source) (func(), error) {
	items, err := fieldItems(src, "neurons", len(l.neurons))
	if err != nil {
		return nil, err
	}
	decoded := make([]Neuron, len(l.neurons))
	for i, item := range items {
		weights := vec.Zeros[float64](l.neurons[i].InputSize())
		var bias float64
		if err := decodeField(item, "weights", &weights); err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		if err := decodeField(item, "bias", &bias); err != nil {
			return nil, fmt.Errorf("neuron %d: %w", i, err)
		}
		decoded[i] = Neuron{weights: weights, bias: bias}
	}
	return func() { copy(l.neurons, decoded) }, nil
}

// FeedForward

type feedForwardWire struct {
	First      Layer           `json:"first" yaml:"first"`
	Hidden     []Layer         `json:"hidden" yaml:"hidden"`
	Output     Layer           `json:"output" yaml:"output"`
	Activation activation.Func `json:"activation" yaml:"activation"`
}

func (f *FeedForward) wire() feedForwardWire {
	hidden := f.hidden
	if hidden == nil {
		hidden = []Layer{}
	}
	return feedForwardWire{First: f.first, Hidden: hidden, Output: f.output, Activation: f.act}
}

func (f *FeedForward) stage(src source) (func(), error) {
	var commits []func()
	stageLayer := func(name string, item source, l Layer) error {
		commit, err := l.stage(item)
		if err != nil {
			return fmt.Errorf("feed_forward: %s: %w", name, err)
		}
		commits = append(commits, commit)
		return nil
	}

	first, err := src.field("first")
	if err != nil {
		return nil, fmt.Errorf("feed_forward: %w", err)
	}
	if err := stageLayer("first", first, f.first); err != nil {
		return nil, err
	}
	hidden, err := fieldItems(src, "hidden", len(f.hidden))
	if err != nil {
		return nil, fmt.Errorf("feed_forward: %w", err)
	}
	for i, item := range hidden {
		if err := stageLayer(fmt.Sprintf("hidden %d", i), item, f.hidden[i]); err != nil {
			return nil, err
		}
	}
	output, err := src.field("output")
	if err != nil {
		return nil, fmt.Errorf("feed_forward: %w", err)
	}
	if err := stageLayer("output", output, f.output); err != nil {
		return nil, err
	}
	var act activation.Func
	if err := decodeField(src, "activation", &act); err != nil {
		return nil, fmt.Errorf("feed_forward: %w", err)
	}

	return func() {
		for _, commit := range commits {
			commit()
		}
		f.act = act
	}, nil
}

// MarshalJSON encodes {"first": ..., "hidden": [...], "output": ..., "activation": ...}.
func (f *FeedForward) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.wire())
}

// UnmarshalJSON decodes into f, requiring every layer to keep its shape.
func (f *FeedForward) UnmarshalJSON(data []byte) error {
	return load(f, jsonSource{raw: data})
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (f *FeedForward) MarshalYAML() (interface{}, error) {
	return f.wire(), nil
}

// UnmarshalYAML decodes into f, requiring every layer to keep its shape.
func (f *FeedForward) UnmarshalYAML(node *yaml.Node) error {
	return load(f, yamlSource{node: node})
}

// Combinators

type andThenWire[L, R Network] struct {
	Left  L `json:"left" yaml:"left"`
	Right R `json:"right" yaml:"right"`
}

type pairWire[A, B Network] struct {
	First  A `json:"first" yaml:"first"`
	Second B `json:"second" yaml:"second"`
}

func stagePair(src source, an string, a Network, bn string, b Network) (func(), error) {
	commitA, err := stageField(src, an, a)
	if err != nil {
		return nil, err
	}
	commitB, err := stageField(src, bn, b)
	if err != nil {
		return nil, err
	}
	return func() {
		commitA()
		commitB()
	}, nil
}

func (c *AndThen[L, R]) stage(src source) (func(), error) {
	return stagePair(src, "left", c.left, "right", c.right)
}

// MarshalJSON encodes {"left": ..., "right": ...}.
func (c *AndThen[L, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(andThenWire[L, R]{Left: c.left, Right: c.right})
}

// UnmarshalJSON decodes both networks in place.
func (c *AndThen[L, R]) UnmarshalJSON(data []byte) error {
	return load(c, jsonSource{raw: data})
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (c *AndThen[L, R]) MarshalYAML() (interface{}, error) {
	return andThenWire[L, R]{Left: c.left, Right: c.right}, nil
}

// UnmarshalYAML decodes both networks in place.
func (c *AndThen[L, R]) UnmarshalYAML(node *yaml.Node) error {
	return load(c, yamlSource{node: node})
}

func (c *Alongside[A, B]) stage(src source) (func(), error) {
	return stagePair(src, "first", c.first, "second", c.second)
}

// MarshalJSON encodes {"first": ..., "second": ...}.
func (c *Alongside[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pairWire[A, B]{First: c.first, Second: c.second})
}

// UnmarshalJSON decodes both networks in place.
func (c *Alongside[A, B]) UnmarshalJSON(data []byte) error {
	return load(c, jsonSource{raw: data})
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (c *Alongside[A, B]) MarshalYAML() (interface{}, error) {
	return pairWire[A, B]{First: c.first, Second: c.second}, nil
}

// UnmarshalYAML decodes both networks in place.
func (c *Alongside[A, B]) UnmarshalYAML(node *yaml.Node) error {
	return load(c, yamlSource{node: node})
}

func (c *Replicate[A, B]) stage(src source) (func(), error) {
	return stagePair(src, "first", c.first, "second", c.second)
}

// MarshalJSON encodes {"first": ..., "second": ...}.
func (c *Replicate[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pairWire[A, B]{First: c.first, Second: c.second})
}

// UnmarshalJSON decodes both networks in place.
func (c *Replicate[A, B]) UnmarshalJSON(data []byte) error {
	return load(c, jsonSource{raw: data})
}

// MarshalYAML encodes the same structure as MarshalJSON.
func (c *Replicate[A, B]) MarshalYAML() (interface{}, error) {
	return pairWire[A, B]{First: c.first, Second: c.second}, nil
}

// UnmarshalYAML decodes both networks in place.
func (c *Replicate[A, B]) UnmarshalYAML(node *yaml.Node) error {
	return load(c, yamlSource{node: node})
}

// Sequential

func (s *Sequential) stage(src source) (func(), error) {
	items, err := src.items()
	if err != nil {
		return nil, fmt.Errorf("sequential: %w", err)
	}
	if len(items) != len(s.networks) {
		return nil, fmt.Errorf("sequential: %w", &vec.LengthError{Expected: len(s.networks), Got: len(items)})
	}
	commits := make([]func(), len(items))
	for i, item := range items {
		commit, err := stageNetwork(item, s.networks[i])
		if err != nil {
			return nil, fmt.Errorf("sequential: network %d: %w", i, err)
		}
		commits[i] = commit
	}
	return func() {
		for _, commit := range commits {
			commit()
		}
	}, nil
}

// MarshalJSON encodes the networks as an array.
func (s *Sequential) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.networks)
}

// UnmarshalJSON decodes every network in place.
func (s *Sequential) UnmarshalJSON(data []byte) error {
	return load(s, jsonSource{raw: data})
}

// MarshalYAML encodes the networks as a sequence.
func (s *Sequential) MarshalYAML() (interface{}, error) {
	return s.networks, nil
}

// UnmarshalYAML decodes every network in place.
func (s *Sequential) UnmarshalYAML(node *yaml.Node) error {
	return load(s, yamlSource{node: node})
}
