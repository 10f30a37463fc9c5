package network

import (
	"fmt"
	"slices"

	"github.com/born-ml/synapse/internal/activation"
	"github.com/born-ml/synapse/internal/parallel"
	"github.com/born-ml/synapse/internal/vec"
	"gonum.org/v1/gonum/floats"
)

// Neuron is a weight vector and a bias. Unlike a Perceptron it has no
// activation of its own: the enclosing FeedForward network supplies it.
type Neuron struct {
	weights vec.Vec[float64]
	bias    float64
}

// NewNeuron creates a neuron with a copy of weights.
func NewNeuron(weights vec.Vec[float64], bias float64) Neuron {
	return Neuron{weights: weights.Clone(), bias: bias}
}

// InputSize returns the number of weights.
func (n Neuron) InputSize() int {
	return n.weights.Len()
}

// Weights returns a copy of the weights.
func (n Neuron) Weights() vec.Vec[float64] {
	return n.weights.Clone()
}

// Bias returns the bias.
func (n Neuron) Bias() float64 {
	return n.bias
}

// Feed returns act(Σ input[k]·weights[k] + bias).
func (n Neuron) Feed(input vec.Vec[float64], act activation.Func) float64 {
	checkInput("Neuron.Feed", n.weights.Len(), input)
	return act.Activate(floats.Dot(input.Data(), n.weights.Data()) + n.bias)
}

// Equal reports whether n and other have bit-identical parameters.
func (n Neuron) Equal(other Neuron) bool {
	return sameBits(n.bias, other.bias) && sameVecBits(n.weights, other.weights)
}

func (n Neuron) clone() Neuron {
	return Neuron{weights: n.weights.Clone(), bias: n.bias}
}

// Layer is an ordered array of neurons that all read the same input.
//
// A layer of S neurons with PL weights each maps a vector of length PL to a
// vector of length S.
type Layer struct {
	neurons []Neuron
}

// NewLayer creates a layer from one or more neurons.
//
// Returns an error if there are no neurons or if the neurons do not all have
// the same number of weights.
func NewLayer(neurons ...Neuron) (Layer, error) {
	if len(neurons) == 0 {
		return Layer{}, fmt.Errorf("layer: %w", ErrEmptyNetwork)
	}
	width := neurons[0].InputSize()
	for i, n := range neurons[1:] {
		if n.InputSize() != width {
			return Layer{}, &ShapeError{
				Op:      "layer",
				Left:    Port{In: width, Out: 1},
				Right:   Port{In: n.InputSize(), Out: 1},
				Details: fmt.Sprintf("neuron %d has %d weights, neuron 0 has %d", i+1, n.InputSize(), width),
			}
		}
	}

	owned := make([]Neuron, len(neurons))
	for i, n := range neurons {
		owned[i] = n.clone()
	}
	return Layer{neurons: owned}, nil
}

// Size returns the number of neurons, which is the output width.
func (l Layer) Size() int {
	return len(l.neurons)
}

// InputSize returns the number of weights per neuron.
func (l Layer) InputSize() int {
	if len(l.neurons) == 0 {
		return 0
	}
	return l.neurons[0].InputSize()
}

// Port returns (InputSize(), Size()).
func (l Layer) Port() Port {
	return Port{In: l.InputSize(), Out: l.Size()}
}

// Neuron returns the neuron at index i.
//
// Panics if index is out of bounds.
func (l Layer) Neuron(i int) Neuron {
	return l.neurons[i].clone()
}

// Feed evaluates every neuron on input with act, preserving neuron order.
func (l Layer) Feed(input vec.Vec[float64], act activation.Func) vec.Vec[float64] {
	return l.feed(input, act, parallel.Disabled())
}

func (l Layer) feed(input vec.Vec[float64], act activation.Func, cfg parallel.Config) vec.Vec[float64] {
	checkInput("Layer.Feed", l.InputSize(), input)
	out := vec.Zeros[float64](len(l.neurons))
	data := out.Data()
	parallel.For(len(l.neurons), func(i int) {
		n := l.neurons[i]
		data[i] = act.Activate(floats.Dot(input.Data(), n.weights.Data()) + n.bias)
	}, cfg)
	return out
}

// Equal reports whether l and other have equal neurons in the same order.
func (l Layer) Equal(other Layer) bool {
	return slices.EqualFunc(l.neurons, other.neurons, Neuron.Equal)
}

// StateDict returns "<i>.weights" and "<i>.bias" for every neuron i.
func (l Layer) StateDict() StateDict {
	sd := make(StateDict, 0, 2*len(l.neurons))
	for i, n := range l.neurons {
		sd = append(sd,
			Entry{Name: fmt.Sprintf("%d.weights", i), Values: n.weights.Clone()},
			scalarEntry(fmt.Sprintf("%d.bias", i), n.bias),
		)
	}
	return sd
}

// load copies conforming entries into the neurons. Callers run conform first.
func (l Layer) load(sd StateDict) {
	for i := range l.neurons {
		weights, _ := sd.Lookup(fmt.Sprintf("%d.weights", i))
		bias, _ := sd.Lookup(fmt.Sprintf("%d.bias", i))
		l.neurons[i] = Neuron{weights: weights.Clone(), bias: bias.At(0)}
	}
}

func (l Layer) clone() Layer {
	owned := make([]Neuron, len(l.neurons))
	for i, n := range l.neurons {
		owned[i] = n.clone()
	}
	return Layer{neurons: owned}
}

// FeedForward is a fixed stack of layers sharing one activation function.
//
// Architecture:
//   - first hidden layer: I → HN
//   - IHLC intermediate hidden layers: HN → HN
//   - output layer: HN → O
//
// The port signature is (I, O). Evaluation is stateless: each call propagates
// the input layer by layer and returns the output layer's vector.
//
// Example (XOR):
//
//	hidden, _ := network.NewLayer(
//	    network.NewNeuron(vec.New(1.0, 1.0), -0.5),
//	    network.NewNeuron(vec.New(-1.0, -1.0), 1.5),
//	)
//	output, _ := network.NewLayer(network.NewNeuron(vec.New(1.0, 1.0), -1.5))
//	xor, _ := network.NewFeedForward(hidden, nil, output, activation.BinaryStep())
type FeedForward struct {
	first  Layer
	hidden []Layer
	output Layer
	act    activation.Func
	par    parallel.Config
}

// NewFeedForward creates a feed-forward network from its layers.
//
// Returns a *ShapeError if an intermediate layer is not HN → HN or if the
// output layer does not read HN values, where HN is the width of first.
func NewFeedForward(first Layer, hidden []Layer, output Layer, act activation.Func) (*FeedForward, error) {
	if first.Size() == 0 || output.Size() == 0 {
		return nil, fmt.Errorf("feed_forward: %w", ErrEmptyNetwork)
	}

	width := first.Size()
	square := Port{In: width, Out: width}
	for i, h := range hidden {
		if h.Port() != square {
			return nil, &ShapeError{
				Op:      "feed_forward",
				Left:    first.Port(),
				Right:   h.Port(),
				Details: fmt.Sprintf("intermediate layer %d must be %v", i, square),
			}
		}
	}
	if output.InputSize() != width {
		return nil, &ShapeError{
			Op:      "feed_forward",
			Left:    first.Port(),
			Right:   output.Port(),
			Details: fmt.Sprintf("output layer must read %d values", width),
		}
	}

	owned := make([]Layer, len(hidden))
	for i, h := range hidden {
		owned[i] = h.clone()
	}
	return &FeedForward{
		first:  first.clone(),
		hidden: owned,
		output: output.clone(),
		act:    act,
		par:    parallel.Disabled(),
	}, nil
}

// WithParallel makes Feed evaluate the neurons of each layer through
// parallel.For using cfg. Results are identical to sequential evaluation.
func (f *FeedForward) WithParallel(cfg parallel.Config) *FeedForward {
	f.par = cfg
	return f
}

// InputSize returns the input width of the first hidden layer.
func (f *FeedForward) InputSize() int {
	return f.first.InputSize()
}

// OutputSize returns the width of the output layer.
func (f *FeedForward) OutputSize() int {
	return f.output.Size()
}

// HiddenWidth returns HN, the width of every hidden layer.
func (f *FeedForward) HiddenWidth() int {
	return f.first.Size()
}

// IntermediateCount returns the number of HN → HN layers.
func (f *FeedForward) IntermediateCount() int {
	return len(f.hidden)
}

// Layers returns copies of all layers in evaluation order.
func (f *FeedForward) Layers() []Layer {
	layers := make([]Layer, 0, len(f.hidden)+2)
	layers = append(layers, f.first.clone())
	for _, h := range f.hidden {
		layers = append(layers, h.clone())
	}
	return append(layers, f.output.clone())
}

// Activation returns the activation shared by all layers.
func (f *FeedForward) Activation() activation.Func {
	return f.act
}

// Feed propagates input through the first, intermediate, and output layers.
func (f *FeedForward) Feed(input vec.Vec[float64]) vec.Vec[float64] {
	checkInput("FeedForward.Feed", f.InputSize(), input)

	x := f.first.feed(input, f.act, f.par)
	for _, h := range f.hidden {
		x = h.feed(x, f.act, f.par)
	}
	return f.output.feed(x, f.act, f.par)
}

// Equal reports whether f and other have equal layers and activation.
func (f *FeedForward) Equal(other *FeedForward) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.act == other.act &&
		f.first.Equal(other.first) &&
		slices.EqualFunc(f.hidden, other.hidden, Layer.Equal) &&
		f.output.Equal(other.output)
}

// StateDict returns the layer parameters under "first.", "hidden.<i>." and
// "output.".
func (f *FeedForward) StateDict() StateDict {
	sd := f.first.StateDict().WithPrefix("first")
	for i, h := range f.hidden {
		sd = append(sd, h.StateDict().WithPrefix(fmt.Sprintf("hidden.%d", i))...)
	}
	return append(sd, f.output.StateDict().WithPrefix("output")...)
}

// LoadStateDict loads all layer parameters.
func (f *FeedForward) LoadStateDict(sd StateDict) error {
	if err := conform(f.StateDict(), sd); err != nil {
		return fmt.Errorf("feed_forward: %w", err)
	}
	f.first.load(sd.Sub("first"))
	for i, h := range f.hidden {
		h.load(sd.Sub(fmt.Sprintf("hidden.%d", i)))
	}
	f.output.load(sd.Sub("output"))
	return nil
}
