package network

import (
	"fmt"
	"math"

	"github.com/born-ml/synapse/internal/activation"
	"github.com/born-ml/synapse/internal/vec"
	"gonum.org/v1/gonum/floats"
)

// Perceptron is a single neuron with its own activation function.
//
// Computes: y = act(Σ input[k]·weights[k] + bias)
//
// The port signature is (len(weights), 1).
//
// Example:
//
//	and := network.NewPerceptron(vec.New(1.0, 1.0), -1.5, activation.BinaryStep())
//	out := and.Feed(vec.New(1.0, 1.0)) // [1]
type Perceptron struct {
	weights vec.Vec[float64]
	bias    float64
	act     activation.Func
}

// NewPerceptron creates a perceptron with a copy of weights.
func NewPerceptron(weights vec.Vec[float64], bias float64, act activation.Func) *Perceptron {
	return &Perceptron{
		weights: weights.Clone(),
		bias:    bias,
		act:     act,
	}
}

// UnflattenPerceptron rebuilds a perceptron from a buffer produced by
// Perceptron.Flatten.
//
// The first Len()-1 values become the weights and the last value the bias.
// The activation is supplied by the caller. An empty buffer is rejected.
func UnflattenPerceptron(buf vec.Vec[float64], act activation.Func) (*Perceptron, error) {
	if buf.Len() == 0 {
		return nil, fmt.Errorf("unflatten perceptron: %w", &vec.LengthError{Expected: 1, Got: 0})
	}
	weights, bias := buf.Split(buf.Len() - 1)
	return &Perceptron{
		weights: weights,
		bias:    bias.At(0),
		act:     act,
	}, nil
}

// InputSize returns the number of weights.
func (p *Perceptron) InputSize() int {
	return p.weights.Len()
}

// OutputSize always returns 1.
func (p *Perceptron) OutputSize() int {
	return 1
}

// Feed computes the activated weighted sum of input.
func (p *Perceptron) Feed(input vec.Vec[float64]) vec.Vec[float64] {
	checkInput("Perceptron.Feed", p.weights.Len(), input)
	sum := floats.Dot(input.Data(), p.weights.Data()) + p.bias
	return vec.New(p.act.Activate(sum))
}

// Flatten returns the weights followed by the bias.
func (p *Perceptron) Flatten() vec.Vec[float64] {
	return vec.Concat(p.weights, vec.New(p.bias))
}

// Weights returns a copy of the weights.
func (p *Perceptron) Weights() vec.Vec[float64] {
	return p.weights.Clone()
}

// Bias returns the bias.
func (p *Perceptron) Bias() float64 {
	return p.bias
}

// Activation returns the activation function.
func (p *Perceptron) Activation() activation.Func {
	return p.act
}

// Equal reports whether p and other have bit-identical weights and bias and
// the same activation function.
func (p *Perceptron) Equal(other *Perceptron) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.act == other.act &&
		sameBits(p.bias, other.bias) &&
		sameVecBits(p.weights, other.weights)
}

// StateDict returns "weights" and "bias".
func (p *Perceptron) StateDict() StateDict {
	return StateDict{
		{Name: "weights", Values: p.weights.Clone()},
		scalarEntry("bias", p.bias),
	}
}

// LoadStateDict loads "weights" and "bias".
func (p *Perceptron) LoadStateDict(sd StateDict) error {
	if err := conform(p.StateDict(), sd); err != nil {
		return fmt.Errorf("perceptron: %w", err)
	}
	weights, _ := sd.Lookup("weights")
	bias, _ := sd.Lookup("bias")
	p.weights = weights.Clone()
	p.bias = bias.At(0)
	return nil
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func sameVecBits(a, b vec.Vec[float64]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.All() {
		if !sameBits(x, b.At(i)) {
			return false
		}
	}
	return true
}
