// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"github.com/born-ml/synapse/internal/activation"
	"github.com/born-ml/synapse/internal/network"
	"github.com/born-ml/synapse/internal/parallel"
	"github.com/born-ml/synapse/internal/vec"
)

// Network is the interface implemented by every network kind.
type Network = network.Network

// Port is the (input, output) length pair of a network.
type Port = network.Port

// PortOf returns the port signature of n.
func PortOf(n Network) Port {
	return network.PortOf(n)
}

// Errors

// ShapeError reports incompatible port signatures.
type ShapeError = network.ShapeError

// Common errors.
var (
	ErrShapeMismatch   = network.ErrShapeMismatch
	ErrEmptyNetwork    = network.ErrEmptyNetwork
	ErrNilNetwork      = network.ErrNilNetwork
	ErrMissingParam    = network.ErrMissingParam
	ErrNotSerializable = network.ErrNotSerializable
)

// Primitives

// Perceptron is a single neuron with its own activation.
type Perceptron = network.Perceptron

// NewPerceptron creates a perceptron with a copy of weights.
//
// Example:
//
//	and := network.NewPerceptron(vec.New(1.0, 1.0), -1.5, activation.BinaryStep())
func NewPerceptron(weights vec.Vec[float64], bias float64, act activation.Func) *Perceptron {
	return network.NewPerceptron(weights, bias, act)
}

// UnflattenPerceptron rebuilds a perceptron from the output of Perceptron.Flatten.
func UnflattenPerceptron(buf vec.Vec[float64], act activation.Func) (*Perceptron, error) {
	return network.UnflattenPerceptron(buf, act)
}

// Neuron is a weight vector and bias inside a Layer.
type Neuron = network.Neuron

// NewNeuron creates a neuron with a copy of weights.
func NewNeuron(weights vec.Vec[float64], bias float64) Neuron {
	return network.NewNeuron(weights, bias)
}

// Layer is an ordered array of neurons reading the same input.
type Layer = network.Layer

// NewLayer creates a layer from neurons of equal width.
func NewLayer(neurons ...Neuron) (Layer, error) {
	return network.NewLayer(neurons...)
}

// FeedForward is a fixed stack of layers sharing one activation.
type FeedForward = network.FeedForward

// NewFeedForward creates a feed-forward network.
//
// Example:
//
//	xor, err := network.NewFeedForward(hidden, nil, output, activation.BinaryStep())
func NewFeedForward(first Layer, hidden []Layer, output Layer, act activation.Func) (*FeedForward, error) {
	return network.NewFeedForward(first, hidden, output, act)
}

// ParallelConfig controls parallel evaluation of layer neurons.
type ParallelConfig = parallel.Config

// DefaultParallelConfig uses every logical core of the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Combinators

// AndThen feeds the output of one network into another.
type AndThen[L, R Network] = network.AndThen[L, R]

// NewAndThen composes left and right in sequence.
func NewAndThen[L, R Network](left L, right R) (*AndThen[L, R], error) {
	return network.NewAndThen(left, right)
}

// Alongside evaluates two networks on disjoint parts of the input.
type Alongside[A, B Network] = network.Alongside[A, B]

// NewAlongside places first and second side by side.
func NewAlongside[A, B Network](first A, second B) (*Alongside[A, B], error) {
	return network.NewAlongside(first, second)
}

// Combine is an alias for NewAlongside.
func Combine[A, B Network](first A, second B) (*Alongside[A, B], error) {
	return network.Combine(first, second)
}

// Replicate feeds the same input to two networks.
type Replicate[A, B Network] = network.Replicate[A, B]

// NewReplicate combines two networks that share an input size.
func NewReplicate[A, B Network](first A, second B) (*Replicate[A, B], error) {
	return network.NewReplicate(first, second)
}

// Sequential chains any number of networks.
type Sequential = network.Sequential

// NewSequential chains networks in order.
//
// Example:
//
//	model, err := network.NewSequential(encoder, hidden, decoder)
func NewSequential(networks ...Network) (*Sequential, error) {
	return network.NewSequential(networks...)
}

// Parameters

// Entry is a named parameter buffer.
type Entry = network.Entry

// StateDict is the ordered list of named parameters of a network.
type StateDict = network.StateDict

// ParamCount returns the number of scalar parameters of n.
func ParamCount(n Network) int {
	return network.ParamCount(n)
}

// Flatten concatenates the parameters of n in state dict order.
func Flatten(n Network) vec.Vec[float64] {
	return network.Flatten(n)
}

// Unflatten loads a buffer produced by Flatten back into n.
func Unflatten(n Network, buf vec.Vec[float64]) error {
	return network.Unflatten(n, buf)
}
