// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides statically shaped feed-forward networks and the
// combinators that compose them.
//
// # Overview
//
// Every network implements the Network interface: a fixed port signature
// (InputSize, OutputSize), a stateless Feed, and a StateDict of named
// parameters. This package contains:
//   - Primitives: Perceptron, FeedForward (built from Layer and Neuron)
//   - Combinators: AndThen, Alongside, Replicate, Sequential
//   - Parameters: StateDict, Flatten, Unflatten, ParamCount
//   - Serialization: JSON and YAML codecs on every network kind
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/synapse/activation"
//	    "github.com/born-ml/synapse/network"
//	    "github.com/born-ml/synapse/vec"
//	)
//
//	func main() {
//	    double := network.NewPerceptron(vec.New(2.0), 0, activation.Linear())
//
//	    quadruple, err := network.NewAndThen(double, double)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    out := quadruple.Feed(vec.New(2.0)) // [8]
//	}
//
// # Shapes
//
// Port signatures are checked when a composite is built. NewAndThen,
// NewReplicate, NewSequential and NewFeedForward return a *ShapeError
// (wrapping ErrShapeMismatch) for incompatible constituents, so Feed on a
// constructed network never sees a mismatch. Feeding an input of the wrong
// length is a programming error and panics.
//
// # Serialization
//
// Networks decode into an already constructed receiver of the same shape:
//
//	model := network.NewPerceptron(vec.Zeros[float64](2), 0, activation.Linear())
//	if err := json.Unmarshal(data, model); err != nil {
//	    return err
//	}
//
// Vectors of the wrong length are rejected with a *vec.LengthError and the
// receiver is left unchanged. Parameters may be NaN or ±Inf; such networks
// only round-trip through YAML, since JSON has no encoding for them.
package network
