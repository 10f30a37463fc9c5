// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the catalog of scalar activation functions
// applied by perceptrons and feed-forward networks.
//
// The catalog is closed: Linear, BinaryStep, Sigmoid, Tanh, ReLU, LeakyReLU,
// ELU, Swish and GELU. LeakyReLU and ELU carry a factor. Func values are
// comparable and encode to JSON and YAML as {"kind": ..., "factor": ...}.
//
// Example:
//
//	act := activation.LeakyReLU(0.1)
//	y := act.Activate(-2) // 0.2
//
//	parsed, err := activation.Parse("elu(0.5)")
package activation

import (
	"github.com/born-ml/synapse/internal/activation"
)

// Func is an activation function from the catalog.
type Func = activation.Func

// Kind identifies a variant of the catalog.
type Kind = activation.Kind

// Catalog variants.
const (
	KindLinear     Kind = activation.KindLinear
	KindBinaryStep Kind = activation.KindBinaryStep
	KindSigmoid    Kind = activation.KindSigmoid
	KindTanh       Kind = activation.KindTanh
	KindReLU       Kind = activation.KindReLU
	KindLeakyReLU  Kind = activation.KindLeakyReLU
	KindELU        Kind = activation.KindELU
	KindSwish      Kind = activation.KindSwish
	KindGELU       Kind = activation.KindGELU
)

// Default factors of the parameterized variants.
const (
	DefaultLeakyFactor = activation.DefaultLeakyFactor
	DefaultELUFactor   = activation.DefaultELUFactor
)

// ErrUnknownKind is returned for names outside the catalog.
var ErrUnknownKind = activation.ErrUnknownKind

// Linear returns the identity.
func Linear() Func { return activation.Linear() }

// BinaryStep returns 1 for x >= 0, else 0.
func BinaryStep() Func { return activation.BinaryStep() }

// Sigmoid returns 1/(1+e^-x).
func Sigmoid() Func { return activation.Sigmoid() }

// Tanh returns the hyperbolic tangent.
func Tanh() Func { return activation.Tanh() }

// ReLU returns max(0, x).
func ReLU() Func { return activation.ReLU() }

// LeakyReLU returns max(x, -factor·x).
func LeakyReLU(factor float64) Func { return activation.LeakyReLU(factor) }

// ELU returns the exponential linear unit with factor 1.
func ELU() Func { return activation.ELU() }

// ParamELU returns the exponential linear unit with factor a.
func ParamELU(a float64) Func { return activation.ParamELU(a) }

// Swish returns x·sigmoid(x).
func Swish() Func { return activation.Swish() }

// GELU returns the tanh approximation of the Gaussian error linear unit.
func GELU() Func { return activation.GELU() }

// Default returns the instance of kind with its default factor. Kinds outside
// the catalog yield Linear.
func Default(kind Kind) Func { return activation.Default(kind) }

// Kinds returns every variant of the catalog.
func Kinds() []Kind { return activation.Kinds() }

// ParseKind parses a variant name such as "leaky_relu".
func ParseKind(name string) (Kind, error) { return activation.ParseKind(name) }

// Parse parses the String form of a Func, such as "relu" or "leaky_relu(0.2)".
func Parse(s string) (Func, error) { return activation.Parse(s) }
