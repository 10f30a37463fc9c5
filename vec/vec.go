// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/born-ml/synapse/internal/vec"
)

// Vec is a fixed-length vector of T.
type Vec[T any] = vec.Vec[T]

// LengthError reports a length mismatch while decoding or loading a vector.
type LengthError = vec.LengthError

// ErrLength is wrapped by every *LengthError.
var ErrLength = vec.ErrLength

// New creates a vector holding values.
//
// Example:
//
//	x := vec.New(1.0, 2.0) // Vec[float64] of length 2
func New[T any](values ...T) Vec[T] {
	return vec.New(values...)
}

// Of creates a vector holding a copy of values.
func Of[T any](values []T) Vec[T] {
	return vec.Of(values)
}

// Zeros creates a vector of n zero values.
func Zeros[T any](n int) Vec[T] {
	return vec.Zeros[T](n)
}

// Concat returns a new vector holding a followed by b.
func Concat[T any](a, b Vec[T]) Vec[T] {
	return vec.Concat(a, b)
}

// Equal reports whether a and b have the same length and elements.
func Equal[T comparable](a, b Vec[T]) bool {
	return vec.Equal(a, b)
}
