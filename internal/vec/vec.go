// Package vec implements the fixed-length container used for weights, biases,
// and activations throughout synapse.
package vec

import (
	"fmt"
	"iter"
	"slices"
)

// Vec is an ordered sequence of exactly Len() elements.
//
// The length is fixed when the Vec is created and never changes: there is no
// append or resize operation, and decoding into a Vec requires the encoded
// sequence to have exactly Len() elements.
//
// Like a tensor, a Vec refers to its storage. Assigning a Vec to another
// variable shares that storage; use Clone for an independent copy.
//
// The zero Vec has length 0.
type Vec[T any] struct {
	data []T
}

// New creates a Vec holding the given values.
//
// Example:
//
//	weights := vec.New(0.5, -1.0, 2.0) // Len() == 3
func New[T any](values ...T) Vec[T] {
	return Of(values)
}

// Of creates a Vec with a copy of values.
func Of[T any](values []T) Vec[T] {
	data := make([]T, len(values))
	copy(data, values)
	return Vec[T]{data: data}
}

// Zeros creates a Vec of n zero values.
//
// Panics if n is negative.
func Zeros[T any](n int) Vec[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec.Zeros: negative length %d", n))
	}
	return Vec[T]{data: make([]T, n)}
}

// Len returns the number of elements.
func (v Vec[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i.
//
// Panics if i is outside [0, Len()).
func (v Vec[T]) At(i int) T {
	return v.data[i]
}

// Set stores x at index i.
//
// Panics if i is outside [0, Len()).
func (v Vec[T]) Set(i int, x T) {
	v.data[i] = x
}

// All iterates over index/value pairs in order.
func (v Vec[T]) All() iter.Seq2[int, T] {
	return slices.All(v.data)
}

// Slice returns the elements as a newly allocated slice.
func (v Vec[T]) Slice() []T {
	return slices.Clone(v.data)
}

// Data returns the backing storage.
//
// Callers may read and write elements but must not retain the slice past the
// lifetime of the Vec or use it to change the length.
func (v Vec[T]) Data() []T {
	return v.data
}

// Clone returns an independent copy of v.
func (v Vec[T]) Clone() Vec[T] {
	return Of(v.data)
}

// Split returns the first at elements and the remaining Len()-at elements as
// independent vectors.
//
// Panics if at is outside [0, Len()].
func (v Vec[T]) Split(at int) (Vec[T], Vec[T]) {
	if at < 0 || at > len(v.data) {
		panic(fmt.Sprintf("vec.Split: index %d out of range [0, %d]", at, len(v.data)))
	}
	return Of(v.data[:at]), Of(v.data[at:])
}

// String formats the elements like a slice.
func (v Vec[T]) String() string {
	return fmt.Sprint(v.data)
}

// Concat returns a new Vec with the elements of a followed by those of b.
func Concat[T any](a, b Vec[T]) Vec[T] {
	data := make([]T, 0, len(a.data)+len(b.data))
	data = append(data, a.data...)
	data = append(data, b.data...)
	return Vec[T]{data: data}
}

// Equal reports whether a and b have the same length and elements.
func Equal[T comparable](a, b Vec[T]) bool {
	return slices.Equal(a.data, b.data)
}
