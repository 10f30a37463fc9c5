// Package network implements the network abstraction, the two primitive
// network kinds (Perceptron and FeedForward), and the combinators that build
// new networks out of existing ones.
package network

import (
	"fmt"
	"reflect"

	"github.com/born-ml/synapse/internal/vec"
)

// Network is the interface implemented by every network kind, primitive or
// composite.
//
// A network has a fixed port signature: Feed accepts exactly InputSize()
// values and returns exactly OutputSize() values. Combinators only ever look
// at the port signature of their constituents, so anything implementing
// Network can be nested inside them.
type Network interface {
	// InputSize returns the length of the vector accepted by Feed.
	InputSize() int

	// OutputSize returns the length of the vector returned by Feed.
	OutputSize() int

	// Feed evaluates the network on input and returns a newly allocated output.
	//
	// Feed never modifies the network. An input whose length differs from
	// InputSize() is a programming error and panics.
	Feed(input vec.Vec[float64]) vec.Vec[float64]

	// StateDict returns copies of all parameters in canonical order.
	StateDict() StateDict

	// LoadStateDict replaces the parameters with the entries of sd.
	//
	// Every entry returned by StateDict must be present with the same length.
	// Returns an error and leaves the network unchanged otherwise.
	LoadStateDict(sd StateDict) error
}

// Port is the port signature of a network: its input and output lengths.
type Port struct {
	In  int
	Out int
}

// PortOf returns the port signature of n.
func PortOf(n Network) Port {
	return Port{In: n.InputSize(), Out: n.OutputSize()}
}

// String formats the port as "in->out".
func (p Port) String() string {
	return fmt.Sprintf("%d->%d", p.In, p.Out)
}

// checkInput panics if input does not have the expected length.
func checkInput(op string, want int, input vec.Vec[float64]) {
	if input.Len() != want {
		panic(fmt.Sprintf("%s: expected input of length %d, got %d", op, want, input.Len()))
	}
}

// isNil reports whether n is nil or an interface wrapping a nil pointer.
func isNil(n Network) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
