package network

import (
	"fmt"
	"strings"

	"github.com/born-ml/synapse/internal/vec"
)

// Entry is a named parameter buffer.
type Entry struct {
	Name   string
	Values vec.Vec[float64]
}

// StateDict is an ordered list of named parameter buffers.
//
// Names are dotted paths such as "weights", "first.0.bias" or
// "left.output.1.weights". The order of the entries is the canonical
// parameter order of the network, which is also the order used by Flatten.
// Scalar parameters (biases) are stored as length-1 entries.
type StateDict []Entry

// Lookup returns the values stored under name.
func (sd StateDict) Lookup(name string) (vec.Vec[float64], bool) {
	for _, e := range sd {
		if e.Name == name {
			return e.Values, true
		}
	}
	return vec.Vec[float64]{}, false
}

// Len returns the total number of values across all entries.
func (sd StateDict) Len() int {
	n := 0
	for _, e := range sd {
		n += e.Values.Len()
	}
	return n
}

// WithPrefix returns a copy of sd with every name prefixed by "prefix.".
func (sd StateDict) WithPrefix(prefix string) StateDict {
	out := make(StateDict, len(sd))
	for i, e := range sd {
		out[i] = Entry{Name: prefix + "." + e.Name, Values: e.Values}
	}
	return out
}

// Sub returns the entries whose name starts with "prefix.", with the prefix removed.
func (sd StateDict) Sub(prefix string) StateDict {
	var out StateDict
	p := prefix + "."
	for _, e := range sd {
		if name, ok := strings.CutPrefix(e.Name, p); ok {
			out = append(out, Entry{Name: name, Values: e.Values})
		}
	}
	return out
}

// conform checks that given holds every entry of expected with the same length.
func conform(expected, given StateDict) error {
	for _, want := range expected {
		got, ok := given.Lookup(want.Name)
		if !ok {
			return fmt.Errorf("%s: %w", want.Name, ErrMissingParam)
		}
		if got.Len() != want.Values.Len() {
			return fmt.Errorf("%s: %w", want.Name, &vec.LengthError{Expected: want.Values.Len(), Got: got.Len()})
		}
	}
	return nil
}

// ParamCount returns the number of scalar parameters of n.
func ParamCount(n Network) int {
	return n.StateDict().Len()
}

// Flatten concatenates the parameters of n into a single buffer, in state
// dict order.
//
// For a Perceptron this is its weights followed by its bias.
func Flatten(n Network) vec.Vec[float64] {
	sd := n.StateDict()
	out := vec.Zeros[float64](sd.Len())
	data := out.Data()
	off := 0
	for _, e := range sd {
		off += copy(data[off:], e.Values.Data())
	}
	return out
}

// Unflatten loads a buffer produced by Flatten back into n.
//
// buf must hold exactly ParamCount(n) values. On error n is unchanged.
func Unflatten(n Network, buf vec.Vec[float64]) error {
	sd := n.StateDict()
	if buf.Len() != sd.Len() {
		return fmt.Errorf("unflatten: %w", &vec.LengthError{Expected: sd.Len(), Got: buf.Len()})
	}
	data := buf.Data()
	off := 0
	for i, e := range sd {
		l := e.Values.Len()
		sd[i].Values = vec.Of(data[off : off+l])
		off += l
	}
	return n.LoadStateDict(sd)
}

// scalarEntry wraps a scalar parameter as a length-1 entry.
func scalarEntry(name string, x float64) Entry {
	return Entry{Name: name, Values: vec.New(x)}
}
