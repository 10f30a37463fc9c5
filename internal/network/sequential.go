package network

import (
	"fmt"
	"slices"

	"github.com/born-ml/synapse/internal/vec"
)

// Sequential is a container network that chains any number of networks.
//
// Each network's output becomes the next network's input, creating a
// sequential pipeline. Adjacent port signatures are checked as networks are
// added, so Feed never sees a shape mismatch.
//
// Example:
//
//	model, err := network.NewSequential(encoder, hidden, decoder)
//	output := model.Feed(input)
//
// This is equivalent to:
//
//	h1 := encoder.Feed(input)
//	h2 := hidden.Feed(h1)
//	output := decoder.Feed(h2)
type Sequential struct {
	networks []Network
}

// NewSequential creates a Sequential container from at least one network.
//
// Returns ErrEmptyNetwork if no networks are given and a *ShapeError if two
// adjacent networks do not fit.
func NewSequential(networks ...Network) (*Sequential, error) {
	if len(networks) == 0 {
		return nil, fmt.Errorf("sequential: %w", ErrEmptyNetwork)
	}
	s := &Sequential{}
	for _, n := range networks {
		next, err := s.Add(n)
		if err != nil {
			return nil, err
		}
		s = next
	}
	return s, nil
}

// Add returns a new Sequential with n appended. The receiver is not modified,
// so composites already built on top of it keep their port signature.
//
// This allows building models incrementally:
//
//	model, _ := network.NewSequential(first)
//	model, err := model.Add(second)
//	if err != nil {
//	    return err
//	}
func (s *Sequential) Add(n Network) (*Sequential, error) {
	if isNil(n) {
		return nil, fmt.Errorf("sequential: network %d: %w", len(s.networks), ErrNilNetwork)
	}
	if len(s.networks) > 0 {
		last := s.networks[len(s.networks)-1]
		if last.OutputSize() != n.InputSize() {
			return nil, &ShapeError{
				Op:    "sequential",
				Left:  PortOf(last),
				Right: PortOf(n),
				Details: fmt.Sprintf("network %d output %d != network %d input %d",
					len(s.networks)-1, last.OutputSize(), len(s.networks), n.InputSize()),
			}
		}
	}
	return &Sequential{networks: append(slices.Clip(s.networks), n)}, nil
}

// Len returns the number of networks in the sequence.
func (s *Sequential) Len() int {
	return len(s.networks)
}

// Network returns the network at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Network(index int) Network {
	if index < 0 || index >= len(s.networks) {
		panic("Sequential.Network: index out of bounds")
	}
	return s.networks[index]
}

// InputSize returns the input size of the first network.
func (s *Sequential) InputSize() int {
	return s.networks[0].InputSize()
}

// OutputSize returns the output size of the last network.
func (s *Sequential) OutputSize() int {
	return s.networks[len(s.networks)-1].OutputSize()
}

// Feed applies all networks in sequence.
func (s *Sequential) Feed(input vec.Vec[float64]) vec.Vec[float64] {
	output := input
	for _, n := range s.networks {
		output = n.Feed(output)
	}
	return output
}

// StateDict returns all parameters, prefixed with their network index
// (e.g., "0.weights", "0.bias", "1.first.0.weights").
func (s *Sequential) StateDict() StateDict {
	var sd StateDict
	for i, n := range s.networks {
		sd = append(sd, n.StateDict().WithPrefix(fmt.Sprint(i))...)
	}
	return sd
}

// LoadStateDict loads parameters prefixed with their network index.
func (s *Sequential) LoadStateDict(sd StateDict) error {
	if err := conform(s.StateDict(), sd); err != nil {
		return fmt.Errorf("sequential: %w", err)
	}
	for i, n := range s.networks {
		if err := n.LoadStateDict(sd.Sub(fmt.Sprint(i))); err != nil {
			return fmt.Errorf("failed to load network %d: %w", i, err)
		}
	}
	return nil
}
