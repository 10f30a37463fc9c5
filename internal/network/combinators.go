package network

import (
	"fmt"

	"github.com/born-ml/synapse/internal/vec"
)

// AndThen feeds the output of one network into another.
//
// The port signature is (left.In, right.Out). Because AndThen is generic over
// its constituents, Feed calls their Feed methods without dynamic dispatch
// when concrete types are used.
type AndThen[L, R Network] struct {
	left  L
	right R
}

// NewAndThen composes left and right in sequence.
//
// Returns a *ShapeError if left.OutputSize() != right.InputSize().
//
// Example:
//
//	double := network.NewPerceptron(vec.New(2.0), 0, activation.Linear())
//	quadruple, err := network.NewAndThen(double, double)
//	out := quadruple.Feed(vec.New(2.0)) // [8]
func NewAndThen[L, R Network](left L, right R) (*AndThen[L, R], error) {
	if isNil(left) || isNil(right) {
		return nil, fmt.Errorf("and_then: %w", ErrNilNetwork)
	}
	if left.OutputSize() != right.InputSize() {
		return nil, &ShapeError{
			Op:      "and_then",
			Left:    PortOf(left),
			Right:   PortOf(right),
			Details: fmt.Sprintf("output %d != input %d", left.OutputSize(), right.InputSize()),
		}
	}
	return &AndThen[L, R]{left: left, right: right}, nil
}

// Left returns the network evaluated first.
func (c *AndThen[L, R]) Left() L { return c.left }

// Right returns the network evaluated second.
func (c *AndThen[L, R]) Right() R { return c.right }

// InputSize returns the input size of the left network.
func (c *AndThen[L, R]) InputSize() int { return c.left.InputSize() }

// OutputSize returns the output size of the right network.
func (c *AndThen[L, R]) OutputSize() int { return c.right.OutputSize() }

// Feed returns right.Feed(left.Feed(input)).
func (c *AndThen[L, R]) Feed(input vec.Vec[float64]) vec.Vec[float64] {
	return c.right.Feed(c.left.Feed(input))
}

// StateDict returns the parameters of both networks under "left." and "right.".
func (c *AndThen[L, R]) StateDict() StateDict {
	return joinStateDicts("left", c.left, "right", c.right)
}

// LoadStateDict loads the parameters of both networks.
func (c *AndThen[L, R]) LoadStateDict(sd StateDict) error {
	return loadPair(c.StateDict(), sd, "left", c.left, "right", c.right)
}

// Alongside evaluates two networks side by side on disjoint parts of the input.
//
// The port signature is (first.In + second.In, first.Out + second.Out). The
// first first.In values of the input go to first, the rest to second, and the
// outputs are concatenated in the same order.
type Alongside[A, B Network] struct {
	first  A
	second B
}

// NewAlongside places first and second side by side. Any two non-nil
// networks can be combined this way.
//
// Example:
//
//	double := network.NewPerceptron(vec.New(2.0), 0, activation.Linear())
//	both, err := network.NewAlongside(double, double)
//	out := both.Feed(vec.New(1.0, 2.0)) // [2 4]
func NewAlongside[A, B Network](first A, second B) (*Alongside[A, B], error) {
	if isNil(first) || isNil(second) {
		return nil, fmt.Errorf("alongside: %w", ErrNilNetwork)
	}
	return &Alongside[A, B]{first: first, second: second}, nil
}

// Combine is an alias for NewAlongside.
func Combine[A, B Network](first A, second B) (*Alongside[A, B], error) {
	return NewAlongside(first, second)
}

// First returns the network that reads the input prefix.
func (c *Alongside[A, B]) First() A { return c.first }

// Second returns the network that reads the input suffix.
func (c *Alongside[A, B]) Second() B { return c.second }

// InputSize returns first.In + second.In.
func (c *Alongside[A, B]) InputSize() int {
	return c.first.InputSize() + c.second.InputSize()
}

// OutputSize returns first.Out + second.Out.
func (c *Alongside[A, B]) OutputSize() int {
	return c.first.OutputSize() + c.second.OutputSize()
}

// Feed splits input, feeds both halves, and concatenates the outputs.
func (c *Alongside[A, B]) Feed(input vec.Vec[float64]) vec.Vec[float64] {
	checkInput("Alongside.Feed", c.InputSize(), input)
	head, tail := input.Split(c.first.InputSize())
	return vec.Concat(c.first.Feed(head), c.second.Feed(tail))
}

// StateDict returns the parameters of both networks under "first." and "second.".
func (c *Alongside[A, B]) StateDict() StateDict {
	return joinStateDicts("first", c.first, "second", c.second)
}

// LoadStateDict loads the parameters of both networks.
func (c *Alongside[A, B]) LoadStateDict(sd StateDict) error {
	return loadPair(c.StateDict(), sd, "first", c.first, "second", c.second)
}

// Replicate feeds the same input to two networks and concatenates their outputs.
//
// The port signature is (I, first.Out + second.Out).
type Replicate[A, B Network] struct {
	first  A
	second B
}

// NewReplicate combines two networks that share an input size.
//
// Returns a *ShapeError if first.InputSize() != second.InputSize().
//
// Example:
//
//	x2 := network.NewPerceptron(vec.New(2.0), 0, activation.Linear())
//	x6 := network.NewPerceptron(vec.New(6.0), 0, activation.Linear())
//	both, err := network.NewReplicate(x2, x6)
//	out := both.Feed(vec.New(1.0)) // [2 6]
func NewReplicate[A, B Network](first A, second B) (*Replicate[A, B], error) {
	if isNil(first) || isNil(second) {
		return nil, fmt.Errorf("replicate_with: %w", ErrNilNetwork)
	}
	if first.InputSize() != second.InputSize() {
		return nil, &ShapeError{
			Op:      "replicate_with",
			Left:    PortOf(first),
			Right:   PortOf(second),
			Details: fmt.Sprintf("input %d != input %d", first.InputSize(), second.InputSize()),
		}
	}
	return &Replicate[A, B]{first: first, second: second}, nil
}

// First returns the network whose output comes first.
func (c *Replicate[A, B]) First() A { return c.first }

// Second returns the network whose output comes second.
func (c *Replicate[A, B]) Second() B { return c.second }

// InputSize returns the shared input size.
func (c *Replicate[A, B]) InputSize() int {
	return c.first.InputSize()
}

// OutputSize returns first.Out + second.Out.
func (c *Replicate[A, B]) OutputSize() int {
	return c.first.OutputSize() + c.second.OutputSize()
}

// Feed evaluates both networks on input and concatenates the outputs.
func (c *Replicate[A, B]) Feed(input vec.Vec[float64]) vec.Vec[float64] {
	return vec.Concat(c.first.Feed(input), c.second.Feed(input))
}

// StateDict returns the parameters of both networks under "first." and "second.".
func (c *Replicate[A, B]) StateDict() StateDict {
	return joinStateDicts("first", c.first, "second", c.second)
}

// LoadStateDict loads the parameters of both networks.
func (c *Replicate[A, B]) LoadStateDict(sd StateDict) error {
	return loadPair(c.StateDict(), sd, "first", c.first, "second", c.second)
}

func joinStateDicts(ap string, a Network, bp string, b Network) StateDict {
	return append(a.StateDict().WithPrefix(ap), b.StateDict().WithPrefix(bp)...)
}

// loadPair validates sd against expected before touching either network, so a
// failed load leaves both unchanged.
func loadPair(expected, sd StateDict, ap string, a Network, bp string, b Network) error {
	if err := conform(expected, sd); err != nil {
		return err
	}
	if err := a.LoadStateDict(sd.Sub(ap)); err != nil {
		return fmt.Errorf("%s: %w", ap, err)
	}
	if err := b.LoadStateDict(sd.Sub(bp)); err != nil {
		return fmt.Errorf("%s: %w", bp, err)
	}
	return nil
}
