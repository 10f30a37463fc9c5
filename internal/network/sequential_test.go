package network

import (
	"errors"
	"testing"

	"github.com/born-ml/synapse/internal/activation"
	"github.com/born-ml/synapse/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequential(t *testing.T) {
	r := newRand()
	a := randomFeedForward(t, r, 4, 6, 1, 3, activation.ReLU())
	b := randomPerceptron(r, 3, activation.Sigmoid())
	double := linearPerceptron(2)

	model, err := NewSequential(a, b, double)
	require.NoError(t, err)

	assert.Equal(t, 3, model.Len())
	assert.Equal(t, Port{In: 4, Out: 1}, PortOf(model))
	assert.Same(t, b, model.Network(1))

	x := randomVec(r, 4)
	assert.True(t, vec.Equal(double.Feed(b.Feed(a.Feed(x))), model.Feed(x)))
}

func TestSequentialMatchesAndThen(t *testing.T) {
	double := linearPerceptron(2)

	model, err := NewSequential(double, double, double)
	require.NoError(t, err)
	inner, err := NewAndThen(double, double)
	require.NoError(t, err)
	chained, err := NewAndThen(inner, double)
	require.NoError(t, err)

	x := vec.New(1.5)
	assert.Equal(t, []float64{12}, model.Feed(x).Slice())
	assert.True(t, vec.Equal(chained.Feed(x), model.Feed(x)))
}

func TestSequentialErrors(t *testing.T) {
	_, err := NewSequential()
	assert.True(t, errors.Is(err, ErrEmptyNetwork))

	_, err = NewSequential(linearPerceptron(1), linearPerceptron(1, 1))
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	model, err := NewSequential(linearPerceptron(1))
	require.NoError(t, err)
	_, err = model.Add(nil)
	assert.True(t, errors.Is(err, ErrNilNetwork))
	assert.Equal(t, 1, model.Len())

	_, err = model.Add(linearPerceptron(1, 1))
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	assert.Panics(t, func() { model.Network(1) })
}

func TestSequentialAddKeepsReceiver(t *testing.T) {
	inner, err := NewSequential(linearPerceptron(2))
	require.NoError(t, err)
	c, err := NewAndThen(inner, linearPerceptron(3))
	require.NoError(t, err)

	replicated, err := NewReplicate(linearPerceptron(1), linearPerceptron(1))
	require.NoError(t, err)
	grown, err := inner.Add(replicated)
	require.NoError(t, err)

	assert.Equal(t, Port{In: 1, Out: 2}, PortOf(grown))
	assert.Equal(t, 2, grown.Len())
	assert.Equal(t, Port{In: 1, Out: 1}, PortOf(inner))
	assert.Equal(t, 1, inner.Len())
	assert.Equal(t, []float64{6}, c.Feed(vec.New(1.0)).Slice())
	assert.Equal(t, []float64{2, 2}, grown.Feed(vec.New(1.0)).Slice())

	// Appending twice to the same base must not share storage.
	a, err := grown.Add(linearPerceptron(1, 0))
	require.NoError(t, err)
	b, err := grown.Add(linearPerceptron(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, a.Feed(vec.New(1.0)).Slice())
	assert.Equal(t, []float64{2}, b.Feed(vec.New(1.0)).Slice())
	assert.NotSame(t, a.Network(2), b.Network(2))
}

func TestSequentialStateDict(t *testing.T) {
	model, err := NewSequential(
		NewPerceptron(vec.New(1.0), 2, activation.Linear()),
		NewPerceptron(vec.New(3.0), 4, activation.Linear()),
	)
	require.NoError(t, err)

	sd := model.StateDict()
	require.Len(t, sd, 4)
	assert.Equal(t, "0.weights", sd[0].Name)
	assert.Equal(t, "1.bias", sd[3].Name)

	require.NoError(t, Unflatten(model, vec.New(5.0, 6.0, 7.0, 8.0)))
	assert.Equal(t, []float64{7*(5*9+6) + 8}, model.Feed(vec.New(9.0)).Slice())
}
