package network

import (
	"errors"
	"testing"

	"github.com/born-ml/synapse/internal/activation"
	"github.com/born-ml/synapse/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDictPrefix(t *testing.T) {
	sd := StateDict{
		{Name: "weights", Values: vec.New(1.0, 2.0)},
		{Name: "bias", Values: vec.New(3.0)},
	}

	prefixed := sd.WithPrefix("left")
	assert.Equal(t, "left.weights", prefixed[0].Name)
	assert.Equal(t, "left.bias", prefixed[1].Name)
	assert.Equal(t, "weights", sd[0].Name)

	sub := append(prefixed, sd.WithPrefix("right")...).Sub("left")
	require.Len(t, sub, 2)
	assert.Equal(t, "weights", sub[0].Name)

	values, ok := sub.Lookup("bias")
	require.True(t, ok)
	assert.Equal(t, []float64{3}, values.Slice())

	_, ok = sub.Lookup("left.bias")
	assert.False(t, ok)
}

func TestFlattenUnflattenComposite(t *testing.T) {
	r := newRand()
	a := randomFeedForward(t, r, 3, 4, 1, 2, activation.ReLU())
	b := randomPerceptron(r, 2, activation.Tanh())
	c, err := NewAndThen(a, b)
	require.NoError(t, err)

	flat := Flatten(c)
	assert.Equal(t, ParamCount(c), flat.Len())

	// Load the parameters into a network of the same shape.
	a2 := randomFeedForward(t, r, 3, 4, 1, 2, activation.ReLU())
	b2 := randomPerceptron(r, 2, activation.Tanh())
	c2, err := NewAndThen(a2, b2)
	require.NoError(t, err)
	assert.False(t, vec.Equal(flat, Flatten(c2)))

	require.NoError(t, Unflatten(c2, flat))
	assert.True(t, a.Equal(a2))
	assert.True(t, b.Equal(b2))

	x := randomVec(r, 3)
	assert.True(t, vec.Equal(c.Feed(x), c2.Feed(x)))
}

func TestUnflattenLengthMismatch(t *testing.T) {
	p := NewPerceptron(vec.New(1.0, 2.0), 3, activation.Linear())

	err := Unflatten(p, vec.New(1.0, 2.0))
	var lengthErr *vec.LengthError
	require.True(t, errors.As(err, &lengthErr))
	assert.Equal(t, 3, lengthErr.Expected)
	assert.Equal(t, 2, lengthErr.Got)

	assert.Equal(t, []float64{1, 2, 3}, p.Flatten().Slice())
}
