package network

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/synapse/internal/activation"
	"github.com/born-ml/synapse/internal/vec"
	"github.com/stretchr/testify/require"
)

func newRand() *rand.Rand {
	return newRandSeed(42)
}

func newRandSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 7))
}

func randomVec(r *rand.Rand, n int) vec.Vec[float64] {
	v := vec.Zeros[float64](n)
	for i := 0; i < n; i++ {
		v.Set(i, r.Float64()*4-2)
	}
	return v
}

func randomPerceptron(r *rand.Rand, inputs int, act activation.Func) *Perceptron {
	return NewPerceptron(randomVec(r, inputs), r.Float64()*2-1, act)
}

func randomLayer(t *testing.T, r *rand.Rand, inputs, size int) Layer {
	t.Helper()
	neurons := make([]Neuron, size)
	for i := range neurons {
		neurons[i] = NewNeuron(randomVec(r, inputs), r.Float64()*2-1)
	}
	l, err := NewLayer(neurons...)
	require.NoError(t, err)
	return l
}

func randomFeedForward(t *testing.T, r *rand.Rand, in, width, intermediate, out int, act activation.Func) *FeedForward {
	t.Helper()
	hidden := make([]Layer, intermediate)
	for i := range hidden {
		hidden[i] = randomLayer(t, r, width, width)
	}
	f, err := NewFeedForward(randomLayer(t, r, in, width), hidden, randomLayer(t, r, width, out), act)
	require.NoError(t, err)
	return f
}

func linearPerceptron(weights ...float64) *Perceptron {
	return NewPerceptron(vec.Of(weights), 0, activation.Linear())
}
