package activation

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/born-ml/synapse/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClosedFormValues(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		x    float64
		want float64
	}{
		{"sigmoid at zero", Sigmoid(), 0, 0.5},
		{"relu negative", ReLU(), -3, 0},
		{"relu positive", ReLU(), 3, 3},
		{"binary step just below zero", BinaryStep(), -0.001, 0},
		{"binary step at zero", BinaryStep(), 0, 1},
		{"binary step positive", BinaryStep(), 2, 1},
		{"linear", Linear(), -7.5, -7.5},
		{"tanh at zero", Tanh(), 0, 0},
		{"leaky relu positive", LeakyReLU(0.1), 4, 4},
		{"leaky relu negative", LeakyReLU(0.1), -2, 0.2},
		{"elu positive", ELU(), 2, 2},
		{"elu at zero", ELU(), 0, 0},
		{"swish at zero", Swish(), 0, 0},
		{"gelu at zero", GELU(), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn.Activate(tt.x), 1e-12)
		})
	}
}

func TestFormulas(t *testing.T) {
	assert.InDelta(t, 0.4621172, Tanh().Activate(0.5), 1e-6)
	assert.InDelta(t, math.Exp(-1)-1, ELU().Activate(-1), 1e-12)
	assert.InDelta(t, 2*(math.Exp(-1)-1), ParamELU(2).Activate(-1), 1e-12)
	assert.InDelta(t, 0.7310586, Swish().Activate(1), 1e-6)
	assert.InDelta(t, 0.8411920, GELU().Activate(1), 1e-5)
	assert.InDelta(t, -0.1588080, GELU().Activate(-1), 1e-5)
	assert.InDelta(t, 1/(1+math.Exp(-2)), Sigmoid().Activate(2), 1e-12)
}

func TestZeroValueIsLinear(t *testing.T) {
	var f Func
	assert.Equal(t, Linear(), f)
	assert.Equal(t, 3.25, f.Activate(3.25))
}

func TestComparable(t *testing.T) {
	assert.True(t, LeakyReLU(0.2) == LeakyReLU(0.2))
	assert.False(t, LeakyReLU(0.2) == LeakyReLU(0.3))
	assert.False(t, ReLU() == Linear())
	assert.True(t, ELU() == ParamELU(1))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, LeakyReLU(DefaultLeakyFactor), Default(KindLeakyReLU))
	assert.Equal(t, ELU(), Default(KindELU))
	assert.Equal(t, Sigmoid(), Default(KindSigmoid))

	unknown := Default(Kind(99))
	assert.Equal(t, Linear(), unknown)
	assert.Equal(t, "linear", unknown.String())

	data, err := json.Marshal(unknown)
	require.NoError(t, err)
	var decoded Func
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, unknown, decoded)
}

func TestLeakyReLUNegativeInput(t *testing.T) {
	assert.InDelta(t, 0.2, LeakyReLU(0.1).Activate(-2), 1e-12)
	assert.Equal(t, 3.0, LeakyReLU(0.1).Activate(3))
}

func TestApplyTo(t *testing.T) {
	in := vec.New(-1.0, 0.0, 2.0)
	out := ReLU().ApplyTo(in)

	assert.Equal(t, []float64{0, 0, 2}, out.Slice())
	assert.Equal(t, []float64{-1, 0, 2}, in.Slice(), "input must not be modified")
}

func TestStringAndParse(t *testing.T) {
	for _, kind := range Kinds() {
		f := Default(kind)
		parsed, err := Parse(f.String())
		require.NoError(t, err, f.String())
		assert.Equal(t, f, parsed)
	}

	assert.Equal(t, "leaky_relu(0.25)", LeakyReLU(0.25).String())

	f, err := Parse("elu(0.5)")
	require.NoError(t, err)
	assert.Equal(t, ParamELU(0.5), f)

	f, err = Parse("leaky_relu")
	require.NoError(t, err)
	assert.Equal(t, LeakyReLU(DefaultLeakyFactor), f)

	_, err = Parse("softmax")
	assert.True(t, errors.Is(err, ErrUnknownKind))

	_, err = Parse("relu(2)")
	assert.Error(t, err)

	_, err = Parse("elu(abc)")
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	for _, f := range []Func{Linear(), BinaryStep(), Sigmoid(), Tanh(), ReLU(), LeakyReLU(0.3), ParamELU(1.5), Swish(), GELU()} {
		data, err := json.Marshal(f)
		require.NoError(t, err)

		var decoded Func
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, f, decoded, string(data))
	}
}

func TestJSONEncoding(t *testing.T) {
	data, err := json.Marshal(ReLU())
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "relu"}`, string(data))

	data, err = json.Marshal(LeakyReLU(0.05))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "leaky_relu", "factor": 0.05}`, string(data))
}

func TestJSONDecodeErrors(t *testing.T) {
	var f Func
	err := json.Unmarshal([]byte(`{"kind": "softplus"}`), &f)
	assert.True(t, errors.Is(err, ErrUnknownKind))

	err = json.Unmarshal([]byte(`{"kind": "tanh", "factor": 2}`), &f)
	assert.Error(t, err)

	require.NoError(t, json.Unmarshal([]byte(`{"kind": "elu"}`), &f))
	assert.Equal(t, ELU(), f)
}

func TestYAMLRoundTrip(t *testing.T) {
	for _, f := range []Func{Sigmoid(), LeakyReLU(0.02), ParamELU(0.7)} {
		data, err := yaml.Marshal(f)
		require.NoError(t, err)

		var decoded Func
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, f, decoded)
	}
}
