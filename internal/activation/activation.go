// Package activation implements the closed catalog of scalar activation
// functions used by perceptrons and feed-forward layers.
package activation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/born-ml/synapse/internal/vec"
)

// ErrUnknownKind is returned when parsing or decoding an activation name that
// is not part of the catalog.
var ErrUnknownKind = errors.New("unknown activation kind")

// Default parameters for the parameterized variants.
const (
	DefaultLeakyFactor = 0.01
	DefaultELUFactor   = 1.0
)

// sqrt(2/π), used by the tanh approximation of GELU.
var geluScale = math.Sqrt(2 / math.Pi)

// Kind identifies a variant of the activation catalog.
type Kind uint8

// Catalog of activation variants.
const (
	KindLinear Kind = iota
	KindBinaryStep
	KindSigmoid
	KindTanh
	KindReLU
	KindLeakyReLU
	KindELU
	KindSwish
	KindGELU
)

var kindNames = [...]string{
	KindLinear:     "linear",
	KindBinaryStep: "binary_step",
	KindSigmoid:    "sigmoid",
	KindTanh:       "tanh",
	KindReLU:       "relu",
	KindLeakyReLU:  "leaky_relu",
	KindELU:        "elu",
	KindSwish:      "swish",
	KindGELU:       "gelu",
}

// Kinds returns every variant of the catalog in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// String returns the snake_case name of the variant.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Parameterized reports whether the variant carries a factor.
func (k Kind) Parameterized() bool {
	return k == KindLeakyReLU || k == KindELU
}

// ParseKind returns the variant with the given name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Func is a scalar activation function.
//
// Func is a small comparable value: two instances are equal (==) when they
// are the same variant with the same factor. The zero value is Linear.
//
// Example:
//
//	act := activation.LeakyReLU(0.1)
//	y := act.Activate(-2) // 0.2
type Func struct {
	kind   Kind
	factor float64
}

// Linear returns f(x) = x.
func Linear() Func { return Func{kind: KindLinear} }

// BinaryStep returns f(x) = 1 if x >= 0, else 0.
func BinaryStep() Func { return Func{kind: KindBinaryStep} }

// Sigmoid returns f(x) = 1 / (1 + exp(-x)).
func Sigmoid() Func { return Func{kind: KindSigmoid} }

// Tanh returns f(x) = tanh(x).
func Tanh() Func { return Func{kind: KindTanh} }

// ReLU returns f(x) = max(x, 0).
func ReLU() Func { return Func{kind: KindReLU} }

// LeakyReLU returns f(x) = max(x, -factor*x).
func LeakyReLU(factor float64) Func { return Func{kind: KindLeakyReLU, factor: factor} }

// ELU returns the canonical exponential linear unit (factor 1).
func ELU() Func { return ParamELU(DefaultELUFactor) }

// ParamELU returns f(x) = x if x >= 0, else a*(exp(x)-1).
func ParamELU(a float64) Func { return Func{kind: KindELU, factor: a} }

// Swish returns f(x) = x * sigmoid(x).
func Swish() Func { return Func{kind: KindSwish} }

// GELU returns the tanh approximation of the Gaussian error linear unit.
func GELU() Func { return Func{kind: KindGELU} }

// Default returns the canonical instance of a variant. Kinds outside the
// catalog yield Linear, the zero value.
func Default(kind Kind) Func {
	switch {
	case kind == KindLeakyReLU:
		return LeakyReLU(DefaultLeakyFactor)
	case kind == KindELU:
		return ELU()
	case int(kind) >= len(kindNames):
		return Linear()
	default:
		return Func{kind: kind}
	}
}

// Kind returns the variant.
func (f Func) Kind() Kind {
	return f.kind
}

// Factor returns the parameter of LeakyReLU and ELU, and 0 for other variants.
func (f Func) Factor() float64 {
	return f.factor
}

// Parameterized reports whether f carries a factor.
func (f Func) Parameterized() bool {
	return f.kind.Parameterized()
}

// Activate applies the function to x.
func (f Func) Activate(x float64) float64 {
	switch f.kind {
	case KindBinaryStep:
		if x >= 0 {
			return 1
		}
		return 0
	case KindSigmoid:
		return sigmoid(x)
	case KindTanh:
		return math.Tanh(x)
	case KindReLU:
		return math.Max(x, 0)
	case KindLeakyReLU:
		return math.Max(x, -f.factor*x)
	case KindELU:
		if x >= 0 {
			return x
		}
		return f.factor * (math.Exp(x) - 1)
	case KindSwish:
		return x * sigmoid(x)
	case KindGELU:
		return 0.5 * x * (1 + math.Tanh(geluScale*(x+0.044715*x*x*x)))
	default:
		return x
	}
}

// ApplyTo returns a new vector holding f applied to every element of v.
func (f Func) ApplyTo(v vec.Vec[float64]) vec.Vec[float64] {
	out := vec.Zeros[float64](v.Len())
	for i, x := range v.All() {
		out.Set(i, f.Activate(x))
	}
	return out
}

// String renders f as "relu" or, for parameterized variants, "leaky_relu(0.01)".
func (f Func) String() string {
	if f.Parameterized() {
		return f.kind.String() + "(" + strconv.FormatFloat(f.factor, 'g', -1, 64) + ")"
	}
	return f.kind.String()
}

// Parse is the inverse of Func.String.
//
// A parameterized variant named without a factor gets its default factor.
func Parse(s string) (Func, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), "(")
	kind, err := ParseKind(name)
	if err != nil {
		return Func{}, err
	}
	if !hasArg {
		return Default(kind), nil
	}
	if !kind.Parameterized() {
		return Func{}, fmt.Errorf("activation %s takes no parameter", kind)
	}
	arg, ok := strings.CutSuffix(arg, ")")
	if !ok {
		return Func{}, fmt.Errorf("activation %q: missing closing parenthesis", s)
	}
	factor, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return Func{}, fmt.Errorf("activation %q: %w", s, err)
	}
	return Func{kind: kind, factor: factor}, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
