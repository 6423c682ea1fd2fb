package kalc

import "math"

// builtin is a function of fully evaluated arguments.
type builtin struct {
	arity int
	fn    func(in *interp, args []*Number) (*Number, error)
}

var builtins = map[string]builtin{
	"abs":   {1, absFn},
	"sqrt":  {1, sqrtFn},
	"sin":   {1, trigFn("sin", math.Sin)},
	"cos":   {1, trigFn("cos", math.Cos)},
	"tan":   {1, trigFn("tan", math.Tan)},
	"ln":    {1, lnFn},
	"log":   {1, logFn},
	"exp":   {1, expFn},
	"floor": {1, floorFn},
	"ceil":  {1, ceilFn},
}

// absFn is the absolute value for reals and the modulus for complex
// values. It also serves the |x| syntax.
func absFn(in *interp, args []*Number) (*Number, error) {
	v := args[0]
	if v.imag.Sign() == 0 {
		return in.real(v.real.Abs()), nil
	}
	a, b := v.real, v.imag
	return in.real(a.Mul(a).Add(b.Mul(b)).Sqrt()), nil
}

// sqrtFn takes the square root of a real. A negative argument produces a
// purely imaginary result.
func sqrtFn(in *interp, args []*Number) (*Number, error) {
	v := args[0]
	if v.imag.Sign() != 0 {
		return nil, &DomainError{X: v.imag, Func: "sqrt"}
	}
	if v.real.Sign() < 0 {
		return &Number{
			real: in.backend.FromFloat(0),
			imag: v.real.Abs().Sqrt(),
		}, nil
	}
	return in.real(v.real.Sqrt()), nil
}

// trigFn wraps a float64 trigonometric function. Neither backend computes
// trigonometry at arbitrary precision, so arguments go through float64.
func trigFn(name string, f func(float64) float64) func(in *interp, args []*Number) (*Number, error) {
	return func(in *interp, args []*Number) (*Number, error) {
		v := args[0]
		if v.imag.Sign() != 0 {
			return nil, &DomainError{X: v.imag, Func: name}
		}
		rad := in.toRadians(v)
		return in.real(in.backend.FromFloat(f(rad.Float64()))), nil
	}
}

// toRadians converts a trig argument to radians. The value's own unit tag
// overrides the session angle convention; untagged values follow it.
func (in *interp) toRadians(v *Number) Magnitude {
	if v.unit == "deg" || v.unit == "" && in.angle == Degrees {
		return v.real.Mul(in.backend.Pi()).Div(v.real.FromFloat(180))
	}
	return v.real
}

func lnFn(in *interp, args []*Number) (*Number, error) {
	v := args[0]
	if v.imag.Sign() != 0 || v.real.Sign() <= 0 {
		return nil, &DomainError{X: v.real, Func: "ln"}
	}
	return in.real(v.real.Ln()), nil
}

// logFn is the base-10 logarithm, computed as a ratio of natural
// logarithms.
func logFn(in *interp, args []*Number) (*Number, error) {
	v := args[0]
	if v.imag.Sign() != 0 || v.real.Sign() <= 0 {
		return nil, &DomainError{X: v.real, Func: "log"}
	}
	ten := v.real.FromFloat(10)
	return in.real(v.real.Ln().Div(ten.Ln())), nil
}

func expFn(in *interp, args []*Number) (*Number, error) {
	v := args[0]
	if v.imag.Sign() != 0 {
		return nil, &DomainError{X: v.imag, Func: "exp"}
	}
	return in.real(v.real.Exp()), nil
}

func floorFn(in *interp, args []*Number) (*Number, error) {
	return in.real(args[0].real.Floor()), nil
}

func ceilFn(in *interp, args []*Number) (*Number, error) {
	return in.real(args[0].real.Ceil()), nil
}

// DomainError is an error from an operation applied to a value outside
// its domain.
type DomainError struct {
	// X is the out-of-domain value.
	X Magnitude
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Func
}
