package kalc

import "strconv"

// Magnitude is one real component of a Number. Implementations are
// immutable: every operation returns a new value and leaves the receiver
// untouched. Mixing magnitudes from different backends is not supported.
type Magnitude interface {
	Add(Magnitude) Magnitude
	Sub(Magnitude) Magnitude
	Mul(Magnitude) Magnitude
	Div(Magnitude) Magnitude
	// Pow raises the receiver to the given power. The receiver must not
	// be negative; the evaluator handles signs before calling.
	Pow(Magnitude) Magnitude
	Neg() Magnitude
	Abs() Magnitude
	// Fract returns the fractional part, with the sign of the receiver.
	Fract() Magnitude
	// Trunc returns the integer part, truncated toward zero.
	Trunc() Magnitude
	Floor() Magnitude
	Ceil() Magnitude
	// Sqrt returns the square root. The receiver must not be negative.
	Sqrt() Magnitude
	// Exp and Ln are the natural exponential and logarithm. Ln requires a
	// positive receiver.
	Exp() Magnitude
	Ln() Magnitude
	// Log10 is used only for order-of-magnitude comparisons during
	// rounding, so a float64 result suffices for either backend.
	Log10() float64
	Cmp(Magnitude) int
	Sign() int
	// FromFloat returns f as a new Magnitude in the receiver's backend.
	FromFloat(f float64) Magnitude
	Float64() float64
	// Format renders the value in decimal with up to prec digits after
	// the point, trailing zeroes trimmed.
	Format(prec int) string
	// String renders the shortest decimal that uniquely identifies the
	// value, never using exponent notation.
	String() string
}

// Backend constructs Magnitudes. The two implementations are Float64,
// native floating point, and Big, arbitrary-precision floating point;
// a session selects one with WithBackend.
type Backend interface {
	FromFloat(f float64) Magnitude
	// Parse converts a literal's source text into a Magnitude.
	Parse(s string) (Magnitude, error)
	Pi() Magnitude
	E() Magnitude
}

// LiteralError is an error indicating a numeric literal that does not
// parse as a number, e.g. 1.2.3.
type LiteralError struct {
	// Text is the literal's source text.
	Text string
}

func (err *LiteralError) Error() string {
	return "invalid literal: " + strconv.Quote(err.Text)
}
