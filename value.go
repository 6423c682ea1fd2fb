package kalc

// Component selects the real or imaginary half of a Number.
type Component int

const (
	Real Component = iota
	Imaginary
)

// Number is a complex value with an optional unit tag. The unit is empty
// unless the value came from a deg- or rad-tagged expression; it is
// informational at this layer, except that trigonometric functions let it
// override the session angle unit.
type Number struct {
	real Magnitude
	imag Magnitude
	unit string
}

// NewNumber creates a Number from its components, with no unit tag.
func NewNumber(real, imag Magnitude) *Number {
	return &Number{real: real, imag: imag}
}

// Real returns the real component.
func (n *Number) Real() Magnitude {
	return n.real
}

// Imag returns the imaginary component.
func (n *Number) Imag() Magnitude {
	return n.imag
}

// Unit returns the unit tag, or the empty string for untagged values.
func (n *Number) Unit() string {
	return n.unit
}

// Component returns the selected component.
func (n *Number) Component(c Component) Magnitude {
	if c == Imaginary {
		return n.imag
	}
	return n.real
}

// StringReal renders the real component in decimal with up to prec digits
// after the point.
func (n *Number) StringReal(prec int) string {
	return n.real.Format(prec)
}

// StringImaginary renders the imaginary component in decimal with up to
// prec digits after the point.
func (n *Number) StringImaginary(prec int) string {
	return n.imag.Format(prec)
}

// String renders the full value to ten decimals, with an i suffix on a
// nonzero imaginary component and the unit tag if present.
func (n *Number) String() string {
	s := n.real.Format(10)
	if n.imag.Sign() != 0 {
		im := n.imag.Abs().Format(10) + "i"
		switch {
		case n.real.Sign() == 0 && n.imag.Sign() < 0:
			s = "-" + im
		case n.real.Sign() == 0:
			s = im
		case n.imag.Sign() < 0:
			s += " - " + im
		default:
			s += " + " + im
		}
	}
	if n.unit != "" {
		s += " " + n.unit
	}
	return s
}
