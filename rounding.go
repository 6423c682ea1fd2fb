package kalc

import (
	"strconv"
	"strings"
)

// constants maps the first eight characters of a decimal rendering to a
// symbolic name. Estimate consults it after the fraction patterns.
var constants = map[string]string{
	"3.141592": "π",
	"6.283185": "2π",
	"1.570796": "π/2",
	"4.712388": "3π/2",
	"1.047197": "π/3",
	"2.094395": "2π/3",
	"0.318309": "1/π",
	"0.636619": "2/π",
	"2.718281": "e",
	"1.414213": "√2",
	"0.707106": "1/√2",
	"1.732050": "√3",
	"0.577350": "1/√3",
	"1.618033": "φ",
	"0.618033": "1/φ",
}

// Estimate converts the selected component of v into a more meaningful
// form, if one of its heuristics applies: a simple fraction, a symbolic
// constant, a radical, or a rendering with floating-point noise rounded
// away. The reported bool is false when the component is already an exact
// integer, or when no heuristic fires and Round declines.
//
// The heuristics match rendered decimal digits, not exact rationals, so
// they can misfire on values that genuinely carry the scanned digits.
func Estimate(v *Number, c Component) (string, bool) {
	value := v.Component(c)
	valueString := value.Format(10)

	fract := value.Fract().Abs()
	integer := value.Trunc()

	// An exact integer needs nothing done to it.
	if fract.Sign() == 0 {
		return "", false
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}
	abs := strings.TrimPrefix(valueString, "-")

	// Eg. 0.5 to 1/2. Besides the exact rendering, accept 0.500... with
	// trailing noise; renderings of length 4 through 6 fall through.
	if strings.HasPrefix(abs, "0.5") {
		if len(abs) == 3 || len(abs) > 6 && abs[3:5] == "00" {
			return sign + "1/2", true
		}
	}

	// Eg. 0.33333333 to 1/3, 2.66666666 to 2 + 2/3.
	fractString := strconv.FormatFloat(fract.Float64(), 'f', -1, 64)
	if len(fractString) >= 7 {
		var fraction string
		switch fractString[2:7] {
		case "33333":
			fraction = "1/3"
		case "66666":
			fraction = "2/3"
		}
		if fraction != "" {
			if integer.Sign() == 0 {
				return sign + fraction, true
			}
			explicit := "+"
			if sign == "-" {
				explicit = "-"
			}
			return trimZeroes(integer.String()) + " " + explicit + " " + fraction, true
		}
	}

	// Common constants, eg. π, 2π/3, √2.
	if len(abs) >= 8 {
		if name, ok := constants[abs[:8]]; ok {
			return sign + name, true
		}
	}

	// If the square of the value rounds to an integer whose square root
	// is not itself an integer, the value is a radical: √2, √5.
	squared := value.Mul(value)
	if m, ok := roundMagnitude(squared); ok {
		squared = m
	}
	if squared.Sqrt().Fract().Sign() != 0 && squared.Fract().Sign() == 0 {
		return "√" + trimZeroes(squared.String()), true
	}

	// Nothing above was relevant; absorb representation noise if there is
	// any, eg. 0.99999999 to 1.
	rounded, ok := Round(v, c)
	if !ok {
		return "", false
	}
	s := rounded.Component(c).String()
	if s == "-0" {
		s = "0"
	}
	return trimZeroes(s), true
}

// Round absorbs floating-point representation noise when the selected
// component of v is within a magnitude threshold of an integer. The other
// component and the unit tag are untouched. The reported bool is false
// when no rounding is warranted; Round does not round arbitrary values.
func Round(v *Number, c Component) (*Number, bool) {
	m, ok := roundMagnitude(v.Component(c))
	if !ok {
		return nil, false
	}
	if c == Imaginary {
		return &Number{real: v.real, imag: m, unit: v.unit}, true
	}
	return &Number{real: m, imag: v.imag, unit: v.unit}, true
}

func roundMagnitude(value Magnitude) (Magnitude, bool) {
	neg := value.Sign() < 0
	fract := value.Abs().Fract()
	integer := value.Abs().Trunc()

	// Values with a zero integer part round less aggressively toward an
	// integer, so small legitimate fractions survive while near-exact
	// larger results still collapse.
	limitFloor, limitCeil := -4.0, -6.0
	if integer.Sign() == 0 {
		limitFloor, limitCeil = -8.0, -5.0
	}

	switch {
	case fract.Log10() < limitFloor:
		// Eg. 1.000000000001: the fraction is negligible.
		if neg {
			integer = integer.Neg()
		}
		return integer, true
	case fract.FromFloat(1).Sub(fract).Log10() < limitCeil:
		// Eg. 0.999999999: within noise of the next integer. Ceil the
		// absolute value and re-apply the sign so negative values round
		// away from zero.
		m := value.Abs().Ceil()
		if neg {
			m = m.Neg()
		}
		return m, true
	}
	return nil, false
}

// trimZeroes removes trailing zeroes after a decimal point, and the point
// itself if nothing else follows it. It is purely lexical; strings
// without a decimal point pass through unchanged.
func trimZeroes(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
