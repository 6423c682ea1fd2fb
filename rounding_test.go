package kalc

import (
	"math"
	"testing"
)

func num(re, im float64) *Number {
	b := Float64()
	return NewNumber(b.FromFloat(re), b.FromFloat(im))
}

func TestEstimate(t *testing.T) {
	cases := []struct {
		name string
		re   float64
		want string
		ok   bool
	}{
		{"integer", 3, "", false},
		{"zero", 0, "", false},
		{"half", 0.5, "1/2", true},
		{"negative-half", -0.5, "-1/2", true},
		{"half-with-noise", 0.5000000001, "1/2", true},
		{"not-quite-half", 0.5001, "", false},
		{"one-third", 0.33333333, "1/3", true},
		{"two-thirds", 0.66666666, "2/3", true},
		{"negative-third", -0.33333333, "-1/3", true},
		{"mixed-thirds", 2.6666666, "2 + 2/3", true},
		{"negative-mixed-thirds", -1.3333333, "-1 - 1/3", true},
		{"pi", math.Pi, "π", true},
		{"two-pi", 2 * math.Pi, "2π", true},
		{"two-pi-thirds", 2 * math.Pi / 3, "2π/3", true},
		{"e", math.E, "e", true},
		{"sqrt-two", math.Sqrt2, "√2", true},
		{"inverse-sqrt-two", 1 / math.Sqrt2, "1/√2", true},
		{"golden-ratio", (1 + math.Sqrt(5)) / 2, "φ", true},
		{"sqrt-five", math.Sqrt(5), "√5", true},
		{"almost-one", 0.999999999, "1", true},
		{"almost-five", 5.0000000001, "5", true},
		{"almost-negative-one", -0.999999999, "-1", true},
		{"plain-decimal", 0.3, "", false},
		{"plain-decimal-2", 1.25, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Estimate(num(c.re, 0), Real)
			if got != c.want || ok != c.ok {
				t.Errorf("Estimate(%v) = %q, %t, want %q, %t", c.re, got, ok, c.want, c.ok)
			}
		})
	}
}

func TestEstimateImaginary(t *testing.T) {
	v := num(0.25, 0.5)
	if s, ok := Estimate(v, Imaginary); !ok || s != "1/2" {
		t.Errorf("Estimate(imag 0.5) = %q, %t, want \"1/2\", true", s, ok)
	}
	if _, ok := Estimate(v, Real); ok {
		t.Error("0.25 should have no estimate")
	}
}

func TestEstimateBigBackend(t *testing.T) {
	b := Big(0)
	cases := []struct {
		re   float64
		want string
	}{
		{0.5, "1/2"},
		{1.0 / 3, "1/3"},
		{math.Pi, "π"},
	}
	for _, c := range cases {
		v := NewNumber(b.FromFloat(c.re), b.FromFloat(0))
		if got, ok := Estimate(v, Real); !ok || got != c.want {
			t.Errorf("Estimate(%v) = %q, %t, want %q, true", c.re, got, ok, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		name string
		re   float64
		want float64
		ok   bool
	}{
		{"up", 0.999999999, 1, true},
		{"down", 1.000000000001, 1, true},
		{"negative-up", -0.999999999, -1, true},
		{"negative-down", -2.000000001, -2, true},
		{"large-up", 6.9999999, 7, true},
		{"plain", 0.3, 0, false},
		{"boundary-fraction", 0.99999, 0, false},
		{"small-fraction", 0.00001, 0, false},
		{"fraction-above-threshold", 1.0001, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Round(num(c.re, 7), Real)
			if ok != c.ok {
				t.Fatalf("Round(%v) ok = %t, want %t", c.re, ok, c.ok)
			}
			if !ok {
				return
			}
			if f := got.Real().Float64(); f != c.want {
				t.Errorf("Round(%v) = %v, want %v", c.re, f, c.want)
			}
			if f := got.Imag().Float64(); f != 7 {
				t.Errorf("Round(%v) disturbed the imaginary component: %v", c.re, f)
			}
		})
	}
}

func TestRoundPreservesUnit(t *testing.T) {
	b := Float64()
	v := &Number{real: b.FromFloat(0.999999999), imag: b.FromFloat(0), unit: "deg"}
	got, ok := Round(v, Real)
	if !ok {
		t.Fatal("expected a round")
	}
	if got.Unit() != "deg" {
		t.Errorf("unit = %q, want %q", got.Unit(), "deg")
	}
}

func TestTrimZeroes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1.200", "1.2"},
		{"1.000", "1"},
		{"5", "5"},
		{"0.5000000000", "0.5"},
		{"-3.10", "-3.1"},
		{"100", "100"},
	}
	for _, c := range cases {
		if got := trimZeroes(c.in); got != c.want {
			t.Errorf("trimZeroes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
