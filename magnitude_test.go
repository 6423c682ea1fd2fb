package kalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/kalc"
)

var backends = []struct {
	name string
	b    kalc.Backend
}{
	{"float64", kalc.Float64()},
	{"big", kalc.Big(64)},
}

func TestMagnitudeOps(t *testing.T) {
	cases := []struct {
		name string
		op   func(b kalc.Backend) kalc.Magnitude
		want float64
	}{
		{"add", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2.5).Add(b.FromFloat(0.25)) }, 2.75},
		{"sub", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2.5).Sub(b.FromFloat(3)) }, -0.5},
		{"mul", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(1.5).Mul(b.FromFloat(4)) }, 6},
		{"div", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(7).Div(b.FromFloat(2)) }, 3.5},
		{"pow", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2).Pow(b.FromFloat(10)) }, 1024},
		{"pow-zero-base", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(0).Pow(b.FromFloat(3)) }, 0},
		{"pow-zero-exp", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(0).Pow(b.FromFloat(0)) }, 1},
		{"neg", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(1.5).Neg() }, -1.5},
		{"abs", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(-1.5).Abs() }, 1.5},
		{"sqrt", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2.25).Sqrt() }, 1.5},
		{"fract", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2.75).Fract() }, 0.75},
		{"fract-negative", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(-2.75).Fract() }, -0.75},
		{"trunc", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2.75).Trunc() }, 2},
		{"trunc-negative", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(-2.75).Trunc() }, -2},
		{"floor", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2.75).Floor() }, 2},
		{"floor-negative", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(-2.75).Floor() }, -3},
		{"floor-integer", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(-3).Floor() }, -3},
		{"ceil", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(2.25).Ceil() }, 3},
		{"ceil-negative", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(-2.25).Ceil() }, -2},
		{"ceil-integer", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(3).Ceil() }, 3},
		{"exp-zero", func(b kalc.Backend) kalc.Magnitude { return b.FromFloat(0).Exp() }, 1},
	}
	for _, be := range backends {
		for _, c := range cases {
			t.Run(be.name+"/"+c.name, func(t *testing.T) {
				if got := c.op(be.b).Float64(); got != c.want {
					t.Errorf("got %v, want %v", got, c.want)
				}
			})
		}
	}
}

func TestMagnitudeSignCmp(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			b := be.b
			if s := b.FromFloat(-2).Sign(); s != -1 {
				t.Errorf("Sign(-2) = %d", s)
			}
			if s := b.FromFloat(0).Sign(); s != 0 {
				t.Errorf("Sign(0) = %d", s)
			}
			if s := b.FromFloat(2).Sign(); s != 1 {
				t.Errorf("Sign(2) = %d", s)
			}
			if c := b.FromFloat(1).Cmp(b.FromFloat(2)); c != -1 {
				t.Errorf("Cmp(1, 2) = %d", c)
			}
			if c := b.FromFloat(2).Cmp(b.FromFloat(2)); c != 0 {
				t.Errorf("Cmp(2, 2) = %d", c)
			}
		})
	}
}

func TestMagnitudeFormat(t *testing.T) {
	cases := []struct {
		f    float64
		prec int
		want string
	}{
		{1.5, 10, "1.5"},
		{0.5, 10, "0.5"},
		{3, 10, "3"},
		{-2.25, 2, "-2.25"},
		{2.675, 1, "2.7"},
	}
	for _, be := range backends {
		for _, c := range cases {
			if got := be.b.FromFloat(c.f).Format(c.prec); got != c.want {
				t.Errorf("%s: Format(%v, %d) = %q, want %q", be.name, c.f, c.prec, got, c.want)
			}
		}
	}
}

func TestMagnitudeParse(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			m, err := be.b.Parse("12.5")
			if err != nil {
				t.Fatal(err)
			}
			if f := m.Float64(); f != 12.5 {
				t.Errorf("parsed %v, want 12.5", f)
			}
			if _, err := be.b.Parse("1..2"); err == nil {
				t.Error("1..2 parsed without error")
			}
		})
	}
}

func TestBigPrecision(t *testing.T) {
	// 2^64 + 1 is not representable in a float64 mantissa.
	b := kalc.Big(128)
	m := b.FromFloat(2).Pow(b.FromFloat(64)).Add(b.FromFloat(1))
	if got := m.Format(0); got != "18446744073709551617" {
		t.Errorf("2^64 + 1 = %s", got)
	}
	if kalc.Big(0).FromFloat(math.Pi).Format(5) != "3.14159" {
		t.Error("default precision should render π to five decimals")
	}
}
