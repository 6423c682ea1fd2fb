package kalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Big returns an arbitrary-precision backend computing to prec bits of
// mantissa. If prec is zero, the default is 64.
func Big(prec uint) Backend {
	if prec == 0 {
		prec = 64
	}
	return bigbackend{prec: prec}
}

type bigbackend struct {
	prec uint
}

func (b bigbackend) new() *big.Float {
	return new(big.Float).SetPrec(b.prec)
}

func (b bigbackend) FromFloat(f float64) Magnitude {
	return bigmag{b.new().SetFloat64(f), b}
}

func (b bigbackend) Parse(s string) (Magnitude, error) {
	v, _, err := b.new().Parse(s, 10)
	if err != nil {
		return nil, &LiteralError{Text: s}
	}
	return bigmag{v, b}, nil
}

func (b bigbackend) Pi() Magnitude {
	return bigmag{bigfloat.Pi(b.new()), b}
}

func (b bigbackend) E() Magnitude {
	one := b.new().SetInt64(1)
	return bigmag{bigfloat.Exp(b.new(), one), b}
}

type bigmag struct {
	v *big.Float
	b bigbackend
}

func (m bigmag) wrap(v *big.Float) Magnitude {
	return bigmag{v, m.b}
}

func (m bigmag) Add(n Magnitude) Magnitude {
	return m.wrap(m.b.new().Add(m.v, n.(bigmag).v))
}

func (m bigmag) Sub(n Magnitude) Magnitude {
	return m.wrap(m.b.new().Sub(m.v, n.(bigmag).v))
}

func (m bigmag) Mul(n Magnitude) Magnitude {
	return m.wrap(m.b.new().Mul(m.v, n.(bigmag).v))
}

func (m bigmag) Div(n Magnitude) Magnitude {
	return m.wrap(m.b.new().Quo(m.v, n.(bigmag).v))
}

func (m bigmag) Pow(n Magnitude) Magnitude {
	e := n.(bigmag).v
	// bigfloat.Pow goes through Log, which cannot take zero.
	if m.v.Sign() == 0 {
		switch e.Sign() {
		case 0:
			return m.FromFloat(1)
		case -1:
			return m.wrap(m.b.new().SetInf(false))
		}
		return m.FromFloat(0)
	}
	return m.wrap(bigfloat.Pow(m.b.new(), m.v, e))
}

func (m bigmag) Neg() Magnitude {
	return m.wrap(m.b.new().Neg(m.v))
}

func (m bigmag) Abs() Magnitude {
	return m.wrap(m.b.new().Abs(m.v))
}

func (m bigmag) Fract() Magnitude {
	if m.v.IsInf() {
		return m.FromFloat(0)
	}
	t := m.Trunc().(bigmag)
	return m.wrap(m.b.new().Sub(m.v, t.v))
}

func (m bigmag) Trunc() Magnitude {
	if m.v.IsInf() {
		return m
	}
	i, _ := m.v.Int(nil)
	return m.wrap(m.b.new().SetInt(i))
}

func (m bigmag) Floor() Magnitude {
	t := m.Trunc()
	if !m.v.IsInt() && m.v.Sign() < 0 {
		return t.Sub(m.FromFloat(1))
	}
	return t
}

func (m bigmag) Ceil() Magnitude {
	t := m.Trunc()
	if !m.v.IsInt() && m.v.Sign() > 0 {
		return t.Add(m.FromFloat(1))
	}
	return t
}

func (m bigmag) Sqrt() Magnitude {
	return m.wrap(m.b.new().Sqrt(m.v))
}

func (m bigmag) Exp() Magnitude {
	return m.wrap(bigfloat.Exp(m.b.new(), m.v))
}

func (m bigmag) Ln() Magnitude {
	return m.wrap(bigfloat.Log(m.b.new(), m.v))
}

func (m bigmag) Log10() float64 {
	f, _ := m.v.Float64()
	return math.Log10(f)
}

func (m bigmag) Cmp(n Magnitude) int {
	return m.v.Cmp(n.(bigmag).v)
}

func (m bigmag) Sign() int {
	return m.v.Sign()
}

func (m bigmag) FromFloat(f float64) Magnitude {
	return m.b.FromFloat(f)
}

func (m bigmag) Float64() float64 {
	f, _ := m.v.Float64()
	return f
}

func (m bigmag) Format(prec int) string {
	return trimZeroes(m.v.Text('f', prec))
}

func (m bigmag) String() string {
	return m.v.Text('f', -1)
}
