package kalc

import (
	"math"
	"strconv"
)

// Float64 returns the native floating-point backend. It is the default
// backend of a Parser.
func Float64() Backend {
	return f64backend{}
}

type f64backend struct{}

func (f64backend) FromFloat(f float64) Magnitude {
	return f64mag(f)
}

func (f64backend) Parse(s string) (Magnitude, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &LiteralError{Text: s}
	}
	return f64mag(f), nil
}

func (f64backend) Pi() Magnitude {
	return f64mag(math.Pi)
}

func (f64backend) E() Magnitude {
	return f64mag(math.E)
}

type f64mag float64

func (m f64mag) Add(n Magnitude) Magnitude {
	return m + n.(f64mag)
}

func (m f64mag) Sub(n Magnitude) Magnitude {
	return m - n.(f64mag)
}

func (m f64mag) Mul(n Magnitude) Magnitude {
	return m * n.(f64mag)
}

func (m f64mag) Div(n Magnitude) Magnitude {
	return m / n.(f64mag)
}

func (m f64mag) Pow(n Magnitude) Magnitude {
	return f64mag(math.Pow(float64(m), float64(n.(f64mag))))
}

func (m f64mag) Neg() Magnitude {
	return -m
}

func (m f64mag) Abs() Magnitude {
	return f64mag(math.Abs(float64(m)))
}

func (m f64mag) Fract() Magnitude {
	return m - f64mag(math.Trunc(float64(m)))
}

func (m f64mag) Trunc() Magnitude {
	return f64mag(math.Trunc(float64(m)))
}

func (m f64mag) Floor() Magnitude {
	return f64mag(math.Floor(float64(m)))
}

func (m f64mag) Ceil() Magnitude {
	return f64mag(math.Ceil(float64(m)))
}

func (m f64mag) Sqrt() Magnitude {
	return f64mag(math.Sqrt(float64(m)))
}

func (m f64mag) Exp() Magnitude {
	return f64mag(math.Exp(float64(m)))
}

func (m f64mag) Ln() Magnitude {
	return f64mag(math.Log(float64(m)))
}

func (m f64mag) Log10() float64 {
	return math.Log10(float64(m))
}

func (m f64mag) Cmp(n Magnitude) int {
	switch o := n.(f64mag); {
	case m < o:
		return -1
	case m > o:
		return 1
	}
	return 0
}

func (m f64mag) Sign() int {
	switch {
	case m < 0:
		return -1
	case m > 0:
		return 1
	}
	return 0
}

func (m f64mag) FromFloat(f float64) Magnitude {
	return f64mag(f)
}

func (m f64mag) Float64() float64 {
	return float64(m)
}

func (m f64mag) Format(prec int) string {
	return trimZeroes(strconv.FormatFloat(float64(m), 'f', prec, 64))
}

func (m f64mag) String() string {
	return strconv.FormatFloat(float64(m), 'f', -1, 64)
}
