package kalc_test

import (
	"fmt"

	"github.com/zephyrtronium/kalc"
)

func Example() {
	p := kalc.NewParser()
	if _, err := p.Parse("f(x) = x^2", kalc.Radians); err != nil {
		panic(err)
	}
	v, err := p.Parse("f(4) + 2", kalc.Radians)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 18
}

func ExampleEstimate() {
	p := kalc.NewParser()
	v, err := p.Parse("1 + 1/3", kalc.Radians)
	if err != nil {
		panic(err)
	}
	s, _ := kalc.Estimate(v, kalc.Real)
	fmt.Println(s)
	// Output: 1 + 1/3
}

func ExampleEstimate_constant() {
	p := kalc.NewParser()
	v, err := p.Parse("2 pi / 3", kalc.Radians)
	if err != nil {
		panic(err)
	}
	s, _ := kalc.Estimate(v, kalc.Real)
	fmt.Println(s)
	// Output: 2π/3
}

func ExampleWithBackend() {
	p := kalc.NewParser(kalc.WithBackend(kalc.Big(128)))
	v, err := p.Parse("2^100", kalc.Radians)
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Real().Format(0))
	// Output: 1267650600228229401496703205376
}
