package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/zephyrtronium/kalc"
)

func main() {
	log.SetFlags(0)
	var (
		deg   bool
		big   bool
		prec  uint
		plain bool
	)
	flag.BoolVar(&deg, "deg", false, "interpret trigonometric arguments as degrees")
	flag.BoolVar(&big, "big", false, "compute with the arbitrary-precision backend")
	flag.UintVar(&prec, "p", 256, "precision of the arbitrary-precision backend in bits")
	flag.BoolVar(&plain, "plain", false, "disable colored output")
	flag.Parse()
	if plain {
		color.NoColor = true
	}

	unit := kalc.Radians
	if deg {
		unit = kalc.Degrees
	}
	var opts []kalc.Option
	if big {
		opts = append(opts, kalc.WithBackend(kalc.Big(prec)))
	}
	p := kalc.NewParser(opts...)

	// Arguments are evaluated in order in one session; with none, read
	// lines from stdin.
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			answer(p, arg, unit)
		}
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		answer(p, line, unit)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
}

var (
	resultColor   = color.New(color.FgGreen)
	estimateColor = color.New(color.FgCyan)
	errorColor    = color.New(color.FgRed)
)

func answer(p *kalc.Parser, src string, unit kalc.AngleUnit) {
	v, err := p.Parse(src, unit)
	if err != nil {
		errorColor.Println(err)
		return
	}
	resultColor.Print(v)
	if s, ok := kalc.Estimate(v, kalc.Real); ok {
		estimateColor.Printf(" ≈ %s", s)
	} else if s, ok := kalc.Estimate(v, kalc.Imaginary); ok {
		estimateColor.Printf(" ≈ %si", s)
	}
	fmt.Println()
}
