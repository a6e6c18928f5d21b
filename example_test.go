package yieldcurve_test

import (
	"fmt"

	"github.com/kmangan/yieldcurve"
)

func ExampleCurve_Eval() {
	c, err := yieldcurve.FromBonds(yieldcurve.SampleBonds())
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{3, 3.5, 7.5, 1, 15} {
		fmt.Printf("%4.1fY: %.2f%%\n", x, c.Eval(x))
	}

	// Output:
	//  3.0Y: 1.93%
	//  3.5Y: 2.00%
	//  7.5Y: 2.35%
	//  1.0Y: 1.67%
	// 15.0Y: 2.80%
}

func ExampleCurve_Smooth() {
	c, err := yieldcurve.New([]yieldcurve.Knot{{X: 2, Y: 1.8}, {X: 5, Y: 2.2}, {X: 10, Y: 2.5}})
	if err != nil {
		panic(err)
	}

	s, err := c.Smooth(2)
	if err != nil {
		panic(err)
	}

	for _, k := range s {
		fmt.Printf("%4.1fY: %.2f%%\n", k.X, k.Y)
	}

	// Output:
	//  2.0Y: 1.80%
	//  4.0Y: 2.07%
	//  6.0Y: 2.26%
	//  8.0Y: 2.38%
	// 10.0Y: 2.50%
}

func ExampleNew_invalid() {
	_, err := yieldcurve.New([]yieldcurve.Knot{{X: 5, Y: 1}, {X: 5, Y: 2}})

	fmt.Println(err)

	// Output:
	// invalid curve: knot 1: duplicate x 5
}
