package yieldcurve

import (
	"errors"
	"sort"
)

type (
	// Bond is a yield curve observation.
	// Maturity is in years, Yield is in percent.
	Bond struct {
		Name     string
		Maturity float64
		Yield    float64
	}
)

func SampleBonds() []Bond {
	return []Bond{
		{Name: "2Y Bond", Maturity: 2, Yield: 1.8},
		{Name: "5Y Bond", Maturity: 5, Yield: 2.2},
		{Name: "10Y Bond", Maturity: 10, Yield: 2.5},
	}
}

// FromBonds builds a curve of yields by maturity.
// bonds may come in any order, but maturities must be unique.
// InvalidCurveError.Index refers to bonds, not to the sorted knots.
func FromBonds(bonds []Bond) (*Curve, error) {
	idx := make([]int, len(bonds))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return bonds[idx[i]].Maturity < bonds[idx[j]].Maturity
	})

	k := make([]Knot, len(bonds))

	for i, j := range idx {
		k[i] = Knot{X: bonds[j].Maturity, Y: bonds[j].Yield}
	}

	c, err := New(k)

	var ierr *InvalidCurveError
	if errors.As(err, &ierr) && ierr.Index >= 0 {
		ierr.Index = idx[ierr.Index]
	}

	return c, err
}

func AverageYield(bonds []Bond) float64 {
	if len(bonds) == 0 {
		return 0
	}

	var sum float64
	for _, b := range bonds {
		sum += b.Yield
	}

	return sum / float64(len(bonds))
}
