// Package yieldcurve evaluates piecewise-linear curves, such as bond yields by maturity.
// Values out of the knots range are extrapolated along the nearest edge segment.
package yieldcurve

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

type (
	// Curve is a piecewise-linear function defined by knots sorted by X.
	// It is immutable and safe for concurrent use.
	Curve struct {
		k []Knot
	}

	Knot struct {
		X, Y float64
	}

	// InvalidCurveError is returned by New when knots can't form a curve.
	InvalidCurveError struct {
		Index  int // -1 if not specific to a knot
		Reason string
	}
)

const (
	// smoothEps is how close the last generated point of Smooth must be to the last knot.
	smoothEps = 1e-9

	// MaxSmoothPoints is the most points Smooth generates.
	MaxSmoothPoints = 1 << 24
)

var (
	ErrInvalidStep   = errors.New("invalid step")
	ErrTooManyPoints = errors.New("too many points")
)

// New creates a curve from knots strictly increasing in X.
// At least two knots are required. knots is copied.
func New(knots []Knot) (*Curve, error) {
	if len(knots) < 2 {
		return nil, &InvalidCurveError{Index: -1, Reason: fmt.Sprintf("need at least 2 knots, got %d", len(knots))}
	}

	for i, k := range knots {
		if !finite(k.X) || !finite(k.Y) {
			return nil, &InvalidCurveError{Index: i, Reason: fmt.Sprintf("non-finite knot (%v, %v)", k.X, k.Y)}
		}

		if i == 0 {
			continue
		}

		switch p := knots[i-1]; {
		case k.X == p.X:
			return nil, &InvalidCurveError{Index: i, Reason: fmt.Sprintf("duplicate x %v", k.X)}
		case k.X < p.X:
			return nil, &InvalidCurveError{Index: i, Reason: fmt.Sprintf("x %v is less than previous %v", k.X, p.X)}
		}
	}

	c := &Curve{
		k: make([]Knot, len(knots)),
	}

	copy(c.k, knots)

	return c, nil
}

// Eval returns the curve value at x.
// Outside of the knots range the nearest edge segment is continued.
func (c *Curve) Eval(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}

	n := len(c.k)

	i := sort.Search(n, func(i int) bool {
		return c.k[i].X >= x
	})

	switch {
	case i < n && c.k[i].X == x:
		return c.k[i].Y
	case i == 0:
		return line(c.k[0], c.k[1], x)
	case i == n:
		return line(c.k[n-2], c.k[n-1], x)
	default:
		return line(c.k[i-1], c.k[i], x)
	}
}

// EvalMulti make multiple evaluations at once.
// res is a buffer for results, res[i] = Eval(xs[i]).
// res must be at least len(xs) long.
func (c *Curve) EvalMulti(xs, res []float64) {
	for i, x := range xs {
		res[i] = c.Eval(x)
	}
}

// EvalAll returns map from each of xs to its value.
// NaN queries are skipped as they can't be looked up in a map.
func (c *Curve) EvalAll(xs []float64) map[float64]float64 {
	r := make(map[float64]float64, len(xs))

	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}

		r[x] = c.Eval(x)
	}

	return r
}

// Smooth samples the curve over its knots range every step.
// The last knot is always included.
// It fails with ErrTooManyPoints if it would generate more than MaxSmoothPoints.
func (c *Curve) Smooth(step float64) ([]Knot, error) {
	if !finite(step) || step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	lo, hi := c.Bounds()

	n := (hi - lo) / step
	if !finite(n) || n+2 > MaxSmoothPoints {
		return nil, fmt.Errorf("%w: range [%v, %v] step %v", ErrTooManyPoints, lo, hi, step)
	}

	r := make([]Knot, 0, int(n)+2)

	for i := 0; ; i++ {
		x := lo + float64(i)*step
		if x > hi {
			break
		}

		r = append(r, Knot{X: x, Y: c.Eval(x)})
	}

	if last := r[len(r)-1].X; math.Abs(last-hi) > smoothEps {
		r = append(r, Knot{X: hi, Y: c.Eval(hi)})
	}

	return r, nil
}

func (c *Curve) Len() int { return len(c.k) }

// Knots returns a copy of the curve knots.
func (c *Curve) Knots() []Knot {
	r := make([]Knot, len(c.k))
	copy(r, c.k)

	return r
}

// Bounds returns the first and the last knots X.
func (c *Curve) Bounds() (lo, hi float64) {
	return c.k[0].X, c.k[len(c.k)-1].X
}

func (c *Curve) dump() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Curve %d knots\n", len(c.k))

	for i, k := range c.k {
		fmt.Fprintf(&b, "  %4d: x %8.4f  y %8.4f\n", i, k.X, k.Y)
	}

	return b.String()
}

func (e *InvalidCurveError) Error() string {
	if e.Index < 0 {
		return "invalid curve: " + e.Reason
	}

	return fmt.Sprintf("invalid curve: knot %d: %s", e.Index, e.Reason)
}

// line evaluates the line through a and b at x.
// Flat lines are a.Y everywhere, infinite x included.
func line(a, b Knot, x float64) float64 {
	if a.Y == b.Y {
		return a.Y
	}

	return a.Y + (x-a.X)*(b.Y-a.Y)/(b.X-a.X)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
