package calculus

import (
	"fmt"

	"github.com/chazu/armature/pkg/geometry"
)

// ParametricCurve maps a scalar parameter to a point in space over a
// closed interval.
type ParametricCurve struct {
	fn   func(t float64) (geometry.Point, error)
	tMin float64
	tMax float64
}

// NewParametricCurve wraps a curve function over [tMin, tMax].
func NewParametricCurve(fn func(t float64) (geometry.Point, error), tMin, tMax float64) ParametricCurve {
	return ParametricCurve{fn: fn, tMin: tMin, tMax: tMax}
}

// Domain returns the closed parameter interval.
func (c ParametricCurve) Domain() (float64, float64) { return c.tMin, c.tMax }

// Evaluate returns the point at parameter t. Parameters outside the
// domain are rejected with a DomainError.
func (c ParametricCurve) Evaluate(t float64) (geometry.Point, error) {
	if t < c.tMin || t > c.tMax {
		return geometry.Point{}, &DomainError{Value: t, Min: c.tMin, Max: c.tMax}
	}
	return c.fn(t)
}

// Sample evaluates n evenly spaced points across the domain, endpoints
// included. n must be at least 2.
func (c ParametricCurve) Sample(n int) ([]geometry.Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("sample count must be at least 2, got %d", n)
	}
	points := make([]geometry.Point, 0, n)
	for i := 0; i < n; i++ {
		t := c.tMin + (c.tMax-c.tMin)*float64(i)/float64(n-1)
		p, err := c.Evaluate(t)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}
